// Package token issues and validates the staff access tokens that guard
// mutating roster endpoints. Tokens are HS256 JWTs signed with the configured
// key; issuance is gated on the shared staff secret (see IssueHandler), or
// happens out of band via ops tooling.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	dErrors "rollbook/pkg/domain-errors"
)

// Claims are the JWT claims carried by staff tokens.
type Claims struct {
	jwt.RegisteredClaims
}

// Manager signs and validates staff tokens.
type Manager struct {
	signingKey []byte
	issuer     string
}

func NewManager(signingKey, issuer string) *Manager {
	return &Manager{signingKey: []byte(signingKey), issuer: issuer}
}

// Issue mints a token for the given staff subject.
func (m *Manager) Issue(subject string, ttl time.Duration) (string, error) {
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Issuer:    m.issuer,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			ID:        uuid.NewString(),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.signingKey)
}

// Validate parses and verifies a token, returning its subject.
func (m *Manager) Validate(tokenString string) (string, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenUnverifiable
		}
		return m.signingKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", dErrors.New(dErrors.CodeUnauthorized, "token has expired")
		}
		return "", dErrors.New(dErrors.CodeUnauthorized, "invalid token")
	}
	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return "", dErrors.New(dErrors.CodeUnauthorized, "invalid token claims")
	}
	return claims.Subject, nil
}
