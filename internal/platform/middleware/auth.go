package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"rollbook/pkg/requestcontext"
)

// TokenValidator validates a bearer token and returns the staff subject it
// was issued to.
type TokenValidator interface {
	Validate(tokenString string) (subject string, err error)
}

// RequireAuth guards mutating routes behind a bearer token. The validated
// subject is placed in the context for audit attribution.
func RequireAuth(validator TokenValidator, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const bearerPrefix = "Bearer "
			token, ok := strings.CutPrefix(r.Header.Get("Authorization"), bearerPrefix)
			if !ok {
				unauthorized(w, r, logger, "missing token")
				return
			}
			subject, err := validator.Validate(token)
			if err != nil {
				unauthorized(w, r, logger, err.Error())
				return
			}
			ctx := requestcontext.WithActor(r.Context(), subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func unauthorized(w http.ResponseWriter, r *http.Request, logger *slog.Logger, reason string) {
	logger.WarnContext(r.Context(), "unauthorized request",
		"reason", reason,
		"path", r.URL.Path,
		"request_id", requestcontext.RequestID(r.Context()),
	)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(`{"success":false,"message":"invalid or missing token"}`))
}
