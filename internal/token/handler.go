package token

import (
	"log/slog"
	"net/http"
	"time"

	"rollbook/internal/secrets"
	dErrors "rollbook/pkg/domain-errors"
	"rollbook/pkg/platform/httputil"
)

// staffTokenTTL bounds how long an issued staff token stays valid.
const staffTokenTTL = 12 * time.Hour

type issueRequest struct {
	Subject string `json:"subject"`
	Secret  string `json:"secret"`
}

func (r *issueRequest) Validate() error {
	if r.Subject == "" {
		return dErrors.New(dErrors.CodeInvalidInput, "subject is required")
	}
	if r.Secret == "" {
		return dErrors.New(dErrors.CodeInvalidInput, "secret is required")
	}
	return nil
}

type issueResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// IssueHandler exchanges the shared staff secret for a signed token. The
// secret is compared against the configured bcrypt hash, never stored in
// plaintext.
func IssueHandler(m *Manager, staffSecretHash string, logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, ok := httputil.Decode[issueRequest](w, r)
		if !ok {
			return
		}
		if err := secrets.Verify(req.Secret, staffSecretHash); err != nil {
			logger.WarnContext(r.Context(), "staff token request rejected",
				"subject", req.Subject,
			)
			httputil.WriteError(w, err)
			return
		}
		signed, err := m.Issue(req.Subject, staffTokenTTL)
		if err != nil {
			logger.ErrorContext(r.Context(), "token signing failed", "error", err)
			httputil.WriteError(w, err)
			return
		}
		httputil.WriteJSON(w, http.StatusOK, struct {
			Success bool          `json:"success"`
			Data    issueResponse `json:"data"`
		}{
			Success: true,
			Data:    issueResponse{Token: signed, ExpiresAt: time.Now().Add(staffTokenTTL)},
		})
	}
}
