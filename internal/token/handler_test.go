package token

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rollbook/internal/secrets"
)

func TestIssueHandler(t *testing.T) {
	manager := NewManager("test-signing-key", "rollbook")
	hash, err := secrets.Hash("the staff secret")
	require.NoError(t, err)
	handler := IssueHandler(manager, hash, slog.New(slog.NewTextHandler(io.Discard, nil)))

	post := func(body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/token", strings.NewReader(body))
		rec := httptest.NewRecorder()
		handler(rec, req)
		return rec
	}

	t.Run("correct secret yields a token the manager accepts", func(t *testing.T) {
		rec := post(`{"subject":"staff-1","secret":"the staff secret"}`)
		require.Equal(t, http.StatusOK, rec.Code)

		var env struct {
			Success bool `json:"success"`
			Data    struct {
				Token string `json:"token"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
		assert.True(t, env.Success)

		subject, err := manager.Validate(env.Data.Token)
		require.NoError(t, err)
		assert.Equal(t, "staff-1", subject)
	})

	t.Run("wrong secret is 401", func(t *testing.T) {
		rec := post(`{"subject":"staff-1","secret":"a guess"}`)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), `"success":false`)
	})

	t.Run("missing subject is 400", func(t *testing.T) {
		rec := post(`{"secret":"the staff secret"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("malformed body is 400", func(t *testing.T) {
		rec := post(`{not json`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
