// Package httputil centralizes JSON response writing and domain error
// translation so every endpoint speaks the same envelope.
package httputil

import (
	"encoding/json"
	"errors"
	"net/http"

	dErrors "rollbook/pkg/domain-errors"
)

// failureBody is the uniform failure envelope: success=false, a human-readable
// message, and no data field.
type failureBody struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// WriteJSON writes v as JSON with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// StatusOf maps a domain error code onto an HTTP status.
func StatusOf(err error) int {
	switch dErrors.CodeOf(err) {
	case dErrors.CodeInvalidInput, dErrors.CodeValidation:
		return http.StatusBadRequest
	case dErrors.CodeNotFound:
		return http.StatusNotFound
	case dErrors.CodeConflict:
		return http.StatusConflict
	case dErrors.CodeUnauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// WriteError translates a domain error into the failure envelope. Messages of
// internal errors are replaced with a generic one so collaborator details
// never leak to callers.
func WriteError(w http.ResponseWriter, err error) {
	status := StatusOf(err)
	message := "unexpected error"
	var de *dErrors.Error
	if errors.As(err, &de) && de.Code != dErrors.CodeInternal {
		message = de.Message
	}
	WriteJSON(w, status, failureBody{Success: false, Message: message})
}
