package httputil

import (
	"encoding/json"
	"net/http"

	dErrors "rollbook/pkg/domain-errors"
)

// Validatable is implemented by request types that validate and parse
// themselves after decoding.
type Validatable interface {
	Validate() error
}

// Decode reads the JSON body into T, then runs its Validate hook when T
// implements Validatable. On any failure the error envelope is already
// written and ok is false.
func Decode[T any](w http.ResponseWriter, r *http.Request) (req T, ok bool) {
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, dErrors.New(dErrors.CodeInvalidInput, "invalid request body"))
		return req, false
	}
	if v, isValidatable := any(&req).(Validatable); isValidatable {
		if err := v.Validate(); err != nil {
			WriteError(w, err)
			return req, false
		}
	}
	return req, true
}
