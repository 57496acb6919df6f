// Package result provides the uniform success/failure/data envelope every
// roster operation returns instead of propagating errors to callers. An empty
// collection with Success=true ("found nothing") is distinct from a failure
// (Success=false, Data absent).
package result

import (
	"errors"

	dErrors "rollbook/pkg/domain-errors"
)

// Result wraps an operation outcome. Data is omitted on failure; Message is a
// human-readable explanation, set on failure and optionally on success.
type Result[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    *T     `json:"data,omitempty"`

	err error
}

// Void is the payload type for operations that return no data.
type Void = struct{}

// Ok returns a successful result carrying data.
func Ok[T any](data T) Result[T] {
	return Result[T]{Success: true, Data: &data}
}

// OkVoid returns a successful result with no data.
func OkVoid() Result[Void] {
	return Result[Void]{Success: true}
}

// Fail returns a failed result. The message comes from the domain error; the
// error itself is retained (unserialized) so transport can map it onto a
// status code.
func Fail[T any](err error) Result[T] {
	message := "unexpected error"
	if err != nil && dErrors.CodeOf(err) != dErrors.CodeInternal {
		message = domainMessage(err)
	}
	return Result[T]{Success: false, Message: message, err: err}
}

// Err exposes the domain error behind a failed result; nil on success.
func (r Result[T]) Err() error { return r.err }

func domainMessage(err error) string {
	var de *dErrors.Error
	if errors.As(err, &de) {
		return de.Message
	}
	return "unexpected error"
}
