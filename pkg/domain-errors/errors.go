// Package domainerrors defines the coded error type every layer above the
// stores speaks. Codes classify failures for transport mapping; validation
// errors additionally carry per-field violations.
package domainerrors

import (
	"errors"
	"fmt"
)

// Code classifies a domain error.
type Code string

const (
	CodeInvalidInput Code = "invalid_input"
	CodeValidation   Code = "validation_failed"
	CodeNotFound     Code = "not_found"
	CodeConflict     Code = "conflict"
	CodeUnauthorized Code = "unauthorized"
	CodeInternal     Code = "internal"
)

// FieldViolation names one field-level validation failure.
type FieldViolation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error is a coded domain error. Message is safe to show callers except when
// Code is CodeInternal; Violations is populated for CodeValidation only.
type Error struct {
	Code       Code
	Message    string
	Violations []FieldViolation
	Err        error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// New creates a coded error with a caller-facing message.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Wrap creates a coded error around an underlying cause.
func Wrap(err error, code Code, message string) *Error {
	return &Error{Code: code, Message: message, Err: err}
}

// NewValidation creates a CodeValidation error carrying field violations.
func NewValidation(message string, violations []FieldViolation) *Error {
	return &Error{Code: CodeValidation, Message: message, Violations: violations}
}

// HasCode reports whether err is (or wraps) a domain error with the code.
func HasCode(err error, code Code) bool {
	return CodeOf(err) == code
}

// CodeOf extracts the code from err; non-domain errors classify as internal.
func CodeOf(err error) Code {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return CodeInternal
}

// ViolationsOf extracts field violations from err, if any.
func ViolationsOf(err error) []FieldViolation {
	var de *Error
	if errors.As(err, &de) {
		return de.Violations
	}
	return nil
}

// Is supports errors.Is matching on code.
func (e *Error) Is(target error) bool {
	var de *Error
	if errors.As(target, &de) {
		return e.Code == de.Code
	}
	return false
}
