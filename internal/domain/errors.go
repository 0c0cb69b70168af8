// Package domain defines the core business entities and errors.
package domain

import "errors"

// ErrValidation is the common ancestor of every entity validation error.
// Callers that do not care which field failed branch on it with errors.Is;
// the API layer maps it to a 400 response.
var ErrValidation = errors.New("validation failed")

// validationError is a field-specific validation failure. It keeps its own
// message but unwraps to ErrValidation so the whole family can be matched
// with a single errors.Is check.
type validationError struct {
	msg string
}

func (e *validationError) Error() string { return e.msg }

func (e *validationError) Unwrap() error { return ErrValidation }

func newValidationError(msg string) error {
	return &validationError{msg: msg}
}
