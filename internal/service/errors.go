// Package service implements the application's lifecycle operations:
// each operation runs in exactly one database transaction and translates
// store errors into the service-level taxonomy consumed by the API layer.
package service

import (
	"errors"
	"fmt"

	"github.com/forgetting-curve/api/internal/domain"
	"github.com/forgetting-curve/api/internal/store"
)

// Sentinel errors returned by the services. The API layer branches on these
// with errors.Is to pick status codes and messages.
var (
	// ErrUserNotFound indicates that the referenced user does not exist.
	ErrUserNotFound = errors.New("user not found")

	// ErrInformationNotFound indicates that the referenced information record
	// does not exist under the given user. Ownership violations surface as
	// this error too: another user's record id is indistinguishable from a
	// missing one.
	ErrInformationNotFound = errors.New("information not found")

	// ErrNicknameTaken indicates an attempt to create a user whose nickname
	// already exists.
	ErrNicknameTaken = errors.New("nickname already exists")
)

// ServiceError wraps unexpected errors from the service layer with context.
type ServiceError struct {
	// Operation is the operation that failed (e.g., "create_user", "delete_information")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for ServiceError.
func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// newServiceError translates store-level sentinel errors to service-level
// ones, passes domain validation errors through untouched, and wraps
// everything else in a ServiceError.
func newServiceError(operation, message string, err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, ErrUserNotFound),
		errors.Is(err, ErrInformationNotFound),
		errors.Is(err, ErrNicknameTaken),
		errors.Is(err, domain.ErrValidation):
		return err
	case store.IsNotFoundError(err):
		if errors.Is(err, store.ErrInformationNotFound) {
			return ErrInformationNotFound
		}
		return ErrUserNotFound
	case store.IsDuplicateError(err):
		return ErrNicknameTaken
	}

	return &ServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
