package api

import (
	"errors"
	"net/http"

	"github.com/forgetting-curve/api/internal/api/shared"
	"github.com/forgetting-curve/api/internal/domain"
	"github.com/forgetting-curve/api/internal/service"
	"github.com/forgetting-curve/api/internal/store"
)

// MapErrorToStatusCode maps service errors to HTTP status codes without
// leaking internal error types to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrInformationNotFound):
		return http.StatusNotFound

	case errors.Is(err, service.ErrNicknameTaken):
		return http.StatusConflict

	case errors.Is(err, store.ErrInvalidEntity),
		errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns the sanitized detail message for an error.
// Internal details stay in the logs.
func GetSafeErrorMessage(err error) string {
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		return "User not found"

	case errors.Is(err, service.ErrInformationNotFound):
		return "Information not found"

	case errors.Is(err, service.ErrNicknameTaken):
		return "Nickname already exists"

	case errors.Is(err, store.ErrInvalidEntity),
		errors.Is(err, domain.ErrValidation):
		return "Invalid entity data"

	default:
		return "An unexpected error occurred"
	}
}

// NotFoundHandler answers requests for routes that do not exist with the
// standard error envelope instead of the router's plain-text default.
func NotFoundHandler(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithError(w, r, http.StatusNotFound, "Not Found")
}

// MethodNotAllowedHandler answers requests that hit a known route with an
// unsupported method.
func MethodNotAllowedHandler(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithError(w, r, http.StatusMethodNotAllowed, "Method Not Allowed")
}
