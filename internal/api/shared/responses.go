package shared

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
)

// ErrorResponse is the standard error body: a human-readable detail plus
// the request's trace ID when one is available.
type ErrorResponse struct {
	Detail  string `json:"detail"`
	TraceID string `json:"trace_id,omitempty"`
}

// ValidationErrorResponse is the body for validation failures. Detail
// holds one entry per offending field.
type ValidationErrorResponse struct {
	Detail  []FieldError `json:"detail"`
	TraceID string       `json:"trace_id,omitempty"`
}

// StatusResponse is the body returned by successful mutations.
type StatusResponse struct {
	Status string `json:"status"`
}

// StatusSuccess is the canonical success response for mutations.
var StatusSuccess = StatusResponse{Status: "success"}

// RespondWithJSON writes a JSON response with the given status code and data.
func RespondWithJSON(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

// RespondWithError writes a JSON error response with the given status code
// and detail message, attaching the trace ID from the request context.
func RespondWithError(w http.ResponseWriter, r *http.Request, status int, detail string) {
	traceID := GetTraceID(r.Context())

	slog.Debug("sending error response",
		"status_code", status,
		"detail", detail,
		"trace_id", traceID,
		"path", r.URL.Path,
		"method", r.Method)

	RespondWithJSON(w, r, status, ErrorResponse{Detail: detail, TraceID: traceID})
}

// RespondWithValidationError writes a 400 response carrying per-field
// validation details in the wire format.
func RespondWithValidationError(w http.ResponseWriter, r *http.Request, details []FieldError) {
	traceID := GetTraceID(r.Context())

	slog.Debug("sending validation error response",
		"fields", len(details),
		"trace_id", traceID,
		"path", r.URL.Path,
		"method", r.Method)

	RespondWithJSON(w, r, http.StatusBadRequest, ValidationErrorResponse{
		Detail:  details,
		TraceID: traceID,
	})
}

// RespondWithErrorAndLog writes a sanitized JSON error response and logs the
// underlying error. Server errors log at ERROR level, client errors at DEBUG.
// The raw error never reaches the response body.
func RespondWithErrorAndLog(
	w http.ResponseWriter,
	r *http.Request,
	status int,
	detail string,
	err error,
) {
	traceID := GetTraceID(r.Context())

	logAttrs := []slog.Attr{
		slog.String("trace_id", traceID),
		slog.String("path", r.URL.Path),
		slog.String("method", r.Method),
		slog.Int("status_code", status),
		slog.String("detail", detail),
	}
	if err != nil {
		logAttrs = append(logAttrs,
			slog.String("error", err.Error()),
			slog.String("error_type", fmt.Sprintf("%T", err)))
	}

	logLevel := slog.LevelDebug
	if status >= http.StatusInternalServerError {
		logLevel = slog.LevelError
	}
	slog.LogAttrs(r.Context(), logLevel, "API error response", logAttrs...)

	RespondWithJSON(w, r, status, ErrorResponse{Detail: detail, TraceID: traceID})
}
