// Package api handles incoming HTTP requests, request validation, and
// response formatting. It adapts the wire contract (detail-style error
// bodies, per-field validation reports, status-success mutations) to the
// internal services.
package api
