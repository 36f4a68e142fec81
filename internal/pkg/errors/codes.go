package errors

import "net/http"

const (
	CodeValidation  = "VALIDATION_ERROR"
	CodeUpstream    = "UPSTREAM_ERROR"
	CodeEmptyReport = "EMPTY_REPORT"
	CodeRender      = "RENDER_ERROR"
	CodeNotFound    = "NOT_FOUND"
	CodeDatabase    = "DATABASE_ERROR"
	CodeInternal    = "INTERNAL_SERVER_ERROR"
	CodeUnavailable = "FEATURE_UNAVAILABLE"
)

var (
	ErrValidation = New(
		CodeValidation,
		"Missing required parameters",
		http.StatusBadRequest,
	)

	ErrInvalidRequest = New(
		CodeValidation,
		"Invalid request body",
		http.StatusBadRequest,
	)

	ErrUpstream = New(
		CodeUpstream,
		"Upstream geocoding service failed",
		http.StatusInternalServerError,
	)

	ErrEmptyReport = New(
		CodeEmptyReport,
		"No places provided",
		http.StatusBadRequest,
	)

	ErrRender = New(
		CodeRender,
		"Failed to generate PDF",
		http.StatusInternalServerError,
	)

	ErrNotFound = New(
		CodeNotFound,
		"Resource not found",
		http.StatusNotFound,
	)

	ErrFeatureDisabled = New(
		CodeUnavailable,
		"Feature is not configured on this server",
		http.StatusServiceUnavailable,
	)

	ErrDatabase = New(
		CodeDatabase,
		"Database operation failed",
		http.StatusInternalServerError,
	)

	ErrInternalServer = New(
		CodeInternal,
		"Internal server error",
		http.StatusInternalServerError,
	)
)
