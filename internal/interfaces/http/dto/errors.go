package dto

import "net/http"

// Transport-level error codes. Domain error codes pass through unchanged;
// these cover failures that never reach the domain.
const (
	// ErrCodeInternal is used for internal server errors
	ErrCodeInternal = "INTERNAL_ERROR"
	// ErrCodeBadRequest is used for malformed requests
	ErrCodeBadRequest = "BAD_REQUEST"
	// ErrCodeValidation is used when request binding fails
	ErrCodeValidation = "VALIDATION_ERROR"
	// ErrCodeUnauthorized is used when authentication is required but missing/invalid
	ErrCodeUnauthorized = "UNAUTHORIZED"
	// ErrCodeNotFound is used when a resource is not found
	ErrCodeNotFound = "NOT_FOUND"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes.
//
// The referential and transition rules map to 422: the request was
// well-formed but names something the tenant cannot use. Contended and
// blocked operations map to 409. Corrupt stored data is the server's
// problem, not the caller's, so it maps to 500.
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeInternal:     http.StatusInternalServerError,
	ErrCodeBadRequest:   http.StatusBadRequest,
	ErrCodeValidation:   http.StatusBadRequest,
	ErrCodeUnauthorized: http.StatusUnauthorized,

	// Domain error codes
	"NOT_FOUND":            http.StatusNotFound,
	"INVALID_REFERENCE":    http.StatusUnprocessableEntity,
	"INVALID_TRANSITION":   http.StatusUnprocessableEntity,
	"CONCURRENCY_CONFLICT": http.StatusConflict,
	"CLIENT_IN_USE":        http.StatusConflict,
	"DATA_CORRUPTION":      http.StatusInternalServerError,

	// Domain validation codes -> 400 Bad Request
	"INVALID_INPUT":    http.StatusBadRequest,
	"INVALID_NAME":     http.StatusBadRequest,
	"INVALID_NUMBER":   http.StatusBadRequest,
	"INVALID_CURRENCY": http.StatusBadRequest,
	"INVALID_ITEM":     http.StatusBadRequest,
	"INVALID_EMAIL":    http.StatusBadRequest,
	"INVALID_SUBJECT":  http.StatusBadRequest,
	"INVALID_ROLE":     http.StatusBadRequest,
}

// GetHTTPStatus returns the HTTP status code for an error code.
// Returns 500 Internal Server Error if the error code is not found.
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
