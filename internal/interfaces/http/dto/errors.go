package dto

import (
	"net/http"
	"strings"
)

// General error codes used by the HTTP layer itself
const (
	ErrCodeInternal     = "INTERNAL_ERROR"
	ErrCodeBadRequest   = "BAD_REQUEST"
	ErrCodeValidation   = "VALIDATION_ERROR"
	ErrCodeUnauthorized = "UNAUTHORIZED"
	ErrCodeForbidden    = "FORBIDDEN"
	ErrCodeNotFound     = "NOT_FOUND"
)

// errorCodeHTTPStatus maps domain error codes to HTTP status codes.
// Codes not listed fall back to the INVALID_ prefix rule, then 500.
var errorCodeHTTPStatus = map[string]int{
	// Resource errors
	"NOT_FOUND":      http.StatusNotFound,
	"USER_NOT_FOUND": http.StatusNotFound,
	"ALREADY_EXISTS": http.StatusConflict,

	// Authentication and authorization
	"UNAUTHORIZED":        http.StatusUnauthorized,
	"INVALID_CREDENTIALS": http.StatusUnauthorized,
	"TOKEN_EXPIRED":       http.StatusUnauthorized,
	"TOKEN_INVALID":       http.StatusUnauthorized,
	"FORBIDDEN":           http.StatusForbidden,
	"ACCOUNT_LOCKED":      http.StatusForbidden,
	"ACCOUNT_INACTIVE":    http.StatusForbidden,
	"COMPANY_SUSPENDED":   http.StatusForbidden,

	// State and business rule violations
	"INVALID_STATE":             http.StatusUnprocessableEntity,
	"INVALID_OPERATION":         http.StatusUnprocessableEntity,
	"PURCHASE_ORDER_CLOSED":     http.StatusUnprocessableEntity,
	"INVALID_ASSIGNMENT_TARGET": http.StatusUnprocessableEntity,
	"ALREADY_CLOSED":            http.StatusUnprocessableEntity,
	"ALREADY_ARRIVED":           http.StatusUnprocessableEntity,
	"ALREADY_ACTIVE":            http.StatusUnprocessableEntity,
	"ALREADY_DEACTIVATED":       http.StatusUnprocessableEntity,
	"ALREADY_SUSPENDED":         http.StatusUnprocessableEntity,
	"CONCURRENCY_CONFLICT":      http.StatusConflict,

	// Input errors
	"BAD_REQUEST": http.StatusBadRequest,

	// Internal
	"INTERNAL_ERROR":      http.StatusInternalServerError,
	"PASSWORD_HASH_ERROR": http.StatusInternalServerError,
}

// GetHTTPStatus returns the HTTP status code for a domain error code.
// Validation codes follow the INVALID_ naming convention and map to 400
// unless listed explicitly above. Unknown codes map to 500 so that lookup
// failures are never presented as client errors.
func GetHTTPStatus(code string) int {
	if status, ok := errorCodeHTTPStatus[code]; ok {
		return status
	}
	if strings.HasPrefix(code, "INVALID_") {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
