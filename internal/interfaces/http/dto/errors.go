package dto

import (
	"net/http"
	"strings"
)

// Error codes shared between handlers and middleware. Domain errors
// carry their own codes; the constants below are the ones the HTTP
// layer itself emits.
const (
	ErrCodeBadRequest   = "BAD_REQUEST"
	ErrCodeUnauthorized = "UNAUTHORIZED"
	ErrCodeForbidden    = "FORBIDDEN"
	ErrCodeNotFound     = "NOT_FOUND"
	ErrCodeInternal     = "INTERNAL_ERROR"
	ErrCodeRateLimited  = "RATE_LIMIT_EXCEEDED"
	ErrCodeTooLarge     = "REQUEST_TOO_LARGE"
)

// ErrorCodeHTTPStatus maps domain error codes to HTTP status codes.
// Codes not listed here fall back by prefix (INVALID_* -> 400) and
// finally to 500.
var ErrorCodeHTTPStatus = map[string]int{
	// Input errors -> 400
	ErrCodeBadRequest: http.StatusBadRequest,
	"INVALID_INPUT":   http.StatusBadRequest,

	// Authentication -> 401
	ErrCodeUnauthorized:   http.StatusUnauthorized,
	"INVALID_CREDENTIALS": http.StatusUnauthorized,
	"ACCOUNT_LOCKED":      http.StatusUnauthorized,
	"ACCOUNT_DEACTIVATED": http.StatusUnauthorized,
	"ACCOUNT_INACTIVE":    http.StatusUnauthorized,
	"TOKEN_EXPIRED":       http.StatusUnauthorized,
	"TOKEN_INVALID":       http.StatusUnauthorized,
	"TOKEN_REVOKED":       http.StatusUnauthorized,
	"TOKEN_MAX_REFRESH":   http.StatusUnauthorized,
	"TOKEN_ERROR":         http.StatusUnauthorized,

	// Authorization -> 403
	ErrCodeForbidden: http.StatusForbidden,

	// Missing resources -> 404
	ErrCodeNotFound:  http.StatusNotFound,
	"USER_NOT_FOUND": http.StatusNotFound,

	// Conflicts -> 409
	"ALREADY_EXISTS":       http.StatusConflict,
	"CONCURRENCY_CONFLICT": http.StatusConflict,
	"ASSIGNMENT_CONFLICT":  http.StatusConflict,

	// Payload limits -> 413
	ErrCodeTooLarge:  http.StatusRequestEntityTooLarge,
	"FILE_TOO_LARGE": http.StatusRequestEntityTooLarge,

	// Business rule violations -> 422
	"INVALID_STATE":          http.StatusUnprocessableEntity,
	"INVALID_DATE_RANGE":     http.StatusUnprocessableEntity,
	"INVALID_RENEWAL":        http.StatusUnprocessableEntity,
	"INVALID_DEACTIVATION":   http.StatusUnprocessableEntity,
	"INVALID_PARENT":         http.StatusUnprocessableEntity,
	"REFERENCE_NOT_FOUND":    http.StatusUnprocessableEntity,
	"CIRCULAR_REFERENCE":     http.StatusUnprocessableEntity,
	"HIERARCHY_CYCLE":        http.StatusUnprocessableEntity,
	"HAS_CHILDREN":           http.StatusUnprocessableEntity,
	"NOT_VIGENTE":            http.StatusUnprocessableEntity,
	"ALREADY_FINALIZED":      http.StatusUnprocessableEntity,
	"ALREADY_ACTIVE":         http.StatusUnprocessableEntity,
	"ALREADY_DEACTIVATED":    http.StatusUnprocessableEntity,
	"ALREADY_INACTIVE":       http.StatusUnprocessableEntity,
	"EXPIRATION_IN_PAST":     http.StatusUnprocessableEntity,
	"PROFILE_INACTIVE":       http.StatusUnprocessableEntity,
	"UNIT_NOT_OPERATIONAL":   http.StatusUnprocessableEntity,
	"POSITION_UNIT_MISMATCH": http.StatusUnprocessableEntity,
	"USER_DEACTIVATED":       http.StatusUnprocessableEntity,
	"NOT_LOCKED":             http.StatusUnprocessableEntity,
	"UNSUPPORTED_FILE_TYPE":  http.StatusUnprocessableEntity,

	// Rate limiting -> 429
	ErrCodeRateLimited: http.StatusTooManyRequests,

	// Infrastructure failures -> 500
	ErrCodeInternal:       http.StatusInternalServerError,
	"PASSWORD_HASH_ERROR": http.StatusInternalServerError,
	"DOCUMENT_NOT_STORED": http.StatusInternalServerError,
}

// GetHTTPStatus returns the HTTP status code for an error code
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	// INVALID_GRADE, INVALID_UNIT_CODE and friends are field-level
	// validation failures raised by entity constructors.
	if strings.HasPrefix(code, "INVALID_") {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
