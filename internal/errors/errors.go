// Package errors provides custom error types for the budgetbook API.
// All service-layer errors should use AppError to ensure consistent,
// secure error responses that never leak internal details to clients.
package errors

import "net/http"

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// Authentication errors.
var (
	ErrUnauthorized       = &AppError{Code: "UNAUTHORIZED", Message: "You must be authenticated to use this route.", StatusCode: http.StatusUnauthorized}
	ErrInvalidCredentials = &AppError{Code: "INVALID_CREDENTIALS", Message: "Invalid username or password.", StatusCode: http.StatusUnauthorized}
)

// Business validation errors. The user-facing message is set with WithMessage
// at the point of detection and forwarded to the client verbatim; every kind
// maps to 422 at the handler boundary.
var (
	ErrEmptyField        = &AppError{Code: "EMPTY_FIELD", Message: "Required field must not be empty", StatusCode: http.StatusUnprocessableEntity}
	ErrDuplicateName     = &AppError{Code: "DUPLICATE_NAME", Message: "You already have a budget with that name.", StatusCode: http.StatusUnprocessableEntity}
	ErrDuplicateUsername = &AppError{Code: "DUPLICATE_USERNAME", Message: "Username already exists.", StatusCode: http.StatusUnprocessableEntity}
	ErrNotANumber        = &AppError{Code: "NOT_A_NUMBER", Message: "Value must be a valid number", StatusCode: http.StatusUnprocessableEntity}
	ErrNegativeValue     = &AppError{Code: "NEGATIVE_VALUE", Message: "Value must be a non negative number", StatusCode: http.StatusUnprocessableEntity}
	ErrInvalidEnumValue  = &AppError{Code: "INVALID_ENUM_VALUE", Message: "Value is not one of the allowed choices", StatusCode: http.StatusUnprocessableEntity}
	ErrNotFound          = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusUnprocessableEntity}
)

// Infrastructure errors. Never shown to clients directly; the handler
// substitutes an operation-specific generic message and logs the internal error.
var (
	ErrServiceUnavailable = &AppError{Code: "SERVICE_UNAVAILABLE", Message: "Service temporarily unavailable", StatusCode: http.StatusServiceUnavailable}
)
