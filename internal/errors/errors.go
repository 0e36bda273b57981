// Package errors provides custom error types for the spendview client.
// Every failure surfaced to a page handler should be an AppError so that
// templates render a consistent, user-safe message while internal detail
// stays in the logs.
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

// Authentication & session errors. Login failures never reveal which
// credential field was wrong.
var (
	ErrLoginFailed    = &AppError{Code: "INVALID_CREDENTIALS", Message: "Login failed", StatusCode: http.StatusUnauthorized}
	ErrSessionExpired = &AppError{Code: "SESSION_EXPIRED", Message: "Your session has expired. Please log in again.", StatusCode: http.StatusUnauthorized}
	ErrForbidden      = &AppError{Code: "FORBIDDEN", Message: "You do not have access to this page", StatusCode: http.StatusForbidden}
)

// Local validation errors, resolved before any network call.
var (
	ErrValidation = &AppError{Code: "VALIDATION_FAILED", Message: "Invalid input", StatusCode: http.StatusBadRequest}
)

// Collaborator errors: the expense-tracker backend could not be reached,
// or answered with a non-2xx status.
var (
	ErrNetwork = &AppError{Code: "NETWORK_ERROR", Message: "Could not reach the expense service", StatusCode: http.StatusBadGateway}
	ErrServer  = &AppError{Code: "SERVER_ERROR", Message: "The expense service reported an error", StatusCode: http.StatusBadGateway}
)

// Registration errors.
var (
	ErrRegistration = &AppError{Code: "REGISTRATION_FAILED", Message: "Registration failed", StatusCode: http.StatusBadRequest}
)
