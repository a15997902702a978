// Package apperrors provides unified error handling for the identity service.
// It implements structured error types with error codes and HTTP status
// mapping. The client-facing messages are fixed strings carried over from the
// service's original wire contract and must not be reworded.
package apperrors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// AppError is the unified application error type.
type AppError struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is the client-facing error message.
	Message string `json:"message"`
	// HTTPStatus is the HTTP status code for this error.
	HTTPStatus int `json:"-"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *AppError) Unwrap() error { return e.Cause }

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// New creates a new AppError.
func New(code ErrorCode, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// --- Taxonomy Constructors ---

// EmailExists creates the error returned when registration hits the email
// uniqueness constraint. Maps to a client error, not a server error.
func EmailExists() *AppError {
	return &AppError{
		Code: ErrCodeAlreadyExists, Message: "Email already exists",
		HTTPStatus: http.StatusBadRequest,
	}
}

// UserNotFound creates the error returned when no account exists for the
// presented identity (login by email, or profile fetch by token subject).
func UserNotFound() *AppError {
	return &AppError{
		Code: ErrCodeNotFound, Message: "User not found",
		HTTPStatus: http.StatusNotFound,
	}
}

// InvalidCredentials creates the error returned when the password does not
// match the stored hash.
func InvalidCredentials() *AppError {
	return &AppError{
		Code: ErrCodeInvalidCredentials, Message: "Invalid credentials",
		HTTPStatus: http.StatusBadRequest,
	}
}

// MissingToken creates the error returned when the Authorization header is
// absent or not in Bearer shape.
func MissingToken() *AppError {
	return &AppError{
		Code: ErrCodeMissingCredential, Message: "Access denied. No token provided or malformed header.",
		HTTPStatus: http.StatusForbidden,
	}
}

// InvalidToken creates the error returned when a presented token fails
// verification. Expired, tampered, and malformed tokens are deliberately
// indistinguishable here.
func InvalidToken() *AppError {
	return &AppError{
		Code: ErrCodeInvalidToken, Message: "Invalid or expired token.",
		HTTPStatus: http.StatusUnauthorized,
	}
}

// Validation creates a new AppError for request validation failures.
func Validation(message string) *AppError {
	return &AppError{
		Code: ErrCodeInvalidInput, Message: message,
		HTTPStatus: http.StatusBadRequest,
	}
}

// Internal creates a new AppError for an unexpected server-side failure.
// The cause is kept for logging but never sent to the client.
func Internal(cause error) *AppError {
	return &AppError{
		Code: ErrCodeInternal, Message: "Internal server error",
		HTTPStatus: http.StatusInternalServerError, Cause: cause,
	}
}

// DatabaseError creates a new AppError for a store fault.
func DatabaseError(cause error) *AppError {
	return &AppError{
		Code: ErrCodeDatabaseError, Message: "Internal server error",
		HTTPStatus: http.StatusInternalServerError, Cause: cause,
	}
}

// IsAppError checks if an error is an AppError.
func IsAppError(err error) bool {
	var appErr *AppError
	return stderrors.As(err, &appErr)
}

// AsAppError converts an error to an AppError if possible.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
