// Package apperrors provides application-level error types and utilities.
// Every failure a request can produce maps to one of the types below; all of
// them are recoverable at the request boundary and carry the HTTP status a
// handler should answer with.
package apperrors

import (
	"errors"
	"net/http"
)

// ErrorType represents the type of error
type ErrorType string

const (
	ErrorTypeValidation         ErrorType = "validation_error"
	ErrorTypeNotFound           ErrorType = "not_found"
	ErrorTypeDuplicateIdentity  ErrorType = "duplicate_identity"
	ErrorTypeInvalidCredentials ErrorType = "invalid_credentials"
	ErrorTypeUnauthorized       ErrorType = "unauthorized"
	ErrorTypeForbidden          ErrorType = "forbidden"
	ErrorTypeInternal           ErrorType = "internal_error"
)

// AppError is an application error with a human-readable message and the
// HTTP status code it maps to.
type AppError struct {
	Type    ErrorType `json:"type"`
	Message string    `json:"message"`
	Code    int       `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	return string(e.Type) + ": " + e.Message
}

// NewValidationError reports a missing or malformed field.
func NewValidationError(message string) *AppError {
	return &AppError{Type: ErrorTypeValidation, Message: message, Code: http.StatusBadRequest}
}

// NewNotFoundError reports a referenced record that does not exist.
func NewNotFoundError(message string) *AppError {
	return &AppError{Type: ErrorTypeNotFound, Message: message, Code: http.StatusNotFound}
}

// NewDuplicateIdentityError reports a registration against a taken username.
func NewDuplicateIdentityError(message string) *AppError {
	return &AppError{Type: ErrorTypeDuplicateIdentity, Message: message, Code: http.StatusConflict}
}

// NewInvalidCredentialsError reports a failed login. The same value is used
// for an unknown user, a role mismatch and a wrong password so that callers
// cannot tell which one occurred.
func NewInvalidCredentialsError() *AppError {
	return &AppError{
		Type:    ErrorTypeInvalidCredentials,
		Message: "invalid credentials",
		Code:    http.StatusUnauthorized,
	}
}

// NewUnauthorizedError reports a request with no live session.
func NewUnauthorizedError(message string) *AppError {
	return &AppError{Type: ErrorTypeUnauthorized, Message: message, Code: http.StatusUnauthorized}
}

// NewForbiddenError reports a live session whose role does not permit the
// operation.
func NewForbiddenError(message string) *AppError {
	return &AppError{Type: ErrorTypeForbidden, Message: message, Code: http.StatusForbidden}
}

// NewInternalError reports an unexpected failure without leaking detail.
func NewInternalError(message string) *AppError {
	return &AppError{Type: ErrorTypeInternal, Message: message, Code: http.StatusInternalServerError}
}

// AsAppError extracts an *AppError from an error chain, wrapping anything
// else into a generic internal error.
func AsAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return NewInternalError("something went wrong")
}

// IsType reports whether err is an *AppError of the given type.
func IsType(err error, t ErrorType) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Type == t
}
