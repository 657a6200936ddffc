package errors

import (
	"net/http"

	"storefront/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types.
//
// Several logical failures deliberately carry http.StatusOK: the upstream API
// contract reports them with a 200 status and success=false in the body, and
// clients depend on that. The unusual status codes on login failures
// (404 for missing fields, 400 for an unknown email) are part of the same
// compatibility contract.
var (
	// Registration/login errors
	ErrAlreadyRegistered = NewBaseError(
		http.StatusOK,
		"ALREADY_REGISTERED",
		"already registered please login",
		"",
	)

	ErrMissingCredentials = NewBaseError(
		http.StatusNotFound,
		"MISSING_CREDENTIALS",
		"email and password are required",
		"",
	)

	ErrEmailNotRegistered = NewBaseError(
		http.StatusBadRequest,
		"EMAIL_NOT_REGISTERED",
		"email is not registered",
		"",
	)

	ErrWrongPassword = NewBaseError(
		http.StatusOK,
		"WRONG_PASSWORD",
		"invalid password",
		"",
	)

	// Password recovery errors
	ErrEmailRequired = NewBaseError(
		http.StatusBadRequest,
		"EMAIL_REQUIRED",
		"email is required",
		"",
	)

	ErrAnswerRequired = NewBaseError(
		http.StatusBadRequest,
		"ANSWER_REQUIRED",
		"answer is required",
		"",
	)

	ErrNewPasswordRequired = NewBaseError(
		http.StatusBadRequest,
		"NEW_PASSWORD_REQUIRED",
		"new password is required",
		"",
	)

	ErrWrongEmailOrAnswer = NewBaseError(
		http.StatusNotFound,
		"WRONG_EMAIL_OR_ANSWER",
		"wrong email or answer",
		"",
	)

	// Profile errors
	ErrWeakPassword = NewBaseError(
		http.StatusOK,
		"WEAK_PASSWORD",
		"password is required and must be at least 6 characters long",
		"",
	)

	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"user not found",
		"",
	)

	// Order errors
	ErrOrderNotFound = NewBaseError(
		http.StatusNotFound,
		"ORDER_NOT_FOUND",
		"order not found",
		"",
	)

	ErrInvalidOrderStatus = NewBaseError(
		http.StatusBadRequest,
		"INVALID_ORDER_STATUS",
		"unknown order status",
		"",
	)

	// Hashing errors
	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"failed to process password",
		"",
	)

	// Token errors
	ErrInvalidToken = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_TOKEN",
		"invalid or expired token",
		"",
	)

	// General errors
	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"access denied",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"internal server error",
		"",
	)
)

// ValidationError carries the full list of field-level validation failures so
// the caller can report every problem at once.
type ValidationError struct {
	fields []FieldError
}

// FieldError describes a single failing field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// NewValidationError creates a ValidationError from a list of field errors.
func NewValidationError(fields []FieldError) *ValidationError {
	return &ValidationError{fields: fields}
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return "validation error"
}

// HTTPCode returns the HTTP status code
func (e *ValidationError) HTTPCode() int {
	return http.StatusBadRequest
}

// ErrorCode returns the business error code
func (e *ValidationError) ErrorCode() string {
	return "VALIDATION_ERROR"
}

// Message returns the user-friendly error message
func (e *ValidationError) Message() string {
	return "validation error"
}

// Details returns detailed error information
func (e *ValidationError) Details() string {
	if len(e.fields) == 0 {
		return ""
	}

	details := e.fields[0].Field + ": " + e.fields[0].Message
	for _, f := range e.fields[1:] {
		details += "; " + f.Field + ": " + f.Message
	}

	return details
}

// Fields returns the individual field errors.
func (e *ValidationError) Fields() []FieldError {
	return e.fields
}
