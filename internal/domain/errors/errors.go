package errors

import (
	"net/http"

	"github.com/pkg/errors"
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

// Predefined error types
var (
	// Session-related errors
	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"your session has expired, please sign in again",
		"",
	)

	ErrNotLoggedIn = NewBaseError(
		http.StatusUnauthorized,
		"NOT_LOGGED_IN",
		"you must be signed in to do that",
		"",
	)

	// Wizard-related errors
	ErrSectionLocked = NewBaseError(
		http.StatusConflict,
		"SECTION_LOCKED",
		"complete the previous section first",
		"",
	)

	ErrSectionUnknown = NewBaseError(
		http.StatusNotFound,
		"SECTION_UNKNOWN",
		"unknown wizard section",
		"",
	)

	ErrFormIncomplete = NewBaseError(
		http.StatusBadRequest,
		"FORM_INCOMPLETE",
		"please complete all sections",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"input validation failed",
		"",
	)

	// Store-related errors
	ErrStoreNotCreated = NewBaseError(
		http.StatusNotFound,
		"STORE_NOT_CREATED",
		"no store has been created yet",
		"",
	)

	// Order-related errors
	ErrInvalidOrderStatus = NewBaseError(
		http.StatusBadRequest,
		"INVALID_ORDER_STATUS",
		"unknown order status",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"something went wrong",
		"",
	)
)

// PersistError represents a failed write to the on-device store. The
// in-memory mutation it accompanies has already been applied; callers may
// inspect or ignore it.
type PersistError struct {
	Key string
	err error
}

// NewPersistError creates a persistence error for the given key
func NewPersistError(key string, err error) *PersistError {
	return &PersistError{Key: key, err: err}
}

// Error implements the error interface
func (e *PersistError) Error() string {
	return errors.Wrapf(e.err, "persist %q failed", e.Key).Error()
}

// Unwrap returns the underlying storage error
func (e *PersistError) Unwrap() error {
	return e.err
}
