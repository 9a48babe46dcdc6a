package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Error represents a typed store error with HTTP awareness.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"status"`
	Err     error  `json:"-"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is reports whether target carries the same code, so clones and wraps of a
// predefined error still match it.
func (e *Error) Is(target error) bool {
	if e == nil {
		return false
	}
	t, ok := target.(*Error)
	if !ok || t == nil {
		return false
	}
	return e.Code == t.Code
}

// New creates a new Error instance.
func New(code string, status int, message string) *Error {
	return &Error{Code: code, Status: status, Message: message}
}

// Wrap attaches context to an existing error.
func Wrap(err error, code string, status int, message string) *Error {
	return &Error{Code: code, Status: status, Message: message, Err: err}
}

// Store failure kinds. Every storage operation fails with one of these.
var (
	ErrConnection       = New("CONNECTION_FAILURE", http.StatusServiceUnavailable, "store unavailable")
	ErrUniqueness       = New("UNIQUENESS_VIOLATION", http.StatusConflict, "record already exists")
	ErrReferential      = New("REFERENTIAL_VIOLATION", http.StatusConflict, "referenced record missing or already linked")
	ErrDomainConstraint = New("DOMAIN_CONSTRAINT_VIOLATION", http.StatusUnprocessableEntity, "value outside allowed domain")
	ErrNotFound         = New("NOT_FOUND", http.StatusNotFound, "resource not found")
)

// Facade errors.
var (
	ErrInvalidCredentials = New("INVALID_CREDENTIALS", http.StatusUnauthorized, "invalid username or password")
	ErrForbidden          = New("FORBIDDEN", http.StatusForbidden, "forbidden")
	ErrUnauthorized       = New("UNAUTHORIZED", http.StatusUnauthorized, "unauthorized")
	ErrValidation         = New("VALIDATION_ERROR", http.StatusBadRequest, "validation failed")
	ErrInternal           = New("INTERNAL_ERROR", http.StatusInternalServerError, "internal server error")
	ErrCacheMiss          = New("CACHE_MISS", http.StatusNotFound, "cache miss")
)

// FromError normalises any error into an *Error.
func FromError(err error) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return Wrap(err, ErrInternal.Code, ErrInternal.Status, ErrInternal.Message)
}

// Clone returns a copy of the error allowing for message overrides.
func Clone(err *Error, message string) *Error {
	if err == nil {
		return nil
	}
	clone := *err
	if message != "" {
		clone.Message = message
	}
	return &clone
}

// Kind wraps cause with the code and status of kind and the given message.
func Kind(kind *Error, cause error, message string) *Error {
	if message == "" {
		message = kind.Message
	}
	return Wrap(cause, kind.Code, kind.Status, message)
}
