// Package apperr defines the error taxonomy shared by all request handlers.
// Services return these typed errors; handlers map them to HTTP responses.
// Anything that is not an *Error is treated as unexpected and surfaces as a
// 500 with the root cause logged, never leaked to the caller.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an error for HTTP mapping
type Kind int

const (
	KindValidation Kind = iota + 1
	KindBadRequest
	KindNotFound
	KindConflict
	KindVersionConflict
	KindAlreadyDeleted
	KindInternal
)

// Error is a typed application error
type Error struct {
	Kind    Kind
	Message string
	// Fields carries per-field validation messages for KindValidation
	Fields map[string]string

	cause error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.cause
}

// Status returns the HTTP status code for the error kind
func (e *Error) Status() int {
	switch e.Kind {
	case KindValidation, KindBadRequest:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict, KindVersionConflict, KindAlreadyDeleted:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// New creates a typed error
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Newf creates a typed error with a formatted message
func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Validation creates a validation error carrying a field-error map
func Validation(fields map[string]string) *Error {
	return &Error{
		Kind:    KindValidation,
		Message: "Validation failed",
		Fields:  fields,
	}
}

// BadRequest creates a 400 error without field details
func BadRequest(message string) *Error {
	return New(KindBadRequest, message)
}

// NotFound creates a 404 error
func NotFound(message string) *Error {
	return New(KindNotFound, message)
}

// Conflict creates a 409 uniqueness-violation error
func Conflict(message string) *Error {
	return New(KindConflict, message)
}

// VersionConflict reports a stale optimistic-lock token
func VersionConflict() *Error {
	return New(KindVersionConflict, "Resource has been modified by another user")
}

// AlreadyDeleted reports a soft delete of an already-deleted record
func AlreadyDeleted(message string) *Error {
	return New(KindAlreadyDeleted, message)
}

// Internal wraps an unexpected error. The cause stays attached for logging
// but only the generic message is shown to the caller.
func Internal(cause error) *Error {
	return &Error{
		Kind:    KindInternal,
		Message: "Internal server error",
		cause:   cause,
	}
}

// From extracts an *Error from err, wrapping unexpected errors as Internal
func From(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return Internal(err)
}

// IsKind reports whether err is an *Error of the given kind
func IsKind(err error, kind Kind) bool {
	var appErr *Error
	return errors.As(err, &appErr) && appErr.Kind == kind
}
