// Package apperr provides standardized domain error types for the application.
// Workflow services return these typed errors, and the HTTP layer maps them
// to appropriate responses.
package apperr

import (
	"fmt"
	"net/http"
)

// Kind represents the category of error.
type Kind int

const (
	// KindUnknown is the default error kind when none is specified.
	KindUnknown Kind = iota
	// KindValidation indicates invalid input data, rejected before any
	// remote call was made.
	KindValidation
	// KindGateway indicates the commerce back office returned a non-success
	// response or a userErrors payload.
	KindGateway
	// KindTransport indicates a network-level failure on an outbound HTTP call.
	KindTransport
	// KindBadRequest indicates a malformed or invalid request.
	KindBadRequest
	// KindInternal indicates an unexpected internal error.
	KindInternal
)

// Error is a domain error with a typed Kind for HTTP mapping.
// Op names the workflow stage that failed; because the remote chain has no
// rollback, the stage tells an operator exactly which side effects already
// landed upstream.
type Error struct {
	Kind    Kind
	Message string
	Op      string // Workflow stage that failed (optional)
	Err     error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Message)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *Error) Unwrap() error {
	return e.Err
}

// HTTPStatus returns the appropriate HTTP status code for this error kind.
func (e *Error) HTTPStatus() int {
	switch e.Kind {
	case KindValidation, KindBadRequest:
		return http.StatusBadRequest
	case KindGateway, KindTransport, KindInternal:
		return http.StatusInternalServerError
	default:
		return http.StatusBadRequest
	}
}

// New creates a new domain error with the given kind and message.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap creates a new domain error wrapping an existing error.
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// WithOp returns the error with the workflow stage set.
func (e *Error) WithOp(op string) *Error {
	e.Op = op
	return e
}

// Convenience constructors for common error types.

// Validation creates a validation error.
func Validation(message string) *Error {
	return New(KindValidation, message)
}

// Gateway creates a gateway error wrapping the upstream failure.
func Gateway(message string, err error) *Error {
	return Wrap(KindGateway, message, err)
}

// Transport creates a transport error wrapping the network failure.
func Transport(message string, err error) *Error {
	return Wrap(KindTransport, message, err)
}

// BadRequest creates a bad request error.
func BadRequest(message string) *Error {
	return New(KindBadRequest, message)
}

// Internal creates an internal server error.
func Internal(message string) *Error {
	return New(KindInternal, message)
}

// GetKind extracts the error kind from an error.
// Returns KindUnknown if the error is not an *Error.
func GetKind(err error) Kind {
	if e, ok := err.(*Error); ok {
		return e.Kind
	}
	return KindUnknown
}

// Is checks if err is an *Error with the given kind.
func Is(err error, kind Kind) bool {
	return GetKind(err) == kind
}

// Stage extracts the workflow stage from an error, if it is a typed *Error.
func Stage(err error) string {
	if e, ok := err.(*Error); ok {
		return e.Op
	}
	return ""
}
