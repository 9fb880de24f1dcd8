// Package apperr defines the coded errors shared by stores, services and handlers.
package apperr

import (
	"errors"
	"net/http"
)

// Code classifies an error for the HTTP layer.
type Code string

const (
	CodeValidation      Code = "validation"
	CodeNotFound        Code = "not_found"
	CodeForbidden       Code = "forbidden"
	CodeConflict        Code = "conflict"
	CodeUnauthenticated Code = "unauthenticated"
	CodeInternal        Code = "internal"
)

// Error carries a code, a client-facing message and the wrapped cause.
type Error struct {
	Code    Code
	Message string
	Fields  map[string]string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New returns an Error with the given code.
func New(code Code, message string, err error) *Error {
	return &Error{Code: code, Message: message, Err: err}
}

// Validation returns a validation error with per-field messages.
func Validation(message string, fields map[string]string) *Error {
	return &Error{Code: CodeValidation, Message: message, Fields: fields}
}

// NotFound is shorthand for New(CodeNotFound, message, nil).
func NotFound(message string) *Error {
	return New(CodeNotFound, message, nil)
}

// Forbidden is shorthand for New(CodeForbidden, message, nil).
func Forbidden(message string) *Error {
	return New(CodeForbidden, message, nil)
}

// Internal wraps an unexpected failure.
func Internal(message string, err error) *Error {
	return New(CodeInternal, message, err)
}

// CodeOf returns the code of the first *Error in err's chain, or CodeInternal.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeInternal
}

// Is reports whether err carries the given code.
func Is(err error, code Code) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == code
}

// HTTPStatus maps err to a response status code.
func HTTPStatus(err error) int {
	switch CodeOf(err) {
	case CodeValidation:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	case CodeForbidden:
		return http.StatusForbidden
	case CodeConflict:
		return http.StatusConflict
	case CodeUnauthenticated:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// Message returns the client-facing message. Internal errors never expose their cause.
func Message(err error) string {
	var e *Error
	if !errors.As(err, &e) {
		return "Internal server error"
	}
	return e.Message
}
