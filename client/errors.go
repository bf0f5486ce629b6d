package client

import (
	"errors"
	"fmt"
)

// Code classifies transport client errors.
type Code int

const (
	// CodeConnection indicates a connection failure (refused, DNS, broken pipe).
	CodeConnection Code = iota
	// CodeTimeout indicates the request context expired.
	CodeTimeout
	// CodeValidation indicates a client-side request construction failure.
	CodeValidation
	// CodeRequestFailed indicates a non-success HTTP status.
	CodeRequestFailed
)

// String returns the code name.
func (c Code) String() string {
	switch c {
	case CodeConnection:
		return "connection"
	case CodeTimeout:
		return "timeout"
	case CodeValidation:
		return "validation"
	case CodeRequestFailed:
		return "request_failed"
	default:
		return "unknown"
	}
}

// Error is a structured transport error.
type Error struct {
	// Code classifies the error.
	Code Code
	// StatusCode is the HTTP status code (0 for connection-level errors).
	StatusCode int
	// Message describes the error.
	Message string
	// Body is the response body, when one was received.
	Body []byte
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("client: %s (HTTP %d): %s", e.Code, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("client: %s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// newConnectionError wraps a transport-level failure.
func newConnectionError(err error) *Error {
	return &Error{Code: CodeConnection, Message: err.Error(), Err: err}
}

// newTimeoutError wraps a context expiry.
func newTimeoutError(err error) *Error {
	return &Error{Code: CodeTimeout, Message: err.Error(), Err: err}
}

// newValidationError reports a request that could not be constructed.
func newValidationError(msg string) *Error {
	return &Error{Code: CodeValidation, Message: msg}
}

// newRequestFailedError reports a non-success HTTP status.
func newRequestFailedError(statusCode int, body []byte) *Error {
	return &Error{
		Code:       CodeRequestFailed,
		StatusCode: statusCode,
		Message:    fmt.Sprintf("HTTP %d", statusCode),
		Body:       body,
	}
}

// IsRequestFailed checks if an error is a non-success status failure.
func IsRequestFailed(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == CodeRequestFailed
}

// IsConnection checks if an error is a connection failure.
func IsConnection(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == CodeConnection
}

// IsTimeout checks if an error is a context expiry.
func IsTimeout(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == CodeTimeout
}

// StatusCode returns the HTTP status carried by a request failure, or 0.
func StatusCode(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.StatusCode
	}
	return 0
}
