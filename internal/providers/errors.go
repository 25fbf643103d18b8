package providers

import (
	"errors"
	"fmt"
)

// FailureClass tags an upstream failure so callers can branch without
// inspecting status codes or message text.
type FailureClass string

const (
	FailureTimeout     FailureClass = "timeout"
	FailureConnection  FailureClass = "connection_failure"
	FailureNotFound    FailureClass = "not_found"
	FailureServerError FailureClass = "server_error"
	FailureClientError FailureClass = "client_error"
	FailureUnknown     FailureClass = "unknown"
)

// Error is the typed failure returned by upstream clients. It carries the
// original status and message for diagnostics, but callers must branch on
// Class only.
type Error struct {
	Class      FailureClass
	Operation  string
	StatusCode int
	Message    string
	Err        error
}

func (e *Error) Error() string {
	msg := e.Message
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s: %s (status=%d, class=%s)", e.Operation, msg, e.StatusCode, e.Class)
	}
	return fmt.Sprintf("%s: %s (class=%s)", e.Operation, msg, e.Class)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Retryable reports whether the failure is worth another attempt: connection
// failures, timeouts, and the transient HTTP statuses.
func (e *Error) Retryable() bool {
	switch e.Class {
	case FailureTimeout, FailureConnection:
		return true
	}
	switch e.StatusCode {
	case 408, 429, 500, 502, 503, 504:
		return true
	}
	return false
}

// AsError attempts to unwrap an error into a providers.Error.
func AsError(err error) (*Error, bool) {
	var pErr *Error
	if errors.As(err, &pErr) {
		return pErr, true
	}
	return nil, false
}

// IsClass reports whether err is a providers.Error of the given class.
func IsClass(err error, class FailureClass) bool {
	if pErr, ok := AsError(err); ok {
		return pErr.Class == class
	}
	return false
}

// IsNotFound reports whether err represents an upstream 404.
func IsNotFound(err error) bool {
	return IsClass(err, FailureNotFound)
}

// MalformedPayloadError reports a payload whose required top-level shape is
// violated, whether the body fails to decode at all or decodes without the
// required roots. Missing optional substructures never produce this.
type MalformedPayloadError struct {
	Reason string
}

func (e *MalformedPayloadError) Error() string {
	return "malformed upstream payload: " + e.Reason
}
