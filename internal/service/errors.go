package service

import (
	"fmt"
	"net/http"
)

// AppError is an application-level error carrying a machine code, a
// client-facing message, the HTTP status to respond with and the wrapped
// cause. The REST surface knows two kinds: validation failures (400, static
// message) and everything else (500, raw upstream message).
type AppError struct {
	Code    string
	Message string
	Status  int
	Err     error
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap exposes the cause for errors.Is/As.
func (e *AppError) Unwrap() error {
	return e.Err
}

// ErrBadRequest builds an AppError for validation failures and malformed
// client requests.
func ErrBadRequest(msg string) *AppError {
	return &AppError{
		Code:    "BAD_REQUEST",
		Message: msg,
		Status:  http.StatusBadRequest,
	}
}

// ErrUpstream wraps any downstream failure — resolution, Graph API, identity
// or transport — into a 500 carrying the raw error message. No distinction is
// made between these kinds and nothing is retried.
func ErrUpstream(err error) *AppError {
	return &AppError{
		Code:    "INTERNAL",
		Message: err.Error(),
		Status:  http.StatusInternalServerError,
		Err:     err,
	}
}
