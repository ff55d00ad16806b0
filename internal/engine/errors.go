package engine

import (
	"errors"
	"fmt"
)

// ErrorCode categorizes engine errors.
type ErrorCode string

const (
	// ErrCodeNotFound indicates a get on an absent key.
	ErrCodeNotFound ErrorCode = "NOT_FOUND"

	// ErrCodeStorage indicates an I/O failure at the backend, including a
	// lock not obtained within the busy timeout.
	ErrCodeStorage ErrorCode = "STORAGE_IO"

	// ErrCodeConfig indicates an unusable or malformed store-location
	// signal. Fatal at start-up.
	ErrCodeConfig ErrorCode = "CONFIG"

	// ErrCodeInput indicates a set with no value argument and no input
	// bytes available.
	ErrCodeInput ErrorCode = "INPUT"
)

// Error is an engine operation failure. None of these are recovered
// internally; the engine reports them and the operation terminates.
type Error struct {
	// Code identifies the error category.
	Code ErrorCode

	// Message is a human-readable description.
	Message string

	// Err is the underlying error, when any.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// IsNotFound reports whether err is a missing-key error.
// Uses errors.As to handle wrapped errors.
func IsNotFound(err error) bool {
	return hasCode(err, ErrCodeNotFound)
}

// IsConfig reports whether err is a configuration error.
func IsConfig(err error) bool {
	return hasCode(err, ErrCodeConfig)
}

// IsInput reports whether err is a missing-input error.
func IsInput(err error) bool {
	return hasCode(err, ErrCodeInput)
}

func hasCode(err error, code ErrorCode) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// NewNotFoundError creates an Error for a get on an absent key.
func NewNotFoundError(externalKey string, err error) *Error {
	return &Error{
		Code:    ErrCodeNotFound,
		Message: fmt.Sprintf("key %q not found", externalKey),
		Err:     err,
	}
}

// NewConfigError wraps a configuration resolution failure.
func NewConfigError(err error) *Error {
	return &Error{Code: ErrCodeConfig, Message: "resolve configuration", Err: err}
}

// NewInputError creates an Error for a set with no value available.
func NewInputError(message string) *Error {
	return &Error{Code: ErrCodeInput, Message: message}
}

// wrapStorageError wraps a backend failure with the operation that hit it.
func wrapStorageError(op string, err error) *Error {
	return &Error{Code: ErrCodeStorage, Message: op, Err: err}
}
