// Package errors provides structured error types for tapecut.
//
// Error codes are machine-readable and follow a hierarchical convention:
//   - INVALID_*: configuration validation failures
//   - NO_INPUT: nothing to generate
//   - FILE_NOT_FOUND: a requested input file is missing
//   - WRITE_FAILED: the drawing sink could not persist its output
//
// Configuration errors abort before any geometry work begins. Out-of-range
// data requests are deliberately not part of this taxonomy: the assembler
// pads with blank rows instead of failing, so joiner and trailer fragments
// can be cut from arbitrary offsets.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidLevel, "level %d out of range", level)
//	if errors.Is(err, errors.ErrCodeInvalidLevel) {
//	    // Handle validation error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeWriteFailed, origErr, "saving %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for the failure taxonomy.
const (
	// Configuration validation errors
	ErrCodeInvalidLevel    Code = "INVALID_LEVEL"
	ErrCodeInvalidSprocket Code = "INVALID_SPROCKET"
	ErrCodeInvalidSegment  Code = "INVALID_SEGMENT"
	ErrCodeInvalidParity   Code = "INVALID_PARITY"
	ErrCodeInvalidMode     Code = "INVALID_MODE"
	ErrCodeInvalidPath     Code = "INVALID_PATH"
	ErrCodeInvalidProfile  Code = "INVALID_PROFILE"

	// Input errors
	ErrCodeNoInput      Code = "NO_INPUT"
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

	// Output errors
	ErrCodeWriteFailed Code = "WRITE_FAILED"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
