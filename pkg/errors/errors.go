// Package errors provides structured error types for the autolayout module.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the constraint builder, the reference
//     solver and the CLI
//   - Machine-readable error codes for programmatic handling
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Structural misuse of the constraint API (elements without a shared
// ancestor, too few elements for a distribution, attributes outside the
// closed vocabulary) is never retryable. Solver rejections are propagated
// unmodified as the Cause of a SOLVER_REJECTED error.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeNoCommonAncestor, "%v and %v share no ancestor", a, b)
//	if errors.Is(err, errors.ErrCodeNoCommonAncestor) {
//	    // Handle structural error
//	}
//
//	// Wrap a solver error
//	err := errors.Wrap(errors.ErrCodeSolverRejected, cause, "install %s", desc)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Structural errors raised by the constraint builder
	ErrCodeNoCommonAncestor     Code = "NO_COMMON_ANCESTOR"
	ErrCodeInsufficientElements Code = "INSUFFICIENT_ELEMENTS"
	ErrCodeUnmappedAttribute    Code = "UNMAPPED_ATTRIBUTE"
	ErrCodeInvalidAlignment     Code = "INVALID_ALIGNMENT"

	// Solver errors
	ErrCodeSolverRejected Code = "SOLVER_REJECTED"
	ErrCodeUnsatisfiable  Code = "UNSATISFIABLE"

	// Input validation errors
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidConfig Code = "INVALID_CONFIG"
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"

	// Resource not found errors
	ErrCodeNotFound    Code = "NOT_FOUND"
	ErrCodeUnknownDemo Code = "UNKNOWN_DEMO"

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
