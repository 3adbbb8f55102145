// Package errors provides structured error types for canort.
//
// Every failure raised while building or querying a canopy carries a
// machine-readable [Code] so that callers (the CLI, an RT engine, tests) can
// branch on the kind of failure without parsing messages:
//
//   - INVALID_PARAMETER: a numeric field violates its physical constraint
//   - INVALID_TYPE: a supplied value is not a finite number
//   - LENGTH_MISMATCH: parallel parameter arrays differ in length
//   - EMPTY_CANOPY: zero layers supplied to canopy construction
//   - OUT_OF_RANGE: an index or elevation query falls outside the canopy
//
// Errors raised while validating a single field record the field name, and
// errors raised while building from parameter arrays also record the element
// index, so a malformed input array can be located quickly.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidParameter, "thickness must be positive, got %g", t)
//	if errors.Is(err, errors.ErrCodeInvalidParameter) {
//	    // Handle validation error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeInvalidConfig, origErr, "decode %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Model construction and query errors
	ErrCodeInvalidParameter Code = "INVALID_PARAMETER"
	ErrCodeInvalidType      Code = "INVALID_TYPE"
	ErrCodeLengthMismatch   Code = "LENGTH_MISMATCH"
	ErrCodeEmptyCanopy      Code = "EMPTY_CANOPY"
	ErrCodeOutOfRange       Code = "OUT_OF_RANGE"

	// Configuration errors
	ErrCodeInvalidConfig Code = "INVALID_CONFIG"
	ErrCodeFileNotFound  Code = "FILE_NOT_FOUND"

	// Internal errors
	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
)

// NoIndex marks an error that is not tied to an element of a parameter array.
const NoIndex = -1

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Field   string // Offending parameter, if any (e.g. "thickness")
	Index   int    // Offending array element, or NoIndex
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := e.Message
	if loc := e.location(); loc != "" {
		msg = loc + ": " + msg
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, msg, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, msg)
}

func (e *Error) location() string {
	switch {
	case e.Field != "" && e.Index != NoIndex:
		return fmt.Sprintf("%s[%d]", e.Field, e.Index)
	case e.Field != "":
		return e.Field
	case e.Index != NoIndex:
		return fmt.Sprintf("[%d]", e.Index)
	}
	return ""
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
		Index:   NoIndex,
	}
}

// Field creates a new Error attributed to the named parameter.
func Field(code Code, field string, format string, args ...any) *Error {
	e := New(code, format, args...)
	e.Field = field
	return e
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Index:   NoIndex,
		Cause:   cause,
	}
}

// AtIndex returns a copy of err located at element i of the named parameter
// array. The code and message are preserved. Errors that are not an *Error
// are wrapped as ErrCodeInternal so the location is never lost.
func AtIndex(err error, field string, i int) error {
	if err == nil {
		return nil
	}
	var e *Error
	if !errors.As(err, &e) {
		return &Error{Code: ErrCodeInternal, Message: "unexpected failure", Field: field, Index: i, Cause: err}
	}
	located := *e
	located.Field = field
	located.Index = i
	return &located
}

// Prefix returns a copy of err whose field is qualified by prefix, as in
// "soil.moisture" or "canopy.layer[2].thickness". Errors that are not an
// *Error are returned unchanged.
func Prefix(err error, prefix string) error {
	var e *Error
	if !errors.As(err, &e) {
		return err
	}
	located := *e
	if located.Field == "" {
		located.Field = prefix
	} else {
		located.Field = prefix + "." + located.Field
	}
	return &located
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
// For *Error types, returns the located message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		if loc := e.location(); loc != "" {
			return loc + ": " + e.Message
		}
		return e.Message
	}
	return err.Error()
}
