// Package layouterr provides structured error types for the boxlay library.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the library and CLI
//   - Machine-readable error codes for programmatic handling
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Error codes fall into three classes:
//   - INVALID_*: value validation failures (percent range, NaN length,
//     zero grid line or span)
//   - Structural: tree misuse reported by the layout engine
//     (CHILD_INDEX_OUT_OF_BOUNDS, INVALID_PARENT_NODE, ...)
//   - INVALID_NODE_ID: a stale or foreign node handle
//
// # Usage
//
//	err := layouterr.New(layouterr.CodeInvalidPercent, "percent must be in [0, 1], got %v", v)
//	if layouterr.Is(err, layouterr.CodeInvalidPercent) {
//	    // handle validation error
//	}
//
//	// Catch whole classes
//	if layouterr.IsInvalidValue(err) { ... }
//	if layouterr.IsMissingKey(err) { ... }
//
//	// Single-catch for anything raised by this library
//	var lerr *layouterr.Error
//	if errors.As(err, &lerr) { ... }
package layouterr

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for the library's failure modes.
const (
	// Value validation errors
	CodeInvalidPercent  Code = "INVALID_PERCENT"
	CodeInvalidLength   Code = "INVALID_LENGTH"
	CodeInvalidGridLine Code = "INVALID_GRID_LINE"
	CodeInvalidGridSpan Code = "INVALID_GRID_SPAN"

	// Tree structural errors, translated verbatim from the engine
	CodeChildIndexOutOfBounds Code = "CHILD_INDEX_OUT_OF_BOUNDS"
	CodeInvalidParentNode     Code = "INVALID_PARENT_NODE"
	CodeInvalidChildNode      Code = "INVALID_CHILD_NODE"
	CodeInvalidInputNode      Code = "INVALID_INPUT_NODE"

	// Stale or foreign node handles
	CodeInvalidNodeID Code = "INVALID_NODE_ID"

	// Host measure-callback failure surfaced from ComputeLayout
	CodeMeasure Code = "MEASURE"

	// Unexpected engine panics with unrecognised payloads
	CodeInternal Code = "INTERNAL_ERROR"
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

// IsInvalidValue reports whether err carries one of the value-validation
// codes (INVALID_PERCENT, INVALID_LENGTH, INVALID_GRID_LINE,
// INVALID_GRID_SPAN).
func IsInvalidValue(err error) bool {
	switch GetCode(err) {
	case CodeInvalidPercent, CodeInvalidLength, CodeInvalidGridLine, CodeInvalidGridSpan:
		return true
	}
	return false
}

// IsMissingKey reports whether err indicates a lookup with a stale or
// foreign key. Today that is only INVALID_NODE_ID, but callers should use
// this predicate rather than matching the code so that future key-indexed
// surfaces stay catchable in one place.
func IsMissingKey(err error) bool {
	return GetCode(err) == CodeInvalidNodeID
}

// ChildIndexError provides the index and bound for out-of-range child
// access. It is stored as the Cause of a CHILD_INDEX_OUT_OF_BOUNDS Error.
type ChildIndexError struct {
	ChildIndex int // requested index
	ChildCount int // number of children the parent actually has
}

// Error implements the error interface.
func (e *ChildIndexError) Error() string {
	return fmt.Sprintf("child index %d out of bounds (child count: %d)", e.ChildIndex, e.ChildCount)
}

// ChildIndexOutOfBounds builds the structural error for a bad child index,
// preserving the index and count for programmatic access via errors.As.
func ChildIndexOutOfBounds(index, count int) *Error {
	detail := &ChildIndexError{ChildIndex: index, ChildCount: count}
	return &Error{
		Code:    CodeChildIndexOutOfBounds,
		Message: detail.Error(),
		Cause:   detail,
	}
}
