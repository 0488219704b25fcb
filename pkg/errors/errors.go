// Package errors provides structured error types for squiggly.
//
// Every failure in the transform and rendering layers is an [*Error]
// carrying a [Code]. Callers branch on the code with [Is] and show people
// [UserMessage]; [Code.IsInput] separates bad input from internal failures.
//
// # Error Codes
//
// Error codes fall into three groups:
//   - SHAPE_VALIDATION: series too short, mismatched lengths, non-finite values
//   - CONFIGURATION, INVALID_*: out-of-domain parameters, formats, themes
//   - NUMERIC_DEGENERACY, INTERNAL_*: computations that cannot proceed
//
// # Usage
//
//	err := errs.New(errs.ErrCodeShapeValidation, "need at least %d points, got %d", 4, n)
//	if errs.Is(err, errs.ErrCodeShapeValidation, errs.ErrCodeConfiguration) {
//	    // reject the request
//	}
//
//	err = errs.Wrap(errs.ErrCodeInternal, cause, "encode %s", format)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input
	ErrCodeShapeValidation Code = "SHAPE_VALIDATION"
	ErrCodeConfiguration   Code = "CONFIGURATION"
	ErrCodeInvalidFormat   Code = "INVALID_FORMAT"
	ErrCodeInvalidTheme    Code = "INVALID_THEME"

	// Computation
	ErrCodeNumericDegeneracy Code = "NUMERIC_DEGENERACY"

	// Internal
	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
)

// IsInput reports whether c describes a problem with the caller's input
// (data shape, parameters, formats, themes) rather than a failure inside
// squiggly.
func (c Code) IsInput() bool {
	switch c {
	case ErrCodeShapeValidation, ErrCodeConfiguration, ErrCodeInvalidFormat, ErrCodeInvalidTheme:
		return true
	}
	return false
}

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.Cause }

// New creates an Error with a formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap creates an Error around cause.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// Is reports whether the outermost *Error in err's chain carries one of codes.
func Is(err error, codes ...Code) bool {
	got := GetCode(err)
	if got == "" {
		return false
	}
	for _, c := range codes {
		if c == got {
			return true
		}
	}
	return false
}

// GetCode returns the code of the outermost *Error in err's chain, or "".
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage renders err for people: codes are dropped and the messages
// of nested causes are joined with ": ".
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if !errors.As(err, &e) {
		return err.Error()
	}
	if e.Cause == nil {
		return e.Message
	}
	return e.Message + ": " + UserMessage(e.Cause)
}
