package shortformat

import (
	"errors"
	"fmt"
)

// ErrorType represents the category of a parse failure.
type ErrorType string

const (
	// ErrTypeIO covers unreadable or missing source files.
	ErrTypeIO ErrorType = "IO"
	// ErrTypeFormat covers structural violations of the short format:
	// malformed header block, unresolved header references, row/column
	// count mismatches, and invalid numeric content.
	ErrTypeFormat ErrorType = "FORMAT"
)

// ParseError is the error type returned by every parsing operation.
// Line and Column are 1-based positions in the source file and are zero
// when the failure is not tied to a specific position.
type ParseError struct {
	Type    ErrorType
	Message string
	Line    int
	Column  int
	Cause   error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	msg := fmt.Sprintf("[%s] %s", e.Type, e.Message)
	switch {
	case e.Line > 0 && e.Column > 0:
		msg = fmt.Sprintf("%s (line %d, column %d)", msg, e.Line, e.Column)
	case e.Line > 0:
		msg = fmt.Sprintf("%s (line %d)", msg, e.Line)
	case e.Column > 0:
		msg = fmt.Sprintf("%s (column %d)", msg, e.Column)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

// Unwrap allows errors.Is and errors.As to reach the cause.
func (e *ParseError) Unwrap() error {
	return e.Cause
}

// WithPosition attaches the implicated source position to the error.
func (e *ParseError) WithPosition(line, column int) *ParseError {
	e.Line = line
	e.Column = column
	return e
}

// NewIOError creates an IO-category parse error.
func NewIOError(message string, cause error) *ParseError {
	return &ParseError{Type: ErrTypeIO, Message: message, Cause: cause}
}

// NewFormatError creates a format-category parse error.
func NewFormatError(message string, cause error) *ParseError {
	return &ParseError{Type: ErrTypeFormat, Message: message, Cause: cause}
}

// IsFormatError reports whether err is (or wraps) a format violation.
func IsFormatError(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe) && pe.Type == ErrTypeFormat
}

// IsIOError reports whether err is (or wraps) a source read failure.
func IsIOError(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe) && pe.Type == ErrTypeIO
}
