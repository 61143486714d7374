// Released under an MIT license. See LICENSE.

package frac

import (
	"errors"
	"strconv"
	"strings"
)

// Errors returned by functions in this package.
var (
	ErrDenominatorOverflow = errors.New("denominator overflow")
	ErrDivisionByZero      = errors.New("division by zero")
	ErrInvalidOperandType  = errors.New("invalid operand type")
	ErrNumeratorOverflow   = errors.New("numerator overflow")
)

// SyntaxError describes malformed fraction text.
type SyntaxError struct {
	Input  string // The text being parsed.
	Offset int    // Byte offset of the failure.
	Reason string

	err error // Underlying error kind, if any.
}

// Caret renders the input with a pointer at the failing offset.
// It is a presentation aid for diagnostics.
func (e *SyntaxError) Caret() string {
	return e.Input + "\n" + strings.Repeat(" ", e.Offset) + "^"
}

// Error returns a description of the failure and where it happened.
func (e *SyntaxError) Error() string {
	return "syntax error at offset " + strconv.Itoa(e.Offset) + ": " + e.Reason
}

// Unwrap returns the error kind underlying the syntax error, if any, so
// that errors.Is can see through parse failures caused by a zero
// denominator or an out of range integer.
func (e *SyntaxError) Unwrap() error {
	return e.err
}
