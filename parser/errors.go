package parser

import (
	"errors"
	"fmt"
)

// ErrMalformedInput is reported if the input ends in the middle of a
// construct or leaves elements unclosed.
var ErrMalformedInput = errors.New("malformed input")

// ErrNestingTooDeep is reported if elements are nested deeper than the
// configured maximum depth. It wraps ErrMalformedInput.
var ErrNestingTooDeep = fmt.Errorf("%w: nesting too deep", ErrMalformedInput)

// ErrUnmatchedClosingTag is recorded as a diagnostic for a closing tag
// without a corresponding open element. It is never returned by Parse.
var ErrUnmatchedClosingTag = errors.New("unmatched closing tag")

// Error is the error type returned from Parse. It carries the byte offset
// at which the problem was detected.
type Error struct {
	Offset int64
	Msg    string
	Err    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("html parser: %v at offset %d: %s", e.Err, e.Offset, e.Msg)
}

// Unwrap makes Error work with errors.Is.
func (e *Error) Unwrap() error {
	return e.Err
}

// Diagnostic is a recoverable condition met during parsing.
type Diagnostic struct {
	Offset int64  // byte offset within the input
	Name   string // element name involved, if any
	Err    error
}

func (d Diagnostic) Error() string {
	return fmt.Sprintf("offset %d: %v </%s>", d.Offset, d.Err, d.Name)
}
