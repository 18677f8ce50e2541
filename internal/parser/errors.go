package parser

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyValue means a key line had nothing after its colon.
	ErrEmptyValue = errors.New("empty value")
	// ErrInvalidValue means a value was neither a boolean nor a quoted string.
	ErrInvalidValue = errors.New("invalid value")
	// ErrUnterminatedString means a quoted value never closed.
	ErrUnterminatedString = errors.New("unterminated string")
	// ErrUnbalancedPath means an object was closed with no open object.
	ErrUnbalancedPath = errors.New("unbalanced path")
)

// ValueError carries the fragment that failed to scan.
type ValueError struct {
	Err      error
	Fragment string
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("%v: %s", e.Err, e.Fragment)
}

func (e *ValueError) Unwrap() error { return e.Err }

// LineError tags a parse failure with its 1-based line number and raw text.
type LineError struct {
	Line int
	Text string
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v (%q)", e.Line, e.Err, e.Text)
}

func (e *LineError) Unwrap() error { return e.Err }
