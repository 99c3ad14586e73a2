package pubid

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownSeries indicates the series token of a parsed identifier
	// has no registry entry for its publisher, even after legacy-alias
	// normalization.
	ErrUnknownSeries = errors.New("unknown series")

	// ErrMalformedDocNumber indicates the remainder after series
	// resolution does not match the docnumber and qualifier grammar, or
	// the parsed fields violate a model invariant.
	ErrMalformedDocNumber = errors.New("malformed document number")

	// ErrInvalidModel indicates direct construction supplied fields that
	// violate a model invariant.
	ErrInvalidModel = errors.New("invalid identifier model")
)

// ParseError is the typed failure returned by Parse. It records the
// offending input and unwraps to its kind (ErrUnknownSeries or
// ErrMalformedDocNumber) for use with errors.Is.
type ParseError struct {
	kind   error
	input  string
	reason string
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse %q: %v: %s", e.input, e.kind, e.reason)
}

// Unwrap returns the error kind.
func (e *ParseError) Unwrap() error {
	return e.kind
}

// Input returns the input string that failed to parse.
func (e *ParseError) Input() string {
	return e.input
}

func unknownSeries(input, format string, args ...interface{}) *ParseError {
	return &ParseError{kind: ErrUnknownSeries, input: input, reason: fmt.Sprintf(format, args...)}
}

func malformed(input, format string, args ...interface{}) *ParseError {
	return &ParseError{kind: ErrMalformedDocNumber, input: input, reason: fmt.Sprintf(format, args...)}
}
