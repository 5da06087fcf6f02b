package parser

import (
	"errors"
	"fmt"
)

// Errors reported in strict mode. ErrDepthExceeded is the one error that
// applies in every mode.
var (
	ErrUnexpectedChar    = errors.New("unexpected character")
	ErrMalformedNumber   = errors.New("malformed number")
	ErrUnbalancedClose   = errors.New("unbalanced close parenthesis")
	ErrUnterminatedGroup = errors.New("unterminated group")
	ErrDepthExceeded     = errors.New("maximum nesting depth exceeded")
)

// ParseError wraps one of the sentinel errors together with the byte
// offset of the offending input.
type ParseError struct {
	Err    error
	Offset int
}

func newParseError(err error, off int) *ParseError {
	return &ParseError{Err: err, Offset: off}
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%v (at offset %d)", e.Err, e.Offset)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
