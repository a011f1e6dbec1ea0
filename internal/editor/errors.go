package editor

import (
	"errors"
	"fmt"
)

// Errors returned while parsing or executing commands. All of them end the session.
var (
	// ErrUnsupportedOperation indicates an unrecognized operation token.
	ErrUnsupportedOperation = errors.New("unsupported operation")

	// ErrMalformedArgument indicates a missing or non-integer argument.
	ErrMalformedArgument = errors.New("malformed argument")

	// ErrDeleteUnderflow indicates a delete count larger than the buffer.
	ErrDeleteUnderflow = errors.New("delete count exceeds buffer length")

	// ErrIndexOutOfRange indicates a print position outside [1, len].
	ErrIndexOutOfRange = errors.New("position out of range")
)

// ParseError records the raw input that failed to parse.
type ParseError struct {
	Line  string // The raw command line
	Token string // The operation token
	Err   error  // ErrUnsupportedOperation or ErrMalformedArgument
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %q: %v (operation %q)", e.Line, e.Err, e.Token)
}

func (e *ParseError) Unwrap() error { return e.Err }
