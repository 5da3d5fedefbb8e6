package acf

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

// Predefined errors (sentinel values).
//
// The first five are grammar errors: every fatal condition in the tokenizer
// and parser maps to exactly one of them. ErrRead is the distinct I/O error
// kind used by the file- and reader-based entry points. The remaining
// sentinels belong to the query layer.
var (
	ErrUnterminatedString  = NewError("unterminated string literal")
	ErrUnexpectedToken     = NewError("unexpected token")
	ErrUnmatchedOpenBrace  = NewError("unmatched opening brace")
	ErrUnmatchedCloseBrace = NewError("unmatched closing brace")
	ErrUnexpectedEOF       = NewError("unexpected end of input")
	ErrRead                = NewError("failed to read input")
	ErrQueryCompile        = NewError("query compilation failed")
	ErrQueryEvaluate       = NewError("query evaluation failed")
)

// Position identifies a location in ACF source text.
// Offset is a 0-based byte offset; Line and Column are 1-based.
type Position struct {
	Offset int
	Line   int
	Column int
}

// String returns the position in human-readable form.
func (p Position) String() string {
	return fmt.Sprintf("line %d, column %d", p.Line, p.Column)
}

// LogValue implements slog.LogValuer.
func (p Position) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("offset", p.Offset),
		slog.Int("line", p.Line),
		slog.Int("column", p.Column),
	)
}

// Error represents a parse or I/O error with an optional source position and
// structured logging attributes. It implements both error and slog.LogValuer.
type Error struct {
	msg   string
	err   error       // Wrapped error (for errors.Unwrap)
	pos   *Position   // Source position, if known
	attrs []slog.Attr // Attributes for structured logging
}

// NewError creates a new Error with a message.
func NewError(msg string) *Error {
	return &Error{msg: msg}
}

// WrapError wraps a standard error into an Error.
func WrapError(err error) *Error {
	ee := &Error{}
	if errors.As(err, &ee) {
		return ee
	}

	return &Error{err: err}
}

// Error implements the error interface.
func (e *Error) Error() string {
	// Build error message using the first available format,
	// depending on which fields are set:
	//
	//   1. "<msg> at <pos>: <err>" // all fields set
	//   2. "<msg>: <err>"          // no position
	//   3. "<msg> at <pos>"        // no wrapped error
	//   4. "<msg>"                 // message only
	part := make([]string, 0, 2)

	if e.msg != "" {
		msg := e.msg
		if e.pos != nil {
			msg += " at " + e.pos.String()
		}

		part = append(part, msg)
	}

	if e.err != nil {
		part = append(part, e.err.Error())
	}

	return strings.Join(part, ": ")
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *Error) Unwrap() error { return e.err }

// Is reports whether target is the same error kind.
// Derived errors (via Wrap, With, or WithPosition) match their sentinel.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)

	return ok && e.msg == t.msg
}

// Position returns the source position of the error, if known.
func (e *Error) Position() (Position, bool) {
	if e.pos == nil {
		return Position{}, false
	}

	return *e.pos, true
}

// LogValue implements slog.LogValuer for rich structured logging.
func (e *Error) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(e.attrs)+3)

	if e.msg != "" {
		attrs = append(attrs, slog.String("error", e.msg))
	}

	if e.pos != nil {
		attrs = append(attrs, slog.Any("position", *e.pos))
	}

	if e.err != nil {
		attrs = append(attrs, slog.String("cause", e.err.Error()))
	}

	return slog.GroupValue(append(attrs, e.attrs...)...)
}

// Wrap creates a new Error wrapping another error.
func (e *Error) Wrap(err error) *Error {
	return &Error{
		msg:   e.msg,
		err:   err,
		pos:   e.pos,
		attrs: e.attrs, // Share attrs
	}
}

// With adds attributes to the error for structured logging.
// This creates a new Error instance to maintain immutability.
func (e *Error) With(attrs ...slog.Attr) *Error {
	newAttrs := make([]slog.Attr, len(e.attrs)+len(attrs))
	copy(newAttrs, e.attrs)
	copy(newAttrs[len(e.attrs):], attrs)

	return &Error{
		msg:   e.msg,
		err:   e.err,
		pos:   e.pos,
		attrs: newAttrs,
	}
}

// WithPosition attaches a source position to the error.
// This creates a new Error instance to maintain immutability.
func (e *Error) WithPosition(pos Position) *Error {
	return &Error{
		msg:   e.msg,
		err:   e.err,
		pos:   &pos,
		attrs: e.attrs,
	}
}
