package jsontok

import (
	"errors"
	"fmt"
)

var (
	ErrSyntax        = errors.New("jsontok: syntax error")
	ErrTrailingInput = errors.New("jsontok: trailing input detected")
)

// Location is a position in the input. Line and Column are 1-based;
// Offset counts bytes from the start of the input.
type Location struct {
	Line   int
	Column int
	Offset int64
}

func (l Location) String() string {
	return fmt.Sprintf("line %d, column %d", l.Line, l.Column)
}

// Error reports malformed input together with the location of the end of
// the last token that was read successfully.
type Error struct {
	Msg      string
	Location Location
	Err      error
}

func newError(msg string, loc Location, err error) *Error {
	return &Error{Msg: msg, Location: loc, Err: err}
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s (last valid location: %s)", e.Msg, e.Location)
}

func (e *Error) Unwrap() error {
	return e.Err
}
