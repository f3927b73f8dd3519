package pointer

import "errors"

var (
	// ErrMalformedToken indicates a cooked reference token with a bad escape sequence.
	ErrMalformedToken = errors.New("pointer: malformed token")

	// ErrMalformedPointer indicates pointer text that does not follow the `/token` syntax.
	ErrMalformedPointer = errors.New("pointer: malformed pointer")

	// ErrNullInput indicates a required argument was nil.
	ErrNullInput = errors.New("pointer: null input")
)
