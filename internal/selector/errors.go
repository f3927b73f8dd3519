package selector

import (
	"errors"
)

// ErrInvalidInput indicates an empty or unparsable JSONPath expression.
// It supports wrapping and can be checked using errors.Is().
var ErrInvalidInput = errors.New("selector: invalid input")
