package pointer

import (
	"fmt"
	"strings"
)

const separator = '/'

// ParseTokens splits pointer text into reference tokens.
// The empty string is the root and yields no tokens; any other input must
// start with '/'. Empty segments are legal and produce empty tokens.
func ParseTokens(input string) ([]Token, error) {
	if input == "" {
		return nil, nil
	}

	if input[0] != separator {
		return nil, fmt.Errorf("%w: not a slash: %q", ErrMalformedPointer, input)
	}

	segments := strings.Split(input[1:], string(separator))
	tokens := make([]Token, 0, len(segments))

	for _, segment := range segments {
		token, err := FromCooked(segment)
		if err != nil {
			return nil, fmt.Errorf("parse %q: %w", input, err)
		}
		tokens = append(tokens, token)
	}

	return tokens, nil
}
