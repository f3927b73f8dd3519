package pointer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
)

const escape = '~'

var encoder = strings.NewReplacer("~", "~0", "/", "~1")

// Token is a single reference token.
// Raw is the decoded text used for lookups; Cooked is the escaped text used
// when rendering a pointer. Two tokens are equal when their raw text is.
type Token struct {
	raw    string
	cooked string
}

// FromRaw builds a token from decoded text. It never fails.
func FromRaw(raw string) Token {
	return Token{raw: raw, cooked: encoder.Replace(raw)}
}

// FromCooked builds a token from escaped text, where "~0" stands for '~' and
// "~1" for '/'. The cooked form of the result is always the canonical
// encoding of its raw form.
func FromCooked(cooked string) (Token, error) {
	raw, err := decode(cooked)
	if err != nil {
		return Token{}, err
	}

	return Token{raw: raw, cooked: encoder.Replace(raw)}, nil
}

// FromIndex builds a token holding the decimal rendering of i.
func FromIndex(i int) Token {
	s := strconv.Itoa(i)
	return Token{raw: s, cooked: s}
}

func (t Token) Raw() string {
	return t.raw
}

func (t Token) Cooked() string {
	return t.cooked
}

// String returns the cooked form.
func (t Token) String() string {
	return t.cooked
}

func (t Token) Equal(other Token) bool {
	return t.raw == other.raw
}

// Hash is derived from the raw form only.
func (t Token) Hash() uint64 {
	return xxhash.Sum64String(t.raw)
}

func decode(cooked string) (string, error) {
	if strings.IndexByte(cooked, escape) < 0 {
		return cooked, nil
	}

	var b strings.Builder
	b.Grow(len(cooked))

	for i := 0; i < len(cooked); i++ {
		c := cooked[i]
		if c != escape {
			b.WriteByte(c)
			continue
		}

		i++
		if i == len(cooked) {
			return "", fmt.Errorf("%w: empty escape in %q", ErrMalformedToken, cooked)
		}

		switch cooked[i] {
		case '0':
			b.WriteByte('~')
		case '1':
			b.WriteByte('/')
		default:
			return "", fmt.Errorf("%w: illegal escape %q in %q", ErrMalformedToken, cooked[i-1:i+1], cooked)
		}
	}

	return b.String(), nil
}
