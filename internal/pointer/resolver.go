package pointer

// Resolver advances one level in a tree of shape T using its token.
// Implementations must be stateless beyond the token so they can be shared.
type Resolver[T any] interface {
	Token() Token
	// Resolve returns the child of node addressed by the token.
	// It reports false when node is not a container or has no such child.
	Resolve(node T) (T, bool)
}

// Ref carries the token of a resolver. Concrete resolvers embed it so that
// their identity and rendering are those of the token.
type Ref struct {
	token Token
}

func NewRef(token Token) Ref {
	return Ref{token: token}
}

func (r Ref) Token() Token {
	return r.token
}

func (r Ref) String() string {
	return r.token.cooked
}

// ArrayIndex converts a raw token to an array index.
// Only "0" and digit strings without a leading zero that fit in an int are
// indexes; anything else (empty, signs, spaces, overflow) is reported as
// false so lookups treat it like an out of range index.
func ArrayIndex(raw string) (int, bool) {
	if raw == "" {
		return 0, false
	}

	if raw[0] == '0' {
		return 0, len(raw) == 1
	}

	n := 0
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		if c < '0' || c > '9' {
			return 0, false
		}

		d := int(c - '0')
		if n > (maxInt-d)/10 {
			return 0, false
		}
		n = n*10 + d
	}

	return n, true
}

const maxInt = int(^uint(0) >> 1)
