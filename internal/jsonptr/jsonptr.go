// Package jsonptr provides JSON Pointers over trees decoded by encoding/json.
package jsonptr

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/jacoelho/jptr/internal/pointer"
)

// Pointer is an immutable JSON Pointer. The zero value is the root pointer.
type Pointer struct {
	tree pointer.Tree[any]
}

var empty = Pointer{tree: pointer.NewTreeWithMissing[any](Missing, nil)}

// Empty returns the root pointer "".
func Empty() Pointer {
	return empty
}

// Parse decodes pointer text such as "/a/0/m~1n".
func Parse(input string) (Pointer, error) {
	tokens, err := pointer.ParseTokens(input)
	if err != nil {
		return Pointer{}, err
	}

	return FromTokens(tokens...), nil
}

// MustParse is like Parse but panics on malformed input.
func MustParse(input string) Pointer {
	p, err := Parse(input)
	if err != nil {
		panic(err)
	}
	return p
}

// Of builds a pointer whose raw tokens are the fmt.Sprint form of each value.
// Separators and escapes in the values are taken literally.
// It panics with an error wrapping pointer.ErrNullInput if a value is nil.
func Of(first any, others ...any) Pointer {
	values := append([]any{first}, others...)
	tokens := make([]pointer.Token, 0, len(values))

	for i, v := range values {
		if v == nil {
			panic(fmt.Errorf("%w: token %d is nil", pointer.ErrNullInput, i))
		}
		tokens = append(tokens, pointer.FromRaw(fmt.Sprint(v)))
	}

	return FromTokens(tokens...)
}

func FromTokens(tokens ...pointer.Token) Pointer {
	if len(tokens) == 0 {
		return empty
	}

	resolvers := make([]pointer.Resolver[any], len(tokens))
	for i, token := range tokens {
		resolvers[i] = NewResolver(token)
	}

	return Pointer{tree: pointer.NewTreeWithMissing[any](Missing, resolvers)}
}

// Append returns p extended with one raw token.
func (p Pointer) Append(raw string) Pointer {
	return Pointer{tree: p.base().Extend(NewResolver(pointer.FromRaw(raw)))}
}

// AppendIndex returns p extended with the decimal token of index.
func (p Pointer) AppendIndex(index int) Pointer {
	return Pointer{tree: p.base().Extend(NewResolver(pointer.FromIndex(index)))}
}

// AppendPointer returns p followed by every token of other.
func (p Pointer) AppendPointer(other Pointer) Pointer {
	if other.IsEmpty() {
		return p
	}

	return Pointer{tree: p.base().Extend(other.resolvers()...)}
}

// Parent drops the last token. Pointers with at most one token have the
// root pointer as parent, including the root pointer itself.
func (p Pointer) Parent() Pointer {
	if p.tree.Len() <= 1 {
		return empty
	}

	return Pointer{tree: p.tree.Parent()}
}

// Get returns the node addressed by p within root.
func (p Pointer) Get(root any) (any, bool) {
	return p.tree.Get(root)
}

// Path is Get returning Missing on failure.
func (p Pointer) Path(root any) any {
	if v, ok := p.tree.Get(root); ok {
		return v
	}
	return Missing
}

func (p Pointer) IsEmpty() bool {
	return p.tree.IsEmpty()
}

func (p Pointer) Len() int {
	return p.tree.Len()
}

func (p Pointer) Tokens() []pointer.Token {
	return p.tree.Tokens()
}

func (p Pointer) Last() (pointer.Token, bool) {
	return p.tree.Last()
}

// Tree exposes the generic form of p.
func (p Pointer) Tree() pointer.Tree[any] {
	return p.base()
}

func (p Pointer) Equal(other Pointer) bool {
	return p.tree.Equal(other.tree)
}

func (p Pointer) Hash() uint64 {
	return p.tree.Hash()
}

// Compare orders pointers by their text.
func (p Pointer) Compare(other Pointer) int {
	return strings.Compare(p.String(), other.String())
}

func (p Pointer) String() string {
	return p.tree.String()
}

func (p Pointer) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *Pointer) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// base returns the tree of p with the Missing sentinel set, so that the
// zero value derives pointers like Empty does.
func (p Pointer) base() pointer.Tree[any] {
	if _, ok := p.tree.Missing(); ok {
		return p.tree
	}
	return empty.tree.Extend(p.resolvers()...)
}

func (p Pointer) resolvers() []pointer.Resolver[any] {
	out := make([]pointer.Resolver[any], 0, p.tree.Len())
	for r := range p.tree.All() {
		out = append(out, r)
	}
	return out
}

// ParseURIFragment decodes the fragment of a URI such as "#/a~1b" or
// "doc.json#/c%25d" as pointer text.
func ParseURIFragment(uri string) (Pointer, error) {
	u, err := url.Parse(uri)
	if err != nil {
		return Pointer{}, fmt.Errorf("%w: %v", pointer.ErrMalformedPointer, err)
	}

	return Parse(u.Fragment)
}

// ParseReference accepts either pointer text or, when input starts with
// '#', a URI fragment.
func ParseReference(input string) (Pointer, error) {
	if strings.HasPrefix(input, "#") {
		return ParseURIFragment(input)
	}
	return Parse(input)
}
