package pointer

import (
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Tree is an absolute path in a tree of shape T: an ordered, immutable
// sequence of resolvers plus an optional missing sentinel returned by Path.
//
// Trees are values. Every operation that derives a new Tree copies the
// resolver sequence, so a Tree never observes later changes to the slice
// it was built from.
type Tree[T any] struct {
	resolvers  []Resolver[T]
	missing    T
	hasMissing bool
}

// NewTree builds a tree without a missing sentinel.
// It panics with an error wrapping ErrNullInput if a resolver is nil.
func NewTree[T any](resolvers []Resolver[T]) Tree[T] {
	return Tree[T]{resolvers: cloneResolvers(resolvers)}
}

// NewTreeWithMissing builds a tree whose Path returns missing when
// traversal fails.
func NewTreeWithMissing[T any](missing T, resolvers []Resolver[T]) Tree[T] {
	return Tree[T]{
		resolvers:  cloneResolvers(resolvers),
		missing:    missing,
		hasMissing: true,
	}
}

func cloneResolvers[T any](resolvers []Resolver[T]) []Resolver[T] {
	for i, r := range resolvers {
		if r == nil {
			panic(fmt.Errorf("%w: resolver %d is nil", ErrNullInput, i))
		}
	}

	return slices.Clip(slices.Clone(resolvers))
}

// Get folds the resolvers over node. It stops at the first resolver that
// reports no result; the remaining resolvers are not called.
func (t Tree[T]) Get(node T) (T, bool) {
	current := node
	for _, r := range t.resolvers {
		next, ok := r.Resolve(current)
		if !ok {
			var zero T
			return zero, false
		}
		current = next
	}

	return current, true
}

// Path is Get returning the missing sentinel instead of reporting failure.
// Without a sentinel it returns the zero value of T.
func (t Tree[T]) Path(node T) T {
	if v, ok := t.Get(node); ok {
		return v
	}

	return t.missing
}

// Missing returns the sentinel and whether one is configured.
func (t Tree[T]) Missing() (T, bool) {
	return t.missing, t.hasMissing
}

func (t Tree[T]) IsEmpty() bool {
	return len(t.resolvers) == 0
}

func (t Tree[T]) Len() int {
	return len(t.resolvers)
}

// All iterates over the resolvers in path order.
func (t Tree[T]) All() iter.Seq[Resolver[T]] {
	return slices.Values(t.resolvers)
}

func (t Tree[T]) Tokens() []Token {
	tokens := make([]Token, len(t.resolvers))
	for i, r := range t.resolvers {
		tokens[i] = r.Token()
	}
	return tokens
}

// Last returns the final token, if any.
func (t Tree[T]) Last() (Token, bool) {
	if len(t.resolvers) == 0 {
		return Token{}, false
	}
	return t.resolvers[len(t.resolvers)-1].Token(), true
}

// Extend returns a new tree with resolvers appended, keeping the sentinel.
func (t Tree[T]) Extend(resolvers ...Resolver[T]) Tree[T] {
	for i, r := range resolvers {
		if r == nil {
			panic(fmt.Errorf("%w: resolver %d is nil", ErrNullInput, i))
		}
	}

	return Tree[T]{
		resolvers:  slices.Concat(t.resolvers, resolvers),
		missing:    t.missing,
		hasMissing: t.hasMissing,
	}
}

// Parent returns a new tree without the last resolver.
// The parent of an empty tree is an empty tree.
func (t Tree[T]) Parent() Tree[T] {
	n := max(len(t.resolvers)-1, 0)

	return Tree[T]{
		resolvers:  slices.Clone(t.resolvers[:n]),
		missing:    t.missing,
		hasMissing: t.hasMissing,
	}
}

// Equal compares the token sequences; sentinels are ignored.
func (t Tree[T]) Equal(other Tree[T]) bool {
	return slices.EqualFunc(t.resolvers, other.resolvers, func(a, b Resolver[T]) bool {
		return a.Token().Equal(b.Token())
	})
}

// Hash is consistent with Equal.
func (t Tree[T]) Hash() uint64 {
	d := xxhash.New()
	for _, r := range t.resolvers {
		_, _ = d.WriteString("/")
		_, _ = d.WriteString(r.Token().Cooked())
	}
	return d.Sum64()
}

// String renders the pointer text: "/" followed by the cooked token, for
// every token. The empty tree renders as "".
func (t Tree[T]) String() string {
	var b strings.Builder
	for _, r := range t.resolvers {
		b.WriteByte(separator)
		b.WriteString(r.Token().Cooked())
	}
	return b.String()
}
