package jsonptr

import "github.com/jacoelho/jptr/internal/pointer"

// Missing is what Pointer.Path returns when traversal fails. It is distinct
// from nil, which is how a JSON null decodes.
var Missing any = missingNode{}

type missingNode struct{}

func (missingNode) String() string {
	return "missing"
}

func IsMissing(v any) bool {
	_, ok := v.(missingNode)
	return ok
}

type resolver struct {
	pointer.Ref
}

// NewResolver binds token to lookups in trees decoded by encoding/json:
// map[string]any for objects and []any for arrays.
func NewResolver(token pointer.Token) pointer.Resolver[any] {
	return resolver{Ref: pointer.NewRef(token)}
}

func (r resolver) Resolve(node any) (any, bool) {
	raw := r.Token().Raw()

	switch n := node.(type) {
	case map[string]any:
		v, ok := n[raw]
		return v, ok
	case []any:
		i, ok := pointer.ArrayIndex(raw)
		if !ok || i >= len(n) {
			return nil, false
		}
		return n[i], true
	default:
		return nil, false
	}
}
