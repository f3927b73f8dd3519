// Package yamlptr applies JSON Pointers to YAML syntax trees parsed by
// github.com/goccy/go-yaml, so nodes can be located with their source
// positions intact.
//
// Mapping keys are matched by their scalar text. Tags and anchors are
// looked through; aliases are not followed.
package yamlptr

import (
	"github.com/goccy/go-yaml/ast"

	"github.com/jacoelho/jptr/internal/jsonptr"
	"github.com/jacoelho/jptr/internal/pointer"
)

type resolver struct {
	pointer.Ref
}

func NewResolver(token pointer.Token) pointer.Resolver[ast.Node] {
	return resolver{Ref: pointer.NewRef(token)}
}

func (r resolver) Resolve(node ast.Node) (ast.Node, bool) {
	raw := r.Token().Raw()

	switch n := Unwrap(node).(type) {
	case *ast.MappingNode:
		for _, mv := range n.Values {
			if KeyText(mv.Key) == raw {
				return mv.Value, true
			}
		}
	case *ast.MappingValueNode:
		if KeyText(n.Key) == raw {
			return n.Value, true
		}
	case *ast.SequenceNode:
		if i, ok := pointer.ArrayIndex(raw); ok && i < len(n.Values) {
			return n.Values[i], true
		}
	}

	return nil, false
}

// Unwrap returns the node beneath any tag or anchor decoration.
func Unwrap(node ast.Node) ast.Node {
	for {
		switch n := node.(type) {
		case *ast.TagNode:
			node = n.Value
		case *ast.AnchorNode:
			node = n.Value
		default:
			return node
		}
	}
}

// KeyText is the text a mapping key is addressed by.
func KeyText(key ast.MapKeyNode) string {
	var node ast.Node = key
	if k, ok := node.(*ast.MappingKeyNode); ok {
		node = k.Value
	}

	switch n := Unwrap(node).(type) {
	case nil:
		return ""
	case *ast.StringNode:
		return n.Value
	case ast.ScalarNode:
		if tk := n.GetToken(); tk != nil {
			return tk.Value
		}
		return n.String()
	default:
		return n.String()
	}
}

// Pointer is an immutable pointer into a YAML syntax tree. It carries no
// missing sentinel.
type Pointer struct {
	tree pointer.Tree[ast.Node]
}

// FromJSON converts a JSON pointer, keeping its tokens.
func FromJSON(p jsonptr.Pointer) Pointer {
	tokens := p.Tokens()

	resolvers := make([]pointer.Resolver[ast.Node], len(tokens))
	for i, token := range tokens {
		resolvers[i] = NewResolver(token)
	}

	return Pointer{tree: pointer.NewTree(resolvers)}
}

func (p Pointer) Get(root ast.Node) (ast.Node, bool) {
	return p.tree.Get(root)
}

// Line returns the line the addressed node starts on.
func (p Pointer) Line(root ast.Node) (int, bool) {
	node, ok := p.Get(root)
	if !ok {
		return 0, false
	}
	return StartLine(node), true
}

func (p Pointer) String() string {
	return p.tree.String()
}

// StartLine is the 1-based line of the first token of node. Block mappings
// start at their first key rather than at its ':' indicator; tagged and
// anchored nodes start at the decoration.
func StartLine(node ast.Node) int {
	switch n := node.(type) {
	case nil:
		return 0
	case *ast.MappingNode:
		if !n.IsFlowStyle && len(n.Values) > 0 {
			return StartLine(n.Values[0].Key)
		}
	case *ast.MappingValueNode:
		return StartLine(n.Key)
	}

	if tk := node.GetToken(); tk != nil && tk.Position != nil {
		return tk.Position.Line
	}
	return 0
}
