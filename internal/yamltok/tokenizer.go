// Package yamltok emits structural events for a YAML document by walking
// its github.com/goccy/go-yaml syntax tree. Lines come from the token
// positions recorded by the YAML parser.
package yamltok

import (
	"errors"
	"fmt"
	"io"

	"github.com/goccy/go-yaml/ast"
	"github.com/goccy/go-yaml/parser"
	"github.com/goccy/go-yaml/token"

	"github.com/jacoelho/jptr/internal/event"
	"github.com/jacoelho/jptr/internal/stack"
	"github.com/jacoelho/jptr/internal/yamlptr"
)

var (
	ErrSyntax            = errors.New("yamltok: syntax error")
	ErrMultipleDocuments = errors.New("yamltok: multiple documents")
	ErrUnknownAlias      = errors.New("yamltok: unknown alias")
	ErrRecursiveAlias    = errors.New("yamltok: recursive alias")
)

// Options configures a Tokenizer.
type Options struct {
	// FullRead rejects input holding more than one document. Without it
	// only the first document is walked.
	FullRead bool
}

type containerFrame struct {
	frame   *event.Frame
	object  bool
	pairs   []*ast.MappingValueNode
	items   []ast.Node
	pos     int
	endLine int
	anchor  string

	pending    ast.Node
	hasPending bool
}

// Tokenizer implements event.Tokenizer over a YAML syntax tree. Scalars
// are reported as string, bool, int64, uint64, float64 or nil.
type Tokenizer struct {
	body       ast.Node
	root       *event.Frame
	containers *stack.Stack[containerFrame]
	anchors    map[string]ast.Node
	open       map[string]int

	started bool
	context *event.Frame
	line    int
	value   any
	err     error
}

var _ event.Tokenizer = (*Tokenizer)(nil)

// New parses src and returns a tokenizer over its first document.
func New(src []byte, opts Options) (*Tokenizer, error) {
	body, err := Parse(src, opts)
	if err != nil {
		return nil, err
	}
	return FromNode(body), nil
}

// Parse returns the body of the first document of src, or nil when src
// holds no document.
func Parse(src []byte, opts Options) (ast.Node, error) {
	file, err := parser.ParseBytes(src, 0)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSyntax, err)
	}

	var bodies []ast.Node
	for _, doc := range file.Docs {
		if doc == nil || doc.Body == nil {
			continue
		}
		if _, ok := doc.Body.(*ast.CommentGroupNode); ok {
			continue
		}
		bodies = append(bodies, doc.Body)
	}

	if opts.FullRead && len(bodies) > 1 {
		return nil, fmt.Errorf("%w: found %d, second starts on line %d",
			ErrMultipleDocuments, len(bodies), yamlptr.StartLine(bodies[1]))
	}

	if len(bodies) == 0 {
		return nil, nil
	}
	return bodies[0], nil
}

// FromNode walks an already parsed node. A nil node yields no events.
func FromNode(node ast.Node) *Tokenizer {
	root := event.NewRoot()

	return &Tokenizer{
		body:       node,
		root:       root,
		containers: stack.New[containerFrame](),
		anchors:    make(map[string]ast.Node),
		open:       make(map[string]int),
		context:    root,
		line:       1,
	}
}

func (t *Tokenizer) Context() *event.Frame {
	return t.context
}

func (t *Tokenizer) Line() int {
	return t.line
}

func (t *Tokenizer) Value() any {
	return t.value
}

func (t *Tokenizer) Next() (event.Kind, error) {
	if t.err != nil {
		return 0, t.err
	}

	t.value = nil

	if !t.started {
		t.started = true
		if t.body == nil {
			return 0, io.EOF
		}
		return t.emit(t.body, t.root)
	}

	top := t.containers.PeekRef()
	if top == nil {
		return 0, io.EOF
	}

	if top.object {
		if top.hasPending {
			value := top.pending
			top.pending, top.hasPending = nil, false
			return t.emit(value, top.frame)
		}

		if top.pos < len(top.pairs) {
			mv := top.pairs[top.pos]
			top.pos++

			name := yamlptr.KeyText(mv.Key)
			top.frame.Advance()
			top.frame.SetName(name)
			top.pending, top.hasPending = mv.Value, true

			t.context = top.frame
			t.line = yamlptr.StartLine(mv.Key)
			t.value = name
			return event.FieldName, nil
		}

		t.close()
		return event.EndObject, nil
	}

	if top.pos < len(top.items) {
		item := top.items[top.pos]
		top.pos++
		top.frame.Advance()
		return t.emit(item, top.frame)
	}

	t.close()
	return event.EndArray, nil
}

// emit produces the event opening node, which sits in parent.
func (t *Tokenizer) emit(node ast.Node, parent *event.Frame) (event.Kind, error) {
	if parent.InRoot() {
		parent.Advance()
	}

	// A tag or anchor is where the decorated node starts.
	start := yamlptr.StartLine(node)

	node, anchor, line, err := t.resolve(node)
	if err != nil {
		t.err = err
		return 0, err
	}
	if line == 0 {
		line = start
	}
	if line == 0 {
		line = t.line
	}

	switch n := node.(type) {
	case *ast.MappingNode:
		t.push(event.NewObject(parent), containerFrame{object: true, pairs: n.Values, endLine: endLine(n.End), anchor: anchor}, line)
		return event.StartObject, nil
	case *ast.MappingValueNode:
		t.push(event.NewObject(parent), containerFrame{object: true, pairs: []*ast.MappingValueNode{n}, anchor: anchor}, line)
		return event.StartObject, nil
	case *ast.SequenceNode:
		t.push(event.NewArray(parent), containerFrame{items: n.Values, endLine: endLine(n.End), anchor: anchor}, line)
		return event.StartArray, nil
	}

	t.context = parent
	t.line = line
	t.value = scalarValue(node)
	return event.Scalar, nil
}

func (t *Tokenizer) push(frame *event.Frame, cf containerFrame, line int) {
	cf.frame = frame
	if cf.anchor != "" {
		t.open[cf.anchor]++
	}
	t.containers.Push(cf)
	t.context = frame
	t.line = line
}

func (t *Tokenizer) close() {
	closed, _ := t.containers.Pop()
	if closed.anchor != "" {
		t.open[closed.anchor]--
	}

	if top, ok := t.containers.Peek(); ok {
		t.context = top.frame
	} else {
		t.context = t.root
	}
	if closed.endLine > 0 {
		t.line = closed.endLine
	}
}

// resolve strips tags, registers anchors and follows aliases. It returns
// the anchor name the node was declared with and, for aliases, the line of
// the alias itself.
func (t *Tokenizer) resolve(node ast.Node) (ast.Node, string, int, error) {
	var (
		anchor    string
		aliasLine int
	)

	for {
		switch n := node.(type) {
		case *ast.TagNode:
			node = n.Value
		case *ast.AnchorNode:
			anchor = n.Name.GetToken().Value
			t.anchors[anchor] = n.Value
			node = n.Value
		case *ast.AliasNode:
			name := n.Value.GetToken().Value
			target, ok := t.anchors[name]
			if !ok {
				return nil, "", 0, fmt.Errorf("%w: *%s on line %d", ErrUnknownAlias, name, yamlptr.StartLine(n))
			}
			if t.open[name] > 0 {
				return nil, "", 0, fmt.Errorf("%w: *%s on line %d", ErrRecursiveAlias, name, yamlptr.StartLine(n))
			}
			if aliasLine == 0 {
				aliasLine = yamlptr.StartLine(n)
			}
			node = target
		default:
			return node, anchor, aliasLine, nil
		}
	}
}

func endLine(tk *token.Token) int {
	if tk == nil || tk.Position == nil {
		return 0
	}
	return tk.Position.Line
}

func scalarValue(node ast.Node) any {
	switch n := node.(type) {
	case nil:
		return nil
	case *ast.LiteralNode:
		// GetValue includes the block indicator.
		if n.Value == nil {
			return ""
		}
		return n.Value.Value
	case ast.ScalarNode:
		return n.GetValue()
	default:
		return node.String()
	}
}
