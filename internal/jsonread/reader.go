// Package jsonread reads JSON and YAML documents into trees of
// map[string]any, []any and scalars, optionally recording the line of
// every node on the way.
package jsonread

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/goccy/go-yaml/ast"

	"github.com/jacoelho/jptr/internal/event"
	"github.com/jacoelho/jptr/internal/jsontok"
	"github.com/jacoelho/jptr/internal/linerec"
	"github.com/jacoelho/jptr/internal/stack"
	"github.com/jacoelho/jptr/internal/yamltok"
)

var ErrNoContent = errors.New("jsonread: input has no content")

// Config is passed explicitly to every Reader; there are no package
// defaults to mutate.
type Config struct {
	// FullRead rejects input that continues after the first value or
	// document.
	FullRead bool
	// UseNumber keeps JSON numbers as json.Number instead of float64.
	UseNumber bool
	// Log receives the line recorder's diagnostics. Nil discards them.
	Log *slog.Logger
}

func DefaultConfig() Config {
	return Config{FullRead: true}
}

type Reader struct {
	cfg Config
}

func New(cfg Config) *Reader {
	return &Reader{cfg: cfg}
}

func (r *Reader) Read(in io.Reader) (any, error) {
	return r.build(r.jsonTokenizer(in))
}

func (r *Reader) ReadString(s string) (any, error) {
	return r.Read(strings.NewReader(s))
}

func (r *Reader) ReadFile(path string) (any, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	v, err := r.Read(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return v, nil
}

// ReadWithLines reads a tree and the line of each of its nodes in a single
// pass. On error the lines recorded before the failure are returned.
func (r *Reader) ReadWithLines(in io.Reader) (any, linerec.Map, error) {
	rec := linerec.New(r.jsonTokenizer(in), linerec.WithLogger(r.cfg.Log))

	v, err := r.build(rec)
	return v, rec.Lines(), err
}

// ReadYAML reads the first YAML document of src.
func (r *Reader) ReadYAML(src []byte) (any, error) {
	tok, err := yamltok.New(src, yamltok.Options{FullRead: r.cfg.FullRead})
	if err != nil {
		return nil, err
	}
	return r.build(tok)
}

func (r *Reader) ReadYAMLWithLines(src []byte) (any, linerec.Map, error) {
	node, err := yamltok.Parse(src, yamltok.Options{FullRead: r.cfg.FullRead})
	if err != nil {
		return nil, linerec.Map{}, err
	}
	return r.ReadYAMLNodeWithLines(node)
}

// ReadYAMLNodeWithLines builds the tree and line map of an already parsed
// YAML node, for callers that keep the syntax tree around.
func (r *Reader) ReadYAMLNodeWithLines(node ast.Node) (any, linerec.Map, error) {
	rec := linerec.New(yamltok.FromNode(node), linerec.WithLogger(r.cfg.Log))

	v, err := r.build(rec)
	return v, rec.Lines(), err
}

func (r *Reader) jsonTokenizer(in io.Reader) *jsontok.Tokenizer {
	return jsontok.New(in, jsontok.Options{FullRead: r.cfg.FullRead})
}

func (r *Reader) build(tok event.Tokenizer) (any, error) {
	v, err := Build(tok)
	if err != nil {
		return nil, err
	}
	if !r.cfg.UseNumber {
		v = toFloat(v)
	}
	return v, nil
}

type container struct {
	object map[string]any
	array  []any
	key    string
	isList bool
}

func (c *container) add(v any) {
	if c.isList {
		c.array = append(c.array, v)
		return
	}
	c.object[c.key] = v
}

func (c *container) value() any {
	if c.isList {
		return c.array
	}
	return c.object
}

// Build consumes tok until it is exhausted and returns the value it
// describes. Scalars are stored as reported by the tokenizer. Duplicate
// object members keep the last value.
func Build(tok event.Tokenizer) (any, error) {
	containers := stack.New[*container]()

	var (
		root any
		done bool
	)

	for {
		kind, err := tok.Next()
		if errors.Is(err, io.EOF) {
			if !containers.IsEmpty() {
				return nil, io.ErrUnexpectedEOF
			}
			if !done {
				return nil, ErrNoContent
			}
			return root, nil
		}
		if err != nil {
			return nil, err
		}

		var v any

		switch kind {
		case event.StartObject:
			containers.Push(&container{object: make(map[string]any)})
			continue
		case event.StartArray:
			containers.Push(&container{array: make([]any, 0), isList: true})
			continue
		case event.FieldName:
			if top, ok := containers.Peek(); ok {
				top.key, _ = tok.Value().(string)
			}
			continue
		case event.EndObject, event.EndArray:
			closed, ok := containers.Pop()
			if !ok {
				return nil, fmt.Errorf("unbalanced %s event", kind)
			}
			v = closed.value()
		default:
			v = tok.Value()
		}

		if top, ok := containers.Peek(); ok {
			top.add(v)
			continue
		}
		root = v
		done = true
	}
}

// toFloat replaces json.Number values with float64, in place.
func toFloat(v any) any {
	switch n := v.(type) {
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			// out of range; keep the literal
			return n
		}
		return f
	case []any:
		for i := range n {
			n[i] = toFloat(n[i])
		}
	case map[string]any:
		for k, e := range n {
			n[k] = toFloat(e)
		}
	}
	return v
}
