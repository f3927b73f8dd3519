// Package jsontok emits structural events for a JSON document read from a
// stream, tagging each event with the line it appears on.
package jsontok

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/jacoelho/jptr/internal/event"
	"github.com/jacoelho/jptr/internal/stack"
)

// Options configures a Tokenizer.
type Options struct {
	// FullRead makes the tokenizer fail with ErrTrailingInput when anything
	// other than whitespace follows the first top-level value. Without it
	// the input after that value is not read.
	FullRead bool
}

type containerFrame struct {
	frame   *event.Frame
	needKey bool
}

// Tokenizer implements event.Tokenizer over encoding/json. Numbers are
// reported as json.Number.
type Tokenizer struct {
	dec        *json.Decoder
	src        *lineReader
	opts       Options
	root       *event.Frame
	containers *stack.Stack[containerFrame]

	context  *event.Frame
	value    any
	location Location
	rootDone bool
	err      error
}

var _ event.Tokenizer = (*Tokenizer)(nil)

func New(r io.Reader, opts Options) *Tokenizer {
	src := newLineReader(r)
	dec := json.NewDecoder(src)
	dec.UseNumber()

	root := event.NewRoot()

	return &Tokenizer{
		dec:        dec,
		src:        src,
		opts:       opts,
		root:       root,
		containers: stack.New[containerFrame](),
		context:    root,
		location:   Location{Line: 1, Column: 1},
	}
}

func (t *Tokenizer) Context() *event.Frame {
	return t.context
}

// Line is the line of the last event. Tokens never span lines, so this is
// both the line the token starts on and the line it ends on.
func (t *Tokenizer) Line() int {
	return t.location.Line
}

func (t *Tokenizer) Value() any {
	return t.value
}

// Location is the position just past the last token read.
func (t *Tokenizer) Location() Location {
	return t.location
}

func (t *Tokenizer) Next() (event.Kind, error) {
	if t.err != nil {
		return 0, t.err
	}

	if t.rootDone {
		return 0, t.finish()
	}

	tok, err := t.dec.Token()
	if err != nil {
		return 0, t.fail(err)
	}

	t.location = t.src.advance(t.dec.InputOffset())
	t.value = nil

	switch v := tok.(type) {
	case json.Delim:
		return t.delim(v)
	default:
		return t.scalar(v), nil
	}
}

func (t *Tokenizer) delim(d json.Delim) (event.Kind, error) {
	switch d {
	case '{':
		parent := t.beginValue()
		t.context = event.NewObject(parent)
		t.containers.Push(containerFrame{frame: t.context, needKey: true})
		return event.StartObject, nil
	case '[':
		parent := t.beginValue()
		t.context = event.NewArray(parent)
		t.containers.Push(containerFrame{frame: t.context})
		return event.StartArray, nil
	}

	t.containers.Pop()
	t.context = t.enclosing()
	if t.containers.IsEmpty() {
		t.rootDone = true
	}

	if d == '}' {
		return event.EndObject, nil
	}
	return event.EndArray, nil
}

func (t *Tokenizer) scalar(v any) event.Kind {
	if top := t.containers.PeekRef(); top != nil && top.needKey {
		// encoding/json only yields strings in key position.
		name, _ := v.(string)
		top.frame.Advance()
		top.frame.SetName(name)
		top.needKey = false
		t.context = top.frame
		t.value = name
		return event.FieldName
	}

	t.context = t.beginValue()
	t.value = v
	if t.containers.IsEmpty() {
		t.rootDone = true
	}
	return event.Scalar
}

// beginValue positions the enclosing frame on a new value and returns it.
func (t *Tokenizer) beginValue() *event.Frame {
	top := t.containers.PeekRef()
	if top == nil {
		t.root.Advance()
		return t.root
	}

	if top.frame.InObject() {
		top.needKey = true
	} else {
		top.frame.Advance()
	}
	return top.frame
}

func (t *Tokenizer) enclosing() *event.Frame {
	if top, ok := t.containers.Peek(); ok {
		return top.frame
	}
	return t.root
}

// finish runs once the top-level value is complete.
func (t *Tokenizer) finish() error {
	if !t.opts.FullRead {
		return io.EOF
	}

	_, err := t.dec.Token()
	if errors.Is(err, io.EOF) {
		return io.EOF
	}

	t.err = newError("trailing input detected", t.location, ErrTrailingInput)
	return t.err
}

func (t *Tokenizer) fail(err error) error {
	if errors.Is(err, io.EOF) {
		if t.containers.IsEmpty() && t.root.Index() < 0 {
			// empty input
			return io.EOF
		}
		err = io.ErrUnexpectedEOF
	}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) || errors.Is(err, io.ErrUnexpectedEOF) {
		t.err = newError(err.Error(), t.location, fmt.Errorf("%w: %w", ErrSyntax, err))
		return t.err
	}

	t.err = err
	return err
}
