// Package linerec records the source line of every addressable node of a
// document while its structural events are being consumed.
//
// A Recorder wraps an event.Tokenizer and is itself a Tokenizer, so it can
// sit between a tokenizer and any consumer of events (such as a tree
// reader) and observe the stream without altering it.
package linerec

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/jacoelho/jptr/internal/event"
	"github.com/jacoelho/jptr/internal/jsonptr"
	"github.com/jacoelho/jptr/internal/pointer"
)

// Recorder is single-owner: events must be pulled by one goroutine.
type Recorder struct {
	tok      event.Tokenizer
	log      *slog.Logger
	cursor   jsonptr.Pointer
	seenRoot bool
	lines    map[string]entry
}

var _ event.Tokenizer = (*Recorder)(nil)

type Option func(*Recorder)

// WithLogger sets the logger receiving one debug record per recorded node
// and a warning when a pointer is recorded twice.
func WithLogger(log *slog.Logger) Option {
	return func(r *Recorder) {
		if log != nil {
			r.log = log
		}
	}
}

// New panics with an error wrapping pointer.ErrNullInput if tok is nil.
func New(tok event.Tokenizer, opts ...Option) *Recorder {
	if tok == nil {
		panic(fmt.Errorf("%w: tokenizer is nil", pointer.ErrNullInput))
	}

	r := &Recorder{
		tok:    tok,
		log:    slog.New(slog.DiscardHandler),
		cursor: jsonptr.Empty(),
		lines:  make(map[string]entry),
	}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Next pulls one event from the wrapped tokenizer and records it.
// Errors from the tokenizer are returned unchanged; the lines recorded so
// far remain available.
func (r *Recorder) Next() (event.Kind, error) {
	kind, err := r.tok.Next()
	if err != nil {
		return kind, err
	}

	r.observe(kind)
	return kind, nil
}

func (r *Recorder) Context() *event.Frame {
	return r.tok.Context()
}

func (r *Recorder) Line() int {
	return r.tok.Line()
}

func (r *Recorder) Value() any {
	return r.tok.Value()
}

// Lines returns a snapshot of the lines recorded so far.
func (r *Recorder) Lines() Map {
	return newMap(r.lines)
}

// Record drains the tokenizer and returns the complete line map.
func (r *Recorder) Record() (Map, error) {
	for {
		if _, err := r.Next(); err != nil {
			if errors.Is(err, io.EOF) {
				return r.Lines(), nil
			}
			return r.Lines(), err
		}
	}
}

func (r *Recorder) observe(kind event.Kind) {
	line := r.tok.Line()

	if !r.seenRoot {
		r.record(r.cursor, line)
		r.seenRoot = true
		return
	}

	ctx := r.tok.Context()

	switch {
	case ctx.InRoot():
		// stray token after the top-level value
	case kind.IsEnd():
		r.cursor = r.cursor.Parent()
	case kind == event.FieldName:
		// members are recorded when their value arrives
	case kind.IsStart():
		r.cursor = appendFrame(r.cursor, ctx.Parent())
		r.record(r.cursor, line)
	default:
		r.record(appendFrame(r.cursor, ctx), line)
	}
}

func (r *Recorder) record(p jsonptr.Pointer, line int) {
	key := p.String()

	if prev, ok := r.lines[key]; ok {
		r.log.Warn("pointer recorded twice", "pointer", key, "previous", prev.line, "line", line)
	}

	r.lines[key] = entry{pointer: p, line: line}
	r.log.Debug("recorded", "pointer", key, "line", line)
}

// appendFrame extends p with the current position of f. The root frame
// contributes nothing.
func appendFrame(p jsonptr.Pointer, f *event.Frame) jsonptr.Pointer {
	switch {
	case f == nil || f.InRoot():
		return p
	case f.InArray():
		return p.AppendIndex(f.Index())
	default:
		return p.Append(f.Name())
	}
}
