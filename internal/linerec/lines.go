package linerec

import (
	"cmp"
	"encoding/json"
	"iter"
	"maps"
	"slices"

	"github.com/jacoelho/jptr/internal/jsonptr"
)

type entry struct {
	pointer jsonptr.Pointer
	line    int
}

// Map associates pointers with 1-based line numbers. It is immutable; the
// zero value is an empty map.
type Map struct {
	lines map[string]entry
}

func newMap(lines map[string]entry) Map {
	return Map{lines: maps.Clone(lines)}
}

// Line returns the line the node addressed by p starts on.
func (m Map) Line(p jsonptr.Pointer) (int, bool) {
	return m.LineOf(p.String())
}

// LineOf is Line keyed by pointer text.
func (m Map) LineOf(ptr string) (int, bool) {
	e, ok := m.lines[ptr]
	return e.line, ok
}

func (m Map) Len() int {
	return len(m.lines)
}

// Pointers returns the recorded pointers ordered by line, then by text.
func (m Map) Pointers() []jsonptr.Pointer {
	entries := slices.SortedFunc(maps.Values(m.lines), func(a, b entry) int {
		return cmp.Or(cmp.Compare(a.line, b.line), a.pointer.Compare(b.pointer))
	})

	out := make([]jsonptr.Pointer, len(entries))
	for i, e := range entries {
		out[i] = e.pointer
	}
	return out
}

// All iterates over the entries in the order of Pointers.
func (m Map) All() iter.Seq2[jsonptr.Pointer, int] {
	return func(yield func(jsonptr.Pointer, int) bool) {
		for _, p := range m.Pointers() {
			if !yield(p, m.lines[p.String()].line) {
				return
			}
		}
	}
}

// ToMap returns a copy keyed by pointer text.
func (m Map) ToMap() map[string]int {
	out := make(map[string]int, len(m.lines))
	for k, e := range m.lines {
		out[k] = e.line
	}
	return out
}

// MarshalJSON encodes the map as an object of pointer text to line.
func (m Map) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.ToMap())
}
