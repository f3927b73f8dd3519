// Package output renders line maps and pointer lookups for the command line.
package output

import (
	"github.com/jacoelho/jptr/internal/linerec"
)

// Lookup is the outcome of resolving one pointer against a document.
type Lookup struct {
	Pointer string `json:"pointer"`
	Line    int    `json:"line,omitempty"`
	Found   bool   `json:"found"`
	Type    string `json:"type,omitempty"`
	Value   any    `json:"value,omitempty"`
}

// Formatter writes results to its own destination.
type Formatter interface {
	// Lines writes every recorded pointer with its line.
	Lines(m linerec.Map) error
	// Lookups writes resolved pointers in the given order.
	Lookups(lookups []Lookup) error
}
