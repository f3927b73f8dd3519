package output

import (
	"encoding/json"
	"io"

	"github.com/jacoelho/jptr/internal/linerec"
)

// JSON writes indented JSON documents.
type JSON struct {
	writer io.Writer
}

func NewJSON(writer io.Writer) *JSON {
	return &JSON{writer: writer}
}

// Lines writes an object of pointer text to line.
func (j *JSON) Lines(m linerec.Map) error {
	return j.encode(m)
}

func (j *JSON) Lookups(lookups []Lookup) error {
	if lookups == nil {
		lookups = []Lookup{}
	}
	return j.encode(lookups)
}

func (j *JSON) encode(v any) error {
	enc := json.NewEncoder(j.writer)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
