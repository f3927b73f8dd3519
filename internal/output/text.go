package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"

	"github.com/jacoelho/jptr/internal/linerec"
)

const rootLabel = `""`

// Text writes one tab-separated record per line.
type Text struct {
	writer  io.Writer
	pointer *color.Color
	line    *color.Color
	kind    *color.Color
	missing *color.Color
}

// NewText creates a text formatter. Colors are emitted only when colored
// is true, regardless of the terminal.
func NewText(writer io.Writer, colored bool) *Text {
	t := &Text{
		writer:  writer,
		pointer: color.New(color.FgCyan),
		line:    color.New(color.FgYellow),
		kind:    color.New(color.FgGreen),
		missing: color.New(color.FgRed),
	}

	for _, c := range []*color.Color{t.pointer, t.line, t.kind, t.missing} {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return t
}

func (t *Text) Lines(m linerec.Map) error {
	for p, line := range m.All() {
		if _, err := fmt.Fprintf(t.writer, "%s\t%s\n", t.pointer.Sprint(label(p.String())), t.line.Sprint(line)); err != nil {
			return err
		}
	}
	return nil
}

func (t *Text) Lookups(lookups []Lookup) error {
	for _, l := range lookups {
		line, kind, value := "-", "-", t.missing.Sprint("missing")

		if l.Found {
			encoded, err := json.Marshal(l.Value)
			if err != nil {
				return fmt.Errorf("encode value at %s: %w", label(l.Pointer), err)
			}
			value = string(encoded)
			if l.Type != "" {
				kind = l.Type
			}
			if l.Line > 0 {
				line = strconv.Itoa(l.Line)
			}
		}

		if _, err := fmt.Fprintf(t.writer, "%s\t%s\t%s\t%s\n", t.pointer.Sprint(label(l.Pointer)), t.line.Sprint(line), t.kind.Sprint(kind), value); err != nil {
			return err
		}
	}
	return nil
}

func label(ptr string) string {
	if ptr == "" {
		return rootLabel
	}
	return ptr
}
