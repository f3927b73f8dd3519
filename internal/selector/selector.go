// Package selector evaluates JSONPath queries and reports every match by
// its JSON Pointer, so matches can be correlated with recorded lines.
package selector

import (
	"fmt"

	"github.com/theory/jsonpath"

	"github.com/jacoelho/jptr/internal/jsonptr"
)

// Match is one node selected by a query.
type Match struct {
	Pointer jsonptr.Pointer
	Value   any
}

type Selector struct {
	expr string
	path *jsonpath.Path
}

// Compile supports RFC 9535 JSONPath syntax (e.g. "$.user.name", "$..items[0]").
func Compile(expr string) (*Selector, error) {
	if expr == "" {
		return nil, fmt.Errorf("%w: JSONPath expression is empty", ErrInvalidInput)
	}

	path, err := jsonpath.Parse(expr)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid JSONPath %s: %v", ErrInvalidInput, expr, err)
	}

	return &Selector{expr: expr, path: path}, nil
}

func (s *Selector) String() string {
	return s.expr
}

// Select returns the matches in document order.
func (s *Selector) Select(doc any) ([]Match, error) {
	located := s.path.SelectLocated(doc)

	matches := make([]Match, 0, len(located))
	for _, node := range located {
		p, err := jsonptr.Parse(node.Path.Pointer())
		if err != nil {
			return nil, fmt.Errorf("pointer for match of %s: %w", s.expr, err)
		}
		matches = append(matches, Match{Pointer: p, Value: node.Node})
	}

	return matches, nil
}
