// Package event defines the structural event stream produced by document
// tokenizers and consumed by the line recorder and the tree reader.
package event

import "fmt"

// Kind is the type of one structural event.
type Kind int

const (
	Scalar Kind = iota
	StartArray
	EndArray
	StartObject
	EndObject
	FieldName
)

var kindNames = [...]string{
	Scalar:      "scalar",
	StartArray:  "start-array",
	EndArray:    "end-array",
	StartObject: "start-object",
	EndObject:   "end-object",
	FieldName:   "field-name",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("kind(%d)", int(k))
	}
	return kindNames[k]
}

// IsStart reports whether k opens a container.
func (k Kind) IsStart() bool {
	return k == StartArray || k == StartObject
}

// IsEnd reports whether k closes a container.
func (k Kind) IsEnd() bool {
	return k == EndArray || k == EndObject
}

// Tokenizer is a pull-based source of structural events.
//
// Next advances to the following event and returns its kind, or io.EOF
// once the input is exhausted. Context, Line and Value describe the event
// returned by the last call to Next.
//
// The context of a start event is the frame it opens; the frame's parent is
// the enclosing container. Scalars and field names report the enclosing
// container. End events report the enclosing container after the close.
type Tokenizer interface {
	Next() (Kind, error)
	Context() *Frame
	Line() int
	// Value is the scalar value for Scalar, the member name for FieldName
	// and nil for container events.
	Value() any
}
