package event

// Scope is the kind of container a frame describes.
type Scope int

const (
	Root Scope = iota
	Array
	Object
)

// Frame is one level of container context. Tokenizers own their frames and
// update them in place as parsing advances, so a frame read through
// Tokenizer.Context is only valid until the next call to Next.
type Frame struct {
	scope  Scope
	index  int
	name   string
	parent *Frame
}

// NewRoot returns the frame enclosing top-level values.
func NewRoot() *Frame {
	return &Frame{scope: Root, index: -1}
}

// NewArray returns a frame for an array opened inside parent.
func NewArray(parent *Frame) *Frame {
	return &Frame{scope: Array, index: -1, parent: parent}
}

// NewObject returns a frame for an object opened inside parent.
func NewObject(parent *Frame) *Frame {
	return &Frame{scope: Object, index: -1, parent: parent}
}

func (f *Frame) Scope() Scope {
	return f.scope
}

func (f *Frame) InRoot() bool {
	return f.scope == Root
}

func (f *Frame) InArray() bool {
	return f.scope == Array
}

func (f *Frame) InObject() bool {
	return f.scope == Object
}

// Index is the position of the current value within the frame: the
// element index in arrays, the member ordinal in objects and the number of
// top-level values seen in the root, minus one. It is -1 before the first
// value.
func (f *Frame) Index() int {
	return f.index
}

// Name is the current member name. It is empty outside objects.
func (f *Frame) Name() string {
	return f.name
}

// Parent is nil for the root frame.
func (f *Frame) Parent() *Frame {
	return f.parent
}

// Advance moves the frame to its next value.
func (f *Frame) Advance() {
	f.index++
}

// SetName records the member name announced by a field-name event.
func (f *Frame) SetName(name string) {
	f.name = name
}
