package jsonptr

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/jacoelho/jptr/internal/pointer"
)

const rfcDocument = `{
  "foo": ["bar", "baz"],
  "": 0,
  "a/b": 1,
  "c%d": 2,
  "e^f": 3,
  "g|h": 4,
  "i\\j": 5,
  "k\"l": 6,
  " ": 7,
  "m~n": 8
}`

func decode(t *testing.T, s string) any {
	t.Helper()

	var v any
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		t.Fatalf("decode test document: %v", err)
	}
	return v
}

func TestPointerResolvesRFCExamples(t *testing.T) {
	t.Parallel()

	doc := decode(t, rfcDocument)

	tests := []struct {
		pointer string
		want    any
	}{
		{"", doc},
		{"/foo", []any{"bar", "baz"}},
		{"/foo/0", "bar"},
		{"/", 0.0},
		{"/a~1b", 1.0},
		{"/c%d", 2.0},
		{"/e^f", 3.0},
		{"/g|h", 4.0},
		{"/i\\j", 5.0},
		{"/k\"l", 6.0},
		{"/ ", 7.0},
		{"/m~0n", 8.0},
	}

	for _, tt := range tests {
		p, err := Parse(tt.pointer)
		if err != nil {
			t.Fatalf("Parse(%q) unexpected error: %v", tt.pointer, err)
		}

		got, ok := p.Get(doc)
		if !ok {
			t.Fatalf("Parse(%q).Get() found nothing", tt.pointer)
		}
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("Parse(%q).Get() mismatch (-want +got):\n%s", tt.pointer, diff)
		}
		if p.String() != tt.pointer {
			t.Errorf("Parse(%q).String() = %q", tt.pointer, p.String())
		}
	}
}

func TestPointerResolvesURIFragments(t *testing.T) {
	t.Parallel()

	doc := decode(t, rfcDocument)

	tests := []struct {
		uri  string
		want any
	}{
		{"#/foo/0", "bar"},
		{"#/", 0.0},
		{"#/a~1b", 1.0},
		{"#/c%25d", 2.0},
		{"#/e%5Ef", 3.0},
		{"#/g%7Ch", 4.0},
		{"#/i%5Cj", 5.0},
		{"#/k%22l", 6.0},
		{"#/%20", 7.0},
		{"#/m~0n", 8.0},
	}

	for _, tt := range tests {
		p, err := ParseURIFragment(tt.uri)
		if err != nil {
			t.Fatalf("ParseURIFragment(%q) unexpected error: %v", tt.uri, err)
		}

		got, ok := p.Get(doc)
		if !ok || got != tt.want {
			t.Errorf("ParseURIFragment(%q).Get() = %v, %t, want %v", tt.uri, got, ok, tt.want)
		}
	}
}

func TestPointerMissing(t *testing.T) {
	t.Parallel()

	doc := decode(t, `{"a": [1, {"b": null}], "s": "x"}`)

	tests := []string{
		"/nope",
		"/a/2",
		"/a/00",
		"/a/-1",
		"/a/",
		"/a/0 ",
		"/a/ 0",
		"/a/99999999999999999999999",
		"/s/0",
		"/a/0/b",
	}

	for _, input := range tests {
		p := MustParse(input)

		if got, ok := p.Get(doc); ok {
			t.Errorf("Get(%q) = %v, want not found", input, got)
		}
		if got := p.Path(doc); !IsMissing(got) {
			t.Errorf("Path(%q) = %v, want Missing", input, got)
		}
	}

	got, ok := MustParse("/a/1/b").Get(doc)
	if !ok || got != nil {
		t.Fatalf("Get(/a/1/b) = %v, %t, want JSON null", got, ok)
	}
	if IsMissing(MustParse("/a/1/b").Path(doc)) {
		t.Fatal("Path() reported JSON null as missing")
	}
}

func TestEmptyPointerReturnsNodeItself(t *testing.T) {
	t.Parallel()

	nodes := []any{nil, true, 1.5, "s", []any{}, map[string]any{}}

	for _, node := range nodes {
		got, ok := Empty().Get(node)
		if !ok || !cmp.Equal(got, node) {
			t.Errorf("Empty().Get(%v) = %v, %t", node, got, ok)
		}
	}
}

func TestOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		got  Pointer
		want string
	}{
		{Of("a", "b"), "/a/b"},
		{Of("", "/", "~"), "//~1/~0"},
		{Of(1, "xx", 0), "/1/xx/0"},
		{Of(""), "/"},
	}

	for _, tt := range tests {
		want := MustParse(tt.want)
		if !tt.got.Equal(want) {
			t.Errorf("Of() = %q, want %q", tt.got, tt.want)
		}
		if tt.got.Hash() != want.Hash() {
			t.Errorf("Of() hash differs from Parse(%q) hash", tt.want)
		}
	}
}

func TestOfRejectsNil(t *testing.T) {
	t.Parallel()

	defer func() {
		err, ok := recover().(error)
		if !ok || !errors.Is(err, pointer.ErrNullInput) {
			t.Fatalf("Of(nil) panic = %v, want ErrNullInput", err)
		}
	}()

	Of("a", nil)
}

func TestAppend(t *testing.T) {
	t.Parallel()

	if got, want := MustParse("/foo/bar").Append("/0~"), MustParse("/foo/bar/~10~0"); !got.Equal(want) {
		t.Errorf("Append() = %q, want %q", got, want)
	}
	if got, want := MustParse("/foo/bar/").AppendIndex(33), MustParse("/foo/bar//33"); !got.Equal(want) {
		t.Errorf("AppendIndex() = %q, want %q", got, want)
	}
	if got, want := MustParse("/a/b").AppendPointer(MustParse("/c/d")), MustParse("/a/b/c/d"); !got.Equal(want) {
		t.Errorf("AppendPointer() = %q, want %q", got, want)
	}
	if got, want := Of("a", "b").Append("c"), Of("a", "b", "c"); !got.Equal(want) {
		t.Errorf("Append() = %q, want %q", got, want)
	}

	var zero Pointer
	if got := zero.Append("x"); got.String() != "/x" || !IsMissing(got.Path(nil)) {
		t.Errorf("zero value Append() = %q, Path() = %v", got, got.Path(nil))
	}
}

func TestAppendIsAssociativeAndPure(t *testing.T) {
	t.Parallel()

	p1, p2, p3 := MustParse("/a"), MustParse("/b/c"), MustParse("/~0/1")

	left := p1.AppendPointer(p2).AppendPointer(p3)
	right := p1.AppendPointer(p2.AppendPointer(p3))
	if !left.Equal(right) {
		t.Fatalf("append not associative: %q != %q", left, right)
	}

	base := MustParse("/x/y").Parent()
	a := base.Append("a")
	b := base.Append("b")
	if base.String() != "/x" || a.String() != "/x/a" || b.String() != "/x/b" {
		t.Fatalf("append mutated shared state: base=%q a=%q b=%q", base, a, b)
	}
}

func TestParent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		child Pointer
		want  Pointer
	}{
		{Empty(), Empty()},
		{Of(1), Empty()},
		{Of("a"), Empty()},
		{Of("a", "b"), Of("a")},
		{Of("a", "b", "c"), Of("a", "b")},
	}

	for _, tt := range tests {
		if got := tt.child.Parent(); !got.Equal(tt.want) {
			t.Errorf("%q.Parent() = %q, want %q", tt.child, got, tt.want)
		}
	}
}

func TestPointerRoundTrip(t *testing.T) {
	t.Parallel()

	inputs := []string{"", "/", "//", "/a/b", "/a~1b/~0", "/ /x", "/0/1/2", "/é/ü~1"}

	for _, input := range inputs {
		if got := MustParse(input).String(); got != input {
			t.Errorf("Parse(%q).String() = %q", input, got)
		}
	}
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  error
	}{
		{"a", pointer.ErrMalformedPointer},
		{"/a~", pointer.ErrMalformedToken},
		{"/~a", pointer.ErrMalformedToken},
	}

	for _, tt := range tests {
		if _, err := Parse(tt.input); !errors.Is(err, tt.want) {
			t.Errorf("Parse(%q) error = %v, want %v", tt.input, err, tt.want)
		}
	}
}

func TestPointerText(t *testing.T) {
	t.Parallel()

	type doc struct {
		Where Pointer `json:"where"`
	}

	encoded, err := json.Marshal(doc{Where: Of("a/b", 0)})
	if err != nil {
		t.Fatal(err)
	}
	if string(encoded) != `{"where":"/a~1b/0"}` {
		t.Fatalf("json.Marshal() = %s", encoded)
	}

	var decoded doc
	if err := json.Unmarshal(encoded, &decoded); err != nil {
		t.Fatal(err)
	}
	if !decoded.Where.Equal(Of("a/b", 0)) {
		t.Fatalf("json.Unmarshal() = %q", decoded.Where)
	}

	if err := json.Unmarshal([]byte(`{"where":"nope"}`), &decoded); !errors.Is(err, pointer.ErrMalformedPointer) {
		t.Fatalf("json.Unmarshal() error = %v, want ErrMalformedPointer", err)
	}
}
