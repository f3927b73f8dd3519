package pointer

import (
	"errors"
	"testing"
)

func TestFromCooked(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cooked  string
		wantRaw string
		wantErr error
	}{
		{name: "plain", cooked: "foo", wantRaw: "foo"},
		{name: "empty", cooked: "", wantRaw: ""},
		{name: "tilde", cooked: "~0", wantRaw: "~"},
		{name: "slash", cooked: "~1", wantRaw: "/"},
		{name: "mixed", cooked: "a~1b~0c", wantRaw: "a/b~c"},
		{name: "escape of escape", cooked: "~01", wantRaw: "~1"},
		{name: "unicode", cooked: "café~1x", wantRaw: "café/x"},
		{name: "empty escape", cooked: "whatever~", wantErr: ErrMalformedToken},
		{name: "lone escape", cooked: "~", wantErr: ErrMalformedToken},
		{name: "illegal escape", cooked: "~a", wantErr: ErrMalformedToken},
		{name: "illegal escape digit", cooked: "x~2", wantErr: ErrMalformedToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := FromCooked(tt.cooked)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("FromCooked(%q) error = %v, want %v", tt.cooked, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("FromCooked(%q) unexpected error: %v", tt.cooked, err)
			}
			if got.Raw() != tt.wantRaw {
				t.Fatalf("FromCooked(%q).Raw() = %q, want %q", tt.cooked, got.Raw(), tt.wantRaw)
			}
			if got.Cooked() != tt.cooked {
				t.Fatalf("FromCooked(%q).Cooked() = %q, want %q", tt.cooked, got.Cooked(), tt.cooked)
			}
		})
	}
}

func TestFromRawRoundTrip(t *testing.T) {
	t.Parallel()

	raws := []string{"", "a", "~", "/", "~/", "/~", "~0", "~1", "a/b/c", "x~y~z", "  ", "☃/☃"}

	for _, raw := range raws {
		token := FromRaw(raw)

		back, err := FromCooked(token.Cooked())
		if err != nil {
			t.Fatalf("FromCooked(FromRaw(%q).Cooked()) unexpected error: %v", raw, err)
		}
		if !back.Equal(token) {
			t.Fatalf("FromCooked(%q) = %q, want raw %q", token.Cooked(), back.Raw(), raw)
		}
		if back != token {
			t.Fatalf("round trip of %q changed token: %#v != %#v", raw, back, token)
		}
	}
}

func TestFromRawEncoding(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"~":   "~0",
		"/":   "~1",
		"~1":  "~01",
		"a/b": "a~1b",
		"":    "",
	}

	for raw, want := range tests {
		if got := FromRaw(raw).Cooked(); got != want {
			t.Errorf("FromRaw(%q).Cooked() = %q, want %q", raw, got, want)
		}
	}
}

func TestFromIndex(t *testing.T) {
	t.Parallel()

	tests := []struct {
		index int
		want  string
	}{
		{0, "0"},
		{7, "7"},
		{1234, "1234"},
		{-1, "-1"},
	}

	for _, tt := range tests {
		token := FromIndex(tt.index)
		if token.Raw() != tt.want || token.Cooked() != tt.want {
			t.Errorf("FromIndex(%d) = (%q, %q), want %q", tt.index, token.Raw(), token.Cooked(), tt.want)
		}
	}
}

func TestTokenEqualityUsesRaw(t *testing.T) {
	t.Parallel()

	a := FromRaw("a/b")
	b, err := FromCooked("a~1b")
	if err != nil {
		t.Fatal(err)
	}

	if !a.Equal(b) {
		t.Fatalf("%q.Equal(%q) = false, want true", a, b)
	}
	if a.Hash() != b.Hash() {
		t.Fatalf("Hash mismatch for equal tokens: %d != %d", a.Hash(), b.Hash())
	}
	if a.Equal(FromRaw("a~1b")) {
		t.Fatal("tokens with different raw text compared equal")
	}
}
