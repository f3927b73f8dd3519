package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/jacoelho/jptr/internal/exit"
	"github.com/jacoelho/jptr/internal/jsonptr"
	"github.com/jacoelho/jptr/internal/pointer"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestParse(t *testing.T) {
	doc := writeFile(t, "doc.json", `{"a": 1}`)

	tests := []struct {
		name string
		args []string
		want *Config
	}{
		{
			name: "defaults",
			args: []string{"jptr", doc},
			want: &Config{File: doc, Pointers: []string{}, Format: FormatText, CacheSize: jsonptr.DefaultCacheSize},
		},
		{
			name: "pointers",
			args: []string{"jptr", doc, "/a", "", "/b~1c"},
			want: &Config{File: doc, Pointers: []string{"/a", "", "/b~1c"}, Format: FormatText, CacheSize: jsonptr.DefaultCacheSize},
		},
		{
			name: "all flags",
			args: []string{"jptr", "--format", "json", "--yaml", "--full-read", "--jsonpath", "$.a", "--no-color", "--cache-size", "8", "--debug", doc},
			want: &Config{
				File:      doc,
				Pointers:  []string{},
				JSONPath:  "$.a",
				Format:    FormatJSON,
				YAML:      true,
				FullRead:  true,
				NoColor:   true,
				CacheSize: 8,
				Debug:     true,
			},
		},
		{
			name: "stdin",
			args: []string{"jptr", "-"},
			want: &Config{File: Stdin, Pointers: []string{}, Format: FormatText, CacheSize: jsonptr.DefaultCacheSize},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, result := Parse(tt.args)
			if result != nil {
				t.Fatalf("Parse() unexpected exit result: %q", result.Message)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Parse() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	doc := writeFile(t, "doc.json", `{}`)

	tests := []struct {
		name    string
		args    []string
		code    int
		message string
	}{
		{"no arguments", nil, exit.CodeFailure, ErrNoArguments.Error()},
		{"no file", []string{"jptr"}, exit.CodeFailure, ErrNoInputFile.Error()},
		{"help", []string{"jptr", "-h"}, exit.CodeSuccess, "Usage: jptr"},
		{"unknown flag", []string{"jptr", "--nope", doc}, exit.CodeFailure, "failed to parse arguments"},
		{"missing file", []string{"jptr", filepath.Join(t.TempDir(), "missing.json")}, exit.CodeFailure, "not found"},
		{"bad format", []string{"jptr", "--format", "xml", doc}, exit.CodeFailure, ErrInvalidFormat.Error()},
		{"negative cache", []string{"jptr", "--cache-size", "-1", doc}, exit.CodeFailure, ErrInvalidCacheSize.Error()},
		{"pointer and jsonpath", []string{"jptr", "--jsonpath", "$", doc, "/a"}, exit.CodeFailure, ErrPointerAndJSONPath.Error()},
		{"malformed pointer", []string{"jptr", doc, "a"}, exit.CodeFailure, "malformed pointer"},
		{"malformed escape", []string{"jptr", doc, "/a~2"}, exit.CodeFailure, "malformed token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, result := Parse(tt.args)
			if cfg != nil {
				t.Fatalf("Parse() = %+v, want nil config", cfg)
			}
			if result == nil {
				t.Fatal("Parse() returned no exit result")
			}
			if result.ExitCode != tt.code {
				t.Errorf("ExitCode = %d, want %d", result.ExitCode, tt.code)
			}
			if !strings.Contains(result.Message, tt.message) {
				t.Errorf("Message = %q, want it to contain %q", result.Message, tt.message)
			}
		})
	}
}

func TestIsYAML(t *testing.T) {
	tests := []struct {
		cfg  Config
		want bool
	}{
		{Config{File: "doc.json"}, false},
		{Config{File: "doc.yaml"}, true},
		{Config{File: "DOC.YML"}, true},
		{Config{File: "-"}, false},
		{Config{File: "-", YAML: true}, true},
	}

	for _, tt := range tests {
		if got := tt.cfg.IsYAML(); got != tt.want {
			t.Errorf("IsYAML(%+v) = %t, want %t", tt.cfg, got, tt.want)
		}
	}
}

func TestValidateWrapsPointerErrors(t *testing.T) {
	cfg := &Config{File: Stdin, Format: FormatText, Pointers: []string{"nope"}}

	if err := cfg.Validate(); !errors.Is(err, pointer.ErrMalformedPointer) {
		t.Errorf("Validate() error = %v, want malformed pointer", err)
	}
}

func TestValidateAcceptsURIFragments(t *testing.T) {
	cfg := &Config{File: Stdin, Format: FormatText, Pointers: []string{"#/a~1b", "#/c%25d", "/e"}}

	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() unexpected error: %v", err)
	}

	cfg.Pointers = []string{"#nope"}
	if err := cfg.Validate(); !errors.Is(err, pointer.ErrMalformedPointer) {
		t.Errorf("Validate() error = %v, want malformed pointer", err)
	}
}
