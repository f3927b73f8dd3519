package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/jacoelho/jptr/internal/exit"
	"github.com/jacoelho/jptr/internal/jsonptr"
)

// Stdin is the file argument that reads the document from standard input.
const Stdin = "-"

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

var (
	ErrNoArguments        = errors.New("no arguments provided")
	ErrNoInputFile        = errors.New("no input file specified")
	ErrInvalidFormat      = errors.New("format must be text or json")
	ErrInvalidCacheSize   = errors.New("cache size cannot be negative")
	ErrPointerAndJSONPath = errors.New("pointers and --jsonpath cannot be combined")
)

// Config represents the complete configuration for the jptr tool.
type Config struct {
	File     string
	Pointers []string
	JSONPath string

	Format    Format
	YAML      bool
	FullRead  bool
	NoColor   bool
	CacheSize int
	Debug     bool
}

// IsYAML reports whether the input is read as YAML, either because it was
// requested or because of the file extension.
func (c *Config) IsYAML() bool {
	if c.YAML {
		return true
	}

	switch strings.ToLower(filepath.Ext(c.File)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// Validate validates the configuration and returns an error if invalid.
func (c *Config) Validate() error {
	if c.File == "" {
		return ErrNoInputFile
	}

	if c.File != Stdin {
		if _, err := os.Stat(c.File); err != nil {
			return fmt.Errorf("input file %s not found: %w", c.File, err)
		}
	}

	if c.Format != FormatText && c.Format != FormatJSON {
		return fmt.Errorf("%w, got: %s", ErrInvalidFormat, c.Format)
	}

	if c.CacheSize < 0 {
		return ErrInvalidCacheSize
	}

	if len(c.Pointers) > 0 && c.JSONPath != "" {
		return ErrPointerAndJSONPath
	}

	for _, p := range c.Pointers {
		if _, err := jsonptr.ParseReference(p); err != nil {
			return err
		}
	}

	return nil
}

// Parse parses command-line arguments and returns a validated Config.
// If parsing fails or help is requested, returns nil config and exit result.
func Parse(args []string) (*Config, *exit.Result) {
	if len(args) == 0 {
		return nil, exit.Errorf("Error: %v\n\n%s", ErrNoArguments, Usage())
	}

	fs := flag.NewFlagSet(args[0], flag.ContinueOnError)

	// Suppress the default usage output since we handle it ourselves
	fs.Usage = func() {}
	// Suppress error output since we handle it ourselves
	fs.SetOutput(io.Discard)

	var (
		format    = fs.String("format", string(FormatText), "Output format: text or json")
		yaml      = fs.Bool("yaml", false, "Read the input as YAML")
		fullRead  = fs.Bool("full-read", false, "Fail when input continues after the first value")
		jsonPath  = fs.String("jsonpath", "", "Select nodes with a JSONPath expression")
		noColor   = fs.Bool("no-color", false, "Disable colored output")
		cacheSize = fs.Int("cache-size", jsonptr.DefaultCacheSize, "Number of parsed pointers to cache")
		debug     = fs.Bool("debug", false, "Log every recorded pointer to stderr")
	)

	if err := fs.Parse(args[1:]); err != nil {
		if err == flag.ErrHelp {
			return nil, exit.Success(Usage())
		}
		return nil, exit.Errorf("Error: failed to parse arguments: %v\n\n%s", err, Usage())
	}

	positional := fs.Args()
	if len(positional) == 0 {
		return nil, exit.Errorf("Error: %v\n\n%s", ErrNoInputFile, Usage())
	}

	config := &Config{
		File:      positional[0],
		Pointers:  positional[1:],
		JSONPath:  *jsonPath,
		Format:    Format(*format),
		YAML:      *yaml,
		FullRead:  *fullRead,
		NoColor:   *noColor,
		CacheSize: *cacheSize,
		Debug:     *debug,
	}

	if err := config.Validate(); err != nil {
		return nil, exit.Errorf("Error: %v\n\n%s", err, Usage())
	}

	return config, nil
}

// Usage returns a usage string for the CLI tool.
func Usage() string {
	return `jptr - locate JSON Pointers in JSON and YAML documents

Usage: jptr [options] <file> [pointer...]

Without pointers, prints every addressable node with the line it starts on.
With pointers, prints each pointer with its line, type and value.
Pointers may also be given as URI fragments, such as '#/a~1b'.
Use - as file to read standard input.

Options:
  --format FORMAT         Output format: text or json (default: text)
  --yaml                  Read the input as YAML (implied by .yaml and .yml)
  --full-read             Fail when input continues after the first value
  --jsonpath EXPR         Select nodes with a JSONPath expression
  --no-color              Disable colored output
  --cache-size N          Number of parsed pointers to cache (default: 1024)
  --debug                 Log every recorded pointer to stderr
  -h, --help              Show this help message

Examples:
  jptr doc.json                          # Print the line of every node
  jptr doc.json /items/0 /name           # Print line and value of two nodes
  jptr doc.json '#/a%20b'                # Same, from a URI fragment
  jptr --jsonpath '$..id' doc.json       # Print line and value of every id
  jptr --format json config.yaml         # Line map of a YAML file as JSON
  cat doc.json | jptr --full-read -      # Read stdin, reject trailing input`
}
