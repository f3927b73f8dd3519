package main

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/goccy/go-yaml/ast"
	"github.com/google/uuid"

	"github.com/jacoelho/jptr/internal/config"
	"github.com/jacoelho/jptr/internal/exit"
	"github.com/jacoelho/jptr/internal/jsonptr"
	"github.com/jacoelho/jptr/internal/jsonread"
	"github.com/jacoelho/jptr/internal/linerec"
	"github.com/jacoelho/jptr/internal/nodetype"
	"github.com/jacoelho/jptr/internal/output"
	"github.com/jacoelho/jptr/internal/selector"
	"github.com/jacoelho/jptr/internal/yamlptr"
	"github.com/jacoelho/jptr/internal/yamltok"
)

func main() {
	os.Exit(run(os.Args, os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, exitResult := config.Parse(args)
	if exitResult != nil {
		return exitResult.Print(stdout, stderr)
	}

	if exitResult := execute(cfg, stdin, stdout, stderr); exitResult != nil {
		return exitResult.Print(stdout, stderr)
	}

	return exit.CodeSuccess
}

func execute(cfg *config.Config, stdin io.Reader, stdout, stderr io.Writer) *exit.Result {
	log := slog.New(slog.DiscardHandler)
	if cfg.Debug {
		log = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug})).
			With("run", uuid.NewString(), "file", cfg.File)
	}

	src, err := readInput(cfg.File, stdin)
	if err != nil {
		return exit.Errorf("Error: %v\n", err)
	}

	doc, err := readDocument(cfg, src, log)
	if err != nil {
		return exit.Errorf("Error: %s: %v\n", cfg.File, err)
	}

	formatter := newFormatter(cfg, stdout)

	switch {
	case cfg.JSONPath != "":
		lookups, lookupErr := selectLookups(cfg.JSONPath, doc, log)
		if lookupErr != nil {
			return exit.Errorf("Error: %v\n", lookupErr)
		}
		err = formatter.Lookups(lookups)
	case len(cfg.Pointers) > 0:
		lookups, lookupErr := pointerLookups(cfg, doc)
		if lookupErr != nil {
			return exit.Errorf("Error: %v\n", lookupErr)
		}
		err = formatter.Lookups(lookups)
	default:
		err = formatter.Lines(doc.lines)
	}

	if err != nil {
		return exit.Errorf("Error: failed to write output: %v\n", err)
	}
	return nil
}

// document is a decoded input with the line of each of its nodes. YAML
// input also keeps its syntax tree, which pointers resolve against for
// lines.
type document struct {
	tree  any
	lines linerec.Map
	yaml  ast.Node
}

func readDocument(cfg *config.Config, src []byte, log *slog.Logger) (document, error) {
	reader := jsonread.New(jsonread.Config{FullRead: cfg.FullRead, Log: log})

	var (
		doc document
		err error
	)
	if cfg.IsYAML() {
		doc.yaml, err = yamltok.Parse(src, yamltok.Options{FullRead: cfg.FullRead})
		if err != nil {
			return document{}, err
		}
		doc.tree, doc.lines, err = reader.ReadYAMLNodeWithLines(doc.yaml)
	} else {
		doc.tree, doc.lines, err = reader.ReadWithLines(bytes.NewReader(src))
	}
	return doc, err
}

// line prefers the syntax tree. Pointers that pass through an alias do not
// resolve there and fall back to the recorded lines.
func (d document) line(p jsonptr.Pointer) int {
	if d.yaml != nil {
		if line, ok := yamlptr.FromJSON(p).Line(d.yaml); ok {
			return line
		}
	}
	line, _ := d.lines.Line(p)
	return line
}

func (d document) lookup(p jsonptr.Pointer) (output.Lookup, error) {
	lookup := output.Lookup{Pointer: p.String()}

	v, ok := p.Get(d.tree)
	if !ok {
		return lookup, nil
	}

	kind, err := nodetype.Of(v)
	if err != nil {
		return output.Lookup{}, fmt.Errorf("value at %s: %w", p, err)
	}

	lookup.Found = true
	lookup.Line = d.line(p)
	lookup.Type = kind.String()
	lookup.Value = v
	return lookup, nil
}

func readInput(file string, stdin io.Reader) ([]byte, error) {
	if file == config.Stdin {
		src, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read standard input: %w", err)
		}
		return src, nil
	}

	src, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", file, err)
	}
	return src, nil
}

func newFormatter(cfg *config.Config, stdout io.Writer) output.Formatter {
	if cfg.Format == config.FormatJSON {
		return output.NewJSON(stdout)
	}

	colored := !cfg.NoColor && !color.NoColor && stdout == io.Writer(os.Stdout)
	return output.NewText(stdout, colored)
}

func pointerLookups(cfg *config.Config, doc document) ([]output.Lookup, error) {
	cache, err := jsonptr.NewCache(cfg.CacheSize)
	if err != nil {
		return nil, err
	}

	lookups := make([]output.Lookup, 0, len(cfg.Pointers))
	for _, text := range cfg.Pointers {
		p, err := cache.Parse(text)
		if err != nil {
			return nil, err
		}

		lookup, err := doc.lookup(p)
		if err != nil {
			return nil, err
		}
		lookups = append(lookups, lookup)
	}

	return lookups, nil
}

func selectLookups(expr string, doc document, log *slog.Logger) ([]output.Lookup, error) {
	sel, err := selector.Compile(expr)
	if err != nil {
		return nil, err
	}

	matches, err := sel.Select(doc.tree)
	if err != nil {
		return nil, err
	}
	log.Debug("selected", "jsonpath", sel, "matches", len(matches))

	lookups := make([]output.Lookup, len(matches))
	for i, m := range matches {
		if lookups[i], err = doc.lookup(m.Pointer); err != nil {
			return nil, err
		}
	}

	return lookups, nil
}
