package cli

import (
	"fmt"
	"path/filepath"

	"github.com/aretw0/matchgen/internal/presentation/graph"
	"github.com/aretw0/matchgen/internal/presentation/report"
	"github.com/aretw0/matchgen/internal/presentation/tui"
	"github.com/aretw0/matchgen/pkg/manifest"
)

// InspectOptions configure the inspect command.
type InspectOptions struct {
	MaxEntries int
	Samples    []string
	Mermaid    bool
	// Raw prints the Markdown source instead of rendering it.
	Raw bool
	// Styled enables colours; callers set it when Stdout is a terminal.
	Styled bool
	Width  int
}

// Inspect prints a report on the manifest at path.
func Inspect(env Env, path string, opts InspectOptions) error {
	m, err := manifest.Load(path)
	if err != nil {
		return err
	}
	mt, err := m.Matcher()
	if err != nil {
		return err
	}

	samples := make([][]byte, len(opts.Samples))
	for i, p := range opts.Samples {
		if m.Escaped {
			if samples[i], err = manifest.Unescape(p); err != nil {
				return fmt.Errorf("sample %q: %w", p, err)
			}
		} else {
			samples[i] = []byte(p)
		}
	}

	md := report.Markdown(report.Report{
		Title:      filepath.Base(path),
		Config:     mt.Config(),
		Tree:       mt.Tree(),
		MaxEntries: opts.MaxEntries,
		Samples:    samples,
		Mermaid:    opts.Mermaid,
	})
	if opts.Raw {
		_, err := fmt.Fprint(env.Stdout, md)
		return err
	}

	width := opts.Width
	if width <= 0 {
		width = 80
	}
	render, err := tui.NewRenderer(width, opts.Styled)
	if err != nil {
		return fmt.Errorf("creating renderer: %w", err)
	}
	out, err := render(md)
	if err != nil {
		return fmt.Errorf("rendering report: %w", err)
	}
	_, err = fmt.Fprint(env.Stdout, out)
	return err
}

// Graph prints the trie of the manifest at path as a Mermaid flowchart.
// With a non-empty input the nodes it walks through are highlighted.
func Graph(env Env, path, input string) error {
	m, err := manifest.Load(path)
	if err != nil {
		return err
	}
	mt, err := m.Matcher()
	if err != nil {
		return err
	}

	var overlay *graph.GraphOverlay
	if input != "" {
		overlay = &graph.GraphOverlay{Input: []byte(input)}
		if m.Escaped {
			if overlay.Input, err = manifest.Unescape(input); err != nil {
				return fmt.Errorf("input %q: %w", input, err)
			}
		}
	}
	_, err = fmt.Fprint(env.Stdout, graph.GenerateMermaid(mt.Tree(), overlay))
	return err
}
