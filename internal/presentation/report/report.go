// Package report summarises a matcher as Markdown: its configuration, the
// shape of its trie, its entries and optionally how sample inputs match.
package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aretw0/matchgen"
	"github.com/aretw0/matchgen/internal/presentation/graph"
	"github.com/aretw0/matchgen/pkg/trie"
)

// Report is the input of Markdown.
type Report struct {
	Title  string
	Config matchgen.Config
	Tree   *trie.Tree
	// MaxEntries caps the entry table. Zero lists every entry.
	MaxEntries int
	// Samples are inputs whose longest match is shown.
	Samples [][]byte
	// Mermaid appends the trie as a mermaid code block.
	Mermaid bool
}

// Markdown renders r.
func Markdown(r Report) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\n", r.Title)

	cfg := r.Config
	sb.WriteString("| Setting | Value |\n|---|---|\n")
	row(&sb, "Function", code(cfg.FuncName))
	row(&sb, "Value type", code(cfg.ValueType))
	row(&sb, "Input", string(cfg.Input))
	if cfg.Input == matchgen.InputSlice {
		row(&sb, "Input type", code(cfg.InputType))
		row(&sb, "Strategy", string(cfg.Strategy))
		row(&sb, "Result", string(cfg.Result))
	}
	if cfg.Package != "" {
		row(&sb, "Package", code(cfg.Package))
	}

	stats := r.Tree.Stats()
	sb.WriteString("\n## Trie\n\n| Entries | Nodes | Max depth | Key bytes |\n|---|---|---|---|\n")
	fmt.Fprintf(&sb, "| %d | %d | %d | %d |\n", stats.Entries, stats.Nodes, stats.MaxDepth, stats.KeyBytes)

	entries := r.Tree.Entries()
	fmt.Fprintf(&sb, "\n## Entries\n\n")
	if len(entries) == 0 {
		sb.WriteString("_No entries._\n")
	} else {
		shown := entries
		if r.MaxEntries > 0 && len(shown) > r.MaxEntries {
			shown = shown[:r.MaxEntries]
		}
		sb.WriteString("| Key | Length | Value |\n|---|---|---|\n")
		for _, e := range shown {
			fmt.Fprintf(&sb, "| %s | %d | %s |\n", code(strconv.Quote(string(e.Key))), len(e.Key), code(e.Value))
		}
		if hidden := len(entries) - len(shown); hidden > 0 {
			fmt.Fprintf(&sb, "\n_%d more entries not shown._\n", hidden)
		}
	}

	if len(r.Samples) > 0 {
		sb.WriteString("\n## Samples\n\n| Input | Match | Consumed |\n|---|---|---|\n")
		for _, in := range r.Samples {
			_, match := graph.Trace(r.Tree, in)
			if match == nil {
				fmt.Fprintf(&sb, "| %s | no match | 0 |\n", code(strconv.Quote(string(in))))
				continue
			}
			v, _ := match.Value()
			fmt.Fprintf(&sb, "| %s | %s | %d |\n", code(strconv.Quote(string(in))), code(v), match.Depth())
		}
	}

	if r.Mermaid {
		sb.WriteString("\n## Graph\n\n```mermaid\n")
		sb.WriteString(graph.GenerateMermaid(r.Tree, nil))
		sb.WriteString("```\n")
	}
	return sb.String()
}

func row(sb *strings.Builder, name, value string) {
	fmt.Fprintf(sb, "| %s | %s |\n", name, value)
}

// code wraps s in a code span, escaping the table separator.
func code(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	if strings.Contains(s, "`") {
		return "`` " + s + " ``"
	}
	return "`" + s + "`"
}
