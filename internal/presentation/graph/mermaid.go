package graph

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aretw0/matchgen/pkg/trie"
)

// GraphOverlay marks the walk taken by one input on the graph.
type GraphOverlay struct {
	// Input is matched against the tree; every node it reaches is styled
	// as visited and the node holding the longest match as current.
	Input []byte
}

// GenerateMermaid produces a Mermaid flowchart of the trie.
// It applies semantic styling:
// - Root: ((Circle))
// - Node holding a value: [[Subroutine]] labelled with the value
// - Other nodes: [Rectangle]
// Edges are labelled with the byte they consume.
func GenerateMermaid(t *trie.Tree, overlay *GraphOverlay) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	// Walk is pre-order, so IDs are stable for a given tree and every
	// parent is named before its children.
	ids := make(map[*trie.Node]string)
	t.Walk(func(prefix []byte, n *trie.Node) bool {
		id := fmt.Sprintf("n%d", len(ids))
		ids[n] = id

		opener, closer := "[", "]"
		label := escapeLabel(quotePrefix(prefix))
		switch v, ok := n.Value(); {
		case n == t.Root():
			opener, closer = "((", "))"
			label = "root"
		case ok:
			opener, closer = "[[", "]]"
			label = fmt.Sprintf("%s <br/> %s", label, escapeLabel(v))
		}
		fmt.Fprintf(&sb, "    %s%s\"%s\"%s\n", id, opener, label, closer)
		return true
	})

	// Edges go in a second pass, once every node has an ID.
	t.Walk(func(_ []byte, n *trie.Node) bool {
		for b, child := range n.Children() {
			fmt.Fprintf(&sb, "    %s -- \"%s\" --> %s\n", ids[n], escapeLabel(edgeLabel(b)), ids[child])
		}
		return true
	})

	// Apply Overlay Styles
	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text (color:#000) for high-contrast on light backgrounds, regardless of theme (Light/Dark)
		sb.WriteString("    classDef visited fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")

		visited, match := Trace(t, overlay.Input)
		for _, n := range visited {
			fmt.Fprintf(&sb, "    class %s visited;\n", ids[n])
		}
		if match != nil {
			fmt.Fprintf(&sb, "    class %s current;\n", ids[match])
		}
	}

	return sb.String()
}

// Trace follows input from the root. It returns every node reached, root
// included, and the deepest of them holding a value, or nil if none does.
func Trace(t *trie.Tree, input []byte) (visited []*trie.Node, match *trie.Node) {
	n := t.Root()
	visited = append(visited, n)
	for _, b := range input {
		if n = n.Child(b); n == nil {
			break
		}
		visited = append(visited, n)
		if _, ok := n.Value(); ok {
			match = n
		}
	}
	return visited, match
}

func quotePrefix(prefix []byte) string {
	return strconv.Quote(string(prefix))
}

func edgeLabel(b byte) string {
	if b >= 0x20 && b < 0x7f {
		return strconv.QuoteRuneToASCII(rune(b))
	}
	return fmt.Sprintf("0x%02x", b)
}

// escapeLabel makes s safe inside a double-quoted Mermaid label.
func escapeLabel(s string) string {
	s = strings.ReplaceAll(s, "&", "#amp;")
	s = strings.ReplaceAll(s, "\"", "#quot;")
	s = strings.ReplaceAll(s, "<", "#lt;")
	s = strings.ReplaceAll(s, ">", "#gt;")
	return s
}
