package trie

import (
	"iter"
	"slices"
)

// Entry is a key and the Go expression the generated matcher returns for it.
type Entry struct {
	Key   []byte `json:"key" mapstructure:"key"`
	Value string `json:"value" mapstructure:"value"`
}

// Node is the state reached after consuming Depth() bytes of some key.
type Node struct {
	depth    int
	value    string
	terminal bool
	edges    []edge // sorted by label
}

type edge struct {
	label byte
	node  *Node
}

// Depth returns the number of bytes consumed to reach the node.
func (n *Node) Depth() int {
	return n.depth
}

// Value returns the terminal value, if a registered key ends at this node.
func (n *Node) Value() (string, bool) {
	return n.value, n.terminal
}

// IsLeaf reports whether the node has no children.
func (n *Node) IsLeaf() bool {
	return len(n.edges) == 0
}

// NumChildren returns the number of distinct next bytes.
func (n *Node) NumChildren() int {
	return len(n.edges)
}

// Child returns the child reached by b, or nil.
func (n *Node) Child(b byte) *Node {
	if i, ok := n.search(b); ok {
		return n.edges[i].node
	}
	return nil
}

// Children yields the children in ascending byte order.
func (n *Node) Children() iter.Seq2[byte, *Node] {
	return func(yield func(byte, *Node) bool) {
		for _, e := range n.edges {
			if !yield(e.label, e.node) {
				return
			}
		}
	}
}

func (n *Node) search(b byte) (int, bool) {
	return slices.BinarySearchFunc(n.edges, b, func(e edge, target byte) int {
		return int(e.label) - int(target)
	})
}

// childOrCreate returns the child for b, inserting a new one in order if needed.
func (n *Node) childOrCreate(b byte) *Node {
	i, ok := n.search(b)
	if ok {
		return n.edges[i].node
	}
	child := &Node{depth: n.depth + 1}
	n.edges = slices.Insert(n.edges, i, edge{label: b, node: child})
	return child
}
