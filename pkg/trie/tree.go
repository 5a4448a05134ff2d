package trie

// Stats summarises the shape of a tree.
type Stats struct {
	Entries  int // registered keys
	Nodes    int // including the root
	MaxDepth int // length of the longest key
	KeyBytes int // sum of all key lengths
}

// Tree is a frozen prefix tree. It is safe to read from multiple goroutines.
type Tree struct {
	root  *Node
	stats Stats
}

// Root returns the node for the empty prefix. It never holds a value.
func (t *Tree) Root() *Node {
	return t.root
}

// Stats returns counts collected while building.
func (t *Tree) Stats() Stats {
	return t.stats
}

// Len returns the number of entries.
func (t *Tree) Len() int {
	return t.stats.Entries
}

// Walk visits nodes in pre-order with children in ascending byte order,
// passing the prefix leading to each node. The prefix slice is reused
// between calls. Returning false skips the node's subtree.
func (t *Tree) Walk(fn func(prefix []byte, n *Node) bool) {
	prefix := make([]byte, 0, t.stats.MaxDepth)
	walk(t.root, prefix, fn)
}

func walk(n *Node, prefix []byte, fn func([]byte, *Node) bool) {
	if !fn(prefix, n) {
		return
	}
	for _, e := range n.edges {
		walk(e.node, append(prefix, e.label), fn)
	}
}

// Entries returns all entries in ascending key order.
func (t *Tree) Entries() []Entry {
	entries := make([]Entry, 0, t.stats.Entries)
	t.Walk(func(prefix []byte, n *Node) bool {
		if v, ok := n.Value(); ok {
			entries = append(entries, Entry{
				Key:   append([]byte(nil), prefix...),
				Value: v,
			})
		}
		return true
	})
	return entries
}
