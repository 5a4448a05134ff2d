package trie

import (
	"errors"
	"fmt"
)

// Builder accumulates entries into a prefix tree.
// The zero value is not usable; call NewBuilder.
type Builder struct {
	root  *Node
	tree  *Tree
	stats Stats
}

// NewBuilder creates an empty builder.
func NewBuilder() *Builder {
	return &Builder{
		root: &Node{},
	}
}

// Add registers key with the given value expression.
// The key is not retained, so callers may reuse its buffer.
//
// A failed Add leaves every previously added entry intact.
func (b *Builder) Add(key []byte, value string) error {
	if b.tree != nil {
		return fmt.Errorf("add %q: %w", key, ErrFrozen)
	}
	if len(key) == 0 {
		return ErrEmptySequence
	}

	// A duplicate key only walks existing nodes, so the rejection below
	// never leaves new nodes behind.
	n := b.root
	for _, c := range key {
		n = n.childOrCreate(c)
	}
	if n.terminal {
		return fmt.Errorf("%w: %q", ErrDuplicateSequence, key)
	}

	n.value = value
	n.terminal = true
	b.stats.Entries++
	b.stats.KeyBytes += len(key)
	b.stats.MaxDepth = max(b.stats.MaxDepth, len(key))
	return nil
}

// AddString is Add for string keys.
func (b *Builder) AddString(key, value string) error {
	return b.Add([]byte(key), value)
}

// Extend adds every entry, continuing past failures.
// The returned error joins all individual failures.
func (b *Builder) Extend(entries ...Entry) error {
	var errs []error
	for _, e := range entries {
		if err := b.Add(e.Key, e.Value); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Len returns the number of entries added so far.
func (b *Builder) Len() int {
	return b.stats.Entries
}

// Build freezes the builder and returns the finished tree.
// Calling Build again returns the same tree.
func (b *Builder) Build() *Tree {
	if b.tree == nil {
		stats := b.stats
		stats.Nodes = countNodes(b.root)
		b.tree = &Tree{root: b.root, stats: stats}
	}
	return b.tree
}

// FromEntries builds a tree from entries in one step.
func FromEntries(entries ...Entry) (*Tree, error) {
	b := NewBuilder()
	if err := b.Extend(entries...); err != nil {
		return nil, err
	}
	return b.Build(), nil
}

func countNodes(n *Node) int {
	total := 1
	for _, e := range n.edges {
		total += countNodes(e.node)
	}
	return total
}
