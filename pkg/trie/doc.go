/*
Package trie builds the decision structure that matchgen renders into Go code.

A Builder accumulates (key, value) entries into a byte-keyed prefix tree. Once
all entries are added, Build freezes the structure and returns a Tree, which
the code generators only ever read.

# Key Entities

  - Entry: a non-empty byte sequence and the Go expression returned when it matches.
  - Node: the state after consuming a prefix. It may hold a terminal value and children at the same time.
  - Tree: the frozen, single-rooted structure. Children are always visited in ascending byte order,
    so output built from a Tree does not depend on insertion order.
*/
package trie
