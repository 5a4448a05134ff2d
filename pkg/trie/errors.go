package trie

import "errors"

// ErrEmptySequence is returned when an entry with a zero-length key is added.
var ErrEmptySequence = errors.New("empty sequence")

// ErrDuplicateSequence is returned when a key already holds a value.
var ErrDuplicateSequence = errors.New("duplicate sequence")

// ErrFrozen is returned when adding to a Builder whose Tree was already built.
var ErrFrozen = errors.New("trie is frozen")
