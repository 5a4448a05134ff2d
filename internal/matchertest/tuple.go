package matchertest

// Tuple is the value type of SliceInTuple: whether the match ended in b,
// and one element per a matched.
type Tuple struct {
	Long bool
	Path []byte
}
