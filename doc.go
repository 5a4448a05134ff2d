/*
Package matchgen generates Go functions that find the longest registered byte
sequence at the start of an input.

It is meant to run at build time, usually behind go:generate. You register
(key, value) pairs where the value is a Go expression, pick how the generated
function reads its input, and render source text. Matching happens only in
the generated code; this package never looks at runtime input.

# Strategies

Three shapes of function can be generated from the same entries:

  - tree: nested switches, one per byte position, over a []byte or string.
  - flat: one switch comparing whole keys, longest first. It can return the
    consumed length instead of the remainder.
  - cursor: nested switches over a forward-only cursor (see pkg/cursor).
    The cursor is copied before reading past a node that holds a value and
    assigned back if the longer match fails.

All three return the same value and consume the same number of bytes for
the same input. When nothing matches they consume nothing.

# Usage

	m, err := matchgen.New(matchgen.Config{
		FuncName:  "decodeEntity",
		ValueType: "rune",
		Package:   "html",
	})
	if err != nil {
		log.Fatal(err)
	}
	_ = m.AddString("&amp;", "'&'")
	_ = m.AddString("&lt;", "'<'")

	if err := m.WriteFile("entities_gen.go"); err != nil {
		log.Fatal(err)
	}

The generated function has the signature

	func decodeEntity(in []byte) (v rune, rest []byte, ok bool)
*/
package matchgen
