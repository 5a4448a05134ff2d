// Package manifest loads matcher definitions from YAML, TOML or JSON files.
//
// A manifest holds the matchgen.Config fields at the top level and the
// entries under "entries", either as a list of {key, value} objects or as a
// key-to-value map:
//
//	func: decodeEntity
//	type: rune
//	strategy: flat
//	entries:
//	  "&amp;": "'&'"
//	  "&lt;": "'<'"
//
// With "escaped: true" keys are read with Go string escapes (\xNN, \n, \u00e9),
// so binary sequences can be written in text formats.
package manifest
