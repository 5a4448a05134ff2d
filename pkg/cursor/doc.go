/*
Package cursor provides forward-only byte cursors for matchers generated with
the cursor input mode.

A generated cursor matcher takes a pointer to any value type with a
Next() (byte, bool) method. It duplicates the cursor by copying the value and
rolls back by assigning the copy, so a cursor must be a plain value whose
copies share no mutable state. Bytes and String satisfy that contract.

	cur := cursor.New(input)
	if v, ok := decodeEntity(&cur); ok {
		// cur.Rest() holds what follows the entity.
	}
*/
package cursor
