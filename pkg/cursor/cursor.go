package cursor

// Bytes reads a byte slice from front to back.
type Bytes struct {
	buf []byte
	off int
}

// New returns a cursor positioned at the start of b.
func New(b []byte) Bytes {
	return Bytes{buf: b}
}

// Next returns the next byte and advances. It reports false at the end,
// without moving.
func (c *Bytes) Next() (byte, bool) {
	if c.off >= len(c.buf) {
		return 0, false
	}
	b := c.buf[c.off]
	c.off++
	return b, true
}

// Rest returns the unread part of the input.
func (c *Bytes) Rest() []byte {
	return c.buf[c.off:]
}

// Offset returns the number of bytes consumed so far.
func (c *Bytes) Offset() int {
	return c.off
}

// String reads a string from front to back.
type String struct {
	s   string
	off int
}

// NewString returns a cursor positioned at the start of s.
func NewString(s string) String {
	return String{s: s}
}

// Next returns the next byte and advances. It reports false at the end,
// without moving.
func (c *String) Next() (byte, bool) {
	if c.off >= len(c.s) {
		return 0, false
	}
	b := c.s[c.off]
	c.off++
	return b, true
}

// Rest returns the unread part of the input.
func (c *String) Rest() string {
	return c.s[c.off:]
}

// Offset returns the number of bytes consumed so far.
func (c *String) Offset() int {
	return c.off
}
