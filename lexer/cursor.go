package lexer

// Cursor is an immutable view over the unconsumed tail of the input.
// Advancing returns a new Cursor; the remaining text is always a suffix
// of the original input and is never copied.
type Cursor struct {
	src string
	off int
}

// NewCursor creates a cursor at the start of the input.
func NewCursor(src string) Cursor {
	return Cursor{src: src}
}

// Rest returns the unconsumed remainder of the input.
func (c Cursor) Rest() string {
	return c.src[c.off:]
}

// Offset returns the byte offset of the cursor within the original input.
func (c Cursor) Offset() int {
	return c.off
}

// Done reports whether the input is exhausted.
func (c Cursor) Done() bool {
	return c.off >= len(c.src)
}

// Peek returns the character at the cursor without advancing.
func (c Cursor) Peek() (byte, bool) {
	if c.Done() {
		return 0, false
	}
	return c.src[c.off], true
}

// Advance returns a cursor moved one character forward.
func (c Cursor) Advance() Cursor {
	if c.Done() {
		return c
	}
	return Cursor{src: c.src, off: c.off + 1}
}

// slice returns the input text between two cursor positions.
func (c Cursor) slice(to Cursor) string {
	return c.src[c.off:to.off]
}
