package syntax

// Cursor is a read-only view over pattern text with a monotonically
// advancing position. All reads are bounded: no operation ever looks
// past the end of the text.
type Cursor struct {
	text string
	pos  int
}

// NewCursor creates a cursor positioned at the start of text.
func NewCursor(text string) *Cursor {
	return &Cursor{text: text}
}

// Peek returns true if the next character equals c.
// Returns false at end of text.
func (c *Cursor) Peek(b byte) bool {
	return c.pos < len(c.text) && c.text[c.pos] == b
}

// PeekWindow returns true if at least n characters remain and pred holds
// for the next n characters. Returns false when fewer than n remain.
func (c *Cursor) PeekWindow(n int, pred func([]byte) bool) bool {
	if c.pos+n > len(c.text) {
		return false
	}
	return pred([]byte(c.text[c.pos : c.pos+n]))
}

// At returns the character n positions ahead of the cursor and true,
// or 0 and false when fewer than n+1 characters remain.
func (c *Cursor) At(n int) (byte, bool) {
	if c.pos+n >= len(c.text) {
		return 0, false
	}
	return c.text[c.pos+n], true
}

// Advance moves the cursor forward by n characters, clamped to the end
// of the text. The position never decreases.
func (c *Cursor) Advance(n int) {
	c.pos += n
	if c.pos > len(c.text) {
		c.pos = len(c.text)
	}
}

// AtEnd returns true when the cursor has consumed all text.
func (c *Cursor) AtEnd() bool {
	return c.pos >= len(c.text)
}

// Pos returns the current position in the pattern text.
// Used for error reporting.
func (c *Cursor) Pos() int {
	return c.pos
}
