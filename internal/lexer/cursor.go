package lexer

import "lox/internal/source"

// Cursor is a single forward-moving read head over one source file's
// byte content, tracking the 1-based line the read head is currently on.
type Cursor struct {
	File *source.File
	Off  uint32
	Line uint32
}

// NewCursor creates a cursor positioned at the start of f, on line 1.
func NewCursor(f *source.File) Cursor {
	return Cursor{File: f, Off: 0, Line: 1}
}

// EOF reports whether the cursor has consumed all of the file's content.
func (c *Cursor) EOF() bool {
	return int(c.Off) >= len(c.File.Content)
}

// Peek returns the byte under the cursor without consuming it, or 0 at EOF.
func (c *Cursor) Peek() byte {
	if c.EOF() {
		return 0
	}
	return c.File.Content[c.Off]
}

// PeekNext returns the byte one past the cursor without consuming
// anything, or 0 if that would be past the end of the file.
func (c *Cursor) PeekNext() byte {
	if int(c.Off+1) >= len(c.File.Content) {
		return 0
	}
	return c.File.Content[c.Off+1]
}

// Bump consumes and returns the byte under the cursor, advancing the line
// counter on '\n'.
func (c *Cursor) Bump() byte {
	if c.EOF() {
		return 0
	}
	b := c.File.Content[c.Off]
	c.Off++
	if b == '\n' {
		c.Line++
	}
	return b
}

// Eat consumes the byte under the cursor if it equals b, reporting
// whether it did. This is the scanner's one-byte lookahead for two-char
// operators.
func (c *Cursor) Eat(b byte) bool {
	if c.Peek() != b {
		return false
	}
	c.Bump()
	return true
}

// Mark captures a cursor position so a later SpanFrom can recover the
// lexeme scanned since.
type Mark struct {
	Off  uint32
	Line uint32
}

// Mark snapshots the current position.
func (c *Cursor) Mark() Mark {
	return Mark{Off: c.Off, Line: c.Line}
}

// SpanFrom returns the span covering bytes from m up to (not including)
// the cursor's current position.
func (c *Cursor) SpanFrom(m Mark) source.Span {
	return source.Span{File: c.File.ID, Start: m.Off, End: c.Off}
}

// Lexeme returns the raw source text covering sp.
func (c *Cursor) Lexeme(sp source.Span) string {
	return string(c.File.Content[sp.Start:sp.End])
}
