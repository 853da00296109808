package sexp

// TokenCursor is a position over the tokenized document, expressed as
// (line, token index within line). Cursors are short-lived read-only
// views: any model Update invalidates them.
//
// The position one past the final token of the last line is a valid
// "past end" state with no current token.
type TokenCursor struct {
	model   *LineModel
	version int
	line    int
	token   int
}

// Valid reports whether the cursor still matches the model version it
// was created against.
func (c *TokenCursor) Valid() bool {
	return c.model != nil &&
		c.version == c.model.version
}

// normalize clamps the position and rolls an exhausted line forward to
// the next line that has tokens. Empty lines never hold a cursor.
func (c *TokenCursor) normalize() {
	m := c.model
	if len(m.lines) == 0 {
		c.line, c.token = 0, 0

		return
	}

	if c.line < 0 {
		c.line, c.token = 0, 0
	}
	if c.line >= len(m.lines) {
		c.line = len(m.lines) - 1
		c.token = len(m.lines[c.line].Tokens)
	}
	if c.token < 0 {
		c.token = 0
	}

	for c.line < len(m.lines)-1 &&
		c.token >= len(m.lines[c.line].Tokens) {
		c.line++
		c.token = 0
	}

	if last := len(m.lines) - 1; c.line == last &&
		c.token > len(m.lines[last].Tokens) {
		c.token = len(m.lines[last].Tokens)
	}
}

// Current returns the token under the cursor, if any.
func (c *TokenCursor) Current() (Token, bool) {
	c.normalize()
	line := c.model.Line(c.line)
	if c.token >= len(line.Tokens) {
		return Token{}, false
	}

	return line.Tokens[c.token], true
}

// Next steps one token forward, wrapping across lines. Stepping off the
// final token parks the cursor past the end and returns true; a cursor
// already past the end returns false.
func (c *TokenCursor) Next() bool {
	c.normalize()
	if c.AtEnd() {
		return false
	}
	c.token++
	c.normalize()

	return true
}

// Previous steps one token backward, wrapping across lines.
// Returns false at the start of the document.
func (c *TokenCursor) Previous() bool {
	c.normalize()

	if c.token > 0 {
		line := c.model.Line(c.line)
		if c.token > len(line.Tokens) {
			c.token = len(line.Tokens)
		}
		c.token--

		return true
	}

	for l := c.line - 1; l >= 0; l-- {
		if n := len(c.model.Line(l).Tokens); n > 0 {
			c.line = l
			c.token = n - 1

			return true
		}
	}

	return false
}

// AtStart reports whether no token precedes the cursor.
func (c *TokenCursor) AtStart() bool {
	probe := *c

	return !probe.Previous()
}

// AtEnd reports whether the cursor is past the final token.
func (c *TokenCursor) AtEnd() bool {
	_, ok := c.Current()

	return !ok
}

// OffsetStart returns the absolute offset of the current token's first
// character, or the document length when past the end.
func (c *TokenCursor) OffsetStart() int {
	tok, ok := c.Current()
	if !ok {
		return c.model.Length()
	}

	return c.model.OffsetForLine(c.line) + tok.Col
}

// OffsetEnd returns the absolute offset one past the current token.
func (c *TokenCursor) OffsetEnd() int {
	tok, ok := c.Current()
	if !ok {
		return c.model.Length()
	}

	return c.model.OffsetForLine(c.line) + tok.End()
}

// Clone returns an independent copy of the cursor. Exploration in the
// navigation algorithms always works on clones so failures can restore
// the original position.
func (c *TokenCursor) Clone() *TokenCursor {
	out := *c

	return &out
}

// Equals reports whether two cursors denote the same position.
func (c *TokenCursor) Equals(o *TokenCursor) bool {
	if o == nil || c.model != o.model {
		return false
	}
	a, b := *c, *o
	a.normalize()
	b.normalize()

	return a.line == b.line && a.token == b.token
}

// Set repositions the cursor at (line, token), clamped to valid range.
func (c *TokenCursor) Set(line, token int) {
	c.line = line
	c.token = token
	c.normalize()
}

// Line returns the cursor's line index.
func (c *TokenCursor) Line() int {
	return c.line
}

// TokenIndex returns the cursor's token index within its line.
func (c *TokenCursor) TokenIndex() int {
	return c.token
}

// IsType reports whether the current token has the given type.
func (c *TokenCursor) IsType(t TokenType) bool {
	tok, ok := c.Current()

	return ok && tok.Type == t
}

// IsWhitespace reports whether the current token is whitespace.
func (c *TokenCursor) IsWhitespace() bool {
	tok, ok := c.Current()

	return ok && tok.IsWhitespace()
}

// IsComment reports whether the current token is a comment.
func (c *TokenCursor) IsComment() bool {
	tok, ok := c.Current()

	return ok && tok.IsComment()
}
