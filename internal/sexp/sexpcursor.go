package sexp

// Sexp-aware navigation. All methods mutate the cursor in place and
// return whether they succeeded; on failure the cursor keeps its
// original position.

// matchingCloseFor resolves the close token (type and text) that pairs
// with an open-kind token.
func (c *TokenCursor) matchingCloseFor(
	open Token,
) (TokenType, string, bool) {
	if open.Type == TokenStrStart {
		return TokenStrEnd, open.Raw, true
	}
	closeRaw, ok := c.model.scanner.MatchingClose(open.Raw)
	if !ok {
		return 0, "", false
	}

	return TokenClose, closeRaw, true
}

// matchingOpenFor resolves the open token that pairs with a close-kind
// token.
func (c *TokenCursor) matchingOpenFor(
	close Token,
) (TokenType, string, bool) {
	if close.Type == TokenStrEnd {
		return TokenStrStart, close.Raw, true
	}
	openRaw, ok := c.model.scanner.MatchingOpen(close.Raw)
	if !ok {
		return 0, "", false
	}

	return TokenOpen, openRaw, true
}

// ForwardList scans from an open delimiter to its matching close and
// stops on the close. Only tokens of the same pair affect the depth
// count. Returns false (cursor unmoved) when the delimiter is
// unmatched or the cursor is not on an open.
func (c *TokenCursor) ForwardList() bool {
	open, ok := c.Current()
	if !ok || !open.IsOpenKind() {
		return false
	}
	closeType, closeRaw, ok := c.matchingCloseFor(open)
	if !ok {
		return false
	}

	save := *c
	depth := 1
	for c.Next() {
		tok, ok := c.Current()
		if !ok {
			break
		}
		switch {
		case tok.Type == open.Type && tok.Raw == open.Raw:
			depth++
		case tok.Type == closeType && tok.Raw == closeRaw:
			depth--
			if depth == 0 {
				return true
			}
		}
	}

	*c = save

	return false
}

// BackwardList scans from a close delimiter to its matching open and
// stops on the open. Mirror of ForwardList.
func (c *TokenCursor) BackwardList() bool {
	close, ok := c.Current()
	if !ok || !close.IsCloseKind() {
		return false
	}
	openType, openRaw, ok := c.matchingOpenFor(close)
	if !ok {
		return false
	}

	save := *c
	depth := 1
	for c.Previous() {
		tok, ok := c.Current()
		if !ok {
			break
		}
		switch {
		case tok.Type == close.Type && tok.Raw == close.Raw:
			depth++
		case tok.Type == openType && tok.Raw == openRaw:
			depth--
			if depth == 0 {
				return true
			}
		}
	}

	*c = save

	return false
}

// ForwardWhitespace skips forward over whitespace and comment tokens.
// Returns false when skipping runs past the end of the document.
func (c *TokenCursor) ForwardWhitespace() bool {
	for {
		tok, ok := c.Current()
		if !ok {
			return false
		}
		if !tok.IsTrivia() {
			return true
		}
		if !c.Next() {
			return false
		}
	}
}

// BackwardWhitespace skips backward over whitespace and comment tokens
// and leaves the cursor on the first non-trivia token it encounters.
// Returns false when only trivia precedes the starting position.
func (c *TokenCursor) BackwardWhitespace() bool {
	for {
		tok, ok := c.Current()
		if ok && !tok.IsTrivia() {
			return true
		}
		if !c.Previous() {
			return false
		}
	}
}

// ForwardSexp moves past one s-expression: over a whole balanced form
// when on an open, otherwise over the single current token. Leading
// whitespace and comments are skipped first.
func (c *TokenCursor) ForwardSexp() bool {
	save := *c
	if !c.ForwardWhitespace() {
		*c = save

		return false
	}

	tok, _ := c.Current()
	if tok.IsOpenKind() {
		if !c.ForwardList() {
			*c = save

			return false
		}
	}
	c.Next()

	return true
}

// BackwardSexp moves back over one s-expression, landing on its first
// token. Trailing whitespace and comments are skipped first.
func (c *TokenCursor) BackwardSexp() bool {
	save := *c
	if !c.Previous() {
		return false
	}

	tok, ok := c.Current()
	if !ok {
		*c = save

		return false
	}
	if tok.IsTrivia() {
		if !c.BackwardWhitespace() {
			*c = save

			return false
		}
		tok, _ = c.Current()
	}

	if tok.IsCloseKind() {
		if !c.BackwardList() {
			*c = save

			return false
		}
	}

	return true
}

// UpList moves to the open delimiter of the enclosing list.
// Returns false at top level.
func (c *TokenCursor) UpList() bool {
	save := *c
	depth := 0
	for c.Previous() {
		tok, ok := c.Current()
		if !ok {
			break
		}
		switch {
		case tok.IsCloseKind():
			depth++
		case tok.IsOpenKind():
			if depth == 0 {
				return true
			}
			depth--
		}
	}

	*c = save

	return false
}

// DownList moves to the open delimiter of the nearest child list: from
// an open it enters the list first, then scans forward past atoms and
// trivia. Returns false when a close is reached before any child open.
func (c *TokenCursor) DownList() bool {
	save := *c

	if tok, ok := c.Current(); ok && tok.IsOpenKind() {
		c.Next()
	}

	for {
		tok, ok := c.Current()
		if !ok {
			break
		}
		if tok.IsOpenKind() {
			return true
		}
		if tok.IsCloseKind() {
			break
		}
		if !c.Next() {
			break
		}
	}

	*c = save

	return false
}

// RangeForCurrentForm returns the absolute [start, end) range of the
// form under the cursor: the whole balanced form when on a delimiter,
// the token's own range otherwise. When on trivia the nearest form to
// the left wins, falling back to the right.
func (c *TokenCursor) RangeForCurrentForm() ([2]int, bool) {
	probe := c.Clone()

	tok, ok := probe.Current()
	if !ok || tok.IsTrivia() {
		// Prefer the form ending at or before the cursor.
		back := probe.Clone()
		if back.BackwardWhitespace() {
			probe = back
		} else if !probe.ForwardWhitespace() {
			return [2]int{}, false
		}
		tok, _ = probe.Current()
	}

	switch {
	case tok.IsOpenKind():
		start := probe.OffsetStart()
		if !probe.ForwardList() {
			return [2]int{}, false
		}

		return [2]int{start, probe.OffsetEnd()}, true
	case tok.IsCloseKind():
		end := probe.OffsetEnd()
		if !probe.BackwardList() {
			return [2]int{}, false
		}

		return [2]int{probe.OffsetStart(), end}, true
	default:
		return [2]int{
			probe.OffsetStart(),
			probe.OffsetEnd(),
		}, true
	}
}

// RangeForDefun returns the range of the top-level form enclosing the
// cursor.
func (c *TokenCursor) RangeForDefun() ([2]int, bool) {
	probe := c.Clone()
	for probe.UpList() {
	}

	return probe.RangeForCurrentForm()
}
