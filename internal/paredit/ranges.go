package paredit

import "github.com/connerohnesorge/paredit/internal/sexp"

// Range operations. Each is a pure function of the document state and
// an offset, returning an absolute [start, end) pair with start <= end.
// A range that could not be computed collapses to [offset, offset].

// emptyRange is the no-op result at an offset.
func emptyRange(offset int) [2]int {
	return [2]int{offset, offset}
}

// cursorAt returns a token cursor for offset, stepped past the current
// token when the offset sits at or beyond its end.
func cursorAt(
	doc *Document,
	offset int,
) *sexp.TokenCursor {
	c := doc.model.GetTokenCursor(offset)
	if !c.AtEnd() && offset >= c.OffsetEnd() {
		c.Next()
	}

	return c
}

// ForwardSexpRange returns the range from offset to the end of the next
// s-expression. A closing delimiter is a boundary: the range collapses
// rather than crossing out of the enclosing list.
func ForwardSexpRange(doc *Document, offset int) [2]int {
	c := cursorAt(doc, offset)
	if !c.ForwardWhitespace() {
		return emptyRange(offset)
	}

	tok, _ := c.Current()
	switch {
	case tok.IsCloseKind():
		return emptyRange(offset)
	case tok.IsOpenKind():
		if !c.ForwardList() {
			return emptyRange(offset)
		}

		return [2]int{offset, c.OffsetEnd()}
	default:
		return [2]int{offset, c.OffsetEnd()}
	}
}

// BackwardSexpRange returns the range from the start of the previous
// s-expression to offset. An opening delimiter is a boundary.
func BackwardSexpRange(doc *Document, offset int) [2]int {
	return backwardSexpRange(doc, offset, false)
}

// BackwardSexpOrUpRange is BackwardSexpRange, except that when the
// previous token is the enclosing open delimiter the range extends to
// that delimiter's start instead of collapsing.
func BackwardSexpOrUpRange(
	doc *Document,
	offset int,
) [2]int {
	return backwardSexpRange(doc, offset, true)
}

//nolint:revive // cognitive-complexity: single decision tree over token kinds
func backwardSexpRange(
	doc *Document,
	offset int,
	orUp bool,
) [2]int {
	c := doc.model.GetTokenCursor(offset)

	// When the offset is inside a token (not at its start), the range
	// runs back to the start of the form the token belongs to.
	if tok, ok := c.Current(); ok && !tok.IsTrivia() &&
		offset > c.OffsetStart() {
		switch {
		case tok.IsCloseKind():
			if !c.BackwardList() {
				return emptyRange(offset)
			}

			return [2]int{c.OffsetStart(), offset}
		case tok.IsOpenKind():
			if orUp {
				return [2]int{c.OffsetStart(), offset}
			}

			return emptyRange(offset)
		default:
			return [2]int{c.OffsetStart(), offset}
		}
	}

	// Offset at a token boundary or on trivia: move over the
	// previous s-expression.
	if !c.Previous() {
		return emptyRange(offset)
	}
	tok, ok := c.Current()
	if !ok {
		return emptyRange(offset)
	}
	if tok.IsTrivia() {
		if !c.BackwardWhitespace() {
			return emptyRange(offset)
		}
		tok, _ = c.Current()
	}

	switch {
	case tok.IsCloseKind():
		if !c.BackwardList() {
			return emptyRange(offset)
		}

		return [2]int{c.OffsetStart(), offset}
	case tok.IsOpenKind():
		if orUp {
			return [2]int{c.OffsetStart(), offset}
		}

		return emptyRange(offset)
	default:
		return [2]int{c.OffsetStart(), offset}
	}
}

// ForwardSexpOrUpRange is ForwardSexpRange, except that when the next
// token is the enclosing close delimiter the range extends past it
// (exiting the list) instead of collapsing.
func ForwardSexpOrUpRange(
	doc *Document,
	offset int,
) [2]int {
	c := cursorAt(doc, offset)
	if !c.ForwardWhitespace() {
		return emptyRange(offset)
	}

	tok, _ := c.Current()
	switch {
	case tok.IsCloseKind():
		return [2]int{offset, c.OffsetEnd()}
	case tok.IsOpenKind():
		if !c.ForwardList() {
			return emptyRange(offset)
		}

		return [2]int{offset, c.OffsetEnd()}
	default:
		return [2]int{offset, c.OffsetEnd()}
	}
}

// RangeToForwardUpList returns the range from offset up to (not
// including) the closing delimiter of the enclosing list. When offset
// sits exactly on a close, the grandparent list is targeted.
func RangeToForwardUpList(
	doc *Document,
	offset int,
) [2]int {
	c := doc.model.GetTokenCursor(offset)
	if tok, ok := c.Current(); ok && tok.IsCloseKind() &&
		offset == c.OffsetStart() {
		c.Next()
	}

	if !c.UpList() {
		return emptyRange(offset)
	}
	if !c.ForwardList() {
		return emptyRange(offset)
	}

	end := c.OffsetStart()
	if end < offset {
		return emptyRange(offset)
	}

	return [2]int{offset, end}
}

// RangeToBackwardUpList returns the range from the enclosing list's
// opening delimiter to offset.
func RangeToBackwardUpList(
	doc *Document,
	offset int,
) [2]int {
	c := doc.model.GetTokenCursor(offset)
	if !c.UpList() {
		return emptyRange(offset)
	}

	start := c.OffsetStart()
	if start > offset {
		return emptyRange(offset)
	}

	return [2]int{start, offset}
}

// RangeToForwardDownList returns the range from offset to just inside
// the next list opening that follows it, crossing list boundaries on
// the way.
func RangeToForwardDownList(
	doc *Document,
	offset int,
) [2]int {
	c := cursorAt(doc, offset)
	for {
		tok, ok := c.Current()
		if !ok {
			return emptyRange(offset)
		}
		if tok.IsOpenKind() && c.OffsetStart() >= offset {
			return [2]int{offset, c.OffsetEnd()}
		}
		if !c.Next() {
			return emptyRange(offset)
		}
	}
}

// RangeToBackwardDownList returns the range from just inside the
// closing delimiter of the nearest list that ends before offset.
func RangeToBackwardDownList(
	doc *Document,
	offset int,
) [2]int {
	c := doc.model.GetTokenCursor(offset)

	// Only consider closes strictly before the offset.
	for {
		tok, ok := c.Current()
		if ok && tok.IsCloseKind() &&
			c.OffsetEnd() <= offset {
			return [2]int{c.OffsetStart(), offset}
		}
		if !c.Previous() {
			return emptyRange(offset)
		}
	}
}

// RangeForCurrentForm returns the range of the form at offset.
func RangeForCurrentForm(
	doc *Document,
	offset int,
) [2]int {
	c := doc.model.GetTokenCursor(offset)
	r, ok := c.RangeForCurrentForm()
	if !ok {
		return emptyRange(offset)
	}

	return r
}

// RangeForDefun returns the range of the top-level form at offset.
func RangeForDefun(doc *Document, offset int) [2]int {
	c := doc.model.GetTokenCursor(offset)
	r, ok := c.RangeForDefun()
	if !ok {
		return emptyRange(offset)
	}

	return r
}

// RangeFunc is the shape shared by every range operation.
type RangeFunc func(*Document, int) [2]int

// RangesFor maps a range operation over a multi-cursor selection set.
// Every selection is resolved against the same pre-call document
// snapshot, using each selection's active end.
func RangesFor(
	fn RangeFunc,
	doc *Document,
	sels []Selection,
) [][2]int {
	out := make([][2]int, len(sels))
	for i, sel := range sels {
		out[i] = fn(doc, sel.Active)
	}

	return out
}
