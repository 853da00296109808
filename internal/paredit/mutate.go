package paredit

import "github.com/connerohnesorge/paredit/internal/sexp"

// Result is the outcome of a mutation operation: the edits to apply,
// the selections that replace the document's selections afterwards,
// and any killed text. Operations never apply edits themselves; the
// caller decides when (and whether) to run them through Apply.
type Result struct {
	Edits      []ModelEdit
	Selections []Selection
	Killed     string
}

// single wraps one edit and one collapsed selection into a Result.
func single(edit ModelEdit, active int) (Result, bool) {
	return Result{
		Edits:      []ModelEdit{edit},
		Selections: []Selection{Cursor(active)},
	}, true
}

// enclosingList locates the open and close delimiters of the list
// enclosing offset. Returns false at top level or when the list is
// unbalanced.
func enclosingList(
	doc *Document,
	offset int,
) (open, close *sexp.TokenCursor, ok bool) {
	open = doc.model.GetTokenCursor(offset)
	if !open.UpList() {
		return nil, nil, false
	}
	close = open.Clone()
	if !close.ForwardList() {
		return nil, nil, false
	}

	return open, close, true
}

// SlurpForward extends the enclosing list over the next form outside
// it: (foo|) bar => (foo bar|). The closing delimiter moves past the
// slurped form, which shifts left by the delimiter's length; text
// outside the rewritten span keeps its position.
func SlurpForward(
	doc *Document,
	sel Selection,
) (Result, bool) {
	_, close, ok := enclosingList(doc, sel.Active)
	if !ok {
		return Result{}, false
	}
	closeTok, _ := close.Current()
	closeStart := close.OffsetStart()
	closeEnd := close.OffsetEnd()

	next := close.Clone()
	next.Next()
	if !next.ForwardWhitespace() {
		return Result{}, false
	}
	ntok, _ := next.Current()
	if ntok.IsCloseKind() {
		// Only the parent's close follows; nothing to slurp.
		return Result{}, false
	}
	if ntok.IsOpenKind() && !next.ForwardList() {
		return Result{}, false
	}
	end := next.OffsetEnd()

	between := doc.GetText(closeEnd, end)
	edit := NewChange(closeStart, end, between+closeTok.Raw)

	active := sel.Active
	switch {
	case active >= closeStart && active < closeEnd:
		// Cursor rides along with the close delimiter.
		active += len(between)
	case active >= closeEnd && active <= end:
		// Cursor inside the slurped text shifts left.
		active -= len(closeTok.Raw)
	}

	return single(edit, active)
}

// SlurpBackward extends the enclosing list over the previous form:
// foo (|bar) => (foo |bar).
func SlurpBackward(
	doc *Document,
	sel Selection,
) (Result, bool) {
	open, _, ok := enclosingList(doc, sel.Active)
	if at := doc.model.GetTokenCursor(sel.Active); at.OffsetStart() == sel.Active {
		// A cursor on an open delimiter slurps into that list.
		if tok, onTok := at.Current(); onTok && tok.IsOpenKind() &&
			at.Clone().ForwardList() {
			open, ok = at, true
		}
	}
	if !ok {
		return Result{}, false
	}
	openTok, _ := open.Current()
	openStart := open.OffsetStart()
	openEnd := open.OffsetEnd()

	prev := open.Clone()
	if !prev.Previous() {
		return Result{}, false
	}
	if ptok, okTok := prev.Current(); okTok && ptok.IsTrivia() {
		if !prev.BackwardWhitespace() {
			return Result{}, false
		}
	}
	ptok, _ := prev.Current()
	switch {
	case ptok.IsOpenKind():
		// Directly inside the parent; nothing precedes us.
		return Result{}, false
	case ptok.IsCloseKind():
		if !prev.BackwardList() {
			return Result{}, false
		}
	}
	prevStart := prev.OffsetStart()

	between := doc.GetText(prevStart, openStart)
	edit := NewChange(prevStart, openEnd, openTok.Raw+between)

	active := sel.Active
	switch {
	case active >= openStart && active < openEnd:
		active -= len(between)
	case active >= prevStart && active < openStart:
		active += len(openTok.Raw)
	}

	return single(edit, active)
}

// BarfForward expels the last form of the enclosing list:
// (foo bar baz|) => (foo bar|) baz.
func BarfForward(
	doc *Document,
	sel Selection,
) (Result, bool) {
	open, close, ok := enclosingList(doc, sel.Active)
	if !ok {
		return Result{}, false
	}
	closeTok, _ := close.Current()
	closeStart := close.OffsetStart()
	closeEnd := close.OffsetEnd()

	// Walk back to the first token of the last form.
	last := close.Clone()
	if !last.Previous() {
		return Result{}, false
	}
	if !last.BackwardWhitespace() {
		return Result{}, false
	}
	if last.Equals(open) {
		// Empty list: nothing to barf.
		return Result{}, false
	}
	if ltok, _ := last.Current(); ltok.IsCloseKind() {
		if !last.BackwardList() {
			return Result{}, false
		}
	}

	// The close lands after the form preceding the barfed one, or
	// right after the open when the list had a single element.
	newClosePos := open.OffsetEnd()
	before := last.Clone()
	if before.Previous() {
		if !before.BackwardWhitespace() {
			return Result{}, false
		}
		if !before.Equals(open) {
			newClosePos = before.OffsetEnd()
		}
	}

	between := doc.GetText(newClosePos, closeStart)
	edit := NewChange(
		newClosePos,
		closeEnd,
		closeTok.Raw+between,
	)

	active := sel.Active
	if active > newClosePos && active <= closeEnd {
		// Cursor would end up outside the list; keep it inside,
		// just before the moved close.
		active = newClosePos
	}

	return single(edit, active)
}

// BarfBackward expels the first form of the enclosing list:
// (|foo bar) => foo (|bar).
func BarfBackward(
	doc *Document,
	sel Selection,
) (Result, bool) {
	open, close, ok := enclosingList(doc, sel.Active)
	if !ok {
		return Result{}, false
	}
	openTok, _ := open.Current()
	openStart := open.OffsetStart()
	openEnd := open.OffsetEnd()

	// First form of the list.
	first := open.Clone()
	first.Next()
	if !first.ForwardWhitespace() {
		return Result{}, false
	}
	if first.Equals(close) {
		// Empty list: nothing to barf.
		return Result{}, false
	}
	if ftok, _ := first.Current(); ftok.IsOpenKind() {
		if !first.ForwardList() {
			return Result{}, false
		}
	}

	// The open lands before the form following the barfed one, or
	// right before the close when the list had a single element.
	next := first.Clone()
	next.Next()
	newOpenPos := close.OffsetStart()
	if next.ForwardWhitespace() && !next.Equals(close) {
		if ntok, _ := next.Current(); !ntok.IsCloseKind() {
			newOpenPos = next.OffsetStart()
		}
	}

	between := doc.GetText(openEnd, newOpenPos)
	edit := NewChange(
		openStart,
		newOpenPos,
		between+openTok.Raw,
	)

	active := sel.Active
	if active >= openStart && active < newOpenPos {
		// Cursor would end up outside the list; keep it inside,
		// just after the moved open.
		active = newOpenPos
	}

	return single(edit, active)
}

// Raise replaces the enclosing list with the current form:
// (outer (|inner) stuff) => (outer |inner stuff).
func Raise(doc *Document, sel Selection) (Result, bool) {
	form := RangeForCurrentForm(doc, sel.Active)
	if form[0] == form[1] {
		return Result{}, false
	}

	parentCursor := doc.model.GetTokenCursor(sel.Active)
	if !parentCursor.UpList() {
		return Result{}, false
	}
	parent, ok := parentCursor.RangeForCurrentForm()
	if !ok {
		return Result{}, false
	}
	if form[0] < parent[0] || form[1] > parent[1] {
		return Result{}, false
	}

	text := doc.GetText(form[0], form[1])
	edit := NewChange(parent[0], parent[1], text)

	return single(edit, parent[0])
}

// Splice removes the enclosing list's delimiters, promoting its
// contents: (|foo bar) => |foo bar.
func Splice(doc *Document, sel Selection) (Result, bool) {
	open, close, ok := enclosingList(doc, sel.Active)
	if !ok {
		return Result{}, false
	}
	openTok, _ := open.Current()
	openStart := open.OffsetStart()
	openEnd := open.OffsetEnd()
	closeStart := close.OffsetStart()
	closeEnd := close.OffsetEnd()

	content := doc.GetText(openEnd, closeStart)
	edit := NewChange(openStart, closeEnd, content)

	active := sel.Active
	if active >= openEnd {
		active -= len(openTok.Raw)
	}
	if max := closeStart - len(openTok.Raw); active > max {
		active = max
	}

	return single(edit, active)
}

// Wrap surrounds the current form (or the explicit selection when one
// exists) with a delimiter pair. The cursor lands after the wrapped
// content, before the inserted close.
func Wrap(
	doc *Document,
	sel Selection,
	open, close string,
) (Result, bool) {
	if open == "" || close == "" {
		return Result{}, false
	}

	var r [2]int
	if sel.IsCursor() {
		r = RangeForCurrentForm(doc, sel.Active)
		if r[0] == r[1] {
			return Result{}, false
		}
	} else {
		r = [2]int{sel.Start(), sel.End()}
	}

	text := doc.GetText(r[0], r[1])
	edit := NewChange(r[0], r[1], open+text+close)

	return single(edit, r[0]+len(open)+len(text))
}

// Transpose swaps the current form with the following one, preserving
// the whitespace between them:
//
//	(foo bar)|  (baz boo)  =>  (baz boo)  (foo bar)|
func Transpose(
	doc *Document,
	sel Selection,
) (Result, bool) {
	c := doc.model.GetTokenCursor(sel.Active)
	if c.IsWhitespace() {
		if !c.BackwardSexp() {
			return Result{}, false
		}
	}
	formA, ok := c.RangeForCurrentForm()
	if !ok {
		return Result{}, false
	}

	next := cursorAt(doc, formA[1])
	if !next.ForwardWhitespace() {
		return Result{}, false
	}
	ntok, _ := next.Current()
	if ntok.IsCloseKind() {
		return Result{}, false
	}
	bStart := next.OffsetStart()
	if bStart < formA[1] {
		return Result{}, false
	}
	if ntok.IsOpenKind() && !next.ForwardList() {
		return Result{}, false
	}
	bEnd := next.OffsetEnd()

	aText := doc.GetText(formA[0], formA[1])
	between := doc.GetText(formA[1], bStart)
	bText := doc.GetText(bStart, bEnd)

	edit := NewChange(formA[0], bEnd, bText+between+aText)

	return single(edit, bEnd)
}
