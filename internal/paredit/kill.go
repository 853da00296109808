package paredit

// KillRange deletes [start, end) and leaves the cursor at start.
// The removed text is reported on the Result; publication to an
// external sink happens in Document.Apply, governed by the document's
// copy-on-kill policy.
func KillRange(
	doc *Document,
	start, end int,
) (Result, bool) {
	if start < 0 {
		start = 0
	}
	if length := doc.Length(); end > length {
		end = length
	}
	if start >= end {
		return Result{}, false
	}

	return Result{
		Edits:      []ModelEdit{NewDelete(start, end)},
		Selections: []Selection{Cursor(start)},
		Killed:     doc.GetText(start, end),
	}, true
}

// KillForwardSexp deletes from the selection's active end through the
// next s-expression.
func KillForwardSexp(
	doc *Document,
	sel Selection,
) (Result, bool) {
	r := ForwardSexpRange(doc, sel.Active)

	return KillRange(doc, r[0], r[1])
}

// KillBackwardSexp deletes from the start of the previous
// s-expression through the selection's active end.
func KillBackwardSexp(
	doc *Document,
	sel Selection,
) (Result, bool) {
	r := BackwardSexpRange(doc, sel.Active)

	return KillRange(doc, r[0], r[1])
}
