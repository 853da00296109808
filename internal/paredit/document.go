package paredit

import (
	"sort"

	"github.com/connerohnesorge/paredit/internal/sexp"
)

// KillSink receives the text removed by kill operations, typically to
// publish it to a clipboard. A nil sink discards killed text.
type KillSink func(text string) error

// Document is the editable façade over a line model: it owns the
// current selections and applies edit batches produced by the
// operations in this package.
//
// A document is single-owner; callers serialize mutations. Token
// cursors handed out by the model become invalid after every apply.
type Document struct {
	model      *sexp.LineModel
	selections []Selection

	sink       KillSink
	copyOnKill bool
}

// NewDocument builds a document over text with one cursor at offset 0.
// A nil scanner selects the default delimiter pairs. Kill operations
// publish to the sink by default; see SetCopyOnKill.
func NewDocument(
	text string,
	scanner *sexp.Scanner,
) *Document {
	return &Document{
		model:      sexp.NewLineModel(text, scanner),
		selections: []Selection{Cursor(0)},
		copyOnKill: true,
	}
}

// Model returns the underlying line model.
func (d *Document) Model() *sexp.LineModel {
	return d.model
}

// Text returns the full document text.
func (d *Document) Text() string {
	return d.model.Text()
}

// GetText returns the substring [start, end).
func (d *Document) GetText(start, end int) string {
	return d.model.GetText(start, end)
}

// Length returns the document length.
func (d *Document) Length() int {
	return d.model.Length()
}

// Selections returns a copy of the current selections.
func (d *Document) Selections() []Selection {
	out := make([]Selection, len(d.selections))
	copy(out, d.selections)

	return out
}

// Selection returns the primary (first) selection.
func (d *Document) Selection() Selection {
	if len(d.selections) == 0 {
		return Cursor(0)
	}

	return d.selections[0]
}

// SetSelections replaces all selections, clamping to document bounds.
// An empty slice resets to a single cursor at offset 0.
func (d *Document) SetSelections(sels []Selection) {
	if len(sels) == 0 {
		d.selections = []Selection{Cursor(0)}

		return
	}

	length := d.model.Length()
	out := make([]Selection, len(sels))
	for i, s := range sels {
		out[i] = s.clamp(length)
	}
	d.selections = out
}

// SetKillSink installs the sink kill operations publish to.
func (d *Document) SetKillSink(sink KillSink) {
	d.sink = sink
}

// SetCopyOnKill controls whether kill operations publish killed text
// to the sink. Enabled by default.
func (d *Document) SetCopyOnKill(enabled bool) {
	d.copyOnKill = enabled
}

// ApplyEdits validates and applies a batch of edits, then re-tokenizes.
// Edits are applied highest-offset first so earlier offsets stay
// stable. Returns false (document untouched) when any edit is out of
// bounds or edits overlap.
func (d *Document) ApplyEdits(edits []ModelEdit) bool {
	if len(edits) == 0 {
		return false
	}

	length := d.model.Length()
	for _, e := range edits {
		if e.Start < 0 || e.End < e.Start || e.End > length {
			return false
		}
	}

	ordered := make([]ModelEdit, len(edits))
	copy(ordered, edits)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Start > ordered[j].Start
	})

	// Reject overlap: after the descending sort each edit must end
	// at or before the previous (lower) edit's start.
	for i := 1; i < len(ordered); i++ {
		if ordered[i].End > ordered[i-1].Start {
			return false
		}
	}

	text := d.model.Text()
	for _, e := range ordered {
		text = text[:e.Start] + e.Text + text[e.End:]
	}
	d.model.Update(text)

	return true
}

// Apply applies an operation result: edits first, then the new
// selections, then kill publication. Returns false when the result
// holds no edits or the edits were rejected.
func (d *Document) Apply(res Result) bool {
	if !d.ApplyEdits(res.Edits) {
		return false
	}
	if len(res.Selections) > 0 {
		d.SetSelections(res.Selections)
	}
	if res.Killed != "" && d.copyOnKill && d.sink != nil {
		// Sink failure does not undo the edit; the killed text
		// is still available on the result.
		_ = d.sink(res.Killed)
	}

	return true
}
