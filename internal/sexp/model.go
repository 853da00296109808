package sexp

import (
	"sort"
	"strings"
)

// Position is a line/column location in the document.
// Lines and columns are both 0-based byte coordinates.
type Position struct {
	Line int
	Col  int
}

// LineModel holds the tokenized document.
//
// Offsets are LF-normalized: each line boundary counts as exactly one
// character regardless of the terminator used in the input text. The
// total length is the sum of line lengths plus one newline per boundary.
type LineModel struct {
	scanner *Scanner
	lines   []TextLine

	// lineOffsets[i] is the absolute offset of line i's first character.
	lineOffsets []int

	// version increments on every Update; cursors created before an
	// update must not be reused.
	version int
}

// NewLineModel tokenizes text and returns the model at version 0.
// A nil scanner selects the default delimiter set.
func NewLineModel(
	text string,
	scanner *Scanner,
) *LineModel {
	if scanner == nil {
		scanner = NewScanner(nil)
	}

	m := &LineModel{scanner: scanner}
	m.retokenize(text)

	return m
}

// retokenize rebuilds every line, threading scanner state across lines.
func (m *LineModel) retokenize(text string) {
	raw := strings.Split(
		strings.ReplaceAll(text, "\r\n", "\n"),
		"\n",
	)

	lines := make([]TextLine, 0, len(raw))
	offsets := make([]int, 0, len(raw))

	state := ScannerState{}
	offset := 0
	for _, lineText := range raw {
		line := newTextLine(m.scanner, lineText, state)
		lines = append(lines, line)
		offsets = append(offsets, offset)
		state = line.EndState.Clone()
		offset += len(lineText) + 1
	}

	m.lines = lines
	m.lineOffsets = offsets
}

// Scanner returns the scanner the model tokenizes with.
func (m *LineModel) Scanner() *Scanner {
	return m.scanner
}

// Version returns the current document version.
func (m *LineModel) Version() int {
	return m.version
}

// LineCount returns the number of lines. An empty document has one
// empty line.
func (m *LineModel) LineCount() int {
	return len(m.lines)
}

// Line returns line n, or an empty line when n is out of range.
func (m *LineModel) Line(n int) TextLine {
	if n < 0 || n >= len(m.lines) {
		return TextLine{}
	}

	return m.lines[n]
}

// Length returns the total character length: line lengths plus one
// newline per line boundary.
func (m *LineModel) Length() int {
	if len(m.lines) == 0 {
		return 0
	}
	last := len(m.lines) - 1

	return m.lineOffsets[last] + len(m.lines[last].Text)
}

// Update re-tokenizes the whole document and bumps the version,
// invalidating all outstanding cursors.
func (m *LineModel) Update(text string) {
	m.retokenize(text)
	m.version++
}

// OffsetForLine returns the absolute offset of line n's first
// character, clamped to the valid line range.
func (m *LineModel) OffsetForLine(n int) int {
	if len(m.lines) == 0 || n < 0 {
		return 0
	}
	if n >= len(m.lines) {
		n = len(m.lines) - 1
	}

	return m.lineOffsets[n]
}

// OffsetToPosition converts an absolute offset to line/column
// coordinates. Past-end offsets clamp to the end of the last line.
func (m *LineModel) OffsetToPosition(offset int) Position {
	if len(m.lines) == 0 || offset <= 0 {
		return Position{}
	}

	last := len(m.lines) - 1
	if offset >= m.Length() {
		return Position{
			Line: last,
			Col:  len(m.lines[last].Text),
		}
	}

	// Binary search for the line containing the offset: the last
	// line whose start offset is <= offset.
	line := sort.Search(len(m.lineOffsets), func(i int) bool {
		return m.lineOffsets[i] > offset
	}) - 1

	col := offset - m.lineOffsets[line]
	if col > len(m.lines[line].Text) {
		// Offset of the newline itself; clamp to line end.
		col = len(m.lines[line].Text)
	}

	return Position{Line: line, Col: col}
}

// PositionToOffset converts line/column coordinates back to an
// absolute offset, clamping both coordinates to valid ranges.
func (m *LineModel) PositionToOffset(pos Position) int {
	if len(m.lines) == 0 || pos.Line < 0 {
		return 0
	}
	line := pos.Line
	if line >= len(m.lines) {
		line = len(m.lines) - 1
	}
	col := pos.Col
	if col < 0 {
		col = 0
	}
	if col > len(m.lines[line].Text) {
		col = len(m.lines[line].Text)
	}

	return m.lineOffsets[line] + col
}

// GetText extracts the substring [start, end), reinserting one newline
// between lines. Out-of-range bounds are clamped; a reversed range
// yields the empty string.
func (m *LineModel) GetText(start, end int) string {
	length := m.Length()
	if start < 0 {
		start = 0
	}
	if end > length {
		end = length
	}
	if start >= end {
		return ""
	}

	from := m.OffsetToPosition(start)
	to := m.OffsetToPosition(end)

	if from.Line == to.Line {
		return m.lines[from.Line].Text[from.Col:to.Col]
	}

	var b strings.Builder
	b.WriteString(m.lines[from.Line].Text[from.Col:])
	for l := from.Line + 1; l < to.Line; l++ {
		b.WriteByte('\n')
		b.WriteString(m.lines[l].Text)
	}
	b.WriteByte('\n')
	b.WriteString(m.lines[to.Line].Text[:to.Col])

	return b.String()
}

// Text returns the whole document as a single LF-joined string.
func (m *LineModel) Text() string {
	parts := make([]string, len(m.lines))
	for i, l := range m.lines {
		parts[i] = l.Text
	}

	return strings.Join(parts, "\n")
}

// GetTokenCursor returns a cursor positioned on the token containing
// the given offset.
func (m *LineModel) GetTokenCursor(offset int) *TokenCursor {
	pos := m.OffsetToPosition(offset)
	line := m.Line(pos.Line)
	tokenIdx := line.tokenIndexAt(pos.Col)
	if tokenIdx < 0 {
		tokenIdx = 0
	}

	c := &TokenCursor{
		model:   m,
		version: m.version,
		line:    pos.Line,
		token:   tokenIdx,
	}
	c.normalize()

	return c
}
