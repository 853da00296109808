package sexp

import "testing"

// TestLineModel_Invariants verifies line splitting, offsets, and the
// cross-line state continuity invariant.
func TestLineModel_Invariants(t *testing.T) {
	text := "(foo \"hello\nworld\" bar)\n(baz)"
	m := NewLineModel(text, nil)

	if m.LineCount() != 3 {
		t.Fatalf("LineCount=%d, want 3", m.LineCount())
	}
	if m.Length() != len(text) {
		t.Fatalf("Length=%d, want %d", m.Length(), len(text))
	}
	if m.Text() != text {
		t.Fatalf("Text=%q, want %q", m.Text(), text)
	}

	for i := 0; i < m.LineCount()-1; i++ {
		end := m.Line(i).EndState
		start := m.Line(i + 1).StartState
		if !end.Equal(start) {
			t.Errorf(
				"line %d end state %+v != line %d start state %+v",
				i,
				end,
				i+1,
				start,
			)
		}
	}

	if !m.Line(0).EndState.InString {
		t.Error("line 0 should end inside the string")
	}
	if m.Line(1).EndState.InString {
		t.Error("line 1 should end outside the string")
	}
}

// TestLineModel_CRLF verifies that CRLF input is LF-normalized for
// offset arithmetic.
func TestLineModel_CRLF(t *testing.T) {
	m := NewLineModel("(a)\r\n(b)", nil)

	if m.LineCount() != 2 {
		t.Fatalf("LineCount=%d, want 2", m.LineCount())
	}
	if m.Length() != 7 {
		t.Fatalf("Length=%d, want 7", m.Length())
	}
	if got := m.GetText(4, 7); got != "(b)" {
		t.Errorf("GetText(4,7)=%q, want %q", got, "(b)")
	}
}

// TestLineModel_OffsetConversions verifies offset/position round trips
// and clamping.
func TestLineModel_OffsetConversions(t *testing.T) {
	m := NewLineModel("ab\ncde\n\nf", nil)

	tests := []struct {
		offset int
		want   Position
	}{
		{0, Position{Line: 0, Col: 0}},
		{1, Position{Line: 0, Col: 1}},
		{2, Position{Line: 0, Col: 2}}, // on the newline
		{3, Position{Line: 1, Col: 0}},
		{6, Position{Line: 1, Col: 3}},
		{7, Position{Line: 2, Col: 0}},
		{8, Position{Line: 3, Col: 0}},
		{9, Position{Line: 3, Col: 1}},
		{99, Position{Line: 3, Col: 1}}, // clamped past end
		{-1, Position{Line: 0, Col: 0}}, // clamped negative
	}

	for _, tt := range tests {
		got := m.OffsetToPosition(tt.offset)
		if got != tt.want {
			t.Errorf(
				"OffsetToPosition(%d)=%+v, want %+v",
				tt.offset,
				got,
				tt.want,
			)
		}
	}

	if got := m.OffsetForLine(1); got != 3 {
		t.Errorf("OffsetForLine(1)=%d, want 3", got)
	}
	if got := m.OffsetForLine(99); got != 8 {
		t.Errorf("OffsetForLine(99)=%d, want 8", got)
	}
	if got := m.PositionToOffset(Position{Line: 1, Col: 2}); got != 5 {
		t.Errorf("PositionToOffset(1,2)=%d, want 5", got)
	}
}

// TestLineModel_GetText verifies substring extraction across lines.
func TestLineModel_GetText(t *testing.T) {
	m := NewLineModel("abc\ndef\nghi", nil)

	tests := []struct {
		start, end int
		want       string
	}{
		{0, 3, "abc"},
		{0, 4, "abc\n"},
		{2, 5, "c\nd"},
		{0, 11, "abc\ndef\nghi"},
		{4, 7, "def"},
		{5, 5, ""},
		{7, 3, ""},  // reversed
		{8, 99, "ghi"}, // clamped
	}

	for _, tt := range tests {
		got := m.GetText(tt.start, tt.end)
		if got != tt.want {
			t.Errorf(
				"GetText(%d,%d)=%q, want %q",
				tt.start,
				tt.end,
				got,
				tt.want,
			)
		}
	}
}

// TestLineModel_Update verifies re-tokenization and version bumps.
func TestLineModel_Update(t *testing.T) {
	m := NewLineModel("(a)", nil)
	if m.Version() != 0 {
		t.Fatalf("initial version %d, want 0", m.Version())
	}

	c := m.GetTokenCursor(0)
	if !c.Valid() {
		t.Fatal("fresh cursor should be valid")
	}

	m.Update("(a b)")
	if m.Version() != 1 {
		t.Errorf("version after update %d, want 1", m.Version())
	}
	if m.Text() != "(a b)" {
		t.Errorf("text after update %q", m.Text())
	}
	if c.Valid() {
		t.Error("cursor must be invalidated by update")
	}
}

// TestLineModel_EmptyDocument verifies the degenerate cases.
func TestLineModel_EmptyDocument(t *testing.T) {
	m := NewLineModel("", nil)

	if m.LineCount() != 1 {
		t.Errorf("LineCount=%d, want 1", m.LineCount())
	}
	if m.Length() != 0 {
		t.Errorf("Length=%d, want 0", m.Length())
	}

	c := m.GetTokenCursor(0)
	if !c.AtEnd() {
		t.Error("cursor on empty document should be at end")
	}
	if _, ok := c.Current(); ok {
		t.Error("empty document has no current token")
	}
}

// TestLineModel_GetTokenCursor verifies token resolution at offsets.
func TestLineModel_GetTokenCursor(t *testing.T) {
	m := NewLineModel("(foo bar)", nil)

	tests := []struct {
		offset  int
		wantRaw string
	}{
		{0, "("},
		{1, "foo"},
		{3, "foo"},
		{4, " "},
		{5, "bar"},
		{8, ")"},
	}

	for _, tt := range tests {
		c := m.GetTokenCursor(tt.offset)
		tok, ok := c.Current()
		if !ok {
			t.Errorf("offset %d: no current token", tt.offset)

			continue
		}
		if tok.Raw != tt.wantRaw {
			t.Errorf(
				"offset %d: token %q, want %q",
				tt.offset,
				tok.Raw,
				tt.wantRaw,
			)
		}
	}
}
