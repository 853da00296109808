package sexp

import (
	"strings"
	"testing"
)

// FuzzProcessLine asserts the structural invariants the rest of the
// engine relies on: tokens partition the input, columns are contiguous,
// and the threaded state re-tokenizes consistently.
func FuzzProcessLine(f *testing.F) {
	f.Add("(foo bar)")
	f.Add(`(str "a\"b" [c {d}])`)
	f.Add(`"unterminated`)
	f.Add("a\"b\"c\"d\"e")
	f.Add("   \t  ")
	f.Add("")
	f.Add(`\\\"`)

	f.Fuzz(func(t *testing.T, input string) {
		if strings.ContainsAny(input, "\n\r") {
			// ProcessLine receives pre-split lines.
			return
		}

		s := NewScanner(nil)
		tokens := s.ProcessLine(input, ScannerState{})

		var b strings.Builder
		col := 0
		for i, tok := range tokens {
			if tok.Raw == "" {
				t.Fatalf("token %d is empty", i)
			}
			if tok.Col != col {
				t.Fatalf(
					"token %d: Col=%d, want %d",
					i,
					tok.Col,
					col,
				)
			}
			b.WriteString(tok.Raw)
			col += len(tok.Raw)
		}
		if b.String() != input {
			t.Fatalf(
				"tokens do not partition input: %q != %q",
				b.String(),
				input,
			)
		}

		// Resuming from any token's state must reproduce the
		// remaining tokens' first element.
		state := ScannerState{}
		offset := 0
		for _, tok := range tokens {
			rest := s.ProcessLine(input[offset:], state)
			if len(rest) == 0 ||
				rest[0].Type != tok.Type ||
				rest[0].Raw != tok.Raw {
				t.Fatalf(
					"rescan at offset %d diverged",
					offset,
				)
			}
			state = tok.State
			offset += len(tok.Raw)
		}
	})
}

// FuzzLineModel asserts model-level invariants over whole documents.
func FuzzLineModel(f *testing.F) {
	f.Add("(foo \"bar\nbaz\" qux)")
	f.Add("\n\n\n")
	f.Add("(a)\r\n(b)")
	f.Add(`((((`)

	f.Fuzz(func(t *testing.T, input string) {
		m := NewLineModel(input, nil)

		normalized := strings.ReplaceAll(input, "\r\n", "\n")
		if m.Text() != normalized {
			t.Fatalf(
				"Text()=%q, want %q",
				m.Text(),
				normalized,
			)
		}
		if m.Length() != len(normalized) {
			t.Fatalf(
				"Length()=%d, want %d",
				m.Length(),
				len(normalized),
			)
		}

		for i := 0; i < m.LineCount()-1; i++ {
			if !m.Line(i).EndState.Equal(m.Line(i + 1).StartState) {
				t.Fatalf("state discontinuity at line %d", i)
			}
		}

		// Offset round trip.
		for off := 0; off <= m.Length(); off++ {
			pos := m.OffsetToPosition(off)
			back := m.PositionToOffset(pos)
			if back > m.Length() || back < 0 {
				t.Fatalf(
					"offset %d: round trip out of bounds (%d)",
					off,
					back,
				)
			}
		}
	})
}
