package sexp

import (
	"strings"
	"testing"
)

// tokenTypes extracts the type sequence from a token slice.
func tokenTypes(tokens []Token) []TokenType {
	types := make([]TokenType, len(tokens))
	for i, tok := range tokens {
		types[i] = tok.Type
	}

	return types
}

// typesEqual compares two token type sequences.
func typesEqual(got, want []TokenType) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}

	return true
}

// TestScanner_EmptyLine verifies that an empty line yields no tokens.
func TestScanner_EmptyLine(t *testing.T) {
	s := NewScanner(nil)
	tokens := s.ProcessLine("", ScannerState{})

	if len(tokens) != 0 {
		t.Errorf("empty line: got %d tokens, want 0", len(tokens))
	}
}

// TestScanner_TokenKinds verifies basic classification of each kind.
func TestScanner_TokenKinds(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []TokenType
	}{
		{
			"single open",
			"(",
			[]TokenType{TokenOpen},
		},
		{
			"single close",
			")",
			[]TokenType{TokenClose},
		},
		{
			"atom",
			"foo",
			[]TokenType{TokenAtom},
		},
		{
			"whitespace run",
			"  \t ",
			[]TokenType{TokenWhitespace},
		},
		{
			"simple list",
			"(foo bar)",
			[]TokenType{
				TokenOpen,
				TokenAtom,
				TokenWhitespace,
				TokenAtom,
				TokenClose,
			},
		},
		{
			"nested brackets",
			"[{()}]",
			[]TokenType{
				TokenOpen,
				TokenOpen,
				TokenOpen,
				TokenClose,
				TokenClose,
				TokenClose,
			},
		},
		{
			"string literal",
			`"abc"`,
			[]TokenType{
				TokenStrStart,
				TokenStrInside,
				TokenStrEnd,
			},
		},
		{
			"empty string literal",
			`""`,
			[]TokenType{TokenStrStart, TokenStrEnd},
		},
		{
			"atom with punctuation",
			"foo-bar!",
			[]TokenType{TokenAtom},
		},
		{
			"comment marker is an atom",
			"; note",
			[]TokenType{
				TokenAtom,
				TokenWhitespace,
				TokenAtom,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScanner(nil)
			tokens := s.ProcessLine(tt.input, ScannerState{})
			got := tokenTypes(tokens)

			if !typesEqual(got, tt.want) {
				t.Errorf(
					"input %q: got %v, want %v",
					tt.input,
					got,
					tt.want,
				)
			}
		})
	}
}

// TestScanner_Partition verifies that tokens partition the line exactly
// and that columns are contiguous.
func TestScanner_Partition(t *testing.T) {
	inputs := []string{
		"(defn f [x] (+ x 1))",
		`(str "a(b" c)`,
		"   ",
		"atom",
		`"unterminated string with (parens`,
		"a\"b\"c\"d\"e",
		"()[]{}",
	}

	for _, input := range inputs {
		s := NewScanner(nil)
		tokens := s.ProcessLine(input, ScannerState{})

		var b strings.Builder
		col := 0
		for i, tok := range tokens {
			if tok.Col != col {
				t.Errorf(
					"input %q token %d: Col=%d, want %d",
					input,
					i,
					tok.Col,
					col,
				)
			}
			b.WriteString(tok.Raw)
			col += len(tok.Raw)
		}

		if b.String() != input {
			t.Errorf(
				"input %q: concatenated tokens %q",
				input,
				b.String(),
			)
		}
	}
}

// TestScanner_SymmetricAlternation verifies that an alternating quote
// sequence toggles str-start/str-end.
func TestScanner_SymmetricAlternation(t *testing.T) {
	s := NewScanner(nil)
	tokens := s.ProcessLine(`a"b"c"d"e`, ScannerState{})

	want := []TokenType{
		TokenAtom,
		TokenStrStart,
		TokenStrInside,
		TokenStrEnd,
		TokenAtom,
		TokenStrStart,
		TokenStrInside,
		TokenStrEnd,
		TokenAtom,
	}
	got := tokenTypes(tokens)
	if !typesEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}

	final := tokens[len(tokens)-1].State
	if final.InString {
		t.Error("final state should not be in a string")
	}
	if len(final.OpenSymmetric) != 0 {
		t.Errorf(
			"final symmetric stack %v, want empty",
			final.OpenSymmetric,
		)
	}
}

// TestScanner_StringAcrossLines verifies string state threading across
// a line boundary.
func TestScanner_StringAcrossLines(t *testing.T) {
	s := NewScanner(nil)

	line0 := s.ProcessLine(`(foo "hello`, ScannerState{})
	want0 := []TokenType{
		TokenOpen,
		TokenAtom,
		TokenWhitespace,
		TokenStrStart,
		TokenStrInside,
	}
	if got := tokenTypes(line0); !typesEqual(got, want0) {
		t.Fatalf("line 0: got %v, want %v", got, want0)
	}

	end0 := line0[len(line0)-1].State
	if !end0.InString {
		t.Fatal("line 0 end state: InString=false, want true")
	}
	if end0.StringDelim != `"` {
		t.Fatalf(
			"line 0 end state: StringDelim=%q, want %q",
			end0.StringDelim,
			`"`,
		)
	}

	line1 := s.ProcessLine(`world" bar)`, end0)
	want1 := []TokenType{
		TokenStrInside,
		TokenStrEnd,
		TokenWhitespace,
		TokenAtom,
		TokenClose,
	}
	if got := tokenTypes(line1); !typesEqual(got, want1) {
		t.Fatalf("line 1: got %v, want %v", got, want1)
	}
	if line1[0].Raw != "world" {
		t.Errorf(
			"line 1 str-inside: %q, want %q",
			line1[0].Raw,
			"world",
		)
	}

	end1 := line1[len(line1)-1].State
	if end1.InString || len(end1.OpenSymmetric) != 0 {
		t.Errorf("line 1 end state not clean: %+v", end1)
	}
}

// TestScanner_EscapedQuote verifies that a backslash-escaped delimiter
// does not terminate the string.
func TestScanner_EscapedQuote(t *testing.T) {
	s := NewScanner(nil)
	tokens := s.ProcessLine(`"a\"b"`, ScannerState{})

	want := []TokenType{
		TokenStrStart,
		TokenStrInside,
		TokenStrEnd,
	}
	if got := tokenTypes(tokens); !typesEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	if tokens[1].Raw != `a\"b` {
		t.Errorf(
			"str-inside raw %q, want %q",
			tokens[1].Raw,
			`a\"b`,
		)
	}
}

// TestScanner_TrailingBackslash verifies that a lone backslash at end
// of line stays inside the string content without escaping anything.
func TestScanner_TrailingBackslash(t *testing.T) {
	s := NewScanner(nil)
	tokens := s.ProcessLine(`"ab\`, ScannerState{})

	want := []TokenType{TokenStrStart, TokenStrInside}
	if got := tokenTypes(tokens); !typesEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	if tokens[1].Raw != `ab\` {
		t.Errorf("str-inside raw %q, want %q", tokens[1].Raw, `ab\`)
	}
	if !tokens[1].State.InString {
		t.Error("state should remain in string")
	}
}

// TestScanner_DelimiterInsideString verifies that parens inside a
// string are content, not delimiters.
func TestScanner_DelimiterInsideString(t *testing.T) {
	s := NewScanner(nil)
	tokens := s.ProcessLine(`"(not a list)"`, ScannerState{})

	want := []TokenType{
		TokenStrStart,
		TokenStrInside,
		TokenStrEnd,
	}
	if got := tokenTypes(tokens); !typesEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	if tokens[1].Raw != "(not a list)" {
		t.Errorf("str-inside raw %q", tokens[1].Raw)
	}
}

// TestScanner_CustomPairs verifies a non-default delimiter set,
// including a multi-character pair.
func TestScanner_CustomPairs(t *testing.T) {
	s := NewScanner([]DelimiterPair{
		{Open: "<", Close: ">"},
		{Open: "#{", Close: "}"},
	})

	tokens := s.ProcessLine("<a #{b}>", ScannerState{})
	want := []TokenType{
		TokenOpen,
		TokenAtom,
		TokenWhitespace,
		TokenOpen,
		TokenAtom,
		TokenClose,
		TokenClose,
	}
	if got := tokenTypes(tokens); !typesEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	if tokens[3].Raw != "#{" {
		t.Errorf("multi-char open raw %q, want %q", tokens[3].Raw, "#{")
	}

	// Parens are plain atom characters under this configuration.
	tokens = s.ProcessLine("(x)", ScannerState{})
	if got := tokenTypes(tokens); !typesEqual(got, []TokenType{TokenAtom}) {
		t.Errorf("unconfigured parens: got %v, want one Atom", got)
	}
}

// TestScanner_SymmetricNonQuote verifies that a symmetric pair other
// than the double quote toggles open/close without string mode.
func TestScanner_SymmetricNonQuote(t *testing.T) {
	s := NewScanner([]DelimiterPair{
		{Open: "(", Close: ")"},
		{Open: "|", Close: "|"},
	})

	tokens := s.ProcessLine("|a| |b|", ScannerState{})
	want := []TokenType{
		TokenOpen,
		TokenAtom,
		TokenClose,
		TokenWhitespace,
		TokenOpen,
		TokenAtom,
		TokenClose,
	}
	if got := tokenTypes(tokens); !typesEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}

	for _, tok := range tokens {
		if tok.State.InString {
			t.Fatal("non-quote symmetric pair must not enter string mode")
		}
	}
}

// TestScanner_MatchingLookups verifies the pair lookup helpers.
func TestScanner_MatchingLookups(t *testing.T) {
	s := NewScanner(nil)

	if c, ok := s.MatchingClose("("); !ok || c != ")" {
		t.Errorf("MatchingClose(\"(\") = %q, %v", c, ok)
	}
	if o, ok := s.MatchingOpen("]"); !ok || o != "[" {
		t.Errorf("MatchingOpen(\"]\") = %q, %v", o, ok)
	}
	if _, ok := s.MatchingClose("<"); ok {
		t.Error("MatchingClose(\"<\") should not resolve")
	}
	if !s.IsOpen(`"`) || !s.IsClose(`"`) {
		t.Error("double quote is both open and close")
	}
	if s.IsOpen(")") || s.IsClose("(") {
		t.Error("open/close sets confused")
	}
}

// TestScanner_StateContinuity verifies that each token's state picks up
// exactly where the previous token left off when re-scanned.
func TestScanner_StateContinuity(t *testing.T) {
	s := NewScanner(nil)
	input := `(a "b` + `\"c" [d] "e`

	tokens := s.ProcessLine(input, ScannerState{})
	state := ScannerState{}
	offset := 0
	for i, tok := range tokens {
		rest := s.ProcessLine(input[offset:], state)
		if len(rest) == 0 {
			t.Fatalf("token %d: rescan yielded no tokens", i)
		}
		if rest[0].Type != tok.Type || rest[0].Raw != tok.Raw {
			t.Fatalf(
				"token %d: rescan got %v %q, want %v %q",
				i,
				rest[0].Type,
				rest[0].Raw,
				tok.Type,
				tok.Raw,
			)
		}
		state = tok.State
		offset += len(tok.Raw)
	}
}
