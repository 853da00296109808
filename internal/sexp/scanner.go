package sexp

// DelimiterPair is one configured pair of balanced delimiters.
type DelimiterPair struct {
	Open  string
	Close string
}

// Symmetric reports whether the pair uses the same text for both ends,
// like the double quote. Symmetric pairs need the scanner's nesting
// stack to decide whether an occurrence opens or closes.
func (p DelimiterPair) Symmetric() bool {
	return p.Open == p.Close
}

// StringQuote is the symmetric delimiter that puts the scanner into
// string mode. Other symmetric pairs toggle open/close without string
// semantics.
const StringQuote = `"`

// DefaultPairs returns the documented default delimiter set.
func DefaultPairs() []DelimiterPair {
	return []DelimiterPair{
		{Open: "(", Close: ")"},
		{Open: "[", Close: "]"},
		{Open: "{", Close: "}"},
		{Open: `"`, Close: `"`},
	}
}

// Scanner tokenizes one line at a time for a fixed set of delimiter
// pairs. It is stateless per call: all cross-line context lives in the
// ScannerState threaded through ProcessLine.
type Scanner struct {
	pairs  []DelimiterPair
	opens  map[string]string // open text -> close text
	closes map[string]string // close text -> open text

	// maxDelim is the longest configured delimiter length, bounding
	// the lookahead needed for longest-match scanning.
	maxDelim int
}

// NewScanner creates a scanner for the given pairs.
// A nil or empty slice selects DefaultPairs.
func NewScanner(pairs []DelimiterPair) *Scanner {
	if len(pairs) == 0 {
		pairs = DefaultPairs()
	}

	s := &Scanner{
		pairs:  pairs,
		opens:  make(map[string]string, len(pairs)),
		closes: make(map[string]string, len(pairs)),
	}
	for _, p := range pairs {
		if p.Open == "" || p.Close == "" {
			continue
		}
		s.opens[p.Open] = p.Close
		s.closes[p.Close] = p.Open
		if len(p.Open) > s.maxDelim {
			s.maxDelim = len(p.Open)
		}
		if len(p.Close) > s.maxDelim {
			s.maxDelim = len(p.Close)
		}
	}

	return s
}

// Pairs returns the configured delimiter pairs.
func (s *Scanner) Pairs() []DelimiterPair {
	return s.pairs
}

// MatchingClose returns the close text for an open delimiter.
func (s *Scanner) MatchingClose(open string) (string, bool) {
	c, ok := s.opens[open]

	return c, ok
}

// MatchingOpen returns the open text for a close delimiter.
func (s *Scanner) MatchingOpen(close string) (string, bool) {
	o, ok := s.closes[close]

	return o, ok
}

// IsOpen reports whether text is a configured open delimiter.
func (s *Scanner) IsOpen(text string) bool {
	_, ok := s.opens[text]

	return ok
}

// IsClose reports whether text is a configured close delimiter.
func (s *Scanner) IsClose(text string) bool {
	_, ok := s.closes[text]

	return ok
}

// ProcessLine tokenizes one line of text given the inbound state.
// The returned tokens partition text exactly; each token carries the
// state that held after it was consumed. The final token's state is the
// line's end state (equal to start for an empty line).
func (s *Scanner) ProcessLine(
	text string,
	start ScannerState,
) []Token {
	var tokens []Token
	state := start.Clone()

	pos := 0
	for pos < len(text) {
		tok := s.scanToken(text, pos, &state)
		tok.Col = pos
		tok.State = state.Clone()
		tokens = append(tokens, tok)
		pos += len(tok.Raw)
	}

	return tokens
}

// scanToken produces the next token starting at pos.
// state is mutated to reflect the consumed token.
//
//nolint:revive // cognitive-complexity: single dispatch point for all token kinds
func (s *Scanner) scanToken(
	text string,
	pos int,
	state *ScannerState,
) Token {
	if state.InString {
		return s.scanInString(text, pos, state)
	}

	b := text[pos]
	if isSpaceByte(b) {
		return scanWhitespace(text, pos)
	}

	if delim, ok := s.delimAt(text, pos); ok {
		return s.scanDelimiter(delim, state)
	}

	return s.scanAtom(text, pos)
}

// scanInString handles string mode: either the closing quote or a
// content run up to it. A backslash escapes the following character, so
// an escaped quote never terminates the string.
func (s *Scanner) scanInString(
	text string,
	pos int,
	state *ScannerState,
) Token {
	delim := state.StringDelim

	// Positioned on the unescaped closing delimiter.
	if delim != "" && hasPrefixAt(text, pos, delim) {
		state.InString = false
		state.StringDelim = ""
		state.popSymmetric(delim)

		return Token{Type: TokenStrEnd, Raw: delim}
	}

	// Content run until the closing delimiter or end of line.
	i := pos
	for i < len(text) {
		if text[i] == '\\' {
			if i+1 < len(text) {
				i += 2

				continue
			}
			// Lone backslash at end of line escapes nothing;
			// the state struct carries no escape across lines.
			i++

			break
		}
		if delim != "" && hasPrefixAt(text, i, delim) {
			break
		}
		i++
	}

	return Token{Type: TokenStrInside, Raw: text[pos:i]}
}

// scanDelimiter classifies a delimiter occurrence and updates state.
// Symmetric pairs consult the nesting stack: a delimiter already on the
// stack closes, anything else opens. The string quote additionally
// toggles string mode.
func (s *Scanner) scanDelimiter(
	delim string,
	state *ScannerState,
) Token {
	pair, symmetric := s.pairOf(delim)

	if symmetric {
		if state.hasOpenSymmetric(delim) {
			state.popSymmetric(delim)
			if delim == StringQuote {
				state.InString = false
				state.StringDelim = ""

				return Token{Type: TokenStrEnd, Raw: delim}
			}

			return Token{Type: TokenClose, Raw: delim}
		}

		state.pushSymmetric(delim)
		if delim == StringQuote {
			state.InString = true
			state.StringDelim = delim

			return Token{Type: TokenStrStart, Raw: delim}
		}

		return Token{Type: TokenOpen, Raw: delim}
	}

	if delim == pair.Open {
		return Token{Type: TokenOpen, Raw: delim}
	}

	return Token{Type: TokenClose, Raw: delim}
}

// scanAtom consumes a maximal run of characters that are neither
// whitespace nor the start of a configured delimiter.
func (s *Scanner) scanAtom(text string, pos int) Token {
	i := pos
	for i < len(text) {
		b := text[i]
		if isSpaceByte(b) {
			break
		}
		if _, ok := s.delimAt(text, i); ok {
			break
		}
		i++
	}

	if i == pos {
		// Safety fallback: cannot occur with non-empty delimiter
		// config, but never loop on a byte we cannot classify.
		return Token{Type: TokenJunk, Raw: text[pos : pos+1]}
	}

	return Token{Type: TokenAtom, Raw: text[pos:i]}
}

// scanWhitespace consumes a maximal whitespace run.
func scanWhitespace(text string, pos int) Token {
	i := pos
	kind := TokenWhitespace
	for i < len(text) {
		b := text[i]
		if !isSpaceByte(b) {
			break
		}
		if b == '\n' || b == '\r' {
			kind = TokenWhitespaceNL
		}
		i++
	}

	return Token{Type: kind, Raw: text[pos:i]}
}

// delimAt returns the longest configured delimiter starting at pos.
func (s *Scanner) delimAt(
	text string,
	pos int,
) (string, bool) {
	limit := s.maxDelim
	if rest := len(text) - pos; rest < limit {
		limit = rest
	}
	for n := limit; n > 0; n-- {
		cand := text[pos : pos+n]
		if _, ok := s.opens[cand]; ok {
			return cand, true
		}
		if _, ok := s.closes[cand]; ok {
			return cand, true
		}
	}

	return "", false
}

// pairOf finds the pair a delimiter belongs to and whether it is
// symmetric. delim must be a configured delimiter.
func (s *Scanner) pairOf(
	delim string,
) (pair DelimiterPair, symmetric bool) {
	if c, ok := s.opens[delim]; ok {
		return DelimiterPair{Open: delim, Close: c}, delim == c
	}
	if o, ok := s.closes[delim]; ok {
		return DelimiterPair{Open: o, Close: delim}, o == delim
	}

	return DelimiterPair{}, false
}

// hasPrefixAt reports whether text[pos:] begins with prefix.
func hasPrefixAt(
	text string,
	pos int,
	prefix string,
) bool {
	return len(text)-pos >= len(prefix) &&
		text[pos:pos+len(prefix)] == prefix
}

// isSpaceByte matches the whitespace characters the scanner recognizes.
func isSpaceByte(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}
