package sexp

// TextLine is one tokenized line of the document.
//
// Invariants:
//   - concatenating Tokens' Raw fields reproduces Text exactly
//   - re-tokenizing Text from StartState yields Tokens
//   - EndState equals the last token's State (StartState for an empty line)
//   - line i's EndState equals line i+1's StartState
type TextLine struct {
	Tokens     []Token
	Text       string
	StartState ScannerState
	EndState   ScannerState
}

// newTextLine tokenizes text with the given scanner and inbound state.
func newTextLine(
	scanner *Scanner,
	text string,
	start ScannerState,
) TextLine {
	tokens := scanner.ProcessLine(text, start)

	end := start.Clone()
	if len(tokens) > 0 {
		end = tokens[len(tokens)-1].State.Clone()
	}

	return TextLine{
		Tokens:     tokens,
		Text:       text,
		StartState: start.Clone(),
		EndState:   end,
	}
}

// tokenIndexAt returns the greatest token index whose start column is
// <= col, or -1 for a line with no tokens.
func (l *TextLine) tokenIndexAt(col int) int {
	if len(l.Tokens) == 0 {
		return -1
	}

	idx := 0
	for i, tok := range l.Tokens {
		if tok.Col > col {
			break
		}
		idx = i
	}

	return idx
}
