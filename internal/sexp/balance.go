package sexp

// Unbalanced describes a delimiter token with no match in the
// document.
type Unbalanced struct {
	Raw  string
	Line int
	Col  int
}

// UnbalancedDelimiters scans the whole document and reports every
// open without a matching close and every close without a matching
// open, in document order.
func (m *LineModel) UnbalancedDelimiters() []Unbalanced {
	type openEntry struct {
		raw       string
		line, col int
		closeType TokenType
		closeRaw  string
	}

	var stack []openEntry
	var bad []Unbalanced

	for li := 0; li < len(m.lines); li++ {
		for _, tok := range m.lines[li].Tokens {
			switch {
			case tok.IsOpenKind():
				closeType := TokenClose
				closeRaw, ok := m.scanner.MatchingClose(tok.Raw)
				if tok.Type == TokenStrStart {
					closeType = TokenStrEnd
					closeRaw, ok = tok.Raw, true
				}
				if !ok {
					bad = append(bad, Unbalanced{
						Raw:  tok.Raw,
						Line: li,
						Col:  tok.Col,
					})

					continue
				}
				stack = append(stack, openEntry{
					raw:       tok.Raw,
					line:      li,
					col:       tok.Col,
					closeType: closeType,
					closeRaw:  closeRaw,
				})

			case tok.IsCloseKind():
				n := len(stack)
				if n > 0 &&
					stack[n-1].closeType == tok.Type &&
					stack[n-1].closeRaw == tok.Raw {
					stack = stack[:n-1]

					continue
				}
				bad = append(bad, Unbalanced{
					Raw:  tok.Raw,
					Line: li,
					Col:  tok.Col,
				})
			}
		}
	}

	for _, entry := range stack {
		bad = append(bad, Unbalanced{
			Raw:  entry.raw,
			Line: entry.line,
			Col:  entry.col,
		})
	}

	return bad
}
