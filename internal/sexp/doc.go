// Package sexp provides the tokenization and cursor layer for
// structural editing: a line-oriented scanner for configurable
// delimiter pairs, a cached line model with offset arithmetic, and a
// token cursor with s-expression-aware navigation.
//
// The scanner is stateless per line; all cross-line context (string
// mode, the symmetric-delimiter stack) travels in ScannerState, so
// line i's end state is line i+1's start state and any line can be
// re-tokenized independently.
package sexp
