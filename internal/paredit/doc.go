// Package paredit implements structural editing over balanced
// delimiters: navigation and selection by s-expression, plus the
// classic mutations (slurp, barf, raise, splice, wrap, transpose,
// kill).
//
// The package is split along a pure/impure line:
//
//   - Range functions (ForwardSexpRange and friends) compute absolute
//     [start, end) pairs from the document state without mutating
//     anything. A range that cannot be produced collapses to
//     [offset, offset].
//   - Mutation functions compute a Result (edits, new selections,
//     killed text) without applying it. Document.Apply runs the edits,
//     rewrites the selections, and publishes killed text to the
//     configured sink.
//
// Every operation is total: unmet preconditions (no enclosing list,
// unmatched delimiters, empty target) yield a no-op result, never an
// error or panic. Successful mutations preserve delimiter balance by
// construction — they only move, add, or remove whole delimiters.
package paredit
