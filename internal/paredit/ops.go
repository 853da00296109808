package paredit

// Op is a mutation operation bound to its parameters, ready to run
// against a document and a selection.
type Op func(*Document, Selection) (Result, bool)

// WrapWith binds Wrap to a delimiter pair.
func WrapWith(open, close string) Op {
	return func(d *Document, s Selection) (Result, bool) {
		return Wrap(d, s, open, close)
	}
}

// operations is the registry of named parameter-free operations used
// by the CLI and TUI dispatch layers.
var operations = map[string]Op{
	"slurp-forward":  SlurpForward,
	"slurp-backward": SlurpBackward,
	"barf-forward":   BarfForward,
	"barf-backward":  BarfBackward,
	"raise":          Raise,
	"splice":         Splice,
	"transpose":      Transpose,
	"kill":           KillForwardSexp,
	"kill-backward":  KillBackwardSexp,
}

// Lookup resolves an operation by name.
func Lookup(name string) (Op, bool) {
	op, ok := operations[name]

	return op, ok
}

// OperationNames returns the registered operation names, unordered.
func OperationNames() []string {
	names := make([]string, 0, len(operations))
	for name := range operations {
		names = append(names, name)
	}

	return names
}

// Execute runs an operation against the document's primary selection
// and applies the result. Mutations honor the first selection only;
// secondary selections are replaced by the operation's outcome.
// Returns false when the operation was a no-op or the edit was
// rejected.
func Execute(doc *Document, op Op) bool {
	res, ok := op(doc, doc.Selection())
	if !ok {
		return false
	}

	return doc.Apply(res)
}
