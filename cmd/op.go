package cmd

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/spf13/afero"

	"github.com/connerohnesorge/paredit/internal/editerrs"
	"github.com/connerohnesorge/paredit/internal/paredit"
)

// wrapOpName is handled outside the registry because it takes the
// delimiter pair as parameters.
const wrapOpName = "wrap"

// OpCmd applies one structural operation to a file at a byte offset
// and prints the result (or rewrites the file with --write).
//
// Examples:
//
//	paredit op slurp-forward main.lisp --pos 12
//	paredit op wrap main.lisp --pos 4 --open "[" --close "]"
//	paredit op kill main.lisp --pos 0 --write
type OpCmd struct {
	Name string `arg:"" help:"Operation name"    predictor:"operation"`
	File string `arg:"" help:"File to edit"      type:"existingfile"`

	Pos   int    `help:"Byte offset of the cursor"               required:""`
	Write bool   `help:"Rewrite the file in place"               short:"w"`
	Open  string `help:"Opening delimiter for wrap"              default:"("`
	Close string `help:"Closing delimiter for wrap"              default:")"`
	JSON  bool   `help:"Output JSON with text and cursor offset"`
}

// opResult is the machine-readable output of a successful operation.
type opResult struct {
	Text   string `json:"text"`
	Cursor int    `json:"cursor"`
	Killed string `json:"killed,omitempty"`
}

// Run executes the op command.
func (c *OpCmd) Run() error {
	doc, _, err := loadDocument(c.File, c.Pos)
	if err != nil {
		return err
	}

	op, ok := c.resolve()
	if !ok {
		return &editerrs.UnknownOperationError{
			Name:      c.Name,
			Available: availableOperations(),
		}
	}

	res, ok := op(doc, doc.Selection())
	if !ok {
		return c.classifyFailure(doc)
	}
	if !doc.Apply(res) {
		return &editerrs.EditRejectedError{Operation: c.Name}
	}

	if c.Write {
		if err := afero.WriteFile(
			appFs,
			c.File,
			[]byte(doc.Text()),
			0o644,
		); err != nil {
			return &editerrs.FileError{
				Path: c.File,
				Op:   "write",
				Err:  err,
			}
		}

		return nil
	}

	if c.JSON {
		out, err := json.Marshal(opResult{
			Text:   doc.Text(),
			Cursor: doc.Selection().Active,
			Killed: res.Killed,
		})
		if err != nil {
			return err
		}
		fmt.Println(string(out))

		return nil
	}

	fmt.Println(doc.Text())

	return nil
}

// listOps are the operations whose first precondition is an enclosing
// list at the cursor.
var listOps = map[string]bool{
	"slurp-forward":  true,
	"slurp-backward": true,
	"barf-forward":   true,
	"barf-backward":  true,
	"raise":          true,
	"splice":         true,
}

// classifyFailure turns a no-op result into the most specific error
// the position allows: missing enclosing list first, then a slurp with
// nothing adjacent, then the generic precondition failure.
func (c *OpCmd) classifyFailure(
	doc *paredit.Document,
) error {
	if listOps[c.Name] {
		up := paredit.RangeToBackwardUpList(doc, c.Pos)
		if up[0] == up[1] {
			return &editerrs.NoEnclosingListError{
				Operation: c.Name,
				Offset:    c.Pos,
			}
		}
	}

	switch c.Name {
	case "slurp-forward":
		return &editerrs.NothingToSlurpError{
			Direction: "forward",
			Offset:    c.Pos,
		}
	case "slurp-backward":
		return &editerrs.NothingToSlurpError{
			Direction: "backward",
			Offset:    c.Pos,
		}
	}

	return &editerrs.OperationFailedError{
		Operation: c.Name,
		Offset:    c.Pos,
	}
}

// resolve maps the operation name to a bound Op.
func (c *OpCmd) resolve() (paredit.Op, bool) {
	if c.Name == wrapOpName {
		return paredit.WrapWith(c.Open, c.Close), true
	}

	return paredit.Lookup(c.Name)
}

// availableOperations returns every valid op name, sorted.
func availableOperations() []string {
	names := paredit.OperationNames()
	names = append(names, wrapOpName)
	sort.Strings(names)

	return names
}
