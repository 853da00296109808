package cmd

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/connerohnesorge/paredit/internal/editerrs"
	"github.com/connerohnesorge/paredit/internal/paredit"
)

// rangeFuncs names every range operation the CLI exposes.
var rangeFuncs = map[string]paredit.RangeFunc{
	"forward-sexp":        paredit.ForwardSexpRange,
	"backward-sexp":       paredit.BackwardSexpRange,
	"forward-sexp-or-up":  paredit.ForwardSexpOrUpRange,
	"backward-sexp-or-up": paredit.BackwardSexpOrUpRange,
	"forward-up-list":     paredit.RangeToForwardUpList,
	"backward-up-list":    paredit.RangeToBackwardUpList,
	"forward-down-list":   paredit.RangeToForwardDownList,
	"backward-down-list":  paredit.RangeToBackwardDownList,
	"current-form":        paredit.RangeForCurrentForm,
	"defun":               paredit.RangeForDefun,
}

// RangeCmd prints the [start, end) range a range function computes at
// a byte offset, plus the covered text.
//
// Examples:
//
//	paredit range forward-sexp main.lisp --pos 0
//	paredit range defun main.lisp --pos 12 --json
type RangeCmd struct {
	Name string `arg:"" help:"Range function name" predictor:"range"`
	File string `arg:"" help:"File to inspect"     type:"existingfile"`

	Pos  int  `help:"Byte offset of the cursor" required:""`
	JSON bool `help:"Output JSON"`
}

// rangeResult is the machine-readable output.
type rangeResult struct {
	Start int    `json:"start"`
	End   int    `json:"end"`
	Text  string `json:"text"`
}

// Run executes the range command.
func (c *RangeCmd) Run() error {
	fn, ok := rangeFuncs[c.Name]
	if !ok {
		return &editerrs.UnknownRangeError{
			Name:      c.Name,
			Available: availableRanges(),
		}
	}

	doc, _, err := loadDocument(c.File, c.Pos)
	if err != nil {
		return err
	}

	r := fn(doc, c.Pos)
	result := rangeResult{
		Start: r[0],
		End:   r[1],
		Text:  doc.GetText(r[0], r[1]),
	}

	if c.JSON {
		out, err := json.Marshal(result)
		if err != nil {
			return err
		}
		fmt.Println(string(out))

		return nil
	}

	fmt.Printf("%d %d\t%q\n", result.Start, result.End, result.Text)

	return nil
}

// availableRanges returns every range function name, sorted.
func availableRanges() []string {
	names := make([]string, 0, len(rangeFuncs))
	for name := range rangeFuncs {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
