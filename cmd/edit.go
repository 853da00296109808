package cmd

import (
	"github.com/connerohnesorge/paredit/internal/tui"
)

// EditCmd opens the interactive structural editor on a file.
//
// The session renders the buffer with the current form highlighted;
// every keybinding maps to a paredit operation. Press ? inside the
// session for the full key list.
type EditCmd struct {
	File string `arg:"" help:"File to edit" type:"existingfile"`

	Pos int `help:"Initial cursor offset" default:"0"`
}

// Run executes the edit command.
func (c *EditCmd) Run() error {
	doc, _, err := loadDocument(c.File, c.Pos)
	if err != nil {
		return err
	}

	return tui.NewEditor(doc, c.File, appFs).Run()
}
