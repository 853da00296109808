package cmd

import (
	"github.com/mattn/go-isatty"
	"github.com/spf13/afero"

	"github.com/connerohnesorge/paredit/internal/clip"
	"github.com/connerohnesorge/paredit/internal/config"
	"github.com/connerohnesorge/paredit/internal/editerrs"
	"github.com/connerohnesorge/paredit/internal/paredit"
	"github.com/connerohnesorge/paredit/internal/sexp"
)

// loadDocument reads a file and builds a document configured from
// paredit.yaml: delimiter pairs, kill clipboard policy, and the cursor
// at the given offset.
func loadDocument(
	path string,
	offset int,
) (*paredit.Document, *config.Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}

	data, err := afero.ReadFile(appFs, path)
	if err != nil {
		return nil, nil, &editerrs.FileError{
			Path: path,
			Op:   "read",
			Err:  err,
		}
	}

	scanner := sexp.NewScanner(cfg.DelimiterPairs())
	doc := paredit.NewDocument(string(data), scanner)

	if offset < 0 || offset > doc.Length() {
		return nil, nil, &editerrs.InvalidOffsetError{
			Offset: offset,
			Length: doc.Length(),
		}
	}
	doc.SetSelections([]paredit.Selection{
		paredit.Cursor(offset),
	})

	doc.SetCopyOnKill(cfg.ShouldCopyOnKill())
	doc.SetKillSink(clip.Copy)

	return doc, cfg, nil
}

// stdoutIsTerminal reports whether styled output makes sense. Piped
// output always gets the plain format.
func stdoutIsTerminal(fd uintptr) bool {
	return isatty.IsTerminal(fd) ||
		isatty.IsCygwinTerminal(fd)
}
