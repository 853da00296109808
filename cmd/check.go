package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/afero"

	"github.com/connerohnesorge/paredit/internal/editerrs"
	"github.com/connerohnesorge/paredit/internal/sexp"
	"github.com/connerohnesorge/paredit/internal/tui"
	"github.com/connerohnesorge/paredit/internal/watch"
)

// CheckCmd reports unbalanced delimiters in a file. With --watch it
// keeps running and re-checks on every save until interrupted.
type CheckCmd struct {
	File string `arg:"" help:"File to check" type:"existingfile"`

	Watch bool `help:"Re-check whenever the file changes"`
}

// Run executes the check command.
func (c *CheckCmd) Run() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	scanner := sexp.NewScanner(cfg.DelimiterPairs())

	if !c.Watch {
		bad, err := checkFile(c.File, scanner)
		if err != nil {
			return err
		}
		reportBalance(c.File, bad)
		if len(bad) > 0 {
			return &editerrs.UnbalancedDelimiterError{
				Delimiter: bad[0].Raw,
				Line:      bad[0].Line,
				Col:       bad[0].Col,
			}
		}

		return nil
	}

	return c.watchLoop(scanner)
}

// watchLoop re-checks the file on every debounced change until the
// process is interrupted.
func (c *CheckCmd) watchLoop(scanner *sexp.Scanner) error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
	)
	defer stop()

	if verboseOutput {
		fmt.Fprintf(os.Stderr, "watching %s\n", c.File)
	}

	// Initial check before the first change arrives.
	if bad, err := checkFile(c.File, scanner); err == nil {
		reportBalance(c.File, bad)
	}

	return watch.Watch(ctx, c.File, func() {
		bad, err := checkFile(c.File, scanner)
		if err != nil {
			fmt.Fprintf(os.Stderr, "check: %v\n", err)

			return
		}
		reportBalance(c.File, bad)
	})
}

// checkFile tokenizes the file and collects unbalanced delimiters.
func checkFile(
	path string,
	scanner *sexp.Scanner,
) ([]sexp.Unbalanced, error) {
	data, err := afero.ReadFile(appFs, path)
	if err != nil {
		return nil, &editerrs.FileError{
			Path: path,
			Op:   "read",
			Err:  err,
		}
	}

	model := sexp.NewLineModel(string(data), scanner)

	return model.UnbalancedDelimiters(), nil
}

// reportBalance prints one line per finding, or a success marker.
func reportBalance(path string, bad []sexp.Unbalanced) {
	styled := !plainOutput && stdoutIsTerminal(os.Stdout.Fd())

	if len(bad) == 0 {
		msg := path + ": balanced"
		if styled {
			msg = tui.SuccessStyle().Render(msg)
		}
		fmt.Println(msg)

		return
	}

	for _, u := range bad {
		msg := fmt.Sprintf(
			"%s:%d:%d: unbalanced %q",
			path,
			u.Line+1,
			u.Col,
			u.Raw,
		)
		if styled {
			msg = tui.ErrorStyle().Render(msg)
		}
		fmt.Println(msg)
	}
}
