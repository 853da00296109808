// Package cmd provides the command-line interface for paredit.
package cmd

import (
	kongcompletion "github.com/jotaen/kong-completion"
	"github.com/spf13/afero"

	"github.com/connerohnesorge/paredit/internal/config"
	"github.com/connerohnesorge/paredit/internal/theme"
)

// CLI represents the root command structure for Kong.
type CLI struct {
	// Global flags (apply to all commands)
	Config  string `help:"Path to a paredit.yaml file"      name:"config"  type:"existingfile"`
	Theme   string `help:"Override the color theme"         name:"theme"`
	Plain   bool   `help:"Disable styled output"            name:"plain"   short:"p"`
	Verbose bool   `help:"Enable verbose output"            name:"verbose" short:"v"`

	// Commands
	Op         OpCmd                     `cmd:"" help:"Apply a structural operation to a file"`
	Range      RangeCmd                  `cmd:"" help:"Print a structural range"`
	Tokens     TokensCmd                 `cmd:"" help:"Dump the token stream of a file"`
	Check      CheckCmd                  `cmd:"" help:"Check delimiter balance"`
	Edit       EditCmd                   `cmd:"" help:"Open the interactive editor"`
	Version    VersionCmd                `cmd:"" help:"Show version info"`
	Completion kongcompletion.Completion `cmd:"" help:"Generate completions"`
}

// AfterApply is called by Kong after parsing flags but before running
// the command. It resolves the active theme (config file first, then
// the --theme override) and records the global flag state.
func (c *CLI) AfterApply() error {
	configPath = c.Config
	plainOutput = c.Plain
	verboseOutput = c.Verbose

	if cfg, err := loadConfig(); err == nil {
		_ = theme.Load(cfg.Theme)
	}
	// Config errors are not fatal here; commands that need the
	// config load it themselves and report properly.

	if c.Theme != "" {
		return theme.Load(c.Theme)
	}

	return nil
}

// Global flag state set from the root flags.
var (
	configPath    string
	plainOutput   bool
	verboseOutput bool
)

// loadConfig resolves the configuration: the --config file when given,
// otherwise directory discovery from the working directory.
func loadConfig() (*config.Config, error) {
	if configPath != "" {
		return config.LoadFile(configPath)
	}

	return config.Load()
}

// appFs is the filesystem the commands read and write through.
// Tests swap in an in-memory filesystem.
var appFs afero.Fs = afero.NewOsFs()

// SetFs replaces the command filesystem, returning a restore func.
func SetFs(fs afero.Fs) func() {
	old := appFs
	appFs = fs

	return func() { appFs = old }
}
