package cmd

import (
	"fmt"

	"github.com/connerohnesorge/paredit/internal/version"
)

// VersionCmd displays build information: version number, git commit
// hash, and build date.
//
// Output formats:
//   - Default: multi-line formatted output
//   - --short: version number only (e.g., "v0.1.0")
//   - --json: machine-readable JSON for scripting
type VersionCmd struct {
	// JSON enables JSON output format for scripting and automation.
	JSON bool `kong:"help='Output in JSON format for scripting'"`

	// Short enables minimal output showing only the version number.
	Short bool `kong:"help='Output version number only'"`
}

// Run executes the version command. The JSON flag takes precedence
// over Short if both are set.
func (c *VersionCmd) Run() error {
	info := version.GetBuildInfo()

	switch {
	case c.JSON:
		jsonBytes, err := info.JSON()
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(jsonBytes))
	case c.Short:
		fmt.Println(info.Short())
	default:
		fmt.Println(info.String())
	}

	return nil
}
