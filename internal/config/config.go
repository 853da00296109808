// Package config handles paredit configuration file loading and
// validation.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/connerohnesorge/paredit/internal/sexp"
	"github.com/connerohnesorge/paredit/internal/theme"
)

// ConfigFileName is the name of the paredit configuration file.
const ConfigFileName = "paredit.yaml"

// Pair is one delimiter pair entry in the configuration file.
type Pair struct {
	Open  string `yaml:"open"`
	Close string `yaml:"close"`
}

// Config holds the paredit configuration.
type Config struct {
	// Theme is the name of the color theme to use
	// (default, dark, light, solarized, monokai).
	Theme string `yaml:"theme"`

	// CopyOnKill controls whether kill operations publish the
	// killed text to the system clipboard. Defaults to true.
	CopyOnKill *bool `yaml:"copy_on_kill"`

	// Pairs overrides the delimiter pair set. When empty the
	// default set of (), [], {}, and "" applies.
	Pairs []Pair `yaml:"pairs"`

	// ProjectRoot is the directory where paredit.yaml was found,
	// or the starting directory when no file exists.
	ProjectRoot string `yaml:"-"`
}

// Load searches for paredit.yaml starting from the current working
// directory, walking up the directory tree. If found, it parses the
// configuration; otherwise it returns defaults.
func Load() (*Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get current directory: %w", err)
	}

	return LoadFromPath(cwd)
}

// LoadFile parses and validates an explicitly named configuration
// file, bypassing directory discovery. Used for the --config flag.
func LoadFile(configPath string) (*Config, error) {
	absPath, err := filepath.Abs(configPath)
	if err != nil {
		return nil, fmt.Errorf(
			"failed to resolve absolute path for %q: %w",
			configPath,
			err,
		)
	}

	cfg, err := parseConfigFile(absPath)
	if err != nil {
		return nil, err
	}
	cfg.ProjectRoot = filepath.Dir(absPath)

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf(
			"invalid configuration in %s: %w",
			absPath,
			err,
		)
	}

	return cfg, nil
}

// LoadFromPath searches for paredit.yaml starting from the given path,
// walking up the directory tree. If found, it parses the
// configuration. If not found, returns default configuration with
// startPath as ProjectRoot.
func LoadFromPath(startPath string) (*Config, error) {
	absPath, err := filepath.Abs(startPath)
	if err != nil {
		return nil, fmt.Errorf(
			"failed to resolve absolute path for %q: %w",
			startPath,
			err,
		)
	}

	currentPath := absPath
	for {
		configPath := filepath.Join(currentPath, ConfigFileName)

		if _, err := os.Stat(configPath); err == nil {
			cfg, err := parseConfigFile(configPath)
			if err != nil {
				return nil, err
			}
			cfg.ProjectRoot = currentPath

			if err := cfg.validate(); err != nil {
				return nil, fmt.Errorf(
					"invalid configuration in %s: %w",
					configPath,
					err,
				)
			}

			return cfg, nil
		}

		parentPath := filepath.Dir(currentPath)
		if parentPath == currentPath {
			break
		}
		currentPath = parentPath
	}

	return &Config{
		Theme:       "default",
		ProjectRoot: absPath,
	}, nil
}

// parseConfigFile reads and parses a paredit.yaml file.
func parseConfigFile(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		var yamlErr *yaml.TypeError
		if errors.As(err, &yamlErr) {
			return nil, fmt.Errorf(
				"invalid YAML syntax: %v",
				yamlErr.Errors,
			)
		}

		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if cfg.Theme == "" {
		cfg.Theme = "default"
	}

	return &cfg, nil
}

// validate checks if the configuration is valid.
func (c *Config) validate() error {
	if _, err := theme.Get(c.Theme); err != nil {
		available := theme.Available()

		return fmt.Errorf(
			"invalid theme '%s', available themes: %s",
			c.Theme,
			strings.Join(available, ", "),
		)
	}

	seen := make(map[string]bool, len(c.Pairs))
	for i, p := range c.Pairs {
		if p.Open == "" || p.Close == "" {
			return fmt.Errorf(
				"pair %d: open and close must be non-empty",
				i,
			)
		}
		if strings.ContainsAny(p.Open+p.Close, " \t\n\r") {
			return fmt.Errorf(
				"pair %d: delimiters must not contain whitespace",
				i,
			)
		}
		// Identical open and close makes a pair symmetric, and
		// only the string quote has defined symmetric semantics.
		if p.Open == p.Close && p.Open != sexp.StringQuote {
			return fmt.Errorf(
				"pair %d: open and close must differ (only %q may be symmetric)",
				i,
				sexp.StringQuote,
			)
		}
		if seen[p.Open] {
			return fmt.Errorf(
				"pair %d: duplicate open delimiter %q",
				i,
				p.Open,
			)
		}
		seen[p.Open] = true
	}

	return nil
}

// ShouldCopyOnKill reports the copy-on-kill policy, defaulting to true
// when the file does not set it.
func (c *Config) ShouldCopyOnKill() bool {
	if c.CopyOnKill == nil {
		return true
	}

	return *c.CopyOnKill
}

// DelimiterPairs returns the configured delimiter set, or the scanner
// defaults when the configuration does not override it.
func (c *Config) DelimiterPairs() []sexp.DelimiterPair {
	if len(c.Pairs) == 0 {
		return sexp.DefaultPairs()
	}

	pairs := make([]sexp.DelimiterPair, len(c.Pairs))
	for i, p := range c.Pairs {
		pairs[i] = sexp.DelimiterPair{
			Open:  p.Open,
			Close: p.Close,
		}
	}

	return pairs
}
