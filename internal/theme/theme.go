// Package theme provides color theming for the paredit CLI and TUI.
package theme

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines a complete color palette for rendering structural
// editing sessions and CLI output.
type Theme struct {
	Primary       lipgloss.Color // Headers, titles
	Error         lipgloss.Color // Errors, unbalanced delimiters
	Warning       lipgloss.Color // Caution indicators
	Success       lipgloss.Color // Balanced-check results
	Muted         lipgloss.Color // Dim/subtle text, help lines
	Border        lipgloss.Color // Separators, status bar border
	Delimiter     lipgloss.Color // Open/close delimiter tokens
	StringLit     lipgloss.Color // String literal tokens
	Atom          lipgloss.Color // Atom tokens
	FormHighlight lipgloss.Color // Background of the current form
	CursorFg      lipgloss.Color // Cursor cell foreground
	CursorBg      lipgloss.Color // Cursor cell background
	GradientStart lipgloss.Color // Banner gradient start
	GradientEnd   lipgloss.Color // Banner gradient end
}

// Default theme.
var defaultTheme = &Theme{
	Primary:       lipgloss.Color("99"),  // Purple
	Error:         lipgloss.Color("196"), // Red
	Warning:       lipgloss.Color("3"),   // Yellow
	Success:       lipgloss.Color("42"),  // Green
	Muted:         lipgloss.Color("240"), // Dim gray
	Border:        lipgloss.Color("240"), // Dim gray
	Delimiter:     lipgloss.Color("170"), // Pink
	StringLit:     lipgloss.Color("114"), // Soft green
	Atom:          lipgloss.Color("252"), // Near white
	FormHighlight: lipgloss.Color("57"),  // Purple background
	CursorFg:      lipgloss.Color("16"),  // Black
	CursorBg:      lipgloss.Color("229"), // Light yellow
	GradientStart: lipgloss.Color("99"),  // Purple
	GradientEnd:   lipgloss.Color("205"), // Pink
}

// Dark theme: high contrast on dark backgrounds.
var darkTheme = &Theme{
	Primary:       lipgloss.Color("141"),
	Error:         lipgloss.Color("196"),
	Warning:       lipgloss.Color("226"),
	Success:       lipgloss.Color("46"),
	Muted:         lipgloss.Color("243"),
	Border:        lipgloss.Color("238"),
	Delimiter:     lipgloss.Color("213"),
	StringLit:     lipgloss.Color("120"),
	Atom:          lipgloss.Color("231"),
	FormHighlight: lipgloss.Color("61"),
	CursorFg:      lipgloss.Color("16"),
	CursorBg:      lipgloss.Color("231"),
	GradientStart: lipgloss.Color("141"),
	GradientEnd:   lipgloss.Color("213"),
}

// Light theme: optimized for light terminal backgrounds.
var lightTheme = &Theme{
	Primary:       lipgloss.Color("55"),
	Error:         lipgloss.Color("160"),
	Warning:       lipgloss.Color("136"),
	Success:       lipgloss.Color("28"),
	Muted:         lipgloss.Color("246"),
	Border:        lipgloss.Color("250"),
	Delimiter:     lipgloss.Color("125"),
	StringLit:     lipgloss.Color("22"),
	Atom:          lipgloss.Color("16"),
	FormHighlight: lipgloss.Color("189"),
	CursorFg:      lipgloss.Color("231"),
	CursorBg:      lipgloss.Color("55"),
	GradientStart: lipgloss.Color("55"),
	GradientEnd:   lipgloss.Color("125"),
}

// Solarized theme: Solarized Dark palette colors.
var solarizedTheme = &Theme{
	Primary:       lipgloss.Color("33"),
	Error:         lipgloss.Color("160"),
	Warning:       lipgloss.Color("136"),
	Success:       lipgloss.Color("64"),
	Muted:         lipgloss.Color("240"),
	Border:        lipgloss.Color("235"),
	Delimiter:     lipgloss.Color("125"),
	StringLit:     lipgloss.Color("37"),
	Atom:          lipgloss.Color("230"),
	FormHighlight: lipgloss.Color("235"),
	CursorFg:      lipgloss.Color("234"),
	CursorBg:      lipgloss.Color("230"),
	GradientStart: lipgloss.Color("33"),
	GradientEnd:   lipgloss.Color("125"),
}

// Monokai theme: Monokai palette colors.
var monokaiTheme = &Theme{
	Primary:       lipgloss.Color("141"),
	Error:         lipgloss.Color("197"),
	Warning:       lipgloss.Color("208"),
	Success:       lipgloss.Color("148"),
	Muted:         lipgloss.Color("243"),
	Border:        lipgloss.Color("237"),
	Delimiter:     lipgloss.Color("197"),
	StringLit:     lipgloss.Color("186"),
	Atom:          lipgloss.Color("231"),
	FormHighlight: lipgloss.Color("237"),
	CursorFg:      lipgloss.Color("16"),
	CursorBg:      lipgloss.Color("231"),
	GradientStart: lipgloss.Color("141"),
	GradientEnd:   lipgloss.Color("197"),
}

// themes is the registry of all available themes
var themes = map[string]*Theme{
	"default":   defaultTheme,
	"dark":      darkTheme,
	"light":     lightTheme,
	"solarized": solarizedTheme,
	"monokai":   monokaiTheme,
}

// current holds the currently active theme
var current *Theme

// Get returns the theme with the given name.
// Returns an error if the theme does not exist.
func Get(name string) (*Theme, error) {
	theme, ok := themes[name]
	if !ok {
		return nil, fmt.Errorf("theme not found: %s", name)
	}

	return theme, nil
}

// Load loads the theme with the given name as the current theme.
// Returns an error if the theme does not exist.
func Load(name string) error {
	theme, err := Get(name)
	if err != nil {
		return err
	}
	current = theme

	return nil
}

// Current returns the currently active theme.
// If no theme has been loaded, returns the default theme.
func Current() *Theme {
	if current == nil {
		return defaultTheme
	}

	return current
}

// Available returns a sorted list of all available theme names.
func Available() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
