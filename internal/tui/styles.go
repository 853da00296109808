// Package tui provides the interactive structural editing session.
package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/connerohnesorge/paredit/internal/theme"
)

// TitleStyle returns the style for the session title.
func TitleStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.Current().Primary)
}

// HelpStyle returns the style for help text.
func HelpStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(theme.Current().Muted).
		MarginTop(1)
}

// StatusStyle returns the style for the status bar.
func StatusStyle() lipgloss.Style {
	th := theme.Current()

	return lipgloss.NewStyle().
		Foreground(th.Muted).
		BorderStyle(lipgloss.NormalBorder()).
		BorderTop(true).
		BorderForeground(th.Border)
}

// SuccessStyle returns the style for success messages.
func SuccessStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(theme.Current().Success)
}

// ErrorStyle returns the style for error messages.
func ErrorStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(theme.Current().Error)
}

// DelimiterStyle returns the style for delimiter tokens.
func DelimiterStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(theme.Current().Delimiter)
}

// StringStyle returns the style for string literal tokens.
func StringStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(theme.Current().StringLit)
}

// AtomStyle returns the style for atom tokens.
func AtomStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(theme.Current().Atom)
}

// FormStyle returns the style applied to the current form.
func FormStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Background(theme.Current().FormHighlight)
}

// CursorStyle returns the style for the cursor cell.
func CursorStyle() lipgloss.Style {
	th := theme.Current()

	return lipgloss.NewStyle().
		Foreground(th.CursorFg).
		Background(th.CursorBg)
}
