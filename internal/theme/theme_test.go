package theme

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

// TestGet verifies theme lookup by name.
func TestGet(t *testing.T) {
	tests := []struct {
		themeName string
		wantTheme *Theme
		wantError bool
	}{
		{"default", defaultTheme, false},
		{"dark", darkTheme, false},
		{"light", lightTheme, false},
		{"solarized", solarizedTheme, false},
		{"monokai", monokaiTheme, false},
		{"nonexistent", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.themeName, func(t *testing.T) {
			got, err := Get(tt.themeName)
			if (err != nil) != tt.wantError {
				t.Fatalf(
					"Get(%q) error = %v, wantError %v",
					tt.themeName,
					err,
					tt.wantError,
				)
			}
			if got != tt.wantTheme {
				t.Errorf(
					"Get(%q) = %v, want %v",
					tt.themeName,
					got,
					tt.wantTheme,
				)
			}
		})
	}
}

// TestLoadAndCurrent verifies that Load switches the active theme and
// that Current falls back to the default.
func TestLoadAndCurrent(t *testing.T) {
	current = nil
	defer func() { current = nil }()

	if got := Current(); got != defaultTheme {
		t.Errorf("Current() with nothing loaded = %v, want default", got)
	}

	if err := Load("dark"); err != nil {
		t.Fatalf("Load(\"dark\") failed: %v", err)
	}
	if got := Current(); got != darkTheme {
		t.Errorf("Current() after Load(\"dark\") = %v, want dark", got)
	}

	if err := Load("nonexistent"); err == nil {
		t.Error("Load of unknown theme should fail")
	}
	if got := Current(); got != darkTheme {
		t.Error("failed Load must not change the current theme")
	}
}

// TestAvailable verifies the sorted theme name list.
func TestAvailable(t *testing.T) {
	got := Available()
	want := []string{
		"dark",
		"default",
		"light",
		"monokai",
		"solarized",
	}

	if len(got) != len(want) {
		t.Fatalf(
			"Available() returned %d themes, want %d",
			len(got),
			len(want),
		)
	}
	for i, name := range want {
		if got[i] != name {
			t.Errorf("Available()[%d] = %q, want %q", i, got[i], name)
		}
	}
}

// TestDefaultThemeColors spot-checks the default palette.
func TestDefaultThemeColors(t *testing.T) {
	tests := []struct {
		field string
		got   lipgloss.Color
		want  lipgloss.Color
	}{
		{"Primary", defaultTheme.Primary, lipgloss.Color("99")},
		{"Error", defaultTheme.Error, lipgloss.Color("196")},
		{"Muted", defaultTheme.Muted, lipgloss.Color("240")},
		{"Delimiter", defaultTheme.Delimiter, lipgloss.Color("170")},
		{"StringLit", defaultTheme.StringLit, lipgloss.Color("114")},
		{"FormHighlight", defaultTheme.FormHighlight, lipgloss.Color("57")},
		{"GradientEnd", defaultTheme.GradientEnd, lipgloss.Color("205")},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf(
					"defaultTheme.%s = %q, want %q",
					tt.field,
					tt.got,
					tt.want,
				)
			}
		})
	}
}
