package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/connerohnesorge/paredit/internal/theme"
)

// ANSI 256 color cube constants.
const (
	ansiMaxColorCode   = 255
	ansiStandardMax    = 16
	ansiCubeStart      = 16
	ansiCubeEnd        = 231
	ansiGrayscaleStart = 232
	ansiCubeSize       = 6
	ansiCubePlaneSize  = 36 // 6 * 6
	ansiGrayscaleSteps = 23.0
	ansiColorSteps     = 5.0
)

// Banner renders the session title with the theme's gradient.
func Banner(text string) string {
	th := theme.Current()

	return applyGradient(text, th.GradientStart, th.GradientEnd)
}

// applyGradient colors text character by character, interpolating
// between the two colors in Lab space. Falls back to the unstyled
// text when a color cannot be parsed.
func applyGradient(
	text string,
	colorA, colorB lipgloss.Color,
) string {
	start, err := parseColor(string(colorA))
	if err != nil {
		return text
	}
	end, err := parseColor(string(colorB))
	if err != nil {
		return text
	}

	runes := []rune(text)
	if len(runes) == 0 {
		return text
	}

	var b strings.Builder
	for i, r := range runes {
		ratio := 0.0
		if len(runes) > 1 {
			ratio = float64(i) / float64(len(runes)-1)
		}
		c := start.BlendLab(end, ratio)
		b.WriteString(
			lipgloss.NewStyle().
				Foreground(lipgloss.Color(c.Hex())).
				Render(string(r)),
		)
	}

	return b.String()
}

// parseColor converts a lipgloss color to a colorful.Color.
// Supports hex format (#RRGGBB) and ANSI 256 color codes.
func parseColor(color string) (colorful.Color, error) {
	if strings.HasPrefix(color, "#") {
		return colorful.Hex(color)
	}

	code, err := strconv.Atoi(color)
	if err == nil && code >= 0 && code <= ansiMaxColorCode {
		return ansi256ToRGB(code), nil
	}

	return colorful.Color{}, fmt.Errorf(
		"invalid color format: %s",
		color,
	)
}

// ansi256ToRGB converts an ANSI 256 color code to RGB values.
func ansi256ToRGB(code int) colorful.Color {
	switch {
	case code < ansiStandardMax:
		return standardColor(code)
	case code <= ansiCubeEnd:
		index := code - ansiCubeStart
		r := index / ansiCubePlaneSize
		g := (index % ansiCubePlaneSize) / ansiCubeSize
		b := index % ansiCubeSize

		return colorful.Color{
			R: float64(r) / ansiColorSteps,
			G: float64(g) / ansiColorSteps,
			B: float64(b) / ansiColorSteps,
		}
	default:
		gray := float64(code-ansiGrayscaleStart) / ansiGrayscaleSteps

		return colorful.Color{R: gray, G: gray, B: gray}
	}
}

// standardColor returns one of the 16 standard ANSI colors.
func standardColor(code int) colorful.Color {
	const dim, bright = 0.5, 0.75
	colors := [ansiStandardMax]colorful.Color{
		{R: 0, G: 0, B: 0},
		{R: dim, G: 0, B: 0},
		{R: 0, G: dim, B: 0},
		{R: dim, G: dim, B: 0},
		{R: 0, G: 0, B: dim},
		{R: dim, G: 0, B: dim},
		{R: 0, G: dim, B: dim},
		{R: bright, G: bright, B: bright},
		{R: dim, G: dim, B: dim},
		{R: 1, G: 0, B: 0},
		{R: 0, G: 1, B: 0},
		{R: 1, G: 1, B: 0},
		{R: 0, G: 0, B: 1},
		{R: 1, G: 0, B: 1},
		{R: 0, G: 1, B: 1},
		{R: 1, G: 1, B: 1},
	}

	return colors[code]
}
