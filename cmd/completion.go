// Package cmd provides command-line interface implementations.
// This file contains shell completion predictors for the paredit CLI.
// Predictors provide context-aware suggestions for tab completion in
// supported shells (bash, zsh, fish).
package cmd

import (
	"github.com/posener/complete"

	"github.com/connerohnesorge/paredit/internal/theme"
)

// PredictOperations returns a predictor that suggests structural
// operation names for the op command.
func PredictOperations() complete.Predictor {
	return complete.PredictFunc(
		func(_ complete.Args) []string {
			return availableOperations()
		},
	)
}

// PredictRanges returns a predictor that suggests range function
// names for the range command.
func PredictRanges() complete.Predictor {
	return complete.PredictFunc(
		func(_ complete.Args) []string {
			return availableRanges()
		},
	)
}

// PredictThemes returns a predictor that suggests theme names.
func PredictThemes() complete.Predictor {
	return complete.PredictSet(theme.Available()...)
}
