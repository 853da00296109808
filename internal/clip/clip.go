// Package clip publishes killed text to the system clipboard.
package clip

import (
	"encoding/base64"
	"fmt"

	"github.com/atotto/clipboard"
)

// Copy copies text to the clipboard using the native clipboard, with
// an OSC 52 escape-sequence fallback for SSH sessions.
func Copy(text string) error {
	err := clipboard.WriteAll(text)
	if err == nil {
		return nil
	}

	// Fallback to OSC 52 for SSH sessions
	encoded := base64.StdEncoding.EncodeToString(
		[]byte(text),
	)
	osc52 := "\x1b]52;c;" + encoded + "\x07"
	fmt.Print(osc52)

	// OSC 52 doesn't report errors, consider it successful
	return nil
}
