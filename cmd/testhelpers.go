package cmd

import (
	"bytes"
	"io"
	"os"
)

// captureOutput captures stdout during function execution.
// Shared by the command tests.
func captureOutput(f func()) string {
	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	f()

	_ = w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	_, _ = io.Copy(&buf, r)

	return buf.String()
}
