package watch

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"
)

// isFsnotifySupported checks if fsnotify is likely to work here.
func isFsnotifySupported() bool {
	switch runtime.GOOS {
	case "linux",
		"darwin",
		"windows",
		"freebsd",
		"netbsd",
		"openbsd":
		return true
	default:
		return false
	}
}

// tempFile creates a file to watch and returns its path.
func tempFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scratch.lisp")
	if err := os.WriteFile(path, []byte("(a)"), 0o644); err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}

	return path
}

func TestWatch_MissingFile(t *testing.T) {
	if !isFsnotifySupported() {
		t.Skip("fsnotify not supported on this platform")
	}

	path := filepath.Join(t.TempDir(), "missing.lisp")
	err := Watch(context.Background(), path, func() {})
	if err == nil {
		t.Fatal("Watch of a non-existent file should fail")
	}
}

func TestWatch_InvokesCallbackOnWrite(t *testing.T) {
	if !isFsnotifySupported() {
		t.Skip("fsnotify not supported on this platform")
	}

	path := tempFile(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	fired := make(chan struct{}, 1)
	done := make(chan error, 1)
	go func() {
		done <- WatchDebounced(
			ctx,
			path,
			20*time.Millisecond,
			func() {
				select {
				case fired <- struct{}{}:
				default:
				}
			},
		)
	}()

	// Give the watcher a moment to install, then touch the file.
	time.Sleep(50 * time.Millisecond)
	if err := os.WriteFile(path, []byte("(a b)"), 0o644); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	select {
	case <-fired:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for the callback")
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Watch returned %v after cancel, want nil", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Watch did not return after cancellation")
	}
}

func TestWatch_CancelledContextReturnsNil(t *testing.T) {
	if !isFsnotifySupported() {
		t.Skip("fsnotify not supported on this platform")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := Watch(ctx, tempFile(t), func() {}); err != nil {
		t.Errorf("Watch with cancelled context returned %v", err)
	}
}
