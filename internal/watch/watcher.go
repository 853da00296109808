// Package watch re-runs a callback whenever a source file changes, so
// the CLI can re-check delimiter balance on every save.
package watch

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is the quiet period required after the last write
// before the callback fires. Editors often perform several writes in
// rapid succession when saving.
const DefaultDebounce = 150 * time.Millisecond

// Watch blocks, invoking fn after each debounced change to path. It
// returns nil when ctx is cancelled and the underlying watcher error
// otherwise. The file must exist when the watch starts.
func Watch(
	ctx context.Context,
	path string,
	fn func(),
) error {
	return WatchDebounced(ctx, path, DefaultDebounce, fn)
}

// WatchDebounced is Watch with a custom debounce window.
func WatchDebounced(
	ctx context.Context,
	path string,
	debounce time.Duration,
	fn func(),
) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	if _, err := os.Stat(absPath); err != nil {
		return err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer func() { _ = fsw.Close() }()

	// Watch the directory rather than the file: many editors save
	// by rename, which replaces the watched inode.
	if err := fsw.Add(filepath.Dir(absPath)); err != nil {
		return err
	}

	// Debounce by re-arming a fresh timer channel on every relevant
	// event; only the channel from the last event in a burst is
	// still selected on when it fires.
	var pending <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if touches(event, absPath) {
				pending = time.After(debounce)
			}

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}

			return err

		case <-pending:
			pending = nil
			fn()
		}
	}
}

// touches reports whether the event is a write or create of the
// watched file.
func touches(event fsnotify.Event, absPath string) bool {
	eventPath, err := filepath.Abs(event.Name)
	if err != nil || eventPath != absPath {
		return false
	}

	return event.Has(fsnotify.Write) ||
		event.Has(fsnotify.Create)
}
