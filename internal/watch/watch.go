// Package watch re-runs segmentation when the source document changes.
package watch

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// File watches the document at path and invokes onChange after each change,
// debounced so editor save bursts collapse into one re-run. The parent
// directory is watched rather than the file itself because most editors
// replace files on save. Blocks until stop is closed or the watcher fails.
func File(path string, debounce time.Duration, stop <-chan struct{}, onChange func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(path), err)
	}

	base := filepath.Base(path)
	var timer *time.Timer
	var pending <-chan time.Time

	for {
		select {
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !relevant(ev, base) {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.NewTimer(debounce)
			pending = timer.C

		case <-pending:
			timer = nil
			pending = nil
			onChange()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watch: %w", err)

		case <-stop:
			if timer != nil {
				timer.Stop()
			}
			return nil
		}
	}
}

// relevant reports whether an event concerns the watched file and represents
// a content change (write, or the create/rename pair of an atomic save).
func relevant(ev fsnotify.Event, base string) bool {
	if filepath.Base(ev.Name) != base {
		return false
	}
	return ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0
}
