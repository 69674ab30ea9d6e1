// Package watcher implements source tree watching for watch mode.
package watcher

import (
	"context"
	"io/fs"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.trai.ch/cuforge/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Watcher = (*Watcher)(nil)

// skipDirectories are directories that should not be watched. The build
// directory is skipped separately since its name is configurable.
var skipDirectories = map[string]bool{
	".git":         true,
	".jj":          true,
	"node_modules": true,
}

const (
	eventChannelBuffer = 16
	debounceWindow     = 300 * time.Millisecond
)

// Watcher implements recursive file system watching using fsnotify,
// debouncing event bursts into batches of changed paths.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	batches   chan []string
	// ignore filters paths out of the event stream (build directory).
	ignore func(path string) bool
}

// NewWatcher creates a new file system watcher. ignore may be nil.
func NewWatcher(ignore func(path string) bool) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to create file watcher")
	}
	if ignore == nil {
		ignore = func(string) bool { return false }
	}
	return &Watcher{
		fsWatcher: fsw,
		batches:   make(chan []string, eventChannelBuffer),
		ignore:    ignore,
	}, nil
}

// Start begins watching root recursively and processes events until ctx is
// cancelled or Stop is called.
func (w *Watcher) Start(ctx context.Context, root string) error {
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if skipDirectories[d.Name()] && path != root {
			return filepath.SkipDir
		}
		if w.ignore(path) {
			return filepath.SkipDir
		}
		return w.fsWatcher.Add(path)
	})
	if err != nil {
		return zerr.Wrap(err, "failed to watch source tree")
	}

	go w.processEvents(ctx)
	return nil
}

// Stop stops the watcher and releases all resources.
func (w *Watcher) Stop() error {
	return w.fsWatcher.Close()
}

// Events yields debounced batches of changed paths.
func (w *Watcher) Events() <-chan []string {
	return w.batches
}

func (w *Watcher) processEvents(ctx context.Context) {
	debouncer := NewDebouncer(debounceWindow, func(paths []string) {
		select {
		case w.batches <- paths:
		case <-ctx.Done():
		}
	})
	// An armed timer must never outlive the channel it delivers into.
	defer func() {
		debouncer.Stop()
		close(w.batches)
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if !w.relevant(event) {
				continue
			}
			// New directories must be added to the watch set.
			if event.Op.Has(fsnotify.Create) {
				_ = w.fsWatcher.Add(event.Name)
			}
			debouncer.Add(event.Name)
		case _, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if !event.Op.Has(fsnotify.Create | fsnotify.Write | fsnotify.Remove | fsnotify.Rename) {
		return false
	}
	if w.ignore(event.Name) {
		return false
	}
	base := filepath.Base(event.Name)
	if skipDirectories[base] || strings.HasPrefix(base, ".#") {
		return false
	}
	return true
}
