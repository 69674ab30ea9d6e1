package ports

import "context"

// Watcher observes a source tree for changes in watch mode.
type Watcher interface {
	// Start begins watching root recursively. Events are delivered until
	// ctx is cancelled or Stop is called.
	Start(ctx context.Context, root string) error
	Stop() error
	// Events yields batches of changed paths, already debounced.
	Events() <-chan []string
}

// WatcherFactory creates a watcher for one watch session. Paths for which
// ignore returns true are excluded from the event stream; a nil ignore
// watches everything.
type WatcherFactory func(ignore func(path string) bool) (Watcher, error)
