package watcher

import (
	"sync"
	"time"
)

// Debouncer coalesces rapid file system events into batched callbacks.
// The callback runs under the debouncer's lock, so Stop can wait out an
// in-flight delivery before declaring the debouncer quiet.
type Debouncer struct {
	mu       sync.Mutex
	pending  map[string]struct{}
	timer    *time.Timer
	window   time.Duration
	stopped  bool
	callback func(paths []string)
}

// NewDebouncer creates a debouncer with the given window and callback.
func NewDebouncer(window time.Duration, callback func(paths []string)) *Debouncer {
	return &Debouncer{
		pending:  make(map[string]struct{}),
		window:   window,
		callback: callback,
	}
}

// Add records a changed path and (re)arms the debounce timer. Paths added
// after Stop are dropped.
func (d *Debouncer) Add(path string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}
	d.pending[path] = struct{}{}
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.window, d.fire)
}

func (d *Debouncer) fire() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.timer = nil
	d.deliver()
}

// deliver invokes the callback with all pending paths. Callers must hold d.mu.
func (d *Debouncer) deliver() {
	if d.stopped || len(d.pending) == 0 {
		return
	}
	paths := make([]string, 0, len(d.pending))
	for path := range d.pending {
		paths = append(paths, path)
	}
	d.pending = make(map[string]struct{})
	if d.callback != nil {
		d.callback(paths)
	}
}

// Stop flushes pending paths and silences the debouncer. Once Stop returns
// no delivery is running and none will run again, so resources the callback
// writes to can be torn down safely.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.deliver()
	d.stopped = true
}
