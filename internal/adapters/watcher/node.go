package watcher

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cuforge/internal/core/ports"
)

// NodeID is the unique identifier for the watcher factory Graft node.
const NodeID graft.ID = "adapter.watcher"

func init() {
	graft.Register(graft.Node[ports.WatcherFactory]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.WatcherFactory, error) {
			return func(ignore func(path string) bool) (ports.Watcher, error) {
				return NewWatcher(ignore)
			}, nil
		},
	})
}
