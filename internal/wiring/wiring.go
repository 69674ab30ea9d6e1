// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/cuforge/internal/adapters/config"
	_ "go.trai.ch/cuforge/internal/adapters/logger"
	_ "go.trai.ch/cuforge/internal/adapters/report"
	_ "go.trai.ch/cuforge/internal/adapters/shell"
	_ "go.trai.ch/cuforge/internal/adapters/toolchain"
	_ "go.trai.ch/cuforge/internal/adapters/watcher"
	// Register app and engine nodes.
	_ "go.trai.ch/cuforge/internal/app"
	_ "go.trai.ch/cuforge/internal/engine/pipeline"
)
