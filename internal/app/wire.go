package app

import "go.trai.ch/cuforge/internal/core/ports"

// Components bundles everything main needs after Graft resolution.
type Components struct {
	App    *App
	Logger ports.Logger
}
