package ports

import (
	"context"

	"go.trai.ch/cuforge/internal/core/domain"
)

// ToolchainLocator resolves the external tools the pipeline needs. It runs
// before any filesystem mutation.
//
//go:generate go run go.uber.org/mock/mockgen -source=toolchain.go -destination=mocks/mock_toolchain.go -package=mocks
type ToolchainLocator interface {
	// Locate finds the generator and the GPU compiler on PATH and probes
	// their versions. It returns domain.ErrMissingTool naming the first
	// absent tool.
	Locate(ctx context.Context) (*domain.Toolchain, error)
}
