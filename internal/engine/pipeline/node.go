package pipeline

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cuforge/internal/adapters/logger"
	"go.trai.ch/cuforge/internal/adapters/report"
	"go.trai.ch/cuforge/internal/adapters/shell"
	"go.trai.ch/cuforge/internal/adapters/toolchain"
	"go.trai.ch/cuforge/internal/core/ports"
)

// NodeID is the unique identifier for the pipeline Graft node.
const NodeID graft.ID = "engine.pipeline"

func init() {
	graft.Register(graft.Node[*Pipeline]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID, toolchain.NodeID, logger.NodeID, report.NodeID},
		Run: func(ctx context.Context) (*Pipeline, error) {
			runner, err := graft.Dep[ports.CommandRunner](ctx)
			if err != nil {
				return nil, err
			}
			locator, err := graft.Dep[ports.ToolchainLocator](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			reporter, err := graft.Dep[ports.Reporter](ctx)
			if err != nil {
				return nil, err
			}
			return New(runner, locator, log, reporter), nil
		},
	})
}
