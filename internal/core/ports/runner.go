// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/cuforge/internal/core/domain"
)

// CommandRunner executes external build tools.
//
//go:generate go run go.uber.org/mock/mockgen -source=runner.go -destination=mocks/mock_runner.go -package=mocks
type CommandRunner interface {
	// Run executes the command, streaming its output to the logger, and
	// blocks until it exits. A non-zero exit is returned as an error
	// carrying the exit code and a tail of the tool's stderr.
	Run(ctx context.Context, cmd domain.Command) error
}
