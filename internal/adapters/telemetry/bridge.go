// Package telemetry wires OpenTelemetry spans to the logger so each
// pipeline stage leaves a trace without requiring an external collector.
package telemetry

import (
	"context"
	"fmt"
	"time"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/cuforge/internal/core/ports"
)

var _ sdktrace.SpanProcessor = (*Bridge)(nil)

// Bridge is a SpanProcessor that reports span lifecycle to the logger.
type Bridge struct {
	logger ports.Logger
}

// NewBridge creates a Bridge forwarding span events to log.
func NewBridge(log ports.Logger) *Bridge {
	return &Bridge{logger: log}
}

// OnStart is a no-op; stage starts are already rendered by the reporter.
func (b *Bridge) OnStart(_ context.Context, _ sdktrace.ReadWriteSpan) {}

// OnEnd logs the completed span with its duration.
func (b *Bridge) OnEnd(s sdktrace.ReadOnlySpan) {
	elapsed := s.EndTime().Sub(s.StartTime())
	b.logger.Info(fmt.Sprintf("stage %s finished in %s", s.Name(), elapsed.Round(time.Millisecond)))
}

// Shutdown implements sdktrace.SpanProcessor.
func (b *Bridge) Shutdown(_ context.Context) error { return nil }

// ForceFlush implements sdktrace.SpanProcessor.
func (b *Bridge) ForceFlush(_ context.Context) error { return nil }
