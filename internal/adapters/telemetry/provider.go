package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/cuforge/internal/core/ports"
)

// Setup installs a global tracer provider whose spans are reported through
// the bridge. The returned function shuts the provider down.
func Setup(log ports.Logger) func(ctx context.Context) error {
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSpanProcessor(NewBridge(log)),
	)
	otel.SetTracerProvider(tp)
	return tp.Shutdown
}
