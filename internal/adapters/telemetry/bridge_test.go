package telemetry_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/cuforge/internal/adapters/telemetry"
)

type captureLogger struct {
	mu    sync.Mutex
	infos []string
}

func (l *captureLogger) Info(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.infos = append(l.infos, msg)
}

func (l *captureLogger) Warn(string) {}
func (l *captureLogger) Error(error) {}

func TestBridge_LogsCompletedSpans(t *testing.T) {
	log := &captureLogger{}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSpanProcessor(telemetry.NewBridge(log)),
	)
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	_, span := tp.Tracer("test").Start(context.Background(), "configure")
	span.End()

	require.NoError(t, tp.ForceFlush(context.Background()))

	log.mu.Lock()
	defer log.mu.Unlock()
	require.NotEmpty(t, log.infos)
	assert.Contains(t, log.infos[0], "stage configure finished")
}
