package shell_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cuforge/internal/adapters/shell"
	"go.trai.ch/cuforge/internal/core/domain"
)

// captureLogger records log lines for assertions.
type captureLogger struct {
	mu    sync.Mutex
	infos []string
	warns []string
}

func (l *captureLogger) Info(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.infos = append(l.infos, msg)
}

func (l *captureLogger) Warn(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.warns = append(l.warns, msg)
}

func (l *captureLogger) Error(_ error) {}

func TestRunner_Run_StreamsStdoutLines(t *testing.T) {
	log := &captureLogger{}
	runner := shell.NewRunner(log)

	err := runner.Run(context.Background(), domain.Command{
		Argv: []string{"sh", "-c", "echo line1; echo line2"},
		Dir:  t.TempDir(),
	})
	require.NoError(t, err)

	assert.Contains(t, log.infos, "line1")
	assert.Contains(t, log.infos, "line2")
}

func TestRunner_Run_EnvironmentOverlay(t *testing.T) {
	log := &captureLogger{}
	runner := shell.NewRunner(log)

	err := runner.Run(context.Background(), domain.Command{
		Argv: []string{"sh", "-c", "echo $CUFORGE_TEST_VAR"},
		Dir:  t.TempDir(),
		Env:  map[string]string{"CUFORGE_TEST_VAR": "value-123"},
	})
	require.NoError(t, err)

	assert.Contains(t, log.infos, "value-123")
}

func TestRunner_Run_NonZeroExit(t *testing.T) {
	log := &captureLogger{}
	runner := shell.NewRunner(log)

	err := runner.Run(context.Background(), domain.Command{
		Argv: []string{"sh", "-c", "echo doom >&2; exit 3"},
		Dir:  t.TempDir(),
	})
	require.Error(t, err)

	// Stderr went through the logger on the way to the diagnostic tail.
	assert.Contains(t, log.warns, "doom")
}

func TestRunner_Run_MissingExecutable(t *testing.T) {
	runner := shell.NewRunner(&captureLogger{})

	err := runner.Run(context.Background(), domain.Command{
		Argv: []string{"cuforge-no-such-tool-xyz"},
	})
	require.Error(t, err)
}

func TestRunner_Run_EmptyCommand(t *testing.T) {
	runner := shell.NewRunner(&captureLogger{})
	err := runner.Run(context.Background(), domain.Command{})
	require.Error(t, err)
}

func TestRunner_Run_ContextCancellationKillsChild(t *testing.T) {
	runner := shell.NewRunner(&captureLogger{})

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	start := time.Now()
	err := runner.Run(ctx, domain.Command{
		Argv: []string{"sleep", "30"},
	})
	require.Error(t, err)
	assert.Less(t, time.Since(start), 10*time.Second)
}
