// Package shell runs external build tools through os/exec.
package shell

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"strings"
	"sync"

	"go.trai.ch/cuforge/internal/core/domain"
	"go.trai.ch/cuforge/internal/core/ports"
	"go.trai.ch/zerr"
)

// stderrTailLines bounds the diagnostic tail attached to failures.
const stderrTailLines = 20

// Runner implements ports.CommandRunner using os/exec.
type Runner struct {
	logger ports.Logger
}

// NewRunner creates a new Runner.
func NewRunner(logger ports.Logger) *Runner {
	return &Runner{logger: logger}
}

// Run executes the command and blocks until it exits. Output is streamed
// line by line to the logger; on failure the exit code and the last lines
// of stderr are attached to the returned error so the tool's own
// diagnostics survive into the report.
func (r *Runner) Run(ctx context.Context, cmd domain.Command) error {
	if len(cmd.Argv) == 0 {
		return zerr.New("empty command")
	}

	name := cmd.Argv[0]
	c := exec.CommandContext(ctx, name, cmd.Argv[1:]...) //nolint:gosec // argv assembled by the engine
	c.Dir = cmd.Dir
	c.Env = mergeEnvironment(os.Environ(), cmd.Env)

	tail := &tailBuffer{limit: stderrTailLines}
	c.Stdout = &logWriter{log: r.logger.Info}
	c.Stderr = &logWriter{log: func(line string) {
		tail.add(line)
		r.logger.Warn(line)
	}}

	if err := c.Run(); err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		err = zerr.With(zerr.Wrap(err, name+" failed"), "exit_code", exitCode)
		if t := tail.String(); t != "" {
			err = zerr.With(err, "stderr_tail", t)
		}
		return err
	}
	return nil
}

// logWriter forwards process output to the logger one line at a time.
type logWriter struct {
	log func(string)
}

func (w *logWriter) Write(p []byte) (int, error) {
	for line := range strings.SplitSeq(strings.TrimSuffix(string(p), "\n"), "\n") {
		w.log(line)
	}
	return len(p), nil
}

// tailBuffer keeps the most recent lines written to it.
type tailBuffer struct {
	mu    sync.Mutex
	limit int
	lines []string
}

func (b *tailBuffer) add(line string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.lines = append(b.lines, line)
	if len(b.lines) > b.limit {
		b.lines = b.lines[len(b.lines)-b.limit:]
	}
}

func (b *tailBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return strings.Join(b.lines, "\n")
}

// mergeEnvironment layers extra variables over the process environment.
func mergeEnvironment(sysEnv []string, extra map[string]string) []string {
	if len(extra) == 0 {
		return sysEnv
	}
	envMap := make(map[string]string, len(sysEnv)+len(extra))
	order := make([]string, 0, len(sysEnv)+len(extra))
	for _, entry := range sysEnv {
		if k, v, ok := strings.Cut(entry, "="); ok {
			if _, seen := envMap[k]; !seen {
				order = append(order, k)
			}
			envMap[k] = v
		}
	}
	for k, v := range extra {
		if _, seen := envMap[k]; !seen {
			order = append(order, k)
		}
		envMap[k] = v
	}
	result := make([]string, 0, len(order))
	for _, k := range order {
		result = append(result, k+"="+envMap[k])
	}
	return result
}
