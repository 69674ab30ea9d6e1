// Package toolchain locates and probes the external build tools.
package toolchain

import (
	"context"
	"os/exec"
	"regexp"
	"strings"

	"go.trai.ch/cuforge/internal/core/domain"
	"go.trai.ch/cuforge/internal/core/ports"
	"go.trai.ch/zerr"
)

// Binary names the locator resolves on PATH.
const (
	GeneratorBinary = "cmake"
	CompilerBinary  = "nvcc"
	detectorBinary  = "nvidia-smi"
)

var (
	cmakeVersionRe = regexp.MustCompile(`cmake version (\S+)`)
	nvccVersionRe  = regexp.MustCompile(`release ([0-9.]+)`)
)

// Locator implements ports.ToolchainLocator against the real PATH. The
// lookup and probe functions are injectable for tests.
type Locator struct {
	logger   ports.Logger
	lookPath func(file string) (string, error)
	probe    func(ctx context.Context, name string, args ...string) ([]byte, error)
}

// NewLocator creates a Locator using os/exec.
func NewLocator(logger ports.Logger) *Locator {
	return &Locator{
		logger:   logger,
		lookPath: exec.LookPath,
		probe: func(ctx context.Context, name string, args ...string) ([]byte, error) {
			return exec.CommandContext(ctx, name, args...).Output()
		},
	}
}

// Locate resolves the generator and the GPU compiler. It fails with
// domain.ErrMissingTool on the first absent tool and never touches the
// filesystem, so it is safe to run before any directory mutation.
func (l *Locator) Locate(ctx context.Context) (*domain.Toolchain, error) {
	generator, err := l.resolve(ctx, GeneratorBinary, cmakeVersionRe)
	if err != nil {
		return nil, err
	}
	compiler, err := l.resolve(ctx, CompilerBinary, nvccVersionRe)
	if err != nil {
		return nil, err
	}

	return &domain.Toolchain{
		Generator:        generator,
		Compiler:         compiler,
		GPUArchitectures: l.detectArchitectures(ctx),
	}, nil
}

func (l *Locator) resolve(ctx context.Context, name string, versionRe *regexp.Regexp) (domain.Tool, error) {
	path, err := l.lookPath(name)
	if err != nil {
		return domain.Tool{}, zerr.With(domain.ErrMissingTool, "tool", name)
	}

	tool := domain.Tool{Name: name, Path: path}
	out, err := l.probe(ctx, path, "--version")
	if err != nil {
		// A tool that exists but cannot report its version is still usable.
		l.logger.Warn(name + ": could not determine version")
		return tool, nil
	}
	if m := versionRe.FindSubmatch(out); m != nil {
		tool.Version = string(m[1])
	}
	return tool, nil
}

// detectArchitectures queries locally visible devices for their compute
// capability. Detection is best-effort: machines without a driver simply
// fall back to the generator's native detection.
func (l *Locator) detectArchitectures(ctx context.Context) []string {
	path, err := l.lookPath(detectorBinary)
	if err != nil {
		return nil
	}
	out, err := l.probe(ctx, path, "--query-gpu=compute_cap", "--format=csv,noheader")
	if err != nil {
		return nil
	}

	var archs []string
	seen := make(map[string]bool)
	for line := range strings.Lines(string(out)) {
		// "8.6" reported by the driver becomes arch "86".
		arch := strings.ReplaceAll(strings.TrimSpace(line), ".", "")
		if arch == "" || seen[arch] {
			continue
		}
		seen[arch] = true
		archs = append(archs, arch)
	}
	return archs
}
