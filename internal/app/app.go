// Package app implements the application layer for cuforge.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"go.trai.ch/cuforge/internal/adapters/telemetry"
	"go.trai.ch/cuforge/internal/core/domain"
	"go.trai.ch/cuforge/internal/core/ports"
	"go.trai.ch/cuforge/internal/engine/pipeline"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App wires the project loader, the toolchain locator, and the pipeline
// behind the CLI commands.
type App struct {
	loader     ports.ProjectLoader
	locator    ports.ToolchainLocator
	pipe       *pipeline.Pipeline
	newWatcher ports.WatcherFactory
	logger     ports.Logger
}

// New creates a new App instance.
func New(
	loader ports.ProjectLoader,
	locator ports.ToolchainLocator,
	pipe *pipeline.Pipeline,
	newWatcher ports.WatcherFactory,
	log ports.Logger,
) *App {
	return &App{
		loader:     loader,
		locator:    locator,
		pipe:       pipe,
		newWatcher: newWatcher,
		logger:     log,
	}
}

// BuildOptions carries the flag-derived build parameters.
type BuildOptions struct {
	Clean         bool
	Debug         bool
	Jobs          int
	Install       bool
	Prefix        string
	Architectures []string
	BuildDir      string
	Watch         bool
}

// config turns options into a validated, immutable build configuration.
// Zero values pick up the documented defaults.
func (o BuildOptions) config() (*domain.BuildConfig, error) {
	cfg := &domain.BuildConfig{
		BuildType:     domain.BuildRelease,
		Jobs:          o.Jobs,
		Clean:         o.Clean,
		Install:       o.Install,
		Prefix:        o.Prefix,
		Architectures: o.Architectures,
		BuildDir:      o.BuildDir,
	}
	if o.Debug {
		cfg.BuildType = domain.BuildDebug
	}
	if cfg.Jobs == 0 {
		cfg.Jobs = runtime.NumCPU()
	}
	if cfg.Prefix == "" {
		cfg.Prefix = domain.DefaultPrefix
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Build runs one full pipeline invocation, then optionally keeps rebuilding
// on source changes when watch mode is on.
func (a *App) Build(ctx context.Context, opts BuildOptions) error {
	cfg, err := opts.config()
	if err != nil {
		return err
	}

	project, err := a.loader.Load(".")
	if err != nil {
		return zerr.Wrap(err, "failed to load project")
	}

	shutdown := telemetry.Setup(a.logger)
	defer func() {
		_ = shutdown(ctx)
	}()

	if err := a.pipe.Run(ctx, project, cfg); err != nil {
		return errors.Join(domain.ErrBuildExecutionFailed, err)
	}

	if opts.Watch {
		return a.watch(ctx, project, cfg)
	}
	return nil
}

// watch reruns the pipeline on debounced source changes until ctx is
// cancelled. Rebuild failures are reported and watching continues; the
// clean flag applies only to the initial build.
func (a *App) watch(ctx context.Context, project *domain.Project, cfg *domain.BuildConfig) error {
	buildDir := project.ResolveBuildDir(cfg.BuildDir)
	w, err := a.newWatcher(func(path string) bool {
		return strings.HasPrefix(path, buildDir)
	})
	if err != nil {
		return zerr.Wrap(err, "failed to create watcher")
	}

	rebuild := *cfg
	rebuild.Clean = false

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		<-ctx.Done()
		return w.Stop()
	})
	g.Go(func() error {
		if startErr := w.Start(ctx, project.SourceDir); startErr != nil {
			return startErr
		}
		a.logger.Info("watching " + project.SourceDir + " for changes")
		for batch := range w.Events() {
			a.logger.Info(fmt.Sprintf("%d path(s) changed, rebuilding", len(batch)))
			if buildErr := a.pipe.Run(ctx, project, &rebuild); buildErr != nil {
				a.logger.Error(buildErr)
			}
		}
		return nil
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// CleanOptions configuration for the Clean method.
type CleanOptions struct {
	BuildDir string
}

// Clean removes the build directory. Removal is idempotent: a missing
// directory is a success.
func (a *App) Clean(_ context.Context, opts CleanOptions) error {
	project, err := a.loader.Load(".")
	if err != nil {
		return zerr.Wrap(err, "failed to load project")
	}

	buildDir := project.ResolveBuildDir(opts.BuildDir)
	a.logger.Info("removing " + buildDir)
	if err := os.RemoveAll(buildDir); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to remove build directory"), "dir", buildDir)
	}
	a.logger.Info("removed " + buildDir)
	return nil
}

// Doctor runs the toolchain preflight and prints a report without touching
// the filesystem or invoking any build step.
func (a *App) Doctor(ctx context.Context, w io.Writer) error {
	tc, err := a.locator.Locate(ctx)
	if err != nil {
		return err
	}

	printTool := func(t domain.Tool) {
		version := t.Version
		if version == "" {
			version = "unknown version"
		}
		fmt.Fprintf(w, "%-12s %s (%s)\n", t.Name, t.Path, version)
	}
	printTool(tc.Generator)
	printTool(tc.Compiler)

	if len(tc.GPUArchitectures) > 0 {
		fmt.Fprintf(w, "%-12s %s\n", "gpu archs", strings.Join(tc.GPUArchitectures, ", "))
	} else {
		fmt.Fprintf(w, "%-12s none detected (generator native detection will apply)\n", "gpu archs")
	}
	return nil
}
