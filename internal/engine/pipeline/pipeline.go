// Package pipeline sequences the build stages: preflight, prepare,
// configure, compile, and optionally install. Stages are strictly
// sequential and fail-fast; a failing stage short-circuits everything
// after it and no stage is ever retried within one invocation.
package pipeline

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"go.trai.ch/cuforge/internal/core/domain"
	"go.trai.ch/cuforge/internal/core/ports"
	"go.trai.ch/cuforge/internal/engine/cmake"
	"go.trai.ch/zerr"
)

// stampFileName records the configure fingerprint inside the build
// directory so unchanged configurations can skip the generator step.
const stampFileName = ".cuforge-configure"

// cacheFileName is written by the generator once a tree is configured.
const cacheFileName = "CMakeCache.txt"

// Pipeline drives one build invocation. The build directory is treated as
// exclusively owned for the duration of Run; concurrent invocations
// against the same directory are out of contract.
type Pipeline struct {
	runner   ports.CommandRunner
	locator  ports.ToolchainLocator
	logger   ports.Logger
	reporter ports.Reporter
	tracer   trace.Tracer
}

// New creates a Pipeline.
func New(runner ports.CommandRunner, locator ports.ToolchainLocator, log ports.Logger, reporter ports.Reporter) *Pipeline {
	return &Pipeline{
		runner:   runner,
		locator:  locator,
		logger:   log,
		reporter: reporter,
		tracer:   otel.Tracer("cuforge"),
	}
}

// Run executes the pipeline for the given project and configuration. The
// toolchain preflight runs before any filesystem mutation; on failure the
// build directory is left exactly as it was. Partial build artifacts from
// a failed compile stay in place for inspection.
func (p *Pipeline) Run(ctx context.Context, project *domain.Project, cfg *domain.BuildConfig) error {
	buildDir := project.ResolveBuildDir(cfg.BuildDir)

	var tc *domain.Toolchain
	err := p.stage(ctx, domain.StagePreflight, func(ctx context.Context) error {
		var locateErr error
		tc, locateErr = p.locator.Locate(ctx)
		return locateErr
	})
	if err != nil {
		return err
	}

	err = p.stage(ctx, domain.StagePrepare, func(_ context.Context) error {
		return prepareBuildDirectory(buildDir, cfg.Clean)
	})
	if err != nil {
		return err
	}

	archs := domain.ResolveArchitectures(project, cfg, tc)
	fingerprint := domain.ConfigureFingerprint(project, cfg, tc)

	if p.configured(buildDir, fingerprint) {
		p.skip(domain.StageConfigure)
	} else {
		err = p.stage(ctx, domain.StageConfigure, func(ctx context.Context) error {
			if runErr := p.runner.Run(ctx, cmake.ConfigureCommand(project, cfg, buildDir, archs)); runErr != nil {
				return errors.Join(domain.ErrConfigureFailed, runErr)
			}
			return writeStamp(buildDir, fingerprint)
		})
		if err != nil {
			return err
		}
	}

	err = p.stage(ctx, domain.StageCompile, func(ctx context.Context) error {
		if runErr := p.runner.Run(ctx, cmake.BuildCommand(buildDir, cfg.Jobs)); runErr != nil {
			return errors.Join(domain.ErrCompileFailed, runErr)
		}
		return nil
	})
	if err != nil {
		return err
	}

	if cfg.Install {
		err = p.stage(ctx, domain.StageInstall, func(ctx context.Context) error {
			if runErr := p.runner.Run(ctx, cmake.InstallCommand(buildDir, cfg.Prefix)); runErr != nil {
				return errors.Join(domain.ErrInstallFailed, runErr)
			}
			return nil
		})
		if err != nil {
			return err
		}
	}

	p.reporter.Summary(buildDir, cfg.Install, cfg.Prefix)
	return nil
}

// stage runs fn inside a span, reporting start and outcome.
func (p *Pipeline) stage(ctx context.Context, stage domain.Stage, fn func(ctx context.Context) error) error {
	ctx, span := p.tracer.Start(ctx, stage.String())
	defer span.End()

	p.reporter.StageStarted(stage)
	start := time.Now()
	err := fn(ctx)
	if err != nil {
		p.logger.Error(err)
	}
	p.reporter.StageDone(domain.StageResult{
		Stage:    stage,
		Err:      err,
		Duration: time.Since(start),
	})
	return err
}

func (p *Pipeline) skip(stage domain.Stage) {
	p.logger.Info("configuration unchanged, skipping " + stage.String())
	p.reporter.StageDone(domain.StageResult{Stage: stage, Skipped: true})
}

// prepareBuildDirectory is idempotent: the removal succeeds whether or not
// the directory existed, and creation tolerates a pre-existing tree.
func prepareBuildDirectory(buildDir string, clean bool) error {
	if clean {
		if err := os.RemoveAll(buildDir); err != nil {
			return zerr.With(zerr.Wrap(err, "failed to clean build directory"), "dir", buildDir)
		}
	}
	if err := os.MkdirAll(buildDir, 0o750); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create build directory"), "dir", buildDir)
	}
	return nil
}

// configured reports whether the build directory already holds a generator
// run for exactly this fingerprint.
func (p *Pipeline) configured(buildDir, fingerprint string) bool {
	if _, err := os.Stat(filepath.Join(buildDir, cacheFileName)); err != nil {
		return false
	}
	stamp, err := os.ReadFile(filepath.Join(buildDir, stampFileName)) //nolint:gosec // path inside the build directory
	if err != nil {
		return false
	}
	return string(stamp) == fingerprint
}

func writeStamp(buildDir, fingerprint string) error {
	if err := os.WriteFile(filepath.Join(buildDir, stampFileName), []byte(fingerprint), 0o600); err != nil {
		return zerr.Wrap(err, "failed to record configure fingerprint")
	}
	return nil
}
