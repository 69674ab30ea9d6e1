package domain

import "go.trai.ch/zerr"

var (
	// ErrInvalidConfig is returned when a build configuration violates an invariant.
	ErrInvalidConfig = zerr.New("invalid build configuration")

	// ErrMissingTool is returned when a required toolchain component is not on PATH.
	ErrMissingTool = zerr.New("required tool not found")

	// ErrProjectInvalid is returned when a project file exists but cannot be used.
	ErrProjectInvalid = zerr.New("invalid project file")

	// ErrConfigureFailed is returned when the generator step exits non-zero.
	ErrConfigureFailed = zerr.New("configure step failed")

	// ErrCompileFailed is returned when the build driver exits non-zero.
	ErrCompileFailed = zerr.New("compile step failed")

	// ErrInstallFailed is returned when the install step exits non-zero.
	ErrInstallFailed = zerr.New("install step failed")

	// ErrBuildExecutionFailed marks pipeline failures whose diagnostics were
	// already surfaced, so main can exit non-zero without double-reporting.
	ErrBuildExecutionFailed = zerr.New("build execution failed")
)
