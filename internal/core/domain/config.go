// Package domain holds the core types for the build orchestrator.
package domain

import "go.trai.ch/zerr"

// Defaults applied when neither flags nor the project file specify a value.
const (
	DefaultPrefix      = "/usr/local"
	DefaultBuildDir    = "build"
	DefaultPolicyFloor = "3.5"
)

// BuildType selects the optimization profile passed to the generator.
type BuildType string

const (
	// BuildRelease builds with optimizations enabled.
	BuildRelease BuildType = "Release"
	// BuildDebug builds with debug info and without optimizations.
	BuildDebug BuildType = "Debug"
)

// BuildConfig is the per-invocation build configuration. It is assembled
// once from flags plus defaults and treated as immutable afterwards.
type BuildConfig struct {
	BuildType BuildType
	// Jobs is the parallel worker count handed to the build driver.
	Jobs    int
	Clean   bool
	Install bool
	// Prefix is the installation destination root. Only consulted when
	// Install is set, but always forwarded to the generator so a later
	// manual install lands in the right place.
	Prefix string
	// Architectures overrides the project's target architecture list.
	Architectures []string
	// BuildDir overrides the project's build directory.
	BuildDir string
}

// Validate checks the invariants the pipeline relies on.
func (c *BuildConfig) Validate() error {
	if c.Jobs < 1 {
		return zerr.With(ErrInvalidConfig, "jobs", c.Jobs)
	}
	if c.Install && c.Prefix == "" {
		return zerr.With(zerr.Wrap(ErrInvalidConfig, "install requested without a prefix"), "prefix", c.Prefix)
	}
	switch c.BuildType {
	case BuildRelease, BuildDebug:
	default:
		return zerr.With(ErrInvalidConfig, "build_type", string(c.BuildType))
	}
	return nil
}
