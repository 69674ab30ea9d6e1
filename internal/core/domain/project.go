package domain

import "path/filepath"

// ProjectFileName is the optional per-project configuration file.
const ProjectFileName = "cuforge.yaml"

// Project describes the native project being built. It is either loaded
// from a cuforge.yaml found by walking up from the working directory, or
// synthesized with defaults when no file exists.
type Project struct {
	Name string
	// Root is the directory the project file was found in (or the working
	// directory when running without one). Relative paths resolve against it.
	Root      string
	SourceDir string
	BuildDir  string
	// Architectures is the default target architecture list. Empty means
	// "use what the toolchain reports, or native".
	Architectures []string
	// Defines are extra generator cache entries, passed as -D<KEY>=<VALUE>.
	Defines map[string]string
	// PolicyFloor is the minimum policy version asserted to the generator.
	PolicyFloor string
}

// ResolveBuildDir returns the absolute build directory for this invocation,
// honoring a flag override before the project file value.
func (p *Project) ResolveBuildDir(override string) string {
	dir := p.BuildDir
	if override != "" {
		dir = override
	}
	if dir == "" {
		dir = DefaultBuildDir
	}
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(p.Root, dir)
	}
	return dir
}

// ResolveArchitectures returns the target architecture list for this
// invocation. Precedence: flag override, project file, toolchain detection,
// then the generator's own native detection.
func ResolveArchitectures(p *Project, c *BuildConfig, tc *Toolchain) []string {
	if len(c.Architectures) > 0 {
		return c.Architectures
	}
	if len(p.Architectures) > 0 {
		return p.Architectures
	}
	if tc != nil && len(tc.GPUArchitectures) > 0 {
		return tc.GPUArchitectures
	}
	return []string{"native"}
}
