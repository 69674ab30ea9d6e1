// Package cmake constructs generator and build-driver invocations. It only
// assembles argv; execution happens through ports.CommandRunner so the
// pipeline can be tested without a toolchain.
package cmake

import (
	"maps"
	"slices"
	"strconv"
	"strings"

	"go.trai.ch/cuforge/internal/core/domain"
)

// Binary is the generator executable. It doubles as the build driver
// through its --build and --install modes.
const Binary = "cmake"

// ConfigureCommand builds the one-shot generator invocation: source and
// build trees, build type, architecture list, install prefix, the policy
// version floor, and -Wno-dev to suppress non-critical generator warnings.
func ConfigureCommand(p *domain.Project, cfg *domain.BuildConfig, buildDir string, archs []string) domain.Command {
	argv := []string{
		Binary,
		"-S", p.SourceDir,
		"-B", buildDir,
		"-DCMAKE_BUILD_TYPE=" + string(cfg.BuildType),
		"-DCMAKE_CUDA_ARCHITECTURES=" + strings.Join(archs, ";"),
		"-DCMAKE_INSTALL_PREFIX=" + cfg.Prefix,
	}
	if p.PolicyFloor != "" {
		argv = append(argv, "-DCMAKE_POLICY_VERSION_MINIMUM="+p.PolicyFloor)
	}
	for _, k := range slices.Sorted(maps.Keys(p.Defines)) {
		argv = append(argv, "-D"+k+"="+p.Defines[k])
	}
	argv = append(argv, "-Wno-dev")

	return domain.Command{Argv: argv, Dir: p.Root}
}

// BuildCommand builds the driver invocation with the parallel worker count.
func BuildCommand(buildDir string, jobs int) domain.Command {
	return domain.Command{
		Argv: []string{Binary, "--build", buildDir, "--parallel", strconv.Itoa(jobs)},
	}
}

// InstallCommand builds the install-target invocation against prefix.
func InstallCommand(buildDir, prefix string) domain.Command {
	return domain.Command{
		Argv: []string{Binary, "--install", buildDir, "--prefix", prefix},
	}
}
