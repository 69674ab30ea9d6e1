package cmake_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cuforge/internal/core/domain"
	"go.trai.ch/cuforge/internal/engine/cmake"
)

func TestConfigureCommand(t *testing.T) {
	project := &domain.Project{
		Root:        "/src/lib",
		SourceDir:   "/src/lib",
		PolicyFloor: "3.5",
	}
	cfg := &domain.BuildConfig{
		BuildType: domain.BuildRelease,
		Jobs:      8,
		Prefix:    "/usr/local",
	}

	cmd := cmake.ConfigureCommand(project, cfg, "/src/lib/build", []string{"80", "86"})

	require.NotEmpty(t, cmd.Argv)
	assert.Equal(t, cmake.Binary, cmd.Argv[0])
	assert.Equal(t, "/src/lib", cmd.Dir)
	assert.Contains(t, cmd.Argv, "-S")
	assert.Contains(t, cmd.Argv, "/src/lib")
	assert.Contains(t, cmd.Argv, "-B")
	assert.Contains(t, cmd.Argv, "/src/lib/build")
	assert.Contains(t, cmd.Argv, "-DCMAKE_BUILD_TYPE=Release")
	assert.Contains(t, cmd.Argv, "-DCMAKE_CUDA_ARCHITECTURES=80;86")
	assert.Contains(t, cmd.Argv, "-DCMAKE_INSTALL_PREFIX=/usr/local")
	assert.Contains(t, cmd.Argv, "-DCMAKE_POLICY_VERSION_MINIMUM=3.5")
	assert.Equal(t, "-Wno-dev", cmd.Argv[len(cmd.Argv)-1])
}

func TestConfigureCommand_Debug(t *testing.T) {
	project := &domain.Project{Root: "/p", SourceDir: "/p"}
	cfg := &domain.BuildConfig{BuildType: domain.BuildDebug, Jobs: 1, Prefix: "/opt/lib"}

	cmd := cmake.ConfigureCommand(project, cfg, "/p/build", []string{"native"})

	assert.Contains(t, cmd.Argv, "-DCMAKE_BUILD_TYPE=Debug")
	assert.Contains(t, cmd.Argv, "-DCMAKE_CUDA_ARCHITECTURES=native")
	assert.Contains(t, cmd.Argv, "-DCMAKE_INSTALL_PREFIX=/opt/lib")
	assert.NotContains(t, cmd.Argv, "-DCMAKE_POLICY_VERSION_MINIMUM=")
}

func TestConfigureCommand_DefinesSortedAndAppended(t *testing.T) {
	project := &domain.Project{
		Root:      "/p",
		SourceDir: "/p",
		Defines: map[string]string{
			"USE_TENSOR_CORES": "ON",
			"BUILD_BENCHMARKS": "OFF",
		},
	}
	cfg := &domain.BuildConfig{BuildType: domain.BuildRelease, Jobs: 1, Prefix: "/usr/local"}

	cmd := cmake.ConfigureCommand(project, cfg, "/p/build", []string{"80"})

	var defines []string
	for _, arg := range cmd.Argv {
		switch arg {
		case "-DBUILD_BENCHMARKS=OFF", "-DUSE_TENSOR_CORES=ON":
			defines = append(defines, arg)
		}
	}
	// Sorted by key for reproducible invocations.
	assert.Equal(t, []string{"-DBUILD_BENCHMARKS=OFF", "-DUSE_TENSOR_CORES=ON"}, defines)
}

func TestBuildCommand(t *testing.T) {
	cmd := cmake.BuildCommand("/p/build", 8)
	assert.Equal(t, []string{"cmake", "--build", "/p/build", "--parallel", "8"}, cmd.Argv)
}

func TestInstallCommand(t *testing.T) {
	cmd := cmake.InstallCommand("/p/build", "/opt/lib")
	assert.Equal(t, []string{"cmake", "--install", "/p/build", "--prefix", "/opt/lib"}, cmd.Argv)
}
