package domain_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cuforge/internal/core/domain"
)

func TestBuildConfig_Validate(t *testing.T) {
	t.Run("accepts a minimal release config", func(t *testing.T) {
		cfg := &domain.BuildConfig{
			BuildType: domain.BuildRelease,
			Jobs:      1,
		}
		require.NoError(t, cfg.Validate())
	})

	t.Run("rejects zero jobs", func(t *testing.T) {
		cfg := &domain.BuildConfig{
			BuildType: domain.BuildRelease,
			Jobs:      0,
		}
		err := cfg.Validate()
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidConfig)
	})

	t.Run("rejects install without a prefix", func(t *testing.T) {
		cfg := &domain.BuildConfig{
			BuildType: domain.BuildRelease,
			Jobs:      4,
			Install:   true,
		}
		err := cfg.Validate()
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidConfig)
	})

	t.Run("accepts install with a prefix", func(t *testing.T) {
		cfg := &domain.BuildConfig{
			BuildType: domain.BuildDebug,
			Jobs:      4,
			Install:   true,
			Prefix:    "/opt/lib",
		}
		require.NoError(t, cfg.Validate())
	})

	t.Run("rejects an unknown build type", func(t *testing.T) {
		cfg := &domain.BuildConfig{
			BuildType: domain.BuildType("Profile"),
			Jobs:      1,
		}
		err := cfg.Validate()
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidConfig)
	})
}

func TestProject_ResolveBuildDir(t *testing.T) {
	project := &domain.Project{
		Root:     "/src/project",
		BuildDir: "build",
	}

	t.Run("resolves relative to the project root", func(t *testing.T) {
		assert.Equal(t, filepath.Join("/src/project", "build"), project.ResolveBuildDir(""))
	})

	t.Run("flag override wins", func(t *testing.T) {
		assert.Equal(t, filepath.Join("/src/project", "out"), project.ResolveBuildDir("out"))
	})

	t.Run("absolute override stays absolute", func(t *testing.T) {
		assert.Equal(t, "/tmp/elsewhere", project.ResolveBuildDir("/tmp/elsewhere"))
	})

	t.Run("falls back to the default directory", func(t *testing.T) {
		p := &domain.Project{Root: "/src/project"}
		assert.Equal(t, filepath.Join("/src/project", domain.DefaultBuildDir), p.ResolveBuildDir(""))
	})
}

func TestResolveArchitectures(t *testing.T) {
	project := &domain.Project{Architectures: []string{"80", "86"}}
	toolchain := &domain.Toolchain{GPUArchitectures: []string{"89"}}

	t.Run("flag override has highest precedence", func(t *testing.T) {
		cfg := &domain.BuildConfig{Architectures: []string{"75"}}
		assert.Equal(t, []string{"75"}, domain.ResolveArchitectures(project, cfg, toolchain))
	})

	t.Run("project file beats detection", func(t *testing.T) {
		assert.Equal(t, []string{"80", "86"}, domain.ResolveArchitectures(project, &domain.BuildConfig{}, toolchain))
	})

	t.Run("detection beats native", func(t *testing.T) {
		assert.Equal(t, []string{"89"}, domain.ResolveArchitectures(&domain.Project{}, &domain.BuildConfig{}, toolchain))
	})

	t.Run("native is the last resort", func(t *testing.T) {
		assert.Equal(t, []string{"native"}, domain.ResolveArchitectures(&domain.Project{}, &domain.BuildConfig{}, nil))
	})
}

func TestStage_String(t *testing.T) {
	assert.Equal(t, "preflight", domain.StagePreflight.String())
	assert.Equal(t, "prepare", domain.StagePrepare.String())
	assert.Equal(t, "configure", domain.StageConfigure.String())
	assert.Equal(t, "compile", domain.StageCompile.String())
	assert.Equal(t, "install", domain.StageInstall.String())
	assert.Equal(t, "unknown", domain.Stage(42).String())
}
