// Package config provides the project file loader for cuforge.
package config

import (
	"os"
	"path/filepath"

	"go.trai.ch/cuforge/internal/core/domain"
	"go.trai.ch/cuforge/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ProjectLoader using a YAML file.
type Loader struct {
	logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{logger: logger}
}

// Load walks up from cwd looking for cuforge.yaml. A project file is
// optional: when none is found the defaults rooted at cwd apply, so the
// tool works from a bare checkout.
func (l *Loader) Load(cwd string) (*domain.Project, error) {
	abs, err := filepath.Abs(cwd)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to resolve working directory")
	}

	configPath := findProjectFile(abs)
	if configPath == "" {
		return defaultProject(abs), nil
	}
	return l.loadFile(configPath)
}

func findProjectFile(dir string) string {
	for {
		candidate := filepath.Join(dir, domain.ProjectFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

func defaultProject(root string) *domain.Project {
	return &domain.Project{
		Name:        filepath.Base(root),
		Root:        root,
		SourceDir:   root,
		BuildDir:    domain.DefaultBuildDir,
		PolicyFloor: domain.DefaultPolicyFloor,
	}
}

func (l *Loader) loadFile(configPath string) (*domain.Project, error) {
	data, err := os.ReadFile(configPath) //nolint:gosec // path discovered by walking up from cwd
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read project file")
	}

	var file projectFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse project file"), "path", configPath)
	}

	if file.Version != "" && file.Version != "1" {
		l.logger.Warn("unknown project file version " + file.Version + ", proceeding anyway")
	}

	root := filepath.Dir(configPath)
	project := defaultProject(root)
	if file.Project != "" {
		project.Name = file.Project
	}
	if file.Source != "" {
		project.SourceDir = resolvePath(root, file.Source)
	}
	if file.BuildDir != "" {
		project.BuildDir = file.BuildDir
	}
	if file.PolicyFloor != "" {
		project.PolicyFloor = file.PolicyFloor
	}
	project.Architectures = file.Architectures
	project.Defines = file.Defines

	if _, err := os.Stat(project.SourceDir); err != nil {
		return nil, zerr.With(domain.ErrProjectInvalid, "source", project.SourceDir)
	}

	return project, nil
}

func resolvePath(root, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(root, path)
}
