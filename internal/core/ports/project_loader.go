package ports

import "go.trai.ch/cuforge/internal/core/domain"

// ProjectLoader resolves the project description for a working directory.
//
//go:generate go run go.uber.org/mock/mockgen -source=project_loader.go -destination=mocks/mock_project_loader.go -package=mocks
type ProjectLoader interface {
	// Load walks up from cwd looking for a project file. A missing file is
	// not an error; it yields a default project rooted at cwd.
	Load(cwd string) (*domain.Project, error)
}
