package domain

import "context"

// Project groups tasks. Tasks point to their project through Task.ProjectID.
type Project struct {
	ID          string
	Title       string
	Weight      int
	Description string
}

// ProjectRepository defines the interface for interacting with projects in the data store.
type ProjectRepository interface {
	// GetProject retrieves a project by its identifier. The boolean is false when
	// no project has that identifier.
	GetProject(ctx context.Context, id string) (Project, bool, error)

	// ListProjects retrieves every stored project.
	ListProjects(ctx context.Context) ([]Project, error)

	// CreateProject persists a new project and returns it with its store-assigned ID.
	CreateProject(ctx context.Context, project Project) (Project, error)
}
