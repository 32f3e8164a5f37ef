package usecases

import (
	"context"

	"github.com/MetaFrench/atlas-web-graphql/internal/domain"
	"github.com/MetaFrench/atlas-web-graphql/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
)

// CreateProject defines the interface for the CreateProject use case.
type CreateProject interface {
	Execute(ctx context.Context, title string, weight int, description string) (domain.Project, error)
}

// CreateProjectImpl is the implementation of the CreateProject use case.
type CreateProjectImpl struct {
	projectRepo domain.ProjectRepository
}

// NewCreateProjectImpl creates a new instance of CreateProjectImpl.
func NewCreateProjectImpl(projectRepo domain.ProjectRepository) CreateProjectImpl {
	return CreateProjectImpl{
		projectRepo: projectRepo,
	}
}

// Execute persists a new project and returns it with its store-assigned ID.
func (cpi CreateProjectImpl) Execute(ctx context.Context, title string, weight int, description string) (domain.Project, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	project, err := cpi.projectRepo.CreateProject(spanCtx, domain.Project{
		Title:       title,
		Weight:      weight,
		Description: description,
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.Project{}, err
	}

	RecordEntityCreated(spanCtx, entityProject)
	return project, nil
}

// InitCreateProject initializes the CreateProject use case and registers it in the dependency container.
type InitCreateProject struct {
	ProjectRepo domain.ProjectRepository `resolve:""`
}

// Initialize registers the CreateProject use case in the dependency container.
func (icp InitCreateProject) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[CreateProject](NewCreateProjectImpl(icp.ProjectRepo))
	return ctx, nil
}
