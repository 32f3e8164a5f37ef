package usecases

import (
	"context"

	"github.com/MetaFrench/atlas-web-graphql/internal/domain"
	"github.com/MetaFrench/atlas-web-graphql/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
)

// ListProjects defines the interface for the ListProjects use case.
type ListProjects interface {
	Query(ctx context.Context) ([]domain.Project, error)
}

// ListProjectsImpl is the implementation of the ListProjects use case.
type ListProjectsImpl struct {
	projectRepo domain.ProjectRepository
}

// NewListProjectsImpl creates a new instance of ListProjectsImpl.
func NewListProjectsImpl(projectRepo domain.ProjectRepository) ListProjectsImpl {
	return ListProjectsImpl{
		projectRepo: projectRepo,
	}
}

// Query retrieves every project.
func (lpi ListProjectsImpl) Query(ctx context.Context) ([]domain.Project, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	projects, err := lpi.projectRepo.ListProjects(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	return projects, nil
}

// InitListProjects initializes the ListProjects use case and registers it in the dependency container.
type InitListProjects struct {
	ProjectRepo domain.ProjectRepository `resolve:""`
}

// Initialize registers the ListProjects use case in the dependency container.
func (ilp InitListProjects) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[ListProjects](NewListProjectsImpl(ilp.ProjectRepo))
	return ctx, nil
}
