package usecases

import (
	"context"

	"github.com/MetaFrench/atlas-web-graphql/internal/domain"
	"github.com/MetaFrench/atlas-web-graphql/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// GetProject defines the interface for the GetProject use case.
type GetProject interface {
	// Query returns the project with the given id. The boolean is false when it does not exist.
	Query(ctx context.Context, id string) (domain.Project, bool, error)
}

// GetProjectImpl is the implementation of the GetProject use case.
type GetProjectImpl struct {
	projectRepo domain.ProjectRepository
}

// NewGetProjectImpl creates a new instance of GetProjectImpl.
func NewGetProjectImpl(projectRepo domain.ProjectRepository) GetProjectImpl {
	return GetProjectImpl{
		projectRepo: projectRepo,
	}
}

// Query retrieves a project by id.
func (gpi GetProjectImpl) Query(ctx context.Context, id string) (domain.Project, bool, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("project.id", id),
	))
	defer span.End()

	project, found, err := gpi.projectRepo.GetProject(spanCtx, id)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.Project{}, false, err
	}
	return project, found, nil
}

// InitGetProject initializes the GetProject use case and registers it in the dependency container.
type InitGetProject struct {
	ProjectRepo domain.ProjectRepository `resolve:""`
}

// Initialize registers the GetProject use case in the dependency container.
func (igp InitGetProject) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[GetProject](NewGetProjectImpl(igp.ProjectRepo))
	return ctx, nil
}
