package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/MetaFrench/atlas-web-graphql/internal/domain"
	"github.com/MetaFrench/atlas-web-graphql/internal/telemetry"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var projectFields = []string{
	"id",
	"title",
	"weight",
	"description",
}

// ProjectRepository implements the domain.ProjectRepository interface using PostgreSQL as the storage backend.
type ProjectRepository struct {
	sb    squirrel.StatementBuilderType
	newID func() uuid.UUID
}

// NewProjectRepository creates a new instance of ProjectRepository.
func NewProjectRepository(br squirrel.BaseRunner) ProjectRepository {
	return ProjectRepository{
		sb:    squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar).RunWith(br),
		newID: uuid.New,
	}
}

// GetProject retrieves a project by its ID.
func (pr ProjectRepository) GetProject(ctx context.Context, id string) (domain.Project, bool, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(attribute.String("project.id", id)))
	defer span.End()

	uid, err := parseID("project", id)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.Project{}, false, err
	}

	var project domain.Project
	err = pr.sb.
		Select(projectFields...).
		From("projects").
		Where(squirrel.Eq{"id": uid}).
		QueryRowContext(spanCtx).
		Scan(
			&project.ID,
			&project.Title,
			&project.Weight,
			&project.Description,
		)
	if errors.Is(err, sql.ErrNoRows) {
		telemetry.RecordErrorAndStatus(span, nil)
		return domain.Project{}, false, nil
	}
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.Project{}, false, err
	}

	return project, true, nil
}

// ListProjects retrieves every project.
func (pr ProjectRepository) ListProjects(ctx context.Context) ([]domain.Project, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	rows, err := pr.sb.
		Select(projectFields...).
		From("projects").
		QueryContext(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	projects := []domain.Project{}
	for rows.Next() {
		var project domain.Project
		err := rows.Scan(
			&project.ID,
			&project.Title,
			&project.Weight,
			&project.Description,
		)
		if telemetry.RecordErrorAndStatus(span, err) {
			return nil, err
		}
		projects = append(projects, project)
	}

	if err := rows.Err(); telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	return projects, nil
}

// CreateProject inserts a new project under a freshly generated id.
func (pr ProjectRepository) CreateProject(ctx context.Context, project domain.Project) (domain.Project, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	project.ID = pr.newID().String()

	_, err := pr.sb.
		Insert("projects").
		Columns(projectFields...).
		Values(
			project.ID,
			project.Title,
			project.Weight,
			project.Description,
		).
		ExecContext(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.Project{}, err
	}

	return project, nil
}
