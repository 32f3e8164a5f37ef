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

var taskFields = []string{
	"id",
	"title",
	"weight",
	"description",
	"project_id",
}

// TaskRepository implements the domain.TaskRepository interface using PostgreSQL as the storage backend.
type TaskRepository struct {
	sb    squirrel.StatementBuilderType
	newID func() uuid.UUID
}

// NewTaskRepository creates a new instance of TaskRepository.
func NewTaskRepository(br squirrel.BaseRunner) TaskRepository {
	return TaskRepository{
		sb:    squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar).RunWith(br),
		newID: uuid.New,
	}
}

// GetTask retrieves a task by its ID.
func (tr TaskRepository) GetTask(ctx context.Context, id string) (domain.Task, bool, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(attribute.String("task.id", id)))
	defer span.End()

	uid, err := parseID("task", id)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.Task{}, false, err
	}

	var task domain.Task
	err = tr.sb.
		Select(taskFields...).
		From("tasks").
		Where(squirrel.Eq{"id": uid}).
		QueryRowContext(spanCtx).
		Scan(
			&task.ID,
			&task.Title,
			&task.Weight,
			&task.Description,
			&task.ProjectID,
		)
	if errors.Is(err, sql.ErrNoRows) {
		telemetry.RecordErrorAndStatus(span, nil)
		return domain.Task{}, false, nil
	}
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.Task{}, false, err
	}

	return task, true, nil
}

// ListTasks retrieves the tasks matching filter.
func (tr TaskRepository) ListTasks(ctx context.Context, filter domain.TaskFilter) ([]domain.Task, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	qry := tr.sb.
		Select(taskFields...).
		From("tasks")
	if filter.ProjectID != nil {
		span.SetAttributes(attribute.String("project.id", *filter.ProjectID))
		qry = qry.Where(squirrel.Eq{"project_id": *filter.ProjectID})
	}

	rows, err := qry.QueryContext(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	tasks := []domain.Task{}
	for rows.Next() {
		var task domain.Task
		err := rows.Scan(
			&task.ID,
			&task.Title,
			&task.Weight,
			&task.Description,
			&task.ProjectID,
		)
		if telemetry.RecordErrorAndStatus(span, err) {
			return nil, err
		}
		tasks = append(tasks, task)
	}

	if err := rows.Err(); telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	return tasks, nil
}

// CreateTask inserts a new task under a freshly generated id. The project id is stored as given.
func (tr TaskRepository) CreateTask(ctx context.Context, task domain.Task) (domain.Task, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	task.ID = tr.newID().String()

	_, err := tr.sb.
		Insert("tasks").
		Columns(taskFields...).
		Values(
			task.ID,
			task.Title,
			task.Weight,
			task.Description,
			task.ProjectID,
		).
		ExecContext(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.Task{}, err
	}

	return task, nil
}
