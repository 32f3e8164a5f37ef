package mongo

import (
	"context"
	"errors"
	"fmt"

	"github.com/MetaFrench/atlas-web-graphql/internal/domain"
	"github.com/MetaFrench/atlas-web-graphql/internal/telemetry"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// TaskRepository implements the domain.TaskRepository interface using MongoDB as the storage backend.
type TaskRepository struct {
	coll *mongo.Collection
}

// NewTaskRepository creates a new instance of TaskRepository backed by the tasks collection of db.
func NewTaskRepository(db *mongo.Database) TaskRepository {
	return TaskRepository{
		coll: db.Collection(tasksCollection),
	}
}

// GetTask retrieves a task by its ID.
func (tr TaskRepository) GetTask(ctx context.Context, id string) (domain.Task, bool, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(attribute.String("task.id", id)))
	defer span.End()

	oid, err := parseObjectID("task", id)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.Task{}, false, err
	}

	var doc taskDocument
	err = tr.coll.FindOne(spanCtx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		telemetry.RecordErrorAndStatus(span, nil)
		return domain.Task{}, false, nil
	}
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.Task{}, false, err
	}

	return doc.toDomain(), true, nil
}

// ListTasks retrieves the tasks matching filter.
func (tr TaskRepository) ListTasks(ctx context.Context, filter domain.TaskFilter) ([]domain.Task, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	query := bson.M{}
	if filter.ProjectID != nil {
		span.SetAttributes(attribute.String("project.id", *filter.ProjectID))
		query["projectId"] = *filter.ProjectID
	}

	cur, err := tr.coll.Find(spanCtx, query)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}

	var docs []taskDocument
	if err := cur.All(spanCtx, &docs); telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}

	tasks := make([]domain.Task, 0, len(docs))
	for _, d := range docs {
		tasks = append(tasks, d.toDomain())
	}
	return tasks, nil
}

// CreateTask inserts a new task and returns it with the ObjectID assigned on insert.
func (tr TaskRepository) CreateTask(ctx context.Context, task domain.Task) (domain.Task, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	res, err := tr.coll.InsertOne(spanCtx, taskDocument{
		Title:       task.Title,
		Weight:      task.Weight,
		Description: task.Description,
		ProjectID:   task.ProjectID,
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.Task{}, err
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		err := fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
		telemetry.RecordErrorAndStatus(span, err)
		return domain.Task{}, err
	}

	task.ID = oid.Hex()
	return task, nil
}
