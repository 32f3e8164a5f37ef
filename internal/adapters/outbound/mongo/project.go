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

// ProjectRepository implements the domain.ProjectRepository interface using MongoDB as the storage backend.
type ProjectRepository struct {
	coll *mongo.Collection
}

// NewProjectRepository creates a new instance of ProjectRepository backed by the projects collection of db.
func NewProjectRepository(db *mongo.Database) ProjectRepository {
	return ProjectRepository{
		coll: db.Collection(projectsCollection),
	}
}

// GetProject retrieves a project by its ID.
func (pr ProjectRepository) GetProject(ctx context.Context, id string) (domain.Project, bool, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(attribute.String("project.id", id)))
	defer span.End()

	oid, err := parseObjectID("project", id)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.Project{}, false, err
	}

	var doc projectDocument
	err = pr.coll.FindOne(spanCtx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		telemetry.RecordErrorAndStatus(span, nil)
		return domain.Project{}, false, nil
	}
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.Project{}, false, err
	}

	return doc.toDomain(), true, nil
}

// ListProjects retrieves every project.
func (pr ProjectRepository) ListProjects(ctx context.Context) ([]domain.Project, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	cur, err := pr.coll.Find(spanCtx, bson.D{})
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}

	var docs []projectDocument
	if err := cur.All(spanCtx, &docs); telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}

	projects := make([]domain.Project, 0, len(docs))
	for _, d := range docs {
		projects = append(projects, d.toDomain())
	}
	return projects, nil
}

// CreateProject inserts a new project and returns it with the ObjectID assigned on insert.
func (pr ProjectRepository) CreateProject(ctx context.Context, project domain.Project) (domain.Project, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	res, err := pr.coll.InsertOne(spanCtx, projectDocument{
		Title:       project.Title,
		Weight:      project.Weight,
		Description: project.Description,
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.Project{}, err
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		err := fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
		telemetry.RecordErrorAndStatus(span, err)
		return domain.Project{}, err
	}

	project.ID = oid.Hex()
	return project, nil
}
