package mongo

import (
	"github.com/MetaFrench/atlas-web-graphql/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	projectsCollection = "projects"
	tasksCollection    = "tasks"
)

// projectDocument is the stored shape of a domain.Project.
type projectDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Weight      int                `bson:"weight"`
	Description string             `bson:"description"`
}

func (d projectDocument) toDomain() domain.Project {
	return domain.Project{
		ID:          d.ID.Hex(),
		Title:       d.Title,
		Weight:      d.Weight,
		Description: d.Description,
	}
}

// taskDocument is the stored shape of a domain.Task. projectId keeps the
// caller's string verbatim so that references to missing projects survive.
type taskDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Weight      int                `bson:"weight"`
	Description string             `bson:"description"`
	ProjectID   string             `bson:"projectId"`
}

func (d taskDocument) toDomain() domain.Task {
	return domain.Task{
		ID:          d.ID.Hex(),
		Title:       d.Title,
		Weight:      d.Weight,
		Description: d.Description,
		ProjectID:   d.ProjectID,
	}
}

// parseObjectID decodes a hex identifier, reporting a domain.InvalidIDErr on failure.
func parseObjectID(entity, id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, domain.NewInvalidIDErr(entity, id)
	}
	return oid, nil
}
