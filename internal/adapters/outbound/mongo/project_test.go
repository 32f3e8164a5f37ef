package mongo

import (
	"context"
	"testing"

	"github.com/MetaFrench/atlas-web-graphql/internal/domain"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestProjectRepository_GetProject(t *testing.T) {
	oid := primitive.NewObjectID()
	project := domain.Project{
		ID:          oid.Hex(),
		Title:       "Website",
		Weight:      3,
		Description: "Rebuild the landing page",
	}

	tests := map[string]struct {
		id              string
		responses       func(ns string) []bson.D
		expectedProject domain.Project
		expectedFound   bool
		expectErr       bool
		expectedErr     error
	}{
		"success": {
			id: oid.Hex(),
			responses: func(ns string) []bson.D {
				return []bson.D{
					mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, bson.D{
						{Key: "_id", Value: oid},
						{Key: "title", Value: project.Title},
						{Key: "weight", Value: project.Weight},
						{Key: "description", Value: project.Description},
					}),
				}
			},
			expectedProject: project,
			expectedFound:   true,
		},
		"not-found": {
			id: oid.Hex(),
			responses: func(ns string) []bson.D {
				return []bson.D{mtest.CreateCursorResponse(0, ns, mtest.FirstBatch)}
			},
		},
		"invalid-id": {
			id:          "not-an-object-id",
			responses:   func(string) []bson.D { return nil },
			expectErr:   true,
			expectedErr: domain.NewInvalidIDErr("project", "not-an-object-id"),
		},
		"server-error": {
			id: oid.Hex(),
			responses: func(string) []bson.D {
				return []bson.D{mtest.CreateCommandErrorResponse(mtest.CommandError{
					Code:    2,
					Name:    "BadValue",
					Message: "boom",
				})}
			},
			expectErr: true,
		},
	}

	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	for name, tt := range tests {
		mt.Run(name, func(mt *mtest.T) {
			mt.AddMockResponses(tt.responses(mt.DB.Name() + "." + projectsCollection)...)

			repo := NewProjectRepository(mt.DB)
			got, found, err := repo.GetProject(context.Background(), tt.id)
			if tt.expectErr {
				assert.Error(mt, err)
				if tt.expectedErr != nil {
					assert.Equal(mt, tt.expectedErr, err)
				}
				return
			}
			assert.NoError(mt, err)
			assert.Equal(mt, tt.expectedFound, found)
			assert.Equal(mt, tt.expectedProject, got)
		})
	}
}

func TestProjectRepository_ListProjects(t *testing.T) {
	first, second := primitive.NewObjectID(), primitive.NewObjectID()

	tests := map[string]struct {
		responses        func(ns string) []bson.D
		expectedProjects []domain.Project
		expectErr        bool
	}{
		"success": {
			responses: func(ns string) []bson.D {
				return []bson.D{
					mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
						bson.D{{Key: "_id", Value: first}, {Key: "title", Value: "A"}, {Key: "weight", Value: 1}, {Key: "description", Value: "a"}},
						bson.D{{Key: "_id", Value: second}, {Key: "title", Value: "B"}, {Key: "weight", Value: 2}, {Key: "description", Value: "b"}},
					),
				}
			},
			expectedProjects: []domain.Project{
				{ID: first.Hex(), Title: "A", Weight: 1, Description: "a"},
				{ID: second.Hex(), Title: "B", Weight: 2, Description: "b"},
			},
		},
		"empty": {
			responses: func(ns string) []bson.D {
				return []bson.D{mtest.CreateCursorResponse(0, ns, mtest.FirstBatch)}
			},
			expectedProjects: []domain.Project{},
		},
		"server-error": {
			responses: func(string) []bson.D {
				return []bson.D{mtest.CreateCommandErrorResponse(mtest.CommandError{Code: 2, Name: "BadValue", Message: "boom"})}
			},
			expectErr: true,
		},
	}

	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	for name, tt := range tests {
		mt.Run(name, func(mt *mtest.T) {
			mt.AddMockResponses(tt.responses(mt.DB.Name() + "." + projectsCollection)...)

			repo := NewProjectRepository(mt.DB)
			got, err := repo.ListProjects(context.Background())
			if tt.expectErr {
				assert.Error(mt, err)
				return
			}
			assert.NoError(mt, err)
			assert.Equal(mt, tt.expectedProjects, got)
		})
	}
}

func TestProjectRepository_CreateProject(t *testing.T) {
	tests := map[string]struct {
		response  bson.D
		expectErr bool
	}{
		"success": {
			response: mtest.CreateSuccessResponse(),
		},
		"write-error": {
			response: mtest.CreateWriteErrorsResponse(mtest.WriteError{
				Index:   0,
				Code:    11000,
				Message: "duplicate key error",
			}),
			expectErr: true,
		},
	}

	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	for name, tt := range tests {
		mt.Run(name, func(mt *mtest.T) {
			mt.AddMockResponses(tt.response)

			repo := NewProjectRepository(mt.DB)
			got, err := repo.CreateProject(context.Background(), domain.Project{
				Title:       "Website",
				Weight:      3,
				Description: "Rebuild the landing page",
			})
			if tt.expectErr {
				assert.Error(mt, err)
				return
			}
			assert.NoError(mt, err)
			assert.True(mt, primitive.IsValidObjectID(got.ID))
			assert.Equal(mt, "Website", got.Title)
			assert.Equal(mt, 3, got.Weight)
			assert.Equal(mt, "Rebuild the landing page", got.Description)
		})
	}
}
