package graphql

import (
	"github.com/MetaFrench/atlas-web-graphql/internal/telemetry"
	"github.com/graphql-go/graphql"
)

// AddTask is the resolver for the addTask field. The project id is stored as given.
func (s *AtlasGraphQLServer) AddTask(p graphql.ResolveParams) (any, error) {
	ctx, span := startField(p)
	defer span.End()

	title, _ := p.Args["title"].(string)
	weight, _ := p.Args["weight"].(int)
	description, _ := p.Args["description"].(string)
	projectID, _ := p.Args["projectId"].(string)

	task, err := s.CreateTaskUsecase.Execute(ctx, title, weight, description, projectID)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, presentError(err)
	}
	return task, nil
}

// AddProject is the resolver for the addProject field.
func (s *AtlasGraphQLServer) AddProject(p graphql.ResolveParams) (any, error) {
	ctx, span := startField(p)
	defer span.End()

	title, _ := p.Args["title"].(string)
	weight, _ := p.Args["weight"].(int)
	description, _ := p.Args["description"].(string)

	project, err := s.CreateProjectUsecase.Execute(ctx, title, weight, description)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, presentError(err)
	}
	return project, nil
}
