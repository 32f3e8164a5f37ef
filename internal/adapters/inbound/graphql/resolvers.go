package graphql

import (
	"context"

	"github.com/MetaFrench/atlas-web-graphql/internal/telemetry"
	"github.com/graphql-go/graphql"
	"go.opentelemetry.io/otel/trace"
)

// startField opens a span named after the resolver and tagged with the field being resolved.
func startField(p graphql.ResolveParams) (context.Context, trace.Span) {
	var parent string
	if p.Info.ParentType != nil {
		parent = p.Info.ParentType.Name()
	}
	return telemetry.Start(p.Context, telemetry.WithGraphQLField(parent, p.Info.FieldName))
}

// Task is the resolver for the task field. An absent or unknown id yields null.
func (s *AtlasGraphQLServer) Task(p graphql.ResolveParams) (any, error) {
	id, ok := p.Args["id"].(string)
	if !ok {
		return nil, nil
	}

	ctx, span := startField(p)
	defer span.End()

	task, found, err := s.GetTaskUsecase.Query(ctx, id)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, presentError(err)
	}
	if !found {
		return nil, nil
	}
	return task, nil
}

// Project is the resolver for the project field. An absent or unknown id yields null.
func (s *AtlasGraphQLServer) Project(p graphql.ResolveParams) (any, error) {
	id, ok := p.Args["id"].(string)
	if !ok {
		return nil, nil
	}

	ctx, span := startField(p)
	defer span.End()

	project, found, err := s.GetProjectUsecase.Query(ctx, id)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, presentError(err)
	}
	if !found {
		return nil, nil
	}
	return project, nil
}

// Tasks is the resolver for the tasks field.
func (s *AtlasGraphQLServer) Tasks(p graphql.ResolveParams) (any, error) {
	ctx, span := startField(p)
	defer span.End()

	tasks, err := s.ListTasksUsecase.Query(ctx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, presentError(err)
	}
	return tasks, nil
}

// Projects is the resolver for the projects field.
func (s *AtlasGraphQLServer) Projects(p graphql.ResolveParams) (any, error) {
	ctx, span := startField(p)
	defer span.End()

	projects, err := s.ListProjectsUsecase.Query(ctx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, presentError(err)
	}
	return projects, nil
}

// TaskProject is the resolver for Task.project. Every call looks the project up again;
// a project id with no matching project yields null.
func (s *AtlasGraphQLServer) TaskProject(p graphql.ResolveParams) (any, error) {
	task, err := taskFromSource(p.Source)
	if err != nil {
		return nil, presentError(err)
	}

	ctx, span := startField(p)
	defer span.End()

	project, found, err := s.GetProjectUsecase.Query(ctx, task.ProjectID)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, presentError(err)
	}
	if !found {
		return nil, nil
	}
	return project, nil
}

// ProjectTasks is the resolver for Project.tasks.
func (s *AtlasGraphQLServer) ProjectTasks(p graphql.ResolveParams) (any, error) {
	project, err := projectFromSource(p.Source)
	if err != nil {
		return nil, presentError(err)
	}

	ctx, span := startField(p)
	defer span.End()

	tasks, err := s.ListProjectTasksUsecase.Query(ctx, project.ID)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, presentError(err)
	}
	return tasks, nil
}
