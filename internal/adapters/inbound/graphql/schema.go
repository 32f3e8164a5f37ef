package graphql

import (
	"github.com/MetaFrench/atlas-web-graphql/internal/domain"
	"github.com/graphql-go/graphql"
)

// Resolvers resolves every non-scalar field of the schema.
type Resolvers interface {
	TaskProject(p graphql.ResolveParams) (any, error)
	ProjectTasks(p graphql.ResolveParams) (any, error)
	Task(p graphql.ResolveParams) (any, error)
	Project(p graphql.ResolveParams) (any, error)
	Tasks(p graphql.ResolveParams) (any, error)
	Projects(p graphql.ResolveParams) (any, error)
	AddTask(p graphql.ResolveParams) (any, error)
	AddProject(p graphql.ResolveParams) (any, error)
}

// NewSchema builds the executable schema. Task and Project reference each other,
// so their field sets are thunks evaluated once both object types exist.
func NewSchema(r Resolvers) (graphql.Schema, error) {
	var taskType, projectType *graphql.Object

	taskType = graphql.NewObject(graphql.ObjectConfig{
		Name: "Task",
		Fields: graphql.FieldsThunk(func() graphql.Fields {
			return graphql.Fields{
				"id":          &graphql.Field{Type: graphql.ID, Resolve: taskScalar(func(t domain.Task) any { return t.ID })},
				"title":       &graphql.Field{Type: graphql.String, Resolve: taskScalar(func(t domain.Task) any { return t.Title })},
				"weight":      &graphql.Field{Type: graphql.Int, Resolve: taskScalar(func(t domain.Task) any { return t.Weight })},
				"description": &graphql.Field{Type: graphql.String, Resolve: taskScalar(func(t domain.Task) any { return t.Description })},
				"project": &graphql.Field{
					Type:    projectType,
					Resolve: r.TaskProject,
				},
			}
		}),
	})

	projectType = graphql.NewObject(graphql.ObjectConfig{
		Name: "Project",
		Fields: graphql.FieldsThunk(func() graphql.Fields {
			return graphql.Fields{
				"id":          &graphql.Field{Type: graphql.ID, Resolve: projectScalar(func(p domain.Project) any { return p.ID })},
				"title":       &graphql.Field{Type: graphql.String, Resolve: projectScalar(func(p domain.Project) any { return p.Title })},
				"weight":      &graphql.Field{Type: graphql.Int, Resolve: projectScalar(func(p domain.Project) any { return p.Weight })},
				"description": &graphql.Field{Type: graphql.String, Resolve: projectScalar(func(p domain.Project) any { return p.Description })},
				"tasks": &graphql.Field{
					Type:    graphql.NewList(taskType),
					Resolve: r.ProjectTasks,
				},
			}
		}),
	})

	queryType := graphql.NewObject(graphql.ObjectConfig{
		Name: "RootQueryType",
		Fields: graphql.Fields{
			"task": &graphql.Field{
				Type: taskType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.ID},
				},
				Resolve: r.Task,
			},
			"project": &graphql.Field{
				Type: projectType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.ID},
				},
				Resolve: r.Project,
			},
			"tasks": &graphql.Field{
				Type:    graphql.NewList(taskType),
				Resolve: r.Tasks,
			},
			"projects": &graphql.Field{
				Type:    graphql.NewList(projectType),
				Resolve: r.Projects,
			},
		},
	})

	mutationType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"addTask": &graphql.Field{
				Type: taskType,
				Args: graphql.FieldConfigArgument{
					"title":       &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"weight":      &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
					"description": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"projectId":   &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: r.AddTask,
			},
			"addProject": &graphql.Field{
				Type: projectType,
				Args: graphql.FieldConfigArgument{
					"title":       &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"weight":      &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
					"description": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: r.AddProject,
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    queryType,
		Mutation: mutationType,
	})
}
