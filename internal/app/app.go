package app

import (
	"github.com/MetaFrench/atlas-web-graphql/internal/adapters/inbound/fixtures"
	"github.com/MetaFrench/atlas-web-graphql/internal/adapters/inbound/graphql"
	"github.com/MetaFrench/atlas-web-graphql/internal/adapters/outbound/config"
	"github.com/MetaFrench/atlas-web-graphql/internal/adapters/outbound/log"
	"github.com/MetaFrench/atlas-web-graphql/internal/adapters/outbound/mongo"
	"github.com/MetaFrench/atlas-web-graphql/internal/adapters/outbound/postgres"
	"github.com/MetaFrench/atlas-web-graphql/internal/telemetry"
	"github.com/MetaFrench/atlas-web-graphql/internal/usecases"
	"github.com/cleitonmarx/symbiont"
)

// NewAtlasApp creates and returns a new instance of the Atlas GraphQL application.
// Extra initializers run first, so they can override configuration for the rest.
func NewAtlasApp(initializers ...symbiont.Initializer) *symbiont.App {
	return symbiont.NewApp().
		Initialize(initializers...).
		Initialize(
			&log.InitLogger{},
			&config.InitVaultProvider{},
			&telemetry.InitOpenTelemetry{},
			&telemetry.InitHttpClient{},
			&InitStoreBackend{},
			&mongo.InitStore{},
			&postgres.InitStore{},

			&usecases.InitGetTask{},
			&usecases.InitGetProject{},
			&usecases.InitListTasks{},
			&usecases.InitListProjects{},
			&usecases.InitListProjectTasks{},
			&usecases.InitCreateTask{},
			&usecases.InitCreateProject{},

			&fixtures.InitFixtures{},
		).
		Host(
			&graphql.AtlasGraphQLServer{},
		).
		Introspect(&MermaidGraphIntrospector{})
}
