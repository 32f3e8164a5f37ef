package mongo

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/MetaFrench/atlas-web-graphql/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.opentelemetry.io/contrib/instrumentation/go.mongodb.org/mongo-driver/mongo/otelmongo"
)

// Backend is the STORE_BACKEND value that selects this store.
const Backend = "mongo"

// InitStore connects to MongoDB and registers the project and task repositories
// when STORE_BACKEND selects the mongo backend.
type InitStore struct {
	client         *mongo.Client
	Logger         *log.Logger   `resolve:""`
	StoreBackend   string        `config:"STORE_BACKEND" default:"mongo"`
	URI            string        `config:"MONGO_URI" default:"mongodb://localhost:27017"`
	Database       string        `config:"MONGO_DATABASE" default:"atlas"`
	ConnectTimeout time.Duration `config:"MONGO_CONNECT_TIMEOUT" default:"10s"`
}

// Initialize connects, verifies the connection, ensures indexes and registers the repositories.
func (is *InitStore) Initialize(ctx context.Context) (context.Context, error) {
	if is.StoreBackend != Backend {
		return ctx, nil
	}

	connectCtx, cancel := context.WithTimeout(ctx, is.ConnectTimeout)
	defer cancel()

	opts := options.Client().
		ApplyURI(is.URI).
		SetMonitor(otelmongo.NewMonitor())

	client, err := mongo.Connect(connectCtx, opts)
	if err != nil {
		return ctx, fmt.Errorf("failed to connect to mongodb: %w", err)
	}
	is.client = client

	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		return ctx, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	db := client.Database(is.Database)
	if err := ensureIndexes(connectCtx, db); err != nil {
		return ctx, fmt.Errorf("failed to create indexes: %w", err)
	}
	is.Logger.Printf("InitStore: connected to mongodb database %q", is.Database)

	depend.Register[domain.ProjectRepository](NewProjectRepository(db))
	depend.Register[domain.TaskRepository](NewTaskRepository(db))

	return ctx, nil
}

// Close disconnects the client, if one was created.
func (is *InitStore) Close() {
	if is.client == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := is.client.Disconnect(ctx); err != nil {
		is.Logger.Printf("InitStore: failed to disconnect from mongodb: %v", err)
	}
}

// ensureIndexes backs the Project.tasks lookup with an index on tasks.projectId.
func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(tasksCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "projectId", Value: 1}},
		Options: options.Index().SetName("tasks_project_id"),
	})
	return err
}
