package postgres

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"embed"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/DataDog/go-sqllexer"
	"github.com/MetaFrench/atlas-web-graphql/internal/domain"
	"github.com/XSAM/otelsql"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	semconv "go.opentelemetry.io/otel/semconv/v1.30.0"
)

// Backend is the STORE_BACKEND value that selects this store.
const Backend = "postgres"

//go:embed migrations/*.sql
var migrationsFS embed.FS

// InitStore opens the Postgres connection, runs migrations and registers the
// project and task repositories when STORE_BACKEND selects the postgres backend.
type InitStore struct {
	db                 *sql.DB
	metricRegistration metric.Registration
	skipMigration      bool
	Logger             *log.Logger `resolve:""`
	StoreBackend       string      `config:"STORE_BACKEND" default:"mongo"`
	DBUser             string      `config:"DB_USER" default:"atlas"`
	DBPass             string      `config:"DB_PASS" default:"atlas"`
	DBHost             string      `config:"DB_HOST" default:"localhost"`
	DBPort             string      `config:"DB_PORT" default:"5432"`
	DBName             string      `config:"DB_NAME" default:"atlas"`
}

// Initialize sets up the database connection, runs migrations and registers the repositories.
func (is *InitStore) Initialize(ctx context.Context) (context.Context, error) {
	if is.StoreBackend != Backend {
		return ctx, nil
	}

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		is.DBUser,
		is.DBPass,
		is.DBHost,
		is.DBPort,
		is.DBName,
	)

	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return ctx, fmt.Errorf("create connection pool: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return ctx, fmt.Errorf("failed to create pgx pool: %w", err)
	}

	dbSystemAttributes := otelsql.WithAttributes(
		semconv.DBSystemNamePostgreSQL,
		semconv.DBNamespace(is.DBName),
	)

	is.db = otelsql.OpenDB(
		stdlib.GetPoolConnector(pool),
		dbSystemAttributes,
		otelsql.WithInstrumentAttributesGetter(withQueryAttributes(is.Logger)),
	)

	is.metricRegistration, err = otelsql.RegisterDBStatsMetrics(
		is.db,
		dbSystemAttributes,
	)
	if err != nil {
		return ctx, fmt.Errorf("failed to register db stats metrics: %w", err)
	}

	if !is.skipMigration {
		if err := is.runMigrations(); err != nil {
			return ctx, fmt.Errorf("failed to run migrations: %w", err)
		}
	}
	is.Logger.Printf("InitStore: using postgres database %q", is.DBName)

	depend.Register[domain.ProjectRepository](NewProjectRepository(is.db))
	depend.Register[domain.TaskRepository](NewTaskRepository(is.db))

	return ctx, nil
}

func (is *InitStore) runMigrations() error {
	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("failed to create migration source: %w", err)
	}

	driver, err := postgres.WithInstance(is.db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("failed to create postgres driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	is.Logger.Println("InitStore: migrations applied successfully")
	return nil
}

// Close releases the connection pool and the db stats metric registration.
func (is *InitStore) Close() {
	if is.db == nil {
		return
	}
	if err := is.db.Close(); err != nil {
		is.Logger.Printf("InitStore: failed to close database connection: %v", err)
	}
	if is.metricRegistration != nil {
		if err := is.metricRegistration.Unregister(); err != nil {
			is.Logger.Printf("InitStore: failed to unregister metric registration: %v", err)
		}
	}
}

func withQueryAttributes(logger *log.Logger) func(ctx context.Context, method otelsql.Method, query string, args []driver.NamedValue) []attribute.KeyValue {
	return func(ctx context.Context, method otelsql.Method, query string, args []driver.NamedValue) []attribute.KeyValue {
		if method != otelsql.MethodConnQuery && method != otelsql.MethodConnExec {
			return nil
		}
		attrs := []attribute.KeyValue{}

		operations, tables := extractSQLOperation(logger, query)
		if len(operations) > 0 {
			attrs = append(attrs, semconv.DBQuerySummary(fmt.Sprintf("%s %s", strings.Join(operations, ","), strings.Join(tables, ","))))
		}
		if len(tables) > 0 {
			attrs = append(attrs, semconv.DBCollectionName(strings.Join(tables, ",")))
		}

		return attrs
	}
}

// extractSQLOperation returns the SQL commands and target tables of a query.
func extractSQLOperation(logger *log.Logger, query string) ([]string, []string) {
	normalizer := sqllexer.NewNormalizer(
		sqllexer.WithCollectTables(true),
		sqllexer.WithCollectCommands(true),
		sqllexer.WithCollectComments(false),
	)

	_, meta, err := normalizer.Normalize(query)
	if err != nil {
		logger.Printf("InitStore: failed to extract SQL operation from query: %v", err)
		return nil, nil
	}

	return meta.Commands, meta.Tables
}
