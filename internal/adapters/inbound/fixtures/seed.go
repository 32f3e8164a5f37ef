package fixtures

import (
	"context"
	"embed"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"

	"github.com/MetaFrench/atlas-web-graphql/internal/usecases"
	"go.yaml.in/yaml/v3"
)

const (
	disabled = "-"
	// Builtin selects the dataset shipped with the binary.
	Builtin = "builtin"
)

//go:embed data/web_stack.yml
var builtinData embed.FS

// Dataset is the YAML document accepted by the seeder.
type Dataset struct {
	Projects []ProjectFixture `yaml:"projects"`
	Tasks    []TaskFixture    `yaml:"tasks"`
}

// ProjectFixture describes a project to create. Key is local to the dataset.
type ProjectFixture struct {
	Key         string `yaml:"key"`
	Title       string `yaml:"title"`
	Weight      int    `yaml:"weight"`
	Description string `yaml:"description"`
}

// TaskFixture describes a task to create. Project is the key of a project in the
// same dataset; any other value is stored verbatim as the task's project id.
type TaskFixture struct {
	Title       string `yaml:"title"`
	Weight      int    `yaml:"weight"`
	Description string `yaml:"description"`
	Project     string `yaml:"project"`
}

// Decode reads a Dataset from r.
func Decode(r io.Reader) (Dataset, error) {
	var ds Dataset
	if err := yaml.NewDecoder(r).Decode(&ds); err != nil && err != io.EOF {
		return Dataset{}, fmt.Errorf("failed to decode fixtures: %w", err)
	}
	return ds, nil
}

// Seeder creates a Dataset through the create use cases.
type Seeder struct {
	createProject usecases.CreateProject
	createTask    usecases.CreateTask
}

// NewSeeder creates a new Seeder.
func NewSeeder(createProject usecases.CreateProject, createTask usecases.CreateTask) Seeder {
	return Seeder{
		createProject: createProject,
		createTask:    createTask,
	}
}

// Seed creates every project, then every task, and returns the ids assigned to the project keys.
func (s Seeder) Seed(ctx context.Context, ds Dataset) (map[string]string, error) {
	ids := make(map[string]string, len(ds.Projects))
	for _, p := range ds.Projects {
		created, err := s.createProject.Execute(ctx, p.Title, p.Weight, p.Description)
		if err != nil {
			return nil, fmt.Errorf("failed to create project %q: %w", p.Title, err)
		}
		if p.Key != "" {
			ids[p.Key] = created.ID
		}
	}

	for _, t := range ds.Tasks {
		projectID, ok := ids[t.Project]
		if !ok {
			projectID = t.Project
		}
		if _, err := s.createTask.Execute(ctx, t.Title, t.Weight, t.Description, projectID); err != nil {
			return nil, fmt.Errorf("failed to create task %q: %w", t.Title, err)
		}
	}
	return ids, nil
}

// InitFixtures seeds the store at start-up when SEED_FILE names a dataset.
// A store that already holds projects is left untouched, so restarts with
// SEED_FILE still set do not duplicate the dataset.
type InitFixtures struct {
	Logger        *log.Logger            `resolve:""`
	ListProjects  usecases.ListProjects  `resolve:""`
	CreateProject usecases.CreateProject `resolve:""`
	CreateTask    usecases.CreateTask    `resolve:""`
	SeedFile      string                 `config:"SEED_FILE" default:"-"`
}

// Initialize loads and applies the dataset named by SEED_FILE.
func (i InitFixtures) Initialize(ctx context.Context) (context.Context, error) {
	if i.SeedFile == disabled || i.SeedFile == "" {
		return ctx, nil
	}

	existing, err := i.ListProjects.Query(ctx)
	if err != nil {
		return ctx, fmt.Errorf("failed to check existing projects: %w", err)
	}
	if len(existing) > 0 {
		i.Logger.Printf("InitFixtures: store already has %d projects, skipping %s", len(existing), i.SeedFile)
		return ctx, nil
	}

	ds, err := i.load()
	if err != nil {
		return ctx, err
	}

	if _, err := NewSeeder(i.CreateProject, i.CreateTask).Seed(ctx, ds); err != nil {
		return ctx, err
	}
	i.Logger.Printf("InitFixtures: seeded %d projects and %d tasks from %s", len(ds.Projects), len(ds.Tasks), i.SeedFile)
	return ctx, nil
}

func (i InitFixtures) load() (Dataset, error) {
	var (
		file fs.File
		err  error
	)
	if i.SeedFile == Builtin {
		file, err = builtinData.Open("data/web_stack.yml")
	} else {
		file, err = os.Open(i.SeedFile)
	}
	if err != nil {
		return Dataset{}, fmt.Errorf("failed to open fixtures: %w", err)
	}
	defer file.Close() //nolint:errcheck

	return Decode(file)
}
