package graphql

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// request represents a GraphQL request payload.
type request struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

// location represents the location of an error in a GraphQL query.
type location struct {
	Line   int `json:"line,omitempty"`
	Column int `json:"column,omitempty"`
}

// gqlError represents a single entry of the errors list of a GraphQL response.
type gqlError struct {
	Message    string         `json:"message"`
	Locations  []location     `json:"locations,omitempty"`
	Path       []any          `json:"path,omitempty"`
	Extensions map[string]any `json:"extensions,omitempty"`
}

// response represents a GraphQL response payload.
type response[T any] struct {
	Data   map[string]T `json:"data"`
	Errors []gqlError   `json:"errors,omitempty"`
}

// ResponseError is returned by the Client when the server reports errors.
type ResponseError struct {
	StatusCode int
	Errors     []gqlError
}

func (e *ResponseError) Error() string {
	msgs := make([]string, len(e.Errors))
	for i, ge := range e.Errors {
		msgs[i] = ge.Message
	}
	return fmt.Sprintf("graphql request failed with status %d: %s", e.StatusCode, strings.Join(msgs, "; "))
}

// Code returns the extensions code of the first error, if any.
func (e *ResponseError) Code() string {
	for _, ge := range e.Errors {
		if code, ok := ge.Extensions["code"].(string); ok {
			return code
		}
	}
	return ""
}

// TaskResult is a task as returned by the API.
type TaskResult struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Weight      int            `json:"weight"`
	Description string         `json:"description"`
	Project     *ProjectResult `json:"project,omitempty"`
}

// ProjectResult is a project as returned by the API.
type ProjectResult struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Weight      int          `json:"weight"`
	Description string       `json:"description"`
	Tasks       []TaskResult `json:"tasks,omitempty"`
}

// Client is a GraphQL client for the task and project API.
type Client struct {
	url        string
	httpClient *http.Client
}

// NewClient creates a new GraphQL client for endpoint. A nil httpClient falls back to http.DefaultClient.
func NewClient(endpoint string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		url:        endpoint,
		httpClient: httpClient,
	}
}

// AddProject creates a project.
func (c *Client) AddProject(ctx context.Context, title string, weight int, description string) (*ProjectResult, error) {
	resp, err := makeRequest[*ProjectResult](ctx, c, request{
		Query:     addProjectMutation,
		Variables: map[string]any{"title": title, "weight": weight, "description": description},
	})
	if err != nil {
		return nil, err
	}
	return resp.Data["addProject"], nil
}

// AddTask creates a task referencing projectID.
func (c *Client) AddTask(ctx context.Context, title string, weight int, description, projectID string) (*TaskResult, error) {
	resp, err := makeRequest[*TaskResult](ctx, c, request{
		Query: addTaskMutation,
		Variables: map[string]any{
			"title":       title,
			"weight":      weight,
			"description": description,
			"projectId":   projectID,
		},
	})
	if err != nil {
		return nil, err
	}
	return resp.Data["addTask"], nil
}

// Task fetches a task and its project. It returns nil when the task does not exist.
func (c *Client) Task(ctx context.Context, id string) (*TaskResult, error) {
	resp, err := makeRequest[*TaskResult](ctx, c, request{
		Query:     taskQuery,
		Variables: map[string]any{"id": id},
	})
	if err != nil {
		return nil, err
	}
	return resp.Data["task"], nil
}

// Project fetches a project and its tasks. It returns nil when the project does not exist.
func (c *Client) Project(ctx context.Context, id string) (*ProjectResult, error) {
	resp, err := makeRequest[*ProjectResult](ctx, c, request{
		Query:     projectQuery,
		Variables: map[string]any{"id": id},
	})
	if err != nil {
		return nil, err
	}
	return resp.Data["project"], nil
}

// Tasks fetches every task.
func (c *Client) Tasks(ctx context.Context) ([]TaskResult, error) {
	resp, err := makeRequest[[]TaskResult](ctx, c, request{Query: tasksQuery})
	if err != nil {
		return nil, err
	}
	return resp.Data["tasks"], nil
}

// Projects fetches every project.
func (c *Client) Projects(ctx context.Context) ([]ProjectResult, error) {
	resp, err := makeRequest[[]ProjectResult](ctx, c, request{Query: projectsQuery})
	if err != nil {
		return nil, err
	}
	return resp.Data["projects"], nil
}

// makeRequest sends a GraphQL request and decodes the response.
func makeRequest[T any](ctx context.Context, c *Client, req request) (response[T], error) {
	body, err := json.Marshal(req)
	if err != nil {
		return response[T]{}, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return response[T]{}, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return response[T]{}, err
	}
	defer httpResp.Body.Close() //nolint:errcheck

	var gqlResp response[T]
	if err = json.NewDecoder(httpResp.Body).Decode(&gqlResp); err != nil {
		return response[T]{}, fmt.Errorf("failed to decode response: %w", err)
	}
	if len(gqlResp.Errors) > 0 {
		return response[T]{}, &ResponseError{StatusCode: httpResp.StatusCode, Errors: gqlResp.Errors}
	}
	return gqlResp, nil
}

const (
	addProjectMutation = `
mutation AddProject($title: String!, $weight: Int!, $description: String!) {
  addProject(title: $title, weight: $weight, description: $description) { id title weight description }
}`

	addTaskMutation = `
mutation AddTask($title: String!, $weight: Int!, $description: String!, $projectId: ID!) {
  addTask(title: $title, weight: $weight, description: $description, projectId: $projectId) { id title weight description }
}`

	taskQuery = `
query Task($id: ID) {
  task(id: $id) {
    id title weight description
    project { id title weight description }
  }
}`

	projectQuery = `
query Project($id: ID) {
  project(id: $id) {
    id title weight description
    tasks { id title weight description }
  }
}`

	tasksQuery = `
query Tasks {
  tasks { id title weight description }
}`

	projectsQuery = `
query Projects {
  projects { id title weight description }
}`
)
