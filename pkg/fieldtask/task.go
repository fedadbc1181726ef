package fieldtask

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
)

// ListTasks returns all tasks for the authenticated user.
//
// The response may be an enveloped or bare array; an empty or malformed
// payload yields an empty list. Only transport and HTTP failures return an
// error.
func (c *Client) ListTasks(ctx context.Context, token string) ([]Task, error) {
	if err := requireToken(token); err != nil {
		return nil, err
	}

	req, err := c.newRequest(ctx, http.MethodGet, "/todos", token, nil)
	if err != nil {
		return nil, err
	}

	payload, err := c.do(req)
	if err != nil {
		return nil, err
	}

	var tasks []Task
	if payload == nil || json.Unmarshal(payload, &tasks) != nil {
		return []Task{}, nil
	}
	if tasks == nil {
		tasks = []Task{}
	}

	return tasks, nil
}

// CreateTask creates a new task with the given title.
//
// The title is trimmed; an empty or whitespace-only title fails with a
// validation error before any network call. An image option with an empty URL
// is dropped from the payload.
func (c *Client) CreateTask(ctx context.Context, token, title string, opts ...CreateTaskOption) (*Task, error) {
	if err := requireToken(token); err != nil {
		return nil, err
	}

	title = strings.TrimSpace(title)
	if title == "" {
		return nil, newValidationError("title is required")
	}

	options := &createTaskOptions{}
	for _, opt := range opts {
		opt(options)
	}

	body := createTaskRequest{
		Title:    title,
		Location: options.location,
	}
	if options.image != "" {
		body.Image = &options.image
	}

	req, err := c.newJSONRequest(ctx, http.MethodPost, "/todos", token, body)
	if err != nil {
		return nil, err
	}

	var task Task
	if err := c.doJSON(req, &task); err != nil {
		return nil, err
	}

	return &task, nil
}

// SetCompleted sets only the completed flag of a task. The outgoing payload
// is exactly {"completed": <bool>}.
func (c *Client) SetCompleted(ctx context.Context, token, id string, completed bool) (*Task, error) {
	if err := requireToken(token); err != nil {
		return nil, err
	}

	body := map[string]bool{"completed": completed}

	req, err := c.newJSONRequest(ctx, http.MethodPatch, "/todos/"+id, token, body)
	if err != nil {
		return nil, err
	}

	var task Task
	if err := c.doJSON(req, &task); err != nil {
		return nil, err
	}

	return &task, nil
}

// UpdateTask applies a partial update to a task. Only fields set through
// options appear in the outgoing payload; WithImageCleared sends an explicit
// null for the image field.
func (c *Client) UpdateTask(ctx context.Context, token, id string, opts ...UpdateTaskOption) (*Task, error) {
	if err := requireToken(token); err != nil {
		return nil, err
	}

	options := &updateTaskOptions{}
	for _, opt := range opts {
		opt(options)
	}

	payload := map[string]interface{}{}
	if options.title != nil {
		payload["title"] = *options.title
	}
	if options.completed != nil {
		payload["completed"] = *options.completed
	}
	if options.clearImage {
		payload["image"] = nil
	} else if options.image != nil {
		payload["image"] = *options.image
	}
	if options.location != nil {
		payload["location"] = options.location
	}

	req, err := c.newJSONRequest(ctx, http.MethodPatch, "/todos/"+id, token, payload)
	if err != nil {
		return nil, err
	}

	var task Task
	if err := c.doJSON(req, &task); err != nil {
		return nil, err
	}

	return &task, nil
}

// DeleteTask deletes a task. The server responds with 204; any body is
// discarded.
func (c *Client) DeleteTask(ctx context.Context, token, id string) error {
	if err := requireToken(token); err != nil {
		return err
	}

	req, err := c.newRequest(ctx, http.MethodDelete, "/todos/"+id, token, nil)
	if err != nil {
		return err
	}

	return c.doJSON(req, nil)
}
