package fieldtask

import (
	"net/http"
	"time"
)

// ClientOption configures a Client.
type ClientOption func(*clientConfig)

// clientConfig holds the configuration for a Client.
type clientConfig struct {
	baseURL string
	timeout time.Duration
	http    *http.Client
}

// defaultConfig returns the default client configuration.
func defaultConfig() *clientConfig {
	return &clientConfig{
		timeout: 30 * time.Second,
	}
}

// WithBaseURL sets the server base URL, e.g. "https://api.example.com".
func WithBaseURL(baseURL string) ClientOption {
	return func(c *clientConfig) {
		c.baseURL = baseURL
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *clientConfig) {
		c.timeout = timeout
	}
}

// WithHTTPClient sets a custom underlying HTTP client. The timeout option is
// ignored when this is set.
func WithHTTPClient(client *http.Client) ClientOption {
	return func(c *clientConfig) {
		c.http = client
	}
}

// CreateTaskOption configures a CreateTask call.
type CreateTaskOption func(*createTaskOptions)

// createTaskOptions holds options for creating a task.
type createTaskOptions struct {
	image    string
	location *locationPayload
}

// WithImage attaches a photo reference to the new task. An empty string is
// ignored and the image key is omitted from the payload.
func WithImage(url string) CreateTaskOption {
	return func(o *createTaskOptions) {
		o.image = url
	}
}

// WithLocation attaches a capture location to the new task. Only latitude and
// longitude are sent; any capture timestamp stays local.
func WithLocation(latitude, longitude float64) CreateTaskOption {
	return func(o *createTaskOptions) {
		o.location = &locationPayload{Latitude: latitude, Longitude: longitude}
	}
}

// UpdateTaskOption configures an UpdateTask call. Only fields set through an
// option appear in the outgoing payload.
type UpdateTaskOption func(*updateTaskOptions)

// updateTaskOptions holds options for updating a task.
type updateTaskOptions struct {
	title      *string
	completed  *bool
	image      *string
	clearImage bool
	location   *locationPayload
}

// WithTitle sets a new task title for update.
func WithTitle(title string) UpdateTaskOption {
	return func(o *updateTaskOptions) {
		o.title = &title
	}
}

// WithCompleted sets the completed flag for update.
func WithCompleted(completed bool) UpdateTaskOption {
	return func(o *updateTaskOptions) {
		o.completed = &completed
	}
}

// WithUpdateImage sets a new photo reference for update.
func WithUpdateImage(url string) UpdateTaskOption {
	return func(o *updateTaskOptions) {
		o.image = &url
	}
}

// WithImageCleared removes the stored photo reference, sending an explicit
// null for the image field.
func WithImageCleared() UpdateTaskOption {
	return func(o *updateTaskOptions) {
		o.clearImage = true
	}
}

// WithUpdateLocation sets a new capture location for update.
func WithUpdateLocation(latitude, longitude float64) UpdateTaskOption {
	return func(o *updateTaskOptions) {
		o.location = &locationPayload{Latitude: latitude, Longitude: longitude}
	}
}
