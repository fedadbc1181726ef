package fieldtask

import (
	"context"
	"fmt"
	"net/http"
	"strings"
)

// Client is an HTTP client for the fieldtask server API.
//
// The client holds no authentication state. The bearer token is supplied by
// the caller on every authenticated call, so session ownership stays with the
// surrounding application.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a new fieldtask API client.
//
// Required options:
//   - WithBaseURL: sets the server base URL
//
// Optional options:
//   - WithTimeout: sets the HTTP client timeout (default: 30s)
//   - WithHTTPClient: replaces the underlying HTTP client
//
// Example:
//
//	client, err := fieldtask.NewClient(
//	    fieldtask.WithBaseURL("https://api.example.com"),
//	)
func NewClient(opts ...ClientOption) (*Client, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.baseURL == "" {
		return nil, fmt.Errorf("base URL is required: use WithBaseURL option")
	}

	httpClient := cfg.http
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.timeout}
	}

	return &Client{
		baseURL: strings.TrimRight(cfg.baseURL, "/"),
		http:    httpClient,
	}, nil
}

// Health checks if the server is healthy.
func (c *Client) Health(ctx context.Context) error {
	req, err := c.newRequest(ctx, http.MethodGet, "/health", "", nil)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if isConnectionRefused(err) {
			return ErrServerNotRunning
		}
		return fmt.Errorf("health check failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return ErrServerUnhealthy
	}

	return nil
}

// requireToken rejects authenticated calls with an empty bearer token before
// any network I/O happens.
func requireToken(token string) error {
	if strings.TrimSpace(token) == "" {
		return newValidationError("bearer token is required")
	}
	return nil
}
