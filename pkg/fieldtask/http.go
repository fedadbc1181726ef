package fieldtask

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// newRequest creates a new HTTP request. An empty token means the endpoint is
// unauthenticated and no Authorization header is set.
func (c *Client) newRequest(ctx context.Context, method, path, token string, body io.Reader) (*http.Request, error) {
	reqURL := c.baseURL + path

	req, err := http.NewRequestWithContext(ctx, method, reqURL, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return req, nil
}

// newJSONRequest creates a new HTTP request with a JSON body.
func (c *Client) newJSONRequest(ctx context.Context, method, path, token string, body interface{}) (*http.Request, error) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		return nil, fmt.Errorf("failed to encode request body: %w", err)
	}

	req, err := c.newRequest(ctx, method, path, token, &buf)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")

	return req, nil
}

// do issues the request and returns the raw payload bytes with any `data`
// envelope already removed. A 204 response yields nil bytes. Every operation
// goes through this single normalization step; no call site unwraps envelopes
// on its own.
func (c *Client) do(req *http.Request) ([]byte, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		if isConnectionRefused(err) {
			return nil, ErrServerNotRunning
		}
		return nil, &Error{Kind: KindTransport, Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, parseErrorResponse(resp)
	}

	if resp.StatusCode == http.StatusNoContent {
		return nil, nil
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{Kind: KindTransport, Message: fmt.Sprintf("failed to read response: %v", err)}
	}

	return unwrapEnvelope(body), nil
}

// doJSON issues the request and decodes the normalized payload into out.
// A nil out discards the payload; a 204 response leaves out untouched.
func (c *Client) doJSON(req *http.Request, out interface{}) error {
	payload, err := c.do(req)
	if err != nil {
		return err
	}
	if out == nil || payload == nil {
		return nil
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return &Error{Kind: KindTransport, Message: fmt.Sprintf("failed to decode response: %v", err)}
	}
	return nil
}

// unwrapEnvelope strips a `{ "data": ... }` wrapper if present, otherwise
// returns the body verbatim. Bare arrays and unwrapped objects pass through.
func unwrapEnvelope(body []byte) []byte {
	var env struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(body, &env); err == nil && env.Data != nil {
		return env.Data
	}
	return body
}

// parseErrorResponse turns a non-2xx response into an *Error. The kind comes
// from the status code alone; the message is extracted from the body on a
// best-effort basis.
func parseErrorResponse(resp *http.Response) error {
	kind := KindHTTP
	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		kind = KindUnauthorized
	case http.StatusNotFound:
		kind = KindNotFound
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		body = nil
	}

	return &Error{
		Kind:       kind,
		Message:    extractMessage(resp.StatusCode, body),
		StatusCode: resp.StatusCode,
	}
}

// extractMessage derives a human-readable message from an error response
// body. It tries, in order: a JSON `message` or `error` field (stringified if
// the field is itself an object), an HTML-page heuristic, the raw body text,
// and finally "<status>: <status text>".
func extractMessage(statusCode int, body []byte) string {
	text := strings.TrimSpace(string(body))

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err == nil {
		for _, key := range []string{"message", "error"} {
			raw, ok := fields[key]
			if !ok {
				continue
			}
			var s string
			if err := json.Unmarshal(raw, &s); err == nil {
				if s != "" {
					return s
				}
				continue
			}
			// The field is an object or array; keep its JSON form.
			return string(raw)
		}
	} else if looksLikeHTML(text) {
		return fmt.Sprintf("server error (status %d)", statusCode)
	}

	if text != "" && !looksLikeHTML(text) {
		return text
	}

	return fmt.Sprintf("%d: %s", statusCode, http.StatusText(statusCode))
}

// looksLikeHTML reports whether the body appears to be an HTML error page
// rather than an API payload.
func looksLikeHTML(text string) bool {
	lower := strings.ToLower(strings.TrimSpace(text))
	return strings.HasPrefix(lower, "<!doctype") || strings.HasPrefix(lower, "<html") ||
		strings.Contains(lower, "<html")
}

// isConnectionRefused checks if the error is a connection refused error.
func isConnectionRefused(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	return strings.Contains(errStr, "connection refused") ||
		(strings.Contains(errStr, "dial tcp") && strings.Contains(errStr, "refused"))
}
