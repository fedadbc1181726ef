package fieldtask

import (
	"context"
	"net/http"
	"strings"
)

// Register creates a new account with the given credentials. The password is
// sent once and never stored by the client.
func (c *Client) Register(ctx context.Context, email, password string) (*User, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, newValidationError("email is required")
	}
	if password == "" {
		return nil, newValidationError("password is required")
	}

	req, err := c.newJSONRequest(ctx, http.MethodPost, "/auth/register", "", registerRequest{
		Email:    email,
		Password: password,
	})
	if err != nil {
		return nil, err
	}

	var user User
	if err := c.doJSON(req, &user); err != nil {
		return nil, err
	}

	return &user, nil
}

// Login exchanges credentials for a bearer token. The token is opaque; the
// caller is responsible for storing it and passing it into authenticated
// calls.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return "", newValidationError("email is required")
	}
	if password == "" {
		return "", newValidationError("password is required")
	}

	req, err := c.newJSONRequest(ctx, http.MethodPost, "/auth/login", "", loginRequest{
		Email:    email,
		Password: password,
	})
	if err != nil {
		return "", err
	}

	var payload loginResponse
	if err := c.doJSON(req, &payload); err != nil {
		return "", err
	}

	if payload.Token == "" {
		return "", &Error{Kind: KindTransport, Message: "login response contained no token"}
	}

	return payload.Token, nil
}
