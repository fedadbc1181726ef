package request

import (
	"encoding/json"
	"net/http"
	"strings"
)

// RegisterRequest represents a request to create an account.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate validates the register request.
func (r *RegisterRequest) Validate() []string {
	var errors []string

	email := strings.TrimSpace(r.Email)
	if email == "" {
		errors = append(errors, "email is required")
	} else if !strings.Contains(email, "@") {
		errors = append(errors, "email is not valid")
	}

	if len(r.Password) < 6 {
		errors = append(errors, "password must be at least 6 characters")
	}

	return errors
}

// LoginRequest represents a login attempt.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate validates the login request.
func (r *LoginRequest) Validate() []string {
	var errors []string

	if strings.TrimSpace(r.Email) == "" {
		errors = append(errors, "email is required")
	}
	if r.Password == "" {
		errors = append(errors, "password is required")
	}

	return errors
}

// DecodeJSON decodes JSON from request body into the given value.
func DecodeJSON(r *http.Request, v interface{}) error {
	return json.NewDecoder(r.Body).Decode(v)
}
