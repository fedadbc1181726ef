package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/fieldtask/fieldtask/internal/api/request"
	"github.com/fieldtask/fieldtask/internal/api/response"
	"github.com/fieldtask/fieldtask/internal/auth"
	"github.com/fieldtask/fieldtask/internal/domain"
	"github.com/fieldtask/fieldtask/internal/storage"
	"github.com/fieldtask/fieldtask/pkg/idgen"
)

// AuthHandler handles registration and login.
type AuthHandler struct {
	store *storage.Store
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(store *storage.Store) *AuthHandler {
	return &AuthHandler{store: store}
}

// Register handles POST /auth/register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req request.RegisterRequest
	if err := request.DecodeJSON(r, &req); err != nil {
		response.Error(w, domain.NewValidationError("invalid JSON body"))
		return
	}

	if errs := req.Validate(); len(errs) > 0 {
		response.Error(w, domain.NewValidationError(strings.Join(errs, "; ")))
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		response.Error(w, domain.NewInternalError(err))
		return
	}

	user := &domain.User{
		ID:           idgen.MustGenerate(),
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}

	if err := h.store.CreateUser(user); err != nil {
		response.Error(w, err)
		return
	}

	response.Created(w, user)
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest
	if err := request.DecodeJSON(r, &req); err != nil {
		response.Error(w, domain.NewValidationError("invalid JSON body"))
		return
	}

	if errs := req.Validate(); len(errs) > 0 {
		response.Error(w, domain.NewValidationError(strings.Join(errs, "; ")))
		return
	}

	user, err := h.store.GetUserByEmail(strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		response.Error(w, domain.NewInternalError(err))
		return
	}
	if user == nil || !auth.VerifyPassword(user.PasswordHash, req.Password) {
		response.Error(w, domain.NewInvalidCredentialsError())
		return
	}

	token, err := h.store.CreateSession(user.ID)
	if err != nil {
		response.Error(w, domain.NewInternalError(err))
		return
	}

	response.OK(w, map[string]string{"token": token})
}
