package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/fieldtask/fieldtask/internal/api/middleware"
	"github.com/fieldtask/fieldtask/internal/api/request"
	"github.com/fieldtask/fieldtask/internal/api/response"
	"github.com/fieldtask/fieldtask/internal/domain"
	"github.com/fieldtask/fieldtask/internal/storage"
)

// TaskHandler handles task CRUD operations.
type TaskHandler struct {
	store *storage.Store
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(store *storage.Store) *TaskHandler {
	return &TaskHandler{store: store}
}

// ListTasks handles GET /todos.
func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	tasks, err := h.store.ListTasks(userID)
	if err != nil {
		response.Error(w, domain.NewInternalError(err))
		return
	}

	response.OK(w, tasks)
}

// CreateTask handles POST /todos.
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	var req request.CreateTaskRequest
	if err := request.DecodeJSON(r, &req); err != nil {
		response.Error(w, domain.NewValidationError("invalid JSON body"))
		return
	}

	if errs := req.Validate(); len(errs) > 0 {
		response.Error(w, domain.NewValidationError(strings.Join(errs, "; ")))
		return
	}

	userID := middleware.GetUserID(r.Context())

	task := domain.NewTask(userID, strings.TrimSpace(req.Title))
	if req.Image != nil && *req.Image != "" {
		task.Image = req.Image
	}
	if req.Location != nil {
		task.Location = locationFromBody(req.Location)
	}

	if err := h.store.CreateTask(task); err != nil {
		response.Error(w, domain.NewInternalError(err))
		return
	}

	response.Created(w, task)
}

// UpdateTask handles PATCH /todos/{id}. Absent fields are left unchanged; an
// explicit null image clears the stored photo reference.
func (h *TaskHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	taskID := chi.URLParam(r, "id")

	var req request.UpdateTaskRequest
	if err := request.DecodeJSON(r, &req); err != nil {
		response.Error(w, domain.NewValidationError("invalid JSON body"))
		return
	}

	if errs := req.Validate(); len(errs) > 0 {
		response.Error(w, domain.NewValidationError(strings.Join(errs, "; ")))
		return
	}

	userID := middleware.GetUserID(r.Context())

	task, err := h.store.GetTask(taskID, userID)
	if err != nil {
		response.Error(w, domain.NewInternalError(err))
		return
	}
	if task == nil {
		response.Error(w, domain.NewTaskNotFoundError(taskID))
		return
	}

	if req.Title != nil {
		task.Title = strings.TrimSpace(*req.Title)
	}
	if req.Completed != nil {
		task.Completed = *req.Completed
	}
	if req.Image.Set {
		task.Image = req.Image.Value
	}
	if req.Location != nil {
		task.Location = locationFromBody(req.Location)
	}
	task.UpdatedAt = time.Now().UTC()

	if err := h.store.UpdateTask(task); err != nil {
		response.Error(w, domain.NewInternalError(err))
		return
	}

	response.OK(w, task)
}

// DeleteTask handles DELETE /todos/{id}.
func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	taskID := chi.URLParam(r, "id")
	userID := middleware.GetUserID(r.Context())

	deleted, err := h.store.DeleteTask(taskID, userID)
	if err != nil {
		response.Error(w, domain.NewInternalError(err))
		return
	}
	if !deleted {
		response.Error(w, domain.NewTaskNotFoundError(taskID))
		return
	}

	response.NoContent(w)
}

// locationFromBody converts the request location to its domain form.
func locationFromBody(body *request.LocationBody) *domain.Location {
	loc := &domain.Location{
		Latitude:  body.Latitude,
		Longitude: body.Longitude,
	}
	if body.CapturedAt != nil {
		if capturedAt, err := time.Parse(time.RFC3339, *body.CapturedAt); err == nil {
			capturedAt = capturedAt.UTC()
			loc.CapturedAt = &capturedAt
		}
	}
	return loc
}
