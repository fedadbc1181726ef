package api

import (
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/fieldtask/fieldtask/internal/api/handler"
	"github.com/fieldtask/fieldtask/internal/api/middleware"
	"github.com/fieldtask/fieldtask/internal/storage"
)

// NewRouter creates and configures the HTTP router.
func NewRouter(store *storage.Store) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware chain
	r.Use(middleware.Recovery)
	r.Use(middleware.Logging)
	r.Use(chimiddleware.RealIP)

	// Initialize handlers
	systemHandler := handler.NewSystemHandler()
	authHandler := handler.NewAuthHandler(store)
	taskHandler := handler.NewTaskHandler(store)

	// Unauthenticated routes
	r.Get("/health", systemHandler.Health)
	r.Post("/auth/register", authHandler.Register)
	r.Post("/auth/login", authHandler.Login)

	// Bearer-token protected routes
	r.Route("/todos", func(r chi.Router) {
		r.Use(middleware.BearerAuth(store))

		r.Get("/", taskHandler.ListTasks)
		r.Post("/", taskHandler.CreateTask)
		r.Patch("/{id}", taskHandler.UpdateTask)
		r.Delete("/{id}", taskHandler.DeleteTask)
	})

	return r
}
