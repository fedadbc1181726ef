package domain

import (
	"time"

	"github.com/fieldtask/fieldtask/pkg/idgen"
)

// Task represents a single to-do item owned by a user.
type Task struct {
	ID        string    `json:"id"`
	UserID    string    `json:"-"`
	Title     string    `json:"title"`
	Completed bool      `json:"completed"`
	Image     *string   `json:"image,omitempty"`
	Location  *Location `json:"location,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Location is the capture location attached to a task.
type Location struct {
	Latitude   float64    `json:"latitude"`
	Longitude  float64    `json:"longitude"`
	CapturedAt *time.Time `json:"captured_at,omitempty"`
}

// NewTask creates a new open task owned by the given user.
func NewTask(userID, title string) *Task {
	now := time.Now().UTC()
	return &Task{
		ID:        idgen.MustGenerate(),
		UserID:    userID,
		Title:     title,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
