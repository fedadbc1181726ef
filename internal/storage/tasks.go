package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/fieldtask/fieldtask/internal/domain"
)

// CreateTask inserts a new task.
func (s *Store) CreateTask(task *domain.Task) error {
	location, err := encodeLocation(task.Location)
	if err != nil {
		return err
	}

	_, err = s.db.Exec(
		`INSERT INTO tasks (id, user_id, title, completed, image, location, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		task.ID, task.UserID, task.Title, boolToInt(task.Completed),
		task.Image, location,
		task.CreatedAt.Format(time.RFC3339), task.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to insert task: %w", err)
	}
	return nil
}

// GetTask returns the task with the given ID owned by the user, or nil if no
// such task exists.
func (s *Store) GetTask(id, userID string) (*domain.Task, error) {
	row := s.db.QueryRow(
		`SELECT id, user_id, title, completed, image, location, created_at, updated_at
		 FROM tasks WHERE id = ? AND user_id = ?`, id, userID)

	task, err := scanTask(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return task, err
}

// ListTasks returns all tasks owned by the user, newest first.
func (s *Store) ListTasks(userID string) ([]*domain.Task, error) {
	rows, err := s.db.Query(
		`SELECT id, user_id, title, completed, image, location, created_at, updated_at
		 FROM tasks WHERE user_id = ? ORDER BY created_at DESC, id`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query tasks: %w", err)
	}
	defer rows.Close()

	tasks := []*domain.Task{}
	for rows.Next() {
		task, err := scanTask(rows.Scan)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate tasks: %w", err)
	}
	return tasks, nil
}

// UpdateTask persists the task's current field values.
func (s *Store) UpdateTask(task *domain.Task) error {
	location, err := encodeLocation(task.Location)
	if err != nil {
		return err
	}

	_, err = s.db.Exec(
		`UPDATE tasks SET title = ?, completed = ?, image = ?, location = ?, updated_at = ?
		 WHERE id = ? AND user_id = ?`,
		task.Title, boolToInt(task.Completed), task.Image, location,
		task.UpdatedAt.Format(time.RFC3339), task.ID, task.UserID,
	)
	if err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}
	return nil
}

// DeleteTask removes the task. Returns false when no matching task existed.
func (s *Store) DeleteTask(id, userID string) (bool, error) {
	res, err := s.db.Exec(`DELETE FROM tasks WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return false, fmt.Errorf("failed to delete task: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to count deleted rows: %w", err)
	}
	return n > 0, nil
}

// scanTask reads one task row via the given scan function.
func scanTask(scan func(dest ...interface{}) error) (*domain.Task, error) {
	var task domain.Task
	var completed int
	var image sql.NullString
	var location sql.NullString
	var createdAt, updatedAt string

	err := scan(&task.ID, &task.UserID, &task.Title, &completed,
		&image, &location, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	task.Completed = completed != 0
	if image.Valid {
		task.Image = &image.String
	}
	if location.Valid && location.String != "" {
		var loc domain.Location
		if err := json.Unmarshal([]byte(location.String), &loc); err != nil {
			return nil, fmt.Errorf("failed to decode task location: %w", err)
		}
		task.Location = &loc
	}

	if task.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
		return nil, fmt.Errorf("failed to parse task created_at: %w", err)
	}
	if task.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt); err != nil {
		return nil, fmt.Errorf("failed to parse task updated_at: %w", err)
	}

	return &task, nil
}

// encodeLocation serializes a location to its JSON text column value.
func encodeLocation(loc *domain.Location) (interface{}, error) {
	if loc == nil {
		return nil, nil
	}
	data, err := json.Marshal(loc)
	if err != nil {
		return nil, fmt.Errorf("failed to encode task location: %w", err)
	}
	return string(data), nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
