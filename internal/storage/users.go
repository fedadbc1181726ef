package storage

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/fieldtask/fieldtask/internal/domain"
)

// CreateUser inserts a new user. Returns a domain email-taken error when the
// email is already registered.
func (s *Store) CreateUser(user *domain.User) error {
	_, err := s.db.Exec(
		`INSERT INTO users (id, email, password_hash, created_at) VALUES (?, ?, ?, ?)`,
		user.ID, user.Email, user.PasswordHash, user.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return domain.NewEmailTakenError(user.Email)
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

// GetUserByEmail returns the user with the given email, or nil if none
// exists.
func (s *Store) GetUserByEmail(email string) (*domain.User, error) {
	row := s.db.QueryRow(
		`SELECT id, email, password_hash, created_at FROM users WHERE email = ?`, email)
	return scanUser(row)
}

// GetUser returns the user with the given ID, or nil if none exists.
func (s *Store) GetUser(id string) (*domain.User, error) {
	row := s.db.QueryRow(
		`SELECT id, email, password_hash, created_at FROM users WHERE id = ?`, id)
	return scanUser(row)
}

func scanUser(row *sql.Row) (*domain.User, error) {
	var user domain.User
	var createdAt string

	err := row.Scan(&user.ID, &user.Email, &user.PasswordHash, &createdAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan user: %w", err)
	}

	user.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse user created_at: %w", err)
	}
	return &user, nil
}
