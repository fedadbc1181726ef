package storage

import (
	"errors"
	"testing"
	"time"

	"github.com/fieldtask/fieldtask/internal/domain"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := Open(":memory:")
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func newTestUser(t *testing.T, store *Store, email string) *domain.User {
	t.Helper()

	user := &domain.User{
		ID:           "u-" + email,
		Email:        email,
		PasswordHash: "salt:hash",
		CreatedAt:    time.Now().UTC(),
	}
	if err := store.CreateUser(user); err != nil {
		t.Fatalf("failed to create user: %v", err)
	}
	return user
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	store := newTestStore(t)
	newTestUser(t, store, "alice@example.com")

	err := store.CreateUser(&domain.User{
		ID:           "u-other",
		Email:        "alice@example.com",
		PasswordHash: "x",
		CreatedAt:    time.Now().UTC(),
	})
	if err == nil {
		t.Fatal("expected error for duplicate email, got nil")
	}

	var domainErr *domain.DomainError
	if !errors.As(err, &domainErr) || domainErr.Code != domain.ErrCodeEmailTaken {
		t.Errorf("expected EMAIL_TAKEN, got %v", err)
	}
}

func TestGetUserByEmail(t *testing.T) {
	store := newTestStore(t)
	want := newTestUser(t, store, "bob@example.com")

	got, err := store.GetUserByEmail("bob@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil || got.ID != want.ID {
		t.Errorf("got %+v, want ID %s", got, want.ID)
	}

	missing, err := store.GetUserByEmail("nobody@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if missing != nil {
		t.Errorf("expected nil for unknown email, got %+v", missing)
	}
}

func TestSessions(t *testing.T) {
	store := newTestStore(t)
	user := newTestUser(t, store, "alice@example.com")

	token, err := store.CreateSession(user.ID)
	if err != nil {
		t.Fatalf("failed to create session: %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty token")
	}

	userID, err := store.GetSessionUser(token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if userID != user.ID {
		t.Errorf("expected user %s, got %s", user.ID, userID)
	}

	unknown, err := store.GetSessionUser("bogus")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if unknown != "" {
		t.Errorf("expected empty user for unknown token, got %s", unknown)
	}

	if err := store.DeleteSession(token); err != nil {
		t.Fatalf("failed to delete session: %v", err)
	}
	revoked, err := store.GetSessionUser(token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if revoked != "" {
		t.Error("expected revoked token to resolve to no user")
	}
}

func TestTaskRoundTrip(t *testing.T) {
	store := newTestStore(t)
	user := newTestUser(t, store, "alice@example.com")

	image := "https://cdn.example.com/p/1.jpg"
	capturedAt := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	task := domain.NewTask(user.ID, "Buy milk")
	task.Image = &image
	task.Location = &domain.Location{Latitude: 52.52, Longitude: 13.405, CapturedAt: &capturedAt}

	if err := store.CreateTask(task); err != nil {
		t.Fatalf("failed to create task: %v", err)
	}

	got, err := store.GetTask(task.ID, user.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil {
		t.Fatal("expected task, got nil")
	}
	if got.Title != "Buy milk" {
		t.Errorf("expected title 'Buy milk', got %s", got.Title)
	}
	if got.Image == nil || *got.Image != image {
		t.Errorf("expected image %s, got %v", image, got.Image)
	}
	if got.Location == nil || got.Location.Latitude != 52.52 {
		t.Errorf("unexpected location %+v", got.Location)
	}
	if got.Location.CapturedAt == nil || !got.Location.CapturedAt.Equal(capturedAt) {
		t.Errorf("unexpected captured_at %v", got.Location.CapturedAt)
	}
}

func TestTaskOwnershipIsolation(t *testing.T) {
	store := newTestStore(t)
	alice := newTestUser(t, store, "alice@example.com")
	bob := newTestUser(t, store, "bob@example.com")

	task := domain.NewTask(alice.ID, "Private")
	if err := store.CreateTask(task); err != nil {
		t.Fatalf("failed to create task: %v", err)
	}

	got, err := store.GetTask(task.ID, bob.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != nil {
		t.Error("expected other user's task to be invisible")
	}

	deleted, err := store.DeleteTask(task.ID, bob.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if deleted {
		t.Error("expected other user's delete to be a no-op")
	}
}

func TestUpdateAndDeleteTask(t *testing.T) {
	store := newTestStore(t)
	user := newTestUser(t, store, "alice@example.com")

	task := domain.NewTask(user.ID, "Original")
	if err := store.CreateTask(task); err != nil {
		t.Fatalf("failed to create task: %v", err)
	}

	task.Title = "Renamed"
	task.Completed = true
	task.UpdatedAt = time.Now().UTC()
	if err := store.UpdateTask(task); err != nil {
		t.Fatalf("failed to update task: %v", err)
	}

	got, err := store.GetTask(task.ID, user.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Title != "Renamed" || !got.Completed {
		t.Errorf("update not persisted: %+v", got)
	}

	deleted, err := store.DeleteTask(task.ID, user.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !deleted {
		t.Error("expected delete to report a removed row")
	}

	tasks, err := store.ListTasks(user.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tasks) != 0 {
		t.Errorf("expected empty list after delete, got %d", len(tasks))
	}
}

func TestMigrationsIdempotent(t *testing.T) {
	store := newTestStore(t)

	// Re-running migrations on an initialized database is a no-op.
	if err := RunMigrations(store.db); err != nil {
		t.Fatalf("re-running migrations failed: %v", err)
	}

	version, err := GetCurrentVersion(store.db)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if version != len(migrations) {
		t.Errorf("expected version %d, got %d", len(migrations), version)
	}
}
