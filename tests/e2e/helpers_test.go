package e2e

import (
	"context"
	"errors"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/fieldtask/fieldtask/internal/api"
	"github.com/fieldtask/fieldtask/internal/storage"
	"github.com/fieldtask/fieldtask/pkg/fieldtask"
)

// E2ETestSuite provides test infrastructure for end-to-end tests: a real
// HTTP server over an in-memory store, driven through the public SDK.
type E2ETestSuite struct {
	t      *testing.T
	server *httptest.Server
	store  *storage.Store
	client *fieldtask.Client
}

// setupE2E creates a new E2E test suite with a running server and clean state.
func setupE2E(t *testing.T) *E2ETestSuite {
	t.Helper()

	store, err := storage.Open(":memory:")
	if err != nil {
		t.Fatalf("Failed to open store: %v", err)
	}

	server := httptest.NewServer(api.NewRouter(store))

	client, err := fieldtask.NewClient(fieldtask.WithBaseURL(server.URL))
	if err != nil {
		server.Close()
		store.Close()
		t.Fatalf("Failed to create client: %v", err)
	}

	suite := &E2ETestSuite{
		t:      t,
		server: server,
		store:  store,
		client: client,
	}
	t.Cleanup(suite.cleanup)
	return suite
}

func (s *E2ETestSuite) cleanup() {
	s.server.Close()
	s.store.Close()
}

var accountSeq int

// registerAndLogin creates a fresh account and returns its bearer token.
func (s *E2ETestSuite) registerAndLogin() string {
	s.t.Helper()

	accountSeq++
	email := fmt.Sprintf("user%d@example.com", accountSeq)
	password := "password123"

	if _, err := s.client.Register(context.Background(), email, password); err != nil {
		s.t.Fatalf("Failed to register %s: %v", email, err)
	}

	token, err := s.client.Login(context.Background(), email, password)
	if err != nil {
		s.t.Fatalf("Failed to log in %s: %v", email, err)
	}
	return token
}

// asAPIError unwraps err into a *fieldtask.Error.
func asAPIError(err error, target **fieldtask.Error) bool {
	return errors.As(err, target)
}

// findTask returns the task with the given ID from a list, or nil.
func findTask(tasks []fieldtask.Task, id string) *fieldtask.Task {
	for i := range tasks {
		if tasks[i].ID == id {
			return &tasks[i]
		}
	}
	return nil
}
