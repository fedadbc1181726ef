// Package tasklist holds the local task-list state used by the CLI list
// view. Completion toggles are applied optimistically: the local flag flips
// before the server confirms, and rolls back to the prior snapshot if the
// call fails.
package tasklist

import (
	"context"
	"fmt"
	"sync"

	"github.com/fieldtask/fieldtask/pkg/fieldtask"
)

// API is the subset of the fieldtask client the view needs.
type API interface {
	ListTasks(ctx context.Context, token string) ([]fieldtask.Task, error)
	SetCompleted(ctx context.Context, token, id string, completed bool) (*fieldtask.Task, error)
}

// View is an in-memory snapshot of the user's task list.
//
// Rollback restores the pre-call snapshot only; no re-fetch or server-state
// reconciliation is attempted. Concurrent edits from elsewhere are not
// reconciled until the next Refresh. This is an intentional simplification.
type View struct {
	api   API
	token string

	mu    sync.Mutex
	tasks []fieldtask.Task
}

// NewView creates a view backed by the given API and bearer token.
func NewView(api API, token string) *View {
	return &View{api: api, token: token}
}

// Refresh replaces the local snapshot with the server's task list.
func (v *View) Refresh(ctx context.Context) error {
	tasks, err := v.api.ListTasks(ctx, v.token)
	if err != nil {
		return err
	}

	v.mu.Lock()
	v.tasks = tasks
	v.mu.Unlock()
	return nil
}

// Tasks returns a copy of the current local snapshot.
func (v *View) Tasks() []fieldtask.Task {
	v.mu.Lock()
	defer v.mu.Unlock()

	out := make([]fieldtask.Task, len(v.tasks))
	copy(out, v.tasks)
	return out
}

// ToggleCompleted flips a task's completed flag locally, then confirms the
// change with the server. On failure the local snapshot is restored and the
// error is returned.
func (v *View) ToggleCompleted(ctx context.Context, id string) error {
	v.mu.Lock()
	idx := -1
	for i := range v.tasks {
		if v.tasks[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		v.mu.Unlock()
		return fmt.Errorf("task %s is not in the current list", id)
	}

	snapshot := make([]fieldtask.Task, len(v.tasks))
	copy(snapshot, v.tasks)

	v.tasks[idx].Completed = !v.tasks[idx].Completed
	target := v.tasks[idx].Completed
	v.mu.Unlock()

	updated, err := v.api.SetCompleted(ctx, v.token, id, target)
	if err != nil {
		v.mu.Lock()
		v.tasks = snapshot
		v.mu.Unlock()
		return err
	}

	// Server response is authoritative for the toggled task.
	v.mu.Lock()
	for i := range v.tasks {
		if v.tasks[i].ID == id {
			v.tasks[i] = *updated
			break
		}
	}
	v.mu.Unlock()
	return nil
}
