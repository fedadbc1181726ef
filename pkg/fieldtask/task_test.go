package fieldtask

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

const testToken = "tok-abc123"

func TestCreateTask(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/todos" {
			t.Errorf("expected path /todos, got %s", r.URL.Path)
		}
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if r.Header.Get("Content-Type") != "application/json" {
			t.Errorf("expected Content-Type application/json, got %s", r.Header.Get("Content-Type"))
		}
		if r.Header.Get("Authorization") != "Bearer "+testToken {
			t.Errorf("expected bearer auth, got %s", r.Header.Get("Authorization"))
		}

		body, _ := io.ReadAll(r.Body)
		var raw map[string]json.RawMessage
		if err := json.Unmarshal(body, &raw); err != nil {
			t.Errorf("failed to decode request body: %v", err)
		}
		if string(raw["title"]) != `"Buy milk"` {
			t.Errorf("expected trimmed title, got %s", raw["title"])
		}
		if _, ok := raw["image"]; ok {
			t.Error("expected no image key in payload")
		}
		if _, ok := raw["location"]; ok {
			t.Error("expected no location key in payload")
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"data": Task{ID: "td-1234", Title: "Buy milk"},
		})
	}))
	defer server.Close()

	client := newTestClient(t, server)
	task, err := client.CreateTask(context.Background(), testToken, "  Buy milk  ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if task.ID != "td-1234" {
		t.Errorf("expected task ID td-1234, got %s", task.ID)
	}
	if task.Title != "Buy milk" {
		t.Errorf("expected title 'Buy milk', got %s", task.Title)
	}
}

func TestCreateTaskWithImageAndLocation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req createTaskRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("failed to decode request body: %v", err)
		}
		if req.Image == nil || *req.Image != "https://cdn.example.com/p/1.jpg" {
			t.Errorf("expected image in payload, got %v", req.Image)
		}
		if req.Location == nil {
			t.Fatal("expected location in payload")
		}
		if req.Location.Latitude != 52.52 || req.Location.Longitude != 13.405 {
			t.Errorf("unexpected location %+v", req.Location)
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(Task{ID: "td-1", Title: req.Title})
	}))
	defer server.Close()

	client := newTestClient(t, server)
	task, err := client.CreateTask(context.Background(), testToken, "Photo task",
		WithImage("https://cdn.example.com/p/1.jpg"),
		WithLocation(52.52, 13.405),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if task.ID != "td-1" {
		t.Errorf("expected task ID td-1, got %s", task.ID)
	}
}

func TestCreateTaskValidation(t *testing.T) {
	tests := []struct {
		name  string
		token string
		title string
	}{
		{name: "empty title", token: testToken, title: ""},
		{name: "whitespace title", token: testToken, title: "   \t "},
		{name: "missing token", token: "", title: "Valid title"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
			}))
			defer server.Close()

			client := newTestClient(t, server)
			_, err := client.CreateTask(context.Background(), tt.token, tt.title)
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}
			if !IsValidation(err) {
				t.Errorf("expected validation kind, got %v", err)
			}
			if called {
				t.Error("expected no network request for a validation failure")
			}
		})
	}
}

func TestListTasks(t *testing.T) {
	items := []Task{
		{ID: "td-1", Title: "First", Completed: true},
		{ID: "td-2", Title: "Second"},
	}

	tests := []struct {
		name string
		body func() interface{}
		want int
	}{
		{
			name: "enveloped array",
			body: func() interface{} { return map[string]interface{}{"data": items} },
			want: 2,
		},
		{
			name: "bare array",
			body: func() interface{} { return items },
			want: 2,
		},
		{
			name: "malformed shape",
			body: func() interface{} { return map[string]interface{}{"results": items} },
			want: 0,
		},
		{
			name: "null data",
			body: func() interface{} { return map[string]interface{}{"data": nil} },
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/todos" {
					t.Errorf("expected path /todos, got %s", r.URL.Path)
				}
				if r.Method != http.MethodGet {
					t.Errorf("expected GET, got %s", r.Method)
				}
				w.Header().Set("Content-Type", "application/json")
				json.NewEncoder(w).Encode(tt.body())
			}))
			defer server.Close()

			client := newTestClient(t, server)
			tasks, err := client.ListTasks(context.Background(), testToken)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tasks == nil {
				t.Fatal("expected non-nil task list")
			}
			if len(tasks) != tt.want {
				t.Errorf("expected %d tasks, got %d", tt.want, len(tasks))
			}
			if tt.want == 2 && tasks[0].ID != "td-1" {
				t.Errorf("expected first task td-1, got %s", tasks[0].ID)
			}
		})
	}
}

func TestSetCompletedPayload(t *testing.T) {
	tests := []struct {
		name      string
		completed bool
	}{
		{name: "set true", completed: true},
		{name: "set false", completed: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/todos/td-7" {
					t.Errorf("expected path /todos/td-7, got %s", r.URL.Path)
				}
				if r.Method != http.MethodPatch {
					t.Errorf("expected PATCH, got %s", r.Method)
				}

				body, _ := io.ReadAll(r.Body)
				var raw map[string]interface{}
				json.Unmarshal(body, &raw)
				if len(raw) != 1 {
					t.Errorf("expected payload with exactly one key, got %s", body)
				}
				if raw["completed"] != tt.completed {
					t.Errorf("expected completed=%v, got %s", tt.completed, body)
				}

				w.Header().Set("Content-Type", "application/json")
				json.NewEncoder(w).Encode(map[string]interface{}{
					"data": Task{ID: "td-7", Title: "Toggle me", Completed: tt.completed},
				})
			}))
			defer server.Close()

			client := newTestClient(t, server)
			task, err := client.SetCompleted(context.Background(), testToken, "td-7", tt.completed)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if task.Completed != tt.completed {
				t.Errorf("expected completed=%v, got %v", tt.completed, task.Completed)
			}
		})
	}
}

func TestUpdateTaskPartialPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		var raw map[string]json.RawMessage
		if err := json.Unmarshal(body, &raw); err != nil {
			t.Errorf("failed to decode request body: %v", err)
		}
		if string(raw["title"]) != `"New title"` {
			t.Errorf("expected title in payload, got %s", body)
		}
		if _, ok := raw["completed"]; ok {
			t.Errorf("expected no completed key, got %s", body)
		}
		if _, ok := raw["image"]; ok {
			t.Errorf("expected no image key, got %s", body)
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"data": Task{ID: "td-9", Title: "New title"},
		})
	}))
	defer server.Close()

	client := newTestClient(t, server)
	task, err := client.UpdateTask(context.Background(), testToken, "td-9", WithTitle("New title"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if task.Title != "New title" {
		t.Errorf("expected title 'New title', got %s", task.Title)
	}
}

func TestUpdateTaskClearImage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		var raw map[string]json.RawMessage
		json.Unmarshal(body, &raw)
		img, ok := raw["image"]
		if !ok {
			t.Fatalf("expected image key in payload, got %s", body)
		}
		if string(img) != "null" {
			t.Errorf("expected explicit null image, got %s", img)
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"data": Task{ID: "td-3", Title: "No photo"},
		})
	}))
	defer server.Close()

	client := newTestClient(t, server)
	task, err := client.UpdateTask(context.Background(), testToken, "td-3", WithImageCleared())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if task.Image != nil {
		t.Errorf("expected nil image, got %v", *task.Image)
	}
}

func TestDeleteTask(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/todos/td-5" {
			t.Errorf("expected path /todos/td-5, got %s", r.URL.Path)
		}
		if r.Method != http.MethodDelete {
			t.Errorf("expected DELETE, got %s", r.Method)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := newTestClient(t, server)
	if err := client.DeleteTask(context.Background(), testToken, "td-5"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestTaskNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"message": "task not found"})
	}))
	defer server.Close()

	client := newTestClient(t, server)
	_, err := client.SetCompleted(context.Background(), testToken, "td-missing", true)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !IsNotFound(err) {
		t.Errorf("expected not-found kind, got %v", err)
	}
	if err.Error() != "task not found" {
		t.Errorf("expected server message, got %q", err.Error())
	}
}

func TestUnauthorizedKindFromStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"message": "session expired, please sign in again"})
	}))
	defer server.Close()

	client := newTestClient(t, server)
	_, err := client.ListTasks(context.Background(), testToken)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	// The kind comes from the status code, not the message wording.
	if !IsUnauthorized(err) {
		t.Errorf("expected unauthorized kind, got %v", err)
	}
}
