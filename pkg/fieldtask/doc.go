// Package fieldtask provides a Go client for the fieldtask to-do server API.
//
// Fieldtask is a to-do list service with photo and geolocation capture. This
// package wraps its HTTP API: account registration and login, plus task
// listing, creation, partial update, and deletion.
//
// # Getting Started
//
// Create a client pointing at the server:
//
//	client, err := fieldtask.NewClient(
//	    fieldtask.WithBaseURL("https://api.example.com"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Log in to obtain a bearer token. The client holds no session state; the
// token is passed into every authenticated call:
//
//	token, err := client.Login(ctx, "alice@example.com", "secret")
//
// # Managing Tasks
//
// Create a task, optionally with a photo reference and a capture location:
//
//	task, err := client.CreateTask(ctx, token, "Buy milk",
//	    fieldtask.WithImage("https://cdn.example.com/p/123.jpg"),
//	    fieldtask.WithLocation(52.52, 13.405),
//	)
//
// List all tasks:
//
//	tasks, err := client.ListTasks(ctx, token)
//
// Toggle completion (sends only the completed flag):
//
//	task, err := client.SetCompleted(ctx, token, task.ID, true)
//
// Apply a partial update; only fields set through options are sent:
//
//	task, err := client.UpdateTask(ctx, token, task.ID,
//	    fieldtask.WithTitle("Buy oat milk"),
//	    fieldtask.WithImageCleared(),
//	)
//
// Delete a task:
//
//	err := client.DeleteTask(ctx, token, task.ID)
//
// # Error Handling
//
// Failures carry a structured kind derived from where they happened, never
// from message wording:
//
//	tasks, err := client.ListTasks(ctx, token)
//	if err != nil {
//	    if fieldtask.IsUnauthorized(err) {
//	        // Token expired or revoked: discard the session.
//	    } else if fieldtask.IsServerNotRunning(err) {
//	        // Server is not reachable.
//	    }
//	}
//
// Client-side validation failures (empty title, missing token) are reported
// with fieldtask.IsValidation and never reach the network.
package fieldtask
