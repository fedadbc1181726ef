package fieldtask

import (
	"encoding/json"
	"time"
)

// Task represents a single to-do item.
type Task struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Completed bool      `json:"completed"`
	Image     *string   `json:"image,omitempty"`
	Location  *Location `json:"location,omitempty"`
}

// Location is a geolocation captured when a task was created or edited.
// CapturedAt is informational only and is never sent back to the server.
type Location struct {
	Latitude   float64    `json:"latitude"`
	Longitude  float64    `json:"longitude"`
	CapturedAt *time.Time `json:"captured_at,omitempty"`
}

// locationJSON mirrors Location without methods, so UnmarshalJSON below can
// decode into it without recursing.
type locationJSON struct {
	Latitude   float64    `json:"latitude"`
	Longitude  float64    `json:"longitude"`
	CapturedAt *time.Time `json:"captured_at,omitempty"`
}

// UnmarshalJSON accepts a location either as a JSON object or as a string
// containing a JSON-encoded object. Older servers store the location column
// as text and return it without re-parsing.
func (l *Location) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var encoded string
		if err := json.Unmarshal(data, &encoded); err != nil {
			return err
		}
		data = []byte(encoded)
	}

	var raw locationJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	l.Latitude = raw.Latitude
	l.Longitude = raw.Longitude
	l.CapturedAt = raw.CapturedAt
	return nil
}

// User represents a registered account. The password is write-only and never
// appears in any response type.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// registerRequest is the JSON request body for registration.
type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// loginRequest is the JSON request body for login.
type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// loginResponse is the inner payload of a successful login.
type loginResponse struct {
	Token string `json:"token"`
}

// locationPayload is the location shape sent to the server: latitude and
// longitude only, the capture timestamp is dropped.
type locationPayload struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// createTaskRequest is the JSON request body for creating a task.
type createTaskRequest struct {
	Title    string           `json:"title"`
	Image    *string          `json:"image,omitempty"`
	Location *locationPayload `json:"location,omitempty"`
}
