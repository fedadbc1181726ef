package request

import (
	"encoding/json"
	"strings"
)

// LocationBody is the location shape accepted in task payloads. A capture
// timestamp may be present but is optional.
type LocationBody struct {
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	CapturedAt *string `json:"captured_at,omitempty"`
}

// Validate checks the coordinate ranges.
func (l *LocationBody) Validate() []string {
	var errors []string
	if l.Latitude < -90 || l.Latitude > 90 {
		errors = append(errors, "latitude must be between -90 and 90")
	}
	if l.Longitude < -180 || l.Longitude > 180 {
		errors = append(errors, "longitude must be between -180 and 180")
	}
	return errors
}

// CreateTaskRequest represents a request to create a task.
type CreateTaskRequest struct {
	Title    string        `json:"title"`
	Image    *string       `json:"image,omitempty"`
	Location *LocationBody `json:"location,omitempty"`
}

// Validate validates the create task request.
func (r *CreateTaskRequest) Validate() []string {
	var errors []string

	if strings.TrimSpace(r.Title) == "" {
		errors = append(errors, "title is required")
	}
	if r.Location != nil {
		errors = append(errors, r.Location.Validate()...)
	}

	return errors
}

// NullableString distinguishes an absent field from an explicit JSON null.
// An explicit null clears the stored value.
type NullableString struct {
	Set   bool
	Value *string
}

// UnmarshalJSON records that the field was present, keeping nil for null.
func (n *NullableString) UnmarshalJSON(data []byte) error {
	n.Set = true
	if string(data) == "null" {
		n.Value = nil
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	n.Value = &s
	return nil
}

// UpdateTaskRequest represents a partial task update. Absent fields are left
// unchanged; an explicit null image clears the stored photo reference.
type UpdateTaskRequest struct {
	Title     *string        `json:"title,omitempty"`
	Completed *bool          `json:"completed,omitempty"`
	Image     NullableString `json:"image"`
	Location  *LocationBody  `json:"location,omitempty"`
}

// Validate validates the update task request.
func (r *UpdateTaskRequest) Validate() []string {
	var errors []string

	if r.Title != nil && strings.TrimSpace(*r.Title) == "" {
		errors = append(errors, "title cannot be empty")
	}
	if r.Location != nil {
		errors = append(errors, r.Location.Validate()...)
	}

	return errors
}
