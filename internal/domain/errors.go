package domain

import "fmt"

// ErrorCode represents a domain error code.
type ErrorCode string

const (
	ErrCodeTaskNotFound       ErrorCode = "TASK_NOT_FOUND"
	ErrCodeValidationFailed   ErrorCode = "VALIDATION_FAILED"
	ErrCodeEmailTaken         ErrorCode = "EMAIL_TAKEN"
	ErrCodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	ErrCodeUnauthorized       ErrorCode = "UNAUTHORIZED"
	ErrCodeInternalError      ErrorCode = "INTERNAL_ERROR"
)

// DomainError represents an error in the domain layer.
type DomainError struct {
	Code    ErrorCode
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewTaskNotFoundError creates a task not found error.
func NewTaskNotFoundError(taskID string) *DomainError {
	return &DomainError{
		Code:    ErrCodeTaskNotFound,
		Message: fmt.Sprintf("task %s not found", taskID),
	}
}

// NewValidationError creates a validation error with the given message.
func NewValidationError(message string) *DomainError {
	return &DomainError{
		Code:    ErrCodeValidationFailed,
		Message: message,
	}
}

// NewEmailTakenError creates an error for a duplicate registration.
func NewEmailTakenError(email string) *DomainError {
	return &DomainError{
		Code:    ErrCodeEmailTaken,
		Message: fmt.Sprintf("an account with email %s already exists", email),
	}
}

// NewInvalidCredentialsError creates an error for a failed login.
func NewInvalidCredentialsError() *DomainError {
	return &DomainError{
		Code:    ErrCodeInvalidCredentials,
		Message: "invalid email or password",
	}
}

// NewUnauthorizedError creates an error for a missing or invalid token.
func NewUnauthorizedError() *DomainError {
	return &DomainError{
		Code:    ErrCodeUnauthorized,
		Message: "unauthorized",
	}
}

// NewInternalError creates an internal error. The underlying cause is not
// exposed to clients.
func NewInternalError(err error) *DomainError {
	return &DomainError{
		Code:    ErrCodeInternalError,
		Message: "an internal error occurred",
	}
}
