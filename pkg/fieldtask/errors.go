package fieldtask

import "errors"

// Sentinel errors for connection-related issues.
var (
	// ErrServerNotRunning indicates the server is not reachable.
	ErrServerNotRunning = errors.New("server is not running or unreachable")
	// ErrServerUnhealthy indicates the health check failed.
	ErrServerUnhealthy = errors.New("server health check failed")
)

// ErrorKind classifies an API error. The kind is derived from where the
// failure happened (client-side validation, HTTP status, transport), never
// from the wording of the server's message text.
type ErrorKind string

const (
	// KindValidation indicates the request was rejected client-side before
	// any network call was made.
	KindValidation ErrorKind = "validation"
	// KindUnauthorized indicates the server rejected the bearer token
	// (HTTP 401 or 403).
	KindUnauthorized ErrorKind = "unauthorized"
	// KindNotFound indicates the requested resource does not exist (HTTP 404).
	KindNotFound ErrorKind = "not_found"
	// KindHTTP indicates any other non-2xx response.
	KindHTTP ErrorKind = "http"
	// KindTransport indicates the request never completed (network failure,
	// unreadable response).
	KindTransport ErrorKind = "transport"
)

// Error represents a failed API call. Message holds the human-readable text
// extracted from the server response; StatusCode is zero for validation and
// transport errors.
type Error struct {
	Kind       ErrorKind
	Message    string
	StatusCode int
}

func (e *Error) Error() string {
	return e.Message
}

// IsValidation returns true if the error is a client-side validation failure.
func IsValidation(err error) bool {
	return hasKind(err, KindValidation)
}

// IsUnauthorized returns true if the server rejected the bearer token.
// Callers use this to decide whether to discard a stored session.
func IsUnauthorized(err error) bool {
	return hasKind(err, KindUnauthorized)
}

// IsNotFound returns true if the requested resource does not exist.
func IsNotFound(err error) bool {
	return hasKind(err, KindNotFound)
}

// IsServerNotRunning returns true if the server is not reachable.
func IsServerNotRunning(err error) bool {
	return errors.Is(err, ErrServerNotRunning)
}

func hasKind(err error, kind ErrorKind) bool {
	if err == nil {
		return false
	}
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Kind == kind
	}
	return false
}

// newValidationError creates a client-side validation error.
func newValidationError(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}
