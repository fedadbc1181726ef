package response

import (
	"encoding/json"
	"net/http"

	"github.com/fieldtask/fieldtask/internal/domain"
)

// Envelope wraps every successful payload in the `{ "data": ... }` shape the
// clients expect.
type Envelope struct {
	Data interface{} `json:"data"`
}

// ErrorResponse represents an error response body.
type ErrorResponse struct {
	Message string `json:"message"`
}

// JSON sends a JSON response with the given status code.
func JSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// OK sends a 200 OK response with an enveloped body.
func OK(w http.ResponseWriter, data interface{}) {
	JSON(w, http.StatusOK, Envelope{Data: data})
}

// Created sends a 201 Created response with an enveloped body.
func Created(w http.ResponseWriter, data interface{}) {
	JSON(w, http.StatusCreated, Envelope{Data: data})
}

// NoContent sends a 204 No Content response.
func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// Error sends an error response based on the domain error.
func Error(w http.ResponseWriter, err error) {
	domainErr, ok := err.(*domain.DomainError)
	if !ok {
		domainErr = domain.NewInternalError(err)
	}

	status := mapErrorCodeToStatus(domainErr.Code)
	JSON(w, status, ErrorResponse{Message: domainErr.Message})
}

func mapErrorCodeToStatus(code domain.ErrorCode) int {
	switch code {
	case domain.ErrCodeTaskNotFound:
		return http.StatusNotFound
	case domain.ErrCodeValidationFailed:
		return http.StatusBadRequest
	case domain.ErrCodeEmailTaken:
		return http.StatusConflict
	case domain.ErrCodeInvalidCredentials, domain.ErrCodeUnauthorized:
		return http.StatusUnauthorized
	case domain.ErrCodeInternalError:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
