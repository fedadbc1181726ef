package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/fieldtask/fieldtask/internal/api/response"
	"github.com/fieldtask/fieldtask/internal/domain"
	"github.com/fieldtask/fieldtask/internal/storage"
)

type contextKey string

// UserIDKey is the context key for the authenticated user's ID.
const UserIDKey contextKey = "userID"

// BearerAuth resolves the Authorization header to a user and rejects the
// request with 401 when the token is missing, malformed, or unknown. The
// classification happens here, at the transport boundary, so clients never
// need to inspect error message text.
func BearerAuth(store *storage.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				response.Error(w, domain.NewUnauthorizedError())
				return
			}

			userID, err := store.GetSessionUser(token)
			if err != nil {
				response.Error(w, domain.NewInternalError(err))
				return
			}
			if userID == "" {
				response.Error(w, domain.NewUnauthorizedError())
				return
			}

			ctx := context.WithValue(r.Context(), UserIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetUserID retrieves the authenticated user's ID from context.
func GetUserID(ctx context.Context) string {
	if userID, ok := ctx.Value(UserIDKey).(string); ok {
		return userID
	}
	return ""
}

// bearerToken extracts the token from an "Authorization: Bearer x" header.
func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}
