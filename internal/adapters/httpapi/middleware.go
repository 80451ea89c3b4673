package httpapi

import (
	"context"
	"net/http"
	"strings"

	"kidfun/internal/domain"
)

type contextKey string

const userIDKey contextKey = "userID"

// UserIDFromContext returns the authenticated user id, or "" when absent.
func UserIDFromContext(ctx context.Context) string {
	userID, _ := ctx.Value(userIDKey).(string)
	return userID
}

// bearerToken reads the session token from the Authorization header, falling
// back to the token query parameter (used by the WebSocket endpoint).
func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	}
	return r.URL.Query().Get("token")
}

// requireAuth resolves the session token against the identity provider's
// sessions table and stores the user id in the request context. Missing or
// expired sessions short-circuit before any use case runs.
func (h *Handler) requireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if token == "" {
			writeError(w, r, h.translator, domain.ErrUnauthenticated)
			return
		}
		session, err := h.profiles.FindSession(r.Context(), token)
		if err != nil {
			writeError(w, r, h.translator, domain.ErrUnauthenticated)
			return
		}
		ctx := context.WithValue(r.Context(), userIDKey, session.UserID)
		next(w, r.WithContext(ctx))
	}
}
