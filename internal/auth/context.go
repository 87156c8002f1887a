package auth

import (
	"context"
	"net/http"
)

type contextKey string

const userIDKey contextKey = "hoopking-auth-user-id"

// WithUserID stores the authenticated user id on the context.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// UserIDFromContext retrieves the id stored by WithUserID.
func UserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDKey).(string)
	return userID, ok && userID != ""
}

// UserKey rate limits by the authenticated user, see middleware.RateLimit.
func UserKey(r *http.Request) string {
	userID, _ := UserIDFromContext(r.Context())
	return userID
}
