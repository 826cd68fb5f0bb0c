package context_manager

import (
	"context"
	"strings"
)

type userIDKey struct{}
type usernameKey struct{}

// SetUserContext stores the telegram user id into context
func SetUserContext(ctx context.Context, id int64) context.Context {
	return context.WithValue(ctx, userIDKey{}, id)
}

// GetUserContext retrieves the telegram user id from context
func GetUserContext(ctx context.Context) int64 {
	id, ok := ctx.Value(userIDKey{}).(int64)
	if !ok {
		return 0
	}
	return id
}

// SetUsernameContext stores the @handle, lowercased; telegram usernames are
// case-insensitive.
func SetUsernameContext(ctx context.Context, username string) context.Context {
	return context.WithValue(ctx, usernameKey{}, strings.ToLower(username))
}

// GetUsernameContext retrieves the @handle from context
func GetUsernameContext(ctx context.Context) string {
	username, ok := ctx.Value(usernameKey{}).(string)
	if !ok {
		return ""
	}
	return username
}
