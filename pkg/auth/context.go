package auth

import "context"

type contextKey string

const userContextKey contextKey = "user"

// UserContext is the authenticated caller attached to a request
type UserContext struct {
	UserID string
	Email  string
	Source string // "authorizer" or "jwt"
}

// SetUserInContext stores the caller in ctx
func SetUserInContext(ctx context.Context, user *UserContext) context.Context {
	return context.WithValue(ctx, userContextKey, user)
}

// GetUserFromContext returns the caller stored in ctx
func GetUserFromContext(ctx context.Context) (*UserContext, bool) {
	user, ok := ctx.Value(userContextKey).(*UserContext)
	return user, ok && user != nil
}

// CallerID returns the caller's identity, or "" for anonymous requests
func CallerID(ctx context.Context) string {
	if user, ok := GetUserFromContext(ctx); ok {
		return user.UserID
	}
	return ""
}
