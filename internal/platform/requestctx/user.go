package requestctx

import "context"

// userIDContextKey is the context key for authenticated user identity.
type userIDContextKey struct{}

// accessTokenContextKey is the context key for the provider access token.
type accessTokenContextKey struct{}

// WithUserID stores a user identifier in context.
func WithUserID(ctx context.Context, userID string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, userIDContextKey{}, userID)
}

// UserIDFromContext returns the user identifier stored in context.
func UserIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	value, _ := ctx.Value(userIDContextKey{}).(string)
	return value
}

// WithAccessToken stores the provider access token in context. Backend
// queries read it to authenticate as the signed-in operator; when absent
// they fall back to the anonymous key.
func WithAccessToken(ctx context.Context, token string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, accessTokenContextKey{}, token)
}

// AccessTokenFromContext returns the provider access token stored in
// context, or the empty string when unauthenticated.
func AccessTokenFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	value, _ := ctx.Value(accessTokenContextKey{}).(string)
	return value
}
