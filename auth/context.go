// This file manages the per-request identity inside the standard
// context.Context. The context is request-scoped and discarded at the end of
// the call, so concurrent requests never share identity state and no locking
// is needed.
package auth

import "context"

// contextKey is a custom type for context keys. Using a custom type prevents
// collisions with context keys defined in other packages.
type contextKey string

const identityContextKey contextKey = "request_identity"

// RequestIdentity is "who is calling" for one inbound request, populated
// once from a verified identity token. Its absence from a context means the
// caller is anonymous.
type RequestIdentity struct {
	UserID int64
}

// NewContextWithIdentity returns a child context carrying the identity.
func NewContextWithIdentity(ctx context.Context, identity RequestIdentity) context.Context {
	return context.WithValue(ctx, identityContextKey, identity)
}

// IdentityFromContext extracts the request identity from the context.
// The second return value is false for anonymous callers.
func IdentityFromContext(ctx context.Context) (RequestIdentity, bool) {
	identity, ok := ctx.Value(identityContextKey).(RequestIdentity)
	return identity, ok
}
