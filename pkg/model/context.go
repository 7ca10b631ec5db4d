package model

import "context"

// Identity is the authenticated caller as carried by the session cookie.
type Identity struct {
	UserID    uint   `json:"userId"`
	Nickname  string `json:"nickname"`
	GroupSlug string `json:"groupSlug"`
}

type contextKey int

var identityKey contextKey

// NewContextWithIdentity returns a new [context.Context] that carries the
// session identity.
func NewContextWithIdentity(ctx context.Context, identity Identity) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}

// GetIdentityFromContext returns the session identity stored in ctx, if any.
// Public routes do not have one.
func GetIdentityFromContext(ctx context.Context) (Identity, bool) {
	identity, ok := ctx.Value(identityKey).(Identity)
	return identity, ok
}
