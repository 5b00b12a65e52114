package utils

import (
	"context"
)

// Identity adalah hasil autentikasi request: subject = email user
type Identity struct {
	Subject string
	Role    string
}

type contextKey string

const identityKey contextKey = "identity"

func SetIdentityContext(ctx context.Context, ident Identity) context.Context {
	return context.WithValue(ctx, identityKey, ident)
}

func GetIdentityFromContext(ctx context.Context) (Identity, bool) {
	identVal := ctx.Value(identityKey)
	if identVal == nil {
		return Identity{}, false
	}

	ident, ok := identVal.(Identity)
	return ident, ok
}
