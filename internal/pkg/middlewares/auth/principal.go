package auth

import (
	"context"

	"loadboard/internal/entities"
)

type contextKey struct{}

var principalKey contextKey

func ContextWithPrincipal(ctx context.Context, p entities.Principal) context.Context {
	return context.WithValue(ctx, principalKey, p)
}

func PrincipalFromContext(ctx context.Context) (entities.Principal, bool) {
	p, ok := ctx.Value(principalKey).(entities.Principal)
	return p, ok
}
