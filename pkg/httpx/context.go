package httpx

import (
	"context"

	"github.com/nextx/admin-api/pkg/jwtx"
)

type ctxKey string

const (
	CtxKeyUsername  ctxKey = "username"
	CtxKeyPrincipal ctxKey = "principal"
)

// PrincipalFromContext returns the verified principal injected by the guard,
// or false if the request never passed through it.
func PrincipalFromContext(ctx context.Context) (jwtx.Principal, bool) {
	p, ok := ctx.Value(CtxKeyPrincipal).(jwtx.Principal)
	return p, ok
}

func contextWithPrincipal(ctx context.Context, p jwtx.Principal) context.Context {
	ctx = context.WithValue(ctx, CtxKeyUsername, p.Username)
	return context.WithValue(ctx, CtxKeyPrincipal, p)
}
