package claims

import (
	"context"
	"errors"
)

// Claims identify the shopper of a request. Login is simulated, so the
// email is whatever the shopper typed in.
type Claims struct {
	Email string
}

type ctxKey int

const claimsKey ctxKey = 1

func Set(ctx context.Context, claims Claims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

func Get(ctx context.Context) (Claims, error) {
	v, ok := ctx.Value(claimsKey).(Claims)
	if !ok {
		return Claims{}, errors.New("claim value missing from context")
	}
	return v, nil
}
