// Package bearer carries the shopper's storefront credential through a
// context so outbound API calls can authorize on the shopper's behalf.
package bearer

import "context"

type ctxKey struct{}

func WithToken(ctx context.Context, token string) context.Context {
	if token == "" {
		return ctx
	}
	return context.WithValue(ctx, ctxKey{}, token)
}

func FromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(ctxKey{}).(string)
	return token, ok && token != ""
}
