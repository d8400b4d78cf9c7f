package http

import (
	"context"

	"github.com/seguro-calcio/roster-service/internal/ids"
)

type requestIDKey struct{}

// newRequestID issues an id for requests that arrive without one.
func newRequestID() string {
	return ids.New()
}

func withRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

func requestIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}
