package api

import "context"

type requestIDKey struct{}

// WithRequestID returns a context whose backend calls carry the given
// request id as an X-Request-ID header for cross-service correlation.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestID returns the request id attached with WithRequestID, or "".
func RequestID(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey{}).(string); ok {
		return id
	}
	return ""
}
