package contextutil

import "context"

// Unexported key type so this package's context values cannot collide with
// values set by other libraries.
type contextKey string

const requestIDKey contextKey = "request_id"

// GetRequestID returns the request ID carried by ctx, or "" when absent.
func GetRequestID(ctx context.Context) string {
	if rid, ok := ctx.Value(requestIDKey).(string); ok {
		return rid
	}
	return ""
}

// WithRequestID injects a request ID into ctx (also useful in unit tests).
func WithRequestID(ctx context.Context, rid string) context.Context {
	return context.WithValue(ctx, requestIDKey, rid)
}
