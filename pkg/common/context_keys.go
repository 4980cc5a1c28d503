package common

import "context"

type contextKey string

const (
	RequestIDContextKey contextKey = "request_id"
	SourceContextKey    contextKey = "source"
)

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, RequestIDContextKey, requestID)
}

func RequestIDFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(RequestIDContextKey).(string); ok {
		return v
	}
	return ""
}

func WithSource(ctx context.Context, source string) context.Context {
	return context.WithValue(ctx, SourceContextKey, source)
}

func SourceFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(SourceContextKey).(string); ok {
		return v
	}
	return SourceHTTP
}
