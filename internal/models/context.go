package models

// QueryParamsKey holds the validated query parameters in the request context.
type QueryParamsKey struct{}

// LoggerKey holds the request-scoped *zap.Logger in the request context.
type LoggerKey struct{}

// RequestIDKey holds the request id in the request context.
type RequestIDKey struct{}
