package logger

import "context"

// Logger is the printf-style logger used across the pipeline.
// Fields attached to ctx (run ID, file) are added to every line.
type Logger interface {
	Debug(ctx context.Context, msg string, args ...interface{})
	Info(ctx context.Context, msg string, args ...interface{})
	Warn(ctx context.Context, msg string, args ...interface{})
	Error(ctx context.Context, msg string, args ...interface{})
}
