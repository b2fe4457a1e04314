package logger

import "context"

const (
	FieldRunID = "run_id"
	FieldFile  = "file"
)

type contextKey string

const (
	runIDKey contextKey = "run_id"
	fileKey  contextKey = "file"
)

// WithRunID tags every line logged with ctx with the batch run ID.
func WithRunID(ctx context.Context, runID string) context.Context {
	return context.WithValue(ctx, runIDKey, runID)
}

// WithFile tags every line logged with ctx with the file being processed.
func WithFile(ctx context.Context, file string) context.Context {
	return context.WithValue(ctx, fileKey, file)
}

// RunID returns the run ID stored in ctx, if any.
func RunID(ctx context.Context) string {
	return stringValue(ctx, runIDKey)
}

// File returns the file name stored in ctx, if any.
func File(ctx context.Context) string {
	return stringValue(ctx, fileKey)
}

func stringValue(ctx context.Context, key contextKey) string {
	if ctx == nil {
		return ""
	}
	v, _ := ctx.Value(key).(string)
	return v
}
