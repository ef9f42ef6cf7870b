package logger

import "context"

// Logger is the leveled logger used by every pipeline stage. All output
// carries a timestamp; args are Printf-style.
type Logger interface {
	Debug(ctx context.Context, msg string, args ...interface{})
	Info(ctx context.Context, msg string, args ...interface{})
	Warn(ctx context.Context, msg string, args ...interface{})
	Error(ctx context.Context, msg string, args ...interface{})
}
