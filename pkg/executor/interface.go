package executor

import (
	"context"
	"io"
)

// Executor runs external commands (ffmpeg, whisper.cpp).
type Executor interface {
	// Execute runs a command to completion and returns its stdout.
	Execute(ctx context.Context, name string, args ...string) (string, error)

	// Stream starts a long-running command and returns its stdout as a
	// pipe. The returned Stream must be closed by the caller; Close kills
	// the process if it is still running and reaps it.
	Stream(ctx context.Context, name string, args ...string) (Stream, error)
}

// Stream is a running command's stdout.
type Stream interface {
	io.ReadCloser
}
