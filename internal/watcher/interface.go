package watcher

import "context"

// Watcher monitors a directory for newly arrived video files.
type Watcher interface {
	Start(ctx context.Context) error
	Stop() error
}

// EventHandler is invoked for each new video file.
type EventHandler func(ctx context.Context, videoPath string) error
