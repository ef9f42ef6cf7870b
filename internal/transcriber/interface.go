package transcriber

import "context"

// Transcriber turns video files into plain-text transcripts.
type Transcriber interface {
	// TranscribeVideo processes one video and returns the transcript path.
	TranscribeVideo(ctx context.Context, videoPath string) (string, error)

	// TranscribeOne processes a single video with progress reporting.
	TranscribeOne(ctx context.Context, videoPath string) error

	// TranscribeFolder processes every recognized video in a directory,
	// skipping those whose transcript already exists.
	TranscribeFolder(ctx context.Context, dir string) error
}
