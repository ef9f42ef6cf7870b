package summarize

import "context"

// Summarizer turns transcript files into rendered study notes.
type Summarizer interface {
	// Summarize processes one transcript file.
	Summarize(ctx context.Context, transcriptPath string) error

	// SummarizeAll processes every transcript in a directory, skipping
	// those whose note already exists.
	SummarizeAll(ctx context.Context, dir string) error
}
