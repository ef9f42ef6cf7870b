package recognizer

import "context"

// Segment is one timed piece of recognized speech.
type Segment struct {
	Start float64 // seconds
	End   float64 // seconds
	Text  string
}

// Recognizer converts an audio file into an ordered sequence of timed
// text segments.
type Recognizer interface {
	Transcribe(ctx context.Context, audioPath string) ([]Segment, error)
}
