package transcriber

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/tharindu-dev/noteflow/internal/recognizer"
)

// TranscribeVideo runs the full pipeline for one video: extract audio,
// recognize speech, write `<stem>_transcription.txt` next to the video.
func (t *implTranscriber) TranscribeVideo(ctx context.Context, videoPath string) (string, error) {
	startTime := time.Now()

	if _, err := os.Stat(videoPath); err != nil {
		return "", fmt.Errorf("source video: %w", err)
	}

	audioPath, err := t.extractAudio(ctx, videoPath)
	if err != nil {
		return "", fmt.Errorf("extract audio: %w", err)
	}
	defer t.cleanupTempFile(ctx, audioPath)

	segments, err := t.recognizer.Transcribe(ctx, audioPath)
	if err != nil {
		return "", fmt.Errorf("transcribe: %w", err)
	}

	outputPath := TranscriptPath(videoPath)
	if err := os.WriteFile(outputPath, []byte(joinSegments(segments)), 0644); err != nil {
		return "", fmt.Errorf("write transcript: %w", err)
	}

	t.logger.Info(ctx, "Transcript written: %s (%d segments, took %s)",
		outputPath, len(segments), time.Since(startTime).Round(time.Second))

	return outputPath, nil
}

// TranscribeOne processes a single video with progress reporting.
func (t *implTranscriber) TranscribeOne(ctx context.Context, videoPath string) error {
	t.logger.Info(ctx, "Processing single video: %s", videoPath)

	outputPath, err := t.TranscribeVideo(ctx, videoPath)
	if err != nil {
		return err
	}

	t.logger.Info(ctx, "Transcription saved to: %s", outputPath)
	return nil
}

// joinSegments concatenates recognized segments into one flat transcript,
// one space between segments.
func joinSegments(segments []recognizer.Segment) string {
	parts := make([]string, 0, len(segments))
	for _, s := range segments {
		parts = append(parts, s.Text)
	}
	return strings.Join(parts, " ")
}

// cleanupTempFile removes a temporary file, logging a warning on failure.
func (t *implTranscriber) cleanupTempFile(ctx context.Context, path string) {
	if err := os.Remove(path); err != nil {
		t.logger.Warn(ctx, "Failed to cleanup temp file %s: %v", path, err)
	} else {
		t.logger.Debug(ctx, "Cleaned up temp file: %s", path)
	}
}
