package transcriber

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
)

// extractAudio demuxes a video into a 16kHz mono WAV, the input format
// whisper.cpp expects. The caller owns the returned temp file.
func (t *implTranscriber) extractAudio(ctx context.Context, videoPath string) (string, error) {
	audioPath := strings.TrimSuffix(videoPath, filepath.Ext(videoPath)) + "_temp.wav"

	t.logger.Info(ctx, "Extracting audio: %s", videoPath)

	args := []string{
		"-i", videoPath,
		"-vn",
		"-ar", "16000",
		"-ac", "1",
		"-c:a", "pcm_s16le",
		"-y",
		audioPath,
	}

	if _, err := t.executor.Execute(ctx, "ffmpeg", args...); err != nil {
		return "", fmt.Errorf("ffmpeg extract audio: %w", err)
	}

	t.logger.Debug(ctx, "Audio extracted: %s", audioPath)
	return audioPath, nil
}
