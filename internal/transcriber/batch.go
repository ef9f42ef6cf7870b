package transcriber

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

var videoExtensions = map[string]bool{
	".mp4":  true,
	".mov":  true,
	".avi":  true,
	".mkv":  true,
	".webm": true,
	".m4v":  true,
	".flv":  true,
}

// IsVideoFile reports whether a path has a recognized video extension.
func IsVideoFile(path string) bool {
	return videoExtensions[strings.ToLower(filepath.Ext(path))]
}

// TranscriptPath returns the transcript filename for a video path.
func TranscriptPath(videoPath string) string {
	return strings.TrimSuffix(videoPath, filepath.Ext(videoPath)) + "_transcription.txt"
}

// TranscribeFolder processes every video in dir. Videos whose transcript
// already exists are skipped, so re-running over the same folder is a no-op.
// A failing item is reported and counted; it never aborts its siblings.
func (t *implTranscriber) TranscribeFolder(ctx context.Context, dir string) error {
	videos, err := discoverVideos(dir)
	if err != nil {
		return fmt.Errorf("discover videos: %w", err)
	}

	if len(videos) == 0 {
		t.logger.Info(ctx, "No video files found in %s", dir)
		return nil
	}

	t.logger.Info(ctx, "Found %d video files in %s", len(videos), dir)

	processed := 0
	skipped := 0
	failed := 0

	for i, videoPath := range videos {
		if err := ctx.Err(); err != nil {
			return err
		}

		name := filepath.Base(videoPath)
		t.logger.Info(ctx, "[%d/%d] Processing video: %s", i+1, len(videos), name)

		if _, err := os.Stat(TranscriptPath(videoPath)); err == nil {
			t.logger.Info(ctx, "Transcription already exists for video: %s", name)
			skipped++
			continue
		}

		outputPath, err := t.TranscribeVideo(ctx, videoPath)
		if err != nil {
			t.logger.Error(ctx, "Failed to transcribe %s: %v", name, err)
			failed++
			continue
		}

		t.logger.Info(ctx, "Transcription saved to: %s", outputPath)
		processed++
	}

	t.logger.Info(ctx, "Transcription complete: %d processed, %d skipped, %d failed",
		processed, skipped, failed)
	return nil
}

func discoverVideos(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var videos []string
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		if IsVideoFile(e.Name()) {
			videos = append(videos, filepath.Join(dir, e.Name()))
		}
	}

	sort.Strings(videos)
	return videos, nil
}
