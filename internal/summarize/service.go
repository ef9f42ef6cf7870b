package summarize

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/tharindu-dev/noteflow/internal/notes"
)

// Summarize reads a transcript file, runs map-reduce summarization, and
// writes `<stem>_summary.txt` plus the rendered `<stem>_summary.html`
// next to it. Nothing is written when summarization fails.
func (s *implSummarizer) Summarize(ctx context.Context, transcriptPath string) error {
	s.logger.Info(ctx, "Reading transcript file: %s", transcriptPath)

	data, err := os.ReadFile(transcriptPath)
	if err != nil {
		return fmt.Errorf("read transcript: %w", err)
	}
	text := string(data)
	s.logger.Info(ctx, "Successfully read file (%d characters)", len(text))

	chunks := s.splitter.Split(text)
	s.logger.Info(ctx, "Transcript split into %d chunks (size %d, overlap %d)",
		len(chunks), s.cfg.ChunkSize, s.cfg.Overlap())

	summary, err := s.chain.Run(ctx, chunks)
	if err != nil {
		return fmt.Errorf("summarize transcript: %w", err)
	}

	stem := strings.TrimSuffix(transcriptPath, filepath.Ext(transcriptPath))
	summaryPath := stem + "_summary.txt"

	s.logger.Info(ctx, "Writing summary to %s", summaryPath)
	if err := os.WriteFile(summaryPath, []byte(summary), 0644); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}

	// A render failure keeps the already-written summary text around.
	html, err := notes.RenderHTML(summary)
	if err != nil {
		return fmt.Errorf("render html: %w", err)
	}

	htmlPath := stem + "_summary.html"
	if err := os.WriteFile(htmlPath, html, 0644); err != nil {
		return fmt.Errorf("write html: %w", err)
	}
	s.logger.Info(ctx, "HTML summary saved to %s", htmlPath)

	if s.cfg.Docx {
		docxPath := stem + "_summary.docx"
		if err := notes.WriteDocx(filepath.Base(stem), summary, docxPath); err != nil {
			s.logger.Warn(ctx, "Failed to write docx summary: %v", err)
		} else {
			s.logger.Info(ctx, "Docx summary saved to %s", docxPath)
		}
	}

	if !s.cfg.KeepText {
		if err := os.Remove(summaryPath); err != nil {
			s.logger.Warn(ctx, "Failed to delete summary text file: %v", err)
		} else {
			s.logger.Info(ctx, "Deleted summary text file")
		}
	}

	return nil
}

// SummarizeAll processes every transcript in dir. Transcripts whose note
// already exists are skipped; a failing item is reported and counted but
// never aborts its siblings.
func (s *implSummarizer) SummarizeAll(ctx context.Context, dir string) error {
	transcripts, err := discoverTranscripts(dir)
	if err != nil {
		return fmt.Errorf("discover transcripts: %w", err)
	}

	if len(transcripts) == 0 {
		s.logger.Info(ctx, "No transcript files found in %s", dir)
		return nil
	}

	s.logger.Info(ctx, "Found %d transcripts to summarize", len(transcripts))

	succeeded := 0
	skipped := 0
	failed := 0

	for i, path := range transcripts {
		if err := ctx.Err(); err != nil {
			return err
		}

		name := filepath.Base(path)
		s.logger.Info(ctx, "[%d/%d] Summarizing: %s", i+1, len(transcripts), name)

		stem := strings.TrimSuffix(path, filepath.Ext(path))
		if _, err := os.Stat(stem + "_summary.html"); err == nil {
			s.logger.Info(ctx, "Summary already exists for: %s", name)
			skipped++
			continue
		}

		if err := s.Summarize(ctx, path); err != nil {
			s.logger.Error(ctx, "Failed to summarize %s: %v", name, err)
			failed++
			continue
		}
		succeeded++
	}

	s.logger.Info(ctx, "Summarization complete: %d succeeded, %d skipped, %d failed",
		succeeded, skipped, failed)
	return nil
}

func discoverTranscripts(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		if strings.HasSuffix(e.Name(), "_transcription.txt") {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}

	sort.Strings(files)
	return files, nil
}
