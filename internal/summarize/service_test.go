package summarize

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/tharindu-dev/noteflow/internal/config"
	"github.com/tharindu-dev/noteflow/internal/logger"
)

// noteEndpoint answers every prompt with fixed markdown, or fails.
type noteEndpoint struct {
	mu    sync.Mutex
	calls int
	fail  bool
}

func (e *noteEndpoint) Generate(ctx context.Context, prompt string) (string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.calls++
	if e.fail {
		return "", errors.New("quota exceeded")
	}
	return "**Summary**\n\nGenerated note.", nil
}

func (e *noteEndpoint) callCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.calls
}

func testSummaryConfig() config.Summary {
	overlap := 150
	return config.Summary{
		ChunkSize:    2000,
		ChunkOverlap: &overlap,
		MaxAttempts:  2,
		KeepText:     true,
	}
}

func newTestSummarizer(t *testing.T, cfg config.Summary, e Endpoint) Summarizer {
	t.Helper()
	s, err := newWithOptions(cfg, e, logger.New("error"), fastOptions(2))
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func writeTranscript(t *testing.T, dir, name, text string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestSummarizeWritesArtifacts(t *testing.T) {
	dir := t.TempDir()
	path := writeTranscript(t, dir, "lec4_transcription.txt", "The lecture covers caches.")

	s := newTestSummarizer(t, testSummaryConfig(), &noteEndpoint{})
	if err := s.Summarize(context.Background(), path); err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}

	txt, err := os.ReadFile(filepath.Join(dir, "lec4_transcription_summary.txt"))
	if err != nil {
		t.Fatalf("summary text missing: %v", err)
	}
	if !strings.Contains(string(txt), "Generated note.") {
		t.Errorf("summary text = %q", txt)
	}

	html, err := os.ReadFile(filepath.Join(dir, "lec4_transcription_summary.html"))
	if err != nil {
		t.Fatalf("summary html missing: %v", err)
	}
	if !strings.Contains(string(html), "<html>") || !strings.Contains(string(html), "Generated note.") {
		t.Errorf("summary html = %q", html)
	}
}

func TestSummarizeDeletesTextByDefault(t *testing.T) {
	dir := t.TempDir()
	path := writeTranscript(t, dir, "lec_transcription.txt", "Content.")

	cfg := testSummaryConfig()
	cfg.KeepText = false

	s := newTestSummarizer(t, cfg, &noteEndpoint{})
	if err := s.Summarize(context.Background(), path); err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "lec_transcription_summary.txt")); !os.IsNotExist(err) {
		t.Error("summary text file should be deleted after rendering")
	}
	if _, err := os.Stat(filepath.Join(dir, "lec_transcription_summary.html")); err != nil {
		t.Errorf("summary html missing: %v", err)
	}
}

func TestSummarizeMissingInput(t *testing.T) {
	s := newTestSummarizer(t, testSummaryConfig(), &noteEndpoint{})
	if err := s.Summarize(context.Background(), "/nonexistent/lec_transcription.txt"); err == nil {
		t.Error("Summarize() should fail for a missing transcript")
	}
}

func TestSummarizeFailureWritesNothing(t *testing.T) {
	dir := t.TempDir()
	path := writeTranscript(t, dir, "lec_transcription.txt", "Content.")

	s := newTestSummarizer(t, testSummaryConfig(), &noteEndpoint{fail: true})
	if err := s.Summarize(context.Background(), path); err == nil {
		t.Fatal("Summarize() should fail when the endpoint fails")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		if strings.Contains(e.Name(), "_summary") {
			t.Errorf("partial artifact written on failure: %s", e.Name())
		}
	}
}

func TestSummarizeAllSkipsExisting(t *testing.T) {
	dir := t.TempDir()
	writeTranscript(t, dir, "a_transcription.txt", "Lecture a.")
	writeTranscript(t, dir, "b_transcription.txt", "Lecture b.")
	// Unrelated files are ignored.
	writeTranscript(t, dir, "readme.txt", "not a transcript")

	e := &noteEndpoint{}
	s := newTestSummarizer(t, testSummaryConfig(), e)

	if err := s.SummarizeAll(context.Background(), dir); err != nil {
		t.Fatalf("first run error = %v", err)
	}
	firstRunCalls := e.callCount()
	if firstRunCalls == 0 {
		t.Fatal("no endpoint calls on first run")
	}

	if err := s.SummarizeAll(context.Background(), dir); err != nil {
		t.Fatalf("second run error = %v", err)
	}
	if e.callCount() != firstRunCalls {
		t.Errorf("second run made %d new calls, want 0", e.callCount()-firstRunCalls)
	}
}

func TestSummarizeAllContinuesOnFailure(t *testing.T) {
	dir := t.TempDir()
	writeTranscript(t, dir, "a_transcription.txt", "Lecture a.")
	writeTranscript(t, dir, "b_transcription.txt", "Lecture b.")

	e := &noteEndpoint{fail: true}
	s := newTestSummarizer(t, testSummaryConfig(), e)

	// Both items are attempted even though both fail.
	if err := s.SummarizeAll(context.Background(), dir); err != nil {
		t.Fatalf("SummarizeAll() error = %v", err)
	}
	// Each item: 1 chunk x 2 attempts (fast options cap retries at 2).
	if e.callCount() != 4 {
		t.Errorf("endpoint calls = %d, want 4", e.callCount())
	}
}
