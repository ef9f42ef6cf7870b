package recognizer

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/tharindu-dev/noteflow/internal/config"
	"github.com/tharindu-dev/noteflow/internal/logger"
	"github.com/tharindu-dev/noteflow/pkg/executor"
)

type implWhisper struct {
	cfg      config.Whisper
	executor executor.Executor
	logger   logger.Logger
}

// NewWhisper creates a Recognizer backed by a whisper.cpp binary.
func NewWhisper(cfg config.Whisper, exec executor.Executor, log logger.Logger) Recognizer {
	return &implWhisper{
		cfg:      cfg,
		executor: exec,
		logger:   log,
	}
}

// whisperOutput is the shape of whisper.cpp's -oj JSON file.
type whisperOutput struct {
	Transcription []struct {
		Offsets struct {
			From int64 `json:"from"` // milliseconds
			To   int64 `json:"to"`
		} `json:"offsets"`
		Text string `json:"text"`
	} `json:"transcription"`
}

// Transcribe runs whisper.cpp on an audio file and parses its JSON output.
// The JSON artifact is written next to the audio file and removed afterwards.
func (w *implWhisper) Transcribe(ctx context.Context, audioPath string) ([]Segment, error) {
	outputPrefix := strings.TrimSuffix(audioPath, filepath.Ext(audioPath))

	w.logger.Info(ctx, "Transcribing with %d threads: %s", w.cfg.Threads, audioPath)

	args := []string{
		"-m", w.cfg.ModelPath,
		"-f", audioPath,
		"-oj",
		"-l", w.cfg.Language,
		"-t", strconv.Itoa(w.cfg.Threads),
		"--output-file", outputPrefix,
	}
	if w.cfg.Prompt != "" {
		args = append(args, "--prompt", w.cfg.Prompt)
	}

	if _, err := w.executor.Execute(ctx, w.cfg.BinaryPath, args...); err != nil {
		return nil, fmt.Errorf("whisper transcribe: %w", err)
	}

	jsonPath := outputPrefix + ".json"
	defer os.Remove(jsonPath)

	data, err := os.ReadFile(jsonPath)
	if err != nil {
		return nil, fmt.Errorf("read whisper output: %w", err)
	}

	segments, err := parseOutput(data)
	if err != nil {
		return nil, fmt.Errorf("parse whisper output: %w", err)
	}

	w.logger.Debug(ctx, "Recognized %d segments from %s", len(segments), audioPath)
	return segments, nil
}

func parseOutput(data []byte) ([]Segment, error) {
	var out whisperOutput
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}

	segments := make([]Segment, 0, len(out.Transcription))
	for _, s := range out.Transcription {
		text := strings.TrimSpace(s.Text)
		if text == "" {
			continue
		}
		segments = append(segments, Segment{
			Start: float64(s.Offsets.From) / 1000,
			End:   float64(s.Offsets.To) / 1000,
			Text:  text,
		})
	}
	return segments, nil
}
