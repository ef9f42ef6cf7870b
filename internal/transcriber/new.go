package transcriber

import (
	"github.com/tharindu-dev/noteflow/internal/logger"
	"github.com/tharindu-dev/noteflow/internal/recognizer"
	"github.com/tharindu-dev/noteflow/pkg/executor"
)

type implTranscriber struct {
	recognizer recognizer.Recognizer
	executor   executor.Executor
	logger     logger.Logger
}

// New creates a Transcriber that extracts audio with ffmpeg and recognizes
// speech with the given Recognizer.
func New(rec recognizer.Recognizer, exec executor.Executor, log logger.Logger) Transcriber {
	return &implTranscriber{
		recognizer: rec,
		executor:   exec,
		logger:     log,
	}
}
