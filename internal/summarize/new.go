package summarize

import (
	"fmt"

	"github.com/tharindu-dev/noteflow/internal/config"
	"github.com/tharindu-dev/noteflow/internal/logger"
)

type implSummarizer struct {
	cfg      config.Summary
	splitter *Splitter
	chain    *NoteChain
	logger   logger.Logger
}

// New creates a Summarizer over the given endpoint, using the chunking
// and retry parameters from the config.
func New(cfg config.Summary, endpoint Endpoint, log logger.Logger) (Summarizer, error) {
	splitter, err := NewSplitter(cfg.ChunkSize, cfg.Overlap())
	if err != nil {
		return nil, fmt.Errorf("configure splitter: %w", err)
	}

	opts := DefaultCallerOptions()
	if cfg.MaxAttempts > 0 {
		opts.MaxAttempts = cfg.MaxAttempts
	}
	caller := NewCaller(endpoint, log, opts)

	return &implSummarizer{
		cfg:      cfg,
		splitter: splitter,
		chain:    NewNoteChain(caller, log),
		logger:   log,
	}, nil
}

// newWithOptions is the test seam: it lets tests pass fast caller options.
func newWithOptions(cfg config.Summary, endpoint Endpoint, log logger.Logger, opts CallerOptions) (Summarizer, error) {
	s, err := New(cfg, endpoint, log)
	if err != nil {
		return nil, err
	}
	impl := s.(*implSummarizer)
	impl.chain = NewNoteChain(NewCaller(endpoint, log, opts), log)
	return impl, nil
}
