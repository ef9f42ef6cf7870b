package realtime

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/tharindu-dev/noteflow/internal/config"
	"github.com/tharindu-dev/noteflow/internal/logger"
	"github.com/tharindu-dev/noteflow/internal/recognizer"
)

// pollInterval bounds how long Stop can wait for the collection loop to
// notice cancellation.
const pollInterval = 100 * time.Millisecond

// Session is the consumer half of the realtime pipeline: it collects one
// window's worth of audio frames from the queue, runs a blocking
// recognition call over it, prints the result, and repeats until stopped.
type Session struct {
	cfg        config.Capture
	queue      *FrameQueue
	recognizer recognizer.Recognizer
	logger     logger.Logger
	tempDir    string

	cancel      context.CancelFunc
	wg          sync.WaitGroup
	lastDropped uint64
}

// NewSession creates a Session draining the given queue.
func NewSession(cfg config.Capture, queue *FrameQueue, rec recognizer.Recognizer, log logger.Logger, tempDir string) *Session {
	return &Session{
		cfg:        cfg,
		queue:      queue,
		recognizer: rec,
		logger:     log,
		tempDir:    tempDir,
	}
}

// Start launches the consumer goroutine.
func (s *Session) Start(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(ctx)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.run(ctx)
	}()
}

// Stop requests shutdown and joins the consumer goroutine. Audio
// collected before the stop is flushed through the recognizer first, so
// the tail of the recording is not lost.
func (s *Session) Stop() {
	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()
}

func (s *Session) run(ctx context.Context) {
	windowBytes := int(s.cfg.WindowSeconds*float64(s.cfg.SampleRate)) * 2 * s.cfg.Channels

	for {
		window, ok := s.collectWindow(ctx, windowBytes)
		if !ok {
			s.flush(ctx, window)
			return
		}
		if len(window) == 0 {
			continue
		}

		if err := s.transcribeWindow(ctx, window); err != nil {
			if ctx.Err() != nil {
				return
			}
			s.logger.Error(ctx, "Window transcription failed: %v", err)
		}

		if d := s.queue.Dropped(); d > s.lastDropped {
			s.logger.Warn(ctx, "Consumer lagging: %d frames dropped so far", d)
			s.lastDropped = d
		}
	}
}

// collectWindow accumulates frames until windowBytes is reached.
// Cancellation is checked every poll interval; a mid-window stop returns
// promptly with ok=false and whatever was collected so far.
func (s *Session) collectWindow(ctx context.Context, windowBytes int) ([]byte, bool) {
	var window []byte

	for len(window) < windowBytes {
		if ctx.Err() != nil {
			return window, false
		}

		frames := s.queue.Drain(0)
		if len(frames) == 0 {
			select {
			case <-ctx.Done():
				return window, false
			case <-time.After(pollInterval):
			}
			continue
		}

		for _, f := range frames {
			window = append(window, f...)
		}
	}

	return window, true
}

// flush transcribes the partial window plus any frames still queued at
// shutdown. It runs on a non-cancelled context so the final recognition
// call is not aborted by the stop itself.
func (s *Session) flush(ctx context.Context, window []byte) {
	for _, f := range s.queue.Drain(0) {
		window = append(window, f...)
	}
	if len(window) == 0 {
		return
	}

	flushCtx := context.WithoutCancel(ctx)
	if err := s.transcribeWindow(flushCtx, window); err != nil {
		s.logger.Error(flushCtx, "Final window transcription failed: %v", err)
	}
}

func (s *Session) transcribeWindow(ctx context.Context, window []byte) error {
	f, err := os.CreateTemp(s.tempDir, "window-*.wav")
	if err != nil {
		return fmt.Errorf("create temp wav: %w", err)
	}
	path := f.Name()
	f.Close()
	defer os.Remove(path)

	if err := writeWAV(path, window, s.cfg.SampleRate, s.cfg.Channels); err != nil {
		return err
	}

	segments, err := s.recognizer.Transcribe(ctx, path)
	if err != nil {
		return fmt.Errorf("recognize window: %w", err)
	}

	for _, seg := range segments {
		s.logger.Info(ctx, "Transcription: %s", seg.Text)
	}
	return nil
}
