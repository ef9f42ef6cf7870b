package realtime

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"strconv"

	"github.com/tharindu-dev/noteflow/internal/config"
	"github.com/tharindu-dev/noteflow/internal/logger"
	"github.com/tharindu-dev/noteflow/pkg/executor"
)

// Capture reads the default microphone through ffmpeg and pushes
// fixed-size raw PCM frames onto a FrameQueue.
type Capture struct {
	cfg      config.Capture
	executor executor.Executor
	logger   logger.Logger
	queue    *FrameQueue

	stream executor.Stream
	done   chan struct{}
}

// NewCapture creates a capture device feeding the given queue.
func NewCapture(cfg config.Capture, exec executor.Executor, log logger.Logger, queue *FrameQueue) *Capture {
	return &Capture{
		cfg:      cfg,
		executor: exec,
		logger:   log,
		queue:    queue,
	}
}

// captureArgs builds the ffmpeg invocation for the platform's default
// audio input, emitting raw s16le PCM on stdout.
func captureArgs(cfg config.Capture) []string {
	var input []string
	switch runtime.GOOS {
	case "darwin":
		input = []string{"-f", "avfoundation", "-i", ":0"}
	case "windows":
		input = []string{"-f", "dshow", "-i", "audio=default"}
	default:
		input = []string{"-f", "alsa", "-i", "default"}
	}

	return append(input,
		"-ar", strconv.Itoa(cfg.SampleRate),
		"-ac", strconv.Itoa(cfg.Channels),
		"-f", "s16le",
		"-loglevel", "quiet",
		"-",
	)
}

// Start launches ffmpeg and the frame reader goroutine.
func (c *Capture) Start(ctx context.Context) error {
	stream, err := c.executor.Stream(ctx, "ffmpeg", captureArgs(c.cfg)...)
	if err != nil {
		return fmt.Errorf("start capture: %w", err)
	}
	c.stream = stream
	c.done = make(chan struct{})

	frameBytes := c.cfg.FrameSamples * 2 * c.cfg.Channels

	go func() {
		defer close(c.done)
		for {
			frame := make([]byte, frameBytes)
			if _, err := io.ReadFull(stream, frame); err != nil {
				if err != io.EOF && err != io.ErrUnexpectedEOF {
					c.logger.Warn(ctx, "Capture read stopped: %v", err)
				}
				return
			}
			c.queue.Push(frame)
		}
	}()

	c.logger.Info(ctx, "Microphone capture started (%d Hz, %d channel(s), %d samples/frame)",
		c.cfg.SampleRate, c.cfg.Channels, c.cfg.FrameSamples)
	return nil
}

// Stop kills ffmpeg and waits for the reader goroutine to exit.
func (c *Capture) Stop() {
	if c.stream == nil {
		return
	}
	c.stream.Close()
	<-c.done
}
