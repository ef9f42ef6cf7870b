package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/tharindu-dev/noteflow/internal/config"
	"github.com/tharindu-dev/noteflow/internal/logger"
	"github.com/tharindu-dev/noteflow/internal/realtime"
	"github.com/tharindu-dev/noteflow/internal/recognizer"
	"github.com/tharindu-dev/noteflow/pkg/executor"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	ctx := context.Background()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Logging.Level)

	exec := executor.New()
	rec := recognizer.NewWhisper(cfg.Whisper, exec, log)

	queue := realtime.NewFrameQueue(cfg.Capture.QueueCapacity)
	capture := realtime.NewCapture(cfg.Capture, exec, log, queue)
	session := realtime.NewSession(cfg.Capture, queue, rec, log, cfg.Paths.Temp)

	if err := capture.Start(ctx); err != nil {
		log.Error(ctx, "Failed to start capture: %v", err)
		os.Exit(1)
	}

	session.Start(ctx)
	log.Info(ctx, "Recording and transcribing... Press Ctrl+C to stop")

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	// Shutdown order: stop the producer first so the consumer's final
	// flush sees every frame that made it into the queue.
	log.Info(ctx, "Stopping...")
	capture.Stop()
	session.Stop()

	if dropped := queue.Dropped(); dropped > 0 {
		log.Warn(ctx, "%d audio frames were dropped during the session", dropped)
	}
	log.Info(ctx, "Stopped recording and transcribing")
}
