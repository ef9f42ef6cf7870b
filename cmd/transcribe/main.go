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
	"github.com/tharindu-dev/noteflow/internal/recognizer"
	"github.com/tharindu-dev/noteflow/internal/transcriber"
	"github.com/tharindu-dev/noteflow/internal/watcher"
	"github.com/tharindu-dev/noteflow/pkg/executor"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	videoPath := flag.String("video", "", "transcribe a single video file")
	dir := flag.String("dir", "", "folder to transcribe (defaults to paths.input)")
	watch := flag.Bool("watch", false, "keep watching the folder for new videos")
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
	tr := transcriber.New(rec, exec, log)

	if *videoPath != "" {
		if err := tr.TranscribeOne(ctx, *videoPath); err != nil {
			log.Error(ctx, "Transcription failed: %v", err)
			os.Exit(1)
		}
		return
	}

	inputDir := *dir
	if inputDir == "" {
		inputDir = cfg.Paths.Input
	}
	if inputDir == "" {
		fmt.Fprintln(os.Stderr, "No input folder: set paths.input or pass -dir")
		os.Exit(1)
	}

	if !*watch {
		if err := tr.TranscribeFolder(ctx, inputDir); err != nil {
			log.Error(ctx, "Batch transcription failed: %v", err)
			os.Exit(1)
		}
		return
	}

	runWatch(ctx, cfg, tr, log, inputDir)
}

// runWatch monitors inputDir until interrupted, transcribing each new
// video as it appears.
func runWatch(ctx context.Context, cfg *config.Config, tr transcriber.Transcriber, log logger.Logger, inputDir string) {
	handler := func(ctx context.Context, videoPath string) error {
		_, err := tr.TranscribeVideo(ctx, videoPath)
		return err
	}

	w, err := watcher.New(inputDir, handler, log, cfg.Watch.MaxConcurrent)
	if err != nil {
		log.Error(ctx, "Failed to create watcher: %v", err)
		os.Exit(1)
	}
	defer w.Stop()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		if err := w.Start(ctx); err != nil && err != context.Canceled {
			errChan <- err
		}
	}()

	log.Info(ctx, "Watching %s for new videos. Press Ctrl+C to stop", inputDir)

	select {
	case <-sigChan:
		log.Info(ctx, "Shutdown signal received")
	case err := <-errChan:
		log.Error(ctx, "Watcher error: %v", err)
	}

	cancel()
	log.Info(ctx, "Transcriber stopped")
}
