package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/tharindu-dev/noteflow/internal/config"
	"github.com/tharindu-dev/noteflow/internal/logger"
	"github.com/tharindu-dev/noteflow/internal/summarize"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	transcriptPath := flag.String("file", "", "summarize a single transcript file")
	dir := flag.String("dir", "", "folder of transcripts (defaults to paths.input)")
	flag.Parse()

	// Optional .env for local runs; the variable itself is what matters.
	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	cfg.Gemini.APIKey = os.Getenv("GEMINI_API_KEY")
	if cfg.Gemini.APIKey == "" {
		fmt.Fprintln(os.Stderr, "GEMINI_API_KEY is not set")
		os.Exit(1)
	}

	log := logger.New(cfg.Logging.Level)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Info(ctx, "Shutdown signal received")
		cancel()
	}()

	endpoint, err := summarize.NewGemini(ctx, cfg.Gemini)
	if err != nil {
		log.Error(ctx, "Failed to create model endpoint: %v", err)
		os.Exit(1)
	}

	s, err := summarize.New(cfg.Summary, endpoint, log)
	if err != nil {
		log.Error(ctx, "Failed to create summarizer: %v", err)
		os.Exit(1)
	}

	if *transcriptPath != "" {
		if err := s.Summarize(ctx, *transcriptPath); err != nil {
			log.Error(ctx, "Summarization failed: %v", err)
			os.Exit(1)
		}
		log.Info(ctx, "Process completed successfully!")
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

	if err := s.SummarizeAll(ctx, inputDir); err != nil {
		log.Error(ctx, "Batch summarization failed: %v", err)
		os.Exit(1)
	}
}
