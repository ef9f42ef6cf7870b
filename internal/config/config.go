package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Whisper Whisper `yaml:"whisper"`
	Paths   Paths   `yaml:"paths"`
	Logging Logging `yaml:"logging"`
	Gemini  Gemini  `yaml:"gemini"`
	Summary Summary `yaml:"summary"`
	Capture Capture `yaml:"capture"`
	Watch   Watch   `yaml:"watch"`
}

type Whisper struct {
	BinaryPath string `yaml:"binary_path"`
	ModelPath  string `yaml:"model_path"`
	Language   string `yaml:"language"`
	Prompt     string `yaml:"prompt"`
	Threads    int    `yaml:"threads"`
}

type Paths struct {
	Input  string `yaml:"input"`
	Output string `yaml:"output"`
	Temp   string `yaml:"temp"`
}

type Logging struct {
	Level string `yaml:"level"`
}

type Gemini struct {
	Model string `yaml:"model"`
	// APIKey is never read from YAML; it is injected from the environment
	// at startup so the file can be committed without secrets.
	APIKey string `yaml:"-"`
}

type Summary struct {
	ChunkSize int `yaml:"chunk_size"`
	// ChunkOverlap is a pointer so an explicit zero in the file is
	// distinguishable from an absent key. Zero overlap is legal.
	ChunkOverlap *int `yaml:"chunk_overlap"`
	MaxAttempts  int  `yaml:"max_attempts"`
	KeepText     bool `yaml:"keep_text"`
	Docx         bool `yaml:"docx"`
}

// Overlap returns the chunk overlap after Validate has filled defaults.
func (s Summary) Overlap() int {
	if s.ChunkOverlap == nil {
		return 0
	}
	return *s.ChunkOverlap
}

type Watch struct {
	MaxConcurrent int `yaml:"max_concurrent"`
}

type Capture struct {
	SampleRate    int     `yaml:"sample_rate"`
	Channels      int     `yaml:"channels"`
	FrameSamples  int     `yaml:"frame_samples"`
	WindowSeconds float64 `yaml:"window_seconds"`
	QueueCapacity int     `yaml:"queue_capacity"`
}

// Load reads and validates a YAML config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

// Validate fills defaults and rejects illegal values. Illegal chunking
// parameters are fatal here rather than silently corrected downstream.
func (c *Config) Validate() error {
	if c.Whisper.BinaryPath == "" {
		return fmt.Errorf("whisper.binary_path is required")
	}
	if c.Whisper.ModelPath == "" {
		return fmt.Errorf("whisper.model_path is required")
	}
	if c.Whisper.Language == "" {
		c.Whisper.Language = "en"
	}
	if c.Whisper.Threads == 0 {
		c.Whisper.Threads = 4
	}

	if c.Paths.Temp == "" {
		c.Paths.Temp = os.TempDir()
	}

	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}

	if c.Gemini.Model == "" {
		c.Gemini.Model = "gemini-2.5-flash"
	}

	if c.Summary.ChunkSize == 0 {
		c.Summary.ChunkSize = 2000
	}
	if c.Summary.ChunkOverlap == nil {
		// Default applies only when the key is absent. Scale it down
		// for small chunk sizes so the default never makes a legal
		// chunk_size fatal.
		overlap := 150
		if overlap >= c.Summary.ChunkSize {
			overlap = c.Summary.ChunkSize / 10
		}
		c.Summary.ChunkOverlap = &overlap
	}
	if c.Summary.ChunkSize < 0 || *c.Summary.ChunkOverlap < 0 {
		return fmt.Errorf("summary.chunk_size and summary.chunk_overlap must not be negative")
	}
	if *c.Summary.ChunkOverlap >= c.Summary.ChunkSize {
		return fmt.Errorf("summary.chunk_overlap (%d) must be smaller than summary.chunk_size (%d)",
			*c.Summary.ChunkOverlap, c.Summary.ChunkSize)
	}
	if c.Summary.MaxAttempts == 0 {
		c.Summary.MaxAttempts = 10
	}

	if c.Capture.SampleRate == 0 {
		c.Capture.SampleRate = 16000
	}
	if c.Capture.SampleRate < 0 {
		return fmt.Errorf("capture.sample_rate must be positive")
	}
	if c.Capture.Channels == 0 {
		c.Capture.Channels = 1
	}
	if c.Capture.FrameSamples == 0 {
		c.Capture.FrameSamples = 4096
	}
	if c.Capture.WindowSeconds == 0 {
		c.Capture.WindowSeconds = 3
	}
	if c.Capture.WindowSeconds < 0 {
		return fmt.Errorf("capture.window_seconds must be positive")
	}
	if c.Capture.QueueCapacity == 0 {
		c.Capture.QueueCapacity = 256
	}

	if c.Watch.MaxConcurrent == 0 {
		c.Watch.MaxConcurrent = 2
	}
	if c.Watch.MaxConcurrent < 0 {
		return fmt.Errorf("watch.max_concurrent must be positive")
	}

	return nil
}
