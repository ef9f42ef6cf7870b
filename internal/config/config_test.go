package config

import (
	"os"
	"testing"
)

func intPtr(v int) *int { return &v }

func validConfig() Config {
	return Config{
		Whisper: Whisper{
			BinaryPath: "./whisper",
			ModelPath:  "models/ggml-base.bin",
			Language:   "en",
		},
		Paths: Paths{
			Input:  "data/recordings",
			Output: "data/recordings",
		},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:   "valid config",
			mutate: func(c *Config) {},
		},
		{
			name:    "missing binary path",
			mutate:  func(c *Config) { c.Whisper.BinaryPath = "" },
			wantErr: true,
		},
		{
			name:    "missing model path",
			mutate:  func(c *Config) { c.Whisper.ModelPath = "" },
			wantErr: true,
		},
		{
			name: "overlap equal to chunk size",
			mutate: func(c *Config) {
				c.Summary.ChunkSize = 100
				c.Summary.ChunkOverlap = intPtr(100)
			},
			wantErr: true,
		},
		{
			name: "overlap larger than chunk size",
			mutate: func(c *Config) {
				c.Summary.ChunkSize = 100
				c.Summary.ChunkOverlap = intPtr(200)
			},
			wantErr: true,
		},
		{
			name:   "small chunk size with overlap unset",
			mutate: func(c *Config) { c.Summary.ChunkSize = 100 },
		},
		{
			name: "explicit zero overlap",
			mutate: func(c *Config) {
				c.Summary.ChunkSize = 100
				c.Summary.ChunkOverlap = intPtr(0)
			},
		},
		{
			name:    "negative sample rate",
			mutate:  func(c *Config) { c.Capture.SampleRate = -1 },
			wantErr: true,
		},
		{
			name:    "negative window",
			mutate:  func(c *Config) { c.Capture.WindowSeconds = -2 },
			wantErr: true,
		},
		{
			name:    "negative watch concurrency",
			mutate:  func(c *Config) { c.Watch.MaxConcurrent = -1 },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateDefaults(t *testing.T) {
	cfg := validConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	if cfg.Summary.ChunkSize != 2000 {
		t.Errorf("ChunkSize = %d, want 2000", cfg.Summary.ChunkSize)
	}
	if cfg.Summary.Overlap() != 150 {
		t.Errorf("Overlap() = %d, want 150", cfg.Summary.Overlap())
	}
	if cfg.Summary.MaxAttempts != 10 {
		t.Errorf("MaxAttempts = %d, want 10", cfg.Summary.MaxAttempts)
	}
	if cfg.Capture.SampleRate != 16000 {
		t.Errorf("SampleRate = %d, want 16000", cfg.Capture.SampleRate)
	}
	if cfg.Capture.WindowSeconds != 3 {
		t.Errorf("WindowSeconds = %v, want 3", cfg.Capture.WindowSeconds)
	}
	if cfg.Gemini.Model != "gemini-2.5-flash" {
		t.Errorf("Model = %q, want gemini-2.5-flash", cfg.Gemini.Model)
	}
	if cfg.Watch.MaxConcurrent != 2 {
		t.Errorf("MaxConcurrent = %d, want 2", cfg.Watch.MaxConcurrent)
	}
}

func TestValidateOverlapHandling(t *testing.T) {
	t.Run("unset overlap scales below small chunk size", func(t *testing.T) {
		cfg := validConfig()
		cfg.Summary.ChunkSize = 100
		if err := cfg.Validate(); err != nil {
			t.Fatalf("Validate() error = %v", err)
		}
		if got := cfg.Summary.Overlap(); got != 10 {
			t.Errorf("Overlap() = %d, want 10", got)
		}
	})

	t.Run("explicit zero overlap is kept", func(t *testing.T) {
		cfg := validConfig()
		cfg.Summary.ChunkOverlap = intPtr(0)
		if err := cfg.Validate(); err != nil {
			t.Fatalf("Validate() error = %v", err)
		}
		if got := cfg.Summary.Overlap(); got != 0 {
			t.Errorf("Overlap() = %d, want 0", got)
		}
	})
}

func TestLoad(t *testing.T) {
	tmpfile, err := os.CreateTemp("", "config-*.yaml")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(tmpfile.Name())

	content := `
whisper:
  binary_path: "./whisper"
  model_path: "models/ggml-base.bin"
  language: "en"

paths:
  input: "data/recordings"
  output: "data/recordings"

logging:
  level: "debug"

summary:
  chunk_size: 1500
  chunk_overlap: 0

watch:
  max_concurrent: 3
`

	if _, err := tmpfile.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(tmpfile.Name())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Whisper.ModelPath != "models/ggml-base.bin" {
		t.Errorf("ModelPath = %q", cfg.Whisper.ModelPath)
	}
	if cfg.Summary.ChunkSize != 1500 {
		t.Errorf("ChunkSize = %d, want 1500", cfg.Summary.ChunkSize)
	}
	if cfg.Summary.Overlap() != 0 {
		t.Errorf("Overlap() = %d, want explicit 0 from file", cfg.Summary.Overlap())
	}
	if cfg.Watch.MaxConcurrent != 3 {
		t.Errorf("MaxConcurrent = %d, want 3", cfg.Watch.MaxConcurrent)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Level = %q, want debug", cfg.Logging.Level)
	}
}

func TestLoadInvalidFile(t *testing.T) {
	if _, err := Load("nonexistent.yaml"); err == nil {
		t.Error("Load() should return error for nonexistent file")
	}
}
