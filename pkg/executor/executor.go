package executor

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"
)

type implExecutor struct{}

// New creates a new Executor instance.
func New() Executor {
	return &implExecutor{}
}

// Execute runs an external command with the given arguments.
func (e *implExecutor) Execute(ctx context.Context, name string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, name, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		// Include stderr in the error message for debugging
		stderrStr := strings.TrimSpace(stderr.String())
		if stderrStr != "" {
			return "", fmt.Errorf("command '%s' failed: %w\nstderr: %s", name, err, stderrStr)
		}
		return "", fmt.Errorf("command '%s' failed: %w", name, err)
	}

	return stdout.String(), nil
}

type implStream struct {
	cmd    *exec.Cmd
	stdout io.ReadCloser
}

func (s *implStream) Read(p []byte) (int, error) {
	return s.stdout.Read(p)
}

func (s *implStream) Close() error {
	s.stdout.Close()
	if s.cmd.Process != nil {
		s.cmd.Process.Kill()
	}
	// Wait always returns an error after Kill; the caller already decided
	// to tear the process down, so it is not surfaced.
	s.cmd.Wait()
	return nil
}

// Stream starts a command and hands back its stdout as a pipe.
func (e *implExecutor) Stream(ctx context.Context, name string, args ...string) (Stream, error) {
	cmd := exec.CommandContext(ctx, name, args...)

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("command '%s' stdout pipe: %w", name, err)
	}

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("command '%s' start: %w", name, err)
	}

	return &implStream{cmd: cmd, stdout: stdout}, nil
}
