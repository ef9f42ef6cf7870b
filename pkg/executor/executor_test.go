package executor

import (
	"context"
	"io"
	"strings"
	"testing"
)

func TestExecute(t *testing.T) {
	e := New()

	out, err := e.Execute(context.Background(), "echo", "hello")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if strings.TrimSpace(out) != "hello" {
		t.Errorf("Execute() = %q, want hello", out)
	}
}

func TestExecuteFailure(t *testing.T) {
	e := New()

	_, err := e.Execute(context.Background(), "false")
	if err == nil {
		t.Error("Execute() should fail for a failing command")
	}
}

func TestExecuteMissingBinary(t *testing.T) {
	e := New()

	_, err := e.Execute(context.Background(), "definitely-not-a-binary-xyz")
	if err == nil {
		t.Error("Execute() should fail for a missing binary")
	}
}

func TestStream(t *testing.T) {
	e := New()

	s, err := e.Stream(context.Background(), "echo", "streamed")
	if err != nil {
		t.Fatalf("Stream() error = %v", err)
	}
	defer s.Close()

	data, err := io.ReadAll(s)
	if err != nil {
		t.Fatalf("read stream: %v", err)
	}
	if strings.TrimSpace(string(data)) != "streamed" {
		t.Errorf("stream output = %q, want streamed", data)
	}
}

func TestStreamClose(t *testing.T) {
	e := New()

	// A command that would run forever; Close must kill and reap it.
	s, err := e.Stream(context.Background(), "sleep", "3600")
	if err != nil {
		t.Fatalf("Stream() error = %v", err)
	}
	if err := s.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}
