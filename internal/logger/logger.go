package logger

import (
	"context"
	"log"
	"os"
	"strings"
)

type level int

const (
	levelDebug level = iota
	levelInfo
	levelWarn
	levelError
)

func parseLevel(s string) level {
	switch strings.ToLower(s) {
	case "debug":
		return levelDebug
	case "warn":
		return levelWarn
	case "error":
		return levelError
	default:
		return levelInfo
	}
}

type implLogger struct {
	logger *log.Logger
	min    level
}

// New creates a Logger that writes timestamped lines to stdout, filtered
// by the given minimum level ("debug", "info", "warn", "error").
// Unknown levels fall back to info.
func New(minLevel string) Logger {
	return &implLogger{
		logger: log.New(os.Stdout, "", log.LstdFlags),
		min:    parseLevel(minLevel),
	}
}

func (l *implLogger) emit(lv level, tag, msg string, args []interface{}) {
	if lv < l.min {
		return
	}
	l.logger.Printf(tag+" "+msg, args...)
}

func (l *implLogger) Debug(ctx context.Context, msg string, args ...interface{}) {
	l.emit(levelDebug, "[DEBUG]", msg, args)
}

func (l *implLogger) Info(ctx context.Context, msg string, args ...interface{}) {
	l.emit(levelInfo, "[INFO]", msg, args)
}

func (l *implLogger) Warn(ctx context.Context, msg string, args ...interface{}) {
	l.emit(levelWarn, "[WARN]", msg, args)
}

func (l *implLogger) Error(ctx context.Context, msg string, args ...interface{}) {
	l.emit(levelError, "[ERROR]", msg, args)
}
