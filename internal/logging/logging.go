// Package logging provides structured logging for mbed-vscode-tools.
//
// Built on log/slog. User-facing progress goes to stdout through the cmd
// package; everything here (diagnostics, macro override notices) goes to
// stderr so it never mixes with generated file contents.
//
// Configuration via environment variables:
//   - MBED_VSCODE_LOG_LEVEL: DEBUG, INFO, WARN, ERROR (default: WARN)
//   - MBED_VSCODE_LOG_FORMAT: text, json (default: text)
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

// Environment variable names for logging configuration.
const (
	LevelEnvVar  = "MBED_VSCODE_LOG_LEVEL"
	FormatEnvVar = "MBED_VSCODE_LOG_FORMAT"
)

// DefaultLevel is used when the environment specifies nothing valid.
const DefaultLevel = slog.LevelWarn

// Logger is the logging interface used across the tool.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

type logger struct {
	slog *slog.Logger
}

func (l *logger) Debug(msg string, args ...any) { l.slog.Debug(msg, args...) }
func (l *logger) Info(msg string, args ...any)  { l.slog.Info(msg, args...) }
func (l *logger) Warn(msg string, args ...any)  { l.slog.Warn(msg, args...) }
func (l *logger) Error(msg string, args ...any) { l.slog.Error(msg, args...) }

var (
	defaultLogger Logger
	once          sync.Once
)

// Default returns the process-wide logger, initialized once from the
// environment.
func Default() Logger {
	once.Do(func() {
		defaultLogger = New(os.Stderr, ParseLevel(os.Getenv(LevelEnvVar)), os.Getenv(FormatEnvVar))
	})
	return defaultLogger
}

// New creates a Logger writing to w. Format is "text" or "json"; anything
// else falls back to text.
func New(w io.Writer, level slog.Level, format string) Logger {
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if strings.ToLower(format) == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return &logger{slog: slog.New(handler)}
}

// ParseLevel parses a log level string (case-insensitive). Empty or invalid
// values map to DefaultLevel.
func ParseLevel(s string) slog.Level {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return DefaultLevel
	}
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Warn(string, ...any)  {}
func (nopLogger) Error(string, ...any) {}

// Nop returns a logger that discards everything. Used in tests.
func Nop() Logger {
	return nopLogger{}
}
