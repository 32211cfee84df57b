// ABOUTME: Leveled logging wrapper around slog for client diagnostics
// ABOUTME: Global level via SetLevel; writes to stderr so callers' stdout stays clean

package log

import (
	"io"
	"log/slog"
	"os"
	"sync/atomic"
)

var (
	lvl    = new(slog.LevelVar)
	logger atomic.Pointer[slog.Logger]
)

func init() {
	logger.Store(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})))
}

// SetLevel sets the global log level. The default is slog.LevelInfo.
func SetLevel(l slog.Level) {
	lvl.Set(l)
}

// Level returns the current log level.
func Level() slog.Level {
	return lvl.Level()
}

// SetOutput redirects log output, mainly for tests.
func SetOutput(w io.Writer) {
	logger.Store(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})))
}

// Debug logs a debug message with structured key/value pairs.
func Debug(msg string, args ...any) {
	logger.Load().Debug(msg, args...)
}

// Info logs an info message with structured key/value pairs.
func Info(msg string, args ...any) {
	logger.Load().Info(msg, args...)
}

// Warn logs a warning message with structured key/value pairs.
func Warn(msg string, args ...any) {
	logger.Load().Warn(msg, args...)
}

// Error logs an error message with structured key/value pairs.
func Error(msg string, args ...any) {
	logger.Load().Error(msg, args...)
}
