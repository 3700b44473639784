package config

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// parseLogLevel converts a string log level to slog.Level
func parseLogLevel(level string) slog.Level {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// GetLogLevel returns the log level from LOG_LEVEL, defaulting to INFO.
func GetLogLevel() slog.Level {
	return parseLogLevel(os.Getenv(EnvLogLevel))
}

// NewLogger creates a text logger on output at the given level. The CLI
// passes stderr so log lines never mix with command output.
func NewLogger(output io.Writer, level slog.Level) *slog.Logger {
	if output == nil {
		output = os.Stderr
	}
	return slog.New(slog.NewTextHandler(output, &slog.HandlerOptions{Level: level}))
}

// NewTestLogger creates a logger for tests. An empty level falls back to
// LOG_LEVEL.
func NewTestLogger(output io.Writer, level string) *slog.Logger {
	logLevel := GetLogLevel()
	if level != "" {
		logLevel = parseLogLevel(level)
	}
	return NewLogger(output, logLevel)
}
