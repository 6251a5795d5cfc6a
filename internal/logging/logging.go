// Package logging configures the structured logger used by the nanofmt
// command.
//
// The library itself never logs. The command logs to stderr so formatted
// output on stdout stays clean.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Environment variables that provide defaults for the command's flags.
const (
	EnvLevel  = "NANOFMT_LOG_LEVEL"
	EnvFormat = "NANOFMT_LOG_FORMAT"
)

// Level is a log level.
type Level = slog.Level

// Log levels.
const (
	LevelDebug = slog.LevelDebug
	LevelInfo  = slog.LevelInfo
	LevelWarn  = slog.LevelWarn
	LevelError = slog.LevelError
)

// Format is a log output format.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// Config holds logging configuration.
type Config struct {
	Level  Level
	Format Format

	// Output defaults to os.Stderr.
	Output io.Writer
}

// DefaultConfig logs warnings and errors as text.
func DefaultConfig() Config {
	return Config{
		Level:  LevelWarn,
		Format: FormatText,
		Output: os.Stderr,
	}
}

// FromEnv returns DefaultConfig with level and format overridden by the
// environment variables that are set.
func FromEnv(getenv func(string) string) Config {
	cfg := DefaultConfig()
	if s := getenv(EnvLevel); s != "" {
		cfg.Level = ParseLevel(s)
	}
	if s := getenv(EnvFormat); s != "" {
		cfg.Format = ParseFormat(s)
	}
	return cfg
}

// New returns a logger for cfg.
func New(cfg Config) *slog.Logger {
	if cfg.Output == nil {
		cfg.Output = os.Stderr
	}
	opts := &slog.HandlerOptions{Level: cfg.Level}

	var handler slog.Handler
	switch cfg.Format {
	case FormatJSON:
		handler = slog.NewJSONHandler(cfg.Output, opts)
	default:
		handler = slog.NewTextHandler(cfg.Output, opts)
	}
	return slog.New(handler)
}

// Nop returns a logger that discards everything.
func Nop() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// ParseLevel parses debug, info, warn (or warning) and error in any case.
// Anything else is LevelWarn.
func ParseLevel(s string) Level {
	switch strings.ToLower(s) {
	case "debug":
		return LevelDebug
	case "info":
		return LevelInfo
	case "error":
		return LevelError
	default:
		return LevelWarn
	}
}

// ParseFormat parses text and json in any case. Anything else is FormatText.
func ParseFormat(s string) Format {
	if strings.EqualFold(s, string(FormatJSON)) {
		return FormatJSON
	}
	return FormatText
}
