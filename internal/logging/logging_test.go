package logging_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bjaus/nanofmt/internal/logging"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		input string
		want  logging.Level
	}{
		"debug":   {input: "debug", want: logging.LevelDebug},
		"info":    {input: "INFO", want: logging.LevelInfo},
		"warn":    {input: "warn", want: logging.LevelWarn},
		"warning": {input: "Warning", want: logging.LevelWarn},
		"error":   {input: "error", want: logging.LevelError},
		"unknown": {input: "loud", want: logging.LevelWarn},
		"empty":   {input: "", want: logging.LevelWarn},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, logging.ParseLevel(tt.input))
		})
	}
}

func TestParseFormat(t *testing.T) {
	t.Parallel()
	assert.Equal(t, logging.FormatJSON, logging.ParseFormat("JSON"))
	assert.Equal(t, logging.FormatText, logging.ParseFormat("text"))
	assert.Equal(t, logging.FormatText, logging.ParseFormat("xml"))
}

func TestFromEnv(t *testing.T) {
	t.Parallel()
	env := map[string]string{
		logging.EnvLevel:  "debug",
		logging.EnvFormat: "json",
	}
	cfg := logging.FromEnv(func(k string) string { return env[k] })
	assert.Equal(t, logging.LevelDebug, cfg.Level)
	assert.Equal(t, logging.FormatJSON, cfg.Format)

	cfg = logging.FromEnv(func(string) string { return "" })
	assert.Equal(t, logging.DefaultConfig().Level, cfg.Level)
	assert.Equal(t, logging.FormatText, cfg.Format)
}

func TestNew(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		format logging.Format
		want   string
	}{
		"text": {format: logging.FormatText, want: "msg=hello"},
		"json": {format: logging.FormatJSON, want: `"msg":"hello"`},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			log := logging.New(logging.Config{Level: logging.LevelInfo, Format: tt.format, Output: &buf})
			log.Info("hello")
			log.Debug("hidden")
			assert.Contains(t, buf.String(), tt.want)
			assert.NotContains(t, buf.String(), "hidden")
		})
	}
}

func TestNop(t *testing.T) {
	t.Parallel()
	assert.NotPanics(t, func() { logging.Nop().Error("dropped") })
}
