package observability

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected slog.Level
	}{
		{name: "debug level", input: "debug", expected: slog.LevelDebug},
		{name: "info level", input: "info", expected: slog.LevelInfo},
		{name: "warn level", input: "warn", expected: slog.LevelWarn},
		{name: "warning level", input: "warning", expected: slog.LevelWarn},
		{name: "error level", input: "error", expected: slog.LevelError},
		{name: "uppercase ERROR", input: "ERROR", expected: slog.LevelError},
		{name: "mixed case Info", input: "Info", expected: slog.LevelInfo},
		{name: "empty string defaults to info", input: "", expected: slog.LevelInfo},
		{name: "unknown level defaults to info", input: "xyzzy", expected: slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseLevel(tt.input))
		})
	}
}

func TestInitLogger_JSONWritesToConfiguredOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := InitLogger(LogConfig{Output: &buf, Level: "debug", Format: "json"})
	require.NotNil(t, logger)

	logger.Info("validated", "routing_number", "011000015")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "validated", record["msg"])
	assert.Equal(t, "011000015", record["routing_number"])
}

func TestInitLogger_TextIsDefaultFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := InitLogger(LogConfig{Output: &buf, Level: "info"})

	logger.Info("hello", "key", "value")

	assert.True(t, strings.Contains(buf.String(), "key=value"))
}

func TestInitLogger_LevelFiltersRecords(t *testing.T) {
	var buf bytes.Buffer
	logger := InitLogger(LogConfig{Output: &buf, Level: "error", Format: "json"})

	logger.Info("dropped")
	logger.Warn("dropped")
	assert.Zero(t, buf.Len())

	logger.Error("kept")
	assert.Contains(t, buf.String(), "kept")
}

func TestInitLogger_SetsDefault(t *testing.T) {
	var buf bytes.Buffer
	logger := InitLogger(LogConfig{Output: &buf, Format: "json"})

	assert.Equal(t, logger.Handler(), slog.Default().Handler())
}

func TestNopLogger(t *testing.T) {
	logger := NopLogger()
	require.NotNil(t, logger)
	logger.Error("goes nowhere")
}
