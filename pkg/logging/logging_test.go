package logging

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogLevel_String(t *testing.T) {
	tests := []struct {
		level    LogLevel
		expected string
	}{
		{LevelDebug, "DEBUG"},
		{LevelInfo, "INFO"},
		{LevelWarn, "WARN"},
		{LevelError, "ERROR"},
		{LogLevel(999), "UNKNOWN"},
	}

	for _, test := range tests {
		assert.Equal(t, test.expected, test.level.String())
	}
}

func TestLogLevel_SlogLevel(t *testing.T) {
	tests := []struct {
		level    LogLevel
		expected slog.Level
	}{
		{LevelDebug, slog.LevelDebug},
		{LevelInfo, slog.LevelInfo},
		{LevelWarn, slog.LevelWarn},
		{LevelError, slog.LevelError},
		{LogLevel(999), slog.LevelInfo},
	}

	for _, test := range tests {
		assert.Equal(t, test.expected, test.level.SlogLevel())
	}
}

func TestParseLevel(t *testing.T) {
	level, err := ParseLevel("Debug")
	require.NoError(t, err)
	assert.Equal(t, LevelDebug, level)

	level, err = ParseLevel("warning")
	require.NoError(t, err)
	assert.Equal(t, LevelWarn, level)

	_, err = ParseLevel("loud")
	assert.Error(t, err)
}

func TestInitForCLI(t *testing.T) {
	var buf bytes.Buffer
	InitForCLI(LevelInfo, &buf)

	Info("test-subsystem", "test message %d", 7)

	output := buf.String()
	assert.Contains(t, output, "test message 7")
	assert.Contains(t, output, "subsystem=test-subsystem")
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	InitForCLI(LevelWarn, &buf)

	Debug("Instrument", "hidden debug")
	Info("Instrument", "hidden info")
	Warn("Instrument", "visible warning")

	output := buf.String()
	assert.NotContains(t, output, "hidden")
	assert.Contains(t, output, "visible warning")
	assert.True(t, Enabled(LevelError))
	assert.False(t, Enabled(LevelDebug))
}

func TestErrorAttribute(t *testing.T) {
	var buf bytes.Buffer
	InitForCLI(LevelDebug, &buf)

	Error("Mcrun", errors.New("exit status 1"), "mcrun failed")

	output := buf.String()
	assert.Contains(t, output, "level=ERROR")
	assert.Contains(t, output, "mcrun failed")
	assert.Contains(t, output, `error="exit status 1"`)
}
