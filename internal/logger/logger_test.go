package logger

import (
	"bytes"
	"os"
	"testing"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureOutput(t *testing.T, level LogLevel, f func()) string {
	t.Helper()

	var buf bytes.Buffer
	previous := SetOutput(&buf)
	originalLevel := Log.level
	pterm.DisableColor()
	pterm.EnableDebugMessages()
	Log.level = level

	t.Cleanup(func() {
		SetOutput(previous)
		Log.level = originalLevel
		pterm.EnableColor()
		pterm.DisableDebugMessages()
	})

	f()

	return buf.String()
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name        string
		level       string
		expectLevel LogLevel
		expectError bool
	}{
		{"trace", "trace", LevelTrace, false},
		{"debug", "debug", LevelDebug, false},
		{"info", "info", LevelInfo, false},
		{"warn", "warn", LevelWarn, false},
		{"warning", "warning", LevelWarn, false},
		{"error", "error", LevelError, false},
		{"fatal", "fatal", LevelFatal, false},
		{"uppercase", "INFO", LevelInfo, false},
		{"padded", "  debug ", LevelDebug, false},
		{"invalid", "verbose", LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			level, err := ParseLevel(tt.level)
			if tt.expectError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "invalid log level")

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expectLevel, level)
		})
	}
}

func TestSetLevel(t *testing.T) {
	original := Log.level
	t.Cleanup(func() {
		Log.level = original
		pterm.DisableDebugMessages()
	})

	require.NoError(t, SetLevel("debug"))
	assert.Equal(t, LevelDebug, Log.GetLevel())
	assert.True(t, pterm.PrintDebugMessages)

	require.NoError(t, SetLevel("warn"))
	assert.Equal(t, LevelWarn, Log.GetLevel())
	assert.False(t, pterm.PrintDebugMessages)

	err := SetLevel("nope")
	require.Error(t, err)
	assert.Equal(t, LevelWarn, Log.GetLevel())
}

func TestLogLevelString(t *testing.T) {
	assert.Equal(t, "debug", LevelDebug.String())
	assert.Equal(t, "fatal", LevelFatal.String())
	assert.Equal(t, "level(42)", LogLevel(42).String())
}

func TestLoggerLevels(t *testing.T) {
	t.Run("trace_level_logs_everything", func(t *testing.T) {
		output := captureOutput(t, LevelTrace, func() {
			Log.Tracef("trace %s", "formatted")
			Log.Debug("debug message")
		})
		assert.Contains(t, output, "trace formatted")
		assert.Contains(t, output, "debug message")
	})

	t.Run("info_level_hides_debug", func(t *testing.T) {
		output := captureOutput(t, LevelInfo, func() {
			Log.Debugf("hidden %s", "debug")
			Log.Infof("info %s", "formatted")
		})
		assert.NotContains(t, output, "hidden debug")
		assert.Contains(t, output, "info formatted")
	})

	t.Run("higher_level_blocks_lower_messages", func(t *testing.T) {
		output := captureOutput(t, LevelError, func() {
			Log.Info("should not appear")
			Log.Warnf("should not appear either")
			Log.Errorf("Ocorreu um erro: %v", "boom")
		})
		assert.NotContains(t, output, "should not appear")
		assert.Contains(t, output, "Ocorreu um erro: boom")
	})
}

func TestInitPterm(t *testing.T) {
	original := pterm.Error.Writer
	t.Cleanup(func() { SetOutput(original) })

	InitPterm()

	assert.Equal(t, os.Stderr, pterm.Info.Writer)
	assert.Equal(t, os.Stderr, pterm.Success.Writer)
	assert.Equal(t, os.Stderr, pterm.Warning.Writer)
	assert.Equal(t, os.Stderr, pterm.Error.Writer)
	assert.Equal(t, os.Stderr, pterm.Debug.Writer)
}

func TestLogLevelConstants(t *testing.T) {
	assert.Less(t, int(LevelTrace), int(LevelDebug))
	assert.Less(t, int(LevelDebug), int(LevelInfo))
	assert.Less(t, int(LevelInfo), int(LevelWarn))
	assert.Less(t, int(LevelWarn), int(LevelError))
	assert.Less(t, int(LevelError), int(LevelFatal))
}
