package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelForVerbosity(t *testing.T) {
	tests := []struct {
		name      string
		verbosity int
		wantLevel zerolog.Level
	}{
		{"default warn level", 0, zerolog.WarnLevel},
		{"negative is warn", -1, zerolog.WarnLevel},
		{"info level", 1, zerolog.InfoLevel},
		{"debug level", 2, zerolog.DebugLevel},
		{"trace level", 3, zerolog.TraceLevel},
		{"high verbosity defaults to trace", 5, zerolog.TraceLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantLevel, LevelForVerbosity(tt.verbosity))
		})
	}
}

func TestSetupLogger(t *testing.T) {
	previous := zerolog.GlobalLevel()
	t.Cleanup(func() {
		zerolog.SetGlobalLevel(previous)
		log.Logger = zerolog.New(os.Stderr)
	})

	stateDir := t.TempDir()
	t.Setenv("MMV_STATE_DIR", stateDir)

	var console bytes.Buffer
	SetupLogger(1, &console)

	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())

	logger := GetLogger("test")
	logger.Info().Msg("hello from test")
	logger.Debug().Msg("hidden at info")

	assert.Contains(t, console.String(), "hello from test")
	assert.Contains(t, console.String(), "component=test")
	assert.NotContains(t, console.String(), "hidden at info")

	content, err := os.ReadFile(filepath.Join(stateDir, "mmv.log"))
	require.NoError(t, err)
	assert.Contains(t, string(content), `"message":"hello from test"`)
}

func TestLogOperationStart(t *testing.T) {
	previous := zerolog.GlobalLevel()
	t.Cleanup(func() { zerolog.SetGlobalLevel(previous) })
	zerolog.SetGlobalLevel(zerolog.DebugLevel)

	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	done := LogOperationStart(logger, "rename")
	done()

	assert.Contains(t, buf.String(), "Operation started")
	assert.Contains(t, buf.String(), "Operation completed")
	assert.Contains(t, buf.String(), `"operation":"rename"`)
}

func TestLogCommand(t *testing.T) {
	previous := zerolog.GlobalLevel()
	t.Cleanup(func() {
		zerolog.SetGlobalLevel(previous)
		log.Logger = zerolog.New(os.Stderr)
	})
	zerolog.SetGlobalLevel(zerolog.DebugLevel)

	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf)

	LogCommand("mmv", []string{"a*", "b#1"})

	assert.Contains(t, buf.String(), "Executing command")
	assert.Contains(t, buf.String(), "b#1")
}

func TestSetupLogger_ClosesPreviousLogFile(t *testing.T) {
	previous := zerolog.GlobalLevel()
	t.Cleanup(func() {
		zerolog.SetGlobalLevel(previous)
		log.Logger = zerolog.New(os.Stderr)
	})
	t.Setenv("MMV_STATE_DIR", t.TempDir())

	var console bytes.Buffer
	SetupLogger(0, &console)
	first := logFileHandle
	require.NotNil(t, first)

	SetupLogger(0, &console)
	t.Cleanup(func() { _ = logFileHandle.Close() })

	assert.NotSame(t, first, logFileHandle)
	_, err := first.Write([]byte("late\n"))
	assert.ErrorIs(t, err, os.ErrClosed)
}
