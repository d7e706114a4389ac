package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("debug"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warn"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	// Unknown levels fall back to info.
	assert.Equal(t, slog.LevelInfo, ParseLevel("chatty"))
	assert.Equal(t, slog.LevelInfo, ParseLevel(""))
}

func TestLogger_WritesToFile(t *testing.T) {
	dir := t.TempDir()
	l := New(dir, slog.LevelInfo)
	defer func() { require.NoError(t, l.Close()) }()

	l.Info("bridge", "backend started")
	l.Debug("bridge", "filtered out")

	content, err := os.ReadFile(filepath.Join(dir, LogFileName))
	require.NoError(t, err)
	assert.Contains(t, string(content), "[INFO] [bridge] backend started")
	assert.NotContains(t, string(content), "filtered out")
}

func TestLogger_DisabledWithoutStateDir(t *testing.T) {
	l := New("", slog.LevelDebug)
	// Must not panic or create files.
	l.Error("cache", "ignored")
	assert.NoError(t, l.Close())
}

func TestFormatLog(t *testing.T) {
	at := time.Date(2026, 3, 1, 9, 32, 51, 0, time.UTC)
	line := formatLog(at, slog.LevelWarn, "usecase", "rollback applied")
	assert.Equal(t, "[2026-03-01 09:32:51] [WARN] [usecase] rollback applied\n", line)
}
