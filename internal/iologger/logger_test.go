package iologger

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/gnames/gnflora/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitFile(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	dir := filepath.Join(t.TempDir(), "logs")
	cfg := config.LogConfig{Format: "json", Level: "info", Destination: "file"}
	logPath := filepath.Join(dir, "gnflora.log")

	require.NoError(t, Init(dir, cfg, false))
	slog.Info("first")
	slog.Debug("hidden")

	require.NoError(t, Init(dir, cfg, true))
	slog.Info("second")

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"first"`)
	assert.Contains(t, string(data), `"msg":"second"`)
	assert.NotContains(t, string(data), "hidden")

	require.NoError(t, Init(dir, cfg, false))
	slog.Info("third")
	data, err = os.ReadFile(logPath)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "first")
	assert.Contains(t, string(data), "third")
}

func TestInitFileError(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(file, nil, 0644))

	cfg := config.LogConfig{Destination: "file"}
	err := Init(filepath.Join(file, "logs"), cfg, false)
	assert.Error(t, err)
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
		"other": slog.LevelInfo,
	}
	for k, v := range tests {
		assert.Equal(t, v, parseLevel(k), k)
	}
}

func TestNewHandler(t *testing.T) {
	_, ok := newHandler(os.Stderr, config.LogConfig{Format: "tint"}).(*slog.TextHandler)
	assert.True(t, ok)
	_, ok = newHandler(os.Stderr, config.LogConfig{Format: "json"}).(*slog.JSONHandler)
	assert.True(t, ok)
}
