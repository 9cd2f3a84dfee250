package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ha1tch/deluxedesign/internal/paint"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("DD_WINDOW_WIDTH", "1600")
	t.Setenv("DD_WORKSPACE_HEIGHT", "1080.5")
	t.Setenv("DD_FILL_COLOR", "#ff0000")
	t.Setenv("DD_STROKE_WIDTH", "4")
	t.Setenv("DD_LOG_LEVEL", "debug")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 1600, cfg.WindowWidth)
	assert.Equal(t, 800, cfg.WindowHeight)
	assert.Equal(t, 1080.5, cfg.WorkspaceHeight)
	assert.Equal(t, "#ff0000", cfg.Style.FillColor)
	assert.Equal(t, 4.0, cfg.Style.StrokeWidth)
	assert.Equal(t, logrus.DebugLevel, cfg.LogLevel)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("DD_STROKE_COLOR=navy\nDD_TARGET_FPS=30\n"), 0o600))
	t.Cleanup(func() {
		os.Unsetenv("DD_STROKE_COLOR")
		os.Unsetenv("DD_TARGET_FPS")
	})
	// environment wins over the file
	t.Setenv("DD_TARGET_FPS", "120")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "navy", cfg.Style.StrokeColor)
	assert.Equal(t, 120, cfg.TargetFPS)
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := map[string]string{
		"DD_WINDOW_WIDTH":    "wide",
		"DD_TARGET_FPS":      "-1",
		"DD_WORKSPACE_WIDTH": "0",
		"DD_STROKE_WIDTH":    "-2",
		"DD_FILL_COLOR":      "#nothex",
		"DD_LOG_LEVEL":       "loud",
	}
	for key, val := range tests {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, val)
			_, err := Load("")
			assert.Error(t, err)
		})
	}

	t.Setenv("DD_STROKE_COLOR", "nope")
	_, err := Load("")
	assert.ErrorIs(t, err, paint.ErrInvalidColor)
}
