// Package config loads editor settings from the environment. An
// optional .env file is read first; real environment variables win.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/ha1tch/deluxedesign/internal/editor"
	"github.com/ha1tch/deluxedesign/internal/paint"
)

// Config holds everything the shell needs at startup
type Config struct {
	WindowWidth     int
	WindowHeight    int
	TargetFPS       int
	WorkspaceWidth  float64
	WorkspaceHeight float64
	Style           editor.Style
	LogLevel        logrus.Level
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		WindowWidth:     1280,
		WindowHeight:    800,
		TargetFPS:       60,
		WorkspaceWidth:  editor.WorkspaceWidth,
		WorkspaceHeight: editor.WorkspaceHeight,
		Style:           editor.DefaultStyle(),
		LogLevel:        logrus.InfoLevel,
	}
}

// Load reads envFile if it exists and then the DD_* variables. A
// missing file is not an error; a malformed value is.
func Load(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	cfg := Default()
	var err error
	if cfg.WindowWidth, err = envInt("DD_WINDOW_WIDTH", cfg.WindowWidth); err != nil {
		return Config{}, err
	}
	if cfg.WindowHeight, err = envInt("DD_WINDOW_HEIGHT", cfg.WindowHeight); err != nil {
		return Config{}, err
	}
	if cfg.TargetFPS, err = envInt("DD_TARGET_FPS", cfg.TargetFPS); err != nil {
		return Config{}, err
	}
	if cfg.WorkspaceWidth, err = envFloat("DD_WORKSPACE_WIDTH", cfg.WorkspaceWidth); err != nil {
		return Config{}, err
	}
	if cfg.WorkspaceHeight, err = envFloat("DD_WORKSPACE_HEIGHT", cfg.WorkspaceHeight); err != nil {
		return Config{}, err
	}
	if cfg.Style.FillColor, err = envColor("DD_FILL_COLOR", cfg.Style.FillColor); err != nil {
		return Config{}, err
	}
	if cfg.Style.StrokeColor, err = envColor("DD_STROKE_COLOR", cfg.Style.StrokeColor); err != nil {
		return Config{}, err
	}
	if cfg.Style.StrokeWidth, err = envFloat("DD_STROKE_WIDTH", cfg.Style.StrokeWidth); err != nil {
		return Config{}, err
	}
	if v, ok := os.LookupEnv("DD_LOG_LEVEL"); ok {
		if cfg.LogLevel, err = logrus.ParseLevel(v); err != nil {
			return Config{}, fmt.Errorf("DD_LOG_LEVEL: %w", err)
		}
	}

	if cfg.TargetFPS < 0 {
		return Config{}, errors.New("DD_TARGET_FPS: must not be negative")
	}
	if cfg.WindowWidth <= 0 || cfg.WindowHeight <= 0 || cfg.WorkspaceWidth <= 0 || cfg.WorkspaceHeight <= 0 {
		return Config{}, errors.New("window and workspace sizes must be positive")
	}
	return cfg, nil
}

func envInt(key string, def int) (int, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

func envFloat(key string, def float64) (float64, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	if f < 0 {
		return 0, fmt.Errorf("%s: must not be negative", key)
	}
	return f, nil
}

func envColor(key, def string) (string, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def, nil
	}
	if _, err := paint.Parse(v); err != nil {
		return "", fmt.Errorf("%s: %w", key, err)
	}
	return v, nil
}
