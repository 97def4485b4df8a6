package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/cakes/internal/cakes"
	"github.com/five82/cakes/internal/thumbnail"
)

// Config holds the settings cakes needs at startup.
type Config struct {
	Endpoint      string
	Timeout       time.Duration
	ThumbnailSize int
	LogFile       string
}

const (
	defaultConfigPath = "~/.config/cakes/config.toml"
	defaultLogFile    = "~/.local/state/cakes/cakes.log"
	defaultTimeout    = 10 * time.Second
)

// Defaults returns the configuration used when no file is present.
func Defaults() Config {
	return Config{
		Endpoint:      cakes.DefaultURL,
		Timeout:       defaultTimeout,
		ThumbnailSize: thumbnail.DefaultSize,
		LogFile:       mustExpand(defaultLogFile),
	}
}

// Load locates and parses the config file, falling back to defaults when
// it is missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path, defaultConfigPath)
	if err != nil {
		return Config{}, err
	}

	cfg := Defaults()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		Endpoint       string `toml:"endpoint"`
		TimeoutSeconds int    `toml:"timeout_seconds"`
		ThumbnailSize  int    `toml:"thumbnail_size"`
		LogFile        string `toml:"log_file"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if endpoint := strings.TrimSpace(raw.Endpoint); endpoint != "" {
		cfg.Endpoint = endpoint
	}
	if raw.TimeoutSeconds > 0 {
		cfg.Timeout = time.Duration(raw.TimeoutSeconds) * time.Second
	}
	if raw.ThumbnailSize > 0 {
		cfg.ThumbnailSize = raw.ThumbnailSize
	}
	if logFile := strings.TrimSpace(raw.LogFile); logFile != "" {
		cfg.LogFile = mustExpand(logFile)
	}

	return cfg, nil
}

func resolvePath(path, fallback string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(fallback)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

// ExpandPath expands a leading ~ and returns an absolute path.
func ExpandPath(path string) (string, error) {
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
