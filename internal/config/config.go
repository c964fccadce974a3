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

	"github.com/five82/arcade/internal/library"
)

// Config holds the launcher's runtime settings.
type Config struct {
	StartDir         string   // directory the file picker opens in
	Extensions       []string // file types the picker accepts
	PlaceholderImage string   // cover reference for added games
	ToastDuration    time.Duration
	LogFile          string
	LogLevel         string
}

const (
	defaultConfigPath   = "~/.config/arcade/config.toml"
	defaultStartDir     = "~"
	defaultLogFile      = "~/.local/state/arcade/arcade.log"
	defaultLogLevel     = "info"
	defaultToastSeconds = 4
)

// Default returns the settings used when no config file exists.
func Default() Config {
	return Config{
		StartDir:         mustExpand(defaultStartDir),
		Extensions:       append([]string(nil), library.Extensions...),
		PlaceholderImage: library.PlaceholderImage,
		ToastDuration:    defaultToastSeconds * time.Second,
		LogFile:          mustExpand(defaultLogFile),
		LogLevel:         defaultLogLevel,
	}
}

// Load locates and parses the config file, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

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
		StartDir         string   `toml:"start_dir"`
		Extensions       []string `toml:"extensions"`
		PlaceholderImage string   `toml:"placeholder_image"`
		ToastSeconds     int      `toml:"toast_seconds"`
		LogFile          string   `toml:"log_file"`
		LogLevel         string   `toml:"log_level"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if dir := strings.TrimSpace(raw.StartDir); dir != "" {
		cfg.StartDir = mustExpand(dir)
	}
	if exts := normalizeExtensions(raw.Extensions); len(exts) > 0 {
		cfg.Extensions = exts
	}
	if img := strings.TrimSpace(raw.PlaceholderImage); img != "" {
		cfg.PlaceholderImage = img
	}
	if raw.ToastSeconds > 0 {
		cfg.ToastDuration = time.Duration(raw.ToastSeconds) * time.Second
	}
	if logFile := strings.TrimSpace(raw.LogFile); logFile != "" {
		cfg.LogFile = mustExpand(logFile)
	}
	if level := strings.TrimSpace(raw.LogLevel); level != "" {
		cfg.LogLevel = strings.ToLower(level)
	}

	return cfg, nil
}

// normalizeExtensions lowercases entries and adds the leading dot.
func normalizeExtensions(values []string) []string {
	var out []string
	for _, v := range values {
		v = strings.ToLower(strings.TrimSpace(v))
		if v == "" || v == "." {
			continue
		}
		if !strings.HasPrefix(v, ".") {
			v = "." + v
		}
		out = append(out, v)
	}
	return out
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
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
