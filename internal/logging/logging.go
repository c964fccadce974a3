// Package logging configures the zerolog logger used across the launcher.
// The terminal belongs to the UI, so entries go to a file.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Config captures options for building the logger.
type Config struct {
	Level   string    // optional level ("debug", "info", ...); LOG_LEVEL when empty
	File    string    // log file path; ignored when Output is set
	Output  io.Writer // optional writer, mainly for tests
	Service string    // attached to every entry, defaults to "arcade"
}

// New builds a logger from cfg. The returned closer releases the log file
// and is safe to call when no file was opened.
func New(cfg Config) (zerolog.Logger, io.Closer, error) {
	level := zerolog.InfoLevel
	raw := strings.TrimSpace(cfg.Level)
	if raw == "" {
		raw = os.Getenv("LOG_LEVEL")
	}
	if raw != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(raw))
		if err != nil {
			return zerolog.Nop(), nopCloser{}, fmt.Errorf("parse log level: %w", err)
		}
		level = parsed
	}

	var closer io.Closer = nopCloser{}
	writer := cfg.Output
	if writer == nil {
		path := strings.TrimSpace(cfg.File)
		if path == "" {
			return zerolog.Nop(), closer, nil
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return zerolog.Nop(), closer, fmt.Errorf("create log dir: %w", err)
		}
		file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return zerolog.Nop(), closer, fmt.Errorf("open log file: %w", err)
		}
		writer = file
		closer = file
	}

	service := cfg.Service
	if service == "" {
		service = "arcade"
	}

	zerolog.TimeFieldFormat = time.RFC3339
	logger := zerolog.New(writer).Level(level).With().
		Timestamp().
		Str("service", service).
		Logger()
	return logger, closer, nil
}

// WithComponent returns a child logger annotated with the given component name.
func WithComponent(base zerolog.Logger, component string) zerolog.Logger {
	return base.With().Str("component", component).Logger()
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
