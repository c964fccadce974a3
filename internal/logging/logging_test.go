package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestNew_WritesStructuredEntries(t *testing.T) {
	var buf bytes.Buffer
	logger, closer, err := New(Config{Level: "debug", Output: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	defer closer.Close()

	storeLogger := WithComponent(logger, "store")
	storeLogger.Debug().Str("id", "2").Msg("toggled favorite")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log entry is not JSON: %v (%q)", err, buf.String())
	}
	if entry["service"] != "arcade" || entry["component"] != "store" || entry["id"] != "2" {
		t.Fatalf("entry = %#v, want service/component/id fields", entry)
	}
	if entry["level"] != "debug" {
		t.Fatalf("level = %v, want debug", entry["level"])
	}
}

func TestNew_LevelFiltersEntries(t *testing.T) {
	var buf bytes.Buffer
	logger, _, err := New(Config{Level: "WARN", Output: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger.Info().Msg("hidden")
	if buf.Len() != 0 {
		t.Fatalf("info entry written at warn level: %q", buf.String())
	}
}

func TestNew_LevelFromEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "error")
	var buf bytes.Buffer
	logger, _, err := New(Config{Output: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger.Warn().Msg("hidden")
	if buf.Len() != 0 {
		t.Fatalf("warn entry written at error level: %q", buf.String())
	}
}

func TestNew_InvalidLevel(t *testing.T) {
	if _, _, err := New(Config{Level: "loud"}); err == nil {
		t.Fatal("New returned nil error for invalid level")
	}
}

func TestNew_CreatesLogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "arcade.log")
	logger, closer, err := New(Config{File: path})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger.Info().Msg("started")
	if err := closer.Close(); err != nil {
		t.Fatalf("Close returned error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), `"message":"started"`) {
		t.Fatalf("log file = %q, want started entry", data)
	}
}

func TestNew_NoFileDisablesLogging(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	logger, closer, err := New(Config{})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	defer closer.Close()
	if logger.GetLevel() != zerolog.Disabled {
		t.Fatalf("level = %v, want disabled", logger.GetLevel())
	}
}
