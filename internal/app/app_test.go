package app

import (
	"testing"

	"github.com/five82/arcade/internal/config"
	"github.com/five82/arcade/internal/prefs"
)

func TestResolveLogLevel(t *testing.T) {
	cfg := config.Config{LogLevel: "info"}

	tests := []struct {
		name string
		opts Options
		want string
	}{
		{"config level", Options{}, "info"},
		{"flag overrides", Options{LogLevel: "debug"}, "debug"},
		{"blank flag ignored", Options{LogLevel: "  "}, "info"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := resolveLogLevel(cfg, tt.opts); got != tt.want {
				t.Errorf("resolveLogLevel() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestThemeChanged(t *testing.T) {
	msg := themeChanged(prefs.Prefs{Theme: "Slate", Columns: 2})
	if msg.Name != "Slate" || msg.Columns != 2 {
		t.Fatalf("themeChanged = %#v, want Slate/2", msg)
	}
}
