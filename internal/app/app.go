package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/arcade/internal/config"
	"github.com/five82/arcade/internal/logging"
	"github.com/five82/arcade/internal/prefs"
	"github.com/five82/arcade/internal/ui"
)

// Options configure the launcher.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/arcade/prefs.toml
	LogLevel   string // overrides the config file when set
}

// Run boots the launcher TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, closer, err := logging.New(logging.Config{
		Level: resolveLogLevel(cfg, opts),
		File:  cfg.LogFile,
	})
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer func() { _ = closer.Close() }()

	userPrefs, _ := prefs.Load(opts.PrefsPath)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	uiLog := logging.WithComponent(logger, "ui")
	program := ui.NewProgram(ui.Options{
		Context:   ctx,
		Config:    cfg,
		Logger:    &uiLog,
		ThemeName: userPrefs.Theme,
		Columns:   userPrefs.Columns,
		PrefsPath: opts.PrefsPath,
	})

	prefsLog := logging.WithComponent(logger, "prefs")
	err = prefs.Watch(ctx, opts.PrefsPath,
		func(p prefs.Prefs) { program.Send(themeChanged(p)) },
		func(err error) { prefsLog.Warn().Err(err).Msg("prefs watcher error") },
	)
	if err != nil {
		prefsLog.Warn().Err(err).Msg("prefs watcher disabled")
	}

	logger.Info().
		Str("theme", userPrefs.Theme).
		Strs("extensions", cfg.Extensions).
		Str("start_dir", cfg.StartDir).
		Msg("launcher starting")

	if _, err := program.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("run ui: %w", err)
	}
	logger.Info().Msg("launcher stopped")
	return nil
}

func resolveLogLevel(cfg config.Config, opts Options) string {
	if level := strings.TrimSpace(opts.LogLevel); level != "" {
		return level
	}
	return cfg.LogLevel
}

func themeChanged(p prefs.Prefs) ui.ThemeChangedMsg {
	return ui.ThemeChangedMsg{Name: p.Theme, Columns: p.Columns}
}
