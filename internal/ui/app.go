package ui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/five82/arcade/internal/config"
	"github.com/five82/arcade/internal/library"
	"github.com/five82/arcade/internal/prefs"
	"github.com/five82/arcade/internal/state"
)

// focusArea is the part of the main screen receiving keys.
type focusArea int

const (
	focusGrid focusArea = iota
	focusSearch
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Config    config.Config
	Logger    *zerolog.Logger
	ThemeName string
	Columns   int // 0 picks columns from the terminal width
	PrefsPath string
	Games     []library.Game // nil seeds the sample library
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	cfg       config.Config
	prefsPath string
	log       zerolog.Logger
	keys      keyMap
	help      help.Model

	// Library state
	store  *state.Store
	toasts *toastQueue

	// UI state
	theme    Theme
	columns  int
	width    int
	height   int
	ready    bool
	showHelp bool
	focus    focusArea
	search   textinput.Model
	selected int
	dialog   Modal
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	logger := zerolog.Nop()
	if opts.Logger != nil {
		logger = *opts.Logger
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = "Dracula"
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	cfg := opts.Config
	if len(cfg.Extensions) == 0 {
		cfg.Extensions = library.Extensions
	}

	toasts := newToastQueue(cfg.ToastDuration, logger.With().Str("component", "toast").Logger())
	storeLog := logger.With().Str("component", "store").Logger()
	store := state.New(state.Options{
		Games:            opts.Games,
		Notifier:         toasts,
		PlaceholderImage: cfg.PlaceholderImage,
		Logger:           &storeLog,
	})

	ti := textinput.New()
	ti.Placeholder = "Search games..."
	ti.CharLimit = 100
	ti.Prompt = ""

	return Model{
		cfg:       cfg,
		prefsPath: prefsPath,
		log:       logger,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		store:     store,
		toasts:    toasts,
		theme:     GetTheme(themeName),
		columns:   opts.Columns,
		search:    ti,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tickCmd(ToastTick)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.search.Width = max(m.width/2, 20)
		if m.dialog != nil {
			var cmd tea.Cmd
			m.dialog, cmd, _ = m.dialog.Update(msg, m.keys)
			return m, cmd
		}
		return m, nil

	case tickMsg:
		m.toasts.prune()
		return m, tickCmd(ToastTick)

	case ThemeChangedMsg:
		m.theme = GetTheme(msg.Name)
		m.columns = msg.Columns
		if m.dialog != nil {
			m.dialog, _, _ = m.dialog.Update(msg, m.keys)
		}
		return m, nil
	}

	// Cursor blinks and file picker directory listings.
	if m.dialog != nil {
		var cmd tea.Cmd
		m.dialog, cmd, _ = m.dialog.Update(msg, m.keys)
		return m, cmd
	}
	if m.focus == focusSearch {
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	toasts := m.renderToasts()
	toastLines := 0
	if toasts != "" {
		toastLines = strings.Count(toasts, "\n") + 1
	}

	var b strings.Builder
	if m.dialog != nil {
		b.WriteString(m.dialog.View(m.theme, m.width, max(m.height-1-toastLines, 1)))
	} else {
		b.WriteString(m.renderMain())
	}
	if toasts != "" {
		b.WriteString("\n")
		b.WriteString(toasts)
	}
	b.WriteString("\n")
	b.WriteString(m.renderCommandBar())
	return b.String()
}

// renderMain renders the header, search bar and card grid. The filtered
// list is recomputed here on every render.
func (m Model) renderMain() string {
	visible := m.store.Visible()

	var b strings.Builder
	b.WriteString(m.renderHeader(len(visible)))
	b.WriteString("\n\n")
	b.WriteString(m.renderSearchBar())
	b.WriteString("\n\n")
	b.WriteString(m.renderGrid(visible))
	return b.String()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	if m.dialog != nil {
		return m.handleDialogKey(msg)
	}

	if m.focus == focusSearch {
		return m.handleSearchKey(msg)
	}

	visible := m.store.Visible()

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		if err := prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name, Columns: m.columns}); err != nil {
			m.log.Warn().Err(err).Msg("save prefs failed")
		}
		return m, nil

	case key.Matches(msg, m.keys.Search):
		return m, m.startSearch()

	case key.Matches(msg, m.keys.Escape):
		if m.store.Snapshot().Search != "" {
			m.clearSearch()
		}
		return m, nil

	case key.Matches(msg, m.keys.AddGame):
		return m.openDialog()

	case key.Matches(msg, m.keys.ToggleFavorite):
		if len(visible) > 0 {
			m.clampSelection(len(visible))
			m.store.ToggleFavorite(visible[m.selected].ID)
		}
		return m, nil

	case key.Matches(msg, m.keys.Left):
		m.moveSelection(-1, 0, len(visible))
	case key.Matches(msg, m.keys.Right):
		m.moveSelection(1, 0, len(visible))
	case key.Matches(msg, m.keys.Up):
		m.moveSelection(0, -1, len(visible))
	case key.Matches(msg, m.keys.Down):
		m.moveSelection(0, 1, len(visible))
	case key.Matches(msg, m.keys.Top):
		m.selected = 0
	case key.Matches(msg, m.keys.Bottom):
		m.selected = max(len(visible)-1, 0)
	}

	return m, nil
}

// openDialog shows the add-game form.
func (m Model) openDialog() (tea.Model, tea.Cmd) {
	m.store.OpenDialog()
	m.dialog = newAddGameDialog(m.store, m.theme, m.cfg.StartDir, m.cfg.Extensions, m.width, m.height)
	return m, textinput.Blink
}

// handleDialogKey forwards keys to the open dialog and tears it down when it
// asks to close. A successful add has already closed the dialog in the
// store; a cancel or dismiss closes it here.
func (m Model) handleDialogKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	before := len(m.store.Snapshot().Games)

	var cmd tea.Cmd
	var closeDialog bool
	m.dialog, cmd, closeDialog = m.dialog.Update(msg, m.keys)
	if !closeDialog {
		return m, cmd
	}

	if m.store.Snapshot().DialogOpen {
		m.store.CloseDialog()
	}
	m.dialog = nil
	if len(m.store.Snapshot().Games) > before {
		m.selected = 0
	}
	m.clampSelection(len(m.store.Visible()))
	return m, cmd
}

// Messages

type tickMsg time.Time

// ThemeChangedMsg applies preferences edited outside the running program.
type ThemeChangedMsg struct {
	Name    string
	Columns int
}

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// NewProgram builds the Bubble Tea program for opts. Callers may Send
// ThemeChangedMsg to it before and while it runs.
func NewProgram(opts Options) *tea.Program {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	return tea.NewProgram(New(opts), tea.WithAltScreen(), tea.WithContext(ctx))
}
