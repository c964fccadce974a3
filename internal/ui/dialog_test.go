package ui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/arcade/internal/library"
	"github.com/five82/arcade/internal/state"
)

func newTestDialog(t *testing.T) (addGameDialog, *state.Store) {
	t.Helper()
	store := state.New(state.Options{NewID: func() string { return "new-1" }})
	store.OpenDialog()
	d := newAddGameDialog(store, GetTheme("Dracula"), t.TempDir(), library.Extensions, 100, 40)
	return d, store
}

func TestDialogSelectFileFillsTitle(t *testing.T) {
	d, store := newTestDialog(t)
	d.selectFile("/games/mygame.exe")

	snap := store.Snapshot()
	if snap.PendingFile.Name != "mygame.exe" {
		t.Fatalf("pending file = %q, want mygame.exe", snap.PendingFile.Name)
	}
	if d.title.Value() != "mygame" {
		t.Fatalf("title input = %q, want mygame", d.title.Value())
	}
}

func TestDialogSubmitAddsGame(t *testing.T) {
	d, store := newTestDialog(t)
	d.selectFile("/games/mygame.exe")
	d.title.SetValue("  My Game ")

	_, _, closeDialog := d.submit()
	if !closeDialog {
		t.Fatalf("submit did not close the dialog")
	}

	snap := store.Snapshot()
	if len(snap.Games) != 5 {
		t.Fatalf("games = %d, want 5", len(snap.Games))
	}
	got := snap.Games[0]
	if got.ID != "new-1" || got.Title != "My Game" || got.FileName != "mygame.exe" {
		t.Fatalf("added game = %+v", got)
	}
	if snap.DialogOpen || snap.HasPendingFile() || snap.PendingTitle != "" {
		t.Fatalf("dialog state not reset: %+v", snap)
	}
}

func TestDialogFocusCycles(t *testing.T) {
	d, _ := newTestDialog(t)
	keys := DefaultKeyMap()

	var m Modal = d
	for _, want := range []dialogField{fieldFile, fieldAdd, fieldCancel, fieldTitle} {
		m, _, _ = m.Update(tabKey(), keys)
		if got := m.(addGameDialog).focus; got != want {
			t.Fatalf("focus = %v, want %v", got, want)
		}
	}
}

func tabKey() tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyTab}
}

// pickFile opens the picker in a directory holding only name and selects it.
func pickFile(t *testing.T, name string) (addGameDialog, *state.Store) {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, name), []byte("#!/bin/sh\n"), 0o755); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}

	store := state.New(state.Options{})
	store.OpenDialog()
	keys := DefaultKeyMap()
	enter := tea.KeyMsg{Type: tea.KeyEnter}

	var m Modal = newAddGameDialog(store, GetTheme("Dracula"), dir, library.Extensions, 100, 40)
	m, _, _ = m.Update(enter, keys) // title -> file field
	m, cmd, _ := m.Update(enter, keys)
	if cmd == nil {
		t.Fatalf("opening the picker returned no command")
	}
	m, _, _ = m.Update(cmd(), keys) // directory listing
	m, _, _ = m.Update(enter, keys)
	return m.(addGameDialog), store
}

func TestDialogPickerSelectsFile(t *testing.T) {
	cases := []struct {
		file  string
		title string
	}{
		{"launcher.sh", "launcher"},
		{"SETUP.EXE", "SETUP"},
		{"Game.Bat", "Game"},
	}
	for _, tc := range cases {
		t.Run(tc.file, func(t *testing.T) {
			d, store := pickFile(t, tc.file)
			snap := store.Snapshot()
			if snap.PendingFile.Name != tc.file {
				t.Fatalf("pending file = %q, want %q (notice %q)", snap.PendingFile.Name, tc.file, d.notice)
			}
			if snap.PendingTitle != tc.title {
				t.Fatalf("pending title = %q, want %q", snap.PendingTitle, tc.title)
			}
			if d.picking || d.focus != fieldAdd {
				t.Fatalf("picker still open or focus %v after select", d.focus)
			}
		})
	}
}

func TestDialogPickerRejectsUnsupportedFile(t *testing.T) {
	d, store := pickFile(t, "notes.txt")
	if store.Snapshot().HasPendingFile() {
		t.Fatalf("unsupported file was selected: %+v", store.Snapshot().PendingFile)
	}
	if !strings.Contains(d.notice, "notes.txt is not a supported file type") {
		t.Fatalf("notice = %q", d.notice)
	}
	if !d.picking {
		t.Fatalf("picker closed after rejected file")
	}
}

func TestDialogFollowsThemeChange(t *testing.T) {
	d, _ := newTestDialog(t)
	m, _, _ := d.Update(ThemeChangedMsg{Name: "Slate"}, DefaultKeyMap())

	want := lipgloss.Color(GetTheme("Slate").Accent)
	if got := m.(addGameDialog).picker.Styles.Cursor.GetForeground(); got != want {
		t.Fatalf("picker cursor color = %v, want %v", got, want)
	}
}
