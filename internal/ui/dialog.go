package ui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/arcade/internal/library"
	"github.com/five82/arcade/internal/state"
)

type dialogField int

const (
	fieldTitle dialogField = iota
	fieldFile
	fieldAdd
	fieldCancel
	dialogFieldCount
)

const (
	dialogWidth       = 56
	pickerMarginLines = 5 // filepicker reserves this many lines below its list
)

// addGameDialog is the form for registering a new game. Its title and file
// live in the store; the dialog only owns the input widgets.
type addGameDialog struct {
	store      *state.Store
	title      textinput.Model
	picker     filepicker.Model
	picking    bool
	focus      dialogField
	notice     string
	extensions []string
	startDir   string
	width      int
	height     int
}

func newAddGameDialog(store *state.Store, theme Theme, startDir string, extensions []string, width, height int) addGameDialog {
	ti := textinput.New()
	ti.Placeholder = "Game title"
	ti.CharLimit = 100
	ti.Width = dialogWidth - 8
	ti.SetValue(store.Snapshot().PendingTitle)
	ti.Focus()

	d := addGameDialog{
		store:      store,
		title:      ti,
		extensions: extensions,
		startDir:   startDir,
		width:      width,
		height:     height,
	}
	d.picker = d.newPicker(theme)
	return d
}

// newPicker builds the file picker. AllowedTypes is left empty (its suffix
// match is case-sensitive); updatePicker checks the accepted extensions.
func (d addGameDialog) newPicker(theme Theme) filepicker.Model {
	fp := filepicker.New()
	fp.AutoHeight = true
	fp.ShowPermissions = false
	if d.startDir != "" {
		fp.CurrentDirectory = d.startDir
	}
	fp.Styles = pickerStyles(fp.Styles, theme)
	fp, _ = fp.Update(d.pickerSize())
	return fp
}

func pickerStyles(s filepicker.Styles, theme Theme) filepicker.Styles {
	s.Cursor = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Accent))
	s.Selected = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Accent)).Bold(true)
	s.Directory = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Info))
	return s
}

// pickerSize is the size message fed to the picker so its AutoHeight logic
// sizes the list to fit inside the dialog.
func (d addGameDialog) pickerSize() tea.WindowSizeMsg {
	rows := min(max(d.height-18, 4), 12)
	return tea.WindowSizeMsg{Width: dialogWidth - 4, Height: rows + pickerMarginLines}
}

// Update implements Modal.
func (d addGameDialog) Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool) {
	if changed, ok := msg.(ThemeChangedMsg); ok {
		d.picker.Styles = pickerStyles(d.picker.Styles, GetTheme(changed.Name))
		return d, nil, false
	}

	if size, ok := msg.(tea.WindowSizeMsg); ok {
		d.width, d.height = size.Width, size.Height
		var cmd tea.Cmd
		d.picker, cmd = d.picker.Update(d.pickerSize())
		return d, cmd, false
	}

	keyMsg, isKey := msg.(tea.KeyMsg)
	if !isKey {
		// Directory listings and cursor blinks.
		var titleCmd, pickerCmd tea.Cmd
		d.title, titleCmd = d.title.Update(msg)
		d.picker, pickerCmd = d.picker.Update(msg)
		return d, tea.Batch(titleCmd, pickerCmd), false
	}

	if d.picking {
		return d.updatePicker(keyMsg, keys)
	}

	switch {
	case key.Matches(keyMsg, keys.Escape):
		return d, nil, true
	case key.Matches(keyMsg, keys.Submit):
		return d.submit()
	case key.Matches(keyMsg, keys.NextField):
		cmd := d.setFocus((d.focus + 1) % dialogFieldCount)
		return d, cmd, false
	case key.Matches(keyMsg, keys.PrevField):
		cmd := d.setFocus((d.focus + dialogFieldCount - 1) % dialogFieldCount)
		return d, cmd, false
	case key.Matches(keyMsg, keys.Confirm):
		switch d.focus {
		case fieldTitle:
			cmd := d.setFocus(fieldFile)
			return d, cmd, false
		case fieldFile:
			d.picking = true
			d.notice = ""
			return d, d.picker.Init(), false
		case fieldAdd:
			return d.submit()
		case fieldCancel:
			return d, nil, true
		}
	}

	if d.focus != fieldTitle {
		return d, nil, false
	}
	var cmd tea.Cmd
	d.title, cmd = d.title.Update(keyMsg)
	d.store.SetPendingTitle(d.title.Value())
	return d, cmd, false
}

// updatePicker routes keys to the open file picker. Esc closes the picker
// without touching the pending file.
func (d addGameDialog) updatePicker(msg tea.KeyMsg, keys keyMap) (Modal, tea.Cmd, bool) {
	if key.Matches(msg, keys.Escape) {
		d.picking = false
		return d, nil, false
	}

	var cmd tea.Cmd
	d.picker, cmd = d.picker.Update(msg)

	ok, path := d.picker.DidSelectFile(msg)
	if !ok {
		return d, cmd, false
	}
	if !library.HasAllowedExtension(path, d.extensions) {
		d.notice = fmt.Sprintf("%s is not a supported file type", filepath.Base(path))
		return d, cmd, false
	}
	d.selectFile(path)
	d.picking = false
	d.setFocus(fieldAdd)
	return d, cmd, false
}

func (d *addGameDialog) selectFile(path string) {
	d.store.SelectFile(library.FileRef{Name: filepath.Base(path), Path: path})
	d.title.SetValue(d.store.Snapshot().PendingTitle)
	d.title.CursorEnd()
	d.notice = ""
}

// submit asks the store to add the game. On rejection the store has already
// raised the error toast and the dialog stays open.
func (d addGameDialog) submit() (Modal, tea.Cmd, bool) {
	d.store.SetPendingTitle(d.title.Value())
	if _, err := d.store.AddGame(); err != nil {
		return d, nil, false
	}
	d.title.Reset()
	return d, nil, true
}

func (d *addGameDialog) setFocus(field dialogField) tea.Cmd {
	d.focus = field
	if field == fieldTitle {
		return d.title.Focus()
	}
	d.title.Blur()
	return nil
}

// View implements Modal.
func (d addGameDialog) View(theme Theme, width, height int) string {
	styles := theme.Styles()
	snap := d.store.Snapshot()
	inner := dialogWidth - 4

	label := func(text string, field dialogField) string {
		if d.focus == field && !d.picking {
			return styles.AccentText.Bold(true).Render("› " + text)
		}
		return styles.MutedText.Render("  " + text)
	}

	var b strings.Builder
	b.WriteString(styles.Title.Render("Add game"))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render("Pick a local file and give it a title"))
	b.WriteString("\n\n")

	b.WriteString(label("Title", fieldTitle))
	b.WriteString("\n  ")
	b.WriteString(d.title.View())
	b.WriteString("\n\n")

	b.WriteString(label("File", fieldFile))
	b.WriteString(styles.FaintText.Render("  " + strings.Join(d.extensions, " ")))
	b.WriteString("\n  ")
	switch {
	case d.picking:
		b.WriteString(styles.FaintText.Render(truncateMiddle(d.picker.CurrentDirectory, inner-2)))
		b.WriteString("\n")
		b.WriteString(d.picker.View())
	case snap.HasPendingFile():
		b.WriteString(styles.Text.Render(truncateMiddle(snap.PendingFile.Name, inner-2)))
	default:
		b.WriteString(styles.FaintText.Render("No file chosen (enter to browse)"))
	}
	b.WriteString("\n")
	if d.notice != "" {
		b.WriteString("  ")
		b.WriteString(styles.WarningText.Render(d.notice))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	button := func(text string, field dialogField, base lipgloss.Style) string {
		if d.focus == field && !d.picking {
			return styles.Selected.Bold(true).Padding(0, 1).Render(text)
		}
		return base.Render(text)
	}
	b.WriteString("  ")
	b.WriteString(button("+ Add", fieldAdd, styles.Button))
	b.WriteString("  ")
	b.WriteString(button("Cancel", fieldCancel, styles.Button))
	b.WriteString("\n\n")

	hint := "tab next • enter select • ctrl+s add • esc close"
	if d.picking {
		hint = "enter open/choose • h back • esc close picker"
	}
	b.WriteString(styles.FaintText.Render(hint))

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.BorderFocus)).
		Padding(1, 1).
		Width(inner + 2).
		Render(b.String())

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
