package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// startSearch moves focus into the search field.
func (m *Model) startSearch() tea.Cmd {
	m.focus = focusSearch
	m.search.CursorEnd()
	return m.search.Focus()
}

// handleSearchKey edits the search text. Every keystroke updates the store
// so the grid narrows while typing; enter and esc hand focus back to the
// grid and keep the query.
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm), key.Matches(msg, m.keys.Escape):
		m.focus = focusGrid
		m.search.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() != m.store.Snapshot().Search {
		m.store.SetSearch(m.search.Value())
		m.selected = 0
	}
	return m, cmd
}

// clearSearch empties the query, restoring the full library.
func (m *Model) clearSearch() {
	m.search.SetValue("")
	m.store.SetSearch("")
	m.selected = 0
}
