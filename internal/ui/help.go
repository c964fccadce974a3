package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// renderHelp renders the key binding overlay.
func (m Model) renderHelp() string {
	styles := m.theme.Styles()

	h := m.help
	h.ShowAll = true
	h.Width = max(m.width-8, 20)
	h.Styles.FullKey = styles.AccentText
	h.Styles.FullDesc = styles.MutedText
	h.Styles.FullSeparator = styles.FaintText

	body := lipgloss.JoinVertical(lipgloss.Left,
		styles.Title.Render("Keys"),
		"",
		h.View(m.keys),
		"",
		styles.FaintText.Render("Press any key to close"),
	)
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.BorderFocus)).
		Padding(1, 2).
		Render(body)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
