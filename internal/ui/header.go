package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/arcade/internal/library"
)

const (
	logoText     = "GAME LAUNCHER"
	subtitleText = "Your game library"
)

// renderHeader renders the logo line with library counts and the subtitle.
func (m Model) renderHeader(visible int) string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)
	snap := m.store.Snapshot()

	left := bg.Render(logoText, styles.Logo)

	counts := []string{
		bg.Render("Games:", styles.MutedText) + bg.Space() +
			bg.Render(fmt.Sprintf("%d", len(snap.Games)), styles.Text),
		bg.Render("♥", styles.Heart) + bg.Space() +
			bg.Render(fmt.Sprintf("%d", library.CountFavorites(snap.Games)), styles.Text),
	}
	if snap.Search != "" {
		counts = append(counts,
			bg.Render("Shown:", styles.MutedText)+bg.Space()+
				bg.Render(fmt.Sprintf("%d", visible), styles.AccentText))
	}
	right := bg.Join(counts, "  ")

	gap := max(m.width-2-lipgloss.Width(left)-lipgloss.Width(right), 1)
	line1 := styles.Header.Width(m.width).Render(left + bg.Spaces(gap) + right)
	line2 := styles.Header.Width(m.width).Render(bg.Render(subtitleText, styles.MutedText))
	return line1 + "\n" + line2
}

// renderSearchBar renders the search field and the add-game button.
func (m Model) renderSearchBar() string {
	styles := m.theme.Styles()

	iconStyle := styles.MutedText
	if m.focus == focusSearch {
		iconStyle = styles.AccentText
	}
	field := iconStyle.Render("⌕ ") + m.search.View()

	button := styles.Button.Render("+ Add game")
	if m.focus == focusGrid {
		button = styles.Button.Foreground(lipgloss.Color(m.theme.Accent)).Bold(true).Render("+ Add game")
	}

	gap := max(m.width-lipgloss.Width(field)-lipgloss.Width(button)-1, 1)
	return field + strings.Repeat(" ", gap) + button
}

// renderCommandBar renders the command hints bar.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	type cmd struct{ key, desc string }
	var commands []cmd

	switch {
	case m.dialog != nil:
		commands = []cmd{
			{"tab", "Next"},
			{"enter", "Select"},
			{"ctrl+s", "Add"},
			{"esc", "Close"},
		}
	case m.focus == focusSearch:
		commands = []cmd{
			{"enter", "Done"},
			{"esc", "Back"},
		}
	default:
		commands = []cmd{
			{"/", "Search"},
			{"a", "Add"},
			{"f", "Favorite"},
			{"hjkl", "Navigate"},
			{"?", "More"},
			{"q", "Quit"},
		}
	}

	colon := bg.Render(":", styles.FaintText)
	segments := make([]string, 0, len(commands)+2)
	for _, c := range commands {
		segments = append(segments,
			bg.Render(c.key, styles.AccentText)+colon+bg.Render(c.desc, styles.MutedText))
	}

	if q := m.store.Snapshot().Search; q != "" && m.focus != focusSearch {
		segments = append(segments, bg.Render("/"+truncate(q, 18), styles.AccentText))
	}

	segments = append(segments,
		bg.Render("T", styles.AccentText)+colon+bg.Render(m.theme.Name, styles.FaintText))

	return styles.Header.Width(m.width).Render(bg.Join(segments, "  "))
}
