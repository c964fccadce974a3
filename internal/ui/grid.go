package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/arcade/internal/library"
)

// gridColumns returns the number of card columns for the current width.
func (m Model) gridColumns() int {
	if m.columns > 0 {
		return min(m.columns, max(m.width/minCardWidth, 1))
	}
	switch {
	case m.width >= GridFourColumnWidth:
		return 4
	case m.width >= GridThreeColumnWidth:
		return 3
	case m.width >= GridTwoColumnWidth:
		return 2
	default:
		return 1
	}
}

// cardWidth returns the outer width of one card.
func (m Model) cardWidth(cols int) int {
	w := (m.width - cardGap*(cols-1)) / cols
	return max(w, minCardWidth)
}

// gridHeight returns the number of lines available to the grid.
func (m Model) gridHeight() int {
	toasts := len(m.toasts.active())
	return max(m.height-chromeLines-toasts, cardHeight)
}

// renderGrid renders the visible games as rows of cards, scrolled so the
// selected card is on screen. An empty list renders the empty state.
func (m Model) renderGrid(games []library.Game) string {
	if len(games) == 0 {
		return m.renderEmptyState()
	}

	cols := m.gridColumns()
	width := m.cardWidth(cols)
	rowsVisible := max(m.gridHeight()/cardHeight, 1)
	selectedRow := m.selected / cols
	firstRow := max(selectedRow-rowsVisible+1, 0)

	var rows []string
	for row := firstRow; row < firstRow+rowsVisible; row++ {
		start := row * cols
		if start >= len(games) {
			break
		}
		end := min(start+cols, len(games))
		cards := make([]string, 0, cols*2)
		for i := start; i < end; i++ {
			if i > start {
				cards = append(cards, strings.Repeat(" ", cardGap))
			}
			cards = append(cards, m.renderCard(games[i], width, i == m.selected))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	return strings.Join(rows, "\n")
}

// renderCard renders one game card:
//
//	╭──────────────────────╮
//	│ ♥ Favorite         ♥ │
//	│ ▒ images.unsp...=800 │
//	│ Neon Racers          │
//	│ racers.exe           │
//	│ ▶ Play               │
//	╰──────────────────────╯
func (m Model) renderCard(g library.Game, width int, selected bool) string {
	styles := m.theme.Styles()
	inner := max(width-4, 1) // border and padding

	heart := styles.MutedText.Render("♡")
	if g.IsFavorite {
		heart = styles.Heart.Bold(true).Render("♥")
	}
	badge := ""
	if g.IsFavorite {
		badge = styles.Badge.Render("♥ Favorite")
	}
	gap := max(inner-lipgloss.Width(badge)-lipgloss.Width(heart), 1)
	top := badge + strings.Repeat(" ", gap) + heart

	cover := styles.FaintText.Render("▒ " + truncateMiddle(g.Image, inner-2))
	title := styles.Title.Render(truncate(g.Title, inner))
	file := styles.MutedText.Render(truncateMiddle(g.FileName, inner))
	play := styles.PlayButton.Render("▶ Play")

	border := m.theme.Border
	if selected {
		border = m.theme.BorderFocus
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(border)).
		Padding(0, 1).
		Width(width - 2).
		Height(cardBodyLines).
		Render(strings.Join([]string{top, cover, title, file, play}, "\n"))
}

// renderEmptyState is shown instead of the grid when no game matches.
func (m Model) renderEmptyState() string {
	styles := m.theme.Styles()
	lines := []string{
		styles.MutedText.Render("🎮"),
		"",
		styles.MutedText.Render("No games found"),
	}
	if m.store.Snapshot().Search != "" {
		lines = append(lines, styles.FaintText.Render("Press esc to clear the search"))
	}
	body := lipgloss.JoinVertical(lipgloss.Center, lines...)
	return lipgloss.Place(m.width, m.gridHeight(), lipgloss.Center, lipgloss.Center, body)
}

// moveSelection moves the grid cursor by dx columns and dy rows, staying
// inside the visible list.
func (m *Model) moveSelection(dx, dy int, count int) {
	if count == 0 {
		m.selected = 0
		return
	}
	cols := m.gridColumns()
	if dx != 0 {
		next := m.selected + dx
		sameRow := next >= 0 && next < count && next/cols == m.selected/cols
		if sameRow {
			m.selected = next
		}
	}
	if dy != 0 {
		next := m.selected + dy*cols
		switch {
		case next >= 0 && next < count:
			m.selected = next
		case dy > 0 && m.selected/cols < (count-1)/cols:
			// Last row is short; land on its final card.
			m.selected = count - 1
		}
	}
}

// clampSelection keeps the cursor inside a list of count games.
func (m *Model) clampSelection(count int) {
	if m.selected >= count {
		m.selected = count - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
}
