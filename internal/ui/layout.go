package ui

import "time"

// Terminal width thresholds for the card grid, mirroring the md/lg/xl
// breakpoints of the web launcher.
const (
	// GridTwoColumnWidth is the minimum width for two columns.
	GridTwoColumnWidth = 60

	// GridThreeColumnWidth is the minimum width for three columns.
	GridThreeColumnWidth = 100

	// GridFourColumnWidth is the minimum width for four columns.
	GridFourColumnWidth = 140
)

// Grid geometry.
const (
	cardBodyLines = 5
	cardHeight    = cardBodyLines + 2 // plus top and bottom border
	cardGap       = 2
	minCardWidth  = 24
)

// Chrome above and below the grid: header (2), blank, search bar, blank, command bar.
const chromeLines = 6

// Toast settings.
const (
	// ToastTick is how often expired toasts are pruned.
	ToastTick = 250 * time.Millisecond

	// DefaultToastTTL is used when the config supplies none.
	DefaultToastTTL = 4 * time.Second

	// MaxToasts caps how many toasts are shown at once.
	MaxToasts = 3
)
