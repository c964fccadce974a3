// Package ui provides the terminal launcher screen.
//
// # Architecture Overview
//
// The UI is a single Bubble Tea model. It owns one state.Store holding the
// game library and the screen's input state, and renders from it on every
// View call. Styling uses lipgloss; the search field, title field, file
// picker and help overlay are bubbles components.
//
// # Package Structure
//
//   - app.go: Model, Update/View, key routing, NewProgram
//   - search.go: search field focus and live filtering
//   - grid.go: card grid, empty state, cursor movement
//   - dialog.go: add-game form and file picker (implements Modal)
//   - toast.go: notification queue fed by the store
//   - header.go: logo line, search bar, command bar
//   - help.go: key binding overlay
//   - theme.go, style_helpers.go: colors and background-safe rendering
//
// # Key Bindings
//
//	/          Search games (enter or esc returns to the grid)
//	esc        Clear the search
//	a          Add a game
//	f, space   Toggle favorite on the selected card
//	h/j/k/l    Move between cards (arrows work too)
//	g/G        First/last card
//	T          Cycle theme (saved to prefs)
//	?          Help
//	q          Quit
//
// In the add-game dialog, tab moves between fields, enter on the file field
// opens the picker, ctrl+s adds and esc closes.
//
// # Notifications
//
// The store reports add-game results through the toast queue. Toasts are
// pruned by a recurring tick and stack above the command bar.
package ui
