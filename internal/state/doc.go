// Package state holds the library screen's view state.
//
// # Overview
//
// A Store is the single container for everything the launcher screen
// renders from: the game sequence, the search text, whether the add-game
// dialog is open, and the title and file pending for the next game. It is
// created by the UI model and owned by it; nothing else reads or writes it.
//
// # Update Semantics
//
// Every operation builds a new Snapshot and swaps it in:
//
//	store.ToggleFavorite("2")
//	→ snapshot.Games = library.ToggleFavorite(old.Games, "2")  (new slice)
//
//	store.SelectFile(library.FileRef{Name: "launcher.sh"})
//	→ snapshot.PendingFile = launcher.sh
//	→ snapshot.PendingTitle = "launcher"  (only when it was blank)
//
//	store.AddGame()
//	→ rejected: ErrIncompleteGame, error notification, snapshot unchanged
//	→ accepted: new game prepended, dialog closed, pending input cleared,
//	  success notification
//
// A Snapshot obtained earlier is never modified by later operations, so
// renderers may compare or keep old values.
//
// # Filtering
//
// Visible recomputes the filtered list from the search text on each call.
// There is no cache; the screen calls it once per render.
//
// # Notifications
//
// The add-game flow reports its outcome through a Notifier. The UI supplies
// its toast queue; tests pass a NotifierFunc that records calls.
//
// # Concurrency Model
//
// All operations run on the UI event loop. The Store has no lock and must
// not be shared across goroutines.
package state
