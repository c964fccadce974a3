// Package library defines the Game record and the pure operations the
// launcher screen performs on a game sequence.
//
// Every function here treats its input slice as read-only and returns a new
// slice, so a snapshot that was handed to the renderer never changes under
// it:
//
//	games := library.Seed()
//	next := library.ToggleFavorite(games, "2")
//	// games[1].IsFavorite is still true, next[1].IsFavorite is false
//
// Search is recomputed from scratch on every call. Libraries here hold tens
// of entries, so there is no index.
package library
