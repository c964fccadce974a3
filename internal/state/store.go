package state

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/five82/arcade/internal/library"
)

// ErrIncompleteGame is returned by AddGame when no file is selected or the
// title is blank.
var ErrIncompleteGame = errors.New("a file and a title are required")

// Notification messages shown by the add-game flow.
const (
	incompleteTitle       = "Error"
	incompleteDescription = "Select a file and enter a game title"
	addedTitle            = "Game added"
)

// Snapshot is the full state of the library screen at one point in time.
type Snapshot struct {
	Games        []library.Game
	Search       string
	DialogOpen   bool
	PendingTitle string
	PendingFile  library.FileRef
}

// HasPendingFile reports whether a file has been picked for the next game.
func (s Snapshot) HasPendingFile() bool {
	return !s.PendingFile.IsZero()
}

// Options configure a Store.
type Options struct {
	Games            []library.Game // nil seeds the sample library
	Notifier         Notifier       // nil discards notifications
	NewID            func() string  // nil uses library.NewID
	PlaceholderImage string         // empty uses library.PlaceholderImage
	Logger           *zerolog.Logger // nil disables logging
}

// Store owns the library screen state. Every operation replaces the current
// snapshot with a new value; slices handed out by Snapshot are never written.
// A Store belongs to one view and is not safe for concurrent use.
type Store struct {
	snapshot    Snapshot
	notify      Notifier
	newID       func() string
	placeholder string
	log         zerolog.Logger
}

// New creates a Store with the given options.
func New(opts Options) *Store {
	games := opts.Games
	if games == nil {
		games = library.Seed()
	}
	notify := opts.Notifier
	if notify == nil {
		notify = discard{}
	}
	newID := opts.NewID
	if newID == nil {
		newID = library.NewID
	}
	placeholder := strings.TrimSpace(opts.PlaceholderImage)
	if placeholder == "" {
		placeholder = library.PlaceholderImage
	}
	logger := zerolog.Nop()
	if opts.Logger != nil {
		logger = *opts.Logger
	}
	return &Store{
		snapshot:    Snapshot{Games: cloneGames(games)},
		notify:      notify,
		newID:       newID,
		placeholder: placeholder,
		log:         logger,
	}
}

// Snapshot returns the current state.
func (s *Store) Snapshot() Snapshot {
	return s.snapshot
}

// Visible returns the games matching the current search text.
func (s *Store) Visible() []library.Game {
	return library.Search(s.snapshot.Search, s.snapshot.Games)
}

// SetSearch replaces the search text.
func (s *Store) SetSearch(query string) {
	next := s.snapshot
	next.Search = query
	s.snapshot = next
}

// ToggleFavorite flips the favorite flag of the game with the given id.
func (s *Store) ToggleFavorite(id string) {
	next := s.snapshot
	next.Games = library.ToggleFavorite(s.snapshot.Games, id)
	s.snapshot = next
	s.log.Debug().Str("id", id).Msg("toggled favorite")
}

// OpenDialog shows the add-game form.
func (s *Store) OpenDialog() {
	next := s.snapshot
	next.DialogOpen = true
	s.snapshot = next
}

// CloseDialog hides the add-game form. Pending input is kept.
func (s *Store) CloseDialog() {
	next := s.snapshot
	next.DialogOpen = false
	s.snapshot = next
}

// SetPendingTitle replaces the title typed into the add-game form.
func (s *Store) SetPendingTitle(title string) {
	next := s.snapshot
	next.PendingTitle = title
	s.snapshot = next
}

// SelectFile records the picked file. A blank pending title is filled with
// the file name minus its last extension. An empty ref is ignored.
func (s *Store) SelectFile(ref library.FileRef) {
	if ref.IsZero() {
		return
	}
	next := s.snapshot
	next.PendingFile = ref
	if strings.TrimSpace(next.PendingTitle) == "" {
		next.PendingTitle = library.TitleFromFileName(ref.Name)
	}
	s.snapshot = next
	s.log.Debug().Str("file", ref.Name).Msg("selected file")
}

// AddGame turns the pending file and title into a new game at the front of
// the library, closes the dialog and clears the pending input. When either
// is missing nothing changes, an error notification is sent and
// ErrIncompleteGame is returned.
func (s *Store) AddGame() (library.Game, error) {
	title := strings.TrimSpace(s.snapshot.PendingTitle)
	if !s.snapshot.HasPendingFile() || title == "" {
		s.notify.Notify(Notification{
			Title:       incompleteTitle,
			Description: incompleteDescription,
			Variant:     VariantError,
		})
		s.log.Debug().
			Bool("has_file", s.snapshot.HasPendingFile()).
			Bool("has_title", title != "").
			Msg("add game rejected")
		return library.Game{}, ErrIncompleteGame
	}

	game := library.Game{
		ID:       s.newID(),
		Title:    title,
		Image:    s.placeholder,
		FileName: s.snapshot.PendingFile.Name,
	}

	next := s.snapshot
	next.Games = library.Prepend(s.snapshot.Games, game)
	next.DialogOpen = false
	next.PendingTitle = ""
	next.PendingFile = library.FileRef{}
	s.snapshot = next

	s.notify.Notify(Notification{
		Title:       addedTitle,
		Description: fmt.Sprintf("%s was added to your library", game.Title),
		Variant:     VariantDefault,
	})
	s.log.Info().Str("id", game.ID).Str("title", game.Title).Str("file", game.FileName).Msg("game added")
	return game, nil
}

func cloneGames(games []library.Game) []library.Game {
	if len(games) == 0 {
		return nil
	}
	dup := make([]library.Game, len(games))
	copy(dup, games)
	return dup
}
