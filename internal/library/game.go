package library

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
)

// PlaceholderImage is the cover reference given to manually added games.
const PlaceholderImage = "/placeholder.svg"

// Extensions lists the file types the add-game picker accepts.
var Extensions = []string{".exe", ".app", ".sh", ".bat"}

// Game is one entry in the library.
type Game struct {
	ID         string
	Title      string
	Image      string
	IsFavorite bool
	FileName   string // base name of the picked file, empty for seeded games
}

// FileRef is a file chosen in the picker. Only the name is used; the file
// is never opened.
type FileRef struct {
	Name string
	Path string
}

// IsZero reports whether no file has been chosen.
func (f FileRef) IsZero() bool {
	return strings.TrimSpace(f.Name) == ""
}

// Seed returns the sample games the screen starts with.
func Seed() []Game {
	return []Game{
		{
			ID:    "1",
			Title: "Cyberpunk Warriors",
			Image: "https://images.unsplash.com/photo-1538481199705-c710c4e965fc?w=800",
		},
		{
			ID:         "2",
			Title:      "Neon Racers",
			Image:      "https://images.unsplash.com/photo-1552820728-8b83bb6b773f?w=800",
			IsFavorite: true,
		},
		{
			ID:    "3",
			Title: "Space Odyssey",
			Image: "https://images.unsplash.com/photo-1614732414444-096e5f1122d5?w=800",
		},
		{
			ID:    "4",
			Title: "Digital Legends",
			Image: "https://images.unsplash.com/photo-1542751371-adc38448a05e?w=800",
		},
	}
}

// Search returns the games whose title contains query, ignoring case.
// Relative order is preserved and an empty query matches everything.
func Search(query string, games []Game) []Game {
	out := make([]Game, 0, len(games))
	needle := fold(query)
	for _, g := range games {
		if strings.Contains(fold(g.Title), needle) {
			out = append(out, g)
		}
	}
	return out
}

// ToggleFavorite returns a copy of games with the favorite flag of id
// inverted. Unknown ids yield an unchanged copy.
func ToggleFavorite(games []Game, id string) []Game {
	out := make([]Game, len(games))
	for i, g := range games {
		if g.ID == id {
			g.IsFavorite = !g.IsFavorite
		}
		out[i] = g
	}
	return out
}

// Prepend returns a new slice with g ahead of games.
func Prepend(games []Game, g Game) []Game {
	out := make([]Game, 0, len(games)+1)
	out = append(out, g)
	return append(out, games...)
}

// CountFavorites returns how many games are flagged as favorite.
func CountFavorites(games []Game) int {
	n := 0
	for _, g := range games {
		if g.IsFavorite {
			n++
		}
	}
	return n
}

// TitleFromFileName strips the final extension from a file name:
// "launcher.sh" becomes "launcher" and "game.tar.gz" becomes "game.tar".
func TitleFromFileName(name string) string {
	idx := strings.LastIndex(name, ".")
	if idx < 0 || idx == len(name)-1 {
		return name
	}
	if strings.ContainsAny(name[idx+1:], `/\`) {
		return name
	}
	return name[:idx]
}

// HasAllowedExtension reports whether name ends in one of exts, ignoring case.
func HasAllowedExtension(name string, exts []string) bool {
	lower := strings.ToLower(name)
	for _, ext := range exts {
		if ext != "" && strings.HasSuffix(lower, strings.ToLower(ext)) {
			return true
		}
	}
	return false
}

// NewID returns a collision resistant identifier for a new game.
func NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		if id, err = uuid.NewRandom(); err != nil {
			return fmt.Sprintf("game-%d", time.Now().UnixNano())
		}
	}
	return id.String()
}

func fold(s string) string {
	return cases.Fold().String(s)
}
