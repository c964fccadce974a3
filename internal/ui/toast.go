package ui

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/five82/arcade/internal/state"
)

// toast is a notification waiting to expire.
type toast struct {
	state.Notification
	expires time.Time
}

// toastQueue is the screen's notification sink. The store pushes into it
// from inside Update; the tick prunes it.
type toastQueue struct {
	ttl   time.Duration
	now   func() time.Time
	items []toast
	log   zerolog.Logger
}

func newToastQueue(ttl time.Duration, log zerolog.Logger) *toastQueue {
	if ttl <= 0 {
		ttl = DefaultToastTTL
	}
	return &toastQueue{ttl: ttl, now: time.Now, log: log}
}

// Notify implements state.Notifier.
func (q *toastQueue) Notify(n state.Notification) {
	q.items = append(q.items, toast{Notification: n, expires: q.now().Add(q.ttl)})
	if overflow := len(q.items) - MaxToasts; overflow > 0 {
		q.items = append([]toast(nil), q.items[overflow:]...)
	}
	q.log.Debug().
		Str("title", n.Title).
		Str("variant", n.Variant.String()).
		Msg(n.Description)
}

// prune drops expired toasts and reports whether anything was removed.
func (q *toastQueue) prune() bool {
	now := q.now()
	kept := q.items[:0]
	for _, t := range q.items {
		if now.Before(t.expires) {
			kept = append(kept, t)
		}
	}
	removed := len(kept) != len(q.items)
	q.items = kept
	return removed
}

func (q *toastQueue) active() []toast {
	return q.items
}

// renderToasts renders one line per active toast, newest last.
func (m Model) renderToasts() string {
	items := m.toasts.active()
	if len(items) == 0 {
		return ""
	}
	styles := m.theme.Styles().WithBackground(m.theme.SurfaceAlt)
	bg := NewBgStyle(m.theme.SurfaceAlt)

	lines := make([]string, 0, len(items))
	for _, t := range items {
		titleStyle := styles.SuccessText
		marker := "✓"
		if t.Variant == state.VariantError {
			titleStyle = styles.DangerText
			marker = "✗"
		}
		line := bg.Render(marker+" "+t.Title, titleStyle)
		if desc := strings.TrimSpace(t.Description); desc != "" {
			line += bg.Spaces(2) + bg.Render(truncate(desc, max(m.width-lipgloss.Width(line)-4, 0)), styles.Text)
		}
		lines = append(lines, bg.FillLine(bg.Space()+line, m.width))
	}
	return strings.Join(lines, "\n")
}
