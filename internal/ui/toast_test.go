package ui

import (
	"strconv"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/five82/arcade/internal/state"
)

func TestToastQueueExpires(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	q := newToastQueue(time.Second, zerolog.Nop())
	q.now = func() time.Time { return now }

	q.Notify(state.Notification{Title: "Game added"})
	if q.prune() {
		t.Fatalf("prune removed a fresh toast")
	}
	if len(q.active()) != 1 {
		t.Fatalf("active = %d, want 1", len(q.active()))
	}

	now = now.Add(2 * time.Second)
	if !q.prune() {
		t.Fatalf("prune did not report the expired toast")
	}
	if len(q.active()) != 0 {
		t.Fatalf("active = %d, want 0", len(q.active()))
	}
}

func TestToastQueueCapsCount(t *testing.T) {
	q := newToastQueue(0, zerolog.Nop())
	if q.ttl != DefaultToastTTL {
		t.Fatalf("ttl = %v, want %v", q.ttl, DefaultToastTTL)
	}
	for i := 0; i < MaxToasts+2; i++ {
		q.Notify(state.Notification{Title: strconv.Itoa(i)})
	}
	items := q.active()
	if len(items) != MaxToasts {
		t.Fatalf("active = %d, want %d", len(items), MaxToasts)
	}
	if items[0].Title != "2" {
		t.Fatalf("oldest kept toast = %q, want 2", items[0].Title)
	}
}
