package ui

import "testing"

func TestTruncate(t *testing.T) {
	cases := []struct {
		name  string
		in    string
		limit int
		want  string
	}{
		{"fits", "Neon Racers", 20, "Neon Racers"},
		{"trimmed", "  Neon  ", 20, "Neon"},
		{"ellipsis", "Cyberpunk Warriors", 10, "Cyberpu..."},
		{"tiny limit", "Cyberpunk", 3, "Cyb"},
		{"zero limit", "Cyberpunk", 0, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := truncate(tc.in, tc.limit); got != tc.want {
				t.Fatalf("truncate(%q, %d) = %q, want %q", tc.in, tc.limit, got, tc.want)
			}
		})
	}
}

func TestTruncateMiddle(t *testing.T) {
	if got := truncateMiddle("  ", 10); got != "" {
		t.Fatalf("truncateMiddle blank = %q, want empty", got)
	}
	if got := truncateMiddle("abcdefgh", 4); got != "abcd" {
		t.Fatalf("truncateMiddle small limit = %q, want abcd", got)
	}
	got := truncateMiddle("/home/user/games/launcher.sh", 16)
	if got != "/home...ncher.sh" {
		t.Fatalf("truncateMiddle = %q, want /home...ncher.sh", got)
	}
}
