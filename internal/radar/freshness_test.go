package radar

import (
	"testing"
	"time"
)

func TestParseWhenKnownLayouts(t *testing.T) {
	cases := []struct {
		raw  string
		want time.Time
	}{
		{"Mon, 02 Jan 2006 15:04:05 -0700", time.Date(2006, 1, 2, 15, 4, 5, 0, time.FixedZone("", -7*3600))},
		{"2026-08-28T09:00:00Z", time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC)},
		{"2026-08-28 09:00:00", time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC)},
		{"2026-08-28", time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)},
	}
	for _, tc := range cases {
		got, ok := ParseWhen(tc.raw)
		if !ok {
			t.Fatalf("expected %q to parse", tc.raw)
		}
		if !got.Equal(tc.want) {
			t.Fatalf("parse %q: got %v, want %v", tc.raw, got, tc.want)
		}
	}
}

func TestParseWhenRejectsGarbage(t *testing.T) {
	for _, raw := range []string{"", "   ", "yesterday", "13/45/2026"} {
		if _, ok := ParseWhen(raw); ok {
			t.Fatalf("expected %q to fail parsing", raw)
		}
	}
}

func TestFreshWithinWindow(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	item := Item{Title: "t", Link: "l", PublishedAt: now.Add(-71 * time.Hour)}
	if !Fresh(item, now, 72*time.Hour) {
		t.Fatalf("item inside the window should be fresh")
	}

	item.PublishedAt = now.Add(-73 * time.Hour)
	if Fresh(item, now, 72*time.Hour) {
		t.Fatalf("item outside the window should be stale")
	}
}

func TestFreshFailsClosedOnUnknownAge(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	item := Item{Title: "t", Link: "l"}
	if Fresh(item, now, 72*time.Hour) {
		t.Fatalf("unknown publication time must never count as fresh")
	}
}
