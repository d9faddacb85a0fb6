package radar

import (
	"strings"
	"time"
)

// timeLayouts are tried in order when parsing feed timestamps. RSS in the
// wild mixes RFC 822 flavours with ISO strings, so the chain is deliberately
// permissive.
var timeLayouts = []string{
	time.RFC1123Z,
	time.RFC1123,
	time.RFC822Z,
	time.RFC822,
	time.RFC3339,
	"Mon, 2 Jan 2006 15:04:05 -0700",
	"Mon, 2 Jan 2006 15:04:05 MST",
	"2006-01-02T15:04:05Z0700",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseWhen attempts a best-effort parse of a feed timestamp string. The
// second return value is false when no layout matched; callers must treat
// that as "unknown", never as "now" or the epoch.
func ParseWhen(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range timeLayouts {
		if ts, err := time.Parse(layout, raw); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}

// Fresh reports whether the item was published within maxAge of now. Items
// with no known publication time fail closed: unknown age is never assumed
// fresh.
func Fresh(item Item, now time.Time, maxAge time.Duration) bool {
	if item.PublishedAt.IsZero() {
		return false
	}
	return now.Sub(item.PublishedAt) <= maxAge
}
