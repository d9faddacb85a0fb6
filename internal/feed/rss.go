// Package feed implements the feed-retrieval collaborators: RSS sources
// parsed with gofeed and the YAML catalog of feed URLs.
package feed

import (
	"context"
	"fmt"

	"github.com/mmcdole/gofeed"

	"eventradar/internal/radar"
)

// RSSSource fetches and parses a single RSS/Atom feed.
type RSSSource struct {
	url    string
	depth  int
	parser *gofeed.Parser
}

// NewRSSSource builds a source for the given feed URL scanning at most
// depth entries per fetch.
func NewRSSSource(url string, depth int) *RSSSource {
	if depth <= 0 {
		depth = 250
	}
	return &RSSSource{url: url, depth: depth, parser: gofeed.NewParser()}
}

// Name returns the feed URL.
func (s *RSSSource) Name() string { return s.url }

// Fetch retrieves the feed and maps its entries to raw items. Timestamps
// are taken from the parsed published/updated fields when available, with a
// best-effort string parse as fallback; entries with no parseable time are
// passed through with an unknown age and fail the freshness filter later.
func (s *RSSSource) Fetch(ctx context.Context) ([]radar.Item, error) {
	parsed, err := s.parser.ParseURLWithContext(s.url, ctx)
	if err != nil {
		return nil, fmt.Errorf("parse feed %s: %w", s.url, err)
	}

	entries := parsed.Items
	if len(entries) > s.depth {
		entries = entries[:s.depth]
	}

	label := parsed.Title
	if label == "" {
		label = s.url
	}

	items := make([]radar.Item, 0, len(entries))
	for _, e := range entries {
		item := radar.Item{
			Title:   e.Title,
			Link:    e.Link,
			Summary: e.Description,
			Source:  label,
		}
		switch {
		case e.PublishedParsed != nil:
			item.PublishedAt = *e.PublishedParsed
		case e.UpdatedParsed != nil:
			item.PublishedAt = *e.UpdatedParsed
		default:
			if ts, ok := radar.ParseWhen(e.Published); ok {
				item.PublishedAt = ts
			} else if ts, ok := radar.ParseWhen(e.Updated); ok {
				item.PublishedAt = ts
			}
		}
		items = append(items, item)
	}
	return items, nil
}
