package radar

import (
	"encoding/json"
	"fmt"
)

type rawItem struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Link        string `json:"link"`
	Summary     string `json:"summary"`
	Source      string `json:"source"`
	PublishedAt string `json:"published_at"`
}

// decodeItems parses a JSON array of feed items. Entries without title or
// link are dropped silently; timestamps are parsed best-effort and left
// zero when no layout matches.
func decodeItems(data []byte) ([]Item, error) {
	var raws []rawItem
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, fmt.Errorf("decode JSON: %w", err)
	}

	items := make([]Item, 0, len(raws))
	for _, r := range raws {
		if r.Title == "" || r.Link == "" {
			continue
		}
		item := Item{
			ID:      r.ID,
			Title:   r.Title,
			Link:    r.Link,
			Summary: r.Summary,
			Source:  r.Source,
		}
		if ts, ok := ParseWhen(r.PublishedAt); ok {
			item.PublishedAt = ts
		}
		items = append(items, item)
	}
	return items, nil
}
