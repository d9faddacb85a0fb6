package feed

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"eventradar/internal/radar"
)

// List is the catalog of official feed URLs, grouped by beat. Groups exist
// for maintainability only; the pipeline consumes the flat union.
type List struct {
	MusicTrade  []string `yaml:"music_trade"`
	Ticketing   []string `yaml:"ticketing"`
	Festivals   []string `yaml:"festivals"`
	Venues      []string `yaml:"venues"`
	SportsWires []string `yaml:"sports_wires"`
	Federations []string `yaml:"federations"`
	Leagues     []string `yaml:"leagues"`
}

// LoadList reads the feed catalog from a YAML file.
func LoadList(path string) (List, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return List{}, fmt.Errorf("read feeds file %s: %w", path, err)
	}
	var list List
	if err := yaml.Unmarshal(raw, &list); err != nil {
		return List{}, fmt.Errorf("decode feeds file %s: %w", path, err)
	}
	return list, nil
}

// URLs returns every feed URL across all groups, in declaration order.
func (l List) URLs() []string {
	var urls []string
	for _, group := range [][]string{
		l.MusicTrade, l.Ticketing, l.Festivals, l.Venues,
		l.SportsWires, l.Federations, l.Leagues,
	} {
		urls = append(urls, group...)
	}
	return urls
}

// Sources instantiates an RSS source per catalog URL.
func (l List) Sources(depth int) []radar.Source {
	urls := l.URLs()
	sources := make([]radar.Source, 0, len(urls))
	for _, url := range urls {
		sources = append(sources, NewRSSSource(url, depth))
	}
	return sources
}
