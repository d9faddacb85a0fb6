package risk

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type rawFixture struct {
	Home        string `json:"home"`
	Away        string `json:"away"`
	Competition string `json:"competition"`
	Kickoff     string `json:"utcKickoff"`
}

// LoadFixtures reads fixtures from a JSON file produced by the fixture
// scraper. Entries missing either team are skipped; kickoff times that fail
// to parse are left zero.
func LoadFixtures(path string) ([]Fixture, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixtures %s: %w", path, err)
	}

	var raws []rawFixture
	if err := json.Unmarshal(raw, &raws); err != nil {
		return nil, fmt.Errorf("decode fixtures %s: %w", path, err)
	}

	fixtures := make([]Fixture, 0, len(raws))
	for _, r := range raws {
		if r.Home == "" || r.Away == "" {
			continue
		}
		fx := Fixture{Home: r.Home, Away: r.Away, Competition: r.Competition}
		if ts, err := time.Parse(time.RFC3339, r.Kickoff); err == nil {
			fx.Kickoff = ts
		}
		fixtures = append(fixtures, fx)
	}
	return fixtures, nil
}
