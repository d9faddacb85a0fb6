// Package risk scores upcoming fixtures for disruption risk. It is a pure,
// stateless scoring model over static lookup tables; it shares no dedup
// state with the digest pipeline.
package risk

import (
	"strings"
	"time"
)

// Fixture is one upcoming match as supplied by the fixture-fetch
// collaborator.
type Fixture struct {
	Home        string    `json:"home"`
	Away        string    `json:"away"`
	Competition string    `json:"competition"`
	Kickoff     time.Time `json:"utcKickoff"`
}

// Signals carries the contextual point contributions for one fixture.
// Unknown signals stay zero and simply do not contribute.
type Signals struct {
	Rivalry        int
	Venue          int
	Weather        int
	Congestion     int
	OddsVolatility int
	Travel         int
}

// VenueSignal maps venue context to points: +5 for a neutral venue, +10
// when the fixture was recently moved.
func VenueSignal(neutral, recentlyMoved bool) int {
	score := 0
	if neutral {
		score += 5
	}
	if recentlyMoved {
		score += 10
	}
	return score
}

// WeatherSignal maps a weather severity in [0.0, 1.0] to 0–20 points.
func WeatherSignal(severity float64) int {
	if severity < 0 {
		return 0
	}
	if severity > 1 {
		severity = 1
	}
	return int(severity * 20)
}

// ScoredFixture is a fixture with its computed risk and reasons.
type ScoredFixture struct {
	Fixture Fixture
	Score   int
	Why     string
}

// Model computes risk scores. The rivalry index is its only dependency.
type Model struct {
	rivalries *RivalryIndex
}

// NewModel constructs a model over the given rivalry index.
func NewModel(idx *RivalryIndex) Model {
	return Model{rivalries: idx}
}

// Score sums the signal contributions, bounded to [0, 100], and returns a
// comma-joined reason string.
func (m Model) Score(fx Fixture, sig Signals) (int, string) {
	var reasons []string
	score := 0

	if sig.Rivalry > 0 {
		score += sig.Rivalry
		reasons = append(reasons, "Rivalry/Derby")
	}
	if sig.Venue > 0 {
		score += sig.Venue
		reasons = append(reasons, "Venue considerations")
	}
	if sig.Weather > 0 {
		score += sig.Weather
		reasons = append(reasons, "Weather risk")
	}
	if sig.Congestion > 0 {
		score += sig.Congestion
		reasons = append(reasons, "Congested schedule")
	}
	if sig.OddsVolatility > 0 {
		score += sig.OddsVolatility
		reasons = append(reasons, "Betting volatility")
	}
	if sig.Travel > 0 {
		score += sig.Travel
		reasons = append(reasons, "Travel disruption")
	}

	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}

	why := "Low baseline risk"
	if len(reasons) > 0 {
		why = strings.Join(reasons, ", ")
	}
	return score, why
}

// Assess scores a fixture using the signals derivable from the fixture
// itself (currently the rivalry lookup; the remaining context defaults to
// zero until richer inputs are wired in).
func (m Model) Assess(fx Fixture) ScoredFixture {
	var sig Signals
	if ok, bonus, _ := m.rivalries.Detect(fx.Home, fx.Away); ok {
		sig.Rivalry = bonus
	}
	score, why := m.Score(fx, sig)
	return ScoredFixture{Fixture: fx, Score: score, Why: why}
}
