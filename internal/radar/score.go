package radar

import "strings"

// Scorer maps (title, summary) to a non-negative importance score. Given
// identical text the score is identical; there is no randomness and no
// external state, and no upper bound is enforced here.
type Scorer struct {
	catalog *Catalog
}

// NewScorer constructs a scorer over the given catalog.
func NewScorer(catalog *Catalog) Scorer {
	return Scorer{catalog: catalog}
}

// Score applies the additive weights: +4 for each distinct strong phrase
// present (repeats of the same phrase do not multiply), +3 if any catalog
// artist appears, +5 for any always-allow mega event, +1 if any catalog
// country is mentioned.
func (s Scorer) Score(title, summary string) int {
	t := strings.ToLower(title + " " + summary)
	score := 0
	for _, phrase := range s.catalog.ScorePhrases {
		if strings.Contains(t, phrase) {
			score += 4
		}
	}
	if containsAny(t, s.catalog.artistsLower) {
		score += 3
	}
	if containsAny(t, s.catalog.AlwaysAllow) {
		score += 5
	}
	if containsAny(t, s.catalog.countriesLower) {
		score++
	}
	return score
}
