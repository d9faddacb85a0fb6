package radar

import "strings"

// Classifier decides whether a block of free text looks like a genuine event
// announcement.
type Classifier struct {
	catalog *Catalog
}

// NewClassifier constructs a classifier over the given catalog.
func NewClassifier(catalog *Catalog) Classifier {
	return Classifier{catalog: catalog}
}

// Relevant applies the rules in strict priority order:
//  1. any exclude phrase rejects, no matter what else is present
//  2. any always-allow (mega event) phrase accepts
//  3. any include (announcement vocabulary) phrase accepts
//  4. a known artist together with a generic event word accepts
//
// Anything else is rejected.
func (c Classifier) Relevant(text string) bool {
	t := strings.ToLower(text)
	if containsAny(t, c.catalog.ExcludePhrases) {
		return false
	}
	if containsAny(t, c.catalog.AlwaysAllow) {
		return true
	}
	if containsAny(t, c.catalog.IncludePhrases) {
		return true
	}
	return c.artistEventMatch(t)
}

// artistEventMatch recovers true positives that avoid the canned phrase
// vocabulary: a catalog artist plus at least one weak event noun.
func (c Classifier) artistEventMatch(lowered string) bool {
	if !containsAny(lowered, c.catalog.artistsLower) {
		return false
	}
	return containsAny(lowered, c.catalog.EventWords)
}

// containsAny reports whether any of the phrases occurs in the already
// lowercased text.
func containsAny(lowered string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(lowered, p) {
			return true
		}
	}
	return false
}
