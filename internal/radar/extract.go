package radar

import (
	"strings"
	"unicode"
)

// Extractor pulls structured signals out of combined title+summary text.
// All sub-extractors are pure functions over the catalog.
type Extractor struct {
	catalog *Catalog
}

// NewExtractor constructs an extractor over the given catalog.
func NewExtractor(catalog *Catalog) Extractor {
	return Extractor{catalog: catalog}
}

// Artist returns the first catalog artist found in the text, in catalog
// iteration order. Empty means "unknown artist", which is a valid state
// distinct from "no event".
func (e Extractor) Artist(text string) string {
	t := strings.ToLower(text)
	for i, a := range e.catalog.artistsLower {
		if strings.Contains(t, a) {
			return e.catalog.Artists[i]
		}
	}
	return ""
}

// Country returns the first catalog country mentioned in the text. When the
// catalog has no hit it falls back to a capitalized phrase following the
// word "in" ("kicks off in Vietnam next spring" yields "Vietnam"). Empty
// when neither succeeds.
func (e Extractor) Country(text string) string {
	t := strings.ToLower(text)
	for i, c := range e.catalog.countriesLower {
		if strings.Contains(t, c) {
			return e.catalog.Countries[i]
		}
	}
	if m := e.catalog.countryFallRe.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}

// CategoryOf walks the ordered category buckets and returns the first one
// with a phrase hit, or GEN when nothing matches.
func (e Extractor) CategoryOf(text string) Category {
	t := strings.ToLower(text)
	for _, bucket := range e.catalog.CategoryBuckets {
		if containsAny(t, bucket.Phrases) {
			return bucket.Category
		}
	}
	return CategoryGeneral
}

// Signal returns the first matched signal phrase (first-ever, reunion,
// residency, venue change and so on), capitalized for display. It is never
// consulted for admission or scoring.
func (e Extractor) Signal(text string) string {
	m := e.catalog.signalRe.FindString(text)
	if m == "" {
		return ""
	}
	return capitalize(strings.TrimSpace(m))
}

func capitalize(s string) string {
	runes := []rune(strings.ToLower(s))
	if len(runes) == 0 {
		return ""
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
