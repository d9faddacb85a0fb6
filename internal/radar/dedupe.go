package radar

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// TitleKey fingerprints a title as the first 16 hex characters of the
// SHA-256 of the full lowercased text. It is an intentionally lossy
// fingerprint for dedup, not a unique ID: semantically identical retitles
// hash apart, identical titles from different outlets collide on purpose.
func TitleKey(title string) string {
	sum := sha256.Sum256([]byte(strings.ToLower(title)))
	return hex.EncodeToString(sum[:])[:16]
}

// EventKey composes a fingerprint for "the same underlying real-world
// event" across differently worded coverage. With a known artist the key is
// artist|country|category; without one it falls back to
// country|category|titleKey so unrelated generic items do not collapse into
// a single bucket.
func EventKey(artist, country string, category Category, titleKey string) string {
	if country == "" {
		country = "UNK"
	}
	if artist == "" {
		return strings.ToLower(country) + "|" + string(category) + "|" + titleKey
	}
	return strings.ToLower(artist) + "|" + strings.ToLower(country) + "|" + string(category)
}
