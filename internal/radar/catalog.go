package radar

import (
	"regexp"
	"strings"
)

// CategoryBucket binds a category to the phrases that indicate it. Buckets
// are evaluated in order; the first bucket with a phrase hit wins.
type CategoryBucket struct {
	Category Category
	Phrases  []string
}

// Catalog bundles the immutable lookup tables the classifier, extractor and
// scorer depend on. Build one with NewCatalog and treat it as read-only;
// tests can substitute a smaller fixture without touching pipeline logic.
type Catalog struct {
	Artists         []string
	Countries       []string
	IncludePhrases  []string
	AlwaysAllow     []string
	ExcludePhrases  []string
	EventWords      []string
	ScorePhrases    []string
	CategoryBuckets []CategoryBucket

	artistsLower   []string
	countriesLower []string
	signalRe       *regexp.Regexp
	countryFallRe  *regexp.Regexp
}

// NewCatalog precomputes the lowercase views and compiles the signal
// patterns. Phrase lists are normalised to lowercase; matching is always
// case-insensitive substring containment.
func NewCatalog(c Catalog) *Catalog {
	c.artistsLower = lowerAll(c.Artists)
	c.countriesLower = lowerAll(c.Countries)
	c.IncludePhrases = lowerAll(c.IncludePhrases)
	c.AlwaysAllow = lowerAll(c.AlwaysAllow)
	c.ExcludePhrases = lowerAll(c.ExcludePhrases)
	c.EventWords = lowerAll(c.EventWords)
	c.ScorePhrases = lowerAll(c.ScorePhrases)
	buckets := make([]CategoryBucket, len(c.CategoryBuckets))
	for i, b := range c.CategoryBuckets {
		buckets[i] = CategoryBucket{Category: b.Category, Phrases: lowerAll(b.Phrases)}
	}
	c.CategoryBuckets = buckets
	c.signalRe = regexp.MustCompile("(?i)" + strings.Join(signalPatterns, "|"))
	c.countryFallRe = regexp.MustCompile(`\bin\s+([A-Z][a-z]+(?:\s+[A-Z][a-z]+)*)`)
	return &c
}

func lowerAll(values []string) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = strings.ToLower(v)
	}
	return out
}

var signalPatterns = []string{
	`\bfirst (?:time|ever) in (?:[A-Za-z\s]+)`,
	`\bfirst[-\s]?ever\b`,
	`\bafter (?:\d+)\s+years\b`,
	`\bsince (?:19|20)\d{2}\b`,
	`\breunion|reunite|original lineup\b`,
	`\bresidency\b`,
	`\b(?:stadium|arena) tour\b`,
	`\badds? \d+ (?:new )?dates?\b`,
	`\bannounces? (?:world )?tour\b`,
	`\bvenue change\b`,
	`\bchanged venue\b`,
	`\bmoved to\b`,
	`\brelocated\b`,
	`\brescheduled\b`,
	`\bdate change\b`,
}

// DefaultCatalog returns the production lookup tables.
func DefaultCatalog() *Catalog {
	return NewCatalog(Catalog{
		Artists:         defaultArtists,
		Countries:       defaultCountries,
		IncludePhrases:  defaultIncludePhrases,
		AlwaysAllow:     defaultAlwaysAllow,
		ExcludePhrases:  defaultExcludePhrases,
		EventWords:      defaultEventWords,
		ScorePhrases:    defaultScorePhrases,
		CategoryBuckets: defaultCategoryBuckets,
	})
}

var defaultIncludePhrases = []string{
	// music/event announces
	"announces tour", "announced tour", "announce tour", "announces dates", "announced dates", "sets dates", "confirms dates",
	"world tour", "stadium tour", "arena tour",
	"tour dates", "dates announced", "adds dates", "new dates", "extra date", "second show", "adds second night",
	"residency", "headline show", "headlining show", "festival lineup", "lineup announced", "line-up announced",
	"tickets on sale", "ticket pre-sale", "presale", "pre-sale", "on sale",
	// sports fixtures / venues
	"fixture list", "fixtures announced", "fixtures confirmed", "schedule released", "schedule announced", "match schedule",
	"draw announced", "draw made", "host city announced", "host selected", "host city selected",
	"venue change", "changed venue", "venue confirmed", "moved to", "relocated", "rescheduled", "date change",
}

var defaultAlwaysAllow = []string{
	"olympics", "fifa world cup", "uefa euro", "copa américa", "copa america",
	"icc cricket world cup", "formula 1", "ryder cup", "indian wells", "super bowl",
}

var defaultExcludePhrases = []string{
	"how to watch", "when and where to watch", "live streaming", "livestream",
	"tv channel", "broadcast info", "what time is", "kick-off time", "line-ups",
	"preview", "odds", "prediction", "rumor", "rumour", "speculation", "transfer",
	"injury", "sidelined", "contract", "interview", "feature", "opinion", "column",
	"review", "recap", "ratings", "photo gallery", "photos:", "fan is visiting", "budget",
	"box office", "chart", "streaming numbers", "behind the scenes",
}

var defaultArtists = []string{
	"Beyoncé", "Taylor Swift", "Adele", "Ed Sheeran", "Harry Styles", "Billie Eilish",
	"Dua Lipa", "Ariana Grande", "Justin Bieber", "Olivia Rodrigo", "Lady Gaga", "Katy Perry", "Shakira",
	"Coldplay", "Imagine Dragons", "Maroon 5", "The Killers", "Muse", "Foo Fighters",
	"Red Hot Chili Peppers", "Metallica", "Green Day", "U2", "Oasis", "Blur", "Arctic Monkeys",
	"Radiohead", "The Rolling Stones", "ABBA", "Genesis", "The Eagles", "Fleetwood Mac",
	"Bruce Springsteen", "Paul McCartney", "Elton John", "Billy Joel", "Madonna", "Celine Dion",
	"Guns N' Roses", "Kiss", "AC/DC", "Pearl Jam", "Nirvana", "The Who", "Bon Jovi", "Aerosmith",
	"Def Leppard", "Journey", "Bad Bunny", "Karol G", "J Balvin", "Maluma", "Rosalía", "Peso Pluma",
	"Rauw Alejandro", "Daddy Yankee", "Enrique Iglesias", "Luis Miguel", "Drake", "The Weeknd",
	"Travis Scott", "Kendrick Lamar", "Kanye West", "Nicki Minaj", "Doja Cat", "Post Malone",
	"Frank Ocean", "SZA", "BTS", "BLACKPINK", "SEVENTEEN", "Stray Kids", "TWICE", "NCT", "ENHYPEN",
	"TXT", "NewJeans", "Aespa", "ITZY", "IVE", "LE SSERAFIM", "EXO", "Garth Brooks", "Luke Combs",
	"Morgan Wallen", "Chris Stapleton", "Carrie Underwood", "George Strait", "Kacey Musgraves", "Dolly Parton",
}

var defaultCountries = []string{
	"United States", "USA", "US", "UK", "United Kingdom", "England", "Scotland", "Wales",
	"Ireland", "France", "Germany", "Spain", "Portugal", "Italy", "Netherlands", "Belgium",
	"Sweden", "Norway", "Denmark", "Finland", "Poland", "Czech Republic", "Austria",
	"Switzerland", "Greece", "Turkey", "Russia", "Ukraine", "Canada", "Mexico", "Brazil",
	"Argentina", "Chile", "Colombia", "Peru", "Japan", "South Korea", "Korea", "China",
	"Hong Kong", "Taiwan", "Singapore", "Malaysia", "Thailand", "Vietnam", "Philippines",
	"India", "Pakistan", "Bangladesh", "Sri Lanka", "Australia", "New Zealand", "South Africa",
	"Nigeria", "Kenya", "Egypt", "Morocco", "UAE", "Saudi Arabia", "Qatar",
}

var defaultEventWords = []string{
	"tour", "concert", "show", "dates", "tickets", "presale", "pre-sale",
	"fixture", "match", "venue", "lineup", "line-up",
}

var defaultScorePhrases = []string{
	"announces tour", "tour dates", "world tour", "stadium tour", "residency",
	"adds dates", "tickets on sale", "fixture", "fixtures announced", "schedule released", "draw announced",
	"venue change", "relocated", "moved to", "rescheduled",
}

// Order matters: venue/reschedule language is more actionable than generic
// tour-announcement language and must win when both appear in one text.
var defaultCategoryBuckets = []CategoryBucket{
	{CategoryVenueChange, []string{"venue change", "changed venue", "moved to", "relocated", "rescheduled", "date change"}},
	{CategorySchedule, []string{"fixture", "schedule released", "fixtures announced", "draw announced", "draw made"}},
	{CategoryTickets, []string{"tickets on sale", "pre-sale", "presale", "on sale"}},
	{CategoryDates, []string{"tour dates", "adds dates", "new dates", "extra date", "second show", "adds second night"}},
	{CategoryTour, []string{"announces tour", "announced tour", "world tour", "stadium tour", "arena tour"}},
	{CategoryMega, []string{"olympics", "fifa world cup", "uefa euro", "super bowl", "icc cricket world cup"}},
}
