package risk

import (
	"sort"
	"strings"
)

// RivalryIndex maps scraped team/player names to canonical tokens via an
// alias table, then answers unordered-pair rivalry lookups. Built once and
// treated as read-only; tests can substitute a smaller table.
type RivalryIndex struct {
	aliases []aliasEntry // iteration order preserved: exact pass then substring pass
	pairs   map[string]string
}

type aliasEntry struct {
	canon string
	alias string
}

// rivalryBonus is fixed high enough that a rivalry hit on its own clears
// any high-risk cutoff.
const rivalryBonus = 100

// NewRivalryIndex builds an index from canonical-name → aliases and a list
// of unordered rivalry pairs labelled by sport.
func NewRivalryIndex(aliases map[string][]string, rivalries map[[2]string]string) *RivalryIndex {
	idx := &RivalryIndex{pairs: make(map[string]string, len(rivalries))}
	canons := make([]string, 0, len(aliases))
	for canon := range aliases {
		canons = append(canons, canon)
	}
	sort.Strings(canons)
	for _, canon := range canons {
		for _, alias := range aliases[canon] {
			idx.aliases = append(idx.aliases, aliasEntry{canon: canon, alias: strings.ToLower(alias)})
		}
	}
	for pair, sport := range rivalries {
		idx.pairs[pairKey(pair[0], pair[1])] = sport
	}
	return idx
}

func pairKey(a, b string) string {
	if b < a {
		a, b = b, a
	}
	return a + "|" + b
}

// Canonical maps any input name to its canonical token. Exact alias match
// is checked first across the whole table, then substring containment as a
// fallback (handles forms like "Manchester Utd FC"). Empty when unknown.
func (idx *RivalryIndex) Canonical(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	if s == "" {
		return ""
	}
	for _, e := range idx.aliases {
		if s == e.alias {
			return e.canon
		}
	}
	for _, e := range idx.aliases {
		if strings.Contains(s, e.alias) {
			return e.canon
		}
	}
	return ""
}

// Detect reports whether the two names form a known rivalry, regardless of
// argument order. A hit contributes the fixed bonus and a display label.
func (idx *RivalryIndex) Detect(nameA, nameB string) (bool, int, string) {
	ca := idx.Canonical(nameA)
	cb := idx.Canonical(nameB)
	if ca == "" || cb == "" {
		return false, 0, ""
	}
	if _, ok := idx.pairs[pairKey(ca, cb)]; !ok {
		return false, 0, ""
	}
	return true, rivalryBonus, "Rivalry: " + nameA + " vs " + nameB
}

// DefaultRivalries returns the production alias and rivalry tables.
func DefaultRivalries() *RivalryIndex {
	return NewRivalryIndex(defaultAliases, defaultRivalryPairs)
}

var defaultAliases = map[string][]string{
	// Football / Soccer (clubs)
	"real madrid":        {"real madrid", "real", "r. madrid", "realmadrid", "real madrid cf"},
	"barcelona":          {"barcelona", "fc barcelona", "barça", "barca"},
	"manchester united":  {"manchester united", "man utd", "man united", "man u", "manchester utd"},
	"liverpool":          {"liverpool", "liverpool fc", "liverpool football club", "lfc"},
	"arsenal":            {"arsenal", "arsenal fc", "gunners"},
	"tottenham hotspur":  {"tottenham hotspur", "tottenham", "spurs"},
	"inter milan":        {"inter milan", "internazionale", "fc internazionale", "inter"},
	"ac milan":           {"ac milan", "milan", "a.c. milan"},
	"borussia dortmund":  {"borussia dortmund", "dortmund", "bvb"},
	"bayern munich":      {"bayern munich", "bayern", "fc bayern", "fc bayern münchen", "bayern muenchen"},
	"schalke 04":         {"schalke 04", "schalke", "fc schalke 04"},
	"ajax":               {"ajax", "afc ajax", "ajax amsterdam"},
	"feyenoord":          {"feyenoord", "rotterdam"},
	"roma":               {"roma", "as roma", "a.s. roma"},
	"lazio":              {"lazio", "ss lazio", "s.s. lazio"},
	"juventus":           {"juventus", "juve"},
	"celtic":             {"celtic", "celtic fc", "glasgow celtic"},
	"rangers":            {"rangers", "rangers fc", "glasgow rangers"},
	"olympiacos":         {"olympiacos", "olympiakos", "olympiacos fc"},
	"panathinaikos":      {"panathinaikos", "panathinaikos fc"},
	"fenerbahce":         {"fenerbahce", "fenerbahçe", "fener"},
	"galatasaray":        {"galatasaray", "galatasaray sk", "gala"},
	"al ahly":            {"al ahly", "ahly"},
	"zamalek":            {"zamalek", "zamalek sc"},
	"flamengo":           {"flamengo", "cr flamengo"},
	"fluminense":         {"fluminense", "fluminense fc"},
	"boca juniors":       {"boca juniors", "boca", "ca boca juniors"},
	"river plate":        {"river plate", "river", "ca river plate"},
	"club américa":       {"club américa", "club america", "américa"},
	"chivas":             {"chivas", "cd guadalajara", "guadalajara"},
	// Football / Soccer (national teams)
	"brazil":        {"brazil", "brasil"},
	"argentina":     {"argentina"},
	"england":       {"england"},
	"scotland":      {"scotland"},
	"germany":       {"germany", "deutschland"},
	"italy":         {"italy", "italia"},
	"france":        {"france"},
	"uruguay":       {"uruguay"},
	"mexico":        {"mexico", "méxico"},
	"united states": {"united states", "usa", "u.s.a.", "usmnt"},
	"japan":         {"japan", "nippon"},
	"south korea":   {"south korea", "korea republic"},
	// NBA
	"los angeles lakers":    {"los angeles lakers", "lakers"},
	"boston celtics":        {"boston celtics", "celtics"},
	"chicago bulls":         {"chicago bulls", "bulls"},
	"detroit pistons":       {"detroit pistons", "pistons"},
	"new york knicks":       {"new york knicks", "knicks"},
	"miami heat":            {"miami heat", "heat"},
	"indiana pacers":        {"indiana pacers", "pacers"},
	"golden state warriors": {"golden state warriors", "warriors", "gsw"},
	"cleveland cavaliers":   {"cleveland cavaliers", "cavaliers", "cavs"},
	"philadelphia 76ers":    {"philadelphia 76ers", "sixers", "76ers"},
	// NFL
	"green bay packers":      {"green bay packers", "packers"},
	"chicago bears":          {"chicago bears", "bears"},
	"dallas cowboys":         {"dallas cowboys", "cowboys"},
	"washington commanders":  {"washington commanders", "commanders"},
	"pittsburgh steelers":    {"pittsburgh steelers", "steelers"},
	"baltimore ravens":       {"baltimore ravens", "ravens"},
	"new york giants":        {"new york giants", "giants", "nyg"},
	"philadelphia eagles":    {"philadelphia eagles", "eagles"},
	"san francisco 49ers":    {"san francisco 49ers", "49ers", "niners"},
	"las vegas raiders":      {"las vegas raiders", "oakland raiders", "raiders"},
	"kansas city chiefs":     {"kansas city chiefs", "chiefs"},
	// MLB
	"new york yankees":       {"new york yankees", "yankees", "nyy"},
	"boston red sox":         {"boston red sox", "red sox"},
	"los angeles dodgers":    {"los angeles dodgers", "dodgers"},
	"san francisco giants":   {"san francisco giants", "sfg"},
	"chicago cubs":           {"chicago cubs", "cubs"},
	"st. louis cardinals":    {"st. louis cardinals", "st louis cardinals", "cardinals"},
	"new york mets":          {"new york mets", "mets", "nym"},
	"philadelphia phillies":  {"philadelphia phillies", "phillies"},
	// NHL
	"montreal canadiens":  {"montreal canadiens", "canadiens", "habs"},
	"toronto maple leafs": {"toronto maple leafs", "maple leafs", "leafs"},
	"boston bruins":       {"boston bruins", "bruins"},
	"colorado avalanche":  {"colorado avalanche", "avalanche", "avs"},
	"detroit red wings":   {"detroit red wings", "red wings"},
	"edmonton oilers":     {"edmonton oilers", "oilers"},
	"calgary flames":      {"calgary flames", "flames"},
	"new york rangers":    {"new york rangers", "nyr"},
	"new york islanders":  {"new york islanders", "islanders", "isles"},
	"pittsburgh penguins": {"pittsburgh penguins", "penguins", "pens"},
	"philadelphia flyers": {"philadelphia flyers", "flyers"},
	// Tennis
	"roger federer":       {"roger federer", "federer"},
	"rafael nadal":        {"rafael nadal", "nadal"},
	"novak djokovic":      {"novak djokovic", "djokovic", "nole"},
	"serena williams":     {"serena williams", "serena"},
	"venus williams":      {"venus williams", "venus"},
	"martina navratilova": {"martina navratilova", "navratilova"},
	"chris evert":         {"chris evert", "evert"},
	"pete sampras":        {"pete sampras", "sampras"},
	"andre agassi":        {"andre agassi", "agassi"},
	"bjorn borg":          {"bjorn borg", "björn borg", "borg"},
	"john mcenroe":        {"john mcenroe", "mcenroe"},
	// F1
	"ayrton senna":       {"ayrton senna", "senna"},
	"alain prost":        {"alain prost", "prost"},
	"james hunt":         {"james hunt", "hunt"},
	"niki lauda":         {"niki lauda", "lauda"},
	"michael schumacher": {"michael schumacher", "schumacher"},
	"mika hakkinen":      {"mika hakkinen", "häkkinen", "hakkinen"},
	"lewis hamilton":     {"lewis hamilton", "hamilton"},
	"sebastian vettel":   {"sebastian vettel", "vettel"},
	"max verstappen":     {"max verstappen", "verstappen"},
	"nico rosberg":       {"nico rosberg", "rosberg"},
	// Golf
	"jack nicklaus":  {"jack nicklaus", "nicklaus"},
	"arnold palmer":  {"arnold palmer", "palmer"},
	"tiger woods":    {"tiger woods", "tiger"},
	"phil mickelson": {"phil mickelson", "mickelson", "lefty"},
}

var defaultRivalryPairs = map[[2]string]string{
	// Soccer clubs
	{"real madrid", "barcelona"}:             "soccer",
	{"manchester united", "liverpool"}:       "soccer",
	{"arsenal", "tottenham hotspur"}:         "soccer",
	{"ac milan", "inter milan"}:              "soccer",
	{"borussia dortmund", "bayern munich"}:   "soccer",
	{"borussia dortmund", "schalke 04"}:      "soccer",
	{"ajax", "feyenoord"}:                    "soccer",
	{"roma", "lazio"}:                        "soccer",
	{"juventus", "inter milan"}:              "soccer",
	{"celtic", "rangers"}:                    "soccer",
	{"olympiacos", "panathinaikos"}:          "soccer",
	{"fenerbahce", "galatasaray"}:            "soccer",
	{"al ahly", "zamalek"}:                   "soccer",
	{"flamengo", "fluminense"}:               "soccer",
	{"boca juniors", "river plate"}:          "soccer",
	{"club américa", "chivas"}:               "soccer",
	// National teams
	{"brazil", "argentina"}:        "soccer",
	{"england", "scotland"}:        "soccer",
	{"england", "germany"}:         "soccer",
	{"argentina", "england"}:       "soccer",
	{"france", "italy"}:            "soccer",
	{"mexico", "united states"}:    "soccer",
	{"japan", "south korea"}:       "soccer",
	{"brazil", "uruguay"}:          "soccer",
	// NBA
	{"boston celtics", "los angeles lakers"}:        "nba",
	{"chicago bulls", "detroit pistons"}:            "nba",
	{"new york knicks", "miami heat"}:               "nba",
	{"new york knicks", "indiana pacers"}:           "nba",
	{"golden state warriors", "cleveland cavaliers"}: "nba",
	{"boston celtics", "philadelphia 76ers"}:        "nba",
	// NFL
	{"green bay packers", "chicago bears"}:         "nfl",
	{"dallas cowboys", "washington commanders"}:    "nfl",
	{"pittsburgh steelers", "baltimore ravens"}:    "nfl",
	{"new york giants", "philadelphia eagles"}:     "nfl",
	{"san francisco 49ers", "dallas cowboys"}:      "nfl",
	{"las vegas raiders", "kansas city chiefs"}:    "nfl",
	// MLB
	{"new york yankees", "boston red sox"}:             "mlb",
	{"los angeles dodgers", "san francisco giants"}:    "mlb",
	{"chicago cubs", "st. louis cardinals"}:            "mlb",
	{"new york mets", "philadelphia phillies"}:         "mlb",
	{"los angeles dodgers", "new york yankees"}:        "mlb",
	// NHL
	{"montreal canadiens", "toronto maple leafs"}: "nhl",
	{"boston bruins", "montreal canadiens"}:       "nhl",
	{"detroit red wings", "colorado avalanche"}:   "nhl",
	{"edmonton oilers", "calgary flames"}:         "nhl",
	{"new york rangers", "new york islanders"}:    "nhl",
	{"pittsburgh penguins", "philadelphia flyers"}: "nhl",
	// Tennis
	{"roger federer", "rafael nadal"}:        "tennis",
	{"novak djokovic", "rafael nadal"}:       "tennis",
	{"roger federer", "novak djokovic"}:      "tennis",
	{"chris evert", "martina navratilova"}:   "tennis",
	{"serena williams", "venus williams"}:    "tennis",
	{"pete sampras", "andre agassi"}:         "tennis",
	{"bjorn borg", "john mcenroe"}:           "tennis",
	// F1
	{"ayrton senna", "alain prost"}:           "f1",
	{"james hunt", "niki lauda"}:              "f1",
	{"michael schumacher", "mika hakkinen"}:   "f1",
	{"lewis hamilton", "sebastian vettel"}:    "f1",
	{"max verstappen", "lewis hamilton"}:      "f1",
	{"lewis hamilton", "nico rosberg"}:        "f1",
	// Golf
	{"jack nicklaus", "arnold palmer"}: "golf",
	{"tiger woods", "phil mickelson"}:  "golf",
}
