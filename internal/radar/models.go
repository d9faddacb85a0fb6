package radar

import "time"

// Item represents a raw feed entry fetched from an upstream source.
// A zero PublishedAt means the source supplied no parseable timestamp.
type Item struct {
	ID          string    `json:"id,omitempty"`
	Title       string    `json:"title"`
	Link        string    `json:"link"`
	Summary     string    `json:"summary"`
	Source      string    `json:"source"`
	PublishedAt time.Time `json:"published_at"`
}

// Valid reports whether the item carries the minimum fields required to
// enter classification.
func (i Item) Valid() bool {
	return i.Title != "" && i.Link != ""
}

// Category labels the kind of event announcement a candidate describes.
type Category string

const (
	CategoryVenueChange Category = "VENUE_CHANGE"
	CategorySchedule    Category = "SCHEDULE"
	CategoryTickets     Category = "TICKETS"
	CategoryDates       Category = "DATES"
	CategoryTour        Category = "TOUR"
	CategoryMega        Category = "MEGA"
	CategoryGeneral     Category = "GEN"
)

// Candidate is an item that passed the relevance classifier, enriched with
// extracted signals and a score used for ranking.
type Candidate struct {
	Title    string   `json:"title"`
	Link     string   `json:"url"`
	Source   string   `json:"source"`
	Text     string   `json:"-"`
	Score    int      `json:"score"`
	Artist   string   `json:"artist,omitempty"`
	Country  string   `json:"country,omitempty"`
	Category Category `json:"category"`
	Signal   string   `json:"signal,omitempty"`
	TitleKey string   `json:"-"`
}

// Announcement is the payload handed to the delivery collaborator for one
// admitted candidate.
type Announcement struct {
	Title    string   `json:"title"`
	URL      string   `json:"url"`
	Source   string   `json:"source"`
	Country  string   `json:"country"`
	Signal   string   `json:"signal"`
	Category Category `json:"category"`
}

// RunReport summarises a single pipeline run.
type RunReport struct {
	RunID     string    `json:"run_id"`
	StartedAt time.Time `json:"started_at"`
	Fetched   int       `json:"fetched"`
	Checked   int       `json:"checked"`
	Admitted  int       `json:"admitted"`
	Delivered int       `json:"delivered"`
}
