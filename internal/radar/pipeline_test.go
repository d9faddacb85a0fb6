package radar

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"eventradar/internal/state"
)

type memSource struct {
	name  string
	items []Item
}

func (s *memSource) Name() string                              { return s.name }
func (s *memSource) Fetch(ctx context.Context) ([]Item, error) { return s.items, nil }

type recordingDeliverer struct {
	mu   sync.Mutex
	sent []Announcement
	err  error
}

func (d *recordingDeliverer) Deliver(ctx context.Context, a Announcement) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.err != nil {
		return d.err
	}
	d.sent = append(d.sent, a)
	return nil
}

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func testItems() []Item {
	return []Item{
		{
			Title:       "Coldplay Announces World Tour With 2026 Stadium Dates",
			Link:        "https://example.com/coldplay-world-tour",
			Summary:     "The band confirmed a new stadium tour opening in Germany, with tickets on sale next Friday.",
			Source:      "Billboard",
			PublishedAt: testNow.Add(-2 * time.Hour),
		},
		{
			Title:       "Coldplay Adds Tour Dates After Sellout",
			Link:        "https://example.com/coldplay-adds-dates",
			Summary:     "Extra date added in Germany following demand.",
			Source:      "NME",
			PublishedAt: testNow.Add(-1 * time.Hour),
		},
		{
			Title:       "UEFA Euro Draw Announced For Host Cities",
			Link:        "https://example.com/euro-draw",
			Summary:     "The draw made in Berlin sets the group stage schedule.",
			Source:      "UEFA",
			PublishedAt: testNow.Add(-3 * time.Hour),
		},
		{
			// Excluded vocabulary: never reaches a candidate.
			Title:       "How To Watch The Cup Final",
			Link:        "https://example.com/how-to-watch",
			Summary:     "TV channel and live streaming details.",
			Source:      "ESPN",
			PublishedAt: testNow.Add(-1 * time.Hour),
		},
		{
			// No link: dropped before classification.
			Title:       "Coldplay Announces Another World Tour",
			Summary:     "",
			Source:      "Broken",
			PublishedAt: testNow.Add(-1 * time.Hour),
		},
		{
			// Too old for the 72h window.
			Title:       "Dua Lipa Announces World Tour",
			Link:        "https://example.com/stale",
			Summary:     "Old news.",
			Source:      "Archive",
			PublishedAt: testNow.Add(-80 * time.Hour),
		},
	}
}

func testPipeline(t *testing.T, items []Item, deliverer Deliverer, opts Options) (*Pipeline, string) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	sources, err := NewSourceRegistry(time.Second, logger, &memSource{name: "mem", items: items})
	if err != nil {
		t.Fatalf("registry: %v", err)
	}

	statePath := filepath.Join(t.TempDir(), "seen.json")
	store := state.NewStore(statePath, 3)

	pipeline, err := NewPipeline(sources, DefaultCatalog(), store, deliverer, opts, logger)
	if err != nil {
		t.Fatalf("pipeline: %v", err)
	}
	pipeline.Now = func() time.Time { return testNow }
	return pipeline, statePath
}

func TestRunAdmitsBestDistinctEvents(t *testing.T) {
	deliverer := &recordingDeliverer{}
	pipeline, _ := testPipeline(t, testItems(), deliverer, Options{})

	report, err := pipeline.Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	if report.Fetched != 6 {
		t.Fatalf("expected 6 fetched, got %d", report.Fetched)
	}
	// Only the two Coldplay announcements and the UEFA draw survive triage.
	if report.Checked != 3 {
		t.Fatalf("expected 3 checked, got %d", report.Checked)
	}
	// The lower-scored second Coldplay item is blocked by the artist-per-day
	// rule; the UEFA item is distinct and admitted.
	if report.Admitted != 2 {
		t.Fatalf("expected 2 admitted, got %d", report.Admitted)
	}
	if report.Delivered != 2 {
		t.Fatalf("expected 2 delivered, got %d", report.Delivered)
	}
	if report.RunID == "" {
		t.Fatalf("run ID missing")
	}

	if len(deliverer.sent) != 2 {
		t.Fatalf("expected 2 deliveries, got %d", len(deliverer.sent))
	}
	// Deliveries follow rank order: the strongest announcement first.
	if deliverer.sent[0].Title != "Coldplay Announces World Tour With 2026 Stadium Dates" {
		t.Fatalf("unexpected first delivery %q", deliverer.sent[0].Title)
	}
	if deliverer.sent[1].Title != "UEFA Euro Draw Announced For Host Cities" {
		t.Fatalf("unexpected second delivery %q", deliverer.sent[1].Title)
	}
	if deliverer.sent[0].Country != "Germany" {
		t.Fatalf("expected country Germany, got %q", deliverer.sent[0].Country)
	}
}

func TestRunIsIdempotentAcrossRuns(t *testing.T) {
	deliverer := &recordingDeliverer{}
	pipeline, _ := testPipeline(t, testItems(), deliverer, Options{})

	first, err := pipeline.Run(context.Background())
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	if first.Admitted != 2 {
		t.Fatalf("expected 2 admitted on first run, got %d", first.Admitted)
	}

	second, err := pipeline.Run(context.Background())
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if second.Admitted != 0 {
		t.Fatalf("expected nothing admitted on replay, got %d", second.Admitted)
	}
	if len(deliverer.sent) != 2 {
		t.Fatalf("replay must not deliver again, got %d total", len(deliverer.sent))
	}
}

func TestRunRespectsCap(t *testing.T) {
	deliverer := &recordingDeliverer{}
	pipeline, _ := testPipeline(t, testItems(), deliverer, Options{MaxPosts: 1})

	report, err := pipeline.Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if report.Admitted != 1 {
		t.Fatalf("expected cap of 1, got %d admitted", report.Admitted)
	}
	if deliverer.sent[0].Title != "Coldplay Announces World Tour With 2026 Stadium Dates" {
		t.Fatalf("cap must keep the highest-scored item, got %q", deliverer.sent[0].Title)
	}
}

func TestRunDeliveryFailureDoesNotRollBackState(t *testing.T) {
	deliverer := &recordingDeliverer{err: errors.New("webhook down")}
	pipeline, _ := testPipeline(t, testItems(), deliverer, Options{})

	report, err := pipeline.Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if report.Admitted != 2 {
		t.Fatalf("expected 2 admitted, got %d", report.Admitted)
	}
	if report.Delivered != 0 {
		t.Fatalf("expected 0 delivered, got %d", report.Delivered)
	}

	// Admission stands even though delivery failed: the replay is quiet.
	deliverer.err = nil
	second, err := pipeline.Run(context.Background())
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if second.Admitted != 0 {
		t.Fatalf("failed deliveries must stay admitted, got %d re-admissions", second.Admitted)
	}
}

func TestRunEventKeyExpiresAfterWindow(t *testing.T) {
	items := []Item{{
		Title:       "Coldplay Announces World Tour With 2026 Stadium Dates",
		Link:        "https://example.com/coldplay-world-tour",
		Summary:     "The band confirmed a new stadium tour opening in Germany.",
		Source:      "Billboard",
		PublishedAt: testNow,
	}}
	deliverer := &recordingDeliverer{}
	pipeline, _ := testPipeline(t, items, deliverer, Options{})

	clock := testNow
	pipeline.Now = func() time.Time { return clock }

	if report, _ := pipeline.Run(context.Background()); report.Admitted != 1 {
		t.Fatalf("expected initial admission")
	}

	// Next day: the day buckets reset, but the event key is still inside the
	// 3-day rolling window.
	clock = testNow.Add(24 * time.Hour)
	report, err := pipeline.Run(context.Background())
	if err != nil {
		t.Fatalf("day-2 run: %v", err)
	}
	if report.Admitted != 0 {
		t.Fatalf("event key inside the window must block re-admission, got %d", report.Admitted)
	}

	// Day 4: the entry ages out of the window and the event is eligible
	// again (the item is exactly 72h old, still within the freshness cutoff).
	clock = testNow.Add(72 * time.Hour)
	report, err = pipeline.Run(context.Background())
	if err != nil {
		t.Fatalf("day-4 run: %v", err)
	}
	if report.Admitted != 1 {
		t.Fatalf("expired event key should be admitted again, got %d", report.Admitted)
	}
}

func TestPreviewDoesNotTouchState(t *testing.T) {
	deliverer := &recordingDeliverer{}
	pipeline, statePath := testPipeline(t, testItems(), deliverer, Options{})

	candidates := pipeline.Preview(context.Background(), 2)
	if len(candidates) != 2 {
		t.Fatalf("expected 2 preview candidates, got %d", len(candidates))
	}
	if candidates[0].Score < candidates[1].Score {
		t.Fatalf("preview must be ranked by score descending")
	}
	if len(deliverer.sent) != 0 {
		t.Fatalf("preview must not deliver")
	}
	if _, err := os.Stat(statePath); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("preview must not persist state")
	}

	// A full run afterwards still sees a clean slate.
	report, err := pipeline.Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if report.Admitted != 2 {
		t.Fatalf("expected 2 admitted after preview, got %d", report.Admitted)
	}
}

func TestStaticFileSourceDropsInvalidEntries(t *testing.T) {
	source, err := NewStaticFileSource("sample", filepath.Join("..", "..", "data", "sample_items.json"))
	if err != nil {
		t.Fatalf("static source: %v", err)
	}

	items, err := source.Fetch(context.Background())
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	// The sample file has 6 entries; the one without a link is dropped.
	if len(items) != 5 {
		t.Fatalf("expected 5 items, got %d", len(items))
	}
	for _, item := range items {
		if !item.Valid() {
			t.Fatalf("decoded item %q should be valid", item.Title)
		}
	}
}

func TestIngestSourceDefaultsAndPrune(t *testing.T) {
	src := NewIngestSource("ingest")

	stored := src.Add(Item{Title: "t", Link: "l"})
	if stored.ID == "" {
		t.Fatalf("expected generated ID")
	}
	if stored.PublishedAt.IsZero() {
		t.Fatalf("expected submission timestamp")
	}

	// Same ID replaces in place.
	src.Add(Item{ID: stored.ID, Title: "t2", Link: "l2", PublishedAt: stored.PublishedAt})
	items, err := src.Fetch(context.Background())
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(items) != 1 || items[0].Title != "t2" {
		t.Fatalf("expected in-place replacement, got %+v", items)
	}

	if removed := src.PruneOlderThan(stored.PublishedAt.Add(time.Minute)); removed != 1 {
		t.Fatalf("expected 1 pruned item, got %d", removed)
	}
	items, _ = src.Fetch(context.Background())
	if len(items) != 0 {
		t.Fatalf("expected empty source after prune, got %d", len(items))
	}
}
