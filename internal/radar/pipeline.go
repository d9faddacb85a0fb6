package radar

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"

	"eventradar/internal/state"
)

// Deliverer posts one finalized digest entry to the notification endpoint.
type Deliverer interface {
	Deliver(ctx context.Context, a Announcement) error
}

// Options carries the validated scalar knobs the pipeline consumes.
type Options struct {
	MaxPosts  int           // cap on admitted items per run
	MaxAge    time.Duration // freshness cutoff for raw items
	PostDelay time.Duration // pause between deliveries, 0 to disable
}

func (o Options) withDefaults() Options {
	if o.MaxPosts <= 0 {
		o.MaxPosts = 30
	}
	if o.MaxAge <= 0 {
		o.MaxAge = 72 * time.Hour
	}
	return o
}

// Pipeline orchestrates a single triage run: fetch, freshness filter,
// classify, extract, score, rank, greedy dedup-and-admit, deliver, persist.
type Pipeline struct {
	sources    *SourceRegistry
	store      *state.Store
	deliverer  Deliverer
	opts       Options
	logger     *slog.Logger
	classifier Classifier
	extractor  Extractor
	scorer     Scorer

	// Now is the clock used for freshness and day buckets; overridable in
	// tests.
	Now func() time.Time
}

// NewPipeline constructs a Pipeline. A nil deliverer is allowed and turns
// delivery into a no-op (dry run); everything else is required.
func NewPipeline(sources *SourceRegistry, catalog *Catalog, store *state.Store, deliverer Deliverer, opts Options, logger *slog.Logger) (*Pipeline, error) {
	if sources == nil {
		return nil, errors.New("pipeline requires sources")
	}
	if catalog == nil {
		return nil, errors.New("pipeline requires a catalog")
	}
	if store == nil {
		return nil, errors.New("pipeline requires a state store")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{
		sources:    sources,
		store:      store,
		deliverer:  deliverer,
		opts:       opts.withDefaults(),
		logger:     logger,
		classifier: NewClassifier(catalog),
		extractor:  NewExtractor(catalog),
		scorer:     NewScorer(catalog),
		Now:        time.Now,
	}, nil
}

// Run executes the end-to-end flow once. Dedup state is loaded at start,
// mutated in memory during admission, and written back atomically at the
// end; delivery failures are logged per item and never roll the state back.
func (p *Pipeline) Run(ctx context.Context) (RunReport, error) {
	now := p.Now().UTC()
	report := RunReport{RunID: uuid.NewString(), StartedAt: now}

	seen, err := p.store.Load(now)
	if err != nil {
		p.logger.Warn("state unreadable, starting cold", "run", report.RunID, "error", err)
	}

	items := p.sources.FetchAll(ctx)
	report.Fetched = len(items)

	candidates := p.triage(items, now)
	report.Checked = len(candidates)
	sortCandidates(candidates)

	admitted := p.admit(candidates, seen)
	report.Admitted = len(admitted)

	for i, c := range admitted {
		if p.deliverer == nil {
			continue
		}
		if p.opts.PostDelay > 0 && i > 0 {
			time.Sleep(p.opts.PostDelay)
		}
		a := Announcement{
			Title:    c.Title,
			URL:      c.Link,
			Source:   c.Source,
			Country:  c.Country,
			Signal:   c.Signal,
			Category: c.Category,
		}
		if err := p.deliverer.Deliver(ctx, a); err != nil {
			p.logger.Error("delivery failed", "run", report.RunID, "title", c.Title, "error", err)
			continue
		}
		report.Delivered++
	}

	if err := p.store.Save(seen); err != nil {
		return report, fmt.Errorf("persist state: %w", err)
	}

	p.logger.Info("run complete",
		"run", report.RunID,
		"fetched", report.Fetched,
		"checked", report.Checked,
		"admitted", report.Admitted,
		"delivered", report.Delivered)
	return report, nil
}

// Preview runs fetch, triage and ranking without touching dedup state or
// the delivery endpoint. Used by the HTTP digest preview.
func (p *Pipeline) Preview(ctx context.Context, limit int) []Candidate {
	now := p.Now().UTC()
	candidates := p.triage(p.sources.FetchAll(ctx), now)
	sortCandidates(candidates)
	if limit > 0 && len(candidates) > limit {
		candidates = candidates[:limit]
	}
	return candidates
}

// triage turns raw items into scored, signal-tagged candidates. Items
// missing title or link, or of unknown or excessive age, never reach the
// classifier.
func (p *Pipeline) triage(items []Item, now time.Time) []Candidate {
	var out []Candidate
	for _, item := range items {
		if !item.Valid() {
			continue
		}
		if !Fresh(item, now, p.opts.MaxAge) {
			continue
		}
		text := item.Title + " " + item.Summary
		if !p.classifier.Relevant(text) {
			continue
		}
		out = append(out, Candidate{
			Title:    item.Title,
			Link:     item.Link,
			Source:   item.Source,
			Text:     text,
			Score:    p.scorer.Score(item.Title, item.Summary),
			Artist:   p.extractor.Artist(text),
			Country:  p.extractor.Country(text),
			Category: p.extractor.CategoryOf(text),
			Signal:   p.extractor.Signal(text),
			TitleKey: TitleKey(item.Title),
		})
	}
	return out
}

// admit walks the ranked candidates once, greedily admitting subject to the
// three dedup checks against the mutating state. Admission order matters:
// earlier, higher-scored items block later near-duplicates, so the cap is
// filled with the best available distinct events.
func (p *Pipeline) admit(candidates []Candidate, seen *state.SeenState) []Candidate {
	var admitted []Candidate
	for _, c := range candidates {
		if len(admitted) >= p.opts.MaxPosts {
			break
		}
		if seen.HasTitle(c.TitleKey) {
			continue
		}
		if c.Artist != "" && seen.HasArtist(c.Artist) {
			continue
		}
		key := EventKey(c.Artist, c.Country, c.Category, c.TitleKey)
		if seen.HasEvent(key) {
			continue
		}
		seen.Admit(c.TitleKey, c.Artist, key)
		admitted = append(admitted, c)
	}
	return admitted
}

// sortCandidates orders by score descending with title ascending as a
// stable tie-break, so output order is deterministic for equal scores.
func sortCandidates(candidates []Candidate) {
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].Score != candidates[j].Score {
			return candidates[i].Score > candidates[j].Score
		}
		return candidates[i].Title < candidates[j].Title
	})
}
