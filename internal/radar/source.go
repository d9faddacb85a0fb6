package radar

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"
)

// Source defines a pluggable upstream provider capable of fetching raw feed
// items.
type Source interface {
	Name() string
	Fetch(ctx context.Context) ([]Item, error)
}

// SourceRegistry keeps track of available sources and fans fetches out
// across them. A failing or slow source contributes zero items and never
// aborts the run.
type SourceRegistry struct {
	sources []Source
	timeout time.Duration
	logger  *slog.Logger
}

// NewSourceRegistry builds a registry with the provided sources and a
// per-source fetch timeout.
func NewSourceRegistry(timeout time.Duration, logger *slog.Logger, sources ...Source) (*SourceRegistry, error) {
	if len(sources) == 0 {
		return nil, errors.New("radar: at least one source is required")
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &SourceRegistry{sources: sources, timeout: timeout, logger: logger}, nil
}

// Add registers a new source instance.
func (r *SourceRegistry) Add(source Source) {
	r.sources = append(r.sources, source)
}

// FetchAll collects items from every source concurrently. There is no
// ordering dependency between sources; triage only begins once all of them
// have reported, since ranking is global across the run.
func (r *SourceRegistry) FetchAll(ctx context.Context) []Item {
	results := make([][]Item, len(r.sources))

	g, gctx := errgroup.WithContext(ctx)
	for i, src := range r.sources {
		i, src := i, src
		g.Go(func() error {
			fetchCtx, cancel := context.WithTimeout(gctx, r.timeout)
			defer cancel()

			items, err := src.Fetch(fetchCtx)
			if err != nil {
				r.logger.Warn("source unavailable", "source", src.Name(), "error", err)
				return nil
			}
			results[i] = items
			return nil
		})
	}
	_ = g.Wait() // workers never return errors

	var all []Item
	for _, items := range results {
		all = append(all, items...)
	}
	return all
}
