package main

import (
	"fmt"
	"log/slog"

	"eventradar/internal/config"
	"eventradar/internal/feed"
	"eventradar/internal/notify"
	"eventradar/internal/radar"
	"eventradar/internal/state"
)

// buildPipeline assembles the triage pipeline from configuration. The
// returned ingest source is registered with the pipeline and shared with
// the HTTP transport.
func buildPipeline(cfg config.Config, log *slog.Logger) (*radar.Pipeline, *radar.IngestSource, error) {
	feeds, err := feed.LoadList(cfg.FeedsPath)
	if err != nil {
		return nil, nil, fmt.Errorf("load feeds: %w", err)
	}

	ingest := radar.NewIngestSource("ingest")
	sources := append(feeds.Sources(cfg.EntriesPerFeed), ingest)

	registry, err := radar.NewSourceRegistry(cfg.FetchTimeout, log, sources...)
	if err != nil {
		return nil, nil, fmt.Errorf("init sources: %w", err)
	}

	store := state.NewStore(cfg.StatePath, cfg.DedupDays)

	var deliverer radar.Deliverer
	if cfg.WebhookURL != "" {
		deliverer = notify.NewWebhook(cfg.WebhookURL)
	} else {
		log.Warn("no webhook configured, deliveries are dry-run")
	}

	pipeline, err := radar.NewPipeline(registry, radar.DefaultCatalog(), store, deliverer, radar.Options{
		MaxPosts:  cfg.MaxPosts,
		MaxAge:    cfg.MaxAge,
		PostDelay: cfg.PostDelay,
	}, log)
	if err != nil {
		return nil, nil, fmt.Errorf("init pipeline: %w", err)
	}
	return pipeline, ingest, nil
}
