package config

import (
	"testing"
	"time"
)

func TestFromEnvDefaults(t *testing.T) {
	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("from env: %v", err)
	}

	if cfg.ListenAddr != ":8080" {
		t.Fatalf("unexpected listen addr %q", cfg.ListenAddr)
	}
	if cfg.MaxPosts != 30 {
		t.Fatalf("unexpected max posts %d", cfg.MaxPosts)
	}
	if cfg.MaxAge != 72*time.Hour {
		t.Fatalf("unexpected max age %v", cfg.MaxAge)
	}
	if cfg.DedupDays != 3 {
		t.Fatalf("unexpected dedup days %d", cfg.DedupDays)
	}
	if cfg.EntriesPerFeed != 250 {
		t.Fatalf("unexpected entries per feed %d", cfg.EntriesPerFeed)
	}
	if cfg.HighCutoff != 55 || cfg.MediumCutoff != 40 || cfg.TopN != 15 {
		t.Fatalf("unexpected report cutoffs %d/%d/%d", cfg.HighCutoff, cfg.MediumCutoff, cfg.TopN)
	}
	if cfg.DigestTime != "07:00" || cfg.Timezone != "UTC" {
		t.Fatalf("unexpected schedule defaults %q %q", cfg.DigestTime, cfg.Timezone)
	}
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("RADAR_LISTEN_ADDR", ":9090")
	t.Setenv("RADAR_MAX_POSTS", "10")
	t.Setenv("RADAR_MAX_AGE_H", "48")
	t.Setenv("RADAR_DEDUP_DAYS", "7")
	t.Setenv("RADAR_FETCH_TIMEOUT_S", "5")
	t.Setenv("RADAR_POST_DELAY_S", "0")
	t.Setenv("RADAR_WEBHOOK_URL", "https://hooks.example.com/x")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("from env: %v", err)
	}

	if cfg.ListenAddr != ":9090" {
		t.Fatalf("unexpected listen addr %q", cfg.ListenAddr)
	}
	if cfg.MaxPosts != 10 {
		t.Fatalf("unexpected max posts %d", cfg.MaxPosts)
	}
	if cfg.MaxAge != 48*time.Hour {
		t.Fatalf("unexpected max age %v", cfg.MaxAge)
	}
	if cfg.DedupDays != 7 {
		t.Fatalf("unexpected dedup days %d", cfg.DedupDays)
	}
	if cfg.FetchTimeout != 5*time.Second {
		t.Fatalf("unexpected fetch timeout %v", cfg.FetchTimeout)
	}
	if cfg.PostDelay != 0 {
		t.Fatalf("unexpected post delay %v", cfg.PostDelay)
	}
	if cfg.WebhookURL != "https://hooks.example.com/x" {
		t.Fatalf("unexpected webhook url %q", cfg.WebhookURL)
	}
}

func TestFromEnvRejectsBadNumbers(t *testing.T) {
	t.Setenv("RADAR_MAX_POSTS", "lots")

	if _, err := FromEnv(); err == nil {
		t.Fatalf("expected error for non-numeric override")
	}
}
