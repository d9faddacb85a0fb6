package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config captures runtime configuration for the radar service. The core
// pipeline consumes these only as already-validated scalars.
type Config struct {
	ListenAddr     string
	FeedsPath      string
	StatePath      string
	WebhookURL     string
	LogLevel       string
	MaxPosts       int
	MaxAge         time.Duration
	DedupDays      int
	EntriesPerFeed int
	FetchTimeout   time.Duration
	PostDelay      time.Duration
	DigestTime     string
	Timezone       string

	// Risk report settings.
	FixturesPath string
	ReportDir    string
	HighCutoff   int
	MediumCutoff int
	TopN         int
}

// FromEnv creates a configuration instance sourced from environment
// variables, with a .env file autoloaded when present.
func FromEnv() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		ListenAddr:     getEnv("RADAR_LISTEN_ADDR", ":8080"),
		FeedsPath:      getEnv("RADAR_FEEDS_PATH", "data/feeds.yaml"),
		StatePath:      getEnv("RADAR_STATE_PATH", "data/seen.json"),
		WebhookURL:     getEnv("RADAR_WEBHOOK_URL", ""),
		LogLevel:       getEnv("RADAR_LOG_LEVEL", "info"),
		MaxPosts:       30,
		MaxAge:         72 * time.Hour,
		DedupDays:      3,
		EntriesPerFeed: 250,
		FetchTimeout:   30 * time.Second,
		PostDelay:      time.Second,
		DigestTime:     getEnv("RADAR_DIGEST_TIME", "07:00"),
		Timezone:       getEnv("RADAR_TIMEZONE", "UTC"),
		FixturesPath:   getEnv("RADAR_FIXTURES_PATH", "data/fixtures.json"),
		ReportDir:      getEnv("RADAR_REPORT_DIR", "report"),
		HighCutoff:     55,
		MediumCutoff:   40,
		TopN:           15,
	}

	if err := scanInt("RADAR_MAX_POSTS", &cfg.MaxPosts); err != nil {
		return Config{}, err
	}
	if err := scanHours("RADAR_MAX_AGE_H", &cfg.MaxAge); err != nil {
		return Config{}, err
	}
	if err := scanInt("RADAR_DEDUP_DAYS", &cfg.DedupDays); err != nil {
		return Config{}, err
	}
	if err := scanInt("RADAR_ENTRIES_PER_FEED", &cfg.EntriesPerFeed); err != nil {
		return Config{}, err
	}
	if err := scanSeconds("RADAR_FETCH_TIMEOUT_S", &cfg.FetchTimeout); err != nil {
		return Config{}, err
	}
	if err := scanSeconds("RADAR_POST_DELAY_S", &cfg.PostDelay); err != nil {
		return Config{}, err
	}
	if err := scanInt("RADAR_HIGH_CUTOFF", &cfg.HighCutoff); err != nil {
		return Config{}, err
	}
	if err := scanInt("RADAR_MEDIUM_CUTOFF", &cfg.MediumCutoff); err != nil {
		return Config{}, err
	}
	if err := scanInt("RADAR_TOP_N", &cfg.TopN); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func scanInt(key string, dst *int) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	if _, err := fmt.Sscanf(v, "%d", dst); err != nil {
		return fmt.Errorf("parse %s: %w", key, err)
	}
	return nil
}

func scanHours(key string, dst *time.Duration) error {
	var hours int
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	if _, err := fmt.Sscanf(v, "%d", &hours); err != nil {
		return fmt.Errorf("parse %s: %w", key, err)
	}
	*dst = time.Duration(hours) * time.Hour
	return nil
}

func scanSeconds(key string, dst *time.Duration) error {
	var secs int
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	if _, err := fmt.Sscanf(v, "%d", &secs); err != nil {
		return fmt.Errorf("parse %s: %w", key, err)
	}
	*dst = time.Duration(secs) * time.Second
	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
