// Package config provides runtime configuration values for the service.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/mkaneko/sleepoints/internal/feed"
	"github.com/mkaneko/sleepoints/internal/points"
)

// Config holds configuration knobs collected from the environment.
type Config struct {
	HTTPAddr   string
	DBPath     string
	StaticPath string

	// SheetCSVURL is the published CSV feed of good-things entries.
	SheetCSVURL string
	// WebhookURL is the outbound automation endpoint. Parsed and surfaced
	// for operators; the core logic does not call it.
	WebhookURL string

	SheetCacheTTL time.Duration
	FeedTimeout   time.Duration

	// DemoUserID is the single implicit current user.
	DemoUserID    string
	DemoFirstName string
	DemoLastName  string
	DemoUserEmail string

	// InitialPoints seeds the demo user's starting balance.
	InitialPoints points.Points

	// SeedCatalog optionally overrides the embedded product catalog file.
	SeedCatalog string
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func atoienv(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func floatenv(key string, def float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def
	}
	return f
}

func durenvs(key string, defSec int) time.Duration {
	return time.Duration(atoienv(key, defSec)) * time.Second
}

// Load collects configuration from environment with defaults.
func Load() Config {
	return Config{
		HTTPAddr:      getenv("HTTP_ADDR", ":8080"),
		DBPath:        getenv("DB_PATH", "./data/sleep.db"),
		StaticPath:    getenv("STATIC_PATH", "./frontend"),
		SheetCSVURL:   strings.TrimSpace(os.Getenv("SHEET_CSV_URL")),
		WebhookURL:    strings.TrimSpace(os.Getenv("N8N_WEBHOOK_URL")),
		SheetCacheTTL: durenvs("SHEET_CACHE_TTL_SEC", int(feed.DefaultTTL/time.Second)),
		FeedTimeout:   durenvs("FEED_TIMEOUT_SEC", int(feed.DefaultFetchTimeout/time.Second)),
		DemoUserID:    strings.TrimSpace(os.Getenv("DEMO_USER_ID")),
		DemoFirstName: strings.ToLower(strings.TrimSpace(os.Getenv("DEMO_FIRST_NAME"))),
		DemoLastName:  strings.ToLower(strings.TrimSpace(os.Getenv("DEMO_LAST_NAME"))),
		DemoUserEmail: strings.ToLower(strings.TrimSpace(os.Getenv("DEMO_USER_EMAIL"))),
		InitialPoints: points.FromFloat(floatenv("INITIAL_POINTS", 500.0)),
		SeedCatalog:   os.Getenv("SEED_CATALOG"),
	}
}

// Owner returns the feed owner-matching criteria for the demo user.
func (c Config) Owner() feed.Owner {
	return feed.Owner{
		ID:        c.DemoUserID,
		FirstName: c.DemoFirstName,
		LastName:  c.DemoLastName,
		Email:     c.DemoUserEmail,
	}
}
