package config

import (
	"testing"
	"time"

	"github.com/mkaneko/sleepoints/internal/points"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"HTTP_ADDR", "SHEET_CACHE_TTL_SEC", "FEED_TIMEOUT_SEC", "INITIAL_POINTS"} {
		t.Setenv(key, "")
	}
	cfg := Load()

	if cfg.HTTPAddr != ":8080" {
		t.Errorf("HTTPAddr = %q, want :8080", cfg.HTTPAddr)
	}
	if cfg.SheetCacheTTL != 60*time.Second {
		t.Errorf("SheetCacheTTL = %v, want 60s", cfg.SheetCacheTTL)
	}
	if cfg.FeedTimeout != 10*time.Second {
		t.Errorf("FeedTimeout = %v, want 10s", cfg.FeedTimeout)
	}
	if cfg.InitialPoints != points.FromFloat(500) {
		t.Errorf("InitialPoints = %v, want 500", cfg.InitialPoints)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9999")
	t.Setenv("SHEET_CACHE_TTL_SEC", "5")
	t.Setenv("INITIAL_POINTS", "123.4")
	t.Setenv("DEMO_FIRST_NAME", " Hanako ")
	t.Setenv("DEMO_LAST_NAME", "Yamada")

	cfg := Load()
	if cfg.HTTPAddr != ":9999" {
		t.Errorf("HTTPAddr = %q", cfg.HTTPAddr)
	}
	if cfg.SheetCacheTTL != 5*time.Second {
		t.Errorf("SheetCacheTTL = %v", cfg.SheetCacheTTL)
	}
	if cfg.InitialPoints != points.FromFloat(123.4) {
		t.Errorf("InitialPoints = %v", cfg.InitialPoints)
	}

	owner := cfg.Owner()
	if owner.FirstName != "hanako" || owner.LastName != "yamada" {
		t.Errorf("owner names not normalized: %+v", owner)
	}
}

func TestLoadBadNumbersFallBack(t *testing.T) {
	t.Setenv("SHEET_CACHE_TTL_SEC", "not-a-number")
	t.Setenv("INITIAL_POINTS", "also-not")

	cfg := Load()
	if cfg.SheetCacheTTL != 60*time.Second {
		t.Errorf("SheetCacheTTL = %v, want default", cfg.SheetCacheTTL)
	}
	if cfg.InitialPoints != points.FromFloat(500) {
		t.Errorf("InitialPoints = %v, want default", cfg.InitialPoints)
	}
}
