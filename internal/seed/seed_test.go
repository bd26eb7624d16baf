package seed

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/mkaneko/sleepoints/internal/config"
	"github.com/mkaneko/sleepoints/internal/points"
	"github.com/mkaneko/sleepoints/internal/storage/sqlite"
)

func testConfig() config.Config {
	return config.Config{
		DemoUserID:    "demo-1",
		InitialPoints: points.FromFloat(500),
	}
}

func TestRunSeedsEverything(t *testing.T) {
	store, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	defer store.Close()

	ctx := context.Background()
	if err := Run(ctx, store, testConfig()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	user, err := store.GetUser(ctx, "demo-1")
	if err != nil {
		t.Fatalf("GetUser failed: %v", err)
	}
	// Initial 500 plus ten nights of 6-8.5h at 6.0-8.5 points each.
	if user.Points < points.FromFloat(560) || user.Points > points.FromFloat(585) {
		t.Errorf("seeded balance = %v, want within [560, 585]", user.Points)
	}

	sessions, err := store.ListSessions(ctx, "demo-1")
	if err != nil {
		t.Fatalf("ListSessions failed: %v", err)
	}
	if len(sessions) != 10 {
		t.Errorf("got %d sessions, want 10", len(sessions))
	}
	var total points.Points
	for _, s := range sessions {
		if !s.End.After(s.Start) {
			t.Errorf("session %s has end <= start", s.ID)
		}
		if s.CreditedPoints != points.FromHours(s.End.Sub(s.Start)) {
			t.Errorf("session %s credited %v, want formula value", s.ID, s.CreditedPoints)
		}
		total += s.CreditedPoints
	}
	if user.Points != points.FromFloat(500)+total {
		t.Errorf("balance %v != initial + credited %v", user.Points, points.FromFloat(500)+total)
	}

	catalog, err := store.ListProducts(ctx)
	if err != nil {
		t.Fatalf("ListProducts failed: %v", err)
	}
	if len(catalog) != 8 {
		t.Errorf("got %d products, want 8 from embedded catalog", len(catalog))
	}
	for _, p := range catalog {
		if p.Price <= 0 {
			t.Errorf("product %q has non-positive price %d", p.Name, p.Price)
		}
	}
}

func TestRunIsIdempotent(t *testing.T) {
	store, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	defer store.Close()

	ctx := context.Background()
	if err := Run(ctx, store, testConfig()); err != nil {
		t.Fatalf("first Run failed: %v", err)
	}
	before, err := store.GetUser(ctx, "demo-1")
	if err != nil {
		t.Fatalf("GetUser failed: %v", err)
	}

	if err := Run(ctx, store, testConfig()); err != nil {
		t.Fatalf("second Run failed: %v", err)
	}
	after, err := store.GetUser(ctx, "demo-1")
	if err != nil {
		t.Fatalf("GetUser failed: %v", err)
	}
	if before.Points != after.Points {
		t.Errorf("re-running seed changed balance: %v -> %v", before.Points, after.Points)
	}

	sessions, _ := store.ListSessions(ctx, "demo-1")
	if len(sessions) != 10 {
		t.Errorf("re-running seed changed session count: %d", len(sessions))
	}
	catalog, _ := store.ListProducts(ctx)
	if len(catalog) != 8 {
		t.Errorf("re-running seed changed catalog size: %d", len(catalog))
	}
}

func TestRunRequiresUserID(t *testing.T) {
	store, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	defer store.Close()

	cfg := testConfig()
	cfg.DemoUserID = ""
	if err := Run(context.Background(), store, cfg); err == nil {
		t.Error("expected error when DEMO_USER_ID is unset")
	}
}
