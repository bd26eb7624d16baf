// Package seed bootstraps demo fixture data on startup: the demo user, a
// run of randomized sleep history, and the product catalog.
//
// This is deliberately outside the core logic: the credit formula and
// redemption rules never depend on how records were seeded.
package seed

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/mkaneko/sleepoints/internal/config"
	"github.com/mkaneko/sleepoints/internal/models"
	"github.com/mkaneko/sleepoints/internal/points"
	"github.com/mkaneko/sleepoints/internal/storage"
)

//go:embed catalog.yaml
var defaultCatalog []byte

// catalogFile is the YAML shape of a seed catalog.
type catalogFile struct {
	Products []struct {
		Name        string `yaml:"name"`
		Image       string `yaml:"image"`
		Price       int    `yaml:"price"`
		Description string `yaml:"description"`
	} `yaml:"products"`
}

// Run ensures the demo user, sleep history, and product catalog exist.
// Idempotent: existing data is left alone.
func Run(ctx context.Context, store storage.Store, cfg config.Config) error {
	if cfg.DemoUserID == "" {
		return fmt.Errorf("DEMO_USER_ID is not set")
	}

	user, err := store.GetUser(ctx, cfg.DemoUserID)
	if errors.Is(err, storage.ErrNotFound) {
		user = &models.User{
			ID:       cfg.DemoUserID,
			Username: "demo",
			Email:    cfg.DemoUserEmail,
			Points:   cfg.InitialPoints,
		}
		if err := store.CreateUser(ctx, user); err != nil {
			return fmt.Errorf("failed to seed user: %w", err)
		}
		slog.Info("Seeded demo user", "user_id", user.ID, "points", user.Points)
	} else if err != nil {
		return fmt.Errorf("failed to look up demo user: %w", err)
	}

	if err := seedSessions(ctx, store, cfg.DemoUserID); err != nil {
		return err
	}
	return seedCatalog(ctx, store, cfg.SeedCatalog)
}

// seedSessions inserts ten nights of randomized sleep history if the user
// has none. Each night starts around 22:30 and lasts 6 to 8.5 hours; the
// credited points follow the same truncation formula as live credits and
// are added to the balance through the normal CreditSleep path.
func seedSessions(ctx context.Context, store storage.Store, userID string) error {
	existing, err := store.ListSessions(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to check sleep history: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	base := time.Now().Truncate(time.Minute)
	base = time.Date(base.Year(), base.Month(), base.Day(), 22, 30, 0, 0, base.Location())
	total := points.Points(0)
	for i := 0; i < 10; i++ {
		start := base.AddDate(0, 0, -i).Add(time.Duration(rand.IntN(181)-60) * time.Minute)
		hours := 6.0 + rand.Float64()*2.5
		duration := time.Duration(hours * float64(time.Hour))

		sess := &models.SleepSession{
			UserID:         userID,
			Start:          start,
			End:            start.Add(duration),
			CreditedPoints: points.FromHours(duration),
		}
		if err := store.CreditSleep(ctx, sess); err != nil {
			return fmt.Errorf("failed to seed sleep session: %w", err)
		}
		total += sess.CreditedPoints
	}
	slog.Info("Seeded sleep history", "user_id", userID, "sessions", 10, "credited", total)
	return nil
}

// seedCatalog inserts the product catalog if none exists. The catalog
// comes from catalogPath when set, otherwise from the embedded default.
func seedCatalog(ctx context.Context, store storage.Store, catalogPath string) error {
	existing, err := store.ListProducts(ctx)
	if err != nil {
		return fmt.Errorf("failed to check catalog: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	raw := defaultCatalog
	if catalogPath != "" {
		raw, err = os.ReadFile(catalogPath)
		if err != nil {
			return fmt.Errorf("failed to read seed catalog: %w", err)
		}
	}

	var file catalogFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return fmt.Errorf("failed to parse seed catalog: %w", err)
	}

	for _, p := range file.Products {
		if p.Name == "" || p.Price <= 0 {
			return fmt.Errorf("invalid seed product %q: name and positive price required", p.Name)
		}
		product := &models.Product{
			Name:        p.Name,
			Image:       p.Image,
			Price:       p.Price,
			Description: p.Description,
		}
		if err := store.CreateProduct(ctx, product); err != nil {
			return fmt.Errorf("failed to seed product %q: %w", p.Name, err)
		}
	}
	slog.Info("Seeded product catalog", "products", len(file.Products))
	return nil
}
