package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/mkaneko/sleepoints/internal/config"
	"github.com/mkaneko/sleepoints/internal/feed"
	httpapi "github.com/mkaneko/sleepoints/internal/http"
	"github.com/mkaneko/sleepoints/internal/seed"
	"github.com/mkaneko/sleepoints/internal/service"
	"github.com/mkaneko/sleepoints/internal/storage/sqlite"
	"github.com/mkaneko/sleepoints/pkg/logging"
)

func main() {
	logging.Setup()
	cfg := config.Load()

	store, err := sqlite.New(cfg.DBPath)
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()
	slog.Info("Storage initialized", "database", cfg.DBPath)

	if err := seed.Run(context.Background(), store, cfg); err != nil {
		slog.Error("Failed to seed demo data", "error", err)
		os.Exit(1)
	}

	source := feed.NewHTTPSource(cfg.SheetCSVURL)
	source.Client.Timeout = cfg.FeedTimeout
	cache := feed.NewCache(source, cfg.SheetCacheTTL)
	if cfg.SheetCSVURL == "" {
		slog.Warn("SHEET_CSV_URL is not set; /api/good-things will fail until configured")
	}
	if cfg.WebhookURL != "" {
		slog.Info("Automation webhook configured", "url", cfg.WebhookURL)
	}

	staticDir := ""
	if cfg.StaticPath != "" {
		staticDir, err = filepath.Abs(cfg.StaticPath)
		if err != nil {
			slog.Error("Failed to resolve static path", "error", err)
			os.Exit(1)
		}
		slog.Info("Serving static files", "path", staticDir)
	}

	app := httpapi.NewApp(service.NewRewards(store), cache, cfg.Owner(), cfg.DemoUserID)
	handler := httpapi.NewRouter(app, staticDir)

	// HTTP/2 without TLS for local and reverse-proxied deployments.
	h2cHandler := h2c.NewHandler(handler, &http2.Server{})

	slog.Info("Server starting", "address", cfg.HTTPAddr)
	if err := http.ListenAndServe(cfg.HTTPAddr, h2cHandler); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}
