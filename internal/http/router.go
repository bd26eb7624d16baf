package httpapi

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter registers API routes plus the static fallback and returns the
// handler with middleware applied.
func NewRouter(app *App, staticDir string) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/me", app.meHandler)
	mux.HandleFunc("GET /api/sessions", app.sessionsHandler)
	mux.HandleFunc("GET /api/products", app.productsHandler)
	mux.HandleFunc("GET /api/products/{id}", app.productHandler)
	mux.HandleFunc("POST /api/redeem", app.redeemHandler)
	mux.HandleFunc("GET /api/good-things", app.goodThingsHandler)
	mux.HandleFunc("GET /healthz", app.healthHandler)
	mux.Handle("GET /metrics", promhttp.Handler())

	if staticDir != "" {
		mux.HandleFunc("/", staticHandler(staticDir))
	}

	return WithRequestID(WithLogging(WithCORS(mux)))
}

// staticHandler serves frontend assets, falling back to index.html for
// unknown paths so client-side routes resolve.
func staticHandler(staticDir string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		urlPath := r.URL.Path
		if urlPath == "/" {
			urlPath = "/index.html"
		}

		filePath := filepath.Join(staticDir, filepath.Clean(urlPath))
		if _, err := os.Stat(filePath); os.IsNotExist(err) {
			http.ServeFile(w, r, filepath.Join(staticDir, "index.html"))
			return
		}
		http.ServeFile(w, r, filePath)
	}
}
