package feed

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// DefaultFetchTimeout bounds one upstream request; a slow sheet must not
// hold request handlers hostage.
const DefaultFetchTimeout = 10 * time.Second

// Some publish endpoints refuse requests without a browser user agent.
const fetchUserAgent = "Mozilla/5.0"

var fetchesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "feed_fetches_total",
	Help: "Upstream feed fetch attempts by result.",
}, []string{"result"})

// Source produces normalized feed rows. Implemented by HTTPSource in
// production and by stubs in tests.
type Source interface {
	Fetch(ctx context.Context) ([]Row, error)
}

// HTTPSource fetches the published CSV over HTTP and normalizes it.
type HTTPSource struct {
	URL    string
	Client *http.Client
}

// NewHTTPSource creates a source for the given CSV URL with the default
// timeout. Redirects are followed (publish links usually redirect once).
func NewHTTPSource(url string) *HTTPSource {
	return &HTTPSource{
		URL:    url,
		Client: &http.Client{Timeout: DefaultFetchTimeout},
	}
}

// Fetch downloads and parses the feed.
// Returns ErrNotConfigured when no URL is set, ErrUpstreamUnavailable for
// transport/status failures, ErrUpstreamFormat for non-CSV payloads.
func (s *HTTPSource) Fetch(ctx context.Context) ([]Row, error) {
	if s.URL == "" {
		fetchesTotal.WithLabelValues("not_configured").Inc()
		return nil, ErrNotConfigured
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		fetchesTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}
	req.Header.Set("User-Agent", fetchUserAgent)

	resp, err := s.Client.Do(req)
	if err != nil {
		fetchesTotal.WithLabelValues("unavailable").Inc()
		return nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		fetchesTotal.WithLabelValues("unavailable").Inc()
		return nil, fmt.Errorf("%w: status %d", ErrUpstreamUnavailable, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		fetchesTotal.WithLabelValues("unavailable").Inc()
		return nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}

	rows, err := Parse(body)
	if err != nil {
		fetchesTotal.WithLabelValues("format_error").Inc()
		return nil, err
	}
	fetchesTotal.WithLabelValues("ok").Inc()
	return rows, nil
}
