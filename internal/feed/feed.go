// Package feed fetches, normalizes, caches, and aggregates the external
// "good things" spreadsheet feed.
//
// The feed is a published-to-the-web CSV. Rows pass through a tolerant
// normalizer (header aliasing, BOM stripping, HTML-payload detection), a
// single-slot TTL cache, and an aggregation step that partitions rows into
// the configured owner's entries and a shuffled sample of everyone else's.
package feed

import "errors"

var (
	// ErrNotConfigured: no feed URL is set.
	ErrNotConfigured = errors.New("feed URL is not configured")

	// ErrUpstreamFormat: the upstream returned something that is not CSV,
	// typically the HTML error page of a sheet that was never published.
	ErrUpstreamFormat = errors.New("upstream returned HTML, not CSV (use a 'Publish to the web' CSV URL)")

	// ErrUpstreamUnavailable: the upstream could not be reached or answered
	// with a non-2xx status.
	ErrUpstreamUnavailable = errors.New("upstream feed unavailable")
)

// Row is one normalized feed entry. Rows are rebuilt wholesale on every
// fetch and never mutated afterwards.
//
// Timestamp, Positives, and Email exist for backward compatibility with an
// older feed format: Timestamp and Email are always empty, and Positives
// always holds the single text value.
type Row struct {
	ID        string   `json:"id"`
	FirstName string   `json:"first_name"`
	LastName  string   `json:"last_name"`
	Name      string   `json:"name"`
	Text      string   `json:"text"`
	Genre     *string  `json:"genre"`
	Timestamp string   `json:"timestamp"`
	Positives []string `json:"positives"`
	Email     string   `json:"email"`
}
