package feed

import (
	"math/rand/v2"
	"strings"
)

// Owner describes how to attribute feed rows to the configured current
// user. Criteria are evaluated in precedence order and the first one that
// is configured decides: id match, then first+last name match (both,
// case-insensitive), then email match. With nothing configured no row is
// "mine".
type Owner struct {
	ID        string
	FirstName string
	LastName  string
	Email     string
}

// Matches reports whether the row belongs to the owner.
func (o Owner) Matches(r Row) bool {
	if o.ID != "" && r.ID == o.ID {
		return true
	}
	if o.FirstName != "" && o.LastName != "" {
		if strings.EqualFold(strings.TrimSpace(r.FirstName), o.FirstName) &&
			strings.EqualFold(strings.TrimSpace(r.LastName), o.LastName) {
			return true
		}
	}
	if o.Email != "" && strings.EqualFold(strings.TrimSpace(r.Email), o.Email) {
		return true
	}
	return false
}

// Entry is the public reshaped form of a row.
type Entry struct {
	Timestamp string   `json:"timestamp"`
	Email     string   `json:"email"`
	Positives []string `json:"positives"`
	Name      string   `json:"name"`
	Genre     *string  `json:"genre"`
	ID        string   `json:"id"`
	Text      string   `json:"text,omitempty"`
	Raw       *Row     `json:"raw,omitempty"`
}

// FlatEntry pairs one deduplicated text with its genre.
type FlatEntry struct {
	Text  string  `json:"text"`
	Genre *string `json:"genre"`
}

// Totals reports partition sizes before any truncation.
type Totals struct {
	Mine   int `json:"mine"`
	Others int `json:"others"`
}

// Result is the aggregated good-things view.
type Result struct {
	Mine              []Entry     `json:"mine"`
	Others            []Entry     `json:"others"`
	Total             Totals      `json:"total"`
	OthersFlat        []string    `json:"others_flat,omitempty"`
	OthersFlatObjects []FlatEntry `json:"others_flat_objects,omitempty"`
}

func reshape(r Row, includeRaw bool) Entry {
	e := Entry{
		Timestamp: r.Timestamp,
		Email:     r.Email,
		Positives: r.Positives,
		Name:      r.Name,
		Genre:     r.Genre,
		ID:        r.ID,
		Text:      strings.TrimSpace(r.Text),
	}
	if includeRaw {
		raw := r
		e.Raw = &raw
	}
	return e
}

// Aggregate partitions rows by owner, samples up to othersLimit shuffled
// non-owner rows, and optionally flattens the non-owner text pool.
//
// The shuffle order is intentionally unspecified. The flat pool is built
// from ALL non-owner rows (not the truncated sample): text when present,
// otherwise each element of the legacy positives list; duplicates are
// removed keeping the first occurrence.
func Aggregate(rows []Row, owner Owner, othersLimit int, includeRaw, flatten bool) *Result {
	var mine, others []Row
	for _, r := range rows {
		if owner.Matches(r) {
			mine = append(mine, r)
		} else {
			others = append(others, r)
		}
	}

	shuffled := make([]Row, len(others))
	copy(shuffled, others)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	sample := shuffled
	if len(sample) > othersLimit {
		sample = sample[:othersLimit]
	}

	res := &Result{
		Mine:   make([]Entry, 0, len(mine)),
		Others: make([]Entry, 0, len(sample)),
		Total:  Totals{Mine: len(mine), Others: len(others)},
	}
	for _, r := range mine {
		res.Mine = append(res.Mine, reshape(r, includeRaw))
	}
	for _, r := range sample {
		res.Others = append(res.Others, reshape(r, includeRaw))
	}

	if flatten {
		res.OthersFlat, res.OthersFlatObjects = flattenPool(others, othersLimit)
	}
	return res
}

// flattenPool extracts the deduplicated {text, genre} pool from all
// non-owner rows, shuffles it, and truncates to limit.
func flattenPool(others []Row, limit int) ([]string, []FlatEntry) {
	var pool []FlatEntry
	for _, r := range others {
		genre := r.Genre
		if genre != nil && strings.TrimSpace(*genre) == "" {
			genre = nil
		}

		if t := strings.TrimSpace(r.Text); t != "" {
			pool = append(pool, FlatEntry{Text: t, Genre: genre})
			continue
		}
		for _, p := range r.Positives {
			if p = strings.TrimSpace(p); p != "" {
				pool = append(pool, FlatEntry{Text: p, Genre: genre})
			}
		}
	}

	seen := make(map[string]struct{}, len(pool))
	dedup := pool[:0]
	for _, e := range pool {
		if _, ok := seen[e.Text]; ok {
			continue
		}
		seen[e.Text] = struct{}{}
		dedup = append(dedup, e)
	}

	rand.Shuffle(len(dedup), func(i, j int) {
		dedup[i], dedup[j] = dedup[j], dedup[i]
	})
	if len(dedup) > limit {
		dedup = dedup[:limit]
	}

	texts := make([]string, len(dedup))
	for i, e := range dedup {
		texts[i] = e.Text
	}
	return texts, dedup
}
