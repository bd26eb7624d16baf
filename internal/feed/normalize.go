package feed

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"
)

// Accepted header spellings per logical field, tried in order. The feed
// sheet has shipped with English, lowercase, and Japanese headers at
// different times; resolution is exact-match first, then case-insensitive.
var (
	idAliases    = []string{"ID"}
	firstAliases = []string{"First Name", "first name", "名", "First"}
	lastAliases  = []string{"Last Name", "last name", "姓", "Last"}
	textAliases  = []string{"回答文", "Text", "text", "Answer", "answer"}
	genreAliases = []string{"ジャンル", "Genre", "genre", "Category", "category"}
)

var utf8BOM = []byte{0xef, 0xbb, 0xbf}

// looksLikeHTML reports whether the payload is an HTML document rather than
// CSV — the usual symptom of a sheet link that is not published as CSV.
func looksLikeHTML(data []byte) bool {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if bytes.HasPrefix(trimmed, []byte("<!DOCTYPE html")) {
		return true
	}
	head := data
	if len(head) > 200 {
		head = head[:200]
	}
	return bytes.Contains(bytes.ToLower(head), []byte("<html"))
}

// headerIndex resolves field lookups against one parsed header row.
type headerIndex struct {
	exact map[string]int
	lower map[string]int
}

func newHeaderIndex(header []string) *headerIndex {
	idx := &headerIndex{
		exact: make(map[string]int, len(header)),
		lower: make(map[string]int, len(header)),
	}
	for i, h := range header {
		h = strings.TrimSpace(h)
		if _, ok := idx.exact[h]; !ok {
			idx.exact[h] = i
		}
		l := strings.ToLower(h)
		if _, ok := idx.lower[l]; !ok {
			idx.lower[l] = i
		}
	}
	return idx
}

// get returns the trimmed value for the first alias present in the header,
// preferring exact matches over case-insensitive ones.
func (idx *headerIndex) get(record []string, aliases []string) string {
	for _, a := range aliases {
		if i, ok := idx.exact[a]; ok && i < len(record) {
			return strings.TrimSpace(record[i])
		}
	}
	for _, a := range aliases {
		if i, ok := idx.lower[strings.ToLower(a)]; ok && i < len(record) {
			return strings.TrimSpace(record[i])
		}
	}
	return ""
}

// Parse normalizes a raw CSV payload into feed rows.
//
// HTML payloads fail with ErrUpstreamFormat. A leading UTF-8 BOM is
// stripped. Rows whose resolved text is empty are dropped. Genre is nil
// when blank.
func Parse(data []byte) ([]Row, error) {
	if looksLikeHTML(data) {
		return nil, ErrUpstreamFormat
	}
	data = bytes.TrimPrefix(data, utf8BOM)

	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1 // tolerate ragged rows

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstreamFormat, err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	idx := newHeaderIndex(records[0])
	rows := make([]Row, 0, len(records)-1)
	for _, record := range records[1:] {
		text := idx.get(record, textAliases)
		if text == "" {
			continue
		}

		first := idx.get(record, firstAliases)
		last := idx.get(record, lastAliases)
		row := Row{
			ID:        idx.get(record, idAliases),
			FirstName: first,
			LastName:  last,
			Name:      strings.TrimSpace(first + " " + last),
			Text:      text,
			Timestamp: "",
			Positives: []string{text},
			Email:     "",
		}
		if genre := idx.get(record, genreAliases); genre != "" {
			row.Genre = &genre
		}
		rows = append(rows, row)
	}
	return rows, nil
}
