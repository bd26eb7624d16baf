package feed

import (
	"errors"
	"testing"
)

func TestParseRejectsHTML(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{"doctype", "<!DOCTYPE html><html><body>sign in</body></html>"},
		{"doctype with leading whitespace", "\n  <!DOCTYPE html><html></html>"},
		{"html tag in first 200 bytes", "some junk <HTML lang=\"en\"> more junk"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.payload))
			if !errors.Is(err, ErrUpstreamFormat) {
				t.Errorf("Parse() err = %v, want ErrUpstreamFormat", err)
			}
		})
	}
}

func TestParseCanonicalHeaders(t *testing.T) {
	csv := "ID,First Name,Last Name,Text,Genre\n" +
		"7,Hanako,Yamada,Saw a beautiful sunrise,Nature\n"
	rows, err := Parse([]byte(csv))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}

	r := rows[0]
	if r.ID != "7" {
		t.Errorf("ID = %q, want %q", r.ID, "7")
	}
	if r.Name != "Hanako Yamada" {
		t.Errorf("Name = %q, want %q", r.Name, "Hanako Yamada")
	}
	if r.Text != "Saw a beautiful sunrise" {
		t.Errorf("Text = %q", r.Text)
	}
	if r.Genre == nil || *r.Genre != "Nature" {
		t.Errorf("Genre = %v, want Nature", r.Genre)
	}
	if r.Timestamp != "" || r.Email != "" {
		t.Error("legacy timestamp/email fields must be empty")
	}
	if len(r.Positives) != 1 || r.Positives[0] != r.Text {
		t.Errorf("Positives = %v, want single-element text", r.Positives)
	}
}

func TestParseAliasedHeaders(t *testing.T) {
	tests := []struct {
		name string
		csv  string
	}{
		{
			"lowercase aliases",
			"ID,first name,last name,text,genre\n1,Taro,Sato,Good coffee,Food\n",
		},
		{
			"japanese aliases",
			"ID,名,姓,回答文,ジャンル\n1,Taro,Sato,Good coffee,Food\n",
		},
		{
			"case-insensitive fallback",
			"id,FIRST NAME,LAST NAME,TEXT,GENRE\n1,Taro,Sato,Good coffee,Food\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows, err := Parse([]byte(tt.csv))
			if err != nil {
				t.Fatalf("Parse failed: %v", err)
			}
			if len(rows) != 1 {
				t.Fatalf("got %d rows, want 1", len(rows))
			}
			r := rows[0]
			if r.ID != "1" || r.Name != "Taro Sato" || r.Text != "Good coffee" {
				t.Errorf("row = %+v", r)
			}
			if r.Genre == nil || *r.Genre != "Food" {
				t.Errorf("Genre = %v, want Food", r.Genre)
			}
		})
	}
}

func TestParseStripsBOM(t *testing.T) {
	csv := "\xef\xbb\xbfID,Text\n1,hello\n"
	rows, err := Parse([]byte(csv))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(rows) != 1 || rows[0].ID != "1" {
		t.Errorf("rows = %+v, want ID resolved despite BOM", rows)
	}
}

func TestParseDropsEmptyText(t *testing.T) {
	csv := "ID,First Name,Last Name,Text,Genre\n" +
		"1,Taro,Sato,kept,\n" +
		"2,Jiro,Suzuki,,Food\n" +
		"3,Saburo,Takahashi,   ,Food\n"
	rows, err := Parse([]byte(csv))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1 (empty-text rows dropped)", len(rows))
	}
	if rows[0].ID != "1" {
		t.Errorf("kept row ID = %q, want 1", rows[0].ID)
	}
	if rows[0].Genre != nil {
		t.Errorf("blank genre must be nil, got %v", *rows[0].Genre)
	}
}

func TestParseTrimsWhitespace(t *testing.T) {
	csv := "ID,First Name,Last Name,Text,Genre\n" +
		"1,  Taro ,  Sato , \t a good thing ,  Life \n"
	rows, err := Parse([]byte(csv))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	r := rows[0]
	if r.FirstName != "Taro" || r.LastName != "Sato" || r.Text != "a good thing" {
		t.Errorf("fields not trimmed: %+v", r)
	}
	if r.Genre == nil || *r.Genre != "Life" {
		t.Errorf("Genre = %v, want Life", r.Genre)
	}
}

func TestParseRaggedRows(t *testing.T) {
	// Short rows must not panic the alias resolver.
	csv := "ID,First Name,Last Name,Text,Genre\n1,Taro\n2,Jiro,Suzuki,still here\n"
	rows, err := Parse([]byte(csv))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(rows) != 1 || rows[0].ID != "2" {
		t.Errorf("rows = %+v, want only the complete row", rows)
	}
}
