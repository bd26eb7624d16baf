package feed

import (
	"fmt"
	"testing"
)

func strptr(s string) *string { return &s }

func makeRows(n int) []Row {
	rows := make([]Row, n)
	for i := range rows {
		text := fmt.Sprintf("good thing %d", i)
		rows[i] = Row{
			ID:        fmt.Sprintf("r%d", i),
			FirstName: "Other",
			LastName:  fmt.Sprintf("Person%d", i),
			Name:      fmt.Sprintf("Other Person%d", i),
			Text:      text,
			Positives: []string{text},
		}
	}
	return rows
}

func TestOwnerMatching(t *testing.T) {
	row := Row{ID: "42", FirstName: "Hanako", LastName: "Yamada", Email: "h@example.com"}

	tests := []struct {
		name  string
		owner Owner
		row   Row
		want  bool
	}{
		{"id match", Owner{ID: "42"}, row, true},
		{"id mismatch", Owner{ID: "43"}, row, false},
		{"name match case-insensitive", Owner{FirstName: "hanako", LastName: "YAMADA"}, row, true},
		{"first name alone is not enough", Owner{FirstName: "Hanako", LastName: "Tanaka"}, row, false},
		{"email match", Owner{Email: "H@example.com"}, row, true},
		{"nothing configured matches nothing", Owner{}, row, false},
		{"id wins over conflicting name", Owner{ID: "42", FirstName: "Nobody", LastName: "Here"}, row, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.owner.Matches(tt.row); got != tt.want {
				t.Errorf("Matches() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAggregatePartitionAndLimit(t *testing.T) {
	rows := makeRows(20)
	mineRow := Row{ID: "me", FirstName: "Hanako", LastName: "Yamada", Text: "my thing", Positives: []string{"my thing"}}
	rows = append(rows, mineRow)

	res := Aggregate(rows, Owner{ID: "me"}, 5, false, false)

	if len(res.Mine) != 1 {
		t.Errorf("len(Mine) = %d, want 1", len(res.Mine))
	}
	if len(res.Others) != 5 {
		t.Errorf("len(Others) = %d, want 5", len(res.Others))
	}
	if res.Total.Mine != 1 || res.Total.Others != 20 {
		t.Errorf("Total = %+v, want {1 20}", res.Total)
	}
	// No ordering assertions: the others sample is shuffled.

	// Members of the sample come from the non-owner partition.
	for _, e := range res.Others {
		if e.ID == "me" {
			t.Error("owner row leaked into others")
		}
	}
	if res.OthersFlat != nil || res.OthersFlatObjects != nil {
		t.Error("flat fields must be absent when flatten is off")
	}
}

func TestAggregateLimitAbovePoolSize(t *testing.T) {
	res := Aggregate(makeRows(3), Owner{}, 10, false, false)
	if len(res.Others) != 3 {
		t.Errorf("len(Others) = %d, want 3", len(res.Others))
	}
}

func TestAggregateIncludeRaw(t *testing.T) {
	rows := makeRows(2)
	res := Aggregate(rows, Owner{}, 10, true, false)
	for _, e := range res.Others {
		if e.Raw == nil {
			t.Fatal("expected raw row when include_raw is set")
		}
		if e.Raw.ID != e.ID {
			t.Errorf("raw row mismatch: %q vs %q", e.Raw.ID, e.ID)
		}
	}

	res = Aggregate(rows, Owner{}, 10, false, false)
	for _, e := range res.Others {
		if e.Raw != nil {
			t.Error("raw row must be omitted by default")
		}
	}
}

func TestAggregateFlattenDedup(t *testing.T) {
	rows := []Row{
		{ID: "1", Text: "sunrise", Genre: strptr("Nature"), Positives: []string{"sunrise"}},
		{ID: "2", Text: "sunrise", Genre: strptr("Sky"), Positives: []string{"sunrise"}},
		{ID: "3", Text: "coffee", Positives: []string{"coffee"}},
		// Legacy row: no text, positives carry multiple lines.
		{ID: "4", Positives: []string{"coffee", "a walk"}},
	}

	res := Aggregate(rows, Owner{}, 100, false, true)

	if len(res.OthersFlat) != 3 {
		t.Fatalf("len(OthersFlat) = %d, want 3 (dedup by text)", len(res.OthersFlat))
	}
	if len(res.OthersFlatObjects) != len(res.OthersFlat) {
		t.Fatalf("flat list and object list disagree: %d vs %d",
			len(res.OthersFlat), len(res.OthersFlatObjects))
	}

	byText := make(map[string]FlatEntry)
	for i, obj := range res.OthersFlatObjects {
		byText[obj.Text] = obj
		if res.OthersFlat[i] != obj.Text {
			t.Errorf("flat[%d] = %q, objects[%d].Text = %q", i, res.OthersFlat[i], i, obj.Text)
		}
	}

	// First occurrence wins: "sunrise" keeps the Nature genre.
	sunrise, ok := byText["sunrise"]
	if !ok {
		t.Fatal("missing sunrise entry")
	}
	if sunrise.Genre == nil || *sunrise.Genre != "Nature" {
		t.Errorf("sunrise genre = %v, want Nature (first occurrence)", sunrise.Genre)
	}
	if _, ok := byText["a walk"]; !ok {
		t.Error("positives fallback entry missing")
	}
}

func TestAggregateFlattenUsesAllOthers(t *testing.T) {
	// Pool must come from all 20 non-owner rows even though the visible
	// sample is truncated to 2.
	res := Aggregate(makeRows(20), Owner{}, 2, false, true)
	if len(res.Others) != 2 {
		t.Errorf("len(Others) = %d, want 2", len(res.Others))
	}
	if len(res.OthersFlat) != 2 {
		t.Errorf("len(OthersFlat) = %d, want 2 (truncated after dedup)", len(res.OthersFlat))
	}

	// With a generous limit all 20 distinct texts survive dedup.
	res = Aggregate(makeRows(20), Owner{}, 200, false, true)
	if len(res.OthersFlat) != 20 {
		t.Errorf("len(OthersFlat) = %d, want 20", len(res.OthersFlat))
	}
}
