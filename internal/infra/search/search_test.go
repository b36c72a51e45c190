package search

import (
	"slices"
	"testing"

	"interior-billing/go_backend/internal/domain/quote"
)

func TestIndexSearch(t *testing.T) {
	idx, err := New(nil)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	defer idx.Close()

	docs := []quote.Quotation{
		{ID: "a", CustomerName: "Kiran Rao", CustomerMobile: "9876543210", ProductName: "Wallpaper", Brand: "Asian Paints"},
		{ID: "b", CustomerName: "Meena Iyer", CustomerMobile: "9123456780", ProductName: "Vinyl Flooring"},
		{ID: "c", CustomerName: "Kiran Shah", CustomerMobile: "9000000000", ProductName: "Blinds"},
	}
	for _, q := range docs {
		if err := idx.IndexQuotation(q); err != nil {
			t.Fatalf("index %s: %v", q.ID, err)
		}
	}

	cases := []struct {
		text string
		want []string
	}{
		{"kiran", []string{"a", "c"}},
		{"KIR", []string{"a", "c"}},
		{"kiran rao", []string{"a"}},
		{"98765", []string{"a"}},
		{"vinyl", []string{"b"}},
		{"asian", []string{"a"}},
		{"nobody", []string{}},
		{"   ", nil},
	}
	for _, tc := range cases {
		got, err := idx.Search(tc.text)
		if err != nil {
			t.Fatalf("search %q: %v", tc.text, err)
		}
		slices.Sort(got)
		if len(got) != len(tc.want) || (len(got) > 0 && !slices.Equal(got, tc.want)) {
			t.Errorf("search %q = %v, want %v", tc.text, got, tc.want)
		}
	}
}

func TestIndexRemoveAndReplace(t *testing.T) {
	idx, err := New(nil)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	defer idx.Close()

	q := quote.Quotation{ID: "a", CustomerName: "Kiran", CustomerMobile: "1", ProductName: "Tiles"}
	if err := idx.IndexQuotation(q); err != nil {
		t.Fatal(err)
	}
	q.CustomerName = "Arjun"
	if err := idx.IndexQuotation(q); err != nil {
		t.Fatal(err)
	}
	if got, _ := idx.Search("kiran"); len(got) != 0 {
		t.Errorf("stale name still indexed: %v", got)
	}
	if got, _ := idx.Search("arjun"); len(got) != 1 {
		t.Errorf("updated name not found: %v", got)
	}

	if err := idx.RemoveQuotation("a"); err != nil {
		t.Fatal(err)
	}
	if got, _ := idx.Search("arjun"); len(got) != 0 {
		t.Errorf("removed doc still found: %v", got)
	}
}
