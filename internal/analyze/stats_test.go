// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package analyze

import (
	"reflect"
	"testing"

	"github.com/mlukac/citetab/internal/dataset"
	"github.com/mlukac/citetab/pkg/types"
)

func testDataset(t *testing.T) dataset.Dataset {
	t.Helper()
	return dataset.Dataset{
		Key:      mustParse(t, "Scopus_ai_AND_ethics.csv"),
		Filename: "Scopus_ai_AND_ethics.csv",
		Records: []types.Record{
			{Title: "A", Year: 2019, Cites: 10},
			{Title: "B", Year: 2021, Cites: 40},
			{Title: "C", Year: 2020, Cites: 5},
			{Title: "D", Year: 0, Cites: 5},
		},
	}
}

// --- Stats ---

func TestStats(t *testing.T) {
	stats := Stats(testDataset(t), 2)

	if stats.TotalPapers != 4 {
		t.Errorf("TotalPapers = %d, want 4", stats.TotalPapers)
	}
	if stats.YearMin != 2019 || stats.YearMax != 2021 {
		t.Errorf("year range = [%d, %d], want [2019, 2021]", stats.YearMin, stats.YearMax)
	}
	if stats.TotalCites != 60 {
		t.Errorf("TotalCites = %d, want 60", stats.TotalCites)
	}
	if stats.MeanCites != 15 {
		t.Errorf("MeanCites = %f, want 15", stats.MeanCites)
	}
	if len(stats.TopCited) != 2 {
		t.Fatalf("len(TopCited) = %d, want 2", len(stats.TopCited))
	}
	if stats.TopCited[0].Title != "B" || stats.TopCited[1].Title != "A" {
		t.Errorf("TopCited = [%s, %s], want [B, A]", stats.TopCited[0].Title, stats.TopCited[1].Title)
	}
}

func TestStatsEmptyDataset(t *testing.T) {
	ds := dataset.Dataset{Key: mustParse(t, "Scopus_ai.csv"), Filename: "Scopus_ai.csv"}
	stats := Stats(ds, 5)

	if stats.TotalPapers != 0 || stats.TotalCites != 0 || stats.MeanCites != 0 {
		t.Errorf("empty dataset stats = %+v, want zeroes", stats)
	}
	if stats.YearMin != 0 || stats.YearMax != 0 {
		t.Errorf("year range = [%d, %d], want [0, 0]", stats.YearMin, stats.YearMax)
	}
	if stats.TopCited != nil {
		t.Errorf("TopCited = %v, want nil", stats.TopCited)
	}
}

func TestStatsTopCitedTieKeepsInputOrder(t *testing.T) {
	ds := dataset.Dataset{
		Key: mustParse(t, "Scopus_ai.csv"),
		Records: []types.Record{
			{Title: "first", Cites: 7},
			{Title: "second", Cites: 7},
		},
	}
	stats := Stats(ds, 2)
	if stats.TopCited[0].Title != "first" {
		t.Errorf("tie order changed: got %q first", stats.TopCited[0].Title)
	}
}

// --- Trends ---

func TestTrends(t *testing.T) {
	ds := testDataset(t)
	ds.Records = append(ds.Records, types.Record{Title: "E", Year: 2019, Cites: 3})

	got := Trends(ds)
	want := []YearCites{
		{Year: 2019, Cites: 13},
		{Year: 2020, Cites: 5},
		{Year: 2021, Cites: 40},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Trends = %v, want %v", got, want)
	}
}

// --- Overlap ---

func TestOverlap(t *testing.T) {
	ds1 := dataset.Dataset{
		Key: mustParse(t, "Scopus_ai.csv"),
		Records: []types.Record{
			{Title: "Attention Is All You Need", Cites: 100},
			{Title: "Unique To Scopus", Cites: 1},
		},
	}
	ds2 := dataset.Dataset{
		Key: mustParse(t, "GoogleScholar_ai.csv"),
		Records: []types.Record{
			{Title: "attention is all you need!", Cites: 90},
			{Title: "Another Unrelated Paper", Cites: 2},
		},
	}

	common := Overlap([]dataset.Dataset{ds1, ds2}, 0.8)
	if len(common) != 1 {
		t.Fatalf("len(common) = %d, want 1", len(common))
	}
	// The record from the earlier dataset is kept.
	if common[0].Cites != 100 {
		t.Errorf("kept record Cites = %d, want 100", common[0].Cites)
	}
}

func TestOverlapNone(t *testing.T) {
	ds1 := dataset.Dataset{Records: []types.Record{{Title: "alpha beta gamma"}}}
	ds2 := dataset.Dataset{Records: []types.Record{{Title: "delta epsilon zeta"}}}

	if common := Overlap([]dataset.Dataset{ds1, ds2}, 0.8); len(common) != 0 {
		t.Errorf("len(common) = %d, want 0", len(common))
	}
}

func TestTitleSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want float64
	}{
		{"identical", "deep learning survey", "deep learning survey", 1.0},
		{"partial", "deep learning survey", "deep learning review", 2.0 / 3.0},
		{"disjoint", "alpha beta", "gamma delta", 0},
		{"empty", "", "anything", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := titleSimilarity(tt.a, tt.b); got != tt.want {
				t.Errorf("titleSimilarity(%q, %q) = %f, want %f", tt.a, tt.b, got, tt.want)
			}
		})
	}
}
