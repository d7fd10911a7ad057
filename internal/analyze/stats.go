// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package analyze

import (
	"sort"

	"github.com/mlukac/citetab/internal/convention"
	"github.com/mlukac/citetab/internal/dataset"
	"github.com/mlukac/citetab/pkg/types"
)

// FileStats summarizes one loaded export file.
type FileStats struct {
	Key         convention.Key `json:"key" yaml:"key"`
	Filename    string         `json:"filename" yaml:"filename"`
	TotalPapers int            `json:"total_papers" yaml:"total_papers"`

	// YearMin and YearMax span the publication years present in the
	// file. Records with no year are excluded; both are zero when no
	// record carries a year.
	YearMin int `json:"year_min" yaml:"year_min"`
	YearMax int `json:"year_max" yaml:"year_max"`

	TotalCites int     `json:"total_cites" yaml:"total_cites"`
	MeanCites  float64 `json:"mean_cites" yaml:"mean_cites"`

	// TopCited lists the most cited records, citation count descending.
	TopCited []types.Record `json:"top_cited,omitempty" yaml:"top_cited,omitempty"`
}

// Stats computes the summary for one dataset with up to topN top-cited
// records.
func Stats(ds dataset.Dataset, topN int) FileStats {
	stats := FileStats{
		Key:         ds.Key,
		Filename:    ds.Filename,
		TotalPapers: len(ds.Records),
	}

	for _, rec := range ds.Records {
		stats.TotalCites += rec.Cites
		if rec.Year == 0 {
			continue
		}
		if stats.YearMin == 0 || rec.Year < stats.YearMin {
			stats.YearMin = rec.Year
		}
		if rec.Year > stats.YearMax {
			stats.YearMax = rec.Year
		}
	}
	if len(ds.Records) > 0 {
		stats.MeanCites = float64(stats.TotalCites) / float64(len(ds.Records))
	}

	stats.TopCited = topCited(ds.Records, topN)
	return stats
}

// topCited returns up to n records ordered by citation count
// descending. Ties keep input order.
func topCited(records []types.Record, n int) []types.Record {
	if n <= 0 || len(records) == 0 {
		return nil
	}
	sorted := make([]types.Record, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Cites > sorted[j].Cites
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

// YearCites is the citation sum for one publication year.
type YearCites struct {
	Year  int `json:"year" yaml:"year"`
	Cites int `json:"cites" yaml:"cites"`
}

// Trends sums citations per publication year, ascending by year.
// Records without a year are excluded.
func Trends(ds dataset.Dataset) []YearCites {
	byYear := make(map[int]int)
	for _, rec := range ds.Records {
		if rec.Year == 0 {
			continue
		}
		byYear[rec.Year] += rec.Cites
	}

	trends := make([]YearCites, 0, len(byYear))
	for year, cites := range byYear {
		trends = append(trends, YearCites{Year: year, Cites: cites})
	}
	sort.Slice(trends, func(i, j int) bool { return trends[i].Year < trends[j].Year })
	return trends
}
