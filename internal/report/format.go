// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/mlukac/citetab/internal/analyze"
	"github.com/mlukac/citetab/pkg/types"
)

// StatsTable writes per-file summaries as a human-readable table to w.
func StatsTable(stats []analyze.FileStats, w io.Writer) {
	if len(stats) == 0 {
		fmt.Fprintln(w, "No exports analyzed.")
		return
	}

	fmt.Fprintf(w, "%-40s  %-15s  %-6s  %-11s  %-8s  %s\n",
		"File", "Engine", "Papers", "Years", "Cites", "Mean")
	fmt.Fprintln(w, strings.Repeat("-", 96))

	for _, s := range stats {
		years := ""
		if s.YearMin != 0 {
			years = fmt.Sprintf("%d-%d", s.YearMin, s.YearMax)
		}
		fmt.Fprintf(w, "%-40s  %-15s  %-6d  %-11s  %-8d  %.2f\n",
			truncate(s.Filename, 40), truncate(s.Key.Engine, 15),
			s.TotalPapers, years, s.TotalCites, s.MeanCites)
	}
	fmt.Fprintf(w, "\n%d file(s)\n", len(stats))
}

// TopCitedList writes the top-cited records of one file summary to w.
func TopCitedList(s analyze.FileStats, w io.Writer) {
	if len(s.TopCited) == 0 {
		return
	}
	fmt.Fprintf(w, "\nTop cited in %s:\n", s.Filename)
	for _, rec := range s.TopCited {
		year := ""
		if rec.Year != 0 {
			year = fmt.Sprintf(" (%d)", rec.Year)
		}
		fmt.Fprintf(w, "  - %s%s - %d citations\n", truncate(rec.Title, 70), year, rec.Cites)
	}
}

// BucketTable writes aggregation buckets as a table to w. metricName
// labels the sum column (e.g. "Cites").
func BucketTable(res analyze.Result, metricName string, w io.Writer) {
	if len(res.Buckets) == 0 {
		fmt.Fprintln(w, "No records aggregated.")
		return
	}

	fmt.Fprintf(w, "%-40s  %-8s  %-10s  %s\n", "Group", "Papers", metricName, "Mean")
	fmt.Fprintln(w, strings.Repeat("-", 72))
	for _, b := range res.Buckets {
		fmt.Fprintf(w, "%-40s  %-8d  %-10.0f  %.2f\n",
			truncate(b.ID, 40), b.Count, b.Sum, b.Mean())
	}
	fmt.Fprintf(w, "\n%d group(s)\n", len(res.Buckets))
}

// TrendsTable writes per-year citation sums as a table to w.
func TrendsTable(trends []analyze.YearCites, w io.Writer) {
	if len(trends) == 0 {
		fmt.Fprintln(w, "No dated records.")
		return
	}
	fmt.Fprintf(w, "%-6s  %s\n", "Year", "Cites")
	fmt.Fprintln(w, strings.Repeat("-", 14))
	for _, yc := range trends {
		fmt.Fprintf(w, "%-6d  %d\n", yc.Year, yc.Cites)
	}
}

// RecordList writes records as a short listing to w.
func RecordList(records []types.Record, w io.Writer) {
	if len(records) == 0 {
		fmt.Fprintln(w, "No matching articles.")
		return
	}
	for _, rec := range records {
		year := ""
		if rec.Year != 0 {
			year = fmt.Sprintf(" (%d)", rec.Year)
		}
		fmt.Fprintf(w, "- %s%s - %d citations\n", truncate(rec.Title, 70), year, rec.Cites)
	}
	fmt.Fprintf(w, "\n%d article(s)\n", len(records))
}

// JSON writes v as indented JSON to w.
func JSON(v any, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
