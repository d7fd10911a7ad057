// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"bytes"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mlukac/citetab/internal/analyze"
	"github.com/mlukac/citetab/internal/convention"
	"github.com/mlukac/citetab/pkg/types"
)

func sampleReport(t *testing.T) Report {
	t.Helper()
	key, err := convention.Parse("Scopus_ai_AND_ethics.csv")
	require.NoError(t, err)

	return Report{
		GeneratedAt: time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
		CSVDir:      "csv_results",
		Files: []analyze.FileStats{{
			Key:         key,
			Filename:    "Scopus_ai_AND_ethics.csv",
			TotalPapers: 2,
			YearMin:     2019,
			YearMax:     2021,
			TotalCites:  50,
			MeanCites:   25,
			TopCited:    []types.Record{{Title: "B", Year: 2021, Cites: 40}},
		}},
		ByEngine:  analyze.Result{Buckets: []analyze.Bucket{{ID: "Scopus", Count: 2, Sum: 50}}},
		ByKeyword: analyze.Result{Buckets: []analyze.Bucket{{ID: "ai", Count: 2, Sum: 50}}},
	}
}

func TestReportRoundTrip(t *testing.T) {
	rep := sampleReport(t)
	path := filepath.Join(t.TempDir(), "report.yaml")

	require.NoError(t, Write(path, rep))

	got, err := Read(path)
	require.NoError(t, err)

	assert.Equal(t, rep.CSVDir, got.CSVDir)
	require.Len(t, got.Files, 1)
	assert.Equal(t, rep.Files[0].TotalCites, got.Files[0].TotalCites)
	assert.Equal(t, rep.Files[0].Key.Engine, got.Files[0].Key.Engine)
	assert.Equal(t, rep.ByEngine, got.ByEngine)
	assert.True(t, rep.GeneratedAt.Equal(got.GeneratedAt))
}

func TestReadMissingFile(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestStatsTable(t *testing.T) {
	rep := sampleReport(t)
	var buf bytes.Buffer
	StatsTable(rep.Files, &buf)

	out := buf.String()
	assert.Contains(t, out, "Scopus_ai_AND_ethics.csv")
	assert.Contains(t, out, "2019-2021")
	assert.Contains(t, out, "1 file(s)")
}

func TestStatsTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	StatsTable(nil, &buf)
	assert.Contains(t, buf.String(), "No exports analyzed.")
}

func TestBucketTable(t *testing.T) {
	res := analyze.Result{Buckets: []analyze.Bucket{
		{ID: "Scopus", Count: 3, Sum: 60},
		{ID: "GoogleScholar", Count: 1, Sum: 5},
	}}

	var buf bytes.Buffer
	BucketTable(res, "Cites", &buf)

	out := buf.String()
	assert.Contains(t, out, "Scopus")
	assert.Contains(t, out, "GoogleScholar")
	assert.Contains(t, out, "20.00") // Scopus mean
	assert.Contains(t, out, "2 group(s)")
}

func TestTrendsTable(t *testing.T) {
	var buf bytes.Buffer
	TrendsTable([]analyze.YearCites{{Year: 2020, Cites: 7}}, &buf)
	assert.Contains(t, buf.String(), "2020")
}

func TestJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, JSON(sampleReport(t).ByEngine, &buf))
	assert.Contains(t, buf.String(), `"id": "Scopus"`)
}
