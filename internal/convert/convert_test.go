// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mlukac/citetab/internal/dataset"
)

const ieeeCSV = `Document Title,Authors,Publication Year,Article Citation Count,Abstract,DOI,Publication Title
An FPGA Paper,"A. Author; B. Author",2019,27,Some abstract,10.1109/x,IEEE Trans. X
Another Paper,"C. Author",2021,,,10.1109/y,IEEE Trans. Y
`

const bibEntry = `@article{smith2020,
  title = {A Study of Things},
  author = {Smith, Jane and Doe, John},
  year = {2020},
  journal = {Journal of Things},
  doi = {10.1000/thing}
}
@inproceedings{lee2018,
  title = {Conference Findings},
  author = {Lee, Kim},
  year = {2018}
}
`

func TestIEEE(t *testing.T) {
	records, err := IEEE(strings.NewReader(ieeeCSV))
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "An FPGA Paper", records[0].Title)
	assert.Equal(t, 2019, records[0].Year)
	assert.Equal(t, 27, records[0].Cites)
	assert.Equal(t, "IEEE Trans. X", records[0].Journal)
	assert.Equal(t, "10.1109/x", records[0].DOI)

	// Missing citation count coerces to zero.
	assert.Equal(t, 0, records[1].Cites)
}

func TestIEEEMissingColumns(t *testing.T) {
	_, err := IEEE(strings.NewReader("Title,Year\nA,2020\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not an IEEE Xplore export")
}

func TestBibTeX(t *testing.T) {
	records, err := BibTeX(strings.NewReader(bibEntry))
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "A Study of Things", records[0].Title)
	assert.Equal(t, 2020, records[0].Year)
	assert.Equal(t, "Journal of Things", records[0].Journal)
	assert.Equal(t, "10.1000/thing", records[0].DOI)
	// No citation counts in BibTeX.
	assert.Equal(t, 0, records[0].Cites)

	assert.Equal(t, "Conference Findings", records[1].Title)
	assert.Equal(t, "", records[1].Journal)
}

func TestIEEEFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "export.csv")
	require.NoError(t, os.WriteFile(src, []byte(ieeeCSV), 0o644))

	outDir := filepath.Join(dir, "out")
	path, err := IEEEFile(src, outDir)
	require.NoError(t, err)
	assert.True(t, strings.Contains(filepath.Base(path), "ieee_export"), "got %s", path)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	records, err := dataset.ReadRecords(f)
	require.NoError(t, err)
	assert.Len(t, records, 2)
	assert.Equal(t, "An FPGA Paper", records[0].Title)
}

func TestBibTeXFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "refs.bib")
	require.NoError(t, os.WriteFile(src, []byte(bibEntry), 0o644))

	outDir := filepath.Join(dir, "out")
	path, err := BibTeXFile(src, outDir)
	require.NoError(t, err)
	assert.True(t, strings.Contains(filepath.Base(path), "bibtex_refs"), "got %s", path)
}
