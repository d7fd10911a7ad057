// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert maps foreign export formats (IEEE Xplore CSV,
// BibTeX) into the standard column layout so they can join the
// analysis alongside Publish or Perish exports.
package convert

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/mlukac/citetab/internal/dataset"
	"github.com/mlukac/citetab/pkg/types"
)

// ieeeColumns maps IEEE Xplore export columns to standard-layout fields.
var ieeeColumns = map[string]string{
	"Document Title":         "Title",
	"Authors":                "Authors",
	"Publication Year":       "Year",
	"Article Citation Count": "Cites",
	"Abstract":               "Abstract",
	"DOI":                    "DOI",
	"Publication Title":      "Journal",
}

// IEEE reads an IEEE Xplore CSV export from r and returns records in
// the standard layout. The header must carry at least the document
// title and publication year columns.
func IEEE(r io.Reader) ([]types.Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("reading IEEE header: %w", err)
	}

	col := make(map[string]int)
	for i, name := range header {
		col[name] = i
	}
	for _, required := range []string{"Document Title", "Publication Year"} {
		if _, ok := col[required]; !ok {
			return nil, fmt.Errorf("not an IEEE Xplore export: missing column %q", required)
		}
	}

	cell := func(row []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}

	var records []types.Record
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading IEEE row: %w", err)
		}
		records = append(records, types.Record{
			Title:    cell(row, "Document Title"),
			Authors:  cell(row, "Authors"),
			Year:     atoi(cell(row, "Publication Year")),
			Cites:    atoi(cell(row, "Article Citation Count")),
			Abstract: cell(row, "Abstract"),
			DOI:      cell(row, "DOI"),
			Journal:  cell(row, "Publication Title"),
		})
	}
	return records, nil
}

// IEEEFile converts the IEEE export at path and writes a dated
// standard-layout CSV to outDir, returning the written path.
func IEEEFile(path, outDir string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening IEEE export: %w", err)
	}
	defer f.Close()

	records, err := IEEE(f)
	if err != nil {
		return "", fmt.Errorf("converting %s: %w", path, err)
	}
	return dataset.Save(records, "ieee_"+stem(path), outDir)
}

// stem returns the base filename without its extension.
func stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// atoi coerces a source value to an integer, by way of float for
// float-formatted numeric columns. Unparsable values become zero.
func atoi(s string) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return int(f)
}
