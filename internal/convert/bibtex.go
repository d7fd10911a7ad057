// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"fmt"
	"io"
	"os"

	"github.com/nickng/bibtex"

	"github.com/mlukac/citetab/internal/dataset"
	"github.com/mlukac/citetab/pkg/types"
)

// BibTeX reads a BibTeX bibliography from r and returns records in the
// standard layout. BibTeX carries no citation counts, so Cites is zero
// for every record.
func BibTeX(r io.Reader) ([]types.Record, error) {
	bib, err := bibtex.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing BibTeX: %w", err)
	}

	records := make([]types.Record, 0, len(bib.Entries))
	for _, entry := range bib.Entries {
		records = append(records, types.Record{
			Title:    field(entry, "title"),
			Authors:  field(entry, "author"),
			Year:     atoi(field(entry, "year")),
			Abstract: field(entry, "abstract"),
			DOI:      field(entry, "doi"),
			Journal:  field(entry, "journal"),
		})
	}
	return records, nil
}

// BibTeXFile converts the bibliography at path and writes a dated
// standard-layout CSV to outDir, returning the written path.
func BibTeXFile(path, outDir string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening BibTeX file: %w", err)
	}
	defer f.Close()

	records, err := BibTeX(f)
	if err != nil {
		return "", fmt.Errorf("converting %s: %w", path, err)
	}
	return dataset.Save(records, "bibtex_"+stem(path), outDir)
}

func field(entry *bibtex.BibEntry, name string) string {
	if v, ok := entry.Fields[name]; ok {
		return v.String()
	}
	return ""
}
