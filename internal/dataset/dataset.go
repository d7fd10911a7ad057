// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package dataset loads citation CSV exports into memory and writes
// standard-layout CSV files back out.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/mlukac/citetab/internal/convention"
	"github.com/mlukac/citetab/pkg/types"
)

// StandardHeader lists the standard-layout columns in output order.
var StandardHeader = []string{"Title", "Authors", "Year", "Cites", "Abstract", "DOI", "Journal"}

// Dataset is the contents of one export file together with the key
// parsed from its name. Records are immutable once loaded.
type Dataset struct {
	Key      convention.Key
	Filename string
	Records  []types.Record
}

// Load reads one citation CSV export. The filename must follow the
// export naming convention; the first row must be a header.
func Load(path string) (Dataset, error) {
	key, err := convention.Parse(filepath.Base(path))
	if err != nil {
		return Dataset{}, err
	}

	f, err := os.Open(path)
	if err != nil {
		return Dataset{}, fmt.Errorf("opening export: %w", err)
	}
	defer f.Close()

	records, err := ReadRecords(f)
	if err != nil {
		return Dataset{}, fmt.Errorf("reading %s: %w", path, err)
	}

	return Dataset{
		Key:      key,
		Filename: filepath.Base(path),
		Records:  records,
	}, nil
}

// LoadDir loads every .csv file in dir. Files whose names do not follow
// the export convention are reported to w and skipped; read errors on
// well-named files abort the load.
func LoadDir(dir string, w io.Writer) ([]Dataset, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading export directory %s: %w", dir, err)
	}

	var datasets []Dataset
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".csv") {
			continue
		}
		ds, err := Load(filepath.Join(dir, entry.Name()))
		if err != nil {
			var fe *convention.FormatError
			if errors.As(err, &fe) {
				fmt.Fprintf(w, "skipped %s: %v\n", entry.Name(), err)
				continue
			}
			return nil, err
		}
		datasets = append(datasets, ds)
	}
	return datasets, nil
}

// ReadRecords parses standard-layout CSV from r. The first row is the
// header; recognized columns fill the typed Record fields and the rest
// land in Extra. Non-numeric Year and Cites values become zero, the
// way the source tools leave blanks for unknown values.
func ReadRecords(r io.Reader) ([]types.Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}

	var records []types.Record
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading row: %w", err)
		}
		records = append(records, recordFromRow(header, row))
	}
	return records, nil
}

func recordFromRow(header, row []string) types.Record {
	var rec types.Record
	for i, col := range header {
		if i >= len(row) {
			break
		}
		value := row[i]
		switch col {
		case "Title":
			rec.Title = value
		case "Authors":
			rec.Authors = value
		case "Year":
			rec.Year = atoi(value)
		case "Cites":
			rec.Cites = atoi(value)
		case "Abstract":
			rec.Abstract = value
		case "DOI":
			rec.DOI = value
		case "Journal":
			rec.Journal = value
		default:
			if rec.Extra == nil {
				rec.Extra = make(map[string]string)
			}
			rec.Extra[col] = value
		}
	}
	return rec
}

// atoi coerces a source value to an integer. Some tools export numeric
// columns as floats ("2021.0"), so integers are parsed by way of float.
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

// Save writes records in the standard layout to outDir under the name
// YYYYMMDD_{name}.csv, creating outDir if needed, and returns the path
// of the written file.
func Save(records []types.Record, name, outDir string) (string, error) {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}

	path := filepath.Join(outDir, time.Now().Format("20060102")+"_"+name+".csv")
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	if err := WriteRecords(f, records); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return path, nil
}

// WriteRecords writes records as standard-layout CSV to w, header first.
func WriteRecords(w io.Writer, records []types.Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(StandardHeader); err != nil {
		return err
	}
	for _, rec := range records {
		row := []string{
			rec.Title,
			rec.Authors,
			strconv.Itoa(rec.Year),
			strconv.Itoa(rec.Cites),
			rec.Abstract,
			rec.DOI,
			rec.Journal,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
