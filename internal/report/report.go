// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report persists analysis results as YAML documents and
// renders them as tables or JSON for the terminal.
package report

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/mlukac/citetab/internal/analyze"
)

// Report is the on-disk representation of a full analysis run. The
// researcher can write a run to a file and reload it later without
// re-reading the exports.
type Report struct {
	GeneratedAt time.Time `yaml:"generated_at"`

	// CSVDir is the export directory the report was computed from.
	CSVDir string `yaml:"csv_dir"`

	// Files holds the per-file summaries, in load order.
	Files []analyze.FileStats `yaml:"files"`

	// ByEngine tallies citations per search engine.
	ByEngine analyze.Result `yaml:"by_engine"`

	// ByKeyword tallies citations per first query keyword.
	ByKeyword analyze.Result `yaml:"by_keyword"`
}

// Write saves the report to a YAML file at path.
func Write(path string, rep Report) error {
	data, err := yaml.Marshal(&rep)
	if err != nil {
		return fmt.Errorf("marshaling report: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// Read loads a previously written report from disk.
func Read(path string) (*Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading report: %w", err)
	}
	var rep Report
	if err := yaml.Unmarshal(data, &rep); err != nil {
		return nil, fmt.Errorf("parsing report: %w", err)
	}
	return &rep, nil
}
