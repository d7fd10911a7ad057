// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Config holds the citetab settings, loaded from citetab.yaml or the
// CITETAB_* environment. Command-line flags override individual fields.
type Config struct {
	// CSVDir is the directory scanned for citation CSV exports
	// (default "csv_results").
	CSVDir string `mapstructure:"csv_dir" json:"csv_dir" yaml:"csv_dir"`

	// OutputDir is the directory for converted exports and reports
	// (default "csv_results/processed_results").
	OutputDir string `mapstructure:"output_dir" json:"output_dir" yaml:"output_dir"`

	// TopCited is the number of top-cited articles listed per file
	// (default 5).
	TopCited int `mapstructure:"top_cited" json:"top_cited" yaml:"top_cited"`

	// OverlapThreshold is the minimum title token overlap, between 0
	// and 1, for two articles to count as the same paper (default 0.8).
	OverlapThreshold float64 `mapstructure:"overlap_threshold" json:"overlap_threshold" yaml:"overlap_threshold"`
}
