// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mlukac/citetab/internal/analyze"
	"github.com/mlukac/citetab/internal/dataset"
	"github.com/mlukac/citetab/internal/report"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [dir]",
	Short: "Summarize every citation export in a directory",
	Long: `Analyze loads every well-named CSV export in the directory and prints a
per-file summary: paper count, publication year range, total and mean citation
counts, and the most cited articles. Files whose names do not follow the export
convention are skipped with a warning.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAnalyze,
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	dir := csvDirArg(args)
	topN := intFlag(cmd, "top", cfg.TopCited)

	datasets, err := dataset.LoadDir(dir, os.Stderr)
	if err != nil {
		return err
	}
	if len(datasets) == 0 {
		return fmt.Errorf("no citation exports found in %s", dir)
	}

	stats := make([]analyze.FileStats, len(datasets))
	for i, ds := range datasets {
		stats[i] = analyze.Stats(ds, topN)
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	if jsonOutput {
		return report.JSON(stats, os.Stdout)
	}

	report.StatsTable(stats, os.Stdout)
	for _, s := range stats {
		report.TopCitedList(s, os.Stdout)
	}
	return nil
}

func init() {
	analyzeCmd.Flags().Int("top", 5, "number of top-cited articles to list per file")
	analyzeCmd.Flags().Bool("json", false, "output summaries as JSON")

	rootCmd.AddCommand(analyzeCmd)
}
