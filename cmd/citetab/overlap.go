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

var overlapCmd = &cobra.Command{
	Use:   "overlap [dir]",
	Short: "Find articles that appear in more than one export",
	Long: `Overlap compares the exports in a directory pairwise and lists articles
present in more than one, matched by title token overlap. Lower the threshold
to catch looser title variants.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runOverlap,
}

func runOverlap(cmd *cobra.Command, args []string) error {
	dir := csvDirArg(args)
	threshold := floatFlag(cmd, "threshold", cfg.OverlapThreshold)

	datasets, err := dataset.LoadDir(dir, os.Stderr)
	if err != nil {
		return err
	}
	if len(datasets) < 2 {
		return fmt.Errorf("overlap needs at least two exports, found %d in %s", len(datasets), dir)
	}

	common := analyze.Overlap(datasets, threshold)

	jsonOutput, _ := cmd.Flags().GetBool("json")
	if jsonOutput {
		return report.JSON(common, os.Stdout)
	}
	report.RecordList(common, os.Stdout)
	return nil
}

func init() {
	overlapCmd.Flags().Float64("threshold", 0.8, "title token overlap threshold (0-1)")
	overlapCmd.Flags().Bool("json", false, "output matches as JSON")

	rootCmd.AddCommand(overlapCmd)
}
