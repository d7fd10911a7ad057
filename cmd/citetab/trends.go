// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/mlukac/citetab/internal/analyze"
	"github.com/mlukac/citetab/internal/dataset"
	"github.com/mlukac/citetab/internal/report"
)

var trendsCmd = &cobra.Command{
	Use:   "trends <file>",
	Short: "Show citation totals per publication year for one export",
	Args:  cobra.ExactArgs(1),
	RunE:  runTrends,
}

func runTrends(cmd *cobra.Command, args []string) error {
	ds, err := dataset.Load(args[0])
	if err != nil {
		return err
	}

	trends := analyze.Trends(ds)

	jsonOutput, _ := cmd.Flags().GetBool("json")
	if jsonOutput {
		return report.JSON(trends, os.Stdout)
	}
	report.TrendsTable(trends, os.Stdout)
	return nil
}

func init() {
	trendsCmd.Flags().Bool("json", false, "output trends as JSON")

	rootCmd.AddCommand(trendsCmd)
}
