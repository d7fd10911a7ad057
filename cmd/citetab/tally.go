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

var tallyCmd = &cobra.Command{
	Use:   "tally [dir]",
	Short: "Aggregate citation counts across exports",
	Long: `Tally groups every article across the directory's exports by search
engine, first keyword, or full query, and accumulates the record count and the
chosen metric per group. Exports whose keys group equally merge into one row.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTally,
}

func runTally(cmd *cobra.Command, args []string) error {
	groupBy, _ := cmd.Flags().GetString("group-by")
	groupFn, err := groupFunc(groupBy)
	if err != nil {
		return err
	}

	metricName, _ := cmd.Flags().GetString("metric")
	metricFn, err := metricFunc(metricName)
	if err != nil {
		return err
	}

	dir := csvDirArg(args)
	datasets, err := dataset.LoadDir(dir, os.Stderr)
	if err != nil {
		return err
	}

	inputs := make([]analyze.Input, len(datasets))
	for i, ds := range datasets {
		inputs[i] = analyze.Input{Key: ds.Key, Records: ds.Records}
	}

	res, err := analyze.Aggregate(inputs, groupFn, metricFn)
	if err != nil {
		return err
	}

	if sorted, _ := cmd.Flags().GetBool("sort"); sorted {
		res.SortBySum()
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	if jsonOutput {
		return report.JSON(res, os.Stdout)
	}
	report.BucketTable(res, metricLabel(metricName), os.Stdout)
	return nil
}

func groupFunc(name string) (analyze.GroupFunc, error) {
	switch name {
	case "engine":
		return analyze.ByEngine, nil
	case "keyword":
		return analyze.ByFirstKeyword, nil
	case "query":
		return analyze.ByQuery, nil
	}
	return nil, fmt.Errorf("unknown group-by %q: use engine, keyword, or query", name)
}

func metricFunc(name string) (analyze.MetricFunc, error) {
	switch name {
	case "cites":
		return analyze.Citations, nil
	case "papers":
		return analyze.PerPaper, nil
	}
	return nil, fmt.Errorf("unknown metric %q: use cites or papers", name)
}

func metricLabel(name string) string {
	if name == "papers" {
		return "Papers"
	}
	return "Cites"
}

func init() {
	tallyCmd.Flags().String("group-by", "engine", "grouping key: engine, keyword, or query")
	tallyCmd.Flags().String("metric", "cites", "metric to sum: cites or papers")
	tallyCmd.Flags().Bool("sort", false, "sort groups by metric sum descending")
	tallyCmd.Flags().Bool("json", false, "output groups as JSON")

	rootCmd.AddCommand(tallyCmd)
}
