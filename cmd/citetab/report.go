// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/mlukac/citetab/internal/analyze"
	"github.com/mlukac/citetab/internal/dataset"
	"github.com/mlukac/citetab/internal/report"
)

var reportCmd = &cobra.Command{
	Use:   "report [dir]",
	Short: "Write the full analysis to a dated YAML report",
	Long: `Report runs the per-file summaries and the engine and keyword tallies
over a directory of exports and writes everything to a dated YAML file in the
output directory. Use --show to print a previously written report instead.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runReport,
}

func runReport(cmd *cobra.Command, args []string) error {
	if showPath, _ := cmd.Flags().GetString("show"); showPath != "" {
		return showReport(showPath)
	}

	dir := csvDirArg(args)
	topN := intFlag(cmd, "top", cfg.TopCited)
	outDir := stringFlag(cmd, "out", cfg.OutputDir)

	datasets, err := dataset.LoadDir(dir, os.Stderr)
	if err != nil {
		return err
	}
	if len(datasets) == 0 {
		return fmt.Errorf("no citation exports found in %s", dir)
	}

	rep := report.Report{
		GeneratedAt: time.Now(),
		CSVDir:      dir,
	}
	inputs := make([]analyze.Input, len(datasets))
	for i, ds := range datasets {
		rep.Files = append(rep.Files, analyze.Stats(ds, topN))
		inputs[i] = analyze.Input{Key: ds.Key, Records: ds.Records}
	}

	if rep.ByEngine, err = analyze.Aggregate(inputs, analyze.ByEngine, analyze.Citations); err != nil {
		return err
	}
	if rep.ByKeyword, err = analyze.Aggregate(inputs, analyze.ByFirstKeyword, analyze.Citations); err != nil {
		return err
	}
	rep.ByEngine.SortBySum()
	rep.ByKeyword.SortBySum()

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	path := filepath.Join(outDir, time.Now().Format("20060102")+"_report.yaml")
	if err := report.Write(path, rep); err != nil {
		return err
	}
	fmt.Println("Report saved to", path)
	return nil
}

func showReport(path string) error {
	rep, err := report.Read(path)
	if err != nil {
		return err
	}

	fmt.Printf("Report generated %s from %s\n\n", rep.GeneratedAt.Format("2006-01-02 15:04"), rep.CSVDir)
	report.StatsTable(rep.Files, os.Stdout)
	fmt.Println("\nBy engine:")
	report.BucketTable(rep.ByEngine, "Cites", os.Stdout)
	fmt.Println("\nBy keyword:")
	report.BucketTable(rep.ByKeyword, "Cites", os.Stdout)
	return nil
}

func init() {
	reportCmd.Flags().Int("top", 5, "number of top-cited articles per file")
	reportCmd.Flags().String("out", "", "output directory (default: configured output_dir)")
	reportCmd.Flags().String("show", "", "print a previously written report file")

	rootCmd.AddCommand(reportCmd)
}
