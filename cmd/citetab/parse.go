// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mlukac/citetab/internal/convention"
	"github.com/mlukac/citetab/internal/report"
)

var parseCmd = &cobra.Command{
	Use:   "parse <filename>",
	Short: "Show how an export filename parses under the convention",
	Long: `Parse extracts the search engine and keyword terms encoded in an export
filename and prints them. Useful for checking a filename before analysis.`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func runParse(cmd *cobra.Command, args []string) error {
	key, err := convention.Parse(args[0])
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	if jsonOutput {
		return report.JSON(key, os.Stdout)
	}

	fmt.Printf("Engine:   %s\n", key.Engine)
	for i, term := range key.Terms {
		if term.Op == convention.OpNone {
			fmt.Printf("Term %d:   %s\n", i+1, term.Keyword)
			continue
		}
		fmt.Printf("Term %d:   %s %s\n", i+1, term.Op, term.Keyword)
	}
	if excluded := key.Excluded(); len(excluded) > 0 {
		fmt.Printf("Excluded: %s\n", strings.Join(excluded, ", "))
	}
	return nil
}

func init() {
	parseCmd.Flags().Bool("json", false, "output the parsed key as JSON")

	rootCmd.AddCommand(parseCmd)
}
