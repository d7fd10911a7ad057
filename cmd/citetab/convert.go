// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mlukac/citetab/internal/convert"
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert foreign export formats into the standard layout",
	Long: `Convert maps IEEE Xplore CSV exports and BibTeX bibliographies into the
standard column layout and writes the result as a dated CSV in the output
directory, ready for analysis alongside Publish or Perish exports.`,
}

var convertIEEECmd = &cobra.Command{
	Use:   "ieee <file>",
	Short: "Convert an IEEE Xplore CSV export",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		outDir := stringFlag(cmd, "out", cfg.OutputDir)
		path, err := convert.IEEEFile(args[0], outDir)
		if err != nil {
			return err
		}
		fmt.Println("Converted export saved to", path)
		return nil
	},
}

var convertBibTeXCmd = &cobra.Command{
	Use:   "bibtex <file>",
	Short: "Convert a BibTeX bibliography",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		outDir := stringFlag(cmd, "out", cfg.OutputDir)
		path, err := convert.BibTeXFile(args[0], outDir)
		if err != nil {
			return err
		}
		fmt.Println("Converted bibliography saved to", path)
		return nil
	},
}

func init() {
	convertIEEECmd.Flags().String("out", "", "output directory (default: configured output_dir)")
	convertBibTeXCmd.Flags().String("out", "", "output directory (default: configured output_dir)")

	convertCmd.AddCommand(convertIEEECmd)
	convertCmd.AddCommand(convertBibTeXCmd)
	rootCmd.AddCommand(convertCmd)
}
