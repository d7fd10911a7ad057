// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the citetab CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mlukac/citetab/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// cfg holds the resolved configuration, populated before any command runs.
var cfg types.Config

// rootCmd is the base command for the citetab CLI.
var rootCmd = &cobra.Command{
	Use:   "citetab",
	Short: "Tabulate and compare citation CSV exports",
	Long: `citetab analyzes citation CSV exports from Harzing's Publish or Perish
and compatible tools. Export files are named by the convention
{Engine}_{keyword}({AND|OR|ANDNOT}_{keyword})*.csv; citetab parses that
convention, loads the files, and tabulates citation counts across keyword
queries and search engines.

Each analysis is a subcommand: analyze, tally, trends, overlap, convert, and
report. All work is in-memory; the only outputs are the files you ask for.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./citetab.yaml or ~/.config/citetab/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("citetab")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "citetab"))
		}
	}

	viper.SetEnvPrefix("CITETAB")
	viper.AutomaticEnv()

	viper.SetDefault("csv_dir", "csv_results")
	viper.SetDefault("output_dir", filepath.Join("csv_results", "processed_results"))
	viper.SetDefault("top_cited", 5)
	viper.SetDefault("overlap_threshold", 0.8)

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}

	if err := viper.Unmarshal(&cfg); err != nil {
		fmt.Fprintln(os.Stderr, "warning: invalid configuration:", err)
	}
}

// csvDirArg resolves the export directory from the first positional
// argument, falling back to the configured csv_dir.
func csvDirArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return cfg.CSVDir
}

// intFlag returns the flag value when set on the command line,
// fallback otherwise.
func intFlag(cmd *cobra.Command, name string, fallback int) int {
	if cmd.Flags().Changed(name) {
		v, _ := cmd.Flags().GetInt(name)
		return v
	}
	return fallback
}

func floatFlag(cmd *cobra.Command, name string, fallback float64) float64 {
	if cmd.Flags().Changed(name) {
		v, _ := cmd.Flags().GetFloat64(name)
		return v
	}
	return fallback
}

func stringFlag(cmd *cobra.Command, name, fallback string) string {
	if cmd.Flags().Changed(name) {
		v, _ := cmd.Flags().GetString(name)
		return v
	}
	return fallback
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
