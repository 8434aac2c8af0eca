package cmd

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "pimops",
	Short: "PIM Operations Terminal",
	Long: color.New(color.FgCyan, color.Bold).Sprint(`
        _
  _ __ (_)_ __ ___   ___  _ __  ___
 | '_ \| | '_ ' _ \ / _ \| '_ \/ __|
 | |_) | | | | | | | (_) | |_) \__ \
 | .__/|_|_| |_| |_|\___/| .__/|___/
 |_|                     |_|
`) + `
PIM Operations Terminal - Catalog import conversion toolkit

Convert PIM spreadsheet exports into the flat CSV import format of
your catalog: cleaned descriptions, folded facets and options,
rating bars, and unique SKUs.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(schemaCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(historyCmd)
}
