package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/boardlane/pimops/internal/state"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show past conversion runs",
	Long:  `Display the recorded history of conversion runs.`,
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 10, "Number of runs to show")
}

func runHistory(cmd *cobra.Command, args []string) error {
	header := color.New(color.FgCyan, color.Bold)

	header.Println("\n  CONVERSION HISTORY")
	fmt.Println("  " + strings.Repeat("─", 50))
	fmt.Println()

	store := state.NewStore("")
	if err := store.Load(); err != nil {
		color.Red("  Error loading history: %v", err)
		return err
	}

	runs := store.RecentRuns(historyLimit)
	if len(runs) == 0 {
		color.Yellow("  No conversion runs recorded yet. Run 'pimops convert' first.")
		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Time", "Source", "Products", "Variants", "Warnings"})
	table.SetBorder(false)
	table.SetHeaderColor(
		tablewriter.Colors{tablewriter.Bold, tablewriter.FgCyanColor},
		tablewriter.Colors{tablewriter.Bold, tablewriter.FgCyanColor},
		tablewriter.Colors{tablewriter.Bold, tablewriter.FgCyanColor},
		tablewriter.Colors{tablewriter.Bold, tablewriter.FgCyanColor},
		tablewriter.Colors{tablewriter.Bold, tablewriter.FgCyanColor},
	)

	for _, run := range runs {
		source := run.Source
		if len(source) > 35 {
			source = "..." + source[len(source)-32:]
		}
		warnings := strconv.Itoa(run.Warnings)
		if run.Warnings > 0 {
			warnings = color.YellowString(warnings)
		}
		table.Append([]string{
			run.Timestamp.Format("2006-01-02 15:04"),
			source,
			strconv.Itoa(run.Products),
			strconv.Itoa(run.Variants),
			warnings,
		})
	}

	table.Render()
	fmt.Println()

	color.Yellow("  Showing %d of %d recorded runs\n", len(runs), store.Count())

	return nil
}
