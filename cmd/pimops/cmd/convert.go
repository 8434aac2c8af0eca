package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/boardlane/pimops/internal/config"
	"github.com/boardlane/pimops/internal/output"
	"github.com/boardlane/pimops/internal/output/file"
	"github.com/boardlane/pimops/internal/parser"
	"github.com/boardlane/pimops/internal/pipeline"
	"github.com/boardlane/pimops/internal/state"
	"github.com/boardlane/pimops/pkg/models"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

var (
	convertOutputPath string
	convertDest       string
	convertFormat     string
	convertSchemaPath string
	convertFacetMode  string
	convertOptionMode string
	convertDryRun     bool
)

var convertCmd = &cobra.Command{
	Use:   "convert [source-file]",
	Short: "Convert a PIM export to the catalog import format",
	Long:  `Convert a PIM spreadsheet export (.xlsx, .xlsm, .csv) into the flat catalog import table.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runConvert,
}

func init() {
	convertCmd.Flags().StringVarP(&convertOutputPath, "output", "o", "", "Output file path")
	convertCmd.Flags().StringVar(&convertDest, "dest", "csv", "Export destination (csv, json)")
	convertCmd.Flags().StringVar(&convertFormat, "format", "csv", "Output format (csv, json, jsonl)")
	convertCmd.Flags().StringVar(&convertSchemaPath, "schema", "", "Output schema YAML file (default: built-in)")
	convertCmd.Flags().StringVar(&convertFacetMode, "facet-mode", "", "Facet folding mode (ordered, sorted)")
	convertCmd.Flags().StringVar(&convertOptionMode, "option-mode", "", "Option folding mode (lenient, strict)")
	convertCmd.Flags().BoolVar(&convertDryRun, "dry-run", false, "Convert without writing output")
}

func runConvert(cmd *cobra.Command, args []string) error {
	sourceFile := args[0]

	header := color.New(color.FgCyan, color.Bold)
	success := color.New(color.FgGreen)
	info := color.New(color.FgYellow)

	header.Println("\n  CONVERTING PIM EXPORT")
	fmt.Println("  " + strings.Repeat("─", 50))
	fmt.Println()

	if _, err := os.Stat(sourceFile); os.IsNotExist(err) {
		color.Red("  Error: File not found: %s", sourceFile)
		return fmt.Errorf("file not found: %s", sourceFile)
	}

	info.Printf("  Source: %s\n", sourceFile)
	if convertDryRun {
		info.Println("  Mode: DRY RUN")
	}
	fmt.Println()

	// Load config
	cfg, err := config.Load()
	if err != nil {
		color.Yellow("  Warning: Could not load config, using defaults")
		cfg = config.DefaultConfig()
	}

	// Resolve conversion options
	opts, err := conversionOptions(cfg)
	if err != nil {
		color.Red("  Error: %v", err)
		return err
	}

	// Resolve output schema
	schema, err := resolveSchema(cfg)
	if err != nil {
		color.Red("  Error loading schema: %v", err)
		return err
	}

	// Load the source table
	table, err := parser.LoadTable(sourceFile)
	if err != nil {
		color.Red("  Error loading source: %v", err)
		return err
	}

	// Show progress over the source rows
	bar := progressbar.NewOptions(len(table.Rows),
		progressbar.OptionSetDescription("  Mapping rows"),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        color.GreenString("█"),
			SaucerHead:    color.GreenString("█"),
			SaucerPadding: "░",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionShowCount(),
	)

	result, err := pipeline.Convert(table, schema, opts)
	if err != nil {
		fmt.Println()
		color.Red("  Error converting: %v", err)
		return err
	}

	for range table.Rows {
		bar.Add(1)
	}
	fmt.Println()
	fmt.Println()

	// Show diagnostics
	if len(result.Diagnostics) > 0 {
		renderDiagnostics(result.Diagnostics)
	}

	// Summary
	success.Printf("  ✓ Read %d source rows in %d groups\n", result.SourceRows, result.Groups)
	success.Printf("  ✓ Emitted %d products, %d variants\n", result.Products, result.Variants)
	if result.SkippedGroups > 0 {
		color.Yellow("  ⚠ Skipped %d groups without a primary row\n", result.SkippedGroups)
	}
	if result.Warnings > 0 {
		color.Yellow("  ⚠ %d warnings\n", result.Warnings)
	}
	fmt.Println()

	// Export
	adapter, err := exportAdapter(cfg)
	if err != nil {
		color.Red("  Error: %v", err)
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if err := adapter.Connect(ctx); err != nil {
		color.Red("  Error connecting to destination: %v", err)
		return err
	}
	defer adapter.Close()

	exportResult, err := adapter.ExportRecords(ctx, result.Table, output.ExportOptions{
		Format:     output.Format(convertFormat),
		OutputPath: convertOutputPath,
		DryRun:     convertDryRun,
	})
	if err != nil {
		color.Red("  Error during export: %v", err)
		return err
	}

	if exportResult.Success {
		success.Printf("  ✓ %s\n", exportResult.Details)
	}

	// Record the run
	if !convertDryRun {
		store := state.NewStore("")
		if err := store.Load(); err == nil {
			store.AddRun(state.RunRecord{
				Source:      sourceFile,
				Destination: exportResult.Destination,
				Rows:        result.SourceRows,
				Products:    result.Products,
				Variants:    result.Variants,
				Warnings:    result.Warnings,
				Details:     exportResult.Details,
			})
			if err := store.Save(); err != nil {
				color.Yellow("  Warning: Could not save run history: %v", err)
			}
		}
	}
	fmt.Println()

	return nil
}

// conversionOptions merges config defaults with command-line overrides.
func conversionOptions(cfg *config.Config) (pipeline.Options, error) {
	opts := pipeline.DefaultOptions()
	opts.DefaultTaxCategory = cfg.Conversion.DefaultTaxCategory
	opts.DefaultStockOnHand = cfg.Conversion.DefaultStockOnHand

	facetMode := cfg.Conversion.FacetMode
	if convertFacetMode != "" {
		facetMode = convertFacetMode
	}
	switch facetMode {
	case "", "ordered":
		opts.FacetMode = pipeline.FacetOrdered
	case "sorted":
		opts.FacetMode = pipeline.FacetSorted
	default:
		return opts, fmt.Errorf("unknown facet mode: %s", facetMode)
	}

	optionMode := cfg.Conversion.OptionMode
	if convertOptionMode != "" {
		optionMode = convertOptionMode
	}
	switch optionMode {
	case "", "lenient":
		opts.OptionMode = pipeline.OptionLenient
	case "strict":
		opts.OptionMode = pipeline.OptionStrict
	default:
		return opts, fmt.Errorf("unknown option mode: %s", optionMode)
	}

	return opts, nil
}

// resolveSchema picks the output schema: flag, then config, then built-in.
func resolveSchema(cfg *config.Config) (pipeline.Schema, error) {
	path := convertSchemaPath
	if path == "" {
		path = cfg.Conversion.SchemaPath
	}
	if path == "" {
		return pipeline.DefaultSchema(), nil
	}
	return pipeline.LoadSchema(path)
}

// exportAdapter picks the output adapter for the destination flag.
func exportAdapter(cfg *config.Config) (output.Adapter, error) {
	registry := output.NewRegistry()
	if err := registry.Register(file.NewCSVAdapter(file.CSVConfig{
		OutputDir: cfg.Outputs.File.OutputDir,
	})); err != nil {
		return nil, err
	}
	if err := registry.Register(file.NewJSONAdapter(file.JSONConfig{
		OutputDir: cfg.Outputs.File.OutputDir,
		Pretty:    cfg.Outputs.File.Pretty,
	})); err != nil {
		return nil, err
	}

	adapter, err := registry.Get(convertDest)
	if err != nil {
		return nil, fmt.Errorf("unsupported destination: %s", convertDest)
	}
	return adapter, nil
}

func renderDiagnostics(diags []models.Diagnostic) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Severity", "Message"})
	table.SetBorder(false)
	table.SetHeaderColor(
		tablewriter.Colors{tablewriter.Bold, tablewriter.FgCyanColor},
		tablewriter.Colors{tablewriter.Bold, tablewriter.FgCyanColor},
	)

	for _, d := range diags {
		severity := string(d.Severity)
		if d.Severity == models.SeverityWarning {
			severity = color.YellowString(severity)
		}
		table.Append([]string{severity, d.Message})
	}

	table.Render()
	fmt.Println()
}
