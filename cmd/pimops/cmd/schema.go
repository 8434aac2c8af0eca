package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/boardlane/pimops/internal/config"
	"github.com/boardlane/pimops/internal/pipeline"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Manage the output schema",
	Long:  `Inspect and scaffold the output schema that defines description tabs and rating bars.`,
}

var schemaShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the active output schema",
	Long:  `Display the output schema currently in effect (configured file or built-in default).`,
	RunE:  runSchemaShow,
}

var schemaInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write the default schema to a file",
	Long:  `Write the built-in output schema to a YAML file as a starting point for customization.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runSchemaInit,
}

func init() {
	schemaCmd.AddCommand(schemaShowCmd)
	schemaCmd.AddCommand(schemaInitCmd)
}

func runSchemaShow(cmd *cobra.Command, args []string) error {
	header := color.New(color.FgCyan, color.Bold)

	cfg, err := config.Load()
	if err != nil {
		cfg = config.DefaultConfig()
	}

	schema := pipeline.DefaultSchema()
	source := "built-in"
	if cfg.Conversion.SchemaPath != "" {
		schema, err = pipeline.LoadSchema(cfg.Conversion.SchemaPath)
		if err != nil {
			color.Red("  Error loading schema: %v", err)
			return err
		}
		source = cfg.Conversion.SchemaPath
	}

	header.Println("\n  OUTPUT SCHEMA")
	fmt.Println("  " + strings.Repeat("─", 50))
	fmt.Println()
	color.Yellow("  Source: %s\n", source)
	color.Yellow("  Output columns: %d\n\n", len(schema.Columns()))

	data, err := schema.Marshal()
	if err != nil {
		return err
	}
	fmt.Println(string(data))

	return nil
}

func runSchemaInit(cmd *cobra.Command, args []string) error {
	success := color.New(color.FgGreen)

	path := "schema.yaml"
	if len(args) > 0 {
		path = args[0]
	}

	if _, err := os.Stat(path); err == nil {
		color.Red("  Error: File already exists: %s", path)
		return fmt.Errorf("file already exists: %s", path)
	}

	data, err := pipeline.DefaultSchema().Marshal()
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		color.Red("  Error writing schema: %v", err)
		return err
	}

	success.Printf("  ✓ Wrote default schema to %s\n", path)
	color.Yellow("  → Point the converter at it with 'pimops config set conversion.schema_path %s'\n", path)

	return nil
}
