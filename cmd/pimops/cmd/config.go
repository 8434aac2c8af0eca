package cmd

import (
	"fmt"
	"strings"

	"github.com/boardlane/pimops/internal/config"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long:  `Initialize, view, and modify configuration settings.`,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize configuration file",
	Long:  `Create a new configuration file with default settings.`,
	RunE:  runConfigInit,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	Long:  `Display all configuration settings.`,
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Set a configuration value",
	Long:  `Set a specific configuration value.`,
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigSet,
}

var configGetCmd = &cobra.Command{
	Use:   "get [key]",
	Short: "Get a configuration value",
	Long:  `Get a specific configuration value.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigGet,
}

func init() {
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configGetCmd)
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	success := color.New(color.FgGreen)

	if err := config.Init(); err != nil {
		color.Red("  Error: %v", err)
		return err
	}

	path, _ := config.GetConfigPath()
	success.Printf("  ✓ Created config file: %s\n", path)

	return nil
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	header := color.New(color.FgCyan, color.Bold)

	cfg, err := config.Load()
	if err != nil {
		color.Red("  Error loading config: %v", err)
		return err
	}

	path, _ := config.GetConfigPath()

	header.Println("\n  CONFIGURATION")
	fmt.Println("  " + strings.Repeat("─", 50))
	fmt.Println()
	if config.Exists() {
		color.Yellow("  File: %s\n\n", path)
	} else {
		color.Yellow("  File: %s (not created, showing defaults)\n\n", path)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	fmt.Println(string(data))

	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	success := color.New(color.FgGreen)

	if err := config.Set(args[0], args[1]); err != nil {
		color.Red("  Error: %v", err)
		return err
	}

	success.Printf("  ✓ Set %s = %s\n", args[0], args[1])
	return nil
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	value, err := config.Get(args[0])
	if err != nil {
		color.Red("  Error: %v", err)
		return err
	}

	fmt.Println(value)
	return nil
}
