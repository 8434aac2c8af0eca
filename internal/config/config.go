package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

const (
	DefaultConfigDir  = ".pimops"
	DefaultConfigFile = "config.yaml"
)

// Config represents the application configuration
type Config struct {
	Conversion ConversionConfig `yaml:"conversion"`
	Outputs    OutputsConfig    `yaml:"outputs"`
}

// ConversionConfig holds pipeline settings
type ConversionConfig struct {
	SchemaPath         string `yaml:"schema_path,omitempty"` // Custom output schema, empty = built-in
	FacetMode          string `yaml:"facet_mode"`            // ordered or sorted
	OptionMode         string `yaml:"option_mode"`           // lenient or strict
	DefaultTaxCategory string `yaml:"default_tax_category"`
	DefaultStockOnHand int    `yaml:"default_stock_on_hand"`
}

// OutputsConfig contains configuration for output adapters
type OutputsConfig struct {
	File FileOutputConfig `yaml:"file"`
}

// FileOutputConfig holds file output settings
type FileOutputConfig struct {
	OutputDir string `yaml:"output_dir"`
	Pretty    bool   `yaml:"pretty"`
}

// DefaultConfig returns a config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Conversion: ConversionConfig{
			FacetMode:          "ordered",
			OptionMode:         "lenient",
			DefaultTaxCategory: "standard",
			DefaultStockOnHand: 100,
		},
		Outputs: OutputsConfig{
			File: FileOutputConfig{
				OutputDir: "./output",
				Pretty:    true,
			},
		},
	}
}

// GetConfigPath returns the path to the config file
func GetConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	return filepath.Join(home, DefaultConfigDir, DefaultConfigFile), nil
}

// Load reads the configuration from the config file
func Load() (*Config, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return nil, err
	}

	return LoadFrom(configPath)
}

// LoadFrom reads the configuration from a specific path
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Return default config if file doesn't exist
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(&config)

	return &config, nil
}

// Save writes the configuration to the config file
func Save(config *Config) error {
	configPath, err := GetConfigPath()
	if err != nil {
		return err
	}

	return SaveTo(config, configPath)
}

// SaveTo writes the configuration to a specific path
func SaveTo(config *Config, path string) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Init creates a new config file with defaults
func Init() error {
	configPath, err := GetConfigPath()
	if err != nil {
		return err
	}

	// Check if file already exists
	if _, err := os.Stat(configPath); err == nil {
		return fmt.Errorf("config file already exists: %s", configPath)
	}

	return Save(DefaultConfig())
}

// Exists checks if the config file exists
func Exists() bool {
	configPath, err := GetConfigPath()
	if err != nil {
		return false
	}

	_, err = os.Stat(configPath)
	return err == nil
}

// applyDefaults fills in missing values with defaults
func applyDefaults(config *Config) {
	defaults := DefaultConfig()

	if config.Conversion.FacetMode == "" {
		config.Conversion.FacetMode = defaults.Conversion.FacetMode
	}
	if config.Conversion.OptionMode == "" {
		config.Conversion.OptionMode = defaults.Conversion.OptionMode
	}
	if config.Conversion.DefaultTaxCategory == "" {
		config.Conversion.DefaultTaxCategory = defaults.Conversion.DefaultTaxCategory
	}
	if config.Conversion.DefaultStockOnHand <= 0 {
		config.Conversion.DefaultStockOnHand = defaults.Conversion.DefaultStockOnHand
	}
	if config.Outputs.File.OutputDir == "" {
		config.Outputs.File.OutputDir = defaults.Outputs.File.OutputDir
	}
}

// Set updates a specific config value
func Set(key, value string) error {
	config, err := Load()
	if err != nil {
		return err
	}

	switch key {
	case "conversion.schema_path":
		config.Conversion.SchemaPath = value
	case "conversion.facet_mode":
		config.Conversion.FacetMode = value
	case "conversion.option_mode":
		config.Conversion.OptionMode = value
	case "conversion.default_tax_category":
		config.Conversion.DefaultTaxCategory = value
	case "conversion.default_stock_on_hand":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid stock value: %s", value)
		}
		config.Conversion.DefaultStockOnHand = n
	case "outputs.file.output_dir":
		config.Outputs.File.OutputDir = value
	case "outputs.file.pretty":
		config.Outputs.File.Pretty = value == "true"
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}

	return Save(config)
}

// Get retrieves a specific config value
func Get(key string) (string, error) {
	config, err := Load()
	if err != nil {
		return "", err
	}

	switch key {
	case "conversion.schema_path":
		return config.Conversion.SchemaPath, nil
	case "conversion.facet_mode":
		return config.Conversion.FacetMode, nil
	case "conversion.option_mode":
		return config.Conversion.OptionMode, nil
	case "conversion.default_tax_category":
		return config.Conversion.DefaultTaxCategory, nil
	case "conversion.default_stock_on_hand":
		return strconv.Itoa(config.Conversion.DefaultStockOnHand), nil
	case "outputs.file.output_dir":
		return config.Outputs.File.OutputDir, nil
	case "outputs.file.pretty":
		return strconv.FormatBool(config.Outputs.File.Pretty), nil
	default:
		return "", fmt.Errorf("unknown config key: %s", key)
	}
}
