package file

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/boardlane/pimops/internal/output"
	"github.com/boardlane/pimops/pkg/models"
)

const JSONAdapterName = "json"

// JSONConfig holds JSON file output configuration
type JSONConfig struct {
	OutputDir string // Directory for output files
	Pretty    bool   // Pretty-print JSON
}

// JSONAdapter implements the output.Adapter interface for JSON files
type JSONAdapter struct {
	*output.BaseAdapter
	config JSONConfig
}

// NewJSONAdapter creates a new JSON file adapter
func NewJSONAdapter(cfg JSONConfig) *JSONAdapter {
	if cfg.OutputDir == "" {
		cfg.OutputDir = "output"
	}

	return &JSONAdapter{
		BaseAdapter: output.NewBaseAdapter(
			JSONAdapterName,
			[]output.Format{output.FormatJSON, output.FormatJSONL},
		),
		config: cfg,
	}
}

// Connect creates the output directory
func (a *JSONAdapter) Connect(ctx context.Context) error {
	if err := os.MkdirAll(a.config.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	a.SetConnected(true)
	return nil
}

// Close cleans up resources
func (a *JSONAdapter) Close() error {
	a.SetConnected(false)
	return nil
}

// Test verifies the output directory is writable
func (a *JSONAdapter) Test(ctx context.Context) error {
	testFile := filepath.Join(a.config.OutputDir, ".test")
	f, err := os.Create(testFile)
	if err != nil {
		return fmt.Errorf("output directory not writable: %w", err)
	}
	f.Close()
	os.Remove(testFile)
	return nil
}

// ExportRecords exports the record table to a JSON or JSON Lines file
func (a *JSONAdapter) ExportRecords(ctx context.Context, table *models.RecordTable, opts output.ExportOptions) (*output.ExportResult, error) {
	result := &output.ExportResult{
		StartedAt: time.Now(),
	}

	if !a.IsConnected() {
		if err := a.Connect(ctx); err != nil {
			result.Error = err
			return result, err
		}
	}

	if opts.DryRun {
		result.RecordsExported = table.Len()
		result.Success = true
		result.Details = fmt.Sprintf("Dry run: would export %d records", table.Len())
		result.CompletedAt = time.Now()
		return result, nil
	}

	// Determine filename and format
	filename := opts.OutputPath
	format := opts.Format
	if format == "" {
		format = output.FormatJSON
	}

	if filename == "" {
		timestamp := time.Now().Format("2006-01-02_150405")
		ext := ".json"
		if format == output.FormatJSONL {
			ext = ".jsonl"
		}
		filename = filepath.Join(a.config.OutputDir, fmt.Sprintf("products_%s%s", timestamp, ext))
	}

	var err error
	switch format {
	case output.FormatJSONL:
		err = a.writeJSONL(filename, table)
	default:
		err = a.writeJSON(filename, table)
	}

	if err != nil {
		result.Error = err
		return result, err
	}

	result.Destination = filename
	result.RecordsExported = table.Len()
	result.Success = true
	result.Details = fmt.Sprintf("Exported %d records to %s", table.Len(), filename)
	result.CompletedAt = time.Now()

	return result, nil
}

// writeJSON writes the table in an export envelope
func (a *JSONAdapter) writeJSON(filename string, table *models.RecordTable) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	encoder := json.NewEncoder(f)
	if a.config.Pretty {
		encoder.SetIndent("", "  ")
	}

	export := struct {
		Version    string          `json:"version"`
		ExportedAt time.Time       `json:"exported_at"`
		Count      int             `json:"count"`
		Columns    []string        `json:"columns"`
		Records    []models.Record `json:"records"`
	}{
		Version:    "1.0",
		ExportedAt: time.Now(),
		Count:      table.Len(),
		Columns:    table.Columns,
		Records:    table.Records,
	}

	return encoder.Encode(export)
}

// writeJSONL writes records as JSON Lines (one object per line)
func (a *JSONAdapter) writeJSONL(filename string, table *models.RecordTable) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	writer := bufio.NewWriter(f)
	defer writer.Flush()

	for _, rec := range table.Records {
		data, err := json.Marshal(rec)
		if err != nil {
			return err
		}
		if _, err := writer.Write(data); err != nil {
			return err
		}
		if _, err := writer.WriteString("\n"); err != nil {
			return err
		}
	}

	return nil
}
