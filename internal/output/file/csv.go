package file

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/boardlane/pimops/internal/output"
	"github.com/boardlane/pimops/pkg/models"
)

const CSVAdapterName = "csv"

// CSVConfig holds CSV file output configuration
type CSVConfig struct {
	OutputDir string // Directory for output files
}

// CSVAdapter implements the output.Adapter interface for CSV files
type CSVAdapter struct {
	*output.BaseAdapter
	config CSVConfig
}

// NewCSVAdapter creates a new CSV file adapter
func NewCSVAdapter(cfg CSVConfig) *CSVAdapter {
	if cfg.OutputDir == "" {
		cfg.OutputDir = "output"
	}

	return &CSVAdapter{
		BaseAdapter: output.NewBaseAdapter(
			CSVAdapterName,
			[]output.Format{output.FormatCSV},
		),
		config: cfg,
	}
}

// Connect creates the output directory
func (a *CSVAdapter) Connect(ctx context.Context) error {
	if err := os.MkdirAll(a.config.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	a.SetConnected(true)
	return nil
}

// Close cleans up resources
func (a *CSVAdapter) Close() error {
	a.SetConnected(false)
	return nil
}

// Test verifies the output directory is writable
func (a *CSVAdapter) Test(ctx context.Context) error {
	testFile := filepath.Join(a.config.OutputDir, ".test")
	f, err := os.Create(testFile)
	if err != nil {
		return fmt.Errorf("output directory not writable: %w", err)
	}
	f.Close()
	os.Remove(testFile)
	return nil
}

// ExportRecords writes the record table to a CSV file: one header row, then
// one row per record with cells aligned to the table's column order. The csv
// writer handles quoting and quote escaping.
func (a *CSVAdapter) ExportRecords(ctx context.Context, table *models.RecordTable, opts output.ExportOptions) (*output.ExportResult, error) {
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

	// Determine filename
	filename := opts.OutputPath
	if filename == "" {
		timestamp := time.Now().Format("2006-01-02_150405")
		filename = filepath.Join(a.config.OutputDir, fmt.Sprintf("products_%s.csv", timestamp))
	}

	f, err := os.Create(filename)
	if err != nil {
		result.Error = err
		return result, err
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	if err := writer.Write(table.Columns); err != nil {
		result.Error = err
		return result, err
	}

	for _, rec := range table.Records {
		if err := writer.Write(table.RowValues(rec)); err != nil {
			result.Error = err
			return result, err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
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
