package parser

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/boardlane/pimops/internal/pipeline"
)

// ParseCSV loads a CSV export into a pipeline table.
func ParseCSV(filepath string) (*pipeline.Table, error) {
	file, err := os.Open(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return ReadCSV(file)
}

// ReadCSV parses CSV data from a reader.
func ReadCSV(r io.Reader) (*pipeline.Table, error) {
	reader := csv.NewReader(r)
	reader.LazyQuotes = true // Handle sometimes malformed PIM exports
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv: %w", err)
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("source table is empty")
	}

	// Clean BOM from the first header cell if present
	header := records[0]
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\uFEFF")
	}

	return pipeline.NewTable(header, records[1:]), nil
}
