package parser

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/boardlane/pimops/internal/pipeline"
	"github.com/xuri/excelize/v2"
)

// ParseExcel loads the first worksheet of an Excel workbook into a pipeline
// table.
func ParseExcel(path string) (*pipeline.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %q is empty", sheets[0])
	}

	return pipeline.NewTable(rows[0], rows[1:]), nil
}

// LoadTable loads a source file into a pipeline table, dispatching on the
// file extension.
func LoadTable(path string) (*pipeline.Table, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return ParseExcel(path)
	case ".csv":
		return ParseCSV(path)
	default:
		return nil, fmt.Errorf("unsupported source file type: %s", filepath.Ext(path))
	}
}
