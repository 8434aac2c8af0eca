package pipeline

import (
	"strings"
)

// Row maps a source column name to its raw cell text.
type Row map[string]string

// Table is an in-memory spreadsheet: ordered columns plus rows keyed by
// column name. Column names are trimmed of surrounding whitespace when the
// table is built; lookups use the trimmed form.
type Table struct {
	Columns []string
	Rows    []Row
}

// NewTable builds a table from a header row and data rows. Cells beyond the
// header width are dropped, short rows leave the remaining columns absent.
func NewTable(header []string, rows [][]string) *Table {
	columns := make([]string, len(header))
	for i, col := range header {
		columns[i] = strings.TrimSpace(col)
	}

	t := &Table{
		Columns: columns,
		Rows:    make([]Row, 0, len(rows)),
	}

	for _, raw := range rows {
		row := make(Row, len(columns))
		for i, col := range columns {
			if i < len(raw) {
				row[col] = raw[i]
			}
		}
		t.Rows = append(t.Rows, row)
	}

	return t
}

// Cell returns the raw cell text for a column, or "" if the column is absent.
func (r Row) Cell(col string) string {
	return r[col]
}

// Text returns the trimmed cell text, or "" when the cell is missing.
func (r Row) Text(col string) string {
	cell := r[col]
	if isMissing(cell) {
		return ""
	}
	return strings.TrimSpace(cell)
}

// Value returns the trimmed cell text and whether the cell is present.
func (r Row) Value(col string) (string, bool) {
	cell := r[col]
	if isMissing(cell) {
		return "", false
	}
	return strings.TrimSpace(cell), true
}

// isMissing reports whether a cell counts as absent. Spreadsheets exported
// through pandas render missing cells as the literal text "nan".
func isMissing(cell string) bool {
	trimmed := strings.TrimSpace(cell)
	return trimmed == "" || strings.EqualFold(trimmed, "nan")
}
