package models

// Record is one row of the conversion output, keyed by output column name.
// Columns a record does not set serialize as empty cells.
type Record map[string]string

// RecordTable is the ordered result of a conversion run, ready for
// serialization to delimited text with one header row.
type RecordTable struct {
	Columns []string `json:"columns"`
	Records []Record `json:"records"`
}

// Len returns the number of records in the table.
func (t *RecordTable) Len() int {
	return len(t.Records)
}

// RowValues returns a record's values aligned to the table's column order.
func (t *RecordTable) RowValues(r Record) []string {
	values := make([]string, len(t.Columns))
	for i, col := range t.Columns {
		values[i] = r[col]
	}
	return values
}

// Severity classifies a diagnostic message.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
)

// Diagnostic is one collected warning or notice from a conversion run.
// Diagnostics are surfaced to the caller, never thrown.
type Diagnostic struct {
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
}
