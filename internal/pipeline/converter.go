package pipeline

import (
	"errors"
	"time"

	"github.com/boardlane/pimops/pkg/models"
)

// Options controls conversion behavior. Zero values are not meaningful; start
// from DefaultOptions.
type Options struct {
	FacetMode          FacetMode
	OptionMode         OptionMode
	DefaultTaxCategory string
	DefaultStockOnHand int
}

// DefaultOptions matches the current catalog revision: source-ordered facets
// with duplicates kept, and option pairs folded independently.
func DefaultOptions() Options {
	return Options{
		FacetMode:          FacetOrdered,
		OptionMode:         OptionLenient,
		DefaultTaxCategory: "standard",
		DefaultStockOnHand: 100,
	}
}

// Result is the outcome of one conversion run: the output table, the
// collected diagnostics, and counts for reporting.
type Result struct {
	Table       *models.RecordTable
	Diagnostics []models.Diagnostic

	SourceRows    int
	Groups        int
	SkippedGroups int
	Products      int
	Variants      int
	Warnings      int

	StartedAt   time.Time
	CompletedAt time.Time
}

var ErrEmptyTable = errors.New("source table has no columns")

// Convert runs the full row-to-record pipeline over an in-memory table. Data
// problems surface as diagnostics on the result; an error is returned only
// for a structurally unusable input, in which case no table is produced.
// A single call owns all run state, so independent conversions may run
// concurrently.
func Convert(t *Table, schema Schema, opts Options) (*Result, error) {
	started := time.Now()

	if t == nil || len(t.Columns) == 0 {
		return nil, ErrEmptyTable
	}

	diags := &Collector{}
	layout := ResolveLayout(t.Columns, diags)
	if len(layout.OptionPairs) == 0 {
		diags.Warnf("no option group columns found")
	}

	mapper := NewMapper(schema, layout, opts, diags)
	expander := NewExpander(mapper, layout, opts, diags)
	records := expander.Expand(t)

	return &Result{
		Table: &models.RecordTable{
			Columns: schema.Columns(),
			Records: records,
		},
		Diagnostics:   diags.Diagnostics(),
		SourceRows:    len(t.Rows),
		Groups:        expander.groups,
		SkippedGroups: expander.skipped,
		Products:      expander.primaries,
		Variants:      expander.variants,
		Warnings:      diags.Warnings(),
		StartedAt:     started,
		CompletedAt:   time.Now(),
	}, nil
}
