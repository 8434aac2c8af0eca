package pipeline

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/boardlane/pimops/pkg/models"
)

// skuAllocator hands out run-unique SKUs. Collisions are resolved by
// suffixing _1, _2, ... until the SKU is free.
type skuAllocator struct {
	seen map[string]bool
}

func newSKUAllocator() *skuAllocator {
	return &skuAllocator{seen: make(map[string]bool)}
}

func (a *skuAllocator) Claim(sku string) string {
	if !a.seen[sku] {
		a.seen[sku] = true
		return sku
	}
	for i := 1; ; i++ {
		candidate := fmt.Sprintf("%s_%d", sku, i)
		if !a.seen[candidate] {
			a.seen[candidate] = true
			return candidate
		}
	}
}

var skuCharPattern = regexp.MustCompile(`[^A-Za-z0-9_]+`)

// sanitizeSKUPart makes an option value safe for use inside a derived SKU:
// spaces become underscores, everything non-alphanumeric is dropped.
func sanitizeSKUPart(value string) string {
	return skuCharPattern.ReplaceAllString(strings.ReplaceAll(value, " ", "_"), "")
}

type rowGroup struct {
	slug string
	rows []Row
}

// Expander partitions source rows by slug, designates the primary row of each
// group and expands the rest into variant records.
type Expander struct {
	mapper *Mapper
	layout Layout
	opts   Options
	diags  *Collector
	skus   *skuAllocator

	primaries int
	variants  int
	groups    int
	skipped   int
}

func NewExpander(mapper *Mapper, layout Layout, opts Options, diags *Collector) *Expander {
	return &Expander{
		mapper: mapper,
		layout: layout,
		opts:   opts,
		diags:  diags,
		skus:   newSKUAllocator(),
	}
}

// Expand converts all rows of a table into output records. Groups are visited
// in first-appearance order and rows within a group in source order, so
// records come out in the same relative order as the input.
func (e *Expander) Expand(t *Table) []models.Record {
	groups := partitionBySlug(t.Rows)
	e.groups = len(groups)

	var records []models.Record
	for _, g := range groups {
		records = append(records, e.expandGroup(g)...)
	}
	return records
}

// partitionBySlug groups rows by their trimmed slug. Rows with a missing slug
// all share the empty-slug group.
func partitionBySlug(rows []Row) []*rowGroup {
	var groups []*rowGroup
	index := make(map[string]*rowGroup)

	for _, row := range rows {
		slug := row.Text(colSlug)
		g, ok := index[slug]
		if !ok {
			g = &rowGroup{slug: slug}
			index[slug] = g
			groups = append(groups, g)
		}
		g.rows = append(g.rows, row)
	}

	return groups
}

func (e *Expander) expandGroup(g *rowGroup) []models.Record {
	if g.slug == "" && len(g.rows) > 1 {
		e.diags.Warnf("%d rows with no slug share one group; unrelated products may be merged", len(g.rows))
	}

	primaryIdx := -1
	for i, row := range g.rows {
		if row.Text(colName) != "" {
			primaryIdx = i
			break
		}
	}
	if primaryIdx < 0 {
		e.skipped++
		e.diags.Warnf("no primary row found for slug %q; skipping %d rows", g.slug, len(g.rows))
		return nil
	}

	primary := g.rows[primaryIdx]
	rec := e.mapper.MapRow(primary, true)
	groups, values := FoldOptions(primary, e.layout.OptionPairs, e.opts.OptionMode)
	rec["optionGroups"] = groups
	rec["optionValues"] = values
	rec["sku"] = e.skus.Claim(e.primarySKU(primary, g.slug))
	e.primaries++

	records := []models.Record{rec}

	for i, row := range g.rows {
		if i == primaryIdx {
			continue
		}

		vrec := e.mapper.MapRow(row, false)
		optionValues := OptionValues(row, e.layout.OptionPairs)
		vrec["optionValues"] = collapsePipes(strings.Join(optionValues, "|"))
		vrec["sku"] = e.skus.Claim(e.variantSKU(row, g.slug, optionValues))
		e.variants++

		records = append(records, vrec)
	}

	return records
}

// primarySKU uses the row's explicit SKU when given, otherwise derives
// "<slug>_default".
func (e *Expander) primarySKU(row Row, slug string) string {
	if sku := row.Text(colSKU); sku != "" {
		return sku
	}
	return slug + "_default"
}

// variantSKU uses the row's explicit SKU when given, otherwise derives the
// SKU from the slug and the sanitized option values.
func (e *Expander) variantSKU(row Row, slug string, optionValues []string) string {
	if sku := row.Text(colSKU); sku != "" {
		return sku
	}
	if len(optionValues) == 0 {
		return slug + "_variant"
	}

	parts := make([]string, len(optionValues))
	for i, v := range optionValues {
		parts[i] = sanitizeSKUPart(v)
	}
	return slug + "_" + strings.Join(parts, "_")
}
