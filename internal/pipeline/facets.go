package pipeline

import (
	"sort"
	"strings"
)

// FacetMode selects how folded facets are assembled.
type FacetMode string

const (
	// FacetOrdered preserves source order and keeps duplicates.
	FacetOrdered FacetMode = "ordered"
	// FacetSorted deduplicates and sorts the folded facets.
	FacetSorted FacetMode = "sorted"
)

// FoldFacets merges the facet columns of a row into one pipe-delimited
// string. Each cell holds comma-separated entries. An entry with a colon
// opens a key:value facet whose value list runs until the next keyed entry
// in the cell; entries before any keyed one fold under the "unknown" key.
// "red, size:M,L" folds to "unknown:red|size:M|L".
func FoldFacets(row Row, facets ColumnGroup, mode FacetMode) string {
	var folded []string

	for _, ref := range facets.Instances {
		cell, ok := row.Value(ref.Name)
		if !ok {
			continue
		}

		var key string
		var values []string
		flush := func() {
			if key != "" {
				folded = append(folded, key+":"+strings.Join(values, "|"))
				key, values = "", nil
			}
		}

		for _, part := range strings.Split(cell, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}

			if k, rest, found := strings.Cut(part, ":"); found {
				flush()
				key = strings.TrimSpace(k)
				values = []string{strings.TrimSpace(rest)}
			} else if key != "" {
				values = append(values, part)
			} else {
				folded = append(folded, "unknown:"+part)
			}
		}
		flush()
	}

	if mode == FacetSorted {
		seen := make(map[string]bool, len(folded))
		unique := folded[:0]
		for _, f := range folded {
			if !seen[f] {
				seen[f] = true
				unique = append(unique, f)
			}
		}
		folded = unique
		sort.Strings(folded)
	}

	return strings.Join(folded, "|")
}
