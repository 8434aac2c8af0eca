package pipeline

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// ColumnRef is one instance of a positional column group, e.g. index 2 for
// "optionGroups #2".
type ColumnRef struct {
	Index int
	Name  string
}

// ColumnGroup is an ordered set of columns sharing a base name and a numeric
// suffix. Instances are sorted by suffix ascending; that order determines
// output field order.
type ColumnGroup struct {
	Base      string
	Instances []ColumnRef
}

// OptionPair is one positionally paired option group/value column pair.
type OptionPair struct {
	GroupColumn string
	ValueColumn string
}

// Layout is the resolved column structure of a source table, computed once
// before per-row mapping.
type Layout struct {
	Facets      ColumnGroup
	OptionPairs []OptionPair
}

// Matches "base #3", "base.3", "base #3" with optional whitespace around the
// separator.
var suffixPattern = regexp.MustCompile(`^(.*?)\s*[#.]\s*(\d+)$`)

// ResolveColumnGroup finds all columns of the form "<base> #N" or "<base>.N"
// and orders them by N.
func ResolveColumnGroup(columns []string, base string) ColumnGroup {
	group := ColumnGroup{Base: base}

	for _, col := range columns {
		m := suffixPattern.FindStringSubmatch(col)
		if m == nil {
			continue
		}
		if !strings.EqualFold(strings.TrimSpace(m[1]), base) {
			continue
		}
		n, err := strconv.Atoi(m[2])
		if err != nil {
			continue
		}
		group.Instances = append(group.Instances, ColumnRef{Index: n, Name: col})
	}

	sort.SliceStable(group.Instances, func(i, j int) bool {
		return group.Instances[i].Index < group.Instances[j].Index
	})

	return group
}

// ResolveLayout discovers the facet and option column groups of a table.
// Unequal option group/value counts are tolerated: pairs are formed up to the
// shorter list and the excess is reported as a warning.
func ResolveLayout(columns []string, diags *Collector) Layout {
	layout := Layout{
		Facets: ResolveColumnGroup(columns, "facets"),
	}

	groups := ResolveColumnGroup(columns, "optionGroups")
	values := ResolveColumnGroup(columns, "optionValues")

	n := len(groups.Instances)
	if len(values.Instances) < n {
		n = len(values.Instances)
	}
	if len(groups.Instances) != len(values.Instances) {
		diags.Warnf("unbalanced option columns: %d group columns, %d value columns; pairing the first %d",
			len(groups.Instances), len(values.Instances), n)
	}

	for i := 0; i < n; i++ {
		layout.OptionPairs = append(layout.OptionPairs, OptionPair{
			GroupColumn: groups.Instances[i].Name,
			ValueColumn: values.Instances[i].Name,
		})
	}

	return layout
}
