package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveColumnGroup(t *testing.T) {
	columns := []string{
		"name",
		"facets.2",
		"facets.1",
		"Facets #3",
		"facets",
		"prefacets.4",
	}

	group := ResolveColumnGroup(columns, "facets")

	assert.Equal(t, "facets", group.Base)
	if assert.Len(t, group.Instances, 3) {
		assert.Equal(t, "facets.1", group.Instances[0].Name)
		assert.Equal(t, "facets.2", group.Instances[1].Name)
		assert.Equal(t, "Facets #3", group.Instances[2].Name)
	}
}

func TestResolveColumnGroupSeparatorSpacing(t *testing.T) {
	group := ResolveColumnGroup([]string{"optionGroups #1", "optionGroups#2", "optionGroups . 3"}, "optionGroups")

	if assert.Len(t, group.Instances, 3) {
		assert.Equal(t, []int{1, 2, 3}, []int{
			group.Instances[0].Index,
			group.Instances[1].Index,
			group.Instances[2].Index,
		})
	}
}

func TestResolveColumnGroupNoMatches(t *testing.T) {
	group := ResolveColumnGroup([]string{"name", "slug"}, "facets")
	assert.Empty(t, group.Instances)
}

func TestResolveLayout(t *testing.T) {
	diags := &Collector{}
	layout := ResolveLayout([]string{
		"name",
		"facets.1",
		"optionGroups #1",
		"optionValues #1",
		"optionGroups #2",
		"optionValues #2",
	}, diags)

	assert.Len(t, layout.Facets.Instances, 1)
	assert.Equal(t, []OptionPair{
		{GroupColumn: "optionGroups #1", ValueColumn: "optionValues #1"},
		{GroupColumn: "optionGroups #2", ValueColumn: "optionValues #2"},
	}, layout.OptionPairs)
	assert.Zero(t, diags.Warnings())
}

func TestResolveLayoutUnbalancedPairs(t *testing.T) {
	diags := &Collector{}
	layout := ResolveLayout([]string{
		"optionGroups #1",
		"optionValues #1",
		"optionGroups #2",
	}, diags)

	assert.Len(t, layout.OptionPairs, 1)
	assert.Equal(t, 1, diags.Warnings())
}
