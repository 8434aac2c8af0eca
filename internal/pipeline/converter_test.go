package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var catalogHeader = []string{
	"name", "slug", "sku", "price",
	"optionGroups #1", "optionValues #1",
	"facets.1",
}

func catalogTable(rows ...[]string) *Table {
	return NewTable(catalogHeader, rows)
}

func TestConvertEmptyTable(t *testing.T) {
	_, err := Convert(nil, DefaultSchema(), DefaultOptions())
	assert.ErrorIs(t, err, ErrEmptyTable)

	_, err = Convert(&Table{}, DefaultSchema(), DefaultOptions())
	assert.ErrorIs(t, err, ErrEmptyTable)
}

func TestConvertSingleProduct(t *testing.T) {
	table := catalogTable(
		[]string{"Burton Custom", "burton-custom", "", "6499", "size", "152,156", "brand:Burton"},
		[]string{"", "burton-custom", "", "6499", "", "152", ""},
		[]string{"", "burton-custom", "", "6699", "", "156", ""},
	)

	res, err := Convert(table, testSchema(), DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, 3, res.SourceRows)
	assert.Equal(t, 1, res.Groups)
	assert.Equal(t, 1, res.Products)
	assert.Equal(t, 2, res.Variants)
	assert.Equal(t, 0, res.SkippedGroups)

	require.Len(t, res.Table.Records, 3)
	primary := res.Table.Records[0]
	assert.Equal(t, "Burton Custom", primary["name"])
	assert.Equal(t, "size", primary["optionGroups"])
	assert.Equal(t, "152|156", primary["optionValues"])
	assert.Equal(t, "burton-custom_default", primary["sku"])
	assert.Equal(t, "brand:Burton", primary["facets"])

	first := res.Table.Records[1]
	assert.Equal(t, "", first["name"])
	assert.Equal(t, "152", first["optionValues"])
	assert.Equal(t, "burton-custom_152", first["sku"])

	second := res.Table.Records[2]
	assert.Equal(t, "156", second["optionValues"])
	assert.Equal(t, "burton-custom_156", second["sku"])
	assert.Equal(t, "6699", second["price"])
}

func TestConvertPrimaryIsFirstNamedRow(t *testing.T) {
	table := catalogTable(
		[]string{"", "lib-skate", "", "5999", "", "152", ""},
		[]string{"Lib Tech Skate Banana", "lib-skate", "", "5999", "size", "152,154", "brand:Lib Tech"},
		[]string{"", "lib-skate", "", "5999", "", "154", ""},
	)

	res, err := Convert(table, testSchema(), DefaultOptions())
	require.NoError(t, err)
	require.Len(t, res.Table.Records, 3)

	assert.Equal(t, "Lib Tech Skate Banana", res.Table.Records[0]["name"])
	assert.Equal(t, "lib-skate_default", res.Table.Records[0]["sku"])

	// remaining rows keep source order
	assert.Equal(t, "152", res.Table.Records[1]["optionValues"])
	assert.Equal(t, "154", res.Table.Records[2]["optionValues"])
}

func TestConvertGroupWithoutPrimarySkipped(t *testing.T) {
	table := catalogTable(
		[]string{"", "orphan", "", "100", "", "152", ""},
		[]string{"", "orphan", "", "100", "", "156", ""},
	)

	res, err := Convert(table, testSchema(), DefaultOptions())
	require.NoError(t, err)

	assert.Empty(t, res.Table.Records)
	assert.Equal(t, 1, res.SkippedGroups)
	assert.Equal(t, 0, res.Products)
	assert.GreaterOrEqual(t, res.Warnings, 1)
}

func TestConvertExplicitSKUWins(t *testing.T) {
	table := catalogTable(
		[]string{"Burton Custom", "burton-custom", "BC-2026", "6499", "size", "152", ""},
		[]string{"", "burton-custom", "BC-2026-152", "6499", "", "152", ""},
	)

	res, err := Convert(table, testSchema(), DefaultOptions())
	require.NoError(t, err)
	require.Len(t, res.Table.Records, 2)

	assert.Equal(t, "BC-2026", res.Table.Records[0]["sku"])
	assert.Equal(t, "BC-2026-152", res.Table.Records[1]["sku"])
}

func TestConvertSKUCollisionsSuffixed(t *testing.T) {
	table := catalogTable(
		[]string{"Burton Custom", "burton-custom", "", "6499", "size", "152", ""},
		[]string{"", "burton-custom", "", "6499", "", "152", ""},
		[]string{"", "burton-custom", "", "6499", "", "152", ""},
	)

	res, err := Convert(table, testSchema(), DefaultOptions())
	require.NoError(t, err)
	require.Len(t, res.Table.Records, 3)

	assert.Equal(t, "burton-custom_152", res.Table.Records[1]["sku"])
	assert.Equal(t, "burton-custom_152_1", res.Table.Records[2]["sku"])
}

func TestConvertVariantSKUPartsSanitized(t *testing.T) {
	table := catalogTable(
		[]string{"Burton Custom", "burton-custom", "", "6499", "size", "152 Wide", ""},
		[]string{"", "burton-custom", "", "6499", "", "152 Wide (EU)", ""},
	)

	res, err := Convert(table, testSchema(), DefaultOptions())
	require.NoError(t, err)
	require.Len(t, res.Table.Records, 2)

	assert.Equal(t, "burton-custom_152_Wide_EU", res.Table.Records[1]["sku"])
}

func TestConvertGroupsKeepFirstAppearanceOrder(t *testing.T) {
	table := catalogTable(
		[]string{"Zeta", "zeta", "", "100", "size", "152", ""},
		[]string{"Alpha", "alpha", "", "100", "size", "152", ""},
		[]string{"", "zeta", "", "100", "", "154", ""},
	)

	res, err := Convert(table, testSchema(), DefaultOptions())
	require.NoError(t, err)
	require.Len(t, res.Table.Records, 3)

	assert.Equal(t, "Zeta", res.Table.Records[0]["name"])
	assert.Equal(t, "154", res.Table.Records[1]["optionValues"])
	assert.Equal(t, "Alpha", res.Table.Records[2]["name"])
	assert.Equal(t, 2, res.Groups)
}

func TestConvertEmptySlugRowsWarn(t *testing.T) {
	table := catalogTable(
		[]string{"One", "", "", "100", "", "", ""},
		[]string{"Two", "", "", "100", "", "", ""},
	)

	res, err := Convert(table, testSchema(), DefaultOptions())
	require.NoError(t, err)

	assert.GreaterOrEqual(t, res.Warnings, 1)
	assert.Equal(t, 1, res.Groups)
}

func TestConvertHeaderMatchesSchema(t *testing.T) {
	res, err := Convert(catalogTable(), testSchema(), DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, testSchema().Columns(), res.Table.Columns)
	assert.Empty(t, res.Table.Records)
}

func TestConvertWarnsWhenNoOptionColumns(t *testing.T) {
	table := NewTable([]string{"name", "slug"}, [][]string{{"Solo", "solo"}})

	res, err := Convert(table, testSchema(), DefaultOptions())
	require.NoError(t, err)

	require.NotEmpty(t, res.Diagnostics)
	assert.Equal(t, "no option group columns found", res.Diagnostics[0].Message)
}
