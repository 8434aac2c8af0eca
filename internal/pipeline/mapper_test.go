package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testSchema() Schema {
	return Schema{
		DescriptionTabs: []DescriptionTab{
			{Label: "Long Description", SourceColumn: "product:longdescription HTML"},
		},
		OptionTabs: []Tab{
			{
				Label: "Character",
				Bars: []Bar{
					{Name: "Difficulty flex rating", SourceColumn: "variant:Flex", MinLabel: "Soft", MaxLabel: "Stiff"},
				},
			},
		},
	}
}

func newTestMapper(t *testing.T, columns []string) *Mapper {
	t.Helper()
	diags := &Collector{}
	layout := ResolveLayout(columns, diags)
	return NewMapper(testSchema(), layout, DefaultOptions(), diags)
}

func TestMapRowPrimary(t *testing.T) {
	m := newTestMapper(t, []string{"name", "slug", "facets.1"})

	rec := m.MapRow(Row{
		"name":                          "  Burton Custom ",
		"slug":                          "burton-custom",
		"product:shortdescription HTML": "<b>Fast</b><script>x</script>",
		"facets.1":                      "brand:Burton",
		"assets":                        "front.jpg",
	}, true)

	assert.Equal(t, "Burton Custom", rec["name"])
	assert.Equal(t, "burton-custom", rec["slug"])
	assert.Equal(t, "<b>Fast</b>x", rec["description"])
	assert.Equal(t, "brand:Burton", rec["facets"])
	assert.Equal(t, "front.jpg", rec["assets"])
	assert.NotContains(t, rec, "variation:shortdescription")
}

func TestMapRowVariant(t *testing.T) {
	m := newTestMapper(t, []string{"name", "slug"})

	rec := m.MapRow(Row{
		"product:shortdescription HTML": "<em>159cm</em>",
	}, false)

	assert.Equal(t, "<em>159cm</em>", rec["variation:shortdescription"])
	assert.NotContains(t, rec, "name")
	assert.NotContains(t, rec, "slug")
	assert.NotContains(t, rec, "facets")
}

func TestMapRowDefaults(t *testing.T) {
	m := newTestMapper(t, []string{"name", "slug"})

	rec := m.MapRow(Row{}, true)

	assert.Equal(t, "0", rec["price"])
	assert.Equal(t, "standard", rec["taxCategory"])
	assert.Equal(t, "100", rec["stockOnHand"])
	assert.Equal(t, "false", rec["trackInventory"])
}

func TestMapRowExplicitVariantFields(t *testing.T) {
	m := newTestMapper(t, []string{"name", "slug"})

	rec := m.MapRow(Row{
		"price":          "$6,499.00",
		"taxCategory":    "reduced",
		"stockOnHand":    "25 pcs",
		"trackInventory": "yes",
	}, false)

	assert.Equal(t, "6499", rec["price"])
	assert.Equal(t, "reduced", rec["taxCategory"])
	assert.Equal(t, "25", rec["stockOnHand"])
	assert.Equal(t, "true", rec["trackInventory"])
}

func TestMapRowTrackInventoryDefaultsByRole(t *testing.T) {
	m := newTestMapper(t, []string{"name", "slug"})

	assert.Equal(t, "false", m.MapRow(Row{}, true)["trackInventory"])
	assert.Equal(t, "true", m.MapRow(Row{}, false)["trackInventory"])
}

func TestMapRowDescriptionTab(t *testing.T) {
	m := newTestMapper(t, []string{"name", "slug"})

	rec := m.MapRow(Row{
		"product:longdescription HTML": "<p>Carving deck</p><iframe></iframe>",
	}, true)

	assert.Equal(t, "Long Description", rec["variant:descriptionTab1Label"])
	assert.Equal(t, "true", rec["variant:descriptionTab1Visible"])
	assert.Equal(t, "<p>Carving deck</p>", rec["variant:descriptionTab1Content"])
}

func TestMapRowRatingBars(t *testing.T) {
	m := newTestMapper(t, []string{"name", "slug"})

	t.Run("positive rating shows bar and tab", func(t *testing.T) {
		rec := m.MapRow(Row{"variant:Flex": "0.7"}, false)

		assert.Equal(t, "Difficulty flex rating", rec["variant:optionTab1Bar1Name"])
		assert.Equal(t, "true", rec["variant:optionTab1Bar1Visible"])
		assert.Equal(t, "70", rec["variant:optionTab1Bar1Rating"])
		assert.Equal(t, "10", rec["variant:optionTab1Bar1Min"])
		assert.Equal(t, "100", rec["variant:optionTab1Bar1Max"])
		assert.Equal(t, "Soft", rec["variant:optionTab1Bar1MinLabel"])
		assert.Equal(t, "Stiff", rec["variant:optionTab1Bar1MaxLabel"])
		assert.Equal(t, "Character", rec["variant:optionTab1Label"])
		assert.Equal(t, "true", rec["variant:optionTab1Visible"])
	})

	t.Run("zero rating hides bar but keeps value", func(t *testing.T) {
		rec := m.MapRow(Row{"variant:Flex": "0"}, false)

		assert.Equal(t, "false", rec["variant:optionTab1Bar1Visible"])
		assert.Equal(t, "0", rec["variant:optionTab1Bar1Rating"])
		assert.NotContains(t, rec, "variant:optionTab1Bar1MinLabel")
		assert.Equal(t, "false", rec["variant:optionTab1Visible"])
	})

	t.Run("missing rating hides bar and tab", func(t *testing.T) {
		rec := m.MapRow(Row{}, false)

		assert.Equal(t, "false", rec["variant:optionTab1Bar1Visible"])
		assert.NotContains(t, rec, "variant:optionTab1Bar1Rating")
		assert.Equal(t, "false", rec["variant:optionTab1Visible"])
	})
}
