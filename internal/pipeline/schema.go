package pipeline

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Bar is one rating bar inside an option tab. The rendered scale is fixed at
// 10-100; labels are optional and only rendered on visible bars.
type Bar struct {
	Name         string `yaml:"name"`
	SourceColumn string `yaml:"source_column"`
	MinLabel     string `yaml:"min_label,omitempty"`
	MaxLabel     string `yaml:"max_label,omitempty"`
}

// Tab groups rating bars under one label in the product detail panel.
type Tab struct {
	Label string `yaml:"label"`
	Bars  []Bar  `yaml:"bars"`
}

// DescriptionTab maps a source HTML column into a labelled description tab.
type DescriptionTab struct {
	Label        string `yaml:"label"`
	SourceColumn string `yaml:"source_column"`
}

// Schema is the output-record layout for one catalog revision: which
// description tabs and rating-bar tabs exist and where their content comes
// from. Earlier revisions duplicated this per script; it is configuration
// now.
type Schema struct {
	DescriptionTabs []DescriptionTab `yaml:"description_tabs"`
	OptionTabs      []Tab            `yaml:"option_tabs"`
}

const (
	barMin = "10"
	barMax = "100"
)

// DefaultSchema is the snowboard catalog layout the converter was built for.
func DefaultSchema() Schema {
	return Schema{
		DescriptionTabs: []DescriptionTab{
			{Label: "Long Description", SourceColumn: "product:longdescription HTML"},
		},
		OptionTabs: []Tab{
			{
				Label: "Character",
				Bars: []Bar{
					{
						Name:         "Difficulty rider level rating",
						SourceColumn: "variant:Riderlevel",
						MinLabel:     "Beginner",
						MaxLabel:     "Expert",
					},
					{
						Name:         "Difficulty flex rating",
						SourceColumn: "variant:Flex",
						MinLabel:     "Soft",
						MaxLabel:     "Stiff",
					},
				},
			},
			{
				Label: "Terrain",
				Bars: []Bar{
					{Name: "Powder", SourceColumn: "variant:Powder"},
					{Name: "All Mountain", SourceColumn: "variant:All mountain"},
					{Name: "Freestyle", SourceColumn: "variant:Freestyle"},
				},
			},
		},
	}
}

// LoadSchema reads a schema from a YAML file.
func LoadSchema(path string) (Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Schema{}, fmt.Errorf("failed to read schema file: %w", err)
	}

	var s Schema
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Schema{}, fmt.Errorf("failed to parse schema file: %w", err)
	}
	return s, nil
}

// Marshal renders the schema as YAML.
func (s Schema) Marshal() ([]byte, error) {
	return yaml.Marshal(s)
}

// Columns returns the fixed, ordered output header derived from the schema.
func (s Schema) Columns() []string {
	columns := []string{
		"name", "slug", "description", "variation:shortdescription",
		"assets", "facets", "optionGroups", "optionValues", "sku",
		"price", "taxCategory", "stockOnHand", "trackInventory",
		"variantAssets", "variantFacets",
	}

	for i := range s.DescriptionTabs {
		prefix := fmt.Sprintf("variant:descriptionTab%d", i+1)
		columns = append(columns, prefix+"Label", prefix+"Visible", prefix+"Content")
	}

	columns = append(columns, "product:brand")

	for i, tab := range s.OptionTabs {
		tabPrefix := fmt.Sprintf("variant:optionTab%d", i+1)
		columns = append(columns, tabPrefix+"Label", tabPrefix+"Visible")
		for j := range tab.Bars {
			barPrefix := fmt.Sprintf("%sBar%d", tabPrefix, j+1)
			columns = append(columns,
				barPrefix+"Name", barPrefix+"Visible",
				barPrefix+"Min", barPrefix+"Max",
				barPrefix+"MinLabel", barPrefix+"MaxLabel",
				barPrefix+"Rating")
		}
	}

	return append(columns, "variant:frontPhoto", "variant:backPhoto")
}
