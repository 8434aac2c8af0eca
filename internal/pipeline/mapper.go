package pipeline

import (
	"fmt"
	"strconv"

	"github.com/boardlane/pimops/pkg/models"
)

// Source column names. The loader trims surrounding whitespace off header
// cells, so the trailing-space variants seen in real exports resolve to
// these.
const (
	colName             = "name"
	colSlug             = "slug"
	colSKU              = "sku"
	colShortDescription = "product:shortdescription HTML"
	colBrand            = "product:brand"
	colPrice            = "price"
	colTaxCategory      = "taxCategory"
	colStockOnHand      = "stockOnHand"
	colTrackInventory   = "trackInventory"
	colAssets           = "assets"
	colVariantAssets    = "variantAssets"
	colFrontPhoto       = "variant:Carrouselasset: topPhoto"
	colBackPhoto        = "variant:Carrouselasset: BasePhoto"
)

// Mapper assembles output records from source rows against a resolved column
// layout and output schema.
type Mapper struct {
	schema Schema
	layout Layout
	opts   Options
	norm   *Normalizer
}

func NewMapper(schema Schema, layout Layout, opts Options, diags *Collector) *Mapper {
	return &Mapper{
		schema: schema,
		layout: layout,
		opts:   opts,
		norm:   NewNormalizer(diags),
	}
}

// MapRow builds one output record from one source row. Primary rows carry the
// product identity (name, slug, description, assets, facets); variant rows
// leave those blank and carry only variant-level fields. SKU and the option
// group/value declarations are filled in by the group expander.
func (m *Mapper) MapRow(row Row, primary bool) models.Record {
	rec := models.Record{}

	shortDesc := SanitizeHTML(row.Cell(colShortDescription))

	if primary {
		rec["name"] = m.norm.String(row.Cell(colName))
		rec["slug"] = m.norm.String(row.Cell(colSlug))
		rec["description"] = shortDesc
		rec["assets"] = row.Text(colAssets)
		rec["facets"] = FoldFacets(row, m.layout.Facets, m.opts.FacetMode)
		rec["variantAssets"] = row.Text(colVariantAssets)
	} else {
		rec["variation:shortdescription"] = shortDesc
	}

	if v, ok := row.Value(colPrice); ok {
		rec["price"] = m.norm.Decimal(v)
	} else {
		rec["price"] = "0"
	}

	if v, ok := row.Value(colTaxCategory); ok {
		rec["taxCategory"] = v
	} else {
		rec["taxCategory"] = m.opts.DefaultTaxCategory
	}

	if v, ok := row.Value(colStockOnHand); ok {
		rec["stockOnHand"] = m.norm.Integer(v)
	} else {
		rec["stockOnHand"] = strconv.Itoa(m.opts.DefaultStockOnHand)
	}

	if v, ok := row.Value(colTrackInventory); ok {
		rec["trackInventory"] = strconv.FormatBool(m.norm.Boolean(v))
	} else if primary {
		rec["trackInventory"] = "false"
	} else {
		rec["trackInventory"] = "true"
	}

	for i, tab := range m.schema.DescriptionTabs {
		prefix := fmt.Sprintf("variant:descriptionTab%d", i+1)
		rec[prefix+"Label"] = tab.Label
		rec[prefix+"Visible"] = "true"
		rec[prefix+"Content"] = SanitizeHTML(row.Cell(tab.SourceColumn))
	}

	rec["product:brand"] = m.norm.String(row.Cell(colBrand))

	for i, tab := range m.schema.OptionTabs {
		tabPrefix := fmt.Sprintf("variant:optionTab%d", i+1)
		tabVisible := false

		for j, bar := range tab.Bars {
			barPrefix := fmt.Sprintf("%sBar%d", tabPrefix, j+1)
			rating, ok := ParseRating(row.Cell(bar.SourceColumn))
			visible := ok && rating > 0
			if visible {
				tabVisible = true
			}

			rec[barPrefix+"Name"] = bar.Name
			rec[barPrefix+"Visible"] = strconv.FormatBool(visible)
			rec[barPrefix+"Min"] = barMin
			rec[barPrefix+"Max"] = barMax
			if visible {
				rec[barPrefix+"MinLabel"] = bar.MinLabel
				rec[barPrefix+"MaxLabel"] = bar.MaxLabel
			}
			if ok {
				rec[barPrefix+"Rating"] = FormatRating(rating)
			}
		}

		rec[tabPrefix+"Label"] = tab.Label
		rec[tabPrefix+"Visible"] = strconv.FormatBool(tabVisible)
	}

	rec["variant:frontPhoto"] = row.Text(colFrontPhoto)
	rec["variant:backPhoto"] = row.Text(colBackPhoto)

	return rec
}
