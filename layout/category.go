package layout

import (
	"unicode/utf8"

	"github.com/bookforge/reflow/model"
)

// categoryTable is the process-wide category taxonomy: eight categories with
// static display metadata and zeroed aggregates. It is never mutated; the
// aggregator copies entries into fresh values on every run.
var categoryTable = []model.Category{
	{
		ID:          model.CategoryTitle,
		Name:        "Titles",
		Description: "Large titles or chapter headings",
		Color:       "#F44336",
		FontSize:    24,
		Region:      model.RegionBody,
		Enabled:     true,
	},
	{
		ID:          model.CategoryHeading,
		Name:        "Section Headings",
		Description: "Section titles and chapter numbers",
		Color:       "#FF9800",
		FontSize:    18,
		Region:      model.RegionBody,
		Enabled:     true,
	},
	{
		ID:          model.CategoryEpigraph,
		Name:        "Epigraphs",
		Description: "Quotations and formulas set apart from body text",
		Color:       "#3F51B5",
		FontSize:    12,
		Region:      model.RegionBody,
		Enabled:     true,
	},
	{
		ID:          model.CategoryAttribution,
		Name:        "Attributions",
		Description: "Quotation and epigraph attributions",
		Color:       "#E91E63",
		FontSize:    12,
		Region:      model.RegionBody,
		Enabled:     true,
	},
	{
		ID:          model.CategoryBody,
		Name:        "Body Text",
		Description: "Main content",
		Color:       "#4CAF50",
		FontSize:    12,
		Region:      model.RegionBody,
		Enabled:     true,
	},
	{
		ID:          model.CategoryCaption,
		Name:        "Captions",
		Description: "Figure or table captions",
		Color:       "#00BCD4",
		FontSize:    10,
		Region:      model.RegionBody,
		Enabled:     true,
	},
	{
		ID:          model.CategoryHeader,
		Name:        "Page Headers",
		Description: "Running header text",
		Color:       "#795548",
		FontSize:    10,
		Region:      model.RegionHeader,
		Enabled:     false,
	},
	{
		ID:          model.CategoryFooter,
		Name:        "Page Footers",
		Description: "Page numbers or footer text",
		Color:       "#607D8B",
		FontSize:    10,
		Region:      model.RegionFooter,
		Enabled:     false,
	},
}

// sampleTextLength is the number of characters of the first block kept as a
// category's sample.
const sampleTextLength = 100

// Taxonomy returns a copy of the static category table with zeroed
// aggregates, in registry order.
func Taxonomy() []model.Category {
	out := make([]model.Category, len(categoryTable))
	copy(out, categoryTable)
	return out
}

// CategoryByID returns the static metadata for a category id. The second
// return value is false for ids outside the fixed taxonomy.
func CategoryByID(id model.CategoryID) (model.Category, bool) {
	for _, cat := range categoryTable {
		if cat.ID == id {
			return cat, true
		}
	}
	return model.Category{}, false
}

// DefaultEnabledCategories returns the ids of categories enabled by default:
// everything except page headers and footers.
func DefaultEnabledCategories() []model.CategoryID {
	var ids []model.CategoryID
	for _, cat := range categoryTable {
		if cat.Enabled {
			ids = append(ids, cat.ID)
		}
	}
	return ids
}

// AggregateCategories folds the categorized block list into per-category
// statistics: block count, character count, and a sample snippet from the
// first block in document order. Categories with no blocks are omitted. The
// fold builds a new map from the static taxonomy on every call, so repeated
// runs share no state.
func AggregateCategories(blocks []model.TextBlock) map[model.CategoryID]model.Category {
	used := make(map[model.CategoryID]model.Category)

	for _, block := range blocks {
		cat, ok := used[block.Category]
		if !ok {
			cat, ok = CategoryByID(block.Category)
			if !ok {
				continue
			}
			cat.SampleText = sampleText(block.Text)
		}
		cat.BlockCount++
		cat.CharCount += utf8.RuneCountInString(block.Text)
		used[block.Category] = cat
	}

	return used
}

// sampleText returns the first sampleTextLength characters of text.
func sampleText(text string) string {
	runes := []rune(text)
	if len(runes) > sampleTextLength {
		return string(runes[:sampleTextLength])
	}
	return text
}
