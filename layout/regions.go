package layout

import (
	"github.com/bookforge/reflow/model"
)

// labelCategories maps every region label to a category. The table is
// exhaustive over the closed label enumeration and carries no fallback: the
// "no match" behavior belongs to the overlap-threshold check in Categorize,
// not here, so adding a new external label is a visible decision.
var labelCategories = map[model.RegionLabel]model.CategoryID{
	model.LabelTitle:           model.CategoryTitle,
	model.LabelSectionHeader:   model.CategoryHeading,
	model.LabelText:            model.CategoryBody,
	model.LabelHandwriting:     model.CategoryBody,
	model.LabelTextInlineMath:  model.CategoryBody,
	model.LabelListItem:        model.CategoryBody,
	model.LabelForm:            model.CategoryBody,
	model.LabelTable:           model.CategoryBody,
	model.LabelFigure:          model.CategoryBody,
	model.LabelPicture:         model.CategoryBody,
	model.LabelTableOfContents: model.CategoryBody,
	model.LabelCaption:         model.CategoryCaption,
	model.LabelFootnote:        model.CategoryFooter,
	model.LabelPageFooter:      model.CategoryFooter,
	model.LabelPageHeader:      model.CategoryHeader,
	model.LabelFormula:         model.CategoryEpigraph,
}

// RegionConfig holds configuration for region-based categorization.
type RegionConfig struct {
	// OverlapThreshold is the minimum block-area overlap ratio for a region
	// to claim a block
	// Default: 0.30
	OverlapThreshold float64
}

// DefaultRegionConfig returns sensible default configuration.
func DefaultRegionConfig() RegionConfig {
	return RegionConfig{
		OverlapThreshold: 0.30,
	}
}

// RegionCategorizer assigns categories from externally detected layout
// regions. It is used for pages that have layout-detection data; such pages
// never fall back to the heuristic path, so results stay explainable per
// page.
type RegionCategorizer struct {
	config RegionConfig
}

// NewRegionCategorizer creates a categorizer with default configuration.
func NewRegionCategorizer() *RegionCategorizer {
	return &RegionCategorizer{config: DefaultRegionConfig()}
}

// NewRegionCategorizerWithConfig creates a categorizer with custom
// configuration.
func NewRegionCategorizerWithConfig(config RegionConfig) *RegionCategorizer {
	return &RegionCategorizer{config: config}
}

// Categorize picks the region with the highest overlap ratio against the
// block and maps its label to a category. The ratio divides by the block's
// area, not the region's, so a large region does not automatically win. If
// no region clears the threshold, or the page has no regions, the block is
// body.
func (c *RegionCategorizer) Categorize(block *MergedBlock, regions []model.LayoutRegion) model.CategoryID {
	blockArea := block.BBox.Area()
	if blockArea <= 0 {
		return model.CategoryBody
	}

	bestRatio := 0.0
	bestLabel := model.LabelText
	for _, region := range regions {
		ratio := block.BBox.Intersection(region.BBox).Area() / blockArea
		if ratio > bestRatio {
			bestRatio = ratio
			bestLabel = region.Label
		}
	}

	if bestRatio <= c.config.OverlapThreshold {
		return model.CategoryBody
	}
	return labelCategories[bestLabel]
}
