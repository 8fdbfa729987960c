package layout

import (
	"testing"

	"github.com/bookforge/reflow/model"
)

func makeRegion(label model.RegionLabel, x, y, width, height float64) model.LayoutRegion {
	return model.LayoutRegion{
		Label:      label,
		BBox:       model.NewBBox(x, y, width, height),
		Confidence: 0.9,
	}
}

func TestRegionCategorizer_FullOverlapTitle(t *testing.T) {
	categorizer := NewRegionCategorizer()
	// Block fully inside a Title region: 100% overlap.
	block := makeBlock(120, 120, 200, 30, 18, "The Sound and the Fury")
	regions := []model.LayoutRegion{
		makeRegion(model.LabelTitle, 100, 100, 400, 80),
	}

	if got := categorizer.Categorize(block, regions); got != model.CategoryTitle {
		t.Errorf("Expected title, got %s", got)
	}
}

func TestRegionCategorizer_LowOverlapFallsToBody(t *testing.T) {
	categorizer := NewRegionCategorizer()
	// Only 10% of the block overlaps the region: below the 0.30 threshold.
	block := makeBlock(0, 0, 100, 100, 12, "Some text")
	regions := []model.LayoutRegion{
		makeRegion(model.LabelTitle, 90, 0, 100, 100),
	}

	if got := categorizer.Categorize(block, regions); got != model.CategoryBody {
		t.Errorf("Expected body, got %s", got)
	}
}

func TestRegionCategorizer_NoRegions(t *testing.T) {
	categorizer := NewRegionCategorizer()
	block := makeBlock(72, 100, 400, 12, 12, "Ordinary text")

	if got := categorizer.Categorize(block, nil); got != model.CategoryBody {
		t.Errorf("Expected body, got %s", got)
	}
}

func TestRegionCategorizer_BestRegionWins(t *testing.T) {
	categorizer := NewRegionCategorizer()
	// The block overlaps two regions; the one covering more of the block
	// decides.
	block := makeBlock(0, 0, 100, 100, 12, "Overlapping")
	regions := []model.LayoutRegion{
		makeRegion(model.LabelCaption, 0, 0, 100, 40),        // 40% of block
		makeRegion(model.LabelSectionHeader, 0, 40, 100, 60), // 60% of block
	}

	if got := categorizer.Categorize(block, regions); got != model.CategoryHeading {
		t.Errorf("Expected heading, got %s", got)
	}
}

func TestRegionCategorizer_BlockCentricRatio(t *testing.T) {
	categorizer := NewRegionCategorizer()
	// The small caption region covers the whole block while the block fills
	// only a sliver of it; with a block-centric ratio that is still a full
	// claim. The large figure region above never touches the block.
	block := makeBlock(200, 490, 160, 12, 10, "Figure 3: The old mill")
	regions := []model.LayoutRegion{
		makeRegion(model.LabelFigure, 100, 100, 400, 370),
		makeRegion(model.LabelCaption, 180, 480, 240, 40),
	}

	if got := categorizer.Categorize(block, regions); got != model.CategoryCaption {
		t.Errorf("Expected caption, got %s", got)
	}
}

func TestRegionCategorizer_LabelMapping(t *testing.T) {
	categorizer := NewRegionCategorizer()
	tests := []struct {
		label model.RegionLabel
		want  model.CategoryID
	}{
		{model.LabelTitle, model.CategoryTitle},
		{model.LabelSectionHeader, model.CategoryHeading},
		{model.LabelText, model.CategoryBody},
		{model.LabelHandwriting, model.CategoryBody},
		{model.LabelTextInlineMath, model.CategoryBody},
		{model.LabelListItem, model.CategoryBody},
		{model.LabelForm, model.CategoryBody},
		{model.LabelTable, model.CategoryBody},
		{model.LabelFigure, model.CategoryBody},
		{model.LabelPicture, model.CategoryBody},
		{model.LabelTableOfContents, model.CategoryBody},
		{model.LabelCaption, model.CategoryCaption},
		{model.LabelFootnote, model.CategoryFooter},
		{model.LabelPageFooter, model.CategoryFooter},
		{model.LabelPageHeader, model.CategoryHeader},
		{model.LabelFormula, model.CategoryEpigraph},
	}

	for _, tt := range tests {
		t.Run(tt.label.String(), func(t *testing.T) {
			block := makeBlock(100, 100, 200, 20, 12, "content")
			regions := []model.LayoutRegion{
				makeRegion(tt.label, 100, 100, 200, 20),
			}

			if got := categorizer.Categorize(block, regions); got != tt.want {
				t.Errorf("Label %s: expected %s, got %s", tt.label, tt.want, got)
			}
		})
	}
}

func TestRegionCategorizer_ZeroAreaBlock(t *testing.T) {
	categorizer := NewRegionCategorizer()
	block := makeBlock(100, 100, 0, 0, 12, "degenerate")
	regions := []model.LayoutRegion{
		makeRegion(model.LabelTitle, 0, 0, 600, 800),
	}

	if got := categorizer.Categorize(block, regions); got != model.CategoryBody {
		t.Errorf("Expected body, got %s", got)
	}
}

func TestLabelTableIsExhaustive(t *testing.T) {
	// Every label in the closed enumeration must have a category; the "no
	// match" behavior belongs to the threshold check, never to the table.
	for label := model.LabelTitle; label <= model.LabelFormula; label++ {
		if _, ok := labelCategories[label]; !ok {
			t.Errorf("Label %s has no category mapping", label)
		}
	}
}
