package model

import "fmt"

// RegionLabel identifies the kind of content a layout-detection model found
// inside a region. The set is closed: collaborators must only emit labels
// from this enumeration, and ParseRegionLabel rejects anything else at the
// input boundary.
type RegionLabel int

const (
	LabelTitle RegionLabel = iota
	LabelSectionHeader
	LabelText
	LabelHandwriting
	LabelTextInlineMath
	LabelListItem
	LabelForm
	LabelTable
	LabelFigure
	LabelPicture
	LabelTableOfContents
	LabelCaption
	LabelFootnote
	LabelPageFooter
	LabelPageHeader
	LabelFormula
)

// String returns the wire name of the label, as emitted by layout-detection
// models.
func (l RegionLabel) String() string {
	switch l {
	case LabelTitle:
		return "Title"
	case LabelSectionHeader:
		return "SectionHeader"
	case LabelText:
		return "Text"
	case LabelHandwriting:
		return "Handwriting"
	case LabelTextInlineMath:
		return "TextInlineMath"
	case LabelListItem:
		return "ListItem"
	case LabelForm:
		return "Form"
	case LabelTable:
		return "Table"
	case LabelFigure:
		return "Figure"
	case LabelPicture:
		return "Picture"
	case LabelTableOfContents:
		return "TableOfContents"
	case LabelCaption:
		return "Caption"
	case LabelFootnote:
		return "Footnote"
	case LabelPageFooter:
		return "PageFooter"
	case LabelPageHeader:
		return "PageHeader"
	case LabelFormula:
		return "Formula"
	default:
		return "Unknown"
	}
}

// ParseRegionLabel converts a wire name into a RegionLabel. Unknown names
// are a construction-time error: they must never reach the categorizer.
func ParseRegionLabel(name string) (RegionLabel, error) {
	switch name {
	case "Title":
		return LabelTitle, nil
	case "SectionHeader":
		return LabelSectionHeader, nil
	case "Text":
		return LabelText, nil
	case "Handwriting":
		return LabelHandwriting, nil
	case "TextInlineMath":
		return LabelTextInlineMath, nil
	case "ListItem":
		return LabelListItem, nil
	case "Form":
		return LabelForm, nil
	case "Table":
		return LabelTable, nil
	case "Figure":
		return LabelFigure, nil
	case "Picture":
		return LabelPicture, nil
	case "TableOfContents":
		return LabelTableOfContents, nil
	case "Caption":
		return LabelCaption, nil
	case "Footnote":
		return LabelFootnote, nil
	case "PageFooter":
		return LabelPageFooter, nil
	case "PageHeader":
		return LabelPageHeader, nil
	case "Formula":
		return LabelFormula, nil
	default:
		return 0, fmt.Errorf("unknown region label %q", name)
	}
}

// LayoutRegion is a labeled bounding region supplied per page by an external
// layout-detection collaborator. When regions are supplied for a page, they
// override the heuristic categorizer for that page. Read-only input; never
// produced inside this library.
type LayoutRegion struct {
	// Label is the detected content kind
	Label RegionLabel

	// BBox is the region's bounding box on the page
	BBox BBox

	// Confidence is the detector's confidence score (0.0 to 1.0)
	Confidence float64

	// Polygon is the detected region outline, when the model provides one
	Polygon []Point

	// Position is the region's index in the model's reading order
	Position int
}
