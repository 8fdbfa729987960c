package model

// CategoryID identifies one of the fixed semantic categories a text block
// can be assigned to.
type CategoryID string

// The fixed category taxonomy. These are the only values a categorizer may
// produce; there is no mechanism for defining new categories at runtime.
const (
	CategoryTitle       CategoryID = "title"
	CategoryHeading     CategoryID = "heading"
	CategoryEpigraph    CategoryID = "epigraph"
	CategoryAttribution CategoryID = "attribution"
	CategoryBody        CategoryID = "body"
	CategoryCaption     CategoryID = "caption"
	CategoryHeader      CategoryID = "header"
	CategoryFooter      CategoryID = "footer"
)

// RegionClass is the coarse page region a category belongs to. The editing
// UI uses it to separate running headers and footers from page content.
type RegionClass int

const (
	RegionBody RegionClass = iota
	RegionHeader
	RegionFooter
)

// String returns a string representation of the region class.
func (r RegionClass) String() string {
	switch r {
	case RegionHeader:
		return "header"
	case RegionFooter:
		return "footer"
	default:
		return "body"
	}
}

// Category describes one semantic category: static display metadata plus
// aggregates recomputed on every processing run. The static fields come from
// the process-wide taxonomy table; the aggregate fields are only meaningful
// on Category values inside a ProcessedResult.
type Category struct {
	// ID is the category identifier
	ID CategoryID

	// Name is the human-readable display name
	Name string

	// Description explains what the category holds
	Description string

	// Color is the hex display color used by the editing UI
	Color string

	// FontSize is the nominal font size for blocks of this category
	FontSize float64

	// Region is the coarse page region this category belongs to
	Region RegionClass

	// Enabled is the default export-enabled flag. Header and footer
	// categories default to disabled; everything else to enabled.
	Enabled bool

	// BlockCount is the number of blocks assigned to this category in the
	// current run
	BlockCount int

	// CharCount is the total character (rune) count across those blocks
	CharCount int

	// SampleText is the first 100 characters of the first block assigned
	// to this category, in document order
	SampleText string
}
