package model

// RawLine is a single OCR-recognized line of text: the smallest unit this
// library consumes. RawLines are produced once per OCR invocation by the
// engine adapter (or any other collaborator) and are never mutated here.
type RawLine struct {
	// Page is the 0-based page index the line belongs to
	Page int

	// BBox is the bounding box of the line on the page
	BBox BBox

	// Text is the recognized text content
	Text string

	// FontSize is the engine's estimate of the line's font size in page
	// units. Zero or negative values mean "unknown" and are excluded from
	// page-level font size averaging.
	FontSize float64
}

// PageDimensions holds the width and height of a single page.
type PageDimensions struct {
	Width  float64
	Height float64
}

// Default page dimensions used when a page has no dimension entry, so
// position-based heuristics never divide by zero.
const (
	DefaultPageWidth  = 600.0
	DefaultPageHeight = 800.0
)

// DefaultPageDimensions returns the fallback page size.
func DefaultPageDimensions() PageDimensions {
	return PageDimensions{Width: DefaultPageWidth, Height: DefaultPageHeight}
}

// OrDefault returns the dimensions, substituting the fallback size for any
// non-positive axis.
func (d PageDimensions) OrDefault() PageDimensions {
	if d.Width <= 0 {
		d.Width = DefaultPageWidth
	}
	if d.Height <= 0 {
		d.Height = DefaultPageHeight
	}
	return d
}
