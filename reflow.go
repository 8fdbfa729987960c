// Package reflow reconstructs raw, line-level OCR output into semantically
// categorized paragraph blocks suitable for editing and export.
//
// Basic usage:
//
//	result := reflow.FromLines(lines).
//		PageDimensions(dims).
//		Process()
//
// With layout-detection regions for specific pages:
//
//	result := reflow.FromLines(lines).
//		PageDimensions(dims).
//		LayoutRegions(0, regions).
//		Process()
//
// The transform is pure: it reads only its inputs, mutates nothing it was
// given, and produces identical output for identical input on every call.
// For finer control over the pipeline, the lower-level layout package is
// also available.
package reflow

import (
	"github.com/bookforge/reflow/layout"
	"github.com/bookforge/reflow/model"
)

// Reconstructor accumulates the inputs for one processing run. Zero or more
// option methods are chained between FromLines and the terminal Process
// call. A Reconstructor is single-use; build a new one per run.
type Reconstructor struct {
	input  layout.Input
	config layout.ProcessorConfig
}

// FromLines starts a reconstruction from raw OCR lines. Lines carry their
// own page index; they may arrive in any order.
func FromLines(lines []model.RawLine) *Reconstructor {
	return &Reconstructor{
		input:  layout.Input{Lines: lines},
		config: layout.DefaultProcessorConfig(),
	}
}

// PageDimensions supplies page sizes indexed by page number. Pages without
// an entry fall back to the default 600x800 size.
func (r *Reconstructor) PageDimensions(dims []model.PageDimensions) *Reconstructor {
	r.input.PageDimensions = dims
	return r
}

// LayoutRegions supplies layout-detection regions for one page, switching
// that page from heuristic to region-based categorization. May be called
// once per page.
func (r *Reconstructor) LayoutRegions(page int, regions []model.LayoutRegion) *Reconstructor {
	if r.input.Regions == nil {
		r.input.Regions = make(map[int][]model.LayoutRegion)
	}
	r.input.Regions[page] = regions
	return r
}

// WithConfig replaces the pipeline configuration. The defaults carry the
// calibrated thresholds; override only with recalibrated values.
func (r *Reconstructor) WithConfig(config layout.ProcessorConfig) *Reconstructor {
	r.config = config
	return r
}

// Process runs the reconstruction and returns the categorized blocks plus
// the per-category statistics. It never fails on well-formed input: empty
// input yields an empty result.
func (r *Reconstructor) Process() *model.ProcessedResult {
	return layout.NewProcessorWithConfig(r.config).Process(r.input)
}

// Stats summarizes what a run produced, for job completion telemetry.
func (r *Reconstructor) Stats(result *model.ProcessedResult) layout.ProcessStats {
	return layout.Stats(r.input, result)
}

// DefaultEnabledCategories returns the category ids enabled by default:
// everything except page headers and footers. It is the usual argument to
// ProcessedResult.ExportText.
func DefaultEnabledCategories() []model.CategoryID {
	return layout.DefaultEnabledCategories()
}
