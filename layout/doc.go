// Package layout reconstructs raw line-level OCR output into semantically
// categorized paragraph blocks.
//
// The [Processor] orchestrates the full per-page pipeline:
//
//	processor := layout.NewProcessor()
//	result := processor.Process(layout.Input{
//		Lines:          lines,
//		PageDimensions: dims,
//	})
//
// The pipeline stages, each usable independently:
//
//   - [MetricsEstimator] - per-page font size and line spacing baselines
//   - [Merger] - groups raw lines into paragraph-level blocks
//   - [HeuristicCategorizer] - assigns categories from position, size, and
//     text shape when no layout-detection data is available
//   - [RegionCategorizer] - assigns categories by bounding-box overlap
//     against externally detected layout regions
//   - [AggregateCategories] - folds categorized blocks into per-category
//     statistics
//
// The transform is pure and deterministic: it performs no I/O, holds no
// state between calls, and produces identical output for identical input.
// Each detector takes a Config struct; the defaults carry empirically
// calibrated thresholds that should not be changed casually.
package layout
