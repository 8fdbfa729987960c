package layout

import (
	"sort"

	"github.com/bookforge/reflow/model"
)

// Input is the in-memory snapshot one processing run operates on. Nothing in
// it is mutated.
type Input struct {
	// Lines are the raw OCR lines for all pages, grouped by their Page field
	Lines []model.RawLine

	// PageDimensions lists page sizes by page index. Pages without an entry
	// fall back to the default size.
	PageDimensions []model.PageDimensions

	// Regions optionally supplies layout-detection regions per page index.
	// A page with an entry here (even an empty one) is categorized by
	// region overlap; all other pages use the heuristic path.
	Regions map[int][]model.LayoutRegion
}

// ProcessorConfig holds the configuration of every pipeline stage.
type ProcessorConfig struct {
	// Metrics configures the page metrics estimator
	Metrics MetricsConfig

	// Merger configures the paragraph merger
	Merger MergerConfig

	// Heuristic configures the heuristic categorizer
	Heuristic HeuristicConfig

	// Region configures the region-based categorizer
	Region RegionConfig
}

// DefaultProcessorConfig returns a configuration with every stage at its
// defaults.
func DefaultProcessorConfig() ProcessorConfig {
	return ProcessorConfig{
		Metrics:   DefaultMetricsConfig(),
		Merger:    DefaultMergerConfig(),
		Heuristic: DefaultHeuristicConfig(),
		Region:    DefaultRegionConfig(),
	}
}

// ProcessStats counts what one run produced, for job completion telemetry.
type ProcessStats struct {
	PageCount     int
	LineCount     int
	BlockCount    int
	CategoryCount int
}

// Processor runs the full reconstruction pipeline: per-page metrics,
// paragraph merging, categorization, and final category aggregation. It is
// stateless between calls and safe to reuse.
type Processor struct {
	config      ProcessorConfig
	metrics     *MetricsEstimator
	merger      *Merger
	heuristic   *HeuristicCategorizer
	regionBased *RegionCategorizer
}

// NewProcessor creates a processor with default configuration.
func NewProcessor() *Processor {
	return NewProcessorWithConfig(DefaultProcessorConfig())
}

// NewProcessorWithConfig creates a processor with the specified
// configuration.
func NewProcessorWithConfig(config ProcessorConfig) *Processor {
	return &Processor{
		config:      config,
		metrics:     NewMetricsEstimatorWithConfig(config.Metrics),
		merger:      NewMergerWithConfig(config.Merger),
		heuristic:   NewHeuristicCategorizerWithConfig(config.Heuristic),
		regionBased: NewRegionCategorizerWithConfig(config.Region),
	}
}

// Process reconstructs the input into categorized text blocks. Pages are
// processed in ascending index order; within a page, blocks follow the
// vertical order of their source lines. Empty input yields an empty result,
// not an error.
func (p *Processor) Process(input Input) *model.ProcessedResult {
	result := &model.ProcessedResult{
		Categories: make(map[model.CategoryID]model.Category),
	}

	byPage := groupByPage(input.Lines)
	pages := make([]int, 0, len(byPage))
	for page := range byPage {
		pages = append(pages, page)
	}
	sort.Ints(pages)

	for _, page := range pages {
		lines := byPage[page]
		sort.SliceStable(lines, func(i, j int) bool {
			return lines[i].BBox.Y < lines[j].BBox.Y
		})

		dims := pageDimensions(input.PageDimensions, page)
		metrics := p.metrics.Estimate(lines)
		blocks := p.merger.Merge(lines, metrics.MedianLineHeight, dims.Width)

		regions, hasRegions := input.Regions[page]
		ctx := PageContext{
			Width:       dims.Width,
			Height:      dims.Height,
			CenterX:     dims.Width / 2,
			AvgFontSize: metrics.AvgFontSize,
		}

		for i := range blocks {
			block := &blocks[i]

			var category model.CategoryID
			if hasRegions {
				category = p.regionBased.Categorize(block, regions)
			} else {
				category = p.heuristic.Categorize(block, ctx)
			}

			region := model.RegionBody
			if cat, ok := CategoryByID(category); ok {
				region = cat.Region
			}

			result.Blocks = append(result.Blocks, model.TextBlock{
				ID:        model.BlockID(page, i, block.Text),
				Page:      block.Page,
				BBox:      block.BBox,
				Text:      block.Text,
				FontSize:  block.FontSize,
				LineCount: block.LineCount,
				Category:  category,
				Region:    region,
				FromOCR:   true,
			})
		}
	}

	result.Categories = AggregateCategories(result.Blocks)
	return result
}

// Stats summarizes a processed result for telemetry.
func Stats(input Input, result *model.ProcessedResult) ProcessStats {
	pages := make(map[int]bool)
	for _, line := range input.Lines {
		pages[line.Page] = true
	}
	return ProcessStats{
		PageCount:     len(pages),
		LineCount:     len(input.Lines),
		BlockCount:    len(result.Blocks),
		CategoryCount: len(result.Categories),
	}
}

// groupByPage splits lines by page index, preserving input order within each
// page.
func groupByPage(lines []model.RawLine) map[int][]model.RawLine {
	byPage := make(map[int][]model.RawLine)
	for _, line := range lines {
		byPage[line.Page] = append(byPage[line.Page], line)
	}
	return byPage
}

// pageDimensions returns the dimensions for a page, falling back to the
// default size when the entry is missing or degenerate.
func pageDimensions(dims []model.PageDimensions, page int) model.PageDimensions {
	if page >= 0 && page < len(dims) {
		return dims[page].OrDefault()
	}
	return model.DefaultPageDimensions()
}
