package layout

import (
	"math"
	"regexp"
	"unicode"
	"unicode/utf8"

	"github.com/bookforge/reflow/model"
)

// HeuristicConfig holds configuration for heuristic categorization. The zone
// fractions and ratios are empirically calibrated against scanned book pages.
type HeuristicConfig struct {
	// HeaderZone is the fraction of page height from the top that counts as
	// the header zone
	// Default: 0.06
	HeaderZone float64

	// FooterZone is the fraction of page height from the bottom that counts
	// as the footer zone
	// Default: 0.06
	FooterZone float64

	// ChapterZone is the top fraction of the page where chapter numbers
	// appear
	// Default: 0.20
	ChapterZone float64

	// TitleZone is the top fraction of the page where all-caps titles appear
	// Default: 0.35
	TitleZone float64

	// LargeFontTitleZone is the top fraction of the page where oversized
	// single lines count as titles
	// Default: 0.40
	LargeFontTitleZone float64

	// TitleFontRatio is the multiple of the page's average font size above
	// which a line counts as oversized
	// Default: 1.15
	TitleFontRatio float64

	// CenterTolerance is the horizontal center offset, as a fraction of page
	// width, under which a block counts as centered
	// Default: 0.15
	CenterTolerance float64

	// MaxHeaderLength is the maximum text length for headers and chapter
	// numbers
	// Default: 30
	MaxHeaderLength int

	// MaxTitleLength is the maximum text length for titles, headings, and
	// attributions
	// Default: 80
	MaxTitleLength int

	// MaxPageNumberLength is the text length under which a footer-zone line
	// passes the page-number shape test outright
	// Default: 15
	MaxPageNumberLength int
}

// DefaultHeuristicConfig returns sensible default configuration.
func DefaultHeuristicConfig() HeuristicConfig {
	return HeuristicConfig{
		HeaderZone:          0.06,
		FooterZone:          0.06,
		ChapterZone:         0.20,
		TitleZone:           0.35,
		LargeFontTitleZone:  0.40,
		TitleFontRatio:      1.15,
		CenterTolerance:     0.15,
		MaxHeaderLength:     30,
		MaxTitleLength:      80,
		MaxPageNumberLength: 15,
	}
}

// PageContext carries the per-page values the heuristic rules evaluate
// against a block.
type PageContext struct {
	// Width and Height are the page dimensions
	Width  float64
	Height float64

	// CenterX is the horizontal center of the page
	CenterX float64

	// AvgFontSize is the page's average font size from the metrics estimator
	AvgFontSize float64
}

// blockFacts holds the derived signals the rules test. Computing them once
// keeps each rule a plain predicate.
type blockFacts struct {
	block      *MergedBlock
	page       PageContext
	relY       float64 // block top as a fraction of page height
	textLength int     // rune count
	centered   bool    // horizontal center within tolerance of page center
}

// heuristicRule pairs a predicate with the category it assigns. Rules are
// evaluated in order; the first match wins.
type heuristicRule struct {
	name     string
	category model.CategoryID
	match    func(f blockFacts, cfg HeuristicConfig) bool
}

var (
	pageNumberPattern = regexp.MustCompile(`^[0-9\s\-\x{2013}\x{2014}]+$`)
	pageWordPattern   = regexp.MustCompile(`(?i)^page\s+\d+$`)
	arabicNumberExpr  = regexp.MustCompile(`^[0-9]+\.?$`)
	romanNumberExpr   = regexp.MustCompile(`(?i)^[ivxlcdm]+\.?$`)
)

// heuristicRules is the ordered rule chain. Order is significant: a block in
// the top 6% matching both header and title shapes is a header.
var heuristicRules = []heuristicRule{
	{
		name:     "header",
		category: model.CategoryHeader,
		match: func(f blockFacts, cfg HeuristicConfig) bool {
			return f.relY < cfg.HeaderZone &&
				f.block.LineCount == 1 &&
				f.textLength < cfg.MaxHeaderLength
		},
	},
	{
		name:     "footer",
		category: model.CategoryFooter,
		match: func(f blockFacts, cfg HeuristicConfig) bool {
			return f.relY > 1-cfg.FooterZone &&
				f.block.LineCount == 1 &&
				looksLikePageNumber(f.block.Text, f.textLength, cfg)
		},
	},
	{
		name:     "attribution",
		category: model.CategoryAttribution,
		match: func(f blockFacts, cfg HeuristicConfig) bool {
			return startsWithDashMarker(f.block.Text) &&
				f.textLength < cfg.MaxTitleLength &&
				f.block.LineCount == 1
		},
	},
	{
		name:     "chapter-number",
		category: model.CategoryHeading,
		match: func(f blockFacts, cfg HeuristicConfig) bool {
			return f.textLength < cfg.MaxHeaderLength &&
				f.relY < cfg.ChapterZone &&
				f.block.LineCount == 1 &&
				looksLikeChapterNumber(f.block.Text)
		},
	},
	{
		name:     "title",
		category: model.CategoryTitle,
		match: func(f blockFacts, cfg HeuristicConfig) bool {
			if isAllCaps(f.block.Text) &&
				f.relY < cfg.TitleZone &&
				f.textLength < cfg.MaxTitleLength {
				return true
			}
			return f.block.FontSize > f.page.AvgFontSize*cfg.TitleFontRatio &&
				f.textLength < cfg.MaxTitleLength &&
				f.relY < cfg.LargeFontTitleZone &&
				f.block.LineCount == 1
		},
	},
	{
		name:     "heading",
		category: model.CategoryHeading,
		match: func(f blockFacts, cfg HeuristicConfig) bool {
			return isAllCaps(f.block.Text) &&
				f.textLength < cfg.MaxTitleLength &&
				f.block.LineCount == 1 &&
				f.relY >= cfg.TitleZone
		},
	},
}

// HeuristicCategorizer assigns a category to a merged block from its
// position, size, and text shape. It is used for pages that have no
// externally supplied layout regions.
type HeuristicCategorizer struct {
	config HeuristicConfig
}

// NewHeuristicCategorizer creates a categorizer with default configuration.
func NewHeuristicCategorizer() *HeuristicCategorizer {
	return &HeuristicCategorizer{config: DefaultHeuristicConfig()}
}

// NewHeuristicCategorizerWithConfig creates a categorizer with custom
// configuration.
func NewHeuristicCategorizerWithConfig(config HeuristicConfig) *HeuristicCategorizer {
	return &HeuristicCategorizer{config: config}
}

// Categorize returns the category for a block on a page with the given
// context. The default is body; there is deliberately no caption rule (an
// earlier one miscategorized body text), so only the region path produces
// captions.
func (c *HeuristicCategorizer) Categorize(block *MergedBlock, page PageContext) model.CategoryID {
	facts := blockFacts{
		block:      block,
		page:       page,
		relY:       block.BBox.Y / page.Height,
		textLength: utf8.RuneCountInString(block.Text),
		// Centered is computed as a signal for future rules (caption
		// candidates in particular) but gates nothing today.
		centered: math.Abs(block.BBox.Center().X-page.CenterX) < page.Width*c.config.CenterTolerance,
	}

	for _, rule := range heuristicRules {
		if rule.match(facts, c.config) {
			return rule.category
		}
	}
	return model.CategoryBody
}

// looksLikePageNumber reports whether footer-zone text has a page-number
// shape: digits, dashes, and whitespace only, or "page N", or simply short.
func looksLikePageNumber(text string, length int, cfg HeuristicConfig) bool {
	if pageNumberPattern.MatchString(text) {
		return true
	}
	if pageWordPattern.MatchString(text) {
		return true
	}
	return length < cfg.MaxPageNumberLength
}

// looksLikeChapterNumber reports whether text is a bare numeral or Roman
// numeral, optionally with a trailing period.
func looksLikeChapterNumber(text string) bool {
	return arabicNumberExpr.MatchString(text) || romanNumberExpr.MatchString(text)
}

// isAllCaps reports whether text contains more than three letters and every
// letter is uppercase.
func isAllCaps(text string) bool {
	letters := 0
	for _, r := range text {
		if !unicode.IsLetter(r) {
			continue
		}
		if !unicode.IsUpper(r) {
			return false
		}
		letters++
	}
	return letters > 3
}
