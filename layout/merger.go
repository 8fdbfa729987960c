package layout

import (
	"math"
	"strings"
	"unicode"

	"github.com/bookforge/reflow/model"
)

// MergedBlock is a paragraph-level grouping of consecutive raw lines. It
// carries only values copied from its source lines; once built it is never
// mutated.
type MergedBlock struct {
	// Page is the 0-based page index
	Page int

	// BBox is the minimal bounding box containing all source lines
	BBox model.BBox

	// Text is the concatenated text of the source lines, with hyphenated
	// line breaks rejoined
	Text string

	// LineCount is the number of source lines in the block
	LineCount int

	// FontSize is the rounded mean font size of the source lines
	FontSize float64
}

// MergerConfig holds configuration for paragraph merging. All ratio values
// are multipliers of the page's median line height and are empirically
// calibrated; change them only with new calibration data.
type MergerConfig struct {
	// MaxGapRatio is the largest line gap still merged by the default rule
	// Default: 1.8
	MaxGapRatio float64

	// FarGapRatio is the gap beyond which lines never merge
	// Default: 2.5
	FarGapRatio float64

	// IndentRatio is the horizontal offset from the group's first line that
	// marks an indented new paragraph (after sentence-ending punctuation)
	// Default: 2.0
	IndentRatio float64

	// ShortLineGapRatio is the gap that ends a paragraph after a short line
	// with sentence-ending punctuation
	// Default: 1.3
	ShortLineGapRatio float64

	// ShortLineWidthRatio is the fraction of page width under which a line
	// counts as short
	// Default: 0.5
	ShortLineWidthRatio float64
}

// DefaultMergerConfig returns sensible default configuration.
func DefaultMergerConfig() MergerConfig {
	return MergerConfig{
		MaxGapRatio:         1.8,
		FarGapRatio:         2.5,
		IndentRatio:         2.0,
		ShortLineGapRatio:   1.3,
		ShortLineWidthRatio: 0.5,
	}
}

// Merger groups raw lines into paragraph-level blocks using content- and
// geometry-aware rules.
type Merger struct {
	config MergerConfig
}

// NewMerger creates a merger with default configuration.
func NewMerger() *Merger {
	return &Merger{config: DefaultMergerConfig()}
}

// NewMergerWithConfig creates a merger with custom configuration.
func NewMergerWithConfig(config MergerConfig) *Merger {
	return &Merger{config: config}
}

// Merge groups one page's lines (sorted by vertical position) into blocks.
// Every input line lands in exactly one block, in input order.
func (m *Merger) Merge(lines []model.RawLine, medianLineHeight, pageWidth float64) []MergedBlock {
	if len(lines) == 0 {
		return nil
	}

	var blocks []MergedBlock
	group := []model.RawLine{lines[0]}

	for _, line := range lines[1:] {
		if m.shouldMerge(group, line, medianLineHeight, pageWidth) {
			group = append(group, line)
			continue
		}
		blocks = append(blocks, finalizeBlock(group))
		group = []model.RawLine{line}
	}
	blocks = append(blocks, finalizeBlock(group))

	return blocks
}

// shouldMerge decides whether the candidate line continues the current
// group. The rules form an ordered chain: the first one that applies
// decides, and later rules are unreachable once an earlier one fires.
func (m *Merger) shouldMerge(group []model.RawLine, candidate model.RawLine, medianLineHeight, pageWidth float64) bool {
	prev := group[len(group)-1]

	// 1. Attribution marker: a leading dash starts its own block no matter
	// how close it sits to the previous line.
	if startsWithDashMarker(candidate.Text) {
		return false
	}

	// 2. Mid-word hyphen break: always continue the word.
	if endsWithHyphenBreak(prev.Text) {
		return true
	}

	// 3. Unfinished sentence flowing into a lowercase continuation
	// overrides spacing.
	if !endsWithSentencePunctuation(prev.Text) && startsWithLowercase(candidate.Text) {
		return true
	}

	// 4. Spatial gating.
	gap := candidate.BBox.Y - prev.BBox.Y
	if gap > m.config.FarGapRatio*medianLineHeight {
		return false
	}
	if gap <= 0 {
		// Overlapping or duplicate line
		return false
	}

	// 5. Indented new paragraph after a finished sentence.
	first := group[0]
	if candidate.BBox.X-first.BBox.X > m.config.IndentRatio*medianLineHeight &&
		endsWithSentencePunctuation(prev.Text) {
		return false
	}

	// 6. Short final line plus extra spacing marks a paragraph end.
	if prev.BBox.Width < m.config.ShortLineWidthRatio*pageWidth &&
		endsWithSentencePunctuation(prev.Text) &&
		gap > m.config.ShortLineGapRatio*medianLineHeight {
		return false
	}

	// 7. Default: merge within normal line spacing.
	return gap <= m.config.MaxGapRatio*medianLineHeight
}

// finalizeBlock builds a MergedBlock from a group of lines: union bounding
// box, rounded mean font size, and hyphen-aware text concatenation.
func finalizeBlock(group []model.RawLine) MergedBlock {
	bbox := group[0].BBox
	totalFontSize := 0.0
	for _, line := range group {
		bbox = bbox.Union(line.BBox)
		totalFontSize += line.FontSize
	}

	return MergedBlock{
		Page:      group[0].Page,
		BBox:      bbox,
		Text:      joinLineText(group),
		LineCount: len(group),
		FontSize:  math.Round(totalFontSize / float64(len(group))),
	}
}

// joinLineText concatenates line text in order. A line ending in a mid-word
// hyphen is joined to the next line with the hyphen dropped and no space
// inserted; all other lines are joined with a single space.
func joinLineText(group []model.RawLine) string {
	var sb strings.Builder
	for i, line := range group {
		text := line.Text
		if i < len(group)-1 && endsWithHyphenBreak(text) {
			sb.WriteString(strings.TrimSuffix(text, "-"))
			continue
		}
		sb.WriteString(text)
		if i < len(group)-1 {
			sb.WriteString(" ")
		}
	}
	return sb.String()
}

// startsWithDashMarker reports whether text begins with an em dash, en dash,
// or hyphen, the markers that open attribution lines.
func startsWithDashMarker(text string) bool {
	for _, r := range text {
		return r == '—' || r == '–' || r == '-'
	}
	return false
}

// endsWithHyphenBreak reports whether text ends with a letter followed by a
// hyphen, i.e. a word split across a line break.
func endsWithHyphenBreak(text string) bool {
	runes := []rune(text)
	if len(runes) < 2 {
		return false
	}
	return runes[len(runes)-1] == '-' && unicode.IsLetter(runes[len(runes)-2])
}

// endsWithSentencePunctuation reports whether text ends with sentence-ending
// punctuation, optionally followed by closing quotes.
func endsWithSentencePunctuation(text string) bool {
	runes := []rune(text)
	i := len(runes) - 1
	for i >= 0 && isClosingQuote(runes[i]) {
		i--
	}
	if i < 0 {
		return false
	}
	switch runes[i] {
	case '.', '!', '?', ':', ';':
		return true
	}
	return false
}

// isClosingQuote reports whether r is a quote character that may trail
// sentence punctuation.
func isClosingQuote(r rune) bool {
	switch r {
	case '"', '\'', '”', '’', '»':
		return true
	}
	return false
}

// startsWithLowercase reports whether the first rune of text is a lowercase
// letter.
func startsWithLowercase(text string) bool {
	for _, r := range text {
		return unicode.IsLower(r)
	}
	return false
}
