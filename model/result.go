package model

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"strings"
)

// TextBlock is a paragraph-level block of reconstructed text: the values of
// a merged group of RawLines plus its assigned category. Blocks are built
// fresh on every processing run and never mutated afterwards.
type TextBlock struct {
	// ID is a deterministic identifier derived from the block's page,
	// position, and leading text, so repeated runs over the same input
	// produce identical ids.
	ID string

	// Page is the 0-based page index
	Page int

	// BBox is the minimal bounding box containing all source lines
	BBox BBox

	// Text is the concatenated text of the source lines
	Text string

	// FontSize is the rounded mean font size of the source lines
	FontSize float64

	// LineCount is the number of source lines merged into this block
	LineCount int

	// Category is the assigned semantic category
	Category CategoryID

	// Region is the coarse page region of the assigned category
	Region RegionClass

	// FromOCR marks the block as OCR-derived rather than extracted from
	// embedded document text
	FromOCR bool
}

// BlockID derives the deterministic id for a block from its page, index on
// the page, and the first 50 characters of its text.
func BlockID(page, index int, text string) string {
	head := text
	if r := []rune(head); len(r) > 50 {
		head = string(r[:50])
	}
	sum := md5.Sum([]byte(fmt.Sprintf("%d:%d:%s", page, index, head)))
	return hex.EncodeToString(sum[:])[:12]
}

// ProcessedResult is the output of one processing run: the categorized
// blocks in document order plus the categories that were actually used.
type ProcessedResult struct {
	// Blocks are all text blocks, ordered by ascending page index and, within
	// a page, by the order of their source lines
	Blocks []TextBlock

	// Categories maps category id to its populated Category. Categories with
	// zero assigned blocks are omitted.
	Categories map[CategoryID]Category
}

// BlockByID returns the block with the given id, or nil if absent.
func (r *ProcessedResult) BlockByID(id string) *TextBlock {
	for i := range r.Blocks {
		if r.Blocks[i].ID == id {
			return &r.Blocks[i]
		}
	}
	return nil
}

// SimilarBlocks returns the ids of all blocks sharing the category of the
// block with the given id, in document order. Returns nil if the id is
// unknown.
func (r *ProcessedResult) SimilarBlocks(id string) []string {
	target := r.BlockByID(id)
	if target == nil {
		return nil
	}

	var ids []string
	for _, b := range r.Blocks {
		if b.Category == target.Category {
			ids = append(ids, b.ID)
		}
	}
	return ids
}

// ExportText assembles the plain text of all blocks whose category is in
// the enabled set, in document order, with a blank line between pages.
// With no arguments it exports nothing; pass DefaultEnabled ids (or any
// selection) explicitly.
func (r *ProcessedResult) ExportText(enabled ...CategoryID) string {
	enabledSet := make(map[CategoryID]bool, len(enabled))
	for _, id := range enabled {
		enabledSet[id] = true
	}

	var sb strings.Builder
	currentPage := -1

	for _, b := range r.Blocks {
		if !enabledSet[b.Category] {
			continue
		}
		if b.Page != currentPage {
			if currentPage >= 0 {
				sb.WriteString("\n")
			}
			currentPage = b.Page
		}
		if sb.Len() > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(b.Text)
	}

	return sb.String()
}
