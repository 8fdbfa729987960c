// Package hocr parses hOCR documents — the HTML-based interchange format
// for OCR results emitted by Tesseract and most cloud OCR engines — into
// reflow's input types: one Page of model.RawLine values per ocr_page
// element.
//
// Only the line level of the hOCR hierarchy is consumed; paragraph and
// area grouping in the source document is ignored, since reconstructing
// that structure is exactly what the layout package is for.
package hocr

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/text/unicode/norm"

	"github.com/bookforge/reflow/model"
)

// Page holds the parsed content of one ocr_page element.
type Page struct {
	// Index is the 0-based page index (ppageno when present, otherwise the
	// page's position in the document)
	Index int

	// Dimensions is the page size from the page's bbox
	Dimensions model.PageDimensions

	// Lines are the page's text lines in document order
	Lines []model.RawLine
}

// lineClasses are the hOCR element classes treated as text lines.
var lineClasses = map[string]bool{
	"ocr_line":      true,
	"ocr_header":    true,
	"ocr_caption":   true,
	"ocr_textfloat": true,
	"ocrx_line":     true,
}

// Open parses an hOCR file.
func Open(filename string) ([]Page, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

// Parse parses hOCR data from an io.Reader. Line text is NFC-normalized so
// that visually identical OCR output compares equal regardless of how the
// engine encoded combining characters.
func Parse(r io.Reader) ([]Page, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing hOCR: %w", err)
	}

	var pages []Page
	collectPages(doc, &pages)
	return pages, nil
}

// collectPages walks the tree for ocr_page elements.
func collectPages(n *html.Node, pages *[]Page) {
	if n.Type == html.ElementNode && hasClass(n, "ocr_page") {
		props := parseProperties(attr(n, "title"))

		page := Page{Index: len(*pages)}
		if no, ok := props.int("ppageno"); ok {
			page.Index = no
		}
		if bbox, ok := props.bbox(); ok {
			page.Dimensions = model.PageDimensions{
				Width:  bbox.Width,
				Height: bbox.Height,
			}
		}

		collectLines(n, &page)
		*pages = append(*pages, page)
		return
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectPages(c, pages)
	}
}

// collectLines walks a page subtree for line-class elements.
func collectLines(n *html.Node, page *Page) {
	if n.Type == html.ElementNode && isLineClass(n) {
		if line, ok := parseLine(n, page.Index); ok {
			page.Lines = append(page.Lines, line)
		}
		return
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectLines(c, page)
	}
}

// parseLine builds a RawLine from a line element. Lines without a bbox or
// without text are dropped.
func parseLine(n *html.Node, pageIndex int) (model.RawLine, bool) {
	props := parseProperties(attr(n, "title"))
	bbox, ok := props.bbox()
	if !ok {
		return model.RawLine{}, false
	}

	text := norm.NFC.String(collapseWhitespace(textContent(n)))
	if text == "" {
		return model.RawLine{}, false
	}

	// x_size is the engine's font size estimate; fall back to the line box
	// height when absent.
	fontSize := bbox.Height
	if size, ok := props.float("x_size"); ok && size > 0 {
		fontSize = size
	}

	return model.RawLine{
		Page:     pageIndex,
		BBox:     bbox,
		Text:     text,
		FontSize: fontSize,
	}, true
}

// properties holds the parsed key/value pairs of an hOCR title attribute,
// e.g. `bbox 105 66 823 113; x_size 47; x_wconf 96`.
type properties map[string][]string

// parseProperties splits a title attribute into named properties.
func parseProperties(title string) properties {
	props := make(properties)
	for _, part := range strings.Split(title, ";") {
		fields := strings.Fields(strings.TrimSpace(part))
		if len(fields) < 2 {
			continue
		}
		props[fields[0]] = fields[1:]
	}
	return props
}

// bbox decodes the `bbox x0 y0 x1 y1` property.
func (p properties) bbox() (model.BBox, bool) {
	args, ok := p["bbox"]
	if !ok || len(args) != 4 {
		return model.BBox{}, false
	}

	vals := make([]float64, 4)
	for i, arg := range args {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return model.BBox{}, false
		}
		vals[i] = v
	}

	return model.NewBBox(vals[0], vals[1], vals[2]-vals[0], vals[3]-vals[1]), true
}

// float decodes a single-argument numeric property.
func (p properties) float(name string) (float64, bool) {
	args, ok := p[name]
	if !ok || len(args) == 0 {
		return 0, false
	}
	v, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// int decodes a single-argument integer property.
func (p properties) int(name string) (int, bool) {
	args, ok := p[name]
	if !ok || len(args) == 0 {
		return 0, false
	}
	v, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, false
	}
	return v, true
}

// isLineClass reports whether the element carries one of the hOCR line
// classes.
func isLineClass(n *html.Node) bool {
	for _, class := range strings.Fields(attr(n, "class")) {
		if lineClasses[class] {
			return true
		}
	}
	return false
}

// hasClass reports whether the element carries the given class.
func hasClass(n *html.Node, class string) bool {
	for _, c := range strings.Fields(attr(n, "class")) {
		if c == class {
			return true
		}
	}
	return false
}

// attr returns the value of the named attribute, or "".
func attr(n *html.Node, name string) string {
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}

// textContent concatenates all descendant text nodes.
func textContent(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}

	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		sb.WriteString(textContent(c))
	}
	return sb.String()
}

// collapseWhitespace trims and collapses runs of whitespace to single
// spaces, the normal form for word-per-element hOCR markup.
func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
