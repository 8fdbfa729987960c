//go:build ocr

package ocr

import (
	"fmt"
	"strings"

	"github.com/otiai10/gosseract/v2"

	"github.com/bookforge/reflow/model"
)

// Client wraps Tesseract for line-level recognition.
type Client struct {
	client *gosseract.Client
}

// New creates a new OCR client. The client should be closed when no longer
// needed to release engine resources.
func New() (*Client, error) {
	return &Client{client: gosseract.NewClient()}, nil
}

// Close releases OCR resources. It is safe to call on a nil client.
func (c *Client) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}

// SetLanguage sets the language(s) for recognition. Multiple languages can
// be given as a "+" separated string (e.g. "eng+fra"). Default is "eng".
func (c *Client) SetLanguage(lang string) error {
	return c.client.SetLanguage(lang)
}

// SetPageSegMode sets the page segmentation mode.
func (c *Client) SetPageSegMode(mode PageSegMode) error {
	return c.client.SetPageSegMode(gosseract.PageSegMode(mode))
}

// RecognizeLines performs OCR on a page image (PNG, TIFF, JPEG, etc.) and
// returns one RawLine per recognized text line, tagged with the given page
// index, along with the page dimensions in pixels. Lines with empty text
// are dropped.
func (c *Client) RecognizeLines(imageData []byte, pageIndex int) ([]model.RawLine, model.PageDimensions, error) {
	dims, err := PageSize(imageData)
	if err != nil {
		return nil, model.PageDimensions{}, err
	}

	if err := c.client.SetImageFromBytes(imageData); err != nil {
		return nil, model.PageDimensions{}, fmt.Errorf("setting image: %w", err)
	}

	boxes, err := c.client.GetBoundingBoxes(gosseract.RIL_TEXTLINE)
	if err != nil {
		return nil, model.PageDimensions{}, fmt.Errorf("recognizing lines: %w", err)
	}

	var lines []model.RawLine
	for _, b := range boxes {
		text := strings.TrimSpace(b.Word)
		if text == "" {
			continue
		}
		height := float64(b.Box.Dy())
		lines = append(lines, model.RawLine{
			Page: pageIndex,
			BBox: model.NewBBox(
				float64(b.Box.Min.X),
				float64(b.Box.Min.Y),
				float64(b.Box.Dx()),
				height,
			),
			Text: text,
			// Tesseract reports no per-line font size; the line box height
			// is a workable stand-in since all downstream thresholds are
			// relative.
			FontSize: height,
		})
	}

	return lines, dims, nil
}
