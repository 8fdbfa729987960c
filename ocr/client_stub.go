//go:build !ocr

package ocr

import "github.com/bookforge/reflow/model"

// Client is the stub used when OCR support is not compiled in. All
// recognition methods return ErrOCRNotEnabled.
type Client struct{}

// New creates a stub client. It never fails, so callers can defer the
// decision to the first recognition call.
func New() (*Client, error) {
	return &Client{}, nil
}

// Close releases nothing. It is safe to call on a nil client.
func (c *Client) Close() error {
	return nil
}

// SetLanguage returns ErrOCRNotEnabled.
func (c *Client) SetLanguage(lang string) error {
	return ErrOCRNotEnabled
}

// SetPageSegMode returns ErrOCRNotEnabled.
func (c *Client) SetPageSegMode(mode PageSegMode) error {
	return ErrOCRNotEnabled
}

// RecognizeLines returns ErrOCRNotEnabled.
func (c *Client) RecognizeLines(imageData []byte, pageIndex int) ([]model.RawLine, model.PageDimensions, error) {
	return nil, model.PageDimensions{}, ErrOCRNotEnabled
}
