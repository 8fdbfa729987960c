package ocr

import (
	"bytes"
	"fmt"
	"image"

	// Register decoders for the formats scanned pages arrive in.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/bookforge/reflow/model"
)

// PageSize probes a page image's dimensions without decoding the pixel
// data. It works whether or not OCR support is compiled in, so callers can
// resolve page dimensions for lines obtained elsewhere.
func PageSize(imageData []byte) (model.PageDimensions, error) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(imageData))
	if err != nil {
		return model.PageDimensions{}, fmt.Errorf("decoding image config: %w", err)
	}
	return model.PageDimensions{
		Width:  float64(cfg.Width),
		Height: float64(cfg.Height),
	}, nil
}
