// Package model defines the shared value types used throughout reflow:
// bounding boxes, raw OCR lines, page dimensions, layout regions, and the
// processed result produced by the layout package.
//
// All geometry uses raster coordinates: the origin is the top-left corner of
// the page and Y increases downward. This matches the coordinate system of
// Tesseract, hOCR, and layout-detection models, so OCR output can be fed in
// without axis flipping.
package model
