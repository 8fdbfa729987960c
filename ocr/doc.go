// Package ocr adapts the Tesseract OCR engine to reflow's input boundary:
// it recognizes page images and returns line-level model.RawLine values
// ready for layout processing.
//
// The engine binding (via gosseract) is compiled in only with the "ocr"
// build tag, since it requires Tesseract and cgo:
//
//	go build -tags ocr
//
// On macOS, install Tesseract via:
//
//	brew install tesseract
//
// On Ubuntu/Debian:
//
//	apt-get install tesseract-ocr
//
// Without the tag, all recognition methods return ErrOCRNotEnabled.
// PageSize works in either mode.
package ocr
