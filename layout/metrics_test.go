package layout

import (
	"testing"

	"github.com/bookforge/reflow/model"
)

// makeLine creates a test line for layout tests.
func makeLine(page int, x, y, width, height, fontSize float64, text string) model.RawLine {
	return model.RawLine{
		Page:     page,
		BBox:     model.NewBBox(x, y, width, height),
		Text:     text,
		FontSize: fontSize,
	}
}

func TestMetricsEstimator_AverageFontSize(t *testing.T) {
	estimator := NewMetricsEstimator()
	lines := []model.RawLine{
		makeLine(0, 72, 100, 200, 12, 10, "one"),
		makeLine(0, 72, 114, 200, 12, 14, "two"),
	}

	metrics := estimator.Estimate(lines)

	if metrics.AvgFontSize != 12 {
		t.Errorf("Expected avg font size 12, got %f", metrics.AvgFontSize)
	}
}

func TestMetricsEstimator_NonPositiveFontSizesExcluded(t *testing.T) {
	estimator := NewMetricsEstimator()
	lines := []model.RawLine{
		makeLine(0, 72, 100, 200, 12, 0, "no size"),
		makeLine(0, 72, 114, 200, 12, -3, "negative"),
		makeLine(0, 72, 128, 200, 12, 16, "sized"),
	}

	metrics := estimator.Estimate(lines)

	if metrics.AvgFontSize != 16 {
		t.Errorf("Expected avg font size 16, got %f", metrics.AvgFontSize)
	}
}

func TestMetricsEstimator_DefaultFontSize(t *testing.T) {
	estimator := NewMetricsEstimator()
	lines := []model.RawLine{
		makeLine(0, 72, 100, 200, 12, 0, "one"),
		makeLine(0, 72, 114, 200, 12, 0, "two"),
	}

	metrics := estimator.Estimate(lines)

	if metrics.AvgFontSize != 12 {
		t.Errorf("Expected default font size 12, got %f", metrics.AvgFontSize)
	}
}

func TestMetricsEstimator_MedianLineHeight(t *testing.T) {
	estimator := NewMetricsEstimator()
	lines := []model.RawLine{
		makeLine(0, 72, 100, 200, 12, 12, "one"),
		makeLine(0, 72, 114, 200, 12, 12, "two"),
		makeLine(0, 72, 128, 200, 12, 12, "three"),
		makeLine(0, 72, 144, 200, 12, 12, "four"),
	}

	metrics := estimator.Estimate(lines)

	// Deltas are 14, 14, 16; the median is 14.
	if metrics.MedianLineHeight != 14 {
		t.Errorf("Expected median line height 14, got %f", metrics.MedianLineHeight)
	}
}

func TestMetricsEstimator_OutlierGapsDiscarded(t *testing.T) {
	estimator := NewMetricsEstimator()
	// A 272-unit gap (an embedded image) must not drag the median up:
	// it exceeds avgFontSize*4 = 48 and is discarded.
	lines := []model.RawLine{
		makeLine(0, 72, 100, 200, 12, 12, "one"),
		makeLine(0, 72, 114, 200, 12, 12, "two"),
		makeLine(0, 72, 128, 200, 12, 12, "three"),
		makeLine(0, 72, 400, 200, 12, 12, "after image"),
	}

	metrics := estimator.Estimate(lines)

	if metrics.MedianLineHeight != 14 {
		t.Errorf("Expected median line height 14, got %f", metrics.MedianLineHeight)
	}
}

func TestMetricsEstimator_UnsortedInput(t *testing.T) {
	estimator := NewMetricsEstimator()
	lines := []model.RawLine{
		makeLine(0, 72, 128, 200, 12, 12, "three"),
		makeLine(0, 72, 100, 200, 12, 12, "one"),
		makeLine(0, 72, 114, 200, 12, 12, "two"),
	}

	metrics := estimator.Estimate(lines)

	if metrics.MedianLineHeight != 14 {
		t.Errorf("Expected median line height 14, got %f", metrics.MedianLineHeight)
	}
}

func TestMetricsEstimator_FallbackLineHeight(t *testing.T) {
	estimator := NewMetricsEstimator()
	lines := []model.RawLine{
		makeLine(0, 72, 100, 200, 12, 12, "only line"),
	}

	metrics := estimator.Estimate(lines)

	// No deltas at all: fall back to avgFontSize * 1.5.
	if metrics.MedianLineHeight != 18 {
		t.Errorf("Expected fallback line height 18, got %f", metrics.MedianLineHeight)
	}
}

func TestMetricsEstimator_DuplicateLinesYieldFallback(t *testing.T) {
	estimator := NewMetricsEstimator()
	// Identical Y positions produce only non-positive deltas.
	lines := []model.RawLine{
		makeLine(0, 72, 100, 200, 12, 12, "dup"),
		makeLine(0, 72, 100, 200, 12, 12, "dup"),
	}

	metrics := estimator.Estimate(lines)

	if metrics.MedianLineHeight != 18 {
		t.Errorf("Expected fallback line height 18, got %f", metrics.MedianLineHeight)
	}
}
