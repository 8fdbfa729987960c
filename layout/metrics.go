package layout

import (
	"sort"

	"github.com/bookforge/reflow/model"
)

// PageMetrics holds the per-page baselines every other detector consumes.
type PageMetrics struct {
	// AvgFontSize is the mean of the positive font sizes on the page
	AvgFontSize float64

	// MedianLineHeight is the median vertical distance between consecutive
	// lines, after discarding outlier gaps
	MedianLineHeight float64
}

// MetricsConfig holds configuration for page metrics estimation.
type MetricsConfig struct {
	// DefaultFontSize is used when no line carries a positive font size
	// Default: 12
	DefaultFontSize float64

	// OutlierGapRatio discards vertical deltas larger than
	// avgFontSize * OutlierGapRatio (column breaks, images, noise)
	// Default: 4.0
	OutlierGapRatio float64

	// FallbackSpacingRatio sets MedianLineHeight to
	// avgFontSize * FallbackSpacingRatio when no valid deltas remain
	// Default: 1.5
	FallbackSpacingRatio float64
}

// DefaultMetricsConfig returns sensible default configuration.
func DefaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		DefaultFontSize:      12.0,
		OutlierGapRatio:      4.0,
		FallbackSpacingRatio: 1.5,
	}
}

// MetricsEstimator computes per-page font size and line spacing baselines.
type MetricsEstimator struct {
	config MetricsConfig
}

// NewMetricsEstimator creates an estimator with default configuration.
func NewMetricsEstimator() *MetricsEstimator {
	return &MetricsEstimator{config: DefaultMetricsConfig()}
}

// NewMetricsEstimatorWithConfig creates an estimator with custom configuration.
func NewMetricsEstimatorWithConfig(config MetricsConfig) *MetricsEstimator {
	return &MetricsEstimator{config: config}
}

// Estimate computes the metrics for one page's lines. The median (not the
// mean) of line-to-line spacing is used because it is robust to the handful
// of large gaps caused by embedded images or multi-column layouts.
func (e *MetricsEstimator) Estimate(lines []model.RawLine) PageMetrics {
	avg := e.averageFontSize(lines)
	return PageMetrics{
		AvgFontSize:      avg,
		MedianLineHeight: e.medianLineHeight(lines, avg),
	}
}

// averageFontSize computes the mean of the positive font sizes, falling back
// to the configured default when none are positive.
func (e *MetricsEstimator) averageFontSize(lines []model.RawLine) float64 {
	total := 0.0
	count := 0
	for _, line := range lines {
		if line.FontSize > 0 {
			total += line.FontSize
			count++
		}
	}
	if count == 0 {
		return e.config.DefaultFontSize
	}
	return total / float64(count)
}

// medianLineHeight computes the median vertical delta between consecutive
// lines sorted by vertical position. Deltas that are non-positive or exceed
// avgFontSize*OutlierGapRatio are discarded as outliers.
func (e *MetricsEstimator) medianLineHeight(lines []model.RawLine, avgFontSize float64) float64 {
	ys := make([]float64, len(lines))
	for i, line := range lines {
		ys[i] = line.BBox.Y
	}
	sort.Float64s(ys)

	maxGap := avgFontSize * e.config.OutlierGapRatio
	var deltas []float64
	for i := 1; i < len(ys); i++ {
		delta := ys[i] - ys[i-1]
		if delta > 0 && delta <= maxGap {
			deltas = append(deltas, delta)
		}
	}

	if len(deltas) == 0 {
		return avgFontSize * e.config.FallbackSpacingRatio
	}

	sort.Float64s(deltas)
	return deltas[len(deltas)/2]
}
