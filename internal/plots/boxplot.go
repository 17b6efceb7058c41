package plots

import (
	"github.com/cparo/plotcore/internal/theme"
)

// OutlierMethod selects how ComputeBoxPlot classifies points beyond the
// whiskers.
type OutlierMethod int

const (
	OutlierIQR OutlierMethod = iota
	OutlierModifiedIQR
	OutlierStdDev
	OutlierNone
)

// WhiskerMethod selects how far the whiskers extend.
type WhiskerMethod int

const (
	WhiskerTukey WhiskerMethod = iota
	WhiskerMinMax
	WhiskerPercentile5_95
	WhiskerPercentile10_90
)

// BoxPlotConfig configures a single box.
type BoxPlotConfig struct {
	Position      float64 // categorical-axis position of the box center
	Width         float64
	OutlierMethod OutlierMethod
	WhiskerMethod WhiskerMethod
	ShowMean      bool
	ShowOutliers  bool
	Color         theme.Color
}

// BoxPlotStats holds the computed five-number summary plus outliers, for
// callers that want the numbers without the drawing primitives.
type BoxPlotStats struct {
	Q1, Median, Q3   float64
	IQR              float64
	WhiskerLo, WhiskerHi float64
	Mean             float64
	Outliers         []float64
}

// ComputeBoxPlot reduces data to a five-number summary, whisker extents,
// and an outlier set, then emits box/whisker/outlier-marker primitives.
func ComputeBoxPlot(data []float64, cfg BoxPlotConfig) (Batch, BoxPlotStats, error) {
	finite := Finite(data)
	if len(finite) == 0 {
		return Batch{}, BoxPlotStats{}, emptyDataSet("boxplot has no finite values")
	}
	if cfg.Width <= 0 {
		return Batch{}, BoxPlotStats{}, invalidParameter("boxplot width must be positive")
	}
	sorted := Sorted(finite)

	stats := BoxPlotStats{
		Q1:     Quantile(sorted, 0.25),
		Median: Quantile(sorted, 0.5),
		Q3:     Quantile(sorted, 0.75),
		Mean:   Mean(finite),
	}
	stats.IQR = stats.Q3 - stats.Q1

	lo, hi := whiskerBounds(sorted, stats, cfg.WhiskerMethod, cfg.OutlierMethod)
	stats.WhiskerLo, stats.WhiskerHi = lo, hi

	if cfg.ShowOutliers && cfg.OutlierMethod != OutlierNone {
		for _, v := range sorted {
			if v < lo || v > hi {
				stats.Outliers = append(stats.Outliers, v)
			}
		}
	}

	half := cfg.Width / 2
	x := cfg.Position
	var b Batch
	b.Polygons = append(b.Polygons, Polygon{
		Points: []Point{{x - half, stats.Q1}, {x + half, stats.Q1}, {x + half, stats.Q3}, {x - half, stats.Q3}},
		Color:  cfg.Color, Fill: true,
	})
	b.Lines = append(b.Lines,
		Line{X1: x - half, Y1: stats.Median, X2: x + half, Y2: stats.Median, Color: cfg.Color, Width: 2},
		Line{X1: x, Y1: stats.Q1, X2: x, Y2: lo, Color: cfg.Color, Width: 1},
		Line{X1: x, Y1: stats.Q3, X2: x, Y2: hi, Color: cfg.Color, Width: 1},
		Line{X1: x - half/2, Y1: lo, X2: x + half/2, Y2: lo, Color: cfg.Color, Width: 1},
		Line{X1: x - half/2, Y1: hi, X2: x + half/2, Y2: hi, Color: cfg.Color, Width: 1},
	)
	if cfg.ShowMean {
		b.Markers = append(b.Markers, Marker{X: x, Y: stats.Mean, Shape: MarkerDiamond, Size: cfg.Width / 3, Fill: cfg.Color})
	}
	for _, v := range stats.Outliers {
		b.Markers = append(b.Markers, Marker{X: x, Y: v, Shape: MarkerCircle, Size: cfg.Width / 4, Fill: cfg.Color})
	}
	return b, stats, nil
}

func whiskerBounds(sorted []float64, stats BoxPlotStats, wm WhiskerMethod, om OutlierMethod) (lo, hi float64) {
	if om == OutlierNone {
		return MinMax(sorted)
	}
	switch wm {
	case WhiskerMinMax:
		return MinMax(sorted)
	case WhiskerPercentile5_95:
		return Quantile(sorted, 0.05), Quantile(sorted, 0.95)
	case WhiskerPercentile10_90:
		return Quantile(sorted, 0.10), Quantile(sorted, 0.90)
	default: // WhiskerTukey: furthest data point within the outlier fence
		fenceLo, fenceHi := outlierFence(sorted, stats, om)
		lo, hi = sorted[0], sorted[len(sorted)-1]
		for _, v := range sorted {
			if v >= fenceLo {
				lo = v
				break
			}
		}
		for i := len(sorted) - 1; i >= 0; i-- {
			if sorted[i] <= fenceHi {
				hi = sorted[i]
				break
			}
		}
		return lo, hi
	}
}

func outlierFence(sorted []float64, stats BoxPlotStats, om OutlierMethod) (lo, hi float64) {
	switch om {
	case OutlierModifiedIQR:
		return stats.Q1 - 2.2*stats.IQR, stats.Q3 + 2.2*stats.IQR
	case OutlierStdDev:
		m, sd := Mean(sorted), StdDev(sorted)
		return m - 3*sd, m + 3*sd
	default: // OutlierIQR
		return stats.Q1 - 1.5*stats.IQR, stats.Q3 + 1.5*stats.IQR
	}
}
