package plots

import "github.com/cparo/plotcore/internal/theme"

// StemConfig styles a Stem series.
type StemConfig struct {
	Baseline float64
	Color    theme.Color
	Shape    MarkerShape
	MarkerSize float64
}

// ComputeStem emits a vertical line from Baseline to each y value plus a
// marker at the tip, and a horizontal baseline line spanning the data's
// x extent.
func ComputeStem(x, y []float64, cfg StemConfig) (Batch, error) {
	if err := requireEqualLen(x, y); err != nil {
		return Batch{}, err
	}
	if len(x) == 0 {
		return Batch{}, emptyDataSet("stem series has no points")
	}

	var b Batch
	minX, maxX := x[0], x[0]
	for i := range x {
		if x[i] < minX {
			minX = x[i]
		}
		if x[i] > maxX {
			maxX = x[i]
		}
		b.Lines = append(b.Lines, Line{X1: x[i], Y1: cfg.Baseline, X2: x[i], Y2: y[i], Color: cfg.Color, Width: 1})
		b.Markers = append(b.Markers, Marker{X: x[i], Y: y[i], Shape: cfg.Shape, Size: cfg.MarkerSize, Fill: cfg.Color})
	}
	b.Lines = append(b.Lines, Line{X1: minX, Y1: cfg.Baseline, X2: maxX, Y2: cfg.Baseline, Color: cfg.Color, Width: 1})
	return b, nil
}
