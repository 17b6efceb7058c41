package plots

import "github.com/cparo/plotcore/internal/theme"

// ScatterConfig styles a Scatter series.
type ScatterConfig struct {
	Shape MarkerShape
	Size  float64
	Fill  theme.Color
	Edge  theme.Color
}

// ComputeScatter passes (x,y) straight through into marker-placement
// primitives, one per point, honoring shape/size/fill/edge (spec §4.8
// Line/Scatter contract).
func ComputeScatter(x, y []float64, cfg ScatterConfig) (Batch, error) {
	if err := requireEqualLen(x, y); err != nil {
		return Batch{}, err
	}
	if len(x) == 0 {
		return Batch{}, emptyDataSet("scatter series has no points")
	}
	markers := make([]Marker, len(x))
	for i := range x {
		markers[i] = Marker{X: x[i], Y: y[i], Shape: cfg.Shape, Size: cfg.Size, Fill: cfg.Fill, Edge: cfg.Edge}
	}
	return Batch{Markers: markers}, nil
}

// ComputeScatterSized is the bubble-chart variant: per-point size driven
// by a third series instead of a constant.
func ComputeScatterSized(x, y, size []float64, cfg ScatterConfig) (Batch, error) {
	if err := requireEqualLen(x, y); err != nil {
		return Batch{}, err
	}
	if err := requireEqualLen(x, size); err != nil {
		return Batch{}, err
	}
	if len(x) == 0 {
		return Batch{}, emptyDataSet("scatter series has no points")
	}
	markers := make([]Marker, len(x))
	for i := range x {
		markers[i] = Marker{X: x[i], Y: y[i], Shape: cfg.Shape, Size: size[i], Fill: cfg.Fill, Edge: cfg.Edge}
	}
	return Batch{Markers: markers}, nil
}
