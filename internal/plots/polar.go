package plots

import (
	"math"

	"github.com/cparo/plotcore/internal/theme"
)

// AngularDirection selects whether increasing angle sweeps
// counter-clockwise or clockwise.
type AngularDirection int

const (
	CounterClockwise AngularDirection = iota
	Clockwise
)

// PolarConfig configures the (theta, r) to (x, y) projection shared by
// polar-line plots.
type PolarConfig struct {
	ThetaOffset float64 // radians added to every angle before projection
	Direction   AngularDirection
	Color       theme.Color
	Width       float64
}

// ComputePolar projects (theta, r) pairs onto a Cartesian plane via
// x = r*cos(theta'), y = r*sin(theta'), where theta' applies ThetaOffset
// and Direction, then connects the projected points as a closed
// polyline (polar plots conventionally wrap back to the first point).
func ComputePolar(theta, r []float64, cfg PolarConfig) (Batch, error) {
	if err := requireEqualLen(theta, r); err != nil {
		return Batch{}, err
	}
	if len(theta) == 0 {
		return Batch{}, emptyDataSet("polar series has no points")
	}
	pts := make([]Point, len(theta)+1)
	for i := range theta {
		pts[i] = polarToCartesian(theta[i], r[i], cfg)
	}
	pts[len(theta)] = pts[0]
	return Batch{Polylines: []Polyline{{Points: pts, Color: cfg.Color, Width: cfg.Width}}}, nil
}

func polarToCartesian(theta, r float64, cfg PolarConfig) Point {
	t := theta
	if cfg.Direction == Clockwise {
		t = -t
	}
	t += cfg.ThetaOffset
	return Point{X: r * math.Cos(t), Y: r * math.Sin(t)}
}
