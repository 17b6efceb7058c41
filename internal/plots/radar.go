package plots

import (
	"math"

	"github.com/cparo/plotcore/internal/theme"
)

// RadarConfig configures a radar (spider) chart: one axis per category,
// spaced evenly around a circle.
type RadarConfig struct {
	ThetaOffset float64
	Direction   AngularDirection
	Color       theme.Color
	Fill        bool
}

// ComputeRadar places len(values) axes evenly around a circle and
// connects the per-axis values as a closed polygon, reusing the polar
// projection's angle convention.
func ComputeRadar(values []float64, cfg RadarConfig) (Batch, error) {
	if len(values) < 3 {
		return Batch{}, invalidParameter("radar requires at least 3 axes")
	}
	n := len(values)
	step := 2 * math.Pi / float64(n)
	pts := make([]Point, n)
	for i, v := range values {
		theta := float64(i) * step
		pts[i] = polarToCartesian(theta, v, PolarConfig{ThetaOffset: cfg.ThetaOffset, Direction: cfg.Direction})
	}
	if cfg.Fill {
		return Batch{Polygons: []Polygon{{Points: pts, Color: cfg.Color, Fill: true}}}, nil
	}
	closed := append(append([]Point{}, pts...), pts[0])
	return Batch{Polylines: []Polyline{{Points: closed, Color: cfg.Color, Width: 1.5}}}, nil
}

// RadarAxisLines returns one Line per radar axis from the center to a
// given outer radius, for drawing the spoke grid.
func RadarAxisLines(count int, radius float64, cfg RadarConfig, color theme.Color) []Line {
	lines := make([]Line, count)
	step := 2 * math.Pi / float64(count)
	for i := 0; i < count; i++ {
		theta := float64(i) * step
		p := polarToCartesian(theta, radius, PolarConfig{ThetaOffset: cfg.ThetaOffset, Direction: cfg.Direction})
		lines[i] = Line{X1: 0, Y1: 0, X2: p.X, Y2: p.Y, Color: color, Width: 1}
	}
	return lines
}
