package plots

import "github.com/cparo/plotcore/internal/theme"

// LineConfig styles a Line series.
type LineConfig struct {
	Color theme.Color
	Width float64
	Style int
}

// ComputeLine passes (x,y) straight through into a single polyline
// primitive, in declaration order (spec §4.8 Line/Scatter contract).
func ComputeLine(x, y []float64, cfg LineConfig) (Batch, error) {
	if err := requireEqualLen(x, y); err != nil {
		return Batch{}, err
	}
	if len(x) == 0 {
		return Batch{}, emptyDataSet("line series has no points")
	}
	pts := make([]Point, len(x))
	for i := range x {
		pts[i] = Point{X: x[i], Y: y[i]}
	}
	return Batch{Polylines: []Polyline{{Points: pts, Color: cfg.Color, Width: cfg.Width, Style: cfg.Style}}}, nil
}

// ComputeArea emits a line plus a filled polygon closing down to a
// baseline y value (area/fill-between without a second series).
func ComputeArea(x, y []float64, baseline float64, cfg LineConfig, fill theme.Color) (Batch, error) {
	b, err := ComputeLine(x, y, cfg)
	if err != nil {
		return Batch{}, err
	}
	poly := make([]Point, 0, len(x)+2)
	for i := range x {
		poly = append(poly, Point{X: x[i], Y: y[i]})
	}
	poly = append(poly, Point{X: x[len(x)-1], Y: baseline}, Point{X: x[0], Y: baseline})
	b.Polygons = append(b.Polygons, Polygon{Points: poly, Color: fill, Fill: true})
	return b, nil
}

// ComputeFillBetween fills the region between two y series sharing x.
func ComputeFillBetween(x, y1, y2 []float64, fill theme.Color) (Batch, error) {
	if err := requireEqualLen(x, y1); err != nil {
		return Batch{}, err
	}
	if err := requireEqualLen(x, y2); err != nil {
		return Batch{}, err
	}
	if len(x) == 0 {
		return Batch{}, emptyDataSet("fill_between series has no points")
	}
	poly := make([]Point, 0, 2*len(x))
	for i := range x {
		poly = append(poly, Point{X: x[i], Y: y1[i]})
	}
	for i := len(x) - 1; i >= 0; i-- {
		poly = append(poly, Point{X: x[i], Y: y2[i]})
	}
	return Batch{Polygons: []Polygon{{Points: poly, Color: fill, Fill: true}}}, nil
}
