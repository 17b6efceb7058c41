package plots

import "github.com/cparo/plotcore/internal/theme"

// StepAnchor selects where a step's riser falls between consecutive
// points.
type StepAnchor int

const (
	StepPre StepAnchor = iota // riser at the left point's x, value holds until the next point
	StepPost                  // left point's value holds until the right point's x, where the riser sits
	StepMid                   // riser at the midpoint between the two x values
)

// StepConfig styles a Step series.
type StepConfig struct {
	Anchor StepAnchor
	Color  theme.Color
	Width  float64
}

// ComputeStep turns (x,y) into a staircase polyline, with the riser
// position per segment controlled by Anchor.
func ComputeStep(x, y []float64, cfg StepConfig) (Batch, error) {
	if err := requireEqualLen(x, y); err != nil {
		return Batch{}, err
	}
	if len(x) == 0 {
		return Batch{}, emptyDataSet("step series has no points")
	}
	if len(x) == 1 {
		return Batch{Polylines: []Polyline{{Points: []Point{{x[0], y[0]}}, Color: cfg.Color, Width: cfg.Width}}}, nil
	}

	pts := make([]Point, 0, 2*len(x)-1)
	pts = append(pts, Point{x[0], y[0]})
	for i := 1; i < len(x); i++ {
		switch cfg.Anchor {
		case StepPost:
			pts = append(pts, Point{x[i], y[i-1]}, Point{x[i], y[i]})
		case StepMid:
			mid := (x[i-1] + x[i]) / 2
			pts = append(pts, Point{mid, y[i-1]}, Point{mid, y[i]}, Point{x[i], y[i]})
		default: // StepPre
			pts = append(pts, Point{x[i-1], y[i]}, Point{x[i], y[i]})
		}
	}
	return Batch{Polylines: []Polyline{{Points: pts, Color: cfg.Color, Width: cfg.Width}}}, nil
}
