package plots

import "github.com/cparo/plotcore/internal/theme"

// BarOrientation selects which axis a bar's length runs along.
type BarOrientation int

const (
	BarVertical BarOrientation = iota
	BarHorizontal
)

// BarConfig styles a Bar series.
type BarConfig struct {
	Width       float64 // bar thickness in data units along the categorical axis
	Color       theme.Color
	Orientation BarOrientation
}

// ComputeBar turns category positions and values into axis-aligned
// Rect primitives, one per category, anchored to a zero baseline.
func ComputeBar(positions, values []float64, cfg BarConfig) (Batch, error) {
	if err := requireEqualLen(positions, values); err != nil {
		return Batch{}, err
	}
	if len(positions) == 0 {
		return Batch{}, emptyDataSet("bar series has no categories")
	}
	if cfg.Width <= 0 {
		return Batch{}, invalidParameter("bar width must be positive")
	}
	rects := make([]Rect, len(positions))
	half := cfg.Width / 2
	for i := range positions {
		v := values[i]
		switch cfg.Orientation {
		case BarHorizontal:
			x0, w := 0.0, v
			if v < 0 {
				x0, w = v, -v
			}
			rects[i] = Rect{X: x0, Y: positions[i] - half, W: w, H: cfg.Width, Color: cfg.Color, Fill: true}
		default:
			y0, h := 0.0, v
			if v < 0 {
				y0, h = v, -v
			}
			rects[i] = Rect{X: positions[i] - half, Y: y0, W: cfg.Width, H: h, Color: cfg.Color, Fill: true}
		}
	}
	return Batch{Rects: rects}, nil
}

// ComputeGroupedBar lays out len(groups) series of bars side by side
// within each category slot, each group shifted by its index so bars
// don't overlap.
func ComputeGroupedBar(positions []float64, groups [][]float64, colors []theme.Color, totalWidth float64) (Batch, error) {
	if len(groups) == 0 {
		return Batch{}, emptyDataSet("grouped bar has no groups")
	}
	if len(colors) != len(groups) {
		return Batch{}, invalidParameter("grouped bar needs one color per group")
	}
	if totalWidth <= 0 {
		return Batch{}, invalidParameter("grouped bar width must be positive")
	}
	n := len(groups)
	slotWidth := totalWidth / float64(n)
	var out Batch
	for gi, vals := range groups {
		if err := requireEqualLen(positions, vals); err != nil {
			return Batch{}, err
		}
		offset := (float64(gi)-float64(n-1)/2)*slotWidth
		shifted := make([]float64, len(positions))
		for i, p := range positions {
			shifted[i] = p + offset
		}
		b, err := ComputeBar(shifted, vals, BarConfig{Width: slotWidth, Color: colors[gi]})
		if err != nil {
			return Batch{}, err
		}
		out.Merge(b)
	}
	return out, nil
}
