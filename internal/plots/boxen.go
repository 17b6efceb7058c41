package plots

import (
	"math"

	"github.com/cparo/plotcore/internal/theme"
)

// BoxenConfig configures a letter-value (boxen) plot.
type BoxenConfig struct {
	Position float64
	Width    float64
	MaxLevels int // recursion depth cap; 0 means derive from sample size
	Color     theme.Color
}

// letterValue is one recursively-halved quantile band.
type letterValue struct {
	Lo, Hi float64
	Width  float64 // box drawing width at this level, narrower at deeper levels
}

// ComputeBoxen recursively subdivides the sorted data into successively
// narrower quantile bands ("letter values"): the widest band covers the
// median split, each subsequent level covers the tail halves of the
// previous one, down to a depth where remaining bands would hold fewer
// than two points.
func ComputeBoxen(data []float64, cfg BoxenConfig) (Batch, error) {
	finite := Finite(data)
	if len(finite) == 0 {
		return Batch{}, emptyDataSet("boxen has no finite values")
	}
	if cfg.Width <= 0 {
		return Batch{}, invalidParameter("boxen width must be positive")
	}
	sorted := Sorted(finite)
	n := len(sorted)

	levels := cfg.MaxLevels
	if levels <= 0 {
		levels = int(math.Ceil(math.Log2(float64(n)))) - 2
		if levels < 1 {
			levels = 1
		}
	}

	bands := letterValues(sorted, levels)
	var b Batch
	x := cfg.Position
	for i, lv := range bands {
		w := cfg.Width * lv.Width
		alpha := cfg.Color.A
		shade := uint8(float64(alpha) * (1 - 0.6*float64(i)/float64(len(bands))))
		col := theme.Color{R: cfg.Color.R, G: cfg.Color.G, B: cfg.Color.B, A: shade}
		b.Polygons = append(b.Polygons, Polygon{
			Points: []Point{{x - w/2, lv.Lo}, {x + w/2, lv.Lo}, {x + w/2, lv.Hi}, {x - w/2, lv.Hi}},
			Color:  col, Fill: true,
		})
	}
	median := Median(sorted)
	b.Lines = append(b.Lines, Line{X1: x - cfg.Width/2, Y1: median, X2: x + cfg.Width/2, Y2: median, Color: cfg.Color, Width: 2})
	return b, nil
}

// letterValues computes the successive letter-value bands: level k covers
// the central 1-2^-(k+1) fraction of the data via quantiles, each
// narrower in drawing width than the last.
func letterValues(sorted []float64, levels int) []letterValue {
	out := make([]letterValue, 0, levels)
	for k := 0; k < levels; k++ {
		p := math.Pow(2, -float64(k+2))
		lo := Quantile(sorted, p)
		hi := Quantile(sorted, 1-p)
		out = append(out, letterValue{Lo: lo, Hi: hi, Width: 1 - float64(k)/float64(levels+1)})
	}
	return out
}
