package plots

import "github.com/cparo/plotcore/internal/theme"

// ErrorBarConfig styles an error-bar series.
type ErrorBarConfig struct {
	Color    theme.Color
	CapRatio float64 // cap half-width as a fraction of the median point spacing
}

// ComputeErrorBars emits, for each point, a central line spanning
// y-yErr..y+yErr (and, when xErr is non-nil, x-xErr..x+xErr), plus
// whisker caps whose width is proportional to the series' point
// spacing rather than fixed in pixels, so dense and sparse series get
// proportionate caps.
func ComputeErrorBars(x, y, yErr []float64, xErr []float64, cfg ErrorBarConfig) (Batch, error) {
	if err := requireEqualLen(x, y); err != nil {
		return Batch{}, err
	}
	if err := requireEqualLen(x, yErr); err != nil {
		return Batch{}, err
	}
	if xErr != nil {
		if err := requireEqualLen(x, xErr); err != nil {
			return Batch{}, err
		}
	}
	if len(x) == 0 {
		return Batch{}, emptyDataSet("error bar series has no points")
	}

	ratio := cfg.CapRatio
	if ratio <= 0 {
		ratio = 0.2
	}
	spacing := medianSpacing(x)
	capHalf := spacing * ratio

	var b Batch
	for i := range x {
		lo, hi := y[i]-yErr[i], y[i]+yErr[i]
		b.Lines = append(b.Lines,
			Line{X1: x[i], Y1: lo, X2: x[i], Y2: hi, Color: cfg.Color, Width: 1},
			Line{X1: x[i] - capHalf, Y1: lo, X2: x[i] + capHalf, Y2: lo, Color: cfg.Color, Width: 1},
			Line{X1: x[i] - capHalf, Y1: hi, X2: x[i] + capHalf, Y2: hi, Color: cfg.Color, Width: 1},
		)
		if xErr != nil {
			xlo, xhi := x[i]-xErr[i], x[i]+xErr[i]
			b.Lines = append(b.Lines,
				Line{X1: xlo, Y1: y[i], X2: xhi, Y2: y[i], Color: cfg.Color, Width: 1},
				Line{X1: xlo, Y1: y[i] - capHalf, X2: xlo, Y2: y[i] + capHalf, Color: cfg.Color, Width: 1},
				Line{X1: xhi, Y1: y[i] - capHalf, X2: xhi, Y2: y[i] + capHalf, Color: cfg.Color, Width: 1},
			)
		}
	}
	return b, nil
}

// medianSpacing returns the median absolute gap between consecutive
// sorted x values, used to scale whisker caps proportionately to a
// series' density.
func medianSpacing(x []float64) float64 {
	if len(x) < 2 {
		return 1
	}
	sorted := Sorted(x)
	gaps := make([]float64, 0, len(sorted)-1)
	for i := 1; i < len(sorted); i++ {
		gaps = append(gaps, sorted[i]-sorted[i-1])
	}
	return Median(Sorted(gaps))
}
