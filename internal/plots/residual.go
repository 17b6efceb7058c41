package plots

import "github.com/cparo/plotcore/internal/theme"

// ResidualConfig styles a residual-vs-fitted series.
type ResidualConfig struct {
	Shape MarkerShape
	Size  float64
	Color theme.Color
}

// ComputeResidual fits an OLS polynomial of the given degree to (x,y),
// then emits a scatter of (x, y - fitted(x)) plus a zero-reference
// line spanning x's range, the standard residual diagnostic plot
// companion to Regression.
func ComputeResidual(x, y []float64, degree int, cfg ResidualConfig) (Batch, error) {
	if err := requireEqualLen(x, y); err != nil {
		return Batch{}, err
	}
	if degree < 1 {
		degree = 1
	}
	if len(x) < degree+1 {
		return Batch{}, invalidParameter("residual plot needs more points than the polynomial degree")
	}
	coeffs, err := polyfit(x, y, degree)
	if err != nil {
		return Batch{}, err
	}

	residuals := make([]float64, len(x))
	for i := range x {
		residuals[i] = y[i] - evalPoly(coeffs, x[i])
	}

	scatter, err := ComputeScatter(x, residuals, ScatterConfig{Shape: cfg.Shape, Size: cfg.Size, Fill: cfg.Color, Edge: cfg.Color})
	if err != nil {
		return Batch{}, err
	}
	minX, maxX := MinMax(x)
	scatter.Lines = append(scatter.Lines, Line{X1: minX, Y1: 0, X2: maxX, Y2: 0, Color: cfg.Color, Width: 1})
	return scatter, nil
}
