package plots

import "github.com/cparo/plotcore/internal/theme"

// ECDFRankMethod selects the denominator used for each step's height.
type ECDFRankMethod int

const (
	ECDFRankOverN ECDFRankMethod = iota // rank / n
	ECDFRankOverNPlusOne                // rank / (n + 1), keeps the curve strictly below 1
)

// ECDFConfig configures the empirical CDF step curve.
type ECDFConfig struct {
	Method ECDFRankMethod
	Color  theme.Color
}

// ComputeECDF sorts data and emits the empirical cumulative distribution
// as a right-continuous step polyline: a horizontal run at each rank's
// height followed by a vertical riser to the next.
func ComputeECDF(data []float64, cfg ECDFConfig) (Batch, error) {
	finite := Finite(data)
	if len(finite) == 0 {
		return Batch{}, emptyDataSet("ecdf has no finite values")
	}
	sorted := Sorted(finite)
	n := len(sorted)

	denom := float64(n)
	if cfg.Method == ECDFRankOverNPlusOne {
		denom = float64(n + 1)
	}

	pts := make([]Point, 0, 2*n)
	prevY := 0.0
	for i, v := range sorted {
		y := float64(i+1) / denom
		pts = append(pts, Point{X: v, Y: prevY}, Point{X: v, Y: y})
		prevY = y
	}
	return Batch{Polylines: []Polyline{{Points: pts, Color: cfg.Color, Width: 1.5}}}, nil
}
