package plots

import (
	"math"

	"github.com/cparo/plotcore/internal/theme"
)

// RegressionConfig configures an ordinary-least-squares fit.
type RegressionConfig struct {
	Degree      int // 1 for a simple line, >1 for a polynomial fit
	ShowBand    bool
	Color       theme.Color
	BandColor   theme.Color
	GridSize    int
}

// tCritical95 is a fixed 1.96 approximation to the 95% two-tailed
// t-distribution quantile, used for every sample size rather than an
// exact Student's-t quantile (adequate once n is more than a handful of
// points, and avoids pulling in a statistical-distributions dependency
// for one constant).
const tCritical95 = 1.96

// ComputeRegression fits an OLS polynomial of the configured degree to
// (x,y), emits the fitted curve over a grid spanning x's range, and,
// when ShowBand, a shaded confidence band using the fixed 1.96
// approximation to the 95% critical value.
func ComputeRegression(x, y []float64, cfg RegressionConfig) (Batch, error) {
	if err := requireEqualLen(x, y); err != nil {
		return Batch{}, err
	}
	degree := cfg.Degree
	if degree < 1 {
		degree = 1
	}
	if len(x) < degree+1 {
		return Batch{}, invalidParameter("regression needs more points than the polynomial degree")
	}

	coeffs, err := polyfit(x, y, degree)
	if err != nil {
		return Batch{}, err
	}

	grid := cfg.GridSize
	if grid <= 0 {
		grid = 200
	}
	minX, maxX := MinMax(x)
	step := (maxX - minX) / float64(grid-1)

	fitted := make([]Point, grid)
	for i := 0; i < grid; i++ {
		xi := minX + float64(i)*step
		fitted[i] = Point{X: xi, Y: evalPoly(coeffs, xi)}
	}

	var b Batch
	b.Polylines = append(b.Polylines, Polyline{Points: fitted, Color: cfg.Color, Width: 2})

	if cfg.ShowBand {
		residualSD := residualStdDev(x, y, coeffs)
		margin := tCritical95 * residualSD
		upper := make([]Point, grid)
		lower := make([]Point, grid)
		for i, p := range fitted {
			upper[i] = Point{X: p.X, Y: p.Y + margin}
			lower[grid-1-i] = Point{X: p.X, Y: p.Y - margin}
		}
		band := append(append([]Point{}, upper...), lower...)
		b.Polygons = append(b.Polygons, Polygon{Points: band, Color: cfg.BandColor, Fill: true})
	}
	return b, nil
}

// polyfit solves the normal equations X^T X c = X^T y for polynomial
// coefficients c[0..degree] via Gaussian elimination with partial
// pivoting, grounded on the same closed-form-linear-algebra approach
// the original's regression module uses rather than pulling in a full
// linear-algebra package for a small, fixed-size system.
func polyfit(x, y []float64, degree int) ([]float64, error) {
	n := degree + 1
	a := make([][]float64, n)
	for i := range a {
		a[i] = make([]float64, n+1)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			sum := 0.0
			for _, xv := range x {
				sum += math.Pow(xv, float64(i+j))
			}
			a[i][j] = sum
		}
		sum := 0.0
		for k := range x {
			sum += math.Pow(x[k], float64(i)) * y[k]
		}
		a[i][n] = sum
	}

	for col := 0; col < n; col++ {
		pivot := col
		for r := col + 1; r < n; r++ {
			if math.Abs(a[r][col]) > math.Abs(a[pivot][col]) {
				pivot = r
			}
		}
		a[col], a[pivot] = a[pivot], a[col]
		if math.Abs(a[col][col]) < 1e-12 {
			return nil, invalidParameter("regression matrix is singular")
		}
		for r := col + 1; r < n; r++ {
			factor := a[r][col] / a[col][col]
			for c := col; c <= n; c++ {
				a[r][c] -= factor * a[col][c]
			}
		}
	}

	coeffs := make([]float64, n)
	for i := n - 1; i >= 0; i-- {
		sum := a[i][n]
		for j := i + 1; j < n; j++ {
			sum -= a[i][j] * coeffs[j]
		}
		coeffs[i] = sum / a[i][i]
	}
	return coeffs, nil
}

func evalPoly(coeffs []float64, x float64) float64 {
	y := 0.0
	power := 1.0
	for _, c := range coeffs {
		y += c * power
		power *= x
	}
	return y
}

func residualStdDev(x, y, coeffs []float64) float64 {
	if len(x) < 2 {
		return 0
	}
	residuals := make([]float64, len(x))
	for i := range x {
		residuals[i] = y[i] - evalPoly(coeffs, x[i])
	}
	return StdDev(residuals)
}
