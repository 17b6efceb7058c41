package plots

import (
	"math"

	"github.com/cparo/plotcore/internal/theme"
)

// BandwidthMethod selects how ComputeKDE picks its Gaussian kernel
// bandwidth when Manual is not supplied.
type BandwidthMethod int

const (
	BandwidthScott BandwidthMethod = iota
	BandwidthSilverman
	BandwidthManual
)

// KDEConfig configures the kernel density estimate.
type KDEConfig struct {
	Method   BandwidthMethod
	Manual   float64 // used when Method == BandwidthManual
	GridSize int     // points to evaluate; defaults to 256 when <= 0
	Color    theme.Color
}

// ComputeKDE evaluates a Gaussian kernel density estimate on a grid
// covering [min-3h, max+3h], returning the density curve as a polyline.
func ComputeKDE(data []float64, cfg KDEConfig) (Batch, error) {
	finite := Finite(data)
	if len(finite) == 0 {
		return Batch{}, emptyDataSet("kde has no finite values")
	}
	h := bandwidth(finite, cfg)
	if h <= 0 {
		return Batch{}, invalidParameter("kde bandwidth must be positive")
	}

	lo, hi := MinMax(finite)
	lo -= 3 * h
	hi += 3 * h
	grid := cfg.GridSize
	if grid <= 0 {
		grid = 256
	}

	pts := make([]Point, grid)
	n := float64(len(finite))
	norm := 1 / (n * h * math.Sqrt(2*math.Pi))
	step := (hi - lo) / float64(grid-1)
	for i := 0; i < grid; i++ {
		x := lo + float64(i)*step
		sum := 0.0
		for _, v := range finite {
			u := (x - v) / h
			sum += math.Exp(-0.5 * u * u)
		}
		pts[i] = Point{X: x, Y: sum * norm}
	}
	return Batch{Polylines: []Polyline{{Points: pts, Color: cfg.Color, Width: 1.5}}}, nil
}

func bandwidth(data []float64, cfg KDEConfig) float64 {
	if cfg.Method == BandwidthManual {
		return cfg.Manual
	}
	n := float64(len(data))
	sd := StdDev(data)
	switch cfg.Method {
	case BandwidthSilverman:
		sorted := Sorted(data)
		iqr := Quantile(sorted, 0.75) - Quantile(sorted, 0.25)
		a := sd
		if iqr/1.34 < a {
			a = iqr / 1.34
		}
		return 0.9 * a * math.Pow(n, -0.2)
	default: // BandwidthScott
		return 1.06 * sd * math.Pow(n, -0.2)
	}
}
