package plots

import (
	"math"

	"github.com/cparo/plotcore/internal/theme"
)

// BinMethod selects how ComputeHistogram picks a bin count when the
// caller hasn't fixed one explicitly.
type BinMethod int

const (
	BinUniform BinMethod = iota // caller-supplied bin count, used as-is
	BinSturges
	BinScott
	BinFreedmanDiaconis
)

// HistogramConfig configures bin selection and normalization.
type HistogramConfig struct {
	Bins       int // used directly when Method is BinUniform and Bins > 0
	Method     BinMethod
	Range      *[2]float64 // nil means use the filtered data's min/max
	Density    bool
	Cumulative bool
	Color      theme.Color
}

// ComputeHistogram bins data into uniform-width intervals, dropping
// non-finite values and values outside Range when set. With Density,
// counts are rescaled so that sum(count*bin_width) == 1. With
// Cumulative, counts become a running prefix sum (applied after any
// density rescale).
func ComputeHistogram(data []float64, cfg HistogramConfig) (Batch, error) {
	finite := Finite(data)
	if len(finite) == 0 {
		return Batch{}, emptyDataSet("histogram has no finite values")
	}

	lo, hi := MinMax(finite)
	if cfg.Range != nil {
		lo, hi = cfg.Range[0], cfg.Range[1]
	}
	if !(hi > lo) {
		return Batch{}, invalidParameter("histogram range must have positive width")
	}

	n := binCount(finite, cfg, lo, hi)
	if n <= 0 {
		return Batch{}, invalidParameter("histogram bin count must be positive")
	}

	counts := make([]float64, n)
	width := (hi - lo) / float64(n)
	for _, v := range finite {
		if v < lo || v > hi {
			continue
		}
		idx := int((v - lo) / width)
		if idx >= n { // v == hi falls in the last bin, inclusive right edge
			idx = n - 1
		}
		counts[idx]++
	}

	if cfg.Density {
		total := 0.0
		for _, c := range counts {
			total += c
		}
		if total > 0 {
			scale := 1 / (total * width)
			for i := range counts {
				counts[i] *= scale
			}
		}
	}
	if cfg.Cumulative {
		running := 0.0
		for i, c := range counts {
			running += c
			counts[i] = running
		}
	}

	rects := make([]Rect, n)
	for i, c := range counts {
		rects[i] = Rect{X: lo + float64(i)*width, Y: 0, W: width, H: c, Color: cfg.Color, Fill: true}
	}
	return Batch{Rects: rects}, nil
}

func binCount(finite []float64, cfg HistogramConfig, lo, hi float64) int {
	n := len(finite)
	switch cfg.Method {
	case BinSturges:
		return int(math.Ceil(math.Log2(float64(n)) + 1))
	case BinScott:
		h := 3.49 * StdDev(finite) / math.Cbrt(float64(n))
		return widthToBins(h, lo, hi, n)
	case BinFreedmanDiaconis:
		sorted := Sorted(finite)
		iqr := Quantile(sorted, 0.75) - Quantile(sorted, 0.25)
		h := 2 * iqr / math.Cbrt(float64(n))
		return widthToBins(h, lo, hi, n)
	default:
		if cfg.Bins > 0 {
			return cfg.Bins
		}
		return int(math.Ceil(math.Log2(float64(n)) + 1)) // fall back to Sturges
	}
}

func widthToBins(h, lo, hi float64, n int) int {
	if h <= 0 {
		return int(math.Ceil(math.Log2(float64(n)) + 1))
	}
	bins := int(math.Ceil((hi - lo) / h))
	if bins < 1 {
		bins = 1
	}
	return bins
}
