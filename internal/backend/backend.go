// Plotcore: high-performance 2D scientific plotting engine

// Copyright (C) 2024 The plotcore authors.

// This program is free software: you can redistribute it and/or modify it under
// the terms of the GNU General Public License version 2 as published by the
// Free Software Foundation.

// This program is distributed in the hope that it will be useful, but WITHOUT
// ANY WARRANTY; without even the implied warranty of MERCHANTABILITY or FITNESS
// FOR A PARTICULAR PURPOSE. See the GNU General Public License for more
// details.

// You should have received a copy of the GNU General Public License along with
// this program. If not, see <http://www.gnu.org/licenses/>.

// Package backend chooses the execution path a render uses to move
// points from data space to screen space: scalar, single-threaded
// vectorized, parallel-chunked, or routed through the DataShader-style
// aggregator. The choice never changes visual output beyond the
// documented aggregation behavior.
package backend

import (
	"context"
	"log/slog"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Path identifies the chosen execution strategy.
type Path int

const (
	PathScalar Path = iota
	PathVectorized
	PathParallel
	PathAggregate
)

func (p Path) String() string {
	switch p {
	case PathVectorized:
		return "vectorized"
	case PathParallel:
		return "parallel"
	case PathAggregate:
		return "aggregate"
	default:
		return "scalar"
	}
}

// Kind identifies a plot series kind for the purpose of aggregator
// eligibility (spec §4.10: only scatter and line route through the
// aggregator).
type Kind int

const (
	KindOther Kind = iota
	KindScatter
	KindLine
)

// Capabilities reports which accelerated paths are available in the
// current process; both default true on a normal build, and are
// parameters only so tests can force a specific decision branch.
type Capabilities struct {
	Vectorized bool
	Parallel   bool
	Cores      int
}

// DefaultCapabilities reports the capabilities of the running process:
// vectorized and parallel paths are always available in pure Go (there
// is no SIMD intrinsic gate to check), cores is GOMAXPROCS.
func DefaultCapabilities() Capabilities {
	return Capabilities{Vectorized: true, Parallel: true, Cores: runtime.GOMAXPROCS(0)}
}

// Thresholds configures the point-count boundaries the decision table
// uses. Zero values fall back to the spec defaults.
type Thresholds struct {
	Parallel            int // total points at/above which the parallel path engages
	AggregationScatter   int // per-series points at/above which scatter aggregates
	AggregationLineTotal int // total points at/above which line aggregates
}

// DefaultThresholds returns the spec-mandated defaults: 10,000 for the
// scalar/vectorized boundary baked into Select, and the aggregation
// thresholds of 10^5 per series for scatter and 10^6 total for line.
func DefaultThresholds() Thresholds {
	return Thresholds{
		Parallel:             1_000_000,
		AggregationScatter:   100_000,
		AggregationLineTotal: 1_000_000,
	}
}

const scalarCeiling = 10_000

// Select applies the spec §4.10 decision table: total point count
// across visible series, the series being considered now (perSeries,
// kind), capability availability, and the configured thresholds
// together determine the path. logger may be nil.
func Select(total, perSeries, seriesCount int, kind Kind, caps Capabilities, th Thresholds, logger *slog.Logger) Path {
	def := DefaultThresholds()
	if th.Parallel == 0 {
		th.Parallel = def.Parallel
	}
	if th.AggregationScatter == 0 {
		th.AggregationScatter = def.AggregationScatter
	}
	if th.AggregationLineTotal == 0 {
		th.AggregationLineTotal = def.AggregationLineTotal
	}
	path := selectPath(total, perSeries, seriesCount, kind, caps, th)
	if logger != nil {
		logger.Debug("backend path selected", "path", path.String(), "total", total, "per_series", perSeries, "series_count", seriesCount)
	}
	return path
}

func selectPath(total, perSeries, seriesCount int, kind Kind, caps Capabilities, th Thresholds) Path {
	if aggregationEligible(total, perSeries, kind, th) {
		return PathAggregate
	}
	if total >= th.Parallel && caps.Parallel {
		return PathParallel
	}
	if total >= scalarCeiling && caps.Vectorized {
		return PathVectorized
	}
	return PathScalar
}

func aggregationEligible(total, perSeries int, kind Kind, th Thresholds) bool {
	switch kind {
	case KindScatter:
		return perSeries >= th.AggregationScatter
	case KindLine:
		return total >= th.AggregationLineTotal
	default:
		return false
	}
}

// SeriesParallelEligible reports whether independent series should
// render on separate goroutines: spec §4.10 engages series-parallelism
// once the series count reaches half the available cores.
func SeriesParallelEligible(seriesCount int, caps Capabilities) bool {
	return caps.Parallel && seriesCount >= caps.Cores/2 && seriesCount > 1
}

// chunkSize is the minimum work unit parallel chunking dispatches, set
// to amortize per-goroutine overhead (spec §5: "chunk size >= 4K
// elements").
const chunkSize = 4096

// TransformChunked applies fn to every element of xs in parallel
// chunks of at least chunkSize elements (a single chunk when xs is
// shorter; the last chunk takes the remainder), writing results into out
// (len(out) == len(xs)). Chunk boundaries never split ordering
// guarantees since each chunk writes only its own output slice.
func TransformChunked(ctx context.Context, xs []float64, out []float64, fn func(float64) float64) error {
	n := len(xs)
	if n == 0 {
		return nil
	}
	workers := n / chunkSize
	if workers < 1 {
		workers = 1
	}
	g, _ := errgroup.WithContext(ctx)
	per := n / workers
	for w := 0; w < workers; w++ {
		start := w * per
		end := start + per
		if w == workers-1 || end > n {
			end = n
		}
		if start >= end {
			continue
		}
		start, end := start, end
		g.Go(func() error {
			for i := start; i < end; i++ {
				out[i] = fn(xs[i])
			}
			return nil
		})
	}
	return g.Wait()
}
