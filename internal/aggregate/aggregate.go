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

// Package aggregate implements the DataShader-style aggregator: point
// clouds too large to rasterize primitive-by-primitive are instead
// binned into a per-pixel accumulator grid, reduced, colormapped, and
// composited once.
package aggregate

import (
	"math"
	"runtime"
	"sync"

	"github.com/cparo/plotcore/internal/ploterr"
	"github.com/cparo/plotcore/internal/theme"
)

// Reduction selects how an accumulator cell is summarized before
// colormapping.
type Reduction int

const (
	ReduceCount Reduction = iota
	ReduceMax
	ReduceMean
)

// Canvas is a fixed width x height grid of accumulators, one per pixel
// of the plot area. It is allocated per render (spec §5: "the
// aggregation canvas ... per-render").
type Canvas struct {
	Width, Height int
	count         []uint32
	sum           []float64
	max           []float64
}

// NewCanvas allocates a zeroed accumulator grid, returning
// ResourceBudgetExceeded when width*height would exceed maxCells (0
// means unbounded).
func NewCanvas(width, height, maxCells int) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, ploterr.InvalidParameter("aggregation canvas dimensions must be positive")
	}
	cells := width * height
	if maxCells > 0 && cells > maxCells {
		return nil, ploterr.ResourceBudgetExceeded("aggregation canvas would exceed the configured cell budget")
	}
	return &Canvas{
		Width: width, Height: height,
		count: make([]uint32, cells),
		sum:   make([]float64, cells),
		max:   make([]float64, cells),
	}, nil
}

func (c *Canvas) index(x, y int) (int, bool) {
	if x < 0 || x >= c.Width || y < 0 || y >= c.Height {
		return 0, false
	}
	return y*c.Width + x, true
}

// Add increments the accumulator at pixel (x,y) by one count, folding
// value into the cell's running sum and max for ReduceMean/ReduceMax.
func (c *Canvas) Add(x, y int, value float64) {
	idx, ok := c.index(x, y)
	if !ok {
		return
	}
	c.count[idx]++
	c.sum[idx] += value
	if value > c.max[idx] || c.count[idx] == 1 {
		c.max[idx] = value
	}
}

// merge folds other's accumulators into c, cell by cell (used to
// combine per-thread sub-canvases with no atomics in the hot path, per
// spec §5).
func (c *Canvas) merge(other *Canvas) {
	for i := range c.count {
		if other.count[i] == 0 {
			continue
		}
		if c.count[i] == 0 || other.max[i] > c.max[i] {
			c.max[i] = other.max[i]
		}
		c.count[i] += other.count[i]
		c.sum[i] += other.sum[i]
	}
}

func (c *Canvas) reduce(i int, reduction Reduction) float64 {
	switch reduction {
	case ReduceMax:
		return c.max[i]
	case ReduceMean:
		if c.count[i] == 0 {
			return 0
		}
		return c.sum[i] / float64(c.count[i])
	default:
		return float64(c.count[i])
	}
}

// Point is one (canvas-space x, canvas-space y, value) sample fed to
// Aggregate. Value is ignored under ReduceCount.
type Point struct {
	X, Y  int
	Value float64
}

// Aggregate bins points into a canvas of the given size using
// per-goroutine sub-canvases summed once at the end, then reduces and
// colormaps into an RGBA pixel buffer composited with straight alpha
// over bg. colormap maps a normalized [0,1] value to a color; when nil
// a monochrome foreground-alpha ramp is used. logNormalize requests
// log-count normalization instead of linear max-count normalization.
func Aggregate(points []Point, width, height int, reduction Reduction, colormap func(t float64) theme.Color, logNormalize bool, bg theme.Color, maxCells int) ([]theme.Color, error) {
	canvas, err := NewCanvas(width, height, maxCells)
	if err != nil {
		return nil, err
	}

	workers := runtime.GOMAXPROCS(0)
	if workers > len(points) {
		workers = len(points)
	}
	if workers < 1 {
		workers = 1
	}

	subCanvases := make([]*Canvas, workers)
	var wg sync.WaitGroup
	per := (len(points) + workers - 1) / workers
	for w := 0; w < workers; w++ {
		start := w * per
		end := start + per
		if end > len(points) {
			end = len(points)
		}
		if start >= end {
			subCanvases[w], _ = NewCanvas(width, height, 0)
			continue
		}
		sub, _ := NewCanvas(width, height, 0)
		subCanvases[w] = sub
		wg.Add(1)
		go func(sub *Canvas, pts []Point) {
			defer wg.Done()
			for _, p := range pts {
				sub.Add(p.X, p.Y, p.Value)
			}
		}(sub, points[start:end])
	}
	wg.Wait()
	for _, sub := range subCanvases {
		canvas.merge(sub)
	}

	return colormapCanvas(canvas, reduction, colormap, logNormalize, bg), nil
}

func colormapCanvas(canvas *Canvas, reduction Reduction, colormap func(float64) theme.Color, logNormalize bool, bg theme.Color) []theme.Color {
	if colormap == nil {
		colormap = func(t float64) theme.Color { return theme.Color{R: 0, G: 0, B: 0, A: uint8(t * 255)} }
	}
	n := canvas.Width * canvas.Height
	values := make([]float64, n)
	maxVal := 0.0
	for i := 0; i < n; i++ {
		v := canvas.reduce(i, reduction)
		if logNormalize && v > 0 {
			v = 1 + math.Log(v)
		}
		values[i] = v
		if v > maxVal {
			maxVal = v
		}
	}

	out := make([]theme.Color, n)
	for i, v := range values {
		if canvas.count[i] == 0 {
			out[i] = bg
			continue
		}
		t := 0.0
		if maxVal > 0 {
			t = v / maxVal
		}
		out[i] = theme.Over(bg, colormap(t))
	}
	return out
}
