package plots

import (
	"math"

	"github.com/cparo/plotcore/internal/theme"
)

// HexbinConfig configures hexagonal binning aggregation.
type HexbinConfig struct {
	CellSize float64 // hexagon "radius" (center to vertex), in data units
	Colormap func(t float64) theme.Color
}

// ComputeHexbin aggregates (x,y) into a hexagonal grid using the
// offset-column addressing (odd columns shifted by half a row along y),
// counts points per cell, and emits one filled hexagon per occupied
// cell colored by count normalized against the densest cell.
func ComputeHexbin(x, y []float64, cfg HexbinConfig) (Batch, error) {
	if err := requireEqualLen(x, y); err != nil {
		return Batch{}, err
	}
	if len(x) == 0 {
		return Batch{}, emptyDataSet("hexbin has no points")
	}
	if cfg.CellSize <= 0 {
		return Batch{}, invalidParameter("hexbin cell size must be positive")
	}
	if cfg.Colormap == nil {
		return Batch{}, invalidParameter("hexbin requires a colormap")
	}

	dx := cfg.CellSize * 1.5
	dy := cfg.CellSize * math.Sqrt(3)

	type cellKey struct{ col, row int }
	counts := make(map[cellKey]int)
	for i := range x {
		col := int(math.Round(x[i] / dx))
		rowOffset := 0.0
		if col%2 != 0 {
			rowOffset = dy / 2
		}
		row := int(math.Round((y[i] - rowOffset) / dy))
		counts[cellKey{col, row}]++
	}

	maxCount := 0
	for _, c := range counts {
		if c > maxCount {
			maxCount = c
		}
	}

	polys := make([]Polygon, 0, len(counts))
	for key, count := range counts {
		cx := float64(key.col) * dx
		cy := float64(key.row) * dy
		if key.col%2 != 0 {
			cy += dy / 2
		}
		t := 0.0
		if maxCount > 0 {
			t = float64(count) / float64(maxCount)
		}
		polys = append(polys, Polygon{Points: hexagonPoints(cx, cy, cfg.CellSize), Color: cfg.Colormap(t), Fill: true})
	}
	return Batch{Polygons: polys}, nil
}

func hexagonPoints(cx, cy, r float64) []Point {
	pts := make([]Point, 6)
	for i := 0; i < 6; i++ {
		theta := math.Pi / 180 * (60*float64(i) - 30)
		pts[i] = Point{X: cx + r*math.Cos(theta), Y: cy + r*math.Sin(theta)}
	}
	return pts
}
