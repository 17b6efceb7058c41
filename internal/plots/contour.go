package plots

import "github.com/cparo/plotcore/internal/theme"

// ContourConfig configures marching-squares contour extraction over a
// regular grid.
type ContourConfig struct {
	X0, Y0       float64
	CellW, CellH float64
	Levels       []float64
	Color        theme.Color
}

// ComputeContour extracts iso-lines at each configured level from a
// rows x cols scalar grid using marching squares: each 2x2 cell of
// samples is classified into one of 16 cases by comparing corners
// against the level, and the corresponding edge-crossing segments are
// emitted as Line primitives. Edge crossings are linearly interpolated
// between the two corner values.
func ComputeContour(grid [][]float64, cfg ContourConfig) (Batch, error) {
	rows := len(grid)
	if rows < 2 || len(grid[0]) < 2 {
		return Batch{}, emptyDataSet("contour grid must be at least 2x2")
	}
	cols := len(grid[0])
	for _, row := range grid {
		if len(row) != cols {
			return Batch{}, invalidParameter("contour grid rows must have equal length")
		}
	}
	if len(cfg.Levels) == 0 {
		return Batch{}, invalidParameter("contour requires at least one level")
	}

	var lines []Line
	for r := 0; r < rows-1; r++ {
		for c := 0; c < cols-1; c++ {
			tl, tr := grid[r][c], grid[r][c+1]
			bl, br := grid[r+1][c], grid[r+1][c+1]
			x0 := cfg.X0 + float64(c)*cfg.CellW
			y0 := cfg.Y0 + float64(r)*cfg.CellH
			for _, level := range cfg.Levels {
				lines = append(lines, marchCell(tl, tr, bl, br, x0, y0, cfg.CellW, cfg.CellH, level, cfg.Color)...)
			}
		}
	}
	return Batch{Lines: lines}, nil
}

// marchCell classifies one grid cell against level and returns the 0, 1,
// or 2 line segments marching squares prescribes for that case.
func marchCell(tl, tr, bl, br, x0, y0, w, h, level float64, col theme.Color) []Line {
	above := func(v float64) bool { return v >= level }
	code := 0
	if above(tl) {
		code |= 8
	}
	if above(tr) {
		code |= 4
	}
	if above(br) {
		code |= 2
	}
	if above(bl) {
		code |= 1
	}
	if code == 0 || code == 15 {
		return nil
	}

	lerp := func(a, b float64) float64 {
		if b == a {
			return 0.5
		}
		return (level - a) / (b - a)
	}
	top := Point{x0 + lerp(tl, tr)*w, y0}
	bottom := Point{x0 + lerp(bl, br)*w, y0 + h}
	left := Point{x0, y0 + lerp(tl, bl)*h}
	right := Point{x0 + w, y0 + lerp(tr, br)*h}

	seg := func(a, b Point) Line { return Line{X1: a.X, Y1: a.Y, X2: b.X, Y2: b.Y, Color: col, Width: 1} }

	switch code {
	case 1, 14:
		return []Line{seg(left, bottom)}
	case 2, 13:
		return []Line{seg(bottom, right)}
	case 3, 12:
		return []Line{seg(left, right)}
	case 4, 11:
		return []Line{seg(top, right)}
	case 5:
		return []Line{seg(left, top), seg(bottom, right)}
	case 6, 9:
		return []Line{seg(top, bottom)}
	case 7, 8:
		return []Line{seg(left, top)}
	case 10:
		return []Line{seg(top, right), seg(left, bottom)}
	}
	return nil
}
