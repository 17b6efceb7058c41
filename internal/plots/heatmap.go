package plots

import "github.com/cparo/plotcore/internal/theme"

// HeatmapInterpolation selects how ComputeHeatmap maps a scalar value to
// a cell color.
type HeatmapInterpolation int

const (
	InterpolationNearest HeatmapInterpolation = iota
	InterpolationBilinear
)

// HeatmapConfig configures a regular-grid heatmap.
type HeatmapConfig struct {
	X0, Y0     float64 // data-space origin of the grid
	CellW, CellH float64
	Interp     HeatmapInterpolation
	Colormap   func(t float64) theme.Color // t in [0,1], normalized value
}

// ComputeHeatmap renders a rows x cols grid of values as a matrix of
// filled Rect cells for InterpolationNearest, or as supersampled cells
// blended between neighbors for InterpolationBilinear, colored by the
// configured colormap after min/max normalization.
func ComputeHeatmap(grid [][]float64, cfg HeatmapConfig) (Batch, error) {
	rows := len(grid)
	if rows == 0 || len(grid[0]) == 0 {
		return Batch{}, emptyDataSet("heatmap grid has no cells")
	}
	cols := len(grid[0])
	for _, row := range grid {
		if len(row) != cols {
			return Batch{}, invalidParameter("heatmap grid rows must have equal length")
		}
	}
	if cfg.Colormap == nil {
		return Batch{}, invalidParameter("heatmap requires a colormap")
	}

	min, max := grid[0][0], grid[0][0]
	for _, row := range grid {
		for _, v := range row {
			if v < min {
				min = v
			}
			if v > max {
				max = v
			}
		}
	}
	span := max - min
	normalize := func(v float64) float64 {
		if span <= 0 {
			return 0.5
		}
		return (v - min) / span
	}

	var rects []Rect
	switch cfg.Interp {
	case InterpolationBilinear:
		rects = bilinearCells(grid, cfg, normalize)
	default:
		rects = make([]Rect, 0, rows*cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				rects = append(rects, Rect{
					X: cfg.X0 + float64(c)*cfg.CellW, Y: cfg.Y0 + float64(r)*cfg.CellH,
					W: cfg.CellW, H: cfg.CellH,
					Color: cfg.Colormap(normalize(grid[r][c])), Fill: true,
				})
			}
		}
	}
	return Batch{Rects: rects}, nil
}

// bilinearCells subdivides each source cell into a 2x2 block of
// sub-cells. Each sub-cell's color is the unweighted mean of four samples:
// the cell itself, its right neighbour (for a right-half sub-cell), the
// cell below (for a lower-half sub-cell) and the diagonal between them,
// with edge cells clamped. The top-left sub-cell therefore keeps the
// cell's own value; neighbours above or to the left are never blended in,
// and there is no distance weighting, so this is not true bilinear
// interpolation.
func bilinearCells(grid [][]float64, cfg HeatmapConfig, normalize func(float64) float64) []Rect {
	rows, cols := len(grid), len(grid[0])
	const sub = 2
	subW, subH := cfg.CellW/sub, cfg.CellH/sub
	rects := make([]Rect, 0, rows*cols*sub*sub)
	sample := func(r, c int) float64 {
		if r < 0 {
			r = 0
		}
		if r >= rows {
			r = rows - 1
		}
		if c < 0 {
			c = 0
		}
		if c >= cols {
			c = cols - 1
		}
		return grid[r][c]
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			for sr := 0; sr < sub; sr++ {
				for sc := 0; sc < sub; sc++ {
					fy := (float64(sr) + 0.5) / sub
					fx := (float64(sc) + 0.5) / sub
					dr := 0
					if fy > 0.5 {
						dr = 1
					}
					dc := 0
					if fx > 0.5 {
						dc = 1
					}
					v00 := sample(r, c)
					v10 := sample(r, c+dc)
					v01 := sample(r+dr, c)
					v11 := sample(r+dr, c+dc)
					v := (v00 + v10 + v01 + v11) / 4
					rects = append(rects, Rect{
						X: cfg.X0 + float64(c)*cfg.CellW + float64(sc)*subW,
						Y: cfg.Y0 + float64(r)*cfg.CellH + float64(sr)*subH,
						W: subW, H: subH,
						Color: cfg.Colormap(normalize(v)), Fill: true,
					})
				}
			}
		}
	}
	return rects
}
