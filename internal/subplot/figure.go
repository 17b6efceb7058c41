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

// Package subplot implements the Figure composer: a grid of
// independently rendered plot areas sharing one figure-level title and
// final canvas.
package subplot

import (
	"image"
	"image/draw"

	"github.com/cparo/plotcore/internal/encode"
	"github.com/cparo/plotcore/internal/ploterr"
	"github.com/cparo/plotcore/internal/raster"
	"github.com/cparo/plotcore/internal/render"
	"github.com/cparo/plotcore/internal/text"
	"github.com/cparo/plotcore/internal/theme"
)

type cellKey struct{ row, col int }

// cell is one assigned grid position: the series and render options
// that will be rendered at its own sub-rectangle size and blitted onto
// the figure canvas.
type cell struct {
	series []render.Series
	opts   render.Options
}

// Figure is a rows x cols grid of independently rendered plot areas.
type Figure struct {
	rows, cols    int
	width, height int
	cells         map[cellKey]cell
	suptitle      string
	theme         theme.Theme
	hSpacing      float64
	vSpacing      float64
}

// NewFigure constructs an empty rows x cols grid at the given overall
// pixel dimensions. rows, cols, width and height must all be positive.
func NewFigure(rows, cols, width, height int) (*Figure, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ploterr.InvalidParameter("figure must have at least one row and one column")
	}
	if width <= 0 || height <= 0 {
		return nil, ploterr.InvalidParameter("figure width and height must be positive")
	}
	return &Figure{
		rows: rows, cols: cols, width: width, height: height,
		cells: make(map[cellKey]cell),
		theme: theme.Light(),
	}, nil
}

// SetTheme sets the theme used for the figure background and the
// super-title text; it does not override a cell's own Options.Theme.
func (f *Figure) SetTheme(th theme.Theme) { f.theme = th }

// SetSpacing configures the horizontal and vertical gap, in pixels,
// left between adjacent cells.
func (f *Figure) SetSpacing(h, v float64) { f.hSpacing, f.vSpacing = h, v }

// SupTitle sets the figure-level title drawn above the grid.
func (f *Figure) SupTitle(s string) { f.suptitle = s }

// Subplot assigns series/opts to render into cell (row,col), 0-indexed.
// opts.Width/Height are overwritten with the cell's own computed
// sub-rectangle size; every other Options field is honored as given.
func (f *Figure) Subplot(row, col int, series []render.Series, opts render.Options) error {
	if row < 0 || row >= f.rows || col < 0 || col >= f.cols {
		return ploterr.InvalidParameter("subplot row/col out of range for this figure's grid")
	}
	f.cells[cellKey{row, col}] = cell{series: series, opts: opts}
	return nil
}

// cellRect computes the pixel sub-rectangle for (row,col), reserving a
// band at the top for the super-title when one is set.
func (f *Figure) cellRect(row, col int) raster.Area {
	top := 0.0
	if f.suptitle != "" {
		top = 40
	}
	gridH := float64(f.height) - top
	cellW := (float64(f.width) - f.hSpacing*float64(f.cols-1)) / float64(f.cols)
	cellH := (gridH - f.vSpacing*float64(f.rows-1)) / float64(f.rows)
	return raster.Area{
		X: float64(col) * (cellW + f.hSpacing),
		Y: top + float64(row)*(cellH+f.vSpacing),
		W: cellW,
		H: cellH,
	}
}

// Render composes every assigned cell's own render onto one figure
// canvas, in row-major order, drawing the super-title last so it is
// never occluded by a cell.
func (f *Figure) Render() (*raster.Canvas, error) {
	figCanvas := raster.New(f.width, f.height, f.theme.Background, 96)
	figCanvas.Clear(f.theme.Background)

	for row := 0; row < f.rows; row++ {
		for col := 0; col < f.cols; col++ {
			c, ok := f.cells[cellKey{row, col}]
			if !ok {
				continue
			}
			rect := f.cellRect(row, col)
			opts := c.opts
			opts.Width = int(rect.W)
			opts.Height = int(rect.H)
			cellCanvas, err := render.Render(c.series, opts)
			if err != nil {
				return nil, ploterr.RenderError("failed to render subplot cell", err)
			}
			dstRect := image.Rect(int(rect.X), int(rect.Y), int(rect.X)+opts.Width, int(rect.Y)+opts.Height)
			draw.Draw(figCanvas.Img, dstRect, cellCanvas.Img, cellCanvas.Img.Bounds().Min, draw.Over)
		}
	}

	if f.suptitle != "" {
		renderer := text.NewRenderer(96)
		w, h, err := renderer.MeasureText(f.theme.FontFamily, f.suptitle, f.theme.FontSize+6)
		if err != nil {
			return nil, ploterr.RenderError("failed to measure suptitle", err)
		}
		x := (float64(f.width) - w) / 2
		if err := renderer.RenderText(figCanvas.Img, f.theme.FontFamily, f.suptitle, x, h+4, f.theme.FontSize+6, f.theme.Foreground); err != nil {
			return nil, ploterr.RenderError("failed to draw suptitle", err)
		}
	}

	return figCanvas, nil
}

// Save renders the figure and writes it to path as PNG.
func (f *Figure) Save(path string) error {
	canvas, err := f.Render()
	if err != nil {
		return err
	}
	return encode.WritePNG(canvas, path)
}
