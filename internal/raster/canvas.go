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

// Package raster implements the anti-aliased primitive rasterizer: lines,
// polylines, polygon fills, circles, rectangles, grids and axes, all
// clipped to the canvas. Fills and strokes are rasterized via
// golang.org/x/image/vector (the same coverage-accumulation rasterizer
// family gioui.org and the gg-lineage renderers in the retrieved pack are
// built on), and so are grid lines and axis rules; direct per-pixel writes
// (BlendPixel, SetPixel) keep the teacher's (cparo-perspective/common.go)
// unsafe-pointer getRGBA idiom where full path rasterization would be
// overkill.
package raster

import (
	"image"
	"image/draw"
	"unsafe"

	"golang.org/x/image/vector"

	"github.com/cparo/plotcore/internal/theme"
)

// Canvas wraps an image.RGBA with the plotcore drawing operations.
type Canvas struct {
	Img *image.RGBA
	W, H int
	dpi  float64
}

// New constructs a Canvas of the given pixel dimensions, cleared to bg.
func New(w, h int, bg theme.Color, dpi float64) *Canvas {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	if dpi <= 0 {
		dpi = 96
	}
	c := &Canvas{Img: img, W: w, H: h, dpi: dpi}
	c.Clear(bg)
	return c
}

// DPI reports the canvas's configured dots-per-inch.
func (c *Canvas) DPI() float64 { return c.dpi }

// Clear fills the entire canvas with bg.
func (c *Canvas) Clear(bg theme.Color) {
	col := bg.RGBA()
	draw.Draw(c.Img, c.Img.Bounds(), &image.Uniform{C: col}, image.Point{}, draw.Src)
}

// getPixel returns a pointer to the RGBA pixel at (x,y), or a pointer to a
// throwaway zero pixel if out of bounds — mirrors cparo-perspective's
// getRGBA, trading a bounds branch for safe "draw outside the lines"
// semantics on the direct per-pixel write path.
func (c *Canvas) getPixel(x, y int) *[4]uint8 {
	if (image.Point{X: x, Y: y}).In(c.Img.Rect) {
		o := c.Img.PixOffset(x, y)
		return (*[4]uint8)(unsafe.Pointer(&c.Img.Pix[o]))
	}
	var throwaway [4]uint8
	return &throwaway
}

// BlendPixel composites src over the pixel at (x,y) using straight alpha.
func (c *Canvas) BlendPixel(x, y int, src theme.Color) {
	p := c.getPixel(x, y)
	dst := theme.Color{R: p[0], G: p[1], B: p[2], A: p[3]}
	out := theme.Over(dst, src)
	p[0], p[1], p[2], p[3] = out.R, out.G, out.B, out.A
}

// SetPixel writes src to (x,y) without blending.
func (c *Canvas) SetPixel(x, y int, src theme.Color) {
	p := c.getPixel(x, y)
	p[0], p[1], p[2], p[3] = src.R, src.G, src.B, src.A
}

// MinVisibleWidth returns the minimum stroke width, in pixels, that remains
// visible at the canvas's configured DPI (spec §4.7: 0.5px at target DPI,
// scaled up proportionally for high-DPI canvases).
func (c *Canvas) MinVisibleWidth() float32 {
	return float32(0.5 * c.dpi / 96)
}

// rasterizeAndFill runs a closed-path callback through a vector.Rasterizer
// and composites its anti-aliased coverage as col over the canvas, clipped
// to the canvas bounds.
func (c *Canvas) rasterizeAndFill(build func(z *vector.Rasterizer), col theme.Color) {
	z := vector.NewRasterizer(c.W, c.H)
	build(z)
	src := image.NewUniform(col.RGBA())
	z.Draw(c.Img, c.Img.Bounds(), src, image.Point{})
}
