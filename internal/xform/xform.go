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

// Package xform implements the data<->screen coordinate transform: two data
// ranges, two screen ranges, and an optional Y-inversion flag (screen space
// is top-down, data space is usually bottom-up). Point arithmetic below
// mirrors gioui's ui/f32.Point/Rectangle shape (Add/Sub).
package xform

// Point is a 2D point in either data or screen space.
type Point struct{ X, Y float32 }

// Add returns p+o.
func (p Point) Add(o Point) Point { return Point{p.X + o.X, p.Y + o.Y} }

// Sub returns p-o.
func (p Point) Sub(o Point) Point { return Point{p.X - o.X, p.Y - o.Y} }

// Range is a closed interval [Min, Max].
type Range struct{ Min, Max float64 }

// Width returns Max-Min.
func (r Range) Width() float64 { return r.Max - r.Min }

// Center returns the interval's midpoint.
func (r Range) Center() float64 { return (r.Min + r.Max) / 2 }

// Transform maps points between a data-space rectangle and a screen-space
// rectangle. A zero-width range along either axis collapses that axis's
// output to the opposing range's midpoint (spec §3/§4.3 invariant).
type Transform struct {
	DataX, DataY     Range
	ScreenX, ScreenY Range
	InvertY          bool
}

// New constructs a Transform over the given data and screen extents.
func New(dataX, dataY, screenX, screenY Range, invertY bool) Transform {
	return Transform{DataX: dataX, DataY: dataY, ScreenX: screenX, ScreenY: screenY, InvertY: invertY}
}

func mapAxis(v float64, from, to Range) float32 {
	dw := from.Width()
	if dw == 0 {
		return float32(to.Center())
	}
	t := (v - from.Min) / dw
	return float32(to.Min + t*to.Width())
}

func invMapAxis(v float32, from, to Range) float64 {
	sw := from.Width()
	if sw == 0 {
		return to.Min
	}
	t := (float64(v) - from.Min) / sw
	return to.Min + t*to.Width()
}

// DataToScreen maps a data-space point to a screen-space point, applying
// Y-inversion when configured. Output is single precision per spec §4.3.
func (t Transform) DataToScreen(dx, dy float64) (sx, sy float32) {
	sx = mapAxis(dx, t.DataX, t.ScreenX)
	sy = mapAxis(dy, t.DataY, t.ScreenY)
	if t.InvertY {
		sy = float32(t.ScreenY.Min+t.ScreenY.Max) - sy
	}
	return sx, sy
}

// ScreenToData is the inverse of DataToScreen, computed in double precision.
func (t Transform) ScreenToData(sx, sy float32) (dx, dy float64) {
	if t.InvertY {
		sy = float32(t.ScreenY.Min+t.ScreenY.Max) - sy
	}
	dx = invMapAxis(sx, t.ScreenX, t.DataX)
	dy = invMapAxis(sy, t.ScreenY, t.DataY)
	return dx, dy
}

// ContainsData reports whether (dx,dy) lies within the configured data
// range (inclusive).
func (t Transform) ContainsData(dx, dy float64) bool {
	return dx >= t.DataX.Min && dx <= t.DataX.Max && dy >= t.DataY.Min && dy <= t.DataY.Max
}

// ContainsScreen reports whether (sx,sy) lies within the configured screen
// range (inclusive).
func (t Transform) ContainsScreen(sx, sy float32) bool {
	x, y := float64(sx), float64(sy)
	return x >= t.ScreenX.Min && x <= t.ScreenX.Max && y >= t.ScreenY.Min && y <= t.ScreenY.Max
}

// DataCenter returns the data-range midpoint.
func (t Transform) DataCenter() (float64, float64) { return t.DataX.Center(), t.DataY.Center() }

// ScreenCenter returns the screen-range midpoint.
func (t Transform) ScreenCenter() (float32, float32) {
	return float32(t.ScreenX.Center()), float32(t.ScreenY.Center())
}

// ScreenWidth returns the screen-space x extent.
func (t Transform) ScreenWidth() float64 { return t.ScreenX.Width() }

// ScreenHeight returns the screen-space y extent.
func (t Transform) ScreenHeight() float64 { return t.ScreenY.Width() }

// DataWidth returns the data-space x extent.
func (t Transform) DataWidth() float64 { return t.DataX.Width() }

// DataHeight returns the data-space y extent.
func (t Transform) DataHeight() float64 { return t.DataY.Width() }
