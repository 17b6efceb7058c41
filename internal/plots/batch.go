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

// Package plots is the plot-type compute layer: one file per plot kind,
// each reducing a series' data into a Batch of drawing primitives that
// flow to the rasterizer (internal/raster) and text renderer
// (internal/text). Dispatch into this layer is by a tagged Kind, not by
// interface/virtual call (spec §9), so the backend selector can see
// concrete kinds when choosing a path.
package plots

import "github.com/cparo/plotcore/internal/theme"

// MarkerShape identifies a scatter/line marker glyph.
type MarkerShape int

const (
	MarkerCircle MarkerShape = iota
	MarkerSquare
	MarkerTriangle
	MarkerDiamond
	MarkerCross
	MarkerPlus
)

// Line is a single straight segment in data-space coordinates (the
// orchestrator applies the coordinate transform; compute functions work in
// data space so they remain backend/DPI agnostic).
type Line struct {
	X1, Y1, X2, Y2 float64
	Color          theme.Color
	Width          float64
	Style          int // raster.Style, duplicated here to avoid an import cycle
}

// Polyline is a connected sequence of data-space points drawn as one
// stroke.
type Polyline struct {
	Points []Point
	Color  theme.Color
	Width  float64
	Style  int
}

// Polygon is a closed data-space shape, filled or stroked.
type Polygon struct {
	Points []Point
	Color  theme.Color
	Fill   bool
	EvenOdd bool
}

// Circle is a data-space circle of a data-space radius (radius is
// converted to pixels by the orchestrator using the screen scale).
type Circle struct {
	CX, CY, R float64
	Color     theme.Color
	Fill      bool
}

// Rect is an axis-aligned data-space rectangle.
type Rect struct {
	X, Y, W, H float64
	Color      theme.Color
	Fill       bool
}

// Marker places a single marker glyph at a data-space point.
type Marker struct {
	X, Y  float64
	Shape MarkerShape
	Size  float64
	Fill  theme.Color
	Edge  theme.Color
}

// Text places a label anchored at a data-space (or, for legends/titles,
// pixel-space — callers document which) point.
type Text struct {
	X, Y     float64
	Str      string
	Size     float64
	Color    theme.Color
	Rotated  bool
}

// Point is a plain data-space coordinate pair.
type Point struct{ X, Y float64 }

// Batch aggregates every primitive a compute step emits, grouped by kind so
// the orchestrator can route each group to the right rasterizer call.
type Batch struct {
	Lines     []Line
	Polylines []Polyline
	Polygons  []Polygon
	Circles   []Circle
	Rects     []Rect
	Markers   []Marker
	Texts     []Text
}

// Merge appends other's primitives onto b.
func (b *Batch) Merge(other Batch) {
	b.Lines = append(b.Lines, other.Lines...)
	b.Polylines = append(b.Polylines, other.Polylines...)
	b.Polygons = append(b.Polygons, other.Polygons...)
	b.Circles = append(b.Circles, other.Circles...)
	b.Rects = append(b.Rects, other.Rects...)
	b.Markers = append(b.Markers, other.Markers...)
	b.Texts = append(b.Texts, other.Texts...)
}

// DataBounds returns the union bounding box, in data space, over every
// coordinate-bearing primitive in the batch; Texts are not included. ok is
// false for an empty batch.
func (b Batch) DataBounds() (minX, minY, maxX, maxY float64, ok bool) {
	first := true
	consider := func(x, y float64) {
		if first {
			minX, maxX, minY, maxY = x, x, y, y
			first = false
			return
		}
		if x < minX {
			minX = x
		}
		if x > maxX {
			maxX = x
		}
		if y < minY {
			minY = y
		}
		if y > maxY {
			maxY = y
		}
	}
	for _, l := range b.Lines {
		consider(l.X1, l.Y1)
		consider(l.X2, l.Y2)
	}
	for _, pl := range b.Polylines {
		for _, p := range pl.Points {
			consider(p.X, p.Y)
		}
	}
	for _, pg := range b.Polygons {
		for _, p := range pg.Points {
			consider(p.X, p.Y)
		}
	}
	for _, c := range b.Circles {
		consider(c.CX-c.R, c.CY-c.R)
		consider(c.CX+c.R, c.CY+c.R)
	}
	for _, r := range b.Rects {
		consider(r.X, r.Y)
		consider(r.X+r.W, r.Y+r.H)
	}
	for _, m := range b.Markers {
		consider(m.X, m.Y)
	}
	return minX, minY, maxX, maxY, !first
}
