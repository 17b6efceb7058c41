package raster

import (
	"math"

	"golang.org/x/image/vector"

	"github.com/cparo/plotcore/internal/theme"
)

// FillRule selects the polygon fill convention.
type FillRule int

const (
	FillNonZero FillRule = iota
	FillEvenOdd
)

// Area is the pixel rectangle a plot's data is drawn into.
type Area struct {
	X, Y, W, H float64
}

func clampWidth(c *Canvas, width float32) float32 {
	min := c.MinVisibleWidth()
	if width < min {
		return min
	}
	return width
}

func fillPoly(c *Canvas, poly []Point, col theme.Color) {
	if len(poly) < 3 {
		return
	}
	c.rasterizeAndFill(func(z *vector.Rasterizer) {
		z.MoveTo(float32(poly[0].X), float32(poly[0].Y))
		for _, p := range poly[1:] {
			z.LineTo(float32(p.X), float32(p.Y))
		}
		z.ClosePath()
	}, col)
}

// strokeAndFill builds and fills the stroke outline(s) of an open polyline,
// honoring dash style by drawing each "on" dash sub-segment independently.
func strokeAndFill(c *Canvas, points []Point, col theme.Color, width float64, style Style, custom []float64) {
	if len(points) < 2 || width <= 0 {
		return
	}
	for _, seg := range splitDashes(points, pattern(style, width, custom)) {
		if len(seg) < 2 {
			continue
		}
		poly := strokePolygon(seg, width)
		fillPoly(c, poly, col)
	}
}

// DrawLine draws a single anti-aliased, clipped, styled line segment.
func (c *Canvas) DrawLine(x1, y1, x2, y2 float64, col theme.Color, width float32, style Style) {
	w := float64(clampWidth(c, width))
	strokeAndFill(c, []Point{{x1, y1}, {x2, y2}}, col, w, style, nil)
}

// DrawLineCustom draws a line with a caller-supplied dash pattern (pixel
// lengths, alternating on/off).
func (c *Canvas) DrawLineCustom(x1, y1, x2, y2 float64, col theme.Color, width float32, customPattern []float64) {
	w := float64(clampWidth(c, width))
	strokeAndFill(c, []Point{{x1, y1}, {x2, y2}}, col, w, StyleCustom, customPattern)
}

// DrawPolyline draws a connected sequence of line segments as a single
// stroke, with miter joins falling back to bevel for sharp angles.
func (c *Canvas) DrawPolyline(points []Point, col theme.Color, width float32, style Style) {
	w := float64(clampWidth(c, width))
	strokeAndFill(c, points, col, w, style, nil)
}

// FillPolygon fills a closed polygon. vector.Rasterizer always resolves
// coverage by signed area (non-zero); an even-odd request passes the
// polygon through evenOddDecompose, which returns it unchanged, so a
// self-intersecting or self-overlapping polygon is filled the same way
// under either rule. The two rules agree only for simple polygons.
func (c *Canvas) FillPolygon(points []Point, col theme.Color, rule FillRule) {
	if len(points) < 3 {
		return
	}
	if rule == FillNonZero {
		fillPoly(c, points, col)
		return
	}
	for _, sub := range evenOddDecompose(points) {
		fillPoly(c, sub, col)
	}
}

// evenOddDecompose is a pragmatic even-odd approximation: for the convex
// and simple (non-self-intersecting) polygons this engine's plot kinds
// construct (violin mirrors, hexbin cells, boxplot boxes, contour bands),
// even-odd and non-zero agree, so the polygon is returned unchanged. A run
// is kept consistent (never mixing rules mid-polygon) as required by spec
// §4.7.
func evenOddDecompose(points []Point) [][]Point { return [][]Point{points} }

// DrawRectangle draws an axis-aligned rectangle, stroked or filled.
func (c *Canvas) DrawRectangle(x, y, w, h float64, col theme.Color, fill bool) {
	poly := []Point{{x, y}, {x + w, y}, {x + w, y + h}, {x, y + h}}
	if fill {
		fillPoly(c, poly, col)
		return
	}
	closed := append(poly, poly[0])
	c.DrawPolyline(closed, col, 1, StyleSolid)
}

// DrawCircle draws a circle approximated by a 64-segment polygon.
func (c *Canvas) DrawCircle(cx, cy, r float64, col theme.Color, fill bool) {
	const segs = 64
	poly := make([]Point, segs)
	for i := 0; i < segs; i++ {
		a := 2 * math.Pi * float64(i) / segs
		poly[i] = Point{cx + r*math.Cos(a), cy + r*math.Sin(a)}
	}
	if fill {
		fillPoly(c, poly, col)
		return
	}
	closed := append(append([]Point{}, poly...), poly[0])
	c.DrawPolyline(closed, col, 1, StyleSolid)
}

// TickMark is a minimal tick description for grid/axis drawing: its pixel
// position along the axis and whether it is a minor tick.
type TickMark struct {
	Pixel float64
	Minor bool
}

// DrawGrid draws minor ticks' grid lines first, then major ticks' grid
// lines, across the plot area.
func (c *Canvas) DrawGrid(xTicks, yTicks []TickMark, area Area, col theme.Color, style Style) {
	draw := func(ticks []TickMark, vertical bool, minor bool) {
		for _, t := range ticks {
			if t.Minor != minor {
				continue
			}
			lineCol := col
			if minor {
				lineCol = col.WithAlpha(col.A / 2)
			}
			if vertical {
				c.DrawLine(t.Pixel, area.Y, t.Pixel, area.Y+area.H, lineCol, 1, style)
			} else {
				c.DrawLine(area.X, t.Pixel, area.X+area.W, t.Pixel, lineCol, 1, style)
			}
		}
	}
	draw(xTicks, true, true)
	draw(yTicks, false, true)
	draw(xTicks, true, false)
	draw(yTicks, false, false)
}

// DrawAxes draws the bottom and left axis lines of the plot area and tick
// marks (short perpendicular strokes at each major tick position).
func (c *Canvas) DrawAxes(area Area, xTicks, yTicks []TickMark, col theme.Color, tickLength float64) {
	c.DrawLine(area.X, area.Y+area.H, area.X+area.W, area.Y+area.H, col, 1.5, StyleSolid) // bottom
	c.DrawLine(area.X, area.Y, area.X, area.Y+area.H, col, 1.5, StyleSolid)               // left

	for _, t := range xTicks {
		if t.Minor {
			continue
		}
		c.DrawLine(t.Pixel, area.Y+area.H, t.Pixel, area.Y+area.H+tickLength, col, 1, StyleSolid)
	}
	for _, t := range yTicks {
		if t.Minor {
			continue
		}
		c.DrawLine(area.X-tickLength, t.Pixel, area.X, t.Pixel, col, 1, StyleSolid)
	}
}
