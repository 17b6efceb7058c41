package raster

import "math"

// Point is a 2D point in canvas pixel space.
type Point struct{ X, Y float64 }

func sub(a, b Point) Point   { return Point{a.X - b.X, a.Y - b.Y} }
func add(a, b Point) Point   { return Point{a.X + b.X, a.Y + b.Y} }
func scale(a Point, s float64) Point { return Point{a.X * s, a.Y * s} }
func length(a Point) float64 { return math.Hypot(a.X, a.Y) }

func normalize(a Point) Point {
	l := length(a)
	if l == 0 {
		return Point{0, 0}
	}
	return Point{a.X / l, a.Y / l}
}

// normal returns the left-hand perpendicular of the unit direction d.
func normal(d Point) Point { return Point{-d.Y, d.X} }

// Style identifies a line dash pattern.
type Style int

const (
	StyleSolid Style = iota
	StyleDashed
	StyleDotted
	StyleDashDot
	StyleCustom
)

// pattern returns the on/off segment lengths, in pixels, for a built-in
// style; StyleCustom uses the caller-supplied pattern verbatim.
func pattern(style Style, width float64, custom []float64) []float64 {
	switch style {
	case StyleDashed:
		return []float64{4 * width, 3 * width}
	case StyleDotted:
		return []float64{width, 2 * width}
	case StyleDashDot:
		return []float64{4 * width, 2 * width, width, 2 * width}
	case StyleCustom:
		return custom
	default:
		return nil // solid: no dashing
	}
}

// splitDashes walks polyline points and returns the "on" sub-polylines per
// the given on/off pattern (in pixel lengths). A nil/empty pattern returns
// the whole polyline as a single segment (solid).
func splitDashes(points []Point, pat []float64) [][]Point {
	if len(pat) == 0 || len(points) < 2 {
		return [][]Point{points}
	}
	var out [][]Point
	var current []Point
	on := true
	idx := 0
	remaining := pat[0]

	if on {
		current = append(current, points[0])
	}

	for i := 0; i < len(points)-1; i++ {
		a, b := points[i], points[i+1]
		segLen := length(sub(b, a))
		pos := 0.0
		for pos < segLen {
			step := math.Min(remaining, segLen-pos)
			pos += step
			remaining -= step
			t := pos / segLen
			pt := Point{a.X + (b.X-a.X)*t, a.Y + (b.Y-a.Y)*t}
			if on {
				current = append(current, pt)
			}
			if remaining <= 1e-9 {
				if on && len(current) >= 2 {
					out = append(out, current)
				}
				on = !on
				current = nil
				if on {
					current = append(current, pt)
				}
				idx = (idx + 1) % len(pat)
				remaining = pat[idx]
			}
		}
	}
	if on && len(current) >= 2 {
		out = append(out, current)
	}
	return out
}

// JoinLimit is the default miter-limit ratio (miter length / half-width)
// beyond which a join falls back from miter to bevel.
const JoinLimit = 4.0

// outline computes the left/right stroke-boundary polylines for an open
// polyline of the given half-width, joining interior vertices by miter with
// a bevel fallback when the miter length would exceed JoinLimit * halfWidth.
func outline(points []Point, halfWidth float64) (left, right []Point) {
	n := len(points)
	if n < 2 {
		return nil, nil
	}
	dirs := make([]Point, n-1)
	for i := 0; i < n-1; i++ {
		dirs[i] = normalize(sub(points[i+1], points[i]))
	}

	addJoin := func(i int) {
		if i == 0 {
			nrm := normal(dirs[0])
			left = append(left, add(points[0], scale(nrm, halfWidth)))
			right = append(right, add(points[0], scale(nrm, -halfWidth)))
			return
		}
		if i == n-1 {
			nrm := normal(dirs[n-2])
			left = append(left, add(points[n-1], scale(nrm, halfWidth)))
			right = append(right, add(points[n-1], scale(nrm, -halfWidth)))
			return
		}
		n0 := normal(dirs[i-1])
		n1 := normal(dirs[i])
		miter := normalize(add(n0, n1))
		denom := miter.X*n0.X + miter.Y*n0.Y
		if denom < 1e-6 {
			// Segments fold back on themselves: bevel.
			left = append(left, add(points[i], scale(n0, halfWidth)), add(points[i], scale(n1, halfWidth)))
			right = append(right, add(points[i], scale(n0, -halfWidth)), add(points[i], scale(n1, -halfWidth)))
			return
		}
		miterLen := halfWidth / denom
		if miterLen/halfWidth > JoinLimit {
			left = append(left, add(points[i], scale(n0, halfWidth)), add(points[i], scale(n1, halfWidth)))
			right = append(right, add(points[i], scale(n0, -halfWidth)), add(points[i], scale(n1, -halfWidth)))
			return
		}
		left = append(left, add(points[i], scale(miter, miterLen)))
		right = append(right, add(points[i], scale(miter, -miterLen)))
	}

	for i := 0; i < n; i++ {
		addJoin(i)
	}
	return left, right
}

// strokePolygon returns the closed polygon outlining a stroked open
// polyline: the left boundary forward, then the right boundary reversed.
func strokePolygon(points []Point, width float64) []Point {
	halfWidth := width / 2
	left, right := outline(points, halfWidth)
	poly := make([]Point, 0, len(left)+len(right))
	poly = append(poly, left...)
	for i := len(right) - 1; i >= 0; i-- {
		poly = append(poly, right[i])
	}
	return poly
}
