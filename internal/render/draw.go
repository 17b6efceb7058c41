package render

import (
	"github.com/cparo/plotcore/internal/aggregate"
	"github.com/cparo/plotcore/internal/backend"
	"github.com/cparo/plotcore/internal/encode"
	"github.com/cparo/plotcore/internal/plots"
	"github.com/cparo/plotcore/internal/raster"
	"github.com/cparo/plotcore/internal/text"
	"github.com/cparo/plotcore/internal/theme"
	"github.com/cparo/plotcore/internal/ticks"
)

// project maps a data-space point to pixel space.
type project func(dx, dy float64) (float32, float32)

// drawSeries renders one series' primitives onto canvas. Under
// PathAggregate, markers and polyline points are routed through the
// DataShader-style aggregator and composited as a block instead of
// being drawn primitive-by-primitive; every other path draws the
// batch's primitives directly (the vectorized/parallel paths affect
// only how coordinates are transformed upstream of drawing, not the
// draw calls themselves, since Go's rasterizer calls are not
// vectorizable the way a coordinate multiply-add is).
func drawSeries(canvas *raster.Canvas, batch plots.Batch, col theme.Color, proj project, path backend.Path, area raster.Area, bg theme.Color, maxCells int) error {
	if path == backend.PathAggregate {
		return drawAggregated(canvas, batch, col, proj, area, bg, maxCells)
	}

	for _, l := range batch.Lines {
		x1, y1 := proj(l.X1, l.Y1)
		x2, y2 := proj(l.X2, l.Y2)
		lineCol := l.Color
		if lineCol.A == 0 {
			lineCol = col
		}
		width := l.Width
		if width <= 0 {
			width = 1.5
		}
		canvas.DrawLine(float64(x1), float64(y1), float64(x2), float64(y2), lineCol, float32(width), raster.Style(l.Style))
	}
	for _, pl := range batch.Polylines {
		pts := projectPoints(pl.Points, proj)
		lineCol := pl.Color
		if lineCol.A == 0 {
			lineCol = col
		}
		width := pl.Width
		if width <= 0 {
			width = 1.5
		}
		canvas.DrawPolyline(pts, lineCol, float32(width), raster.Style(pl.Style))
	}
	for _, pg := range batch.Polygons {
		if len(pg.Points) < 2 {
			continue
		}
		pts := projectPoints(pg.Points, proj)
		fillCol := pg.Color
		if fillCol.A == 0 {
			fillCol = col
		}
		rule := raster.FillNonZero
		if pg.EvenOdd {
			rule = raster.FillEvenOdd
		}
		if pg.Fill {
			canvas.FillPolygon(pts, fillCol, rule)
		} else {
			closed := append(append([]raster.Point{}, pts...), pts[0])
			canvas.DrawPolyline(closed, fillCol, 1, raster.StyleSolid)
		}
	}
	for _, r := range batch.Rects {
		x0, y0 := proj(r.X, r.Y)
		x1, y1 := proj(r.X+r.W, r.Y+r.H)
		fillCol := r.Color
		if fillCol.A == 0 {
			fillCol = col
		}
		x, y := float64(x0), float64(y1)
		w, h := float64(x1-x0), float64(y0-y1)
		if w < 0 {
			x, w = x+w, -w
		}
		if h < 0 {
			y, h = y+h, -h
		}
		canvas.DrawRectangle(x, y, w, h, fillCol, r.Fill)
	}
	for _, c := range batch.Circles {
		cx, cy := proj(c.CX, c.CY)
		rx, _ := proj(c.CX+c.R, c.CY)
		radius := float64(rx - cx)
		if radius < 0 {
			radius = -radius
		}
		circCol := c.Color
		if circCol.A == 0 {
			circCol = col
		}
		canvas.DrawCircle(float64(cx), float64(cy), radius, circCol, c.Fill)
	}
	for _, m := range batch.Markers {
		drawMarker(canvas, m, proj, col)
	}
	return nil
}

func projectPoints(pts []plots.Point, proj project) []raster.Point {
	out := make([]raster.Point, len(pts))
	for i, p := range pts {
		x, y := proj(p.X, p.Y)
		out[i] = raster.Point{X: float64(x), Y: float64(y)}
	}
	return out
}

func drawMarker(canvas *raster.Canvas, m plots.Marker, proj project, col theme.Color) {
	cx, cy := proj(m.X, m.Y)
	size := m.Size
	if size <= 0 {
		size = 4
	}
	fill := m.Fill
	if fill.A == 0 {
		fill = col
	}
	switch m.Shape {
	case plots.MarkerSquare:
		canvas.DrawRectangle(float64(cx)-size, float64(cy)-size, size*2, size*2, fill, true)
	case plots.MarkerTriangle:
		poly := []raster.Point{
			{X: float64(cx), Y: float64(cy) - size},
			{X: float64(cx) - size, Y: float64(cy) + size},
			{X: float64(cx) + size, Y: float64(cy) + size},
		}
		canvas.FillPolygon(poly, fill, raster.FillNonZero)
	case plots.MarkerDiamond:
		poly := []raster.Point{
			{X: float64(cx), Y: float64(cy) - size},
			{X: float64(cx) + size, Y: float64(cy)},
			{X: float64(cx), Y: float64(cy) + size},
			{X: float64(cx) - size, Y: float64(cy)},
		}
		canvas.FillPolygon(poly, fill, raster.FillNonZero)
	case plots.MarkerCross:
		canvas.DrawLine(float64(cx)-size, float64(cy)-size, float64(cx)+size, float64(cy)+size, fill, 2, raster.StyleSolid)
		canvas.DrawLine(float64(cx)-size, float64(cy)+size, float64(cx)+size, float64(cy)-size, fill, 2, raster.StyleSolid)
	case plots.MarkerPlus:
		canvas.DrawLine(float64(cx)-size, float64(cy), float64(cx)+size, float64(cy), fill, 2, raster.StyleSolid)
		canvas.DrawLine(float64(cx), float64(cy)-size, float64(cx), float64(cy)+size, fill, 2, raster.StyleSolid)
	default:
		canvas.DrawCircle(float64(cx), float64(cy), size, fill, true)
	}
}

// drawAggregated bins a series' markers and polyline vertices into a
// canvas-resolution accumulator grid scoped to area, then composites
// the reduced, colormapped result directly onto the pixel buffer.
func drawAggregated(canvas *raster.Canvas, batch plots.Batch, col theme.Color, proj project, area raster.Area, bg theme.Color, maxCells int) error {
	w, h := int(area.W), int(area.H)
	if w <= 0 || h <= 0 {
		return nil
	}
	var points []aggregate.Point
	collect := func(dx, dy float64) {
		sx, sy := proj(dx, dy)
		x := int(sx) - int(area.X)
		y := int(sy) - int(area.Y)
		points = append(points, aggregate.Point{X: x, Y: y, Value: 1})
	}
	for _, m := range batch.Markers {
		collect(m.X, m.Y)
	}
	for _, pl := range batch.Polylines {
		for _, p := range pl.Points {
			collect(p.X, p.Y)
		}
	}
	if len(points) == 0 {
		return nil
	}

	colormap := func(t float64) theme.Color {
		a := uint8(40 + t*215)
		return theme.Color{R: col.R, G: col.G, B: col.B, A: a}
	}
	pixels, err := aggregate.Aggregate(points, w, h, aggregate.ReduceCount, colormap, true, bg, maxCells)
	if err != nil {
		return err
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := pixels[y*w+x]
			if c == bg {
				continue
			}
			canvas.BlendPixel(int(area.X)+x, int(area.Y)+y, c)
		}
	}
	return nil
}

// drawAxisLabels draws each major tick's label text next to its tick
// mark; font/size come from the theme.
func drawAxisLabels(canvas *raster.Canvas, renderer *text.Renderer, th theme.Theme, area raster.Area, xTicks, yTicks ticks.Layout) {
	for _, t := range xTicks.Major {
		w, _, err := renderer.MeasureText(th.FontFamily, t.Label, th.FontSize)
		if err != nil {
			continue
		}
		x := float64(t.PixelPos) - w/2
		y := area.Y + area.H + th.TickLength + th.FontSize
		_ = renderer.RenderText(canvas.Img, th.FontFamily, t.Label, x, y, th.FontSize, th.Foreground)
	}
	for _, t := range yTicks.Major {
		w, h, err := renderer.MeasureText(th.FontFamily, t.Label, th.FontSize)
		if err != nil {
			continue
		}
		x := area.X - th.TickLength - w - 4
		y := float64(t.PixelPos) + h/3
		_ = renderer.RenderText(canvas.Img, th.FontFamily, t.Label, x, y, th.FontSize, th.Foreground)
	}
}

// drawTitle centers s above the canvas.
func drawTitle(canvas *raster.Canvas, renderer *text.Renderer, th theme.Theme, s string, width int) error {
	size := th.FontSize + 4
	w, h, err := renderer.MeasureText(th.FontFamily, s, size)
	if err != nil {
		return err
	}
	x := (float64(width) - w) / 2
	return renderer.RenderText(canvas.Img, th.FontFamily, s, x, h+6, size, th.Foreground)
}

// recordAxes appends the bottom and left axis lines to doc, a no-op when
// doc is nil.
func recordAxes(doc *encode.Document, area raster.Area, th theme.Theme) {
	if doc == nil {
		return
	}
	doc.Add(encode.Element{
		Kind:        encode.ElementPolyline,
		Points:      []encode.Point2D{{X: area.X, Y: area.Y}, {X: area.X, Y: area.Y + area.H}, {X: area.X + area.W, Y: area.Y + area.H}},
		Color:       th.Foreground,
		StrokeWidth: 1.5,
	})
}

func recordAxisLabels(doc *encode.Document, th theme.Theme, area raster.Area, xTicks, yTicks ticks.Layout) {
	if doc == nil {
		return
	}
	for _, t := range xTicks.Major {
		doc.Add(encode.Element{
			Kind: encode.ElementText, Text: t.Label, Color: th.Foreground, FontSize: th.FontSize,
			X: float64(t.PixelPos), Y: area.Y + area.H + th.TickLength + th.FontSize,
		})
	}
	for _, t := range yTicks.Major {
		doc.Add(encode.Element{
			Kind: encode.ElementText, Text: t.Label, Color: th.Foreground, FontSize: th.FontSize,
			X: area.X - th.TickLength - 4, Y: float64(t.PixelPos),
		})
	}
}

func recordTitle(doc *encode.Document, th theme.Theme, title string, width int) {
	if doc == nil {
		return
	}
	doc.Add(encode.Element{
		Kind: encode.ElementText, Text: title, Color: th.Foreground, FontSize: th.FontSize + 4,
		X: float64(width) / 2, Y: th.FontSize + 8,
	})
}

// recordSeries lowers a batch's primitives into pixel-space SVG
// elements in the same order drawSeries painted them, a no-op when doc
// is nil (the common case: recording only happens in SVG-sink mode).
func recordSeries(doc *encode.Document, batch plots.Batch, col theme.Color, proj project) {
	if doc == nil {
		return
	}
	resolve := func(c theme.Color) theme.Color {
		if c.A == 0 {
			return col
		}
		return c
	}
	toPt := func(dx, dy float64) encode.Point2D {
		x, y := proj(dx, dy)
		return encode.Point2D{X: float64(x), Y: float64(y)}
	}
	for _, l := range batch.Lines {
		doc.Add(encode.Element{Kind: encode.ElementLine, Points: []encode.Point2D{toPt(l.X1, l.Y1), toPt(l.X2, l.Y2)}, Color: resolve(l.Color), StrokeWidth: l.Width})
	}
	for _, pl := range batch.Polylines {
		pts := make([]encode.Point2D, len(pl.Points))
		for i, p := range pl.Points {
			pts[i] = toPt(p.X, p.Y)
		}
		doc.Add(encode.Element{Kind: encode.ElementPolyline, Points: pts, Color: resolve(pl.Color), StrokeWidth: pl.Width})
	}
	for _, pg := range batch.Polygons {
		pts := make([]encode.Point2D, len(pg.Points))
		for i, p := range pg.Points {
			pts[i] = toPt(p.X, p.Y)
		}
		doc.Add(encode.Element{Kind: encode.ElementPolygon, Points: pts, Color: resolve(pg.Color), Fill: pg.Fill})
	}
	for _, r := range batch.Rects {
		p0 := toPt(r.X, r.Y)
		p1 := toPt(r.X+r.W, r.Y+r.H)
		x, y := p0.X, p1.Y
		w, h := p1.X-p0.X, p0.Y-p1.Y
		if w < 0 {
			x, w = x+w, -w
		}
		if h < 0 {
			y, h = y+h, -h
		}
		doc.Add(encode.Element{Kind: encode.ElementRect, X: x, Y: y, W: w, H: h, Color: resolve(r.Color), Fill: r.Fill})
	}
	for _, c := range batch.Circles {
		center := toPt(c.CX, c.CY)
		edge := toPt(c.CX+c.R, c.CY)
		radius := edge.X - center.X
		if radius < 0 {
			radius = -radius
		}
		doc.Add(encode.Element{Kind: encode.ElementCircle, CX: center.X, CY: center.Y, R: radius, Color: resolve(c.Color), Fill: c.Fill})
	}
	for _, m := range batch.Markers {
		center := toPt(m.X, m.Y)
		size := m.Size
		if size <= 0 {
			size = 4
		}
		fill := m.Fill
		if fill.A == 0 {
			fill = col
		}
		doc.Add(encode.Element{Kind: encode.ElementCircle, CX: center.X, CY: center.Y, R: size, Color: fill, Fill: true})
	}
}

// drawLegend draws a label swatch per series in the requested corner of
// the plot area.
func drawLegend(canvas *raster.Canvas, renderer *text.Renderer, th theme.Theme, series []Series, area raster.Area, pos LegendPosition) error {
	var labeled []Series
	for _, s := range series {
		if s.Label != "" {
			labeled = append(labeled, s)
		}
	}
	if len(labeled) == 0 {
		return nil
	}

	const rowHeight = 18
	const swatch = 12
	const pad = 8

	maxWidth := 0.0
	for _, s := range labeled {
		w, _, err := renderer.MeasureText(th.FontFamily, s.Label, th.FontSize)
		if err != nil {
			return err
		}
		if w > maxWidth {
			maxWidth = w
		}
	}
	boxW := swatch + 6 + maxWidth + 2*pad
	boxH := float64(len(labeled))*rowHeight + 2*pad

	var x, y float64
	switch pos {
	case LegendTopLeft:
		x, y = area.X+pad, area.Y+pad
	case LegendBottomRight:
		x, y = area.X+area.W-boxW-pad, area.Y+area.H-boxH-pad
	case LegendBottomLeft:
		x, y = area.X+pad, area.Y+area.H-boxH-pad
	default: // LegendTopRight
		x, y = area.X+area.W-boxW-pad, area.Y+pad
	}

	canvas.DrawRectangle(x, y, boxW, boxH, th.Background.WithAlpha(230), true)
	canvas.DrawRectangle(x, y, boxW, boxH, th.Foreground, false)

	for i, s := range labeled {
		col := s.Color
		if col.A == 0 {
			col = th.PaletteColor(i)
		}
		rowY := y + pad + float64(i)*rowHeight
		canvas.DrawRectangle(x+pad, rowY, swatch, swatch, col, true)
		if err := renderer.RenderText(canvas.Img, th.FontFamily, s.Label, x+pad+swatch+6, rowY+swatch, th.FontSize, th.Foreground); err != nil {
			return err
		}
	}
	return nil
}
