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

// Package render implements the orchestrator that ties every other
// package together into one render(plot, width, height, dpi) call:
// theme resolution, range/tick computation, the coordinate transform,
// per-series dispatch through the backend selector, and legend/title
// drawing, producing a finished pixel buffer for an encoder sink.
package render

import (
	"log/slog"

	"github.com/cparo/plotcore/internal/backend"
	"github.com/cparo/plotcore/internal/encode"
	"github.com/cparo/plotcore/internal/ploterr"
	"github.com/cparo/plotcore/internal/plots"
	"github.com/cparo/plotcore/internal/raster"
	"github.com/cparo/plotcore/internal/scale"
	"github.com/cparo/plotcore/internal/text"
	"github.com/cparo/plotcore/internal/theme"
	"github.com/cparo/plotcore/internal/ticks"
	"github.com/cparo/plotcore/internal/xform"
)

// LegendPosition selects a corner of the plot area for the legend box.
type LegendPosition int

const (
	LegendNone LegendPosition = iota
	LegendTopRight
	LegendTopLeft
	LegendBottomRight
	LegendBottomLeft
)

// Series is one already-computed, data-space drawing batch plus the
// metadata the orchestrator needs to place it, label it in the legend,
// and route it through the backend selector.
type Series struct {
	Label string
	Kind  backend.Kind
	Batch plots.Batch
	Color theme.Color
}

// Options configures a single Render call. A zero DPI means 96, a zero
// Margin means 0.1, an unnamed Theme means the light theme, and zero
// Thresholds fields take the backend defaults. Both axes always target 6
// ticks, and the legend uses the theme's font size.
type Options struct {
	Width, Height int
	DPI           float64
	Theme         theme.Theme
	Title         string
	XLabel, YLabel string
	XScale, YScale scale.Scale
	XLim, YLim     *[2]float64
	Grid           bool
	GridStyle      raster.Style
	Legend         LegendPosition
	Margin         float64
	Logger         *slog.Logger
	Caps           backend.Capabilities
	Thresholds     backend.Thresholds
	MaxAggregationCells int
	// Record, when non-nil, receives every primitive drawn during this
	// render in pixel space and draw order, for an SVG encoder sink to
	// walk afterward (spec §4.14's "alternative orchestrator mode").
	Record *encode.Document
}

// Render executes the ten-step pipeline against series, returning the
// finished canvas. Any step failing aborts the render; a partial canvas
// is never returned.
func Render(series []Series, opts Options) (*raster.Canvas, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, ploterr.InvalidParameter("render width and height must be positive")
	}
	if len(series) == 0 {
		return nil, ploterr.EmptyDataSet("render has no series")
	}

	th := opts.Theme
	if th.Name == "" {
		th = theme.Light()
	}
	dpi := opts.DPI
	if dpi <= 0 {
		dpi = 96
	}

	dataMinX, dataMinY, dataMaxX, dataMaxY, ok := unionBounds(series)
	if !ok {
		return nil, ploterr.EmptyDataSet("no series contributed finite data bounds")
	}
	if opts.XLim != nil {
		dataMinX, dataMaxX = opts.XLim[0], opts.XLim[1]
	}
	if opts.YLim != nil {
		dataMinY, dataMaxY = opts.YLim[0], opts.YLim[1]
	}
	if dataMaxX <= dataMinX {
		dataMaxX = dataMinX + 1
	}
	if dataMaxY <= dataMinY {
		dataMaxY = dataMinY + 1
	}

	xScale := opts.XScale
	if xScale == nil {
		xScale = scale.NewLinear(dataMinX, dataMaxX)
	}
	yScale := opts.YScale
	if yScale == nil {
		yScale = scale.NewLinear(dataMinY, dataMaxY)
	}

	margin := opts.Margin
	if margin <= 0 {
		margin = 0.1
	}
	area := plotArea(opts.Width, opts.Height, margin, opts.Title != "", opts.XLabel != "", opts.YLabel != "")

	xTicks := ticks.Compute(dataMinX, dataMaxX, area.X, area.X+area.W, xScale, 6)
	yTicks := ticks.ComputeY(dataMinY, dataMaxY, area.Y, area.Y+area.H, yScale, 6)

	tr := xform.New(
		xform.Range{Min: 0, Max: 1},
		xform.Range{Min: 0, Max: 1},
		xform.Range{Min: area.X, Max: area.X + area.W},
		xform.Range{Min: area.Y, Max: area.Y + area.H},
		true,
	)
	project := func(dx, dy float64) (float32, float32) {
		return tr.DataToScreen(xScale.Transform(dx), yScale.Transform(dy))
	}

	canvas := raster.New(opts.Width, opts.Height, th.Background, dpi)
	canvas.Clear(th.Background)
	doc := opts.Record

	if opts.Grid {
		canvas.DrawGrid(toRasterTicks(xTicks), toRasterTicks(yTicks), area, th.Grid, opts.GridStyle)
	}
	canvas.DrawAxes(area, toRasterTicks(xTicks), toRasterTicks(yTicks), th.Foreground, th.TickLength)
	recordAxes(doc, area, th)

	renderer := text.NewRenderer(dpi)
	drawAxisLabels(canvas, renderer, th, area, xTicks, yTicks)
	recordAxisLabels(doc, th, area, xTicks, yTicks)

	totalPoints := totalPointCount(series)
	for i, s := range series {
		col := s.Color
		if col.A == 0 {
			col = th.PaletteColor(i)
		}
		perSeries := seriesPointCount(s)
		path := backend.Select(totalPoints, perSeries, len(series), s.Kind, opts.Caps, opts.Thresholds, opts.Logger)
		if err := drawSeries(canvas, s.Batch, col, project, path, area, th.Background, opts.MaxAggregationCells); err != nil {
			return nil, ploterr.RenderError("failed to draw series", err)
		}
		recordSeries(doc, s.Batch, col, project)
	}

	if opts.Legend != LegendNone {
		if err := drawLegend(canvas, renderer, th, series, area, opts.Legend); err != nil {
			return nil, ploterr.RenderError("failed to draw legend", err)
		}
	}
	if opts.Title != "" {
		if err := drawTitle(canvas, renderer, th, opts.Title, opts.Width); err != nil {
			return nil, ploterr.RenderError("failed to draw title", err)
		}
		recordTitle(doc, th, opts.Title, opts.Width)
	}
	if opts.XLabel != "" {
		if err := renderer.RenderText(canvas.Img, th.FontFamily, opts.XLabel, area.X+area.W/2-float64(len(opts.XLabel))*3, area.Y+area.H+35, th.FontSize, th.Foreground); err != nil {
			return nil, ploterr.RenderError("failed to draw x label", err)
		}
	}
	if opts.YLabel != "" {
		if err := renderer.RenderTextRotated(canvas.Img, th.FontFamily, opts.YLabel, 14, area.Y+area.H/2+float64(len(opts.YLabel))*3, th.FontSize, th.Foreground); err != nil {
			return nil, ploterr.RenderError("failed to draw y label", err)
		}
	}

	return canvas, nil
}

func plotArea(width, height int, margin float64, hasTitle, hasXLabel, hasYLabel bool) raster.Area {
	left := margin * float64(width)
	right := margin * float64(width)
	top := margin * float64(height)
	bottom := margin * float64(height)
	if hasTitle {
		top += float64(height) * 0.05
	}
	if hasXLabel {
		bottom += float64(height) * 0.04
	}
	if hasYLabel {
		left += float64(width) * 0.03
	}
	return raster.Area{X: left, Y: top, W: float64(width) - left - right, H: float64(height) - top - bottom}
}

func unionBounds(series []Series) (minX, minY, maxX, maxY float64, ok bool) {
	first := true
	for _, s := range series {
		x0, y0, x1, y1, hasBounds := s.Batch.DataBounds()
		if !hasBounds {
			continue
		}
		if first {
			minX, maxX, minY, maxY = x0, x1, y0, y1
			first = false
			continue
		}
		if x0 < minX {
			minX = x0
		}
		if x1 > maxX {
			maxX = x1
		}
		if y0 < minY {
			minY = y0
		}
		if y1 > maxY {
			maxY = y1
		}
	}
	return minX, minY, maxX, maxY, !first
}

func totalPointCount(series []Series) int {
	total := 0
	for _, s := range series {
		total += seriesPointCount(s)
	}
	return total
}

func seriesPointCount(s Series) int {
	n := len(s.Batch.Markers)
	for _, pl := range s.Batch.Polylines {
		n += len(pl.Points)
	}
	n += len(s.Batch.Lines) + len(s.Batch.Rects) + len(s.Batch.Circles)
	return n
}

func toRasterTicks(l ticks.Layout) []raster.TickMark {
	out := make([]raster.TickMark, 0, len(l.Major)+len(l.Minor))
	for _, t := range l.Major {
		out = append(out, raster.TickMark{Pixel: float64(t.PixelPos)})
	}
	for _, t := range l.Minor {
		out = append(out, raster.TickMark{Pixel: float64(t.PixelPos), Minor: true})
	}
	return out
}
