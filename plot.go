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

// Package plotcore is the builder façade: a narrow, thin entry point that
// accumulates configuration into an immutable Plot and hands it to the
// render orchestrator. It is the only package most callers ever import
// directly; everything else lives under internal/ and is reached through
// here.
package plotcore

import (
	"math"

	"github.com/cparo/plotcore/internal/backend"
	"github.com/cparo/plotcore/internal/encode"
	"github.com/cparo/plotcore/internal/plots"
	"github.com/cparo/plotcore/internal/raster"
	"github.com/cparo/plotcore/internal/render"
	"github.com/cparo/plotcore/internal/scale"
	"github.com/cparo/plotcore/internal/theme"
)

// Plot is an immutable description of a finished figure: the accumulated
// series and options a Builder produced. Plot values are safe to share
// and render concurrently across goroutines.
type Plot struct {
	series []render.Series
	opts   render.Options
}

// Builder accumulates plot configuration and series one call at a time.
// Every method returns the receiver so calls chain; the first error
// encountered is latched and returned by Build, Render, and Save, so a
// caller need not check every intermediate call.
type Builder struct {
	opts   render.Options
	series []render.Series
	err    error

	pendingLabel string
	pendingColor theme.Color
	pendingAlpha float64

	sizeW, sizeH float64 // inches, set by Size(); combined with DPI() for dimensions()
}

// New starts a Builder with the documented defaults: light theme, grid
// on, 0.1 fractional margin, no legend.
func New() *Builder {
	return &Builder{
		opts: render.Options{
			Theme:     theme.Light(),
			Grid:      true,
			GridStyle: raster.StyleSolid,
			Legend:    render.LegendNone,
		},
		pendingAlpha: 1,
	}
}

func (b *Builder) fail(err error) *Builder {
	if b.err == nil {
		b.err = err
	}
	return b
}

// Title sets the figure title.
func (b *Builder) Title(s string) *Builder { b.opts.Title = s; return b }

// XLabel sets the x-axis label.
func (b *Builder) XLabel(s string) *Builder { b.opts.XLabel = s; return b }

// YLabel sets the y-axis label.
func (b *Builder) YLabel(s string) *Builder { b.opts.YLabel = s; return b }

// XLim overrides the data extent clamp on the x axis.
func (b *Builder) XLim(min, max float64) *Builder {
	if math.IsNaN(min) || math.IsNaN(max) || math.IsInf(min, 0) || math.IsInf(max, 0) || max <= min {
		return b.fail(InvalidParameter("xlim must be finite with max greater than min"))
	}
	b.opts.XLim = &[2]float64{min, max}
	return b
}

// YLim overrides the data extent clamp on the y axis.
func (b *Builder) YLim(min, max float64) *Builder {
	if math.IsNaN(min) || math.IsNaN(max) || math.IsInf(min, 0) || math.IsInf(max, 0) || max <= min {
		return b.fail(InvalidParameter("ylim must be finite with max greater than min"))
	}
	b.opts.YLim = &[2]float64{min, max}
	return b
}

// XScaleLinear selects a linear x axis (the default).
func (b *Builder) XScaleLinear() *Builder { b.opts.XScale = nil; return b }

// XScaleLog10 selects a base-10 logarithmic x axis over [min,max].
func (b *Builder) XScaleLog10(min, max float64) *Builder {
	s, diag := scale.NewLog10(min, max)
	if !diag.Valid {
		return b.fail(InvalidParameter("log x-scale requires a positive extent"))
	}
	b.opts.XScale = s
	return b
}

// XScaleSymLog selects a symmetric-log x axis with the given linear
// threshold around zero.
func (b *Builder) XScaleSymLog(min, max, linthresh float64) *Builder {
	s, diag := scale.NewSymLog(min, max, linthresh)
	if !diag.Valid {
		return b.fail(InvalidParameter("symlog x-scale requires a positive linear threshold"))
	}
	b.opts.XScale = s
	return b
}

// YScaleLinear selects a linear y axis (the default).
func (b *Builder) YScaleLinear() *Builder { b.opts.YScale = nil; return b }

// YScaleLog10 selects a base-10 logarithmic y axis over [min,max].
func (b *Builder) YScaleLog10(min, max float64) *Builder {
	s, diag := scale.NewLog10(min, max)
	if !diag.Valid {
		return b.fail(InvalidParameter("log y-scale requires a positive extent"))
	}
	b.opts.YScale = s
	return b
}

// YScaleSymLog selects a symmetric-log y axis with the given linear
// threshold around zero.
func (b *Builder) YScaleSymLog(min, max, linthresh float64) *Builder {
	s, diag := scale.NewSymLog(min, max, linthresh)
	if !diag.Valid {
		return b.fail(InvalidParameter("symlog y-scale requires a positive linear threshold"))
	}
	b.opts.YScale = s
	return b
}

// Grid toggles gridline rendering.
func (b *Builder) Grid(on bool) *Builder { b.opts.Grid = on; return b }

// GridColor overrides the theme's grid color.
func (b *Builder) GridColor(c theme.Color) *Builder { b.opts.Theme.Grid = c; return b }

// GridStyle selects the stroke style used for gridlines.
func (b *Builder) GridStyle(s raster.Style) *Builder { b.opts.GridStyle = s; return b }

// Legend enables the legend box at the given corner. Pass
// render.LegendNone to disable it again.
func (b *Builder) Legend(pos render.LegendPosition) *Builder { b.opts.Legend = pos; return b }

// Theme sets a named or custom theme.
func (b *Builder) Theme(th theme.Theme) *Builder { b.opts.Theme = th; return b }

// Dimensions sets the output size directly in pixels.
func (b *Builder) Dimensions(w, h int) *Builder {
	if w <= 0 || h <= 0 {
		return b.fail(InvalidParameter("dimensions must be positive"))
	}
	b.opts.Width, b.opts.Height = w, h
	return b
}

// Size sets the output size in inches; combined with DPI to derive
// pixel dimensions. If both Dimensions and Size×DPI are set, they must
// agree within one pixel (checked in Build).
func (b *Builder) Size(wIn, hIn float64) *Builder {
	if wIn <= 0 || hIn <= 0 {
		return b.fail(InvalidParameter("size must be positive"))
	}
	b.sizeW, b.sizeH = wIn, hIn
	return b
}

// DPI sets the render and output DPI.
func (b *Builder) DPI(d float64) *Builder {
	if d <= 0 {
		return b.fail(InvalidParameter("dpi must be positive"))
	}
	b.opts.DPI = d
	return b
}

// Margin sets the fractional plot-area inset on each side.
func (b *Builder) Margin(frac float64) *Builder {
	if frac < 0 || frac >= 0.5 {
		return b.fail(InvalidParameter("margin must be in [0, 0.5)"))
	}
	b.opts.Margin = frac
	return b
}

// Label sets the label applied to the next plot-kind series.
func (b *Builder) Label(s string) *Builder { b.pendingLabel = s; return b }

// Color sets the color applied to the next plot-kind series, for kinds
// whose config does not already specify one.
func (b *Builder) Color(c theme.Color) *Builder { b.pendingColor = c; return b }

// Alpha sets the opacity applied to the next plot-kind series's color.
func (b *Builder) Alpha(a float64) *Builder {
	if a < 0 || a > 1 {
		return b.fail(InvalidParameter("alpha must be in [0, 1]"))
	}
	b.pendingAlpha = a
	return b
}

// EndSeries closes the current series' styling, resetting label, color
// and alpha to their defaults for the next plot-kind call.
func (b *Builder) EndSeries() *Builder {
	b.pendingLabel = ""
	b.pendingColor = theme.Color{}
	b.pendingAlpha = 1
	return b
}

func (b *Builder) withAlpha(c theme.Color) theme.Color {
	if b.pendingAlpha >= 1 || c.A == 0 {
		return c
	}
	return c.WithAlpha(uint8(float64(c.A) * b.pendingAlpha))
}

// resolveColor returns cfgColor unless it is the zero value, in which
// case it falls back to the pending per-series color (if set).
func (b *Builder) resolveColor(cfgColor theme.Color) theme.Color {
	if cfgColor.A != 0 {
		return b.withAlpha(cfgColor)
	}
	return b.withAlpha(b.pendingColor)
}

func (b *Builder) appendSeries(batch plots.Batch, kind backend.Kind, seriesColor theme.Color, err error) *Builder {
	if err != nil {
		return b.fail(err)
	}
	b.series = append(b.series, render.Series{Label: b.pendingLabel, Kind: kind, Batch: batch, Color: seriesColor})
	b.pendingLabel = ""
	b.pendingColor = theme.Color{}
	b.pendingAlpha = 1
	return b
}

// Line adds a line series.
func (b *Builder) Line(x, y []float64, cfg plots.LineConfig) *Builder {
	cfg.Color = b.resolveColor(cfg.Color)
	batch, err := plots.ComputeLine(x, y, cfg)
	return b.appendSeries(batch, backend.KindLine, cfg.Color, err)
}

// Area adds a line series filled down to baseline.
func (b *Builder) Area(x, y []float64, baseline float64, cfg plots.LineConfig, fill theme.Color) *Builder {
	cfg.Color = b.resolveColor(cfg.Color)
	batch, err := plots.ComputeArea(x, y, baseline, cfg, b.withAlpha(fill))
	return b.appendSeries(batch, backend.KindLine, cfg.Color, err)
}

// FillBetween adds a filled region between two y series sharing x.
func (b *Builder) FillBetween(x, y1, y2 []float64, fill theme.Color) *Builder {
	batch, err := plots.ComputeFillBetween(x, y1, y2, b.withAlpha(fill))
	return b.appendSeries(batch, backend.KindOther, b.withAlpha(fill), err)
}

// Scatter adds a scatter series.
func (b *Builder) Scatter(x, y []float64, cfg plots.ScatterConfig) *Builder {
	cfg.Fill = b.resolveColor(cfg.Fill)
	batch, err := plots.ComputeScatter(x, y, cfg)
	return b.appendSeries(batch, backend.KindScatter, cfg.Fill, err)
}

// ScatterSized adds a bubble-chart scatter series with per-point size.
func (b *Builder) ScatterSized(x, y, size []float64, cfg plots.ScatterConfig) *Builder {
	cfg.Fill = b.resolveColor(cfg.Fill)
	batch, err := plots.ComputeScatterSized(x, y, size, cfg)
	return b.appendSeries(batch, backend.KindScatter, cfg.Fill, err)
}

// Bar adds a bar series.
func (b *Builder) Bar(positions, values []float64, cfg plots.BarConfig) *Builder {
	cfg.Color = b.resolveColor(cfg.Color)
	batch, err := plots.ComputeBar(positions, values, cfg)
	return b.appendSeries(batch, backend.KindOther, cfg.Color, err)
}

// Histogram adds a histogram series.
func (b *Builder) Histogram(data []float64, cfg plots.HistogramConfig) *Builder {
	cfg.Color = b.resolveColor(cfg.Color)
	batch, err := plots.ComputeHistogram(data, cfg)
	return b.appendSeries(batch, backend.KindOther, cfg.Color, err)
}

// Boxplot adds a box-and-whisker series, returning the computed
// five-number summary alongside the builder for callers that want the
// numbers without inspecting the rendered plot.
func (b *Builder) Boxplot(data []float64, cfg plots.BoxPlotConfig) (*Builder, plots.BoxPlotStats) {
	cfg.Color = b.resolveColor(cfg.Color)
	batch, stats, err := plots.ComputeBoxPlot(data, cfg)
	return b.appendSeries(batch, backend.KindOther, cfg.Color, err), stats
}

// Heatmap adds a heatmap series.
func (b *Builder) Heatmap(grid [][]float64, cfg plots.HeatmapConfig) *Builder {
	batch, err := plots.ComputeHeatmap(grid, cfg)
	return b.appendSeries(batch, backend.KindOther, theme.Color{}, err)
}

// KDE adds a kernel-density-estimate series.
func (b *Builder) KDE(data []float64, cfg plots.KDEConfig) *Builder {
	cfg.Color = b.resolveColor(cfg.Color)
	batch, err := plots.ComputeKDE(data, cfg)
	return b.appendSeries(batch, backend.KindLine, cfg.Color, err)
}

// ECDF adds an empirical-CDF series.
func (b *Builder) ECDF(data []float64, cfg plots.ECDFConfig) *Builder {
	cfg.Color = b.resolveColor(cfg.Color)
	batch, err := plots.ComputeECDF(data, cfg)
	return b.appendSeries(batch, backend.KindLine, cfg.Color, err)
}

// Violin adds a violin series.
func (b *Builder) Violin(data []float64, cfg plots.ViolinConfig) *Builder {
	cfg.Color = b.resolveColor(cfg.Color)
	batch, err := plots.ComputeViolin(data, cfg)
	return b.appendSeries(batch, backend.KindOther, cfg.Color, err)
}

// Boxen adds a letter-value (boxen) series.
func (b *Builder) Boxen(data []float64, cfg plots.BoxenConfig) *Builder {
	cfg.Color = b.resolveColor(cfg.Color)
	batch, err := plots.ComputeBoxen(data, cfg)
	return b.appendSeries(batch, backend.KindOther, cfg.Color, err)
}

// Contour adds an iso-line series extracted from a scalar grid.
func (b *Builder) Contour(grid [][]float64, cfg plots.ContourConfig) *Builder {
	cfg.Color = b.resolveColor(cfg.Color)
	batch, err := plots.ComputeContour(grid, cfg)
	return b.appendSeries(batch, backend.KindOther, cfg.Color, err)
}

// Hexbin adds a hexagonally-binned density series.
func (b *Builder) Hexbin(x, y []float64, cfg plots.HexbinConfig) *Builder {
	batch, err := plots.ComputeHexbin(x, y, cfg)
	return b.appendSeries(batch, backend.KindOther, theme.Color{}, err)
}

// Step adds a staircase series.
func (b *Builder) Step(x, y []float64, cfg plots.StepConfig) *Builder {
	cfg.Color = b.resolveColor(cfg.Color)
	batch, err := plots.ComputeStep(x, y, cfg)
	return b.appendSeries(batch, backend.KindLine, cfg.Color, err)
}

// Stem adds a stem (lollipop) series.
func (b *Builder) Stem(x, y []float64, cfg plots.StemConfig) *Builder {
	cfg.Color = b.resolveColor(cfg.Color)
	batch, err := plots.ComputeStem(x, y, cfg)
	return b.appendSeries(batch, backend.KindOther, cfg.Color, err)
}

// Polar adds a polar series.
func (b *Builder) Polar(theta, r []float64, cfg plots.PolarConfig) *Builder {
	cfg.Color = b.resolveColor(cfg.Color)
	batch, err := plots.ComputePolar(theta, r, cfg)
	return b.appendSeries(batch, backend.KindOther, cfg.Color, err)
}

// Radar adds a radar (spider) series.
func (b *Builder) Radar(values []float64, cfg plots.RadarConfig) *Builder {
	cfg.Color = b.resolveColor(cfg.Color)
	batch, err := plots.ComputeRadar(values, cfg)
	return b.appendSeries(batch, backend.KindOther, cfg.Color, err)
}

// Regression adds a fitted-curve series, optionally with a confidence
// band.
func (b *Builder) Regression(x, y []float64, cfg plots.RegressionConfig) *Builder {
	cfg.Color = b.resolveColor(cfg.Color)
	batch, err := plots.ComputeRegression(x, y, cfg)
	return b.appendSeries(batch, backend.KindLine, cfg.Color, err)
}

// Residual adds a residual-diagnostic series for a fit of the given
// degree.
func (b *Builder) Residual(x, y []float64, degree int, cfg plots.ResidualConfig) *Builder {
	cfg.Color = b.resolveColor(cfg.Color)
	batch, err := plots.ComputeResidual(x, y, degree, cfg)
	return b.appendSeries(batch, backend.KindScatter, cfg.Color, err)
}

// Dendrogram adds a hierarchical-clustering linkage series.
func (b *Builder) Dendrogram(linkage []plots.LinkageRow, cfg plots.DendrogramConfig) *Builder {
	cfg.Color = b.resolveColor(cfg.Color)
	batch, err := plots.ComputeDendrogram(linkage, cfg)
	return b.appendSeries(batch, backend.KindOther, cfg.Color, err)
}

// ErrorBars adds an error-bar series.
func (b *Builder) ErrorBars(x, y, yErr []float64, xErr []float64, cfg plots.ErrorBarConfig) *Builder {
	cfg.Color = b.resolveColor(cfg.Color)
	batch, err := plots.ComputeErrorBars(x, y, yErr, xErr, cfg)
	return b.appendSeries(batch, backend.KindOther, cfg.Color, err)
}

// Build validates the accumulated configuration and returns an
// immutable Plot, resolving dimensions from either Dimensions or
// Size×DPI (the two must agree within one pixel when both are set).
func (b *Builder) Build() (*Plot, error) {
	if b.err != nil {
		return nil, b.err
	}
	if len(b.series) == 0 {
		return nil, EmptyDataSet("plot has no series")
	}

	opts := b.opts
	if opts.DPI <= 0 {
		opts.DPI = 96
	}
	if b.sizeW > 0 && b.sizeH > 0 {
		derivedW := int(math.Round(b.sizeW * opts.DPI))
		derivedH := int(math.Round(b.sizeH * opts.DPI))
		if opts.Width > 0 || opts.Height > 0 {
			if abs(opts.Width-derivedW) > 1 || abs(opts.Height-derivedH) > 1 {
				return nil, InvalidParameter("dimensions and size*dpi disagree by more than one pixel")
			}
		} else {
			opts.Width, opts.Height = derivedW, derivedH
		}
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, InvalidParameter("plot has no output dimensions: call Dimensions or Size+DPI")
	}
	if opts.Caps == (backend.Capabilities{}) {
		opts.Caps = backend.DefaultCapabilities()
	}
	if opts.Thresholds == (backend.Thresholds{}) {
		opts.Thresholds = backend.DefaultThresholds()
	}

	return &Plot{series: append([]render.Series{}, b.series...), opts: opts}, nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Render executes the render pipeline and returns the finished canvas
// without writing it anywhere.
func (b *Builder) Render() (*raster.Canvas, error) {
	p, err := b.Build()
	if err != nil {
		return nil, err
	}
	return p.Render()
}

// Save executes the render pipeline and writes the result to path,
// dispatching on its extension (".svg" for the SVG encoder sink,
// anything else for PNG). No partial file is left on disk if any step
// fails.
func (b *Builder) Save(path string) error {
	p, err := b.Build()
	if err != nil {
		return err
	}
	return p.Save(path)
}

// Render executes the render pipeline for an already-built Plot.
func (p *Plot) Render() (*raster.Canvas, error) {
	return render.Render(p.series, p.opts)
}

// Save executes the render pipeline and writes the result to path. SVG
// output is produced when path ends in ".svg"; otherwise PNG.
func (p *Plot) Save(path string) error {
	if len(path) >= 4 && path[len(path)-4:] == ".svg" {
		doc := encode.NewDocument(p.opts.Width, p.opts.Height)
		opts := p.opts
		opts.Record = doc
		if _, err := render.Render(p.series, opts); err != nil {
			return err
		}
		return encode.WriteSVG(doc, path)
	}
	canvas, err := p.Render()
	if err != nil {
		return err
	}
	return encode.WritePNG(canvas, path)
}
