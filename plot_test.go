package plotcore

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cparo/plotcore/internal/plots"
	"github.com/cparo/plotcore/internal/render"
	"github.com/cparo/plotcore/internal/theme"
)

func TestBuilderBasicLineRenders(t *testing.T) {
	canvas, err := New().
		Title("demo").
		XLabel("x").YLabel("y").
		Dimensions(640, 480).
		Line([]float64{0, 1, 2, 3, 4}, []float64{0, 1, 4, 9, 16}, plots.LineConfig{Color: theme.Color{R: 200, A: 255}, Width: 2}).
		Render()
	if err != nil {
		t.Fatal(err)
	}
	if canvas.W != 640 || canvas.H != 480 {
		t.Fatalf("unexpected canvas size %dx%d", canvas.W, canvas.H)
	}
}

func TestBuilderRejectsEmptyPlot(t *testing.T) {
	_, err := New().Dimensions(100, 100).Build()
	if err == nil {
		t.Fatal("expected an error for a plot with no series")
	}
}

func TestBuilderRejectsMissingDimensions(t *testing.T) {
	_, err := New().
		Line([]float64{0, 1}, []float64{0, 1}, plots.LineConfig{Color: theme.Color{A: 255}}).
		Build()
	if err == nil {
		t.Fatal("expected an error when neither Dimensions nor Size+DPI is set")
	}
}

func TestBuilderSizeAndDPIDeriveDimensions(t *testing.T) {
	p, err := New().
		Size(6.4, 4.8).DPI(100).
		Line([]float64{0, 1}, []float64{0, 1}, plots.LineConfig{Color: theme.Color{A: 255}}).
		Build()
	if err != nil {
		t.Fatal(err)
	}
	canvas, err := p.Render()
	if err != nil {
		t.Fatal(err)
	}
	if canvas.W != 640 || canvas.H != 480 {
		t.Fatalf("expected 640x480 from 6.4in x 4.8in at 100 dpi, got %dx%d", canvas.W, canvas.H)
	}
}

func TestBuilderRejectsDisagreeingDimensionsAndSize(t *testing.T) {
	_, err := New().
		Dimensions(100, 100).
		Size(6.4, 4.8).DPI(100).
		Line([]float64{0, 1}, []float64{0, 1}, plots.LineConfig{Color: theme.Color{A: 255}}).
		Build()
	if err == nil {
		t.Fatal("expected an error when dimensions and size*dpi disagree")
	}
}

func TestBuilderLatchesFirstError(t *testing.T) {
	_, err := New().
		XLim(5, 1).
		YLim(0, 1).
		Dimensions(100, 100).
		Line([]float64{0, 1}, []float64{0, 1}, plots.LineConfig{Color: theme.Color{A: 255}}).
		Build()
	if err == nil {
		t.Fatal("expected the invalid XLim to surface at Build")
	}
}

func TestBuilderMultiSeriesWithLegendAndEndSeries(t *testing.T) {
	canvas, err := New().
		Dimensions(400, 300).
		Legend(render.LegendTopRight).
		Label("squares").Color(theme.Color{R: 255, A: 255}).
		Line([]float64{0, 1, 2}, []float64{0, 1, 4}, plots.LineConfig{Width: 1.5}).
		EndSeries().
		Label("cubes").Color(theme.Color{B: 255, A: 255}).
		Scatter([]float64{0, 1, 2}, []float64{0, 1, 8}, plots.ScatterConfig{Shape: plots.MarkerCircle, Size: 3}).
		Render()
	if err != nil {
		t.Fatal(err)
	}
	if canvas == nil {
		t.Fatal("expected a non-nil canvas")
	}
}

func TestBuilderColorAlphaAppliesToPendingSeries(t *testing.T) {
	b := New().
		Dimensions(100, 100).
		Color(theme.Color{R: 100, G: 100, B: 100, A: 200}).
		Alpha(0.5).
		Line([]float64{0, 1}, []float64{0, 1}, plots.LineConfig{})
	if len(b.series) != 1 {
		t.Fatalf("expected one series, got %d", len(b.series))
	}
	if b.series[0].Color.A != 100 {
		t.Fatalf("expected alpha 0.5 of 200 to yield A=100, got %d", b.series[0].Color.A)
	}
}

func TestPlotSaveWritesPNG(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.png")
	err := New().
		Dimensions(200, 150).
		Line([]float64{0, 1, 2}, []float64{0, 2, 1}, plots.LineConfig{Color: theme.Color{A: 255}, Width: 1}).
		Save(path)
	if err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	sig := []byte{0x89, 'P', 'N', 'G'}
	if string(data[:4]) != string(sig) {
		t.Fatal("expected a PNG signature")
	}
}

func TestPlotSaveWritesSVGForSVGExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.svg")
	err := New().
		Dimensions(200, 150).
		Line([]float64{0, 1, 2}, []float64{0, 2, 1}, plots.LineConfig{Color: theme.Color{A: 255}, Width: 1}).
		Save(path)
	if err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "<svg") {
		t.Fatal("expected SVG markup")
	}
}

func TestBuilderBoxplotReturnsStats(t *testing.T) {
	b, stats := New().
		Dimensions(200, 150).
		Boxplot([]float64{1, 2, 3, 4, 5, 6, 7, 8, 9}, plots.BoxPlotConfig{Width: 0.5, OutlierMethod: plots.OutlierIQR, WhiskerMethod: plots.WhiskerTukey})
	if stats.Median != 5 {
		t.Fatalf("expected median 5, got %v", stats.Median)
	}
	if _, err := b.Build(); err != nil {
		t.Fatal(err)
	}
}
