package render

import (
	"image/color"
	"testing"

	"github.com/cparo/plotcore/internal/backend"
	"github.com/cparo/plotcore/internal/ploterr"
	"github.com/cparo/plotcore/internal/plots"
)

func lineSeries(label string) Series {
	batch, err := plots.ComputeLine([]float64{0, 1, 2, 3}, []float64{0, 1, 4, 9}, plots.LineConfig{})
	if err != nil {
		panic(err)
	}
	return Series{Label: label, Kind: backend.KindLine, Batch: batch}
}

func TestRenderProducesNonBackgroundPixels(t *testing.T) {
	canvas, err := Render([]Series{lineSeries("y=x^2")}, Options{Width: 200, Height: 150, Grid: true})
	if err != nil {
		t.Fatal(err)
	}
	bg := canvas.Img.At(0, 0)
	differs := false
	b := canvas.Img.Bounds()
	for y := b.Min.Y; y < b.Max.Y && !differs; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if !colorsEqual(canvas.Img.At(x, y), bg) {
				differs = true
				break
			}
		}
	}
	if !differs {
		t.Fatal("expected render to paint something other than the background color")
	}
}

func colorsEqual(a, b color.Color) bool {
	ar, ag, ab, aa := a.RGBA()
	br, bg, bb, ba := b.RGBA()
	return ar == br && ag == bg && ab == bb && aa == ba
}

func TestRenderRejectsEmptySeries(t *testing.T) {
	_, err := Render(nil, Options{Width: 100, Height: 100})
	if err == nil {
		t.Fatal("expected error for empty series slice")
	}
	perr, ok := err.(*ploterr.Error)
	if !ok || perr.Kind != ploterr.KindEmptyDataSet {
		t.Fatalf("expected KindEmptyDataSet, got %v", err)
	}
}

func TestRenderRejectsNonPositiveDimensions(t *testing.T) {
	_, err := Render([]Series{lineSeries("s")}, Options{Width: 0, Height: 100})
	if err == nil {
		t.Fatal("expected error for non-positive width")
	}
}

func TestRenderHonorsXLimYLim(t *testing.T) {
	xlim := [2]float64{-10, 10}
	ylim := [2]float64{-10, 10}
	canvas, err := Render([]Series{lineSeries("s")}, Options{
		Width: 200, Height: 150, XLim: &xlim, YLim: &ylim,
	})
	if err != nil {
		t.Fatal(err)
	}
	if canvas.W != 200 || canvas.H != 150 {
		t.Fatalf("unexpected canvas size %dx%d", canvas.W, canvas.H)
	}
}

func TestRenderWithLegendAndTitleSucceeds(t *testing.T) {
	_, err := Render([]Series{lineSeries("alpha"), lineSeries("beta")}, Options{
		Width: 300, Height: 200,
		Title: "demo", XLabel: "x", YLabel: "y",
		Legend: LegendTopRight,
	})
	if err != nil {
		t.Fatal(err)
	}
}

func TestRenderRoutesLargeScatterThroughAggregator(t *testing.T) {
	n := 200_000
	xs := make([]float64, n)
	ys := make([]float64, n)
	for i := range xs {
		xs[i] = float64(i % 500)
		ys[i] = float64((i * 7) % 500)
	}
	batch, err := plots.ComputeScatter(xs, ys, plots.ScatterConfig{})
	if err != nil {
		t.Fatal(err)
	}
	series := []Series{{Label: "cloud", Kind: backend.KindScatter, Batch: batch}}
	canvas, err := Render(series, Options{Width: 256, Height: 256})
	if err != nil {
		t.Fatal(err)
	}
	if canvas.W != 256 {
		t.Fatalf("unexpected width %d", canvas.W)
	}
}
