package subplot

import (
	"testing"

	"github.com/cparo/plotcore/internal/backend"
	"github.com/cparo/plotcore/internal/plots"
	"github.com/cparo/plotcore/internal/render"
)

func testSeries(t *testing.T) render.Series {
	t.Helper()
	batch, err := plots.ComputeLine([]float64{0, 1, 2}, []float64{0, 1, 4}, plots.LineConfig{})
	if err != nil {
		t.Fatal(err)
	}
	return render.Series{Label: "s", Kind: backend.KindLine, Batch: batch}
}

func TestNewFigureRejectsNonPositiveDimensions(t *testing.T) {
	if _, err := NewFigure(0, 2, 400, 300); err == nil {
		t.Fatal("expected error for zero rows")
	}
	if _, err := NewFigure(2, 2, 0, 300); err == nil {
		t.Fatal("expected error for zero width")
	}
}

func TestSubplotRejectsOutOfRangeCell(t *testing.T) {
	f, err := NewFigure(2, 2, 400, 300)
	if err != nil {
		t.Fatal(err)
	}
	if err := f.Subplot(2, 0, []render.Series{testSeries(t)}, render.Options{}); err == nil {
		t.Fatal("expected error for out-of-range row")
	}
}

func TestFigureRenderComposesAllCells(t *testing.T) {
	f, err := NewFigure(2, 2, 400, 300)
	if err != nil {
		t.Fatal(err)
	}
	for r := 0; r < 2; r++ {
		for c := 0; c < 2; c++ {
			if err := f.Subplot(r, c, []render.Series{testSeries(t)}, render.Options{}); err != nil {
				t.Fatal(err)
			}
		}
	}
	f.SupTitle("four plots")
	canvas, err := f.Render()
	if err != nil {
		t.Fatal(err)
	}
	if canvas.W != 400 || canvas.H != 300 {
		t.Fatalf("unexpected figure canvas size %dx%d", canvas.W, canvas.H)
	}
}

func TestFigureRenderSkipsUnassignedCells(t *testing.T) {
	f, err := NewFigure(1, 2, 400, 200)
	if err != nil {
		t.Fatal(err)
	}
	if err := f.Subplot(0, 0, []render.Series{testSeries(t)}, render.Options{}); err != nil {
		t.Fatal(err)
	}
	if _, err := f.Render(); err != nil {
		t.Fatal(err)
	}
}
