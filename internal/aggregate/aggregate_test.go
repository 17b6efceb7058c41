package aggregate

import (
	"testing"

	"github.com/cparo/plotcore/internal/ploterr"
	"github.com/cparo/plotcore/internal/theme"
)

func samplePoints() []Point {
	pts := make([]Point, 0, 5000)
	for i := 0; i < 5000; i++ {
		pts = append(pts, Point{X: i % 64, Y: (i * 7) % 64, Value: float64(i % 10)})
	}
	return pts
}

func TestAggregateIdempotence(t *testing.T) {
	pts := samplePoints()
	bg := theme.Color{R: 255, G: 255, B: 255, A: 255}
	colormap := func(t float64) theme.Color { return theme.Color{R: uint8(t * 255), G: 0, B: uint8((1 - t) * 255), A: 255} }

	a, err := Aggregate(pts, 64, 64, ReduceCount, colormap, false, bg, 0)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Aggregate(pts, 64, 64, ReduceCount, colormap, false, bg, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(a) != len(b) {
		t.Fatalf("length mismatch: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("pixel %d differs between runs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestAggregateRejectsOverBudgetCanvas(t *testing.T) {
	_, err := NewCanvas(1000, 1000, 100)
	if err == nil {
		t.Fatal("expected ResourceBudgetExceeded")
	}
	var perr *ploterr.Error
	if e, ok := err.(*ploterr.Error); !ok || e.Kind != ploterr.KindResourceBudgetExceeded {
		t.Fatalf("expected KindResourceBudgetExceeded, got %v (%T)", err, perr)
	}
}

func TestAggregateOutOfBoundsPointsAreDropped(t *testing.T) {
	canvas, err := NewCanvas(4, 4, 0)
	if err != nil {
		t.Fatal(err)
	}
	canvas.Add(-1, 0, 1)
	canvas.Add(0, 10, 1)
	canvas.Add(2, 2, 5)
	if canvas.count[2*4+2] != 1 {
		t.Fatalf("expected exactly one in-bounds hit recorded, got %d", canvas.count[2*4+2])
	}
	total := uint32(0)
	for _, c := range canvas.count {
		total += c
	}
	if total != 1 {
		t.Fatalf("expected out-of-bounds adds to be dropped, total=%d", total)
	}
}

func TestAggregateMeanReduction(t *testing.T) {
	canvas, err := NewCanvas(2, 2, 0)
	if err != nil {
		t.Fatal(err)
	}
	canvas.Add(0, 0, 2)
	canvas.Add(0, 0, 4)
	mean := canvas.reduce(0, ReduceMean)
	if mean != 3 {
		t.Fatalf("expected mean 3, got %v", mean)
	}
}
