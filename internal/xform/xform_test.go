package xform

import (
	"math"
	"testing"
)

func TestRoundTrip(t *testing.T) {
	tr := New(Range{0, 100}, Range{-5, 5}, Range{10, 640}, Range{10, 480}, true)
	cases := []struct{ dx, dy float64 }{
		{0, -5}, {100, 5}, {50, 0}, {12.3, -1.2},
	}
	for _, c := range cases {
		sx, sy := tr.DataToScreen(c.dx, c.dy)
		gx, gy := tr.ScreenToData(sx, sy)
		if math.Abs(gx-c.dx) > 1e-4*100 {
			t.Errorf("x round-trip: got %v want %v", gx, c.dx)
		}
		if math.Abs(gy-c.dy) > 1e-4*10 {
			t.Errorf("y round-trip: got %v want %v", gy, c.dy)
		}
	}
}

func TestZeroRangeCollapsesToMidpoint(t *testing.T) {
	tr := New(Range{5, 5}, Range{0, 10}, Range{0, 100}, Range{0, 100}, false)
	sx, _ := tr.DataToScreen(5, 5)
	if sx != 50 {
		t.Fatalf("expected collapse to screen midpoint 50, got %v", sx)
	}
}

func TestZeroScreenRangeReturnsDataMin(t *testing.T) {
	tr := New(Range{0, 10}, Range{0, 10}, Range{50, 50}, Range{0, 100}, false)
	dx, _ := tr.ScreenToData(50, 0)
	if dx != 0 {
		t.Fatalf("expected data-range lower bound 0, got %v", dx)
	}
}

func TestInvertY(t *testing.T) {
	tr := New(Range{0, 1}, Range{0, 1}, Range{0, 100}, Range{0, 200}, true)
	_, syTop := tr.DataToScreen(0, 1)
	_, syBottom := tr.DataToScreen(0, 0)
	if syTop >= syBottom {
		t.Fatalf("expected inverted Y: top(%v) should be < bottom(%v)", syTop, syBottom)
	}
}
