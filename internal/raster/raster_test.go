package raster

import (
	"testing"

	"github.com/cparo/plotcore/internal/theme"
)

func TestDrawLineWritesNonBackgroundPixels(t *testing.T) {
	bg := theme.Color{255, 255, 255, 255}
	c := New(100, 100, bg, 96)
	c.DrawLine(10, 50, 90, 50, theme.Color{0, 0, 0, 255}, 2, StyleSolid)

	found := false
	for x := 10; x < 90; x++ {
		r, g, b, _ := c.Img.At(x, 50).RGBA()
		if r>>8 < 200 && g>>8 < 200 && b>>8 < 200 {
			found = true
			break
		}
	}
	if !found {
		t.Fatal("expected a darkened pixel along the drawn line")
	}
}

func TestFillPolygonFillsInterior(t *testing.T) {
	bg := theme.Color{255, 255, 255, 255}
	c := New(50, 50, bg, 96)
	c.FillPolygon([]Point{{5, 5}, {45, 5}, {45, 45}, {5, 45}}, theme.Color{0, 0, 255, 255}, FillNonZero)

	r, g, b, a := c.Img.At(25, 25).RGBA()
	if a>>8 == 0 || b>>8 < 200 || r>>8 > 50 || g>>8 > 50 {
		t.Fatalf("expected blue interior pixel, got rgba=%d,%d,%d,%d", r>>8, g>>8, b>>8, a>>8)
	}
}

func TestMinVisibleWidthScalesWithDPI(t *testing.T) {
	c1 := New(10, 10, theme.Color{}, 96)
	c2 := New(10, 10, theme.Color{}, 192)
	if c2.MinVisibleWidth() <= c1.MinVisibleWidth() {
		t.Fatalf("expected higher DPI to require a larger minimum stroke width")
	}
}

func TestSplitDashesProducesMultipleSegments(t *testing.T) {
	pts := []Point{{0, 0}, {100, 0}}
	segs := splitDashes(pts, pattern(StyleDashed, 1, nil))
	if len(segs) < 2 {
		t.Fatalf("expected multiple dash segments, got %d", len(segs))
	}
}
