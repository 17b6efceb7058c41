package ticks

import (
	"math"
	"strings"
	"testing"

	"github.com/cparo/plotcore/internal/scale"
)

func labels(l Layout) []string {
	var out []string
	for _, t := range l.Major {
		out = append(out, t.Label)
	}
	return out
}

func TestLinearTicksIncludeExpectedValues(t *testing.T) {
	l := Compute(0, 16, 0, 640, scale.NewLinear(0, 16), 5)
	want := map[string]bool{"0": false, "5": false, "10": false, "15": false}
	for _, lab := range labels(l) {
		if _, ok := want[lab]; ok {
			want[lab] = true
		}
	}
	for lab, seen := range want {
		if !seen {
			t.Errorf("expected label %q among ticks, got %v", lab, labels(l))
		}
	}
}

func TestTickPixelAlignment(t *testing.T) {
	l := Compute(0, 100, 10, 630, scale.NewLinear(0, 100), 6)
	sc := scale.NewLinear(0, 100)
	for _, tick := range l.Major {
		want := sc.Transform(tick.DataPos)*(630-10) + 10
		if math.Abs(float64(tick.PixelPos)-want) > 0.1 {
			t.Errorf("tick %v: pixel %v want %v", tick.DataPos, tick.PixelPos, want)
		}
	}
}

func TestLog10TicksIncludeDecadeLabels(t *testing.T) {
	s, d := scale.NewLog10(1, 10000)
	if !d.Valid {
		t.Fatal(d.Message)
	}
	l := Compute(1, 10000, 0, 640, s, 5)
	labs := labels(l)
	for _, want := range []string{"1", "10", "10^2", "10^3", "10^4"} {
		found := false
		for _, lab := range labs {
			if lab == want {
				found = true
			}
		}
		if !found {
			t.Errorf("expected label %q among %v", want, labs)
		}
	}
}

func TestSymLogTicksIncludeZeroAndSymmetricSet(t *testing.T) {
	s, d := scale.NewSymLog(-100, 100, 1)
	if !d.Valid {
		t.Fatal(d.Message)
	}
	l := Compute(-100, 100, 0, 640, s, 5)
	hasZero := false
	for _, tick := range l.Major {
		if tick.DataPos == 0 {
			hasZero = true
		}
	}
	if !hasZero {
		t.Error("expected 0 among symlog ticks")
	}
	pos, neg := 0, 0
	for _, tick := range l.Major {
		if tick.DataPos > 0 {
			pos++
		} else if tick.DataPos < 0 {
			neg++
		}
	}
	if pos == 0 || neg == 0 {
		t.Errorf("expected both positive and negative ticks, got pos=%d neg=%d", pos, neg)
	}
}

func TestComputeYAlignment(t *testing.T) {
	l := ComputeY(0, 16, 10, 470, scale.NewLinear(0, 16), 5)
	if len(l.Major) == 0 {
		t.Fatal("expected ticks")
	}
	// Top of pixel range corresponds to the data maximum under inversion.
	var maxTick Tick
	for _, tick := range l.Major {
		if tick.DataPos > maxTick.DataPos {
			maxTick = tick
		}
	}
	if maxTick.PixelPos >= 470 {
		t.Errorf("expected max-data tick near pixel top, got %v", maxTick.PixelPos)
	}
}

func TestFormatLabelStripsTrailingZeros(t *testing.T) {
	if got := FormatLabel(4); got != "4" {
		t.Errorf("FormatLabel(4) = %q, want \"4\"", got)
	}
	if got := FormatLabel(1.5); got != "1.5" {
		t.Errorf("FormatLabel(1.5) = %q, want \"1.5\"", got)
	}
}

func TestFormatLabelScientificForExtremes(t *testing.T) {
	got := FormatLabel(1e6)
	if !strings.Contains(got, "e") {
		t.Errorf("FormatLabel(1e6) = %q, expected scientific notation", got)
	}
}
