package render

import "testing"

func approxEqual(a, b float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < 1e-9
}

func TestEasingBoundaryValues(t *testing.T) {
	fns := map[string]Easing{
		"linear":        LinearEase,
		"ease_in_quad":  EaseInQuad,
		"ease_out_quad": EaseOutQuad,
		"ease_in_out":   EaseInOutQuad,
		"ease_in_elas":  EaseInElastic,
		"ease_out_elas": EaseOutElastic,
	}
	for name, fn := range fns {
		if !approxEqual(fn(0), 0) {
			t.Errorf("%s(0) = %v, want 0", name, fn(0))
		}
		if !approxEqual(fn(1), 1) {
			t.Errorf("%s(1) = %v, want 1", name, fn(1))
		}
	}
}

func TestEaseInSlowerThanLinear(t *testing.T) {
	if EaseInQuad(0.25) >= 0.25 {
		t.Fatal("expected ease-in to lag behind linear progress")
	}
}

func TestEaseOutFasterThanLinear(t *testing.T) {
	if EaseOutQuad(0.25) <= 0.25 {
		t.Fatal("expected ease-out to lead linear progress")
	}
}

func TestLerpClampsOutOfRangeProgress(t *testing.T) {
	if v := Lerp(0, 10, -1); v != 0 {
		t.Fatalf("expected clamp to start, got %v", v)
	}
	if v := Lerp(0, 10, 2); v != 10 {
		t.Fatalf("expected clamp to end, got %v", v)
	}
}
