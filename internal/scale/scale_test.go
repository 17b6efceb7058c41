package scale

import (
	"math"
	"testing"
)

func TestLinearInverse(t *testing.T) {
	s := NewLinear(2, 202)
	for _, v := range []float64{2, 50, 101, 202} {
		got := s.Inverse(s.Transform(v))
		if math.Abs(got-v) > 1e-9*200 {
			t.Errorf("linear inverse(%v) = %v, want ~%v", v, got, v)
		}
	}
}

func TestLinearZeroRangeCollapses(t *testing.T) {
	s := NewLinear(5, 5)
	if s.Transform(5) != 0.5 {
		t.Fatalf("expected 0.5, got %v", s.Transform(5))
	}
}

func TestLog10RejectsNonPositive(t *testing.T) {
	_, d := NewLog10(-1, 100)
	if d.Valid {
		t.Fatal("expected invalid diagnostic for negative min")
	}
	_, d2 := NewLog10(0, 100)
	if d2.Valid {
		t.Fatal("expected invalid diagnostic for zero min")
	}
}

func TestLog10Inverse(t *testing.T) {
	s, d := NewLog10(1, 10000)
	if !d.Valid {
		t.Fatal(d.Message)
	}
	for _, v := range []float64{1, 10, 100, 1000, 10000} {
		got := s.Inverse(s.Transform(v))
		if math.Abs(got-v) > 1e-6*9999 {
			t.Errorf("log10 inverse(%v) = %v, want ~%v", v, got, v)
		}
	}
}

func TestLog10TransformNonPositiveIsZero(t *testing.T) {
	s, _ := NewLog10(1, 100)
	if s.Transform(-5) != 0 {
		t.Fatalf("expected 0 for non-positive input, got %v", s.Transform(-5))
	}
}

func TestSymLogContinuousAtThreshold(t *testing.T) {
	s := SymLogScale{min: -100, max: 100, linthresh: 1}
	left := s.symlog(1 - 1e-9)
	right := s.symlog(1 + 1e-9)
	if math.Abs(left-right) > 1e-6 {
		t.Errorf("symlog discontinuous at +linthresh: %v vs %v", left, right)
	}
	negLeft := s.symlog(-1 + 1e-9)
	negRight := s.symlog(-1 - 1e-9)
	if math.Abs(negLeft-negRight) > 1e-6 {
		t.Errorf("symlog discontinuous at -linthresh: %v vs %v", negLeft, negRight)
	}
}

func TestSymLogSymmetric(t *testing.T) {
	s := SymLogScale{min: -100, max: 100, linthresh: 1}
	for _, v := range []float64{0.5, 1, 5, 50, 99} {
		if math.Abs(s.symlog(v)+s.symlog(-v)) > 1e-9 {
			t.Errorf("symlog(%v) != -symlog(-%v)", v, v)
		}
	}
}

func TestSymLogInverse(t *testing.T) {
	s, d := NewSymLog(-100, 100, 1)
	if !d.Valid {
		t.Fatal(d.Message)
	}
	for _, v := range []float64{-100, -50, -1, 0, 1, 50, 100} {
		got := s.Inverse(s.Transform(v))
		if math.Abs(got-v) > 1e-2*200 {
			t.Errorf("symlog inverse(%v) = %v, want ~%v", v, got, v)
		}
	}
}
