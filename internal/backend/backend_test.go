package backend

import (
	"context"
	"math"
	"testing"
)

func TestSelectScalarBelowTenThousand(t *testing.T) {
	p := Select(9999, 9999, 1, KindOther, DefaultCapabilities(), DefaultThresholds(), nil)
	if p != PathScalar {
		t.Fatalf("expected scalar path, got %v", p)
	}
}

func TestSelectVectorizedBetweenScalarAndParallel(t *testing.T) {
	p := Select(50_000, 50_000, 1, KindOther, DefaultCapabilities(), DefaultThresholds(), nil)
	if p != PathVectorized {
		t.Fatalf("expected vectorized path, got %v", p)
	}
}

func TestSelectParallelAboveThreshold(t *testing.T) {
	p := Select(2_000_000, 2_000_000, 1, KindOther, DefaultCapabilities(), DefaultThresholds(), nil)
	if p != PathParallel {
		t.Fatalf("expected parallel path, got %v", p)
	}
}

func TestSelectAggregatesLargeScatterSeries(t *testing.T) {
	p := Select(200_000, 200_000, 1, KindScatter, DefaultCapabilities(), DefaultThresholds(), nil)
	if p != PathAggregate {
		t.Fatalf("expected aggregate path, got %v", p)
	}
}

func TestSelectDoesNotAggregateBarSeries(t *testing.T) {
	p := Select(2_000_000, 2_000_000, 1, KindOther, DefaultCapabilities(), DefaultThresholds(), nil)
	if p == PathAggregate {
		t.Fatal("expected bar-kind series to never route through the aggregator")
	}
}

func TestSeriesParallelEligibleAtHalfCores(t *testing.T) {
	caps := Capabilities{Parallel: true, Cores: 8}
	if !SeriesParallelEligible(4, caps) {
		t.Fatal("expected eligibility at series count == cores/2")
	}
	if SeriesParallelEligible(2, caps) {
		t.Fatal("expected ineligibility below cores/2")
	}
}

// TestTransformChunkedMatchesScalarWithinOneULP exercises the contract
// in spec §8: parallel coordinate transforms must agree with the
// scalar result to within 1 ULP of the f32 value.
func TestTransformChunkedMatchesScalarWithinOneULP(t *testing.T) {
	n := 20000
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = float64(i) * 1.0000001
	}
	fn := func(v float64) float64 { return v*2.5 + 1.0 }

	scalar := make([]float64, n)
	for i, v := range xs {
		scalar[i] = fn(v)
	}

	parallel := make([]float64, n)
	if err := TransformChunked(context.Background(), xs, parallel, fn); err != nil {
		t.Fatal(err)
	}

	for i := range scalar {
		a := float32(scalar[i])
		b := float32(parallel[i])
		if ulpDiff(a, b) > 1 {
			t.Fatalf("index %d: scalar %v parallel %v differ by more than 1 ULP", i, a, b)
		}
	}
}

func ulpDiff(a, b float32) int64 {
	ai := int64(math.Float32bits(a))
	bi := int64(math.Float32bits(b))
	d := ai - bi
	if d < 0 {
		d = -d
	}
	return d
}
