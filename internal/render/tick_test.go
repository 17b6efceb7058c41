package render

import "testing"

func TestFrameClockAdvancesCount(t *testing.T) {
	c := NewFrameClock(30)
	f0 := c.Next()
	f1 := c.Next()
	if f0.Count != 0 || f1.Count != 1 {
		t.Fatalf("expected counts 0,1 got %d,%d", f0.Count, f1.Count)
	}
	if f0.State != FrameRecording {
		t.Fatalf("expected FrameRecording, got %v", f0.State)
	}
	want := 1.0 / 30
	if diff := f1.Time - want; diff > 1e-9 || diff < -1e-9 {
		t.Fatalf("expected time %v, got %v", want, f1.Time)
	}
}

func TestFrameClockFinalizeFlagsState(t *testing.T) {
	c := NewFrameClock(30)
	c.Next()
	c.Next()
	f := c.Finalize()
	if f.Count != 2 || f.State != FrameFinalizing {
		t.Fatalf("expected count 2 state Finalizing, got %d %v", f.Count, f.State)
	}
}

func TestFrameClockReset(t *testing.T) {
	c := NewFrameClock(60)
	c.Next()
	c.Next()
	c.Reset()
	f := c.Next()
	if f.Count != 0 {
		t.Fatalf("expected count 0 after reset, got %d", f.Count)
	}
}

func TestFrameProgressClampsToUnitRange(t *testing.T) {
	f := Frame{Time: 2}
	if p := f.Progress(0, 1); p != 1 {
		t.Fatalf("expected progress clamped to 1, got %v", p)
	}
	f2 := Frame{Time: -1}
	if p := f2.Progress(0, 1); p != 0 {
		t.Fatalf("expected progress clamped to 0, got %v", p)
	}
}

func TestFrameLerpMidpoint(t *testing.T) {
	f := Frame{Time: 0.5}
	if v := f.Lerp(0, 100, 0, 1); v != 50 {
		t.Fatalf("expected 50, got %v", v)
	}
}

func TestFrameEaseWithEaseOutQuad(t *testing.T) {
	f := Frame{Time: 0.5}
	v := f.Ease(EaseOutQuad, 0, 100, 0, 1)
	if diff := v - 75; diff > 1e-9 || diff < -1e-9 {
		t.Fatalf("expected 75, got %v", v)
	}
}
