package pool

import "testing"

func TestAcquireReusesAvailableBuffer(t *testing.T) {
	p := New[float64](4)
	b1 := p.Acquire(16)
	b1.Release()

	b2 := p.Acquire(8)
	if b2.Cap() != 16 {
		t.Fatalf("expected reused buffer of cap 16, got %d", b2.Cap())
	}
	if p.TotalCapacity() != 16 {
		t.Fatalf("expected total capacity 16, got %d", p.TotalCapacity())
	}
}

func TestPoolReuseBoundsCapacity(t *testing.T) {
	// Testable property (spec §8): after N cycles of acquire(k)/release on an
	// empty pool, total capacity <= 2k and at least one buffer is retained.
	p := New[float64](2)
	const k = 32
	for i := 0; i < 50; i++ {
		b := p.Acquire(k)
		b.Release()
	}
	if got := p.TotalCapacity(); got > 2*k {
		t.Fatalf("total capacity %d exceeds 2k=%d", got, 2*k)
	}
	if p.AvailableCount() < 1 {
		t.Fatalf("expected at least one retained buffer")
	}
}

func TestPoolNoLeak(t *testing.T) {
	p := New[float64](8)
	var bufs []*Buffer[float64]
	for i := 0; i < 10; i++ {
		bufs = append(bufs, p.Acquire(4))
	}
	if p.InUseCount() != 10 {
		t.Fatalf("expected 10 in-use buffers, got %d", p.InUseCount())
	}
	for _, b := range bufs {
		b.Release()
	}
	if p.InUseCount() != 0 {
		t.Fatalf("expected no buffer addresses remaining in-use after release, got %d", p.InUseCount())
	}
}

func TestShrinkUnusedHalvesRetainedSet(t *testing.T) {
	p := New[float64](16)
	var bufs []*Buffer[float64]
	for i := 0; i < 8; i++ {
		bufs = append(bufs, p.Acquire(4))
	}
	for _, b := range bufs {
		b.Release()
	}
	if p.AvailableCount() != 8 {
		t.Fatalf("expected 8 available, got %d", p.AvailableCount())
	}
	p.ShrinkUnused()
	if p.AvailableCount() != 4 {
		t.Fatalf("expected shrink to 4 available, got %d", p.AvailableCount())
	}
}

func TestShrinkUnusedRoundsUpToKeepOne(t *testing.T) {
	p := New[float64](4)
	b := p.Acquire(4)
	b.Release()
	p.ShrinkUnused()
	if p.AvailableCount() != 1 {
		t.Fatalf("expected one buffer retained after shrink, got %d", p.AvailableCount())
	}
}

func TestReleaseBeyondMaxPoolsDropsCapacity(t *testing.T) {
	p := New[float64](1)
	b1 := p.Acquire(4)
	b2 := p.Acquire(4)
	b1.Release()
	before := p.TotalCapacity()
	b2.Release()
	if p.TotalCapacity() != before-4 {
		t.Fatalf("expected total capacity to drop by 4 on over-cap release, got before=%d after=%d", before, p.TotalCapacity())
	}
	if p.AvailableCount() != 1 {
		t.Fatalf("expected maxPools=1 retained, got %d", p.AvailableCount())
	}
}

func TestVecPushGrowsAndCopies(t *testing.T) {
	p := New[int](4)
	v := NewVec[int](p, 2)
	defer v.Close()

	for i := 0; i < 10; i++ {
		v.Push(i)
	}
	if v.Len() != 10 {
		t.Fatalf("expected length 10, got %d", v.Len())
	}
	for i := 0; i < 10; i++ {
		if v.At(i) != i {
			t.Fatalf("at(%d) = %d, want %d", i, v.At(i), i)
		}
	}
}

func TestVecRemoveInsert(t *testing.T) {
	p := New[int](4)
	v := NewVec[int](p, 4)
	defer v.Close()
	v.ExtendFromSlice([]int{1, 2, 3, 4})

	removed := v.Remove(1)
	if removed != 2 {
		t.Fatalf("removed = %d, want 2", removed)
	}
	if got := v.ToOwned(); got[0] != 1 || got[1] != 3 || got[2] != 4 {
		t.Fatalf("unexpected slice after remove: %v", got)
	}

	v.Insert(1, 99)
	if got := v.ToOwned(); got[1] != 99 {
		t.Fatalf("unexpected slice after insert: %v", got)
	}
}
