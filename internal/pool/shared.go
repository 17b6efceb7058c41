package pool

import "sync"

// Shared is a thread-safe wrapper around Pool. Buffers it hands out are
// bound to the shared pool so that, on Release, the return path is a
// non-blocking lock acquisition: if another goroutine holds the lock, the
// buffer is dropped (freed) rather than retained, which degrades pool
// efficiency under contention but never stalls a render thread.
type Shared[T any] struct {
	mu   sync.Mutex
	pool *Pool[T]
}

// NewShared constructs a process-wide pool retaining at most maxPools
// released buffers. Unlike Pool, a Shared pool is intended to be
// constructed once by the user and passed to multiple renders.
func NewShared[T any](maxPools int) *Shared[T] {
	return &Shared[T]{pool: New[T](maxPools)}
}

// ManagedBuffer is returned by Shared.Acquire. Its Release attempts a
// non-blocking return to the originating shared pool.
type ManagedBuffer[T any] struct {
	inner  *Buffer[T]
	shared *Shared[T]
}

// Slice returns the buffer's logical-length view.
func (m *ManagedBuffer[T]) Slice() []T { return m.inner.Slice() }

// Len reports the buffer's logical length.
func (m *ManagedBuffer[T]) Len() int { return m.inner.Len() }

// Release attempts a non-blocking return to the shared pool. On contention
// (the shared pool's lock is already held) the buffer is released to nothing
// retained and its backing storage is left to the garbage collector.
func (m *ManagedBuffer[T]) Release() {
	if m.shared.mu.TryLock() {
		defer m.shared.mu.Unlock()
		m.inner.Release()
		return
	}
	// Contention: drop the buffer instead of retaining it. Its identity and
	// capacity are still cleared from the underlying pool's "in use"
	// bookkeeping, under that pool's own mutex, which is independent of
	// Shared's contention mutex.
	p := m.inner.origin
	if p == nil {
		return
	}
	p.mu.Lock()
	if c, ok := p.inUse[m.inner.id]; ok {
		delete(p.inUse, m.inner.id)
		p.total -= c
	}
	p.mu.Unlock()
	m.inner.origin = nil
}

// Acquire hands out a buffer whose Release attempts the non-blocking return
// path described above.
func (s *Shared[T]) Acquire(n int) *ManagedBuffer[T] {
	return &ManagedBuffer[T]{inner: s.pool.Acquire(n), shared: s}
}

// TotalCapacity delegates to the underlying Pool.
func (s *Shared[T]) TotalCapacity() int { return s.pool.TotalCapacity() }

// ShrinkUnused delegates to the underlying Pool.
func (s *Shared[T]) ShrinkUnused() { s.pool.ShrinkUnused() }
