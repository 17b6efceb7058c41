// Plotcore: high-performance 2D scientific plotting engine

// Copyright (C) 2024 The plotcore authors.

// This program is free software: you can redistribute it and/or modify it under
// the terms of the GNU General Public License version 2 as published by the
// Free Software Foundation.

// This program is distributed in the hope that it will be useful, but WITHOUT
// ANY WARRANTY; without even the implied warranty of MERCHANTABILITY or FITNESS
// FOR A PARTICULAR PURPOSE. See the GNU General Public License for more
// details.

// You should have received a copy of the GNU General Public License along with
// this program. If not, see <http://www.gnu.org/licenses/>.

// Package pool implements a typed memory-pool allocator: reusable buffers
// with RAII-style return-to-pool, and a thread-shared variant that degrades
// to "drop instead of stall" under lock contention. It is the allocation
// substrate for coordinate buffers, pixel intermediates and aggregation
// canvases threaded through a single render() call.
package pool

import (
	"os"
	"sync"
)

// IntegrityChecks reports whether the PLOTCORE_POOL_INTEGRITY env toggle
// named in the external-interface spec is set, enabling provenance
// assertions on release that panic rather than silently accept a buffer
// that did not originate from this pool.
var IntegrityChecks = os.Getenv("PLOTCORE_POOL_INTEGRITY") != ""

// Buffer is a fixed-capacity region acquired from a Pool. It is returned to
// its originating pool when Release is called (the RAII return-to-pool
// contract is expressed explicitly since Go has no destructors); a Buffer
// must not be used after Release. Mutation is by the single owner: aliasing
// is prevented by convention (move, don't share) rather than by the type
// system.
type Buffer[T any] struct {
	data   []T
	origin *Pool[T]
	id     int
}

// Slice returns the buffer's logical-length view. Writing through the
// returned slice is the buffer's mutation path. A freshly allocated buffer
// holds the zero value of T; a buffer reused from the pool keeps whatever
// its previous owner wrote (Acquire does not clear it), so callers treat
// unwritten elements as logically uninitialized (see IntegrityChecks).
func (b *Buffer[T]) Slice() []T { return b.data }

// Len reports the buffer's logical length.
func (b *Buffer[T]) Len() int { return len(b.data) }

// Cap reports the buffer's backing capacity.
func (b *Buffer[T]) Cap() int { return cap(b.data) }

// Release returns the buffer to its originating pool.
func (b *Buffer[T]) Release() {
	if b.origin == nil {
		return
	}
	b.origin.release(b)
	b.origin = nil
}

// Clone copies the buffer's contents into a freshly acquired buffer from the
// same pool.
func (b *Buffer[T]) Clone() *Buffer[T] {
	out := b.origin.Acquire(len(b.data))
	copy(out.data, b.data)
	return out
}

type slot[T any] struct {
	id   int
	data []T
}

// Pool keeps a queue of released buffers and a set of live buffer
// identities. Invariants (spec §3 MemoryPool<T>): every acquired buffer's
// identity remains in "in use" until released; TotalCapacity equals the sum
// of capacities across available+in-use buffers; len(available) <= MaxPools,
// with excess released buffers dropped.
type Pool[T any] struct {
	mu        sync.Mutex
	maxPools  int
	available []slot[T]
	inUse     map[int]int // id -> capacity
	nextID    int
	total     int
}

// New constructs a Pool retaining at most maxPools released buffers.
func New[T any](maxPools int) *Pool[T] {
	if maxPools < 1 {
		maxPools = 1
	}
	return &Pool[T]{maxPools: maxPools, inUse: make(map[int]int)}
}

// TotalCapacity returns the sum of capacities across all buffers this pool
// currently owns, whether available or in use.
func (p *Pool[T]) TotalCapacity() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.total
}

// InUseCount returns the number of buffers currently checked out.
func (p *Pool[T]) InUseCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.inUse)
}

// AvailableCount returns the number of buffers currently retained and ready
// for reuse.
func (p *Pool[T]) AvailableCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.available)
}

// Acquire returns a buffer whose logical length equals n and whose capacity
// is at least n. The first available buffer of sufficient capacity is
// reused; otherwise a new allocation is appended. Acquired-but-previously-
// unwritten contents from a reused buffer are NOT cleared — the contract
// does not zero memory on reuse, matching spec §4.1.
func (p *Pool[T]) Acquire(n int) *Buffer[T] {
	p.mu.Lock()
	for i, s := range p.available {
		if cap(s.data) >= n {
			p.available = append(p.available[:i], p.available[i+1:]...)
			p.inUse[s.id] = cap(s.data)
			p.mu.Unlock()
			return &Buffer[T]{data: s.data[:n], origin: p, id: s.id}
		}
	}
	id := p.nextID
	p.nextID++
	data := make([]T, n)
	p.total += cap(data)
	p.inUse[id] = cap(data)
	p.mu.Unlock()
	return &Buffer[T]{data: data, origin: p, id: id}
}

// release returns buf to the pool when the retained count is below
// maxPools; otherwise the backing allocation is dropped and total capacity
// decreases by that capacity. Panics under IntegrityChecks if buf's
// provenance is not recognized (InvalidRelease).
func (p *Pool[T]) release(buf *Buffer[T]) {
	p.mu.Lock()
	defer p.mu.Unlock()

	c, ok := p.inUse[buf.id]
	if !ok {
		if IntegrityChecks {
			panic("pool: invalid release: buffer provenance not recognized")
		}
		return
	}
	delete(p.inUse, buf.id)

	if len(p.available) >= p.maxPools {
		p.total -= c
		return
	}
	// Reset logical length to full capacity for the next acquirer's slicing.
	full := buf.data[:cap(buf.data)]
	p.available = append(p.available, slot[T]{id: buf.id, data: full})
}

// ShrinkUnused drops half of the retained available buffers (rounded up, so
// at least one survives if any were retained), freeing their capacity.
func (p *Pool[T]) ShrinkUnused() {
	p.mu.Lock()
	defer p.mu.Unlock()

	n := len(p.available)
	if n == 0 {
		return
	}
	keep := (n + 1) / 2
	for _, s := range p.available[keep:] {
		p.total -= cap(s.data)
	}
	p.available = p.available[:keep]
}
