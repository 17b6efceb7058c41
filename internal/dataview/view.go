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

// Package dataview provides a zero-copy read-only sequence abstraction over
// owned, pooled, or borrowed storage, so the plot-type compute layer never
// needs to know whether a series' x/y data lives in a plain slice or a
// pool-backed vector.
package dataview

import "github.com/cparo/plotcore/internal/pool"

// Sequence is an abstract 1-D sequence: known length, indexed access, and a
// pointer-to-slice escape hatch when the backing storage is contiguous.
type Sequence[T any] interface {
	Len() int
	Get(i int) (T, bool)
	AsSlice() ([]T, bool)
}

// View is a non-owning pointer+length over either owned or pooled storage.
// The producing sequence must outlive the View; View itself never
// allocates or copies.
type View[T any] struct {
	data []T
}

// Of constructs a View directly over a plain slice (owned or borrowed).
func Of[T any](data []T) View[T] { return View[T]{data: data} }

// FromVec constructs a View over a pool.Vec in O(1): the returned View
// shares the same underlying address as the Vec's current backing buffer.
func FromVec[T any](v *pool.Vec[T]) View[T] { return View[T]{data: v.AsSlice()} }

// Len reports the number of elements in the view.
func (v View[T]) Len() int { return len(v.data) }

// Get returns the element at i, or the zero value and false if i is out of
// range.
func (v View[T]) Get(i int) (T, bool) {
	if i < 0 || i >= len(v.data) {
		var zero T
		return zero, false
	}
	return v.data[i], true
}

// AsSlice returns the backing slice. Views are always contiguous, so this
// never returns false, but the (slice, ok) shape is kept for parity with
// Sequence[T] implementations that may not be.
func (v View[T]) AsSlice() ([]T, bool) { return v.data, true }

// Iter returns a range-over-func iterator (Go 1.23+ iterator idiom) over the
// view's elements.
func (v View[T]) Iter(yield func(int, T) bool) {
	for i, x := range v.data {
		if !yield(i, x) {
			return
		}
	}
}

var _ Sequence[float64] = View[float64]{}
