// File: ring/ring.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Slice-backed fixed-capacity circular buffer with overwrite-on-full
// append, wrap-around indexed access and a movable cursor. No allocation
// after construction. Single-owner: not safe for concurrent mutation.

package ring

import (
	"iter"

	"github.com/momentics/fixring/api"
)

// Ensure compile-time interface compliance.
var _ api.Ring[any] = (*Buffer[any])(nil)

// Buffer is a fixed-capacity circular buffer. Once full, Append
// overwrites the oldest element.
type Buffer[T any] struct {
	data  []T
	pos   int // next slot Append writes, always in [0, cap)
	total int // valid elements; saturates at cap, never decreases
}

// New allocates a buffer of the given capacity with zero-valued storage.
// Panics if capacity is less than one.
func New[T any](capacity int) *Buffer[T] {
	if capacity < 1 {
		panic("ring: capacity must be positive")
	}
	return &Buffer[T]{data: make([]T, capacity)}
}

// NewFilled allocates a buffer with every slot set to value. The buffer
// still reports Len() == 0: filling is not appending, so Values and
// Snapshot yield nothing until the first Append. Min and Max, which scan
// raw storage, do observe the fill value.
func NewFilled[T any](capacity int, value T) *Buffer[T] {
	b := New[T](capacity)
	for i := range b.data {
		b.data[i] = value
	}
	return b
}

// NewFrom allocates a buffer and appends each value in order. More
// values than capacity is allowed; earlier values are overwritten as
// with any other append.
func NewFrom[T any](capacity int, values ...T) *Buffer[T] {
	b := New[T](capacity)
	for _, v := range values {
		b.Append(v)
	}
	return b
}

// idx maps any integer onto [0, cap). Go's % keeps the dividend's sign,
// so negative indices need one corrective add.
func (b *Buffer[T]) idx(i int) int {
	n := i % len(b.data)
	if n < 0 {
		n += len(b.data)
	}
	return n
}

// Append writes v at the cursor, advances the cursor modulo Cap and
// grows Len until it saturates at Cap.
func (b *Buffer[T]) Append(v T) {
	b.data[b.pos] = v
	b.pos = (b.pos + 1) % len(b.data)
	if b.total < len(b.data) {
		b.total++
	}
}

// At returns the element at index i modulo Cap. Any integer is a valid
// index; out-of-range and negative values alias into existing slots.
func (b *Buffer[T]) At(i int) T {
	return b.data[b.idx(i)]
}

// Set writes v at index i modulo Cap, same addressing as At.
func (b *Buffer[T]) Set(i int, v T) {
	b.data[b.idx(i)] = v
}

// Slot returns a mutable reference to the slot at index i modulo Cap.
func (b *Buffer[T]) Slot(i int) *T {
	return &b.data[b.idx(i)]
}

// Position returns the cursor, always in [0, Cap).
func (b *Buffer[T]) Position() int {
	return b.pos
}

// Current returns a mutable reference to the slot at the cursor: the
// slot the next Append will write, aliasing Slot(Position()).
func (b *Buffer[T]) Current() *T {
	return &b.data[b.pos]
}

// Advance moves the cursor forward one slot modulo Cap without touching
// storage or Len.
func (b *Buffer[T]) Advance() {
	b.pos = (b.pos + 1) % len(b.data)
}

// Retreat moves the cursor back one slot modulo Cap without touching
// storage or Len.
func (b *Buffer[T]) Retreat() {
	b.pos = (b.pos + len(b.data) - 1) % len(b.data)
}

// Len returns the number of valid elements in the buffer.
func (b *Buffer[T]) Len() int {
	return b.total
}

// Cap returns the fixed buffer capacity.
func (b *Buffer[T]) Cap() int {
	return len(b.data)
}

// Values returns a lazy, restartable sequence of the Len valid elements
// in oldest-to-newest order. The window is anchored at the cursor: it
// covers the Len slots ending just before it, so manual Advance/Retreat
// shifts what iteration yields. Iteration does not mutate the buffer and
// each call produces a fresh sequence.
func (b *Buffer[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		start := b.pos - b.total
		for i := 0; i < b.total; i++ {
			if !yield(b.data[b.idx(start+i)]) {
				return
			}
		}
	}
}

// Snapshot copies the valid elements into a new slice, oldest first.
func (b *Buffer[T]) Snapshot() []T {
	out := make([]T, 0, b.total)
	for v := range b.Values() {
		out = append(out, v)
	}
	return out
}
