// File: api/ring.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Fixed-capacity circular buffer contract. Storage is allocated once at
// construction; once full, appends overwrite the oldest element. Indexed
// access wraps modulo capacity and never fails. Implementations are
// single-owner: callers needing concurrent access must serialize externally.

package api

import "iter"

// Ring is a fixed-capacity, overwrite-on-full circular buffer.
type Ring[T any] interface {
	// Append writes v at the cursor, advances the cursor modulo Cap,
	// and grows Len until it saturates at Cap.
	Append(v T)

	// At returns the element at index i taken modulo Cap. Negative and
	// out-of-range indices wrap into [0, Cap); no access ever fails.
	At(i int) T

	// Set writes v at index i taken modulo Cap, same addressing as At.
	Set(i int, v T)

	// Slot returns a mutable reference to the slot at index i modulo Cap.
	Slot(i int) *T

	// Position returns the cursor, always in [0, Cap). The cursor is the
	// slot the next Append will write.
	Position() int

	// Current returns a mutable reference to the slot at the cursor,
	// aliasing Slot(Position()).
	Current() *T

	// Advance moves the cursor forward one slot modulo Cap. Storage and
	// Len are untouched.
	Advance()

	// Retreat moves the cursor back one slot modulo Cap. Storage and
	// Len are untouched.
	Retreat()

	// Len returns the number of valid elements: it grows with each
	// Append, saturates at Cap, and never decreases.
	Len() int

	// Cap returns the fixed capacity.
	Cap() int

	// Values returns a lazy, restartable sequence of the Len valid
	// elements in oldest-to-newest order: the Len slots ending just
	// before the cursor. Iteration does not mutate the buffer.
	Values() iter.Seq[T]

	// Snapshot copies the elements Values yields, oldest first.
	Snapshot() []T
}
