// File: fake/ring.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Fake api.Ring with real buffer semantics plus call bookkeeping, so
// consumer tests can assert on interaction as well as state.

package fake

import (
	"github.com/momentics/fixring/api"
	"github.com/momentics/fixring/ring"
)

// Ensure compile-time interface compliance.
var _ api.Ring[any] = (*Ring[any])(nil)

// Ring is a fake implementation of api.Ring. It behaves like a real
// buffer and records every appended value.
type Ring[T any] struct {
	*ring.Buffer[T]

	// AppendCalls counts Append invocations.
	AppendCalls int
	// Appended holds every value passed to Append, in call order,
	// including values later overwritten in the buffer.
	Appended []T
}

// NewRing creates a fake ring of the given capacity.
func NewRing[T any](capacity int) *Ring[T] {
	return &Ring[T]{Buffer: ring.New[T](capacity)}
}

// Append records the call and forwards to the underlying buffer.
func (r *Ring[T]) Append(v T) {
	r.AppendCalls++
	r.Appended = append(r.Appended, v)
	r.Buffer.Append(v)
}

// Reset clears the bookkeeping. Buffer contents are untouched.
func (r *Ring[T]) Reset() {
	r.AppendCalls = 0
	r.Appended = nil
}
