// File: stats/rolling.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Rolling window statistics for telemetry smoothing. The window is any
// api.Ring; overwrite-on-full gives the sliding behavior for free. The
// running sum is maintained incrementally: before an append into a full
// window, Current() is exactly the element about to be evicted.

package stats

import (
	"golang.org/x/exp/constraints"

	"github.com/momentics/fixring/api"
	"github.com/momentics/fixring/ring"
)

// Rolling accumulates observations into a fixed window and reports
// statistics over the window contents. Not safe for concurrent use.
type Rolling[T constraints.Float] struct {
	win api.Ring[T]
	sum T
}

// NewRolling creates a Rolling backed by its own ring of the given
// window size. Panics if window is less than one.
func NewRolling[T constraints.Float](window int) *Rolling[T] {
	return &Rolling[T]{win: ring.New[T](window)}
}

// NewRollingOver wraps an existing ring. Elements already in r count as
// observations; the running sum is seeded from them.
func NewRollingOver[T constraints.Float](r api.Ring[T]) *Rolling[T] {
	rl := &Rolling[T]{win: r}
	for v := range r.Values() {
		rl.sum += v
	}
	return rl
}

// Observe records one sample, evicting the oldest once the window is full.
func (r *Rolling[T]) Observe(v T) {
	if r.win.Len() == r.win.Cap() {
		r.sum -= *r.win.Current()
	}
	r.win.Append(v)
	r.sum += v
}

// Mean returns the average of the window contents, or zero for an empty
// window.
func (r *Rolling[T]) Mean() T {
	n := r.win.Len()
	if n == 0 {
		return 0
	}
	return r.sum / T(n)
}

// Min returns the smallest observation in the window. ok is false when
// the window is empty.
func (r *Rolling[T]) Min() (min T, ok bool) {
	for v := range r.win.Values() {
		if !ok || v < min {
			min = v
		}
		ok = true
	}
	return min, ok
}

// Max returns the largest observation in the window. ok is false when
// the window is empty.
func (r *Rolling[T]) Max() (max T, ok bool) {
	for v := range r.win.Values() {
		if !ok || v > max {
			max = v
		}
		ok = true
	}
	return max, ok
}

// Last returns the most recent observation. ok is false when the window
// is empty.
func (r *Rolling[T]) Last() (last T, ok bool) {
	for v := range r.win.Values() {
		last = v
		ok = true
	}
	return last, ok
}

// Len returns the number of observations currently in the window.
func (r *Rolling[T]) Len() int {
	return r.win.Len()
}

// Window returns the fixed window size.
func (r *Rolling[T]) Window() int {
	return r.win.Cap()
}
