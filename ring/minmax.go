// File: ring/minmax.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Ordered reductions over raw buffer storage. Package-level generic
// functions rather than methods so the constraints.Ordered bound rejects
// non-orderable element types at compile time.

package ring

import "golang.org/x/exp/constraints"

// Min returns the smallest value held in any storage slot. Every Cap
// slot participates, including slots never written: those hold the zero
// value of T, or the fill value for a NewFilled buffer. Callers who want
// the minimum of the valid elements only should reduce over Values, as
// stats.Rolling does.
func Min[T constraints.Ordered](b *Buffer[T]) T {
	v := b.data[0]
	for _, x := range b.data[1:] {
		if x < v {
			v = x
		}
	}
	return v
}

// Max returns the largest value held in any storage slot. Scan semantics
// match Min: all Cap slots participate, written or not.
func Max[T constraints.Ordered](b *Buffer[T]) T {
	v := b.data[0]
	for _, x := range b.data[1:] {
		if x > v {
			v = x
		}
	}
	return v
}
