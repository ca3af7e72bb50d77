// File: ring/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Package ring implements the fixed-capacity circular buffer behind the
// api.Ring contract. Storage is a single slice allocated at construction;
// appends wrap around and overwrite the oldest element once the buffer is
// full. A movable cursor supports manual scanning independent of append.
// Ordered reductions (Min, Max) are package-level generic functions so the
// element-type requirement is enforced at compile time.
// See ring.go and minmax.go for implementation details.
package ring
