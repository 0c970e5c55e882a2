// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package heap provides a generic binary heap that can be maintained in
// ascending or descending order, together with selection and validation
// algorithms built on top of it.
package heap

import (
	"cmp"
	"slices"
)

// Ordered represents the set of types that can be stored in a heap.
type Ordered = cmp.Ordered

// T represents a binary heap stored in a slice, with the children of the
// value at index i stored at indices 2i+1 and 2i+2. An ascending heap keeps
// its smallest value at the root, a descending heap its largest. The heap
// owns its backing slice exclusively; see WithData. The zero value of T is
// an empty ascending heap ready for use.
type T[V Ordered] struct {
	values []V
	order  Order
}

// New returns a new heap maintained in the specified order. The WithData
// option can be used to supply initial contents, which need not be in heap
// order; the heap property is established over them in a single O(n) pass.
func New[V Ordered](order Order, opts ...Option[V]) *T[V] {
	var o options[V]
	for _, fn := range opts {
		fn(&o)
	}
	h := &T[V]{order: order}
	if o.values != nil {
		h.values = o.values
		h.heapify()
		return h
	}
	h.values = make([]V, 0, o.sliceCap)
	return h
}

// NewMin returns a new ascending heap, ie. one whose root is always its
// smallest value.
func NewMin[V Ordered](opts ...Option[V]) *T[V] {
	return New(Ascending, opts...)
}

// NewMax returns a new descending heap, ie. one whose root is always its
// largest value.
func NewMax[V Ordered](opts ...Option[V]) *T[V] {
	return New(Descending, opts...)
}

// Len returns the number of values stored in the heap.
func (h *T[V]) Len() int {
	return len(h.values)
}

// IsEmpty returns true if the heap contains no values.
func (h *T[V]) IsEmpty() bool {
	return len(h.values) == 0
}

func (h *T[V]) Cap() int {
	return cap(h.values)
}

// Order returns the order that the heap is maintained in.
func (h *T[V]) Order() Order {
	return h.order
}

// Peek returns the value at the root of the heap without removing it.
// The boolean is false if the heap is empty.
func (h *T[V]) Peek() (V, bool) {
	if len(h.values) == 0 {
		var v V
		return v, false
	}
	return h.values[0], true
}

// Push adds v to the heap.
func (h *T[V]) Push(v V) {
	h.values = append(h.values, v)
	h.up(len(h.values) - 1)
}

// Pop removes and returns the value at the root of the heap, that is, the
// smallest value for an ascending heap and the largest for a descending
// one. The boolean is false if the heap is empty.
func (h *T[V]) Pop() (V, bool) {
	n := len(h.values) - 1
	if n < 0 {
		var v V
		return v, false
	}
	h.swap(0, n)
	h.down(0, n)
	v := h.values[n]
	h.values = h.values[0:n]
	return v, true
}

// Remove removes and returns the value at position i in the heap's backing
// slice. The boolean is false if i is out of range, in which case the heap
// is unchanged. Removing the value at the last position requires no
// restructuring.
func (h *T[V]) Remove(i int) (V, bool) {
	if i < 0 || i >= len(h.values) {
		var v V
		return v, false
	}
	n := len(h.values) - 1
	if n != i {
		h.swap(i, n)
		if !h.down(i, n) {
			h.up(i)
		}
	}
	v := h.values[n]
	h.values = h.values[0:n]
	return v, true
}

// Merge adds all of the supplied values to the heap. The heap property is
// re-established over the combined values in a single O(n) pass.
func (h *T[V]) Merge(values []V) {
	if len(values) == 0 {
		return
	}
	h.values = append(h.values, values...)
	h.heapify()
}

// Union returns a new heap containing all of the values in a and b, both
// of which must be maintained in the same order. Union panics if they are
// not.
func Union[V Ordered](a, b *T[V]) *T[V] {
	if a.order != b.order {
		panic("heaps must be maintained in the same order")
	}
	values := make([]V, 0, len(a.values)+len(b.values))
	values = append(values, a.values...)
	values = append(values, b.values...)
	return New(a.order, WithData(values))
}

// Clone returns a copy of the heap that shares no storage with h.
func (h *T[V]) Clone() *T[V] {
	return &T[V]{values: slices.Clone(h.values), order: h.order}
}

// Reset removes all values from the heap, retaining the backing slice for
// reuse.
func (h *T[V]) Reset() {
	h.values = h.values[:0]
}

// less returns true if a belongs closer to the root than b in a heap
// maintained in the specified order.
func less[V Ordered](order Order, a, b V) bool {
	if order == Descending {
		return a > b
	}
	return a < b
}

func (h *T[V]) less(i, j int) bool {
	return less(h.order, h.values[i], h.values[j])
}

func (h *T[V]) swap(i, j int) {
	h.values[i], h.values[j] = h.values[j], h.values[i]
}

func (h *T[V]) heapify() {
	n := len(h.values)
	for i := n/2 - 1; i >= 0; i-- {
		h.down(i, n)
	}
}

func (h *T[V]) up(j int) {
	for {
		i := (j - 1) / 2 // parent
		if i == j || !h.less(j, i) {
			break
		}
		h.swap(i, j)
		j = i
	}
}

func (h *T[V]) down(i0, n int) bool {
	i := i0
	for {
		j1 := 2*i + 1
		if j1 >= n || j1 < 0 { // j1 < 0 after int overflow
			break
		}
		j := j1 // left child
		if j2 := j1 + 1; j2 < n && h.less(j2, j1) {
			j = j2 // = 2*i + 2  // right child
		}
		if !h.less(j, i) {
			break
		}
		h.swap(i, j)
		i = j
	}
	return i > i0
}
