// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package heap

import "iter"

// PushN pushes v onto the heap whilst ensuring that the heap contains no
// more than n values. Once full, the root is evicted to make room, and a
// value that sorts before the root is dropped, so an ascending heap
// retains the largest n values pushed and a descending heap the smallest
// n.
func (h *T[V]) PushN(v V, n int) {
	if len(h.values) < n {
		h.Push(v)
		return
	}
	if n <= 0 || less(h.order, v, h.values[0]) {
		// sorts before the root and hence outside of the retained
		// values.
		return
	}
	h.values[0] = v
	h.down(0, len(h.values))
}

// PushPop pushes v onto the heap and then pops and returns the root,
// restructuring the heap at most once.
func (h *T[V]) PushPop(v V) V {
	if len(h.values) > 0 && less(h.order, h.values[0], v) {
		v, h.values[0] = h.values[0], v
		h.down(0, len(h.values))
	}
	return v
}

// Replace pops and returns the root of the heap and pushes v in its
// place. The boolean is false if the heap is empty, in which case v is
// not pushed.
func (h *T[V]) Replace(v V) (V, bool) {
	if len(h.values) == 0 {
		var zero V
		return zero, false
	}
	r := h.values[0]
	h.values[0] = v
	h.down(0, len(h.values))
	return r, true
}

// PopN removes at most the top most n values from the heap, returning
// them in the heap's order.
func (h *T[V]) PopN(n int) []V {
	if n < 0 {
		n = 0
	}
	if n > len(h.values) {
		n = len(h.values)
	}
	out := make([]V, n)
	for i := range out {
		out[i], _ = h.Pop()
	}
	return out
}

// Drain returns an iterator that pops the root of the heap until it is
// empty.
func (h *T[V]) Drain() iter.Seq[V] {
	return func(yield func(V) bool) {
		for {
			v, ok := h.Pop()
			if !ok || !yield(v) {
				return
			}
		}
	}
}
