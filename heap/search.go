// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package heap

// Index returns a position in the heap's backing slice at which v is
// stored, or -1 if v is not present. Values are compared for equality,
// not merely for equivalent ordering. Subtrees whose root sorts after v
// cannot contain it and are pruned from the search, so the worst case
// is O(n) but values close to the root are found in O(log n).
func (h *T[V]) Index(v V) int {
	return h.search(v, 0)
}

// IndexFrom is like Index but restricts the search to the subtree rooted
// at position from.
func (h *T[V]) IndexFrom(v V, from int) int {
	if from < 0 {
		return -1
	}
	return h.search(v, from)
}

func (h *T[V]) search(v V, i int) int {
	if i >= len(h.values) {
		return -1
	}
	if h.values[i] == v {
		return i
	}
	if less(h.order, v, h.values[i]) {
		// v sorts before the value at i and hence cannot appear
		// anywhere in the subtree below it.
		return -1
	}
	if j := h.search(v, 2*i+1); j >= 0 {
		return j
	}
	return h.search(v, 2*i+2)
}
