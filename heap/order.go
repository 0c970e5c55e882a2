// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package heap

// Order determines if the heap is maintained in ascending or descending
// order.
type Order bool

// Values for Order.
const (
	Ascending  Order = false
	Descending Order = true
)

// IsMin returns true if the order specifies an ascending heap, ie. one
// whose root is its minimum value.
func (o Order) IsMin() bool {
	return o == Ascending
}

func (o Order) String() string {
	if o == Descending {
		return "descending"
	}
	return "ascending"
}

// IsHeap returns true if the supplied values satisfy the heap property for
// the specified order, that is, if no value sorts before the value at its
// parent position. Parents are checked from the last non-leaf position down
// to the root and false is returned on the first violation found. An empty
// slice is trivially a heap.
func IsHeap[V Ordered](values []V, order Order) bool {
	n := len(values)
	for i := n/2 - 1; i >= 0; i-- {
		if l := 2*i + 1; l < n && less(order, values[l], values[i]) {
			return false
		}
		if r := 2*i + 2; r < n && less(order, values[r], values[i]) {
			return false
		}
	}
	return true
}

// IsMinHeap is shorthand for IsHeap(values, Ascending).
func IsMinHeap[V Ordered](values []V) bool {
	return IsHeap(values, Ascending)
}
