// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package heap

import "slices"

// NthSmallest returns the n'th smallest value in values, with n starting
// at zero, ie. NthSmallest(values, 0) is the minimum. The boolean is
// false if n is outside the range of values. The input is left unchanged;
// an ascending heap is built over a copy of it and popped n+1 times, ie.
// O(len(values) + n log n).
func NthSmallest[V Ordered](values []V, n int) (V, bool) {
	if n < 0 || n >= len(values) {
		var v V
		return v, false
	}
	h := NewMin(WithData(slices.Clone(values)))
	var v V
	for i := 0; i <= n; i++ {
		v, _ = h.Pop()
	}
	return v, true
}
