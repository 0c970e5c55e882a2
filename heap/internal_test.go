// Copyright 2023 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package heap //nolint:revive // intentional shadowing

import (
	"testing"
)

func (h *T[V]) Verify(t *testing.T) {
	t.Helper()
	h.verify(t, 0)
}

func (h *T[V]) verify(t *testing.T, p int) {
	t.Helper()
	n := len(h.values)
	l, r := (2*p)+1, (2*p)+2
	if l < n {
		if h.less(l, p) {
			t.Errorf("heap inconsistent: left sub tree for %v (%v > [%v]: %v)", p, h.values[p], l, h.values[l])
			return
		}
		h.verify(t, l)
	}
	if r < n {
		if h.less(r, p) {
			t.Errorf("heap inconsistent: right sub tree for %v (%v > [%v]: %v)", p, h.values[p], r, h.values[r])
			return
		}
		h.verify(t, r)
	}
}

// Values returns the heap's backing slice for use in tests.
func (h *T[V]) Values() []V {
	return h.values
}

func Pretty[V Ordered](values []V) string {
	return pretty(values)
}
