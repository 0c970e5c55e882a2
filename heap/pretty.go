// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package heap

import (
	"fmt"
	"strings"
)

// String returns the heap's order and its backing slice in array order,
// which is heap order rather than sorted order.
func (h *T[V]) String() string {
	return fmt.Sprintf("%v: %v", h.order, h.values)
}

// pretty writes the values level by level, each level prefixed with the
// position it starts at.
func pretty[V Ordered](values []V) string {
	out := &strings.Builder{}
	l := 0
	nsp := ((len(values) - 1) / 2) * 4
	for i, v := range values {
		if i+1 == (1 << l) {
			l++
			fmt.Fprintf(out, "\n% 4v:", (1<<(l-1))-1)
			nsp >>= 1
		}
		fmt.Fprintf(out, "%v%v%v", strings.Repeat(" ", nsp), v, strings.Repeat(" ", nsp))
	}
	out.WriteString("\n")
	return out.String()
}
