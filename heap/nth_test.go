// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package heap_test

import (
	"reflect"
	"sort"
	"testing"

	"cloudeng.io/container/heap"
)

func TestNthSmallest(t *testing.T) {
	values := uniformRand(11, 50)
	original := make([]int, len(values))
	copy(original, values)
	sorted := make([]int, len(values))
	copy(sorted, values)
	sort.Ints(sorted)

	for n := range values {
		v, ok := heap.NthSmallest(values, n)
		if !ok {
			t.Errorf("%v: expected a value", n)
			continue
		}
		if got, want := v, sorted[n]; got != want {
			t.Errorf("%v: got %v, want %v", n, got, want)
		}
	}
	// The input is left unchanged.
	if got, want := values, original; !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}

	for _, n := range []int{-1, len(values), len(values) + 10} {
		if v, ok := heap.NthSmallest(values, n); ok {
			t.Errorf("%v: unexpected value %v", n, v)
		}
	}
	if v, ok := heap.NthSmallest([]int{}, 0); ok {
		t.Errorf("unexpected value %v", v)
	}
	if v, ok := heap.NthSmallest([]int{42}, 0); !ok || v != 42 {
		t.Errorf("got %v, %v, want 42, true", v, ok)
	}
	if v, ok := heap.NthSmallest([]string{"pear", "apple", "fig"}, 1); !ok || v != "fig" {
		t.Errorf("got %v, %v, want fig, true", v, ok)
	}
}
