// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package heap_test

import (
	"testing"

	"cloudeng.io/container/heap"
)

func TestIndex(t *testing.T) {
	for i := 0; i < 33; i++ {
		input := shuffled(int64(i), i)
		for _, order := range []heap.Order{heap.Ascending, heap.Descending} {
			h := heap.New(order, heap.WithData(append([]int{}, input...)))
			for _, v := range input {
				idx := h.Index(v)
				if idx < 0 {
					t.Errorf("%v: failed to find %v", order, v)
					continue
				}
				if got, want := h.Values()[idx], v; got != want {
					t.Errorf("got %v, want %v", got, want)
				}
			}
			// Values outside of those stored are never found.
			for _, v := range []int{-1, i, i + 100} {
				if got, want := h.Index(v), -1; got != want {
					t.Errorf("got %v, want %v", got, want)
				}
			}
		}
	}
}

func TestIndexDups(t *testing.T) {
	h := heap.NewMin(heap.WithData([]int{7, 3, 7, 3, 7}))
	for _, v := range []int{3, 7} {
		idx := h.Index(v)
		if idx < 0 {
			t.Errorf("failed to find %v", v)
			continue
		}
		if got, want := h.Values()[idx], v; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
	}
}

func TestIndexFrom(t *testing.T) {
	h := heap.NewMin(heap.WithData([]int{3, 10, 18, 5, 21, 100}))
	// The heap is laid out as [3 5 18 10 21 100], ie. position 1
	// roots the subtree {5, 10, 21} and position 2 the subtree
	// {18, 100}.
	for _, tc := range []struct {
		v    int
		from int
		want int
	}{
		{3, 0, 0},
		{21, 0, 4},
		{21, 1, 4},
		{100, 2, 5},
		{10, 2, -1},
		{3, 1, -1},
		{18, 1, -1},
		{5, -1, -1},
		{5, 6, -1},
		{5, 100, -1},
	} {
		if got, want := h.IndexFrom(tc.v, tc.from), tc.want; got != want {
			t.Errorf("%v from %v: got %v, want %v", tc.v, tc.from, got, want)
		}
	}
}

func TestIndexAfterUpdates(t *testing.T) {
	h := heap.NewMax[int]()
	for _, v := range shuffled(11, 64) {
		h.Push(v)
	}
	for i := 0; i < 32; i++ {
		h.Pop()
	}
	// The remaining values are 0..31.
	for v := 0; v < 32; v++ {
		idx := h.Index(v)
		if idx < 0 {
			t.Errorf("failed to find %v", v)
			continue
		}
		if got, want := h.Values()[idx], v; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
	}
	for v := 32; v < 64; v++ {
		if got, want := h.Index(v), -1; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
	}
}
