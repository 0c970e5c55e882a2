// Copyright 2023 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package heap

type options[V Ordered] struct {
	sliceCap int
	values   []V
}

// Option represents the options that can be passed to New, NewMin and
// NewMax.
type Option[V Ordered] func(*options[V])

// WithSliceCap sets the initial capacity of the slice used to hold the
// heap's values.
func WithSliceCap[V Ordered](n int) Option[V] {
	return func(o *options[V]) {
		o.sliceCap = n
	}
}

// WithData sets the initial data for the heap. The heap takes ownership
// of the slice and it must not be accessed directly thereafter.
func WithData[V Ordered](values []V) Option[V] {
	return func(o *options[V]) {
		o.values = values
	}
}
