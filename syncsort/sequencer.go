// Copyright 2022 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package syncsort provides support for synchronised sorting.
package syncsort

import (
	"context"
	"sync/atomic"

	"cloudeng.io/container/heap"
)

// Sequencer accepts a stream of unordered items (sent to it over a
// channel) and allows for that stream to be scanned in the order that
// the items were obtained from NextItem. The end of the unordered
// stream is signaled by closing the channel. Items that arrive ahead
// of their turn are parked on an ascending heap of sequence numbers
// until the items that precede them have been scanned.
type Sequencer[T any] struct {
	next    uint64
	inputCh <-chan Item[T]
	scanCh  chan nextItem[T]
	pending *heap.T[uint64]
	parked  map[uint64]T
	err     error
	v       T
}

// Item represents a single item in a stream that is to be ordered. It is
// returned by NextItem and simply wraps the supplied type with a monotonically
// increasing sequence number that determines its position in the ordered
// stream. This sequence number is assigned by NextItem.
type Item[T any] struct {
	V T
	s uint64
}

type nextItem[T any] struct {
	v   T
	err error
}

// NewSequencer returns a new instance of Sequencer.
func NewSequencer[T any](ctx context.Context, inputCh <-chan Item[T]) *Sequencer[T] {
	seq := &Sequencer[T]{
		inputCh: inputCh,
		pending: heap.NewMin(heap.WithSliceCap[uint64](100)),
		parked:  make(map[uint64]T, 100),
		scanCh:  make(chan nextItem[T], 1),
	}
	go seq.order(ctx)
	return seq
}

// NextItem returns a new Item to be used with Sequencer. The order of calls
// made to NextItem determines the order that they are returned by the scanner.
func (s *Sequencer[T]) NextItem(item T) Item[T] {
	return Item[T]{
		V: item,
		s: atomic.AddUint64(&s.next, 1),
	}
}

// Scan returns true if the next ordered item in the stream is available
// to be read.
func (s *Sequencer[T]) Scan() bool {
	if s.err != nil {
		return false
	}
	ni, ok := <-s.scanCh
	if !ok {
		return false
	}
	s.err = ni.err
	s.v = ni.v
	return true
}

// Item returns the current item available in the scanner.
func (s *Sequencer[T]) Item() T {
	return s.v
}

// Err returns any errors encountered by the scanner.
func (s *Sequencer[T]) Err() error {
	return s.err
}

func (s *Sequencer[T]) order(ctx context.Context) {
	expected := uint64(1)
	for {
		select {
		case <-ctx.Done():
			s.scanCh <- nextItem[T]{err: ctx.Err()}
			return
		case item, ok := <-s.inputCh:
			if ok {
				s.pending.Push(item.s)
				s.parked[item.s] = item.V
			}
			for {
				seq, found := s.pending.Peek()
				if !found || seq != expected {
					break
				}
				s.pending.Pop()
				v := s.parked[seq]
				delete(s.parked, seq)
				expected++
				s.scanCh <- nextItem[T]{v: v}
			}
			if !ok && s.pending.IsEmpty() {
				close(s.scanCh)
				return
			}
		}
	}
}
