// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"cloudeng.io/container/heap"
	"cloudeng.io/sync/errgroup"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type topFlags struct {
	CommonFlags
	N        int  `subcmd:"n,10,the number of values to report"`
	Smallest bool `subcmd:"smallest,false,report the lowest ranked values instead of the highest"`
}

func top(ctx context.Context, values any, args []string) error {
	cl := values.(*topFlags)
	stop, err := cl.startProfiling()
	if err != nil {
		return err
	}
	defer stop()
	if cl.N <= 0 {
		return fmt.Errorf("n must be positive")
	}

	// A bounded ascending heap retains the n largest values pushed
	// and a bounded descending heap the n smallest.
	h := heap.NewMin(heap.WithSliceCap[float64](cl.N))
	if cl.Smallest {
		h = heap.NewMax(heap.WithSliceCap[float64](cl.N))
	}
	var mu sync.Mutex
	total := 0
	readers := &errgroup.T{}
	readers = errgroup.WithConcurrency(readers, len(args))
	for _, name := range args {
		readers.Go(func() error {
			return scanValues(name, func(v float64) {
				mu.Lock()
				h.PushN(v, cl.N)
				total++
				mu.Unlock()
			})
		})
	}
	if err := readers.Wait(); err != nil {
		return err
	}

	intPrinter := message.NewPrinter(language.English) // commas in counts.
	intPrinter.Printf("ranked %v values from %v files\n", total, len(args))
	ranked := h.PopN(h.Len())
	slices.Reverse(ranked)
	for _, v := range ranked {
		fmt.Println(v)
	}
	return nil
}
