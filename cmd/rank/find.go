// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"

	"cloudeng.io/container/heap"
)

type findFlags struct {
	CommonFlags
	orderFlags
	Value float64 `subcmd:"value,0,the value to locate"`
	From  int     `subcmd:"from,0,the heap position of the subtree to search below"`
}

// find reports the position that a value occupies in the heap built
// from the input. The exit status is non-zero if the value is absent.
func find(ctx context.Context, values any, args []string) error {
	cl := values.(*findFlags)
	stop, err := cl.startProfiling()
	if err != nil {
		return err
	}
	defer stop()
	vals, err := readValues(args)
	if err != nil {
		return err
	}
	h := heap.New(cl.order(), heap.WithData(vals))
	pos := h.IndexFrom(cl.Value, cl.From)
	if pos < 0 {
		return fmt.Errorf("%v not found", cl.Value)
	}
	fmt.Println(pos)
	return nil
}
