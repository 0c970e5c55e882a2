// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"cloudeng.io/container/heap"
)

type sortFlags struct {
	CommonFlags
	orderFlags
	JSON bool `subcmd:"json,false,write the heap as JSON rather than one value per line"`
}

type nthFlags struct {
	CommonFlags
	N int `subcmd:"n,0,the rank of the value to report with 0 being the smallest"`
}

func sort(ctx context.Context, values any, args []string) error {
	cl := values.(*sortFlags)
	stop, err := cl.startProfiling()
	if err != nil {
		return err
	}
	defer stop()
	h := heap.New(cl.order(), heap.WithSliceCap[float64](1024))
	for _, name := range args {
		vals := make([]float64, 0, 1024)
		if err := scanValues(name, func(v float64) {
			vals = append(vals, v)
		}); err != nil {
			return err
		}
		h.Merge(vals)
	}
	if cl.JSON {
		return json.NewEncoder(os.Stdout).Encode(h)
	}
	for v := range h.Drain() {
		fmt.Println(v)
	}
	return nil
}

func nth(ctx context.Context, values any, args []string) error {
	cl := values.(*nthFlags)
	stop, err := cl.startProfiling()
	if err != nil {
		return err
	}
	defer stop()
	vals, err := readValues(args)
	if err != nil {
		return err
	}
	v, ok := heap.NthSmallest(vals, cl.N)
	if !ok {
		return fmt.Errorf("rank %v is out of range for %v values", cl.N, len(vals))
	}
	fmt.Println(v)
	return nil
}
