// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"encoding/gob"
	"encoding/json"
	"fmt"
	"os"

	"cloudeng.io/container/heap"
	"cloudeng.io/errors"
	"cloudeng.io/sync/errgroup"
	"github.com/klauspost/compress/s2"
)

type buildFlags struct {
	CommonFlags
	orderFlags
	Output string `subcmd:"o,values.heap,the file to write the heap to"`
}

type mergeFlags struct {
	CommonFlags
	Output string `subcmd:"o,merged.heap,the file to write the combined heap to"`
}

type showFlags struct {
	CommonFlags
	JSON bool `subcmd:"json,false,write the heap as JSON rather than one value per line"`
}

func saveHeap(name string, h *heap.T[float64]) error {
	f, err := os.OpenFile(name, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	cw := s2.NewWriter(f, s2.WriterBestCompression())
	errs := errors.M{}
	errs.Append(gob.NewEncoder(cw).Encode(h))
	errs.Append(cw.Close())
	errs.Append(f.Close())
	return errs.Err()
}

func loadHeap(name string) (*heap.T[float64], error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	h := &heap.T[float64]{}
	if err := gob.NewDecoder(s2.NewReader(f)).Decode(h); err != nil {
		return nil, fmt.Errorf("%v: %v", name, err)
	}
	return h, nil
}

func build(ctx context.Context, values any, args []string) error {
	cl := values.(*buildFlags)
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
	if err := saveHeap(cl.Output, h); err != nil {
		return err
	}
	fmt.Printf("wrote %v values to %v\n", h.Len(), cl.Output)
	return nil
}

func merge(ctx context.Context, values any, args []string) error {
	cl := values.(*mergeFlags)
	stop, err := cl.startProfiling()
	if err != nil {
		return err
	}
	defer stop()
	loaded := make([]*heap.T[float64], len(args))
	loaders := &errgroup.T{}
	loaders = errgroup.WithConcurrency(loaders, len(args))
	for i, name := range args {
		loaders.Go(func() error {
			h, err := loadHeap(name)
			if err != nil {
				return err
			}
			loaded[i] = h
			return nil
		})
	}
	if err := loaders.Wait(); err != nil {
		return err
	}
	merged := loaded[0]
	for i, h := range loaded[1:] {
		if h.Order() != merged.Order() {
			return fmt.Errorf("%v: heaps must be maintained in the same order to be combined", args[i+1])
		}
		merged = heap.Union(merged, h)
	}
	if err := saveHeap(cl.Output, merged); err != nil {
		return err
	}
	fmt.Printf("wrote %v values to %v\n", merged.Len(), cl.Output)
	return nil
}

func show(ctx context.Context, values any, args []string) error {
	cl := values.(*showFlags)
	stop, err := cl.startProfiling()
	if err != nil {
		return err
	}
	defer stop()
	h, err := loadHeap(args[0])
	if err != nil {
		return err
	}
	if cl.JSON {
		return json.NewEncoder(os.Stdout).Encode(h)
	}
	for v := range h.Drain() {
		fmt.Println(v)
	}
	return nil
}
