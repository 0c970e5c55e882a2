// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"context"
	"fmt"
	"math"
	"os"
	"strconv"

	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/profiling"
	"cloudeng.io/cmdutil/subcmd"
	"cloudeng.io/container/heap"
)

var cmdSet *subcmd.CommandSet

// CommonFlags are accepted by every sub-command.
type CommonFlags struct {
	CPUProfile string `subcmd:"cpu-profile,,write a cpu profile to the specified file"`
}

type orderFlags struct {
	Descending bool `subcmd:"descending,false,rank in descending rather than ascending order"`
}

func init() {
	topFlagSet := subcmd.NewFlagSet()
	topFlagSet.MustRegisterFlagStruct(&topFlags{}, nil, nil)
	sortFlagSet := subcmd.NewFlagSet()
	sortFlagSet.MustRegisterFlagStruct(&sortFlags{}, nil, nil)
	nthFlagSet := subcmd.NewFlagSet()
	nthFlagSet.MustRegisterFlagStruct(&nthFlags{}, nil, nil)
	findFlagSet := subcmd.NewFlagSet()
	findFlagSet.MustRegisterFlagStruct(&findFlags{}, nil, nil)
	buildFlagSet := subcmd.NewFlagSet()
	buildFlagSet.MustRegisterFlagStruct(&buildFlags{}, nil, nil)
	mergeFlagSet := subcmd.NewFlagSet()
	mergeFlagSet.MustRegisterFlagStruct(&mergeFlags{}, nil, nil)
	showFlagSet := subcmd.NewFlagSet()
	showFlagSet.MustRegisterFlagStruct(&showFlags{}, nil, nil)

	topCmd := subcmd.NewCommand("top", topFlagSet, top, subcmd.AtLeastNArguments(1))
	topCmd.Document("report the highest (or lowest) ranked values", "<file>+")

	sortCmd := subcmd.NewCommand("sort", sortFlagSet, sort, subcmd.AtLeastNArguments(1))
	sortCmd.Document("write all values in ranked order", "<file>+")

	nthCmd := subcmd.NewCommand("nth", nthFlagSet, nth, subcmd.AtLeastNArguments(1))
	nthCmd.Document("report the n-th smallest value", "<file>+")

	findCmd := subcmd.NewCommand("find", findFlagSet, find, subcmd.AtLeastNArguments(1))
	findCmd.Document("locate a value's position within a heap built from the input", "<file>+")

	buildCmd := subcmd.NewCommand("build", buildFlagSet, build, subcmd.AtLeastNArguments(1))
	buildCmd.Document("build a heap from the input and save it", "<file>+")

	mergeCmd := subcmd.NewCommand("merge", mergeFlagSet, merge, subcmd.AtLeastNArguments(2))
	mergeCmd.Document("combine previously saved heaps into one", "<heap-file> <heap-file>+")

	showCmd := subcmd.NewCommand("show", showFlagSet, show, subcmd.ExactlyNumArguments(1))
	showCmd.Document("write the contents of a previously saved heap", "<heap-file>")

	cmdSet = subcmd.NewCommandSet(buildCmd, findCmd, mergeCmd, nthCmd, showCmd, sortCmd, topCmd)
	cmdSet.Document(`rank numeric data using binary heaps.

Input files contain whitespace separated numbers. The build and merge
sub-commands save heaps to disk in compressed gob format so that large
datasets can be combined and re-ranked without re-reading the original
inputs.`)
}

func main() {
	ctx := context.Background()
	if err := cmdSet.Dispatch(ctx); err != nil {
		cmdutil.Exit("%v", err)
	}
}

func (c CommonFlags) startProfiling() (func(), error) {
	if len(c.CPUProfile) == 0 {
		return func() {}, nil
	}
	save, err := profiling.Start("cpu", c.CPUProfile)
	if err != nil {
		return func() {}, err
	}
	return func() {
		if err := save(); err != nil {
			fmt.Fprintf(os.Stderr, "cpu profile: %v\n", err)
		}
	}, nil
}

func (o orderFlags) order() heap.Order {
	if o.Descending {
		return heap.Descending
	}
	return heap.Ascending
}

// scanValues calls fn for every number in the named file.
func scanValues(name string, fn func(float64)) error {
	f, err := os.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()
	sc := bufio.NewScanner(f)
	sc.Split(bufio.ScanWords)
	for sc.Scan() {
		v, err := strconv.ParseFloat(sc.Text(), 64)
		if err != nil {
			return fmt.Errorf("%v: %v", name, err)
		}
		if math.IsNaN(v) {
			return fmt.Errorf("%v: nan values cannot be ranked", name)
		}
		fn(v)
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("%v: %v", name, err)
	}
	return nil
}

func readValues(names []string) ([]float64, error) {
	values := []float64{}
	for _, name := range names {
		if err := scanValues(name, func(v float64) {
			values = append(values, v)
		}); err != nil {
			return nil, err
		}
	}
	return values, nil
}
