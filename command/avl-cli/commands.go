// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"math"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/avlmap/omap"
	"github.com/bitmark-inc/avlmap/pair"
)

// keys are strings, values are the position on the command line
type stringMap = omap.Map[string, int]

func buildMap(m *metadata, keys []string, trace bool) (*stringMap, error) {
	if 0 == len(keys) {
		return nil, ErrNoKeys
	}

	sm := omap.New[string, int]()
	for i, key := range keys {
		_, added := sm.Insert(pair.New(key, i))
		if m.verbose && !added {
			fmt.Fprintf(m.e, "duplicate: %q\n", key)
		}
		if trace {
			fmt.Fprintf(m.w, "insert: %s\n", key)
			if err := show(m, sm); nil != err {
				return nil, err
			}
		}
	}
	return sm, nil
}

// print the tree then verify it
func show(m *metadata, sm *stringMap) error {
	sm.Print(m.w, false)
	fmt.Fprintln(m.w)
	return sm.Check()
}

// height limit of an AVL tree holding n nodes
func heightBound(n int) float64 {
	return 1.4405*math.Log2(float64(n)+2) - 0.3277
}

func runPrint(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	sm, err := buildMap(m, c.Args(), false)
	if nil != err {
		return err
	}

	depth := sm.Print(m.w, c.Bool("data"))
	if m.verbose {
		fmt.Fprintf(m.e, "size: %d  depth: %d\n", sm.Size(), depth)
	}
	return nil
}

func runTrace(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	sm, err := buildMap(m, c.Args(), true)
	if nil != err {
		return err
	}

	for _, key := range c.StringSlice("erase") {
		it := sm.Find(key)
		if it.IsEnd() {
			return fmt.Errorf("erase: %q: %w", key, ErrKeyNotFound)
		}
		if err := sm.Erase(it); nil != err {
			return err
		}
		fmt.Fprintf(m.w, "erase: %s\n", key)
		if err := show(m, sm); nil != err {
			return err
		}
	}
	return nil
}

type checkReply struct {
	Size   int      `json:"size"`
	Height int      `json:"height"`
	Bound  float64  `json:"height_bound"`
	Min    string   `json:"min"`
	Max    string   `json:"max"`
	Keys   []string `json:"keys"`
	Valid  bool     `json:"valid"`
}

func runCheck(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	sm, err := buildMap(m, c.Args(), false)
	if nil != err {
		return err
	}

	checkErr := sm.Check()

	first, _ := sm.Min()
	last, _ := sm.Max()
	reply := checkReply{
		Size:   sm.Size(),
		Height: sm.Height(),
		Bound:  heightBound(sm.Size()),
		Min:    first.Key(),
		Max:    last.Key(),
		Keys:   make([]string, 0, sm.Size()),
		Valid:  nil == checkErr && float64(sm.Height()) <= heightBound(sm.Size()),
	}
	for key := range sm.Keys() {
		reply.Keys = append(reply.Keys, key)
	}

	if err := printJson(m.w, reply); nil != err {
		return err
	}
	return checkErr
}

func runVersion(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)
	fmt.Fprintf(m.w, "%s\n", version)
	return nil
}
