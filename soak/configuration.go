// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package soak

import (
	"github.com/bitmark-inc/avlmap/fault"
)

const (
	defaultRounds     = 10
	defaultOperations = 100000
	defaultKeySpace   = 4096
	defaultCheckEvery = 1000
)

// Weights - relative frequency of each operation
type Weights struct {
	Insert    int `gluamapper:"insert" json:"insert"`
	Index     int `gluamapper:"index" json:"index"`
	Erase     int `gluamapper:"erase" json:"erase"`
	EraseWalk int `gluamapper:"erase_walk" json:"erase_walk"`
	Lookup    int `gluamapper:"lookup" json:"lookup"`
	Clone     int `gluamapper:"clone" json:"clone"`
	Clear     int `gluamapper:"clear" json:"clear"`
}

// Configuration - parameters of a soak run
type Configuration struct {
	Seed       int64    `gluamapper:"seed" json:"seed"`
	Rounds     int      `gluamapper:"rounds" json:"rounds"`
	Operations int      `gluamapper:"operations" json:"operations"`
	KeySpace   uint32   `gluamapper:"key_space" json:"key_space"`
	CheckEvery int      `gluamapper:"check_every" json:"check_every"`
	Oracles    []string `gluamapper:"oracles" json:"oracles"`
	Weights    Weights  `gluamapper:"weights" json:"weights"`
}

// DefaultConfiguration - a balanced mix of operations against both oracles
func DefaultConfiguration() Configuration {
	return Configuration{
		Seed:       1,
		Rounds:     defaultRounds,
		Operations: defaultOperations,
		KeySpace:   defaultKeySpace,
		CheckEvery: defaultCheckEvery,
		Oracles:    []string{memdbOracleName, btreeOracleName},
		Weights: Weights{
			Insert:    40,
			Index:     10,
			Erase:     25,
			EraseWalk: 5,
			Lookup:    20,
			Clone:     0,
			Clear:     0,
		},
	}
}

func (c Configuration) validate() error {
	if c.Rounds <= 0 || c.Operations <= 0 {
		return fault.ErrZeroRoundsOrOperations
	}
	if 0 == c.KeySpace {
		return fault.ErrZeroKeySpace
	}
	if c.Weights.total() <= 0 {
		return fault.ErrZeroOperationWeights
	}
	for _, w := range c.Weights.list() {
		if w < 0 {
			return fault.ErrInvalidSoakConfiguration
		}
	}
	return nil
}

// weights in the same order as the operation constants
func (w Weights) list() []int {
	return []int{w.Insert, w.Index, w.Erase, w.EraseWalk, w.Lookup, w.Clone, w.Clear}
}

func (w Weights) total() int {
	t := 0
	for _, n := range w.list() {
		t += n
	}
	return t
}
