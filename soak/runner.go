// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package soak

import (
	"math"
	"math/rand"
	"time"

	"github.com/bitmark-inc/logger"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/avlmap/fault"
	"github.com/bitmark-inc/avlmap/omap"
)

const (
	progressInterval = 5 * time.Second
)

// Runner - drives one soak run
type Runner struct {
	configuration Configuration
	log           *logger.L
	oracles       []Oracle
	random        *rand.Rand
	progress      *rate.Limiter
	m             *omap.Map[uint32, uint64]
	statistics    Statistics
}

// New - validate the configuration and create a runner
func New(configuration Configuration, log *logger.L, oracles ...Oracle) (*Runner, error) {
	if nil == log {
		return nil, fault.ErrInvalidLoggerChannel
	}
	if 0 == len(oracles) {
		return nil, fault.ErrNoOracles
	}
	if err := configuration.validate(); nil != err {
		return nil, err
	}
	if configuration.CheckEvery <= 0 {
		configuration.CheckEvery = configuration.Operations
	}

	r := &Runner{
		configuration: configuration,
		log:           log,
		oracles:       oracles,
		random:        rand.New(rand.NewSource(configuration.Seed)),
		progress:      rate.NewLimiter(rate.Every(progressInterval), 1),
		m:             omap.New[uint32, uint64](),
	}
	return r, nil
}

// Statistics - counters accumulated so far
func (r *Runner) Statistics() *Statistics {
	return &r.statistics
}

// Run - execute all rounds, stopping at the first failure
func (r *Runner) Run() error {
	r.log.Infof("seed: %d  rounds: %d  operations: %d  key space: %d",
		r.configuration.Seed,
		r.configuration.Rounds,
		r.configuration.Operations,
		r.configuration.KeySpace,
	)
	for _, o := range r.oracles {
		r.log.Infof("oracle: %s", o.Name())
	}

	for round := 1; round <= r.configuration.Rounds; round += 1 {
		if err := r.round(round); nil != err {
			r.log.Errorf("round: %d  failed: %s", round, err)
			return err
		}
		r.log.Debugf("round: %d  done  size: %d  height: %d", round, r.m.Size(), r.m.Height())
	}

	r.log.Infof("finished: %s", r.statistics.String())
	return nil
}

func (r *Runner) round(round int) error {
	r.m.Clear()
	for _, o := range r.oracles {
		o.Reset()
	}

	for n := 1; n <= r.configuration.Operations; n += 1 {
		if err := r.step(); nil != err {
			return err
		}
		r.statistics.Operations.Increment()

		if 0 == n%r.configuration.CheckEvery {
			if err := r.verify(); nil != err {
				return err
			}
		}

		if r.progress.Allow() {
			r.log.Infof("round: %d  operation: %d/%d  size: %d  height: %d",
				round, n, r.configuration.Operations, r.m.Size(), r.m.Height())
		}
	}
	return r.verify()
}

// verify the tree structure then compare every oracle's contents
func (r *Runner) verify() error {
	r.statistics.Checks.Increment()

	if err := r.m.Check(); nil != err {
		r.log.Criticalf("check failed: %s", err)
		fault.Criticalf("seed: %d  tree check failed: %s", r.configuration.Seed, err)
		return fault.ErrTreeCorrupt
	}

	n := r.m.Size()
	if float64(r.m.Height()) > heightBound(n) {
		r.log.Criticalf("height: %d exceeds bound for size: %d", r.m.Height(), n)
		return fault.ErrTreeCorrupt
	}

	entries := make([]Entry, 0, n)
	for k, v := range r.m.All() {
		entries = append(entries, Entry{Key: k, Value: v})
	}

	for _, o := range r.oracles {
		expected := o.Entries()
		if len(expected) != len(entries) {
			return r.mismatch("%s: size: %d  map size: %d", o.Name(), len(expected), len(entries))
		}
		for i, e := range expected {
			if e != entries[i] {
				return r.mismatch("%s: entry[%d]: %v  map: %v", o.Name(), i, e, entries[i])
			}
		}
	}
	return nil
}

func (r *Runner) mismatch(format string, arguments ...interface{}) error {
	r.log.Errorf(format, arguments...)
	return fault.ErrOracleMismatch
}

// height limit of an AVL tree holding n nodes
func heightBound(n int) float64 {
	return 1.4405*math.Log2(float64(n)+2) - 0.3277
}
