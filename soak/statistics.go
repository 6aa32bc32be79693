// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package soak

import (
	"fmt"

	"github.com/bitmark-inc/avlmap/counter"
)

// Statistics - running totals for a soak run
type Statistics struct {
	Operations counter.Counter
	Inserts    counter.Counter
	Duplicates counter.Counter
	Indexes    counter.Counter
	Erases     counter.Counter
	Walks      counter.Counter
	Lookups    counter.Counter
	Misses     counter.Counter
	Clones     counter.Counter
	Clears     counter.Counter
	Checks     counter.Counter
}

func (s *Statistics) String() string {
	return fmt.Sprintf(
		"operations: %d  inserts: %d  duplicates: %d  indexes: %d  erases: %d  walks: %d  lookups: %d  misses: %d  clones: %d  clears: %d  checks: %d",
		s.Operations.Uint64(),
		s.Inserts.Uint64(),
		s.Duplicates.Uint64(),
		s.Indexes.Uint64(),
		s.Erases.Uint64(),
		s.Walks.Uint64(),
		s.Lookups.Uint64(),
		s.Misses.Uint64(),
		s.Clones.Uint64(),
		s.Clears.Uint64(),
		s.Checks.Uint64(),
	)
}
