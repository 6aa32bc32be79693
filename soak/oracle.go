// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package soak

import (
	"github.com/bitmark-inc/avlmap/fault"
)

//go:generate mockgen -destination=mocks/oracle.go -package=mocks github.com/bitmark-inc/avlmap/soak Oracle

// Entry - a key and value as held by an oracle
type Entry struct {
	Key   uint32
	Value uint64
}

// Oracle - an independent ordered container used as the reference
type Oracle interface {
	Name() string
	Reset()
	Insert(key uint32, value uint64) bool // only if absent, true if added
	Set(key uint32, value uint64)
	Delete(key uint32) bool
	Get(key uint32) (uint64, bool)
	Entries() []Entry // in increasing key order
}

// NewOracle - create an oracle by name
func NewOracle(name string) (Oracle, error) {
	switch name {
	case memdbOracleName:
		return newMemDBOracle(), nil
	case btreeOracleName:
		return newBTreeOracle(), nil
	default:
		return nil, fault.ErrUnknownOracle
	}
}

// NewOracles - create all named oracles
func NewOracles(names []string) ([]Oracle, error) {
	if 0 == len(names) {
		return nil, fault.ErrNoOracles
	}
	oracles := make([]Oracle, 0, len(names))
	for _, name := range names {
		o, err := NewOracle(name)
		if nil != err {
			return nil, err
		}
		oracles = append(oracles, o)
	}
	return oracles, nil
}
