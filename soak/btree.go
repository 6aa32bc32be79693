// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package soak

import (
	"github.com/tidwall/btree"
)

const btreeOracleName = "btree"

type btreeOracle struct {
	tree *btree.BTreeG[Entry]
}

func lessEntry(a, b Entry) bool {
	return a.Key < b.Key
}

func newBTreeOracle() *btreeOracle {
	return &btreeOracle{
		tree: btree.NewBTreeG[Entry](lessEntry),
	}
}

func (o *btreeOracle) Name() string {
	return btreeOracleName
}

func (o *btreeOracle) Reset() {
	o.tree = btree.NewBTreeG[Entry](lessEntry)
}

func (o *btreeOracle) Insert(key uint32, value uint64) bool {
	if _, ok := o.tree.Get(Entry{Key: key}); ok {
		return false
	}
	o.tree.Set(Entry{Key: key, Value: value})
	return true
}

func (o *btreeOracle) Set(key uint32, value uint64) {
	o.tree.Set(Entry{Key: key, Value: value})
}

func (o *btreeOracle) Delete(key uint32) bool {
	_, ok := o.tree.Delete(Entry{Key: key})
	return ok
}

func (o *btreeOracle) Get(key uint32) (uint64, bool) {
	e, ok := o.tree.Get(Entry{Key: key})
	return e.Value, ok
}

func (o *btreeOracle) Entries() []Entry {
	entries := make([]Entry, 0, o.tree.Len())
	o.tree.Scan(func(e Entry) bool {
		entries = append(entries, e)
		return true
	})
	return entries
}
