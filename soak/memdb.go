// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package soak

import (
	"encoding/binary"

	"github.com/syndtr/goleveldb/leveldb/comparer"
	"github.com/syndtr/goleveldb/leveldb/memdb"
)

const memdbOracleName = "memdb"

// the in-memory skip list from leveldb, keys are big endian so the
// bytewise order is the numeric order
type memdbOracle struct {
	db *memdb.DB
}

func newMemDBOracle() *memdbOracle {
	return &memdbOracle{
		db: memdb.New(comparer.DefaultComparer, 0),
	}
}

func encodeKey(key uint32) []byte {
	b := make([]byte, 4)
	binary.BigEndian.PutUint32(b, key)
	return b
}

func encodeValue(value uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, value)
	return b
}

func (o *memdbOracle) Name() string {
	return memdbOracleName
}

func (o *memdbOracle) Reset() {
	o.db.Reset()
}

func (o *memdbOracle) Insert(key uint32, value uint64) bool {
	k := encodeKey(key)
	if o.db.Contains(k) {
		return false
	}
	o.Set(key, value)
	return true
}

func (o *memdbOracle) Set(key uint32, value uint64) {
	// memdb.Put only fails on a nil database
	_ = o.db.Put(encodeKey(key), encodeValue(value))
}

func (o *memdbOracle) Delete(key uint32) bool {
	return nil == o.db.Delete(encodeKey(key))
}

func (o *memdbOracle) Get(key uint32) (uint64, bool) {
	v, err := o.db.Get(encodeKey(key))
	if nil != err {
		return 0, false
	}
	return binary.BigEndian.Uint64(v), true
}

func (o *memdbOracle) Entries() []Entry {
	entries := make([]Entry, 0, o.db.Len())
	iter := o.db.NewIterator(nil)
	defer iter.Release()
	for iter.Next() {
		entries = append(entries, Entry{
			Key:   binary.BigEndian.Uint32(iter.Key()),
			Value: binary.BigEndian.Uint64(iter.Value()),
		})
	}
	return entries
}
