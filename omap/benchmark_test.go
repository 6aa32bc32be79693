// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package omap_test

import (
	"math/rand"
	"testing"

	"github.com/tidwall/btree"

	"github.com/bitmark-inc/avlmap/omap"
	"github.com/bitmark-inc/avlmap/pair"
)

const benchmarkKeys = 1 << 16

func benchmarkKeySet() []uint32 {
	r := rand.New(rand.NewSource(1))
	keys := make([]uint32, benchmarkKeys)
	for i := range keys {
		keys[i] = r.Uint32()
	}
	return keys
}

type item struct {
	key   uint32
	value int
}

func itemLess(a, b item) bool {
	return a.key < b.key
}

func BenchmarkMapInsert(b *testing.B) {
	keys := benchmarkKeySet()
	b.ResetTimer()
	for n := 0; n < b.N; n += 1 {
		m := omap.New[uint32, int]()
		for i, k := range keys {
			m.Insert(pair.New(k, i))
		}
	}
}

func BenchmarkBTreeInsert(b *testing.B) {
	keys := benchmarkKeySet()
	b.ResetTimer()
	for n := 0; n < b.N; n += 1 {
		t := btree.NewBTreeG[item](itemLess)
		for i, k := range keys {
			t.Set(item{key: k, value: i})
		}
	}
}

func BenchmarkMapFind(b *testing.B) {
	keys := benchmarkKeySet()
	m := omap.New[uint32, int]()
	for i, k := range keys {
		m.Insert(pair.New(k, i))
	}
	b.ResetTimer()
	for n := 0; n < b.N; n += 1 {
		m.Find(keys[n%len(keys)])
	}
}

func BenchmarkBTreeFind(b *testing.B) {
	keys := benchmarkKeySet()
	t := btree.NewBTreeG[item](itemLess)
	for i, k := range keys {
		t.Set(item{key: k, value: i})
	}
	b.ResetTimer()
	for n := 0; n < b.N; n += 1 {
		t.Get(item{key: keys[n%len(keys)]})
	}
}

// erase everything in key order through Begin
func BenchmarkMapEraseBegin(b *testing.B) {
	keys := benchmarkKeySet()
	for n := 0; n < b.N; n += 1 {
		b.StopTimer()
		m := omap.New[uint32, int]()
		for i, k := range keys {
			m.Insert(pair.New(k, i))
		}
		b.StartTimer()
		for !m.Empty() {
			if err := m.Erase(m.Begin()); nil != err {
				b.Fatalf("erase error: %s", err)
			}
		}
	}
}
