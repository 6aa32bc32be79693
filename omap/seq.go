// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package omap

import (
	"iter"
)

// All - elements in increasing key order
// the map must not be modified during the loop
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for p := m.tree.First(); nil != p; p = p.Next() {
			if !yield(p.Key(), p.Value()) {
				return
			}
		}
	}
}

// Backward - elements in decreasing key order
func (m *Map[K, V]) Backward() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for p := m.tree.Last(); nil != p; p = p.Prev() {
			if !yield(p.Key(), p.Value()) {
				return
			}
		}
	}
}

// Keys - keys in increasing order
func (m *Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range m.All() {
			if !yield(k) {
				return
			}
		}
	}
}
