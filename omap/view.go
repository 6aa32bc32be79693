// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package omap

import (
	"iter"

	"github.com/bitmark-inc/avlmap/fault"
	"github.com/bitmark-inc/avlmap/pair"
)

// View - read only access to a map, it never inserts
type View[K, V any] struct {
	m *Map[K, V]
}

// View - read only access to m
func (m *Map[K, V]) View() View[K, V] {
	return View[K, V]{m: m}
}

// At - value stored for key
func (v View[K, V]) At(key K) (V, error) {
	p := v.m.tree.Search(key)
	if nil == p {
		var zero V
		return zero, fault.ErrOutOfBound
	}
	return p.Value(), nil
}

// Index - same as At: a missing key is an error, not an insertion
func (v View[K, V]) Index(key K) (V, error) {
	return v.At(key)
}

// Find - position of key or End() if absent
func (v View[K, V]) Find(key K) Iterator[K, V] {
	return v.m.Find(key)
}

// Count - 1 if key is present otherwise 0
func (v View[K, V]) Count(key K) int {
	return v.m.Count(key)
}

// Begin - position of the smallest key
func (v View[K, V]) Begin() Iterator[K, V] {
	return v.m.Begin()
}

// End - position after the largest key
func (v View[K, V]) End() Iterator[K, V] {
	return v.m.End()
}

// Empty - true if there are no elements
func (v View[K, V]) Empty() bool {
	return v.m.Empty()
}

// Size - number of elements
func (v View[K, V]) Size() int {
	return v.m.Size()
}

// Min - smallest key and its value
func (v View[K, V]) Min() (pair.Pair[K, V], error) {
	return v.m.Min()
}

// Max - largest key and its value
func (v View[K, V]) Max() (pair.Pair[K, V], error) {
	return v.m.Max()
}

// All - elements in increasing key order
func (v View[K, V]) All() iter.Seq2[K, V] {
	return v.m.All()
}
