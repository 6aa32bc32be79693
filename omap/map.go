// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package omap

import (
	"cmp"
	"io"

	"github.com/bitmark-inc/avlmap/avl"
	"github.com/bitmark-inc/avlmap/fault"
	"github.com/bitmark-inc/avlmap/pair"
)

// Map - ordered map of unique keys, create with New or NewFunc
type Map[K, V any] struct {
	tree *avl.Tree[K, V]
}

// New - empty map ordered by the natural order of K
func New[K cmp.Ordered, V any]() *Map[K, V] {
	return NewFunc[K, V](cmp.Less[K])
}

// NewFunc - empty map ordered by less, which must be a strict weak
// order; keys a and b are the same key if neither is less
func NewFunc[K, V any](less func(a, b K) bool) *Map[K, V] {
	return &Map[K, V]{
		tree: avl.New[K, V](less),
	}
}

// At - reference to the value stored for key
func (m *Map[K, V]) At(key K) (*V, error) {
	p := m.tree.Search(key)
	if nil == p {
		return nil, fault.ErrOutOfBound
	}
	return p.ValueRef(), nil
}

// Index - reference to the value stored for key, a zero value is
// inserted first if key is absent
func (m *Map[K, V]) Index(key K) *V {
	p := m.tree.Search(key)
	if nil == p {
		var zero V
		p, _ = m.tree.Insert(key, zero)
	}
	return p.ValueRef()
}

// Insert - add a key and value
//
// returns the position of the new element and true, or if the key was
// already present, the position of the existing element and false
// without changing its value
func (m *Map[K, V]) Insert(item pair.Pair[K, V]) (Iterator[K, V], bool) {
	p, added := m.tree.Insert(item.Key(), item.Value)
	return m.iterator(p), added
}

// Erase - remove the element at position it
func (m *Map[K, V]) Erase(it Iterator[K, V]) error {
	if err := it.validFor(m); nil != err {
		return err
	}
	if nil == it.node {
		return fault.ErrIteratorPastTheEnd
	}
	return m.tree.Remove(it.node)
}

// Find - position of key or End() if absent
func (m *Map[K, V]) Find(key K) Iterator[K, V] {
	return m.iterator(m.tree.Search(key))
}

// Count - 1 if key is present otherwise 0
func (m *Map[K, V]) Count(key K) int {
	if nil == m.tree.Search(key) {
		return 0
	}
	return 1
}

// Begin - position of the smallest key, End() if empty
func (m *Map[K, V]) Begin() Iterator[K, V] {
	return m.iterator(m.tree.First())
}

// End - position after the largest key
func (m *Map[K, V]) End() Iterator[K, V] {
	return m.iterator(nil)
}

// Empty - true if there are no elements
func (m *Map[K, V]) Empty() bool {
	return m.tree.IsEmpty()
}

// Size - number of elements
func (m *Map[K, V]) Size() int {
	return m.tree.Count()
}

// Clear - remove all elements, all iterators except End() become invalid
func (m *Map[K, V]) Clear() {
	m.tree.Clear()
}

// Min - smallest key and its value
func (m *Map[K, V]) Min() (pair.Pair[K, V], error) {
	return extreme(m.tree.First())
}

// Max - largest key and its value
func (m *Map[K, V]) Max() (pair.Pair[K, V], error) {
	return extreme(m.tree.Last())
}

func extreme[K, V any](p *avl.Node[K, V]) (pair.Pair[K, V], error) {
	if nil == p {
		return pair.Pair[K, V]{}, fault.ErrEmptyContainer
	}
	return p.Pair(), nil
}

// Clone - independent deep copy
func (m *Map[K, V]) Clone() *Map[K, V] {
	return &Map[K, V]{
		tree: m.tree.Clone(),
	}
}

// Assign - replace the contents by a deep copy of src
//
// the map keeps its identity, so End() stays valid, but every other
// iterator on m is invalidated
func (m *Map[K, V]) Assign(src *Map[K, V]) {
	m.tree.Assign(src.tree)
}

// Height - height of the underlying tree
func (m *Map[K, V]) Height() int {
	return m.tree.Height()
}

// Check - verify the underlying tree structure
func (m *Map[K, V]) Check() error {
	return m.tree.Check()
}

// Print - ASCII drawing of the underlying tree, returns its depth
func (m *Map[K, V]) Print(w io.Writer, printData bool) int {
	return m.tree.Print(w, printData)
}

func (m *Map[K, V]) iterator(p *avl.Node[K, V]) Iterator[K, V] {
	return Iterator[K, V]{
		tree: m.tree,
		node: p,
	}
}
