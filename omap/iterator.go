// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package omap

import (
	"github.com/bitmark-inc/avlmap/avl"
	"github.com/bitmark-inc/avlmap/fault"
	"github.com/bitmark-inc/avlmap/pair"
)

// Iterator - a position in a map
//
// the zero Iterator belongs to no map and every operation on it fails
type Iterator[K, V any] struct {
	tree *avl.Tree[K, V]
	node *avl.Node[K, V] // nil: past the end
}

// Next - advance to the next larger key, fails at End()
func (it *Iterator[K, V]) Next() error {
	if err := it.valid(); nil != err {
		return err
	}
	if nil == it.node {
		return fault.ErrIteratorPastTheEnd
	}
	it.node = it.node.Next()
	return nil
}

// Prev - step back to the next smaller key, End() moves to the
// largest key; fails at the smallest key or on an empty map
func (it *Iterator[K, V]) Prev() error {
	if err := it.valid(); nil != err {
		return err
	}
	if it.node == it.tree.First() {
		return fault.ErrIteratorAtBegin
	}
	if nil == it.node {
		it.node = it.tree.Last()
	} else {
		it.node = it.node.Prev()
	}
	return nil
}

// Key - key at this position
func (it Iterator[K, V]) Key() (K, error) {
	if err := it.dereference(); nil != err {
		var zero K
		return zero, err
	}
	return it.node.Key(), nil
}

// Value - value at this position
func (it Iterator[K, V]) Value() (V, error) {
	if err := it.dereference(); nil != err {
		var zero V
		return zero, err
	}
	return it.node.Value(), nil
}

// ValueRef - value at this position, for modification in place
func (it Iterator[K, V]) ValueRef() (*V, error) {
	if err := it.dereference(); nil != err {
		return nil, err
	}
	return it.node.ValueRef(), nil
}

// SetValue - replace the value at this position
func (it Iterator[K, V]) SetValue(value V) error {
	v, err := it.ValueRef()
	if nil != err {
		return err
	}
	*v = value
	return nil
}

// Pair - copy of the key and value at this position
func (it Iterator[K, V]) Pair() (pair.Pair[K, V], error) {
	if err := it.dereference(); nil != err {
		return pair.Pair[K, V]{}, err
	}
	return it.node.Pair(), nil
}

// Equal - same map and same position
func (it Iterator[K, V]) Equal(other Iterator[K, V]) bool {
	return it.tree == other.tree && it.node == other.node
}

// IsEnd - true for the position after the largest key
func (it Iterator[K, V]) IsEnd() bool {
	return nil == it.node
}

// Distance - number of Next steps from first to last
func Distance[K, V any](first, last Iterator[K, V]) (int, error) {
	if first.tree != last.tree {
		return 0, fault.ErrIteratorFromAnotherMap
	}
	if err := first.valid(); nil != err {
		return 0, err
	}
	if err := last.valid(); nil != err {
		return 0, err
	}
	n := 0
	for p := first.node; p != last.node; p = p.Next() {
		if nil == p {
			return 0, fault.ErrIteratorNotReachable
		}
		n += 1
	}
	return n, nil
}

// belongs to some map and not erased
func (it Iterator[K, V]) valid() error {
	if nil == it.tree {
		return fault.ErrInvalidIterator
	}
	if nil != it.node && !it.tree.Owns(it.node) {
		return fault.ErrStaleIterator
	}
	return nil
}

// belongs to this map and not erased
func (it Iterator[K, V]) validFor(m *Map[K, V]) error {
	if nil == it.tree {
		return fault.ErrInvalidIterator
	}
	if it.tree != m.tree {
		return fault.ErrIteratorFromAnotherMap
	}
	return it.valid()
}

// refers to an element
func (it Iterator[K, V]) dereference() error {
	if err := it.valid(); nil != err {
		return err
	}
	if nil == it.node {
		return fault.ErrIteratorPastTheEnd
	}
	return nil
}
