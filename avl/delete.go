// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avlmap/fault"
)

// Delete - removes a key from the tree
// returns the value that was stored and true, or the zero value and
// false if the key was not present
func (tree *Tree[K, V]) Delete(key K) (V, bool) {
	p := tree.Search(key)
	if nil == p {
		var zero V
		return zero, false
	}
	value := p.item.Value
	_ = tree.Remove(p)
	return value, true
}

// Remove - delete the node p from the tree
//
// if p has two children, p keeps its place and takes the key and
// value of its in-order successor, whose node is released instead
func (tree *Tree[K, V]) Remove(p *Node[K, V]) error {
	if !tree.Owns(p) {
		return fault.ErrInvalidIterator
	}

	var lowest *Node[K, V]
	if nil != p.left && nil != p.right {
		successor := p.right.first()
		p.item = successor.item
		lowest = tree.unlink(successor)
	} else {
		lowest = tree.unlink(p)
	}
	tree.count -= 1

	tree.rebalanceAfterDelete(lowest)
	return nil
}

// splice out a node that has at most one child and release it,
// returns the former parent
func (tree *Tree[K, V]) unlink(p *Node[K, V]) *Node[K, V] {
	child := p.left
	if nil == child {
		child = p.right
	}
	up := p.up
	*tree.slotOf(p) = child
	if nil != child {
		child.up = up
	}
	freeNode(p)
	return up
}

// walk from p to the root, a delete can require a restructure at
// every level so there is no early exit
func (tree *Tree[K, V]) rebalanceAfterDelete(p *Node[K, V]) {
	for nil != p {
		up := p.up
		height, balanced := p.recalcHeight()
		p.height = height
		if !balanced {
			tree.restructure(p)
		}
		p = up
	}
}
