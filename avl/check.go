// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avlmap/fault"
)

// Check - run all consistency checks
func (tree *Tree[K, V]) Check() error {
	if !tree.CheckUp() || !tree.CheckHeights() || !tree.CheckOrder() || !tree.CheckCount() {
		return fault.ErrTreeCorrupt
	}
	return nil
}

// CheckUp - check the up pointers and ownership for consistency
func (tree *Tree[K, V]) CheckUp() bool {
	return tree.checkup(tree.root, nil)
}

func (tree *Tree[K, V]) checkup(p *Node[K, V], up *Node[K, V]) bool {
	if nil == p {
		return true
	}
	if p.up != up || p.owner != tree {
		return false
	}
	return tree.checkup(p.left, p) && tree.checkup(p.right, p)
}

// CheckHeights - every stored height is correct and no node is out of balance
func (tree *Tree[K, V]) CheckHeights() bool {
	_, ok := checkHeights(tree.root)
	return ok
}

func checkHeights[K, V any](p *Node[K, V]) (int, bool) {
	if nil == p {
		return 0, true
	}
	lh, ok := checkHeights(p.left)
	if !ok {
		return 0, false
	}
	rh, ok := checkHeights(p.right)
	if !ok {
		return 0, false
	}
	if lh > rh+1 || rh > lh+1 {
		return 0, false
	}
	h := 1 + max(lh, rh)
	return h, h == p.height
}

// CheckOrder - in-order traversal gives strictly increasing keys
func (tree *Tree[K, V]) CheckOrder() bool {
	p := tree.First()
	if nil == p {
		return true
	}
	for n := p.Next(); nil != n; p, n = n, n.Next() {
		if !tree.less(p.item.Key(), n.item.Key()) {
			return false
		}
	}
	return true
}

// CheckCount - stored count matches the number of nodes
func (tree *Tree[K, V]) CheckCount() bool {
	n := 0
	for p := tree.First(); nil != p; p = p.Next() {
		n += 1
	}
	return n == tree.count
}
