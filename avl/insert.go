// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avlmap/pair"
)

// Insert - insert a new node into the tree
//
// returns the node holding key and true if it was added; if key is
// already present the existing node is returned with false and the
// tree, including the stored value, is unchanged
func (tree *Tree[K, V]) Insert(key K, value V) (*Node[K, V], bool) {
	slot, hot := tree.searchWithHot(key)
	if nil != *slot {
		return *slot, false
	}

	// the link in slot may be rewritten by a rotation below, but the
	// new node itself stays the same
	p := newNode(tree, hot, pair.New(key, value))
	*slot = p
	tree.count += 1

	tree.rebalanceAfterInsert(hot)
	return p, true
}

// walk up from the parent of a new node; a single restructure
// restores balance for the whole tree, and once a height is
// unchanged no ancestor can be affected
func (tree *Tree[K, V]) rebalanceAfterInsert(p *Node[K, V]) {
	for nil != p {
		height, balanced := p.recalcHeight()
		if height == p.height {
			return
		}
		p.height = height
		if !balanced {
			tree.restructure(p)
			return
		}
		p = p.up
	}
}
