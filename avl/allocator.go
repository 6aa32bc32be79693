// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avlmap/pair"
)

// Node - a node in the tree
type Node[K, V any] struct {
	left   *Node[K, V]     // left sub-tree
	right  *Node[K, V]     // right sub-tree
	up     *Node[K, V]     // points to parent node, never owns it
	owner  *Tree[K, V]     // tree holding this node, nil after release
	item   pair.Pair[K, V] // key for ordering and value for data storage
	height int             // 1 for a leaf
}

// allocate a new leaf node attached below up
func newNode[K, V any](owner *Tree[K, V], up *Node[K, V], item pair.Pair[K, V]) *Node[K, V] {
	return &Node[K, V]{
		up:     up,
		owner:  owner,
		item:   item,
		height: 1,
	}
}

// detach a node so any remaining handle on it is recognisably stale
func freeNode[K, V any](node *Node[K, V]) {
	node.left = nil
	node.right = nil
	node.up = nil
	node.owner = nil
	node.item = pair.Pair[K, V]{}
	node.height = 0
}

// release a whole sub-tree
func freeTree[K, V any](node *Node[K, V]) {
	if nil == node {
		return
	}
	freeTree(node.left)
	freeTree(node.right)
	freeNode(node)
}
