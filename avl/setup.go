// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avlmap/pair"
)

// Tree - type to hold the root node of a tree
type Tree[K, V any] struct {
	root  *Node[K, V]
	count int
	less  func(a, b K) bool // strict weak order, equal if neither is less
}

// New - create an initially empty tree ordered by less
func New[K, V any](less func(a, b K) bool) *Tree[K, V] {
	return &Tree[K, V]{
		root:  nil,
		count: 0,
		less:  less,
	}
}

// IsEmpty - true if tree contains no data
func (tree *Tree[K, V]) IsEmpty() bool {
	return nil == tree.root
}

// Count - number of nodes currently in the tree
func (tree *Tree[K, V]) Count() int {
	return tree.count
}

// Root - return the root node of the tree
func (tree *Tree[K, V]) Root() *Node[K, V] {
	return tree.root
}

// Height - height of the root, zero for an empty tree
func (tree *Tree[K, V]) Height() int {
	return tree.root.safeHeight()
}

// Owns - true if the node is currently linked into this tree
func (tree *Tree[K, V]) Owns(p *Node[K, V]) bool {
	return nil != p && p.owner == tree
}

// Clear - release all nodes
func (tree *Tree[K, V]) Clear() {
	freeTree(tree.root)
	tree.root = nil
	tree.count = 0
}

// GetChildrenByDepth - returns all children in a specific depth of a tree
func (p *Node[K, V]) GetChildrenByDepth(depth uint) []*Node[K, V] {
	nodes := []*Node[K, V]{}

	if depth == 0 {
		nodes = []*Node[K, V]{p}
	} else {
		if p.left != nil {
			nodes = append(nodes, p.left.GetChildrenByDepth(depth-1)...)
		}
		if p.right != nil {
			nodes = append(nodes, p.right.GetChildrenByDepth(depth-1)...)
		}
	}
	return nodes
}

// Key - read the key from a node item
func (p *Node[K, V]) Key() K {
	return p.item.Key()
}

// Value - read the value from a node item
func (p *Node[K, V]) Value() V {
	return p.item.Value
}

// ValueRef - the value in place, so it can be modified
func (p *Node[K, V]) ValueRef() *V {
	return &p.item.Value
}

// Pair - copy of the node's key and value
func (p *Node[K, V]) Pair() pair.Pair[K, V] {
	return p.item
}

// Parent - return parent node of a node
func (p *Node[K, V]) Parent() *Node[K, V] {
	return p.up
}

// Height - stored height of the sub-tree rooted at this node
func (p *Node[K, V]) Height() int {
	return p.height
}

// Depth - get the depth of a node
func (p *Node[K, V]) Depth() uint {
	count := uint(0)
	for parent := p.up; parent != nil; parent = parent.up {
		count += 1
	}
	return count
}

func (p *Node[K, V]) safeHeight() int {
	if nil == p {
		return 0
	}
	return p.height
}

func (p *Node[K, V]) isLeft() bool {
	return nil != p.up && p.up.left == p
}

func (p *Node[K, V]) isRight() bool {
	return nil != p.up && p.up.right == p
}

// the link that refers to p: its parent's left or right, or the root
func (tree *Tree[K, V]) slotOf(p *Node[K, V]) **Node[K, V] {
	switch {
	case p.isLeft():
		return &p.up.left
	case p.isRight():
		return &p.up.right
	default:
		return &tree.root
	}
}
