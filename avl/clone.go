// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Clone - deep copy with the same shape, keys, values and heights
func (tree *Tree[K, V]) Clone() *Tree[K, V] {
	t := New[K, V](tree.less)
	t.copyFrom(tree)
	return t
}

// Assign - release the current contents and replace them with a deep
// copy of src, the tree itself keeps its identity
func (tree *Tree[K, V]) Assign(src *Tree[K, V]) {
	if tree == src {
		return
	}
	tree.Clear()
	tree.less = src.less
	tree.copyFrom(src)
}

func (tree *Tree[K, V]) copyFrom(src *Tree[K, V]) {
	tree.root = cloneTree(tree, src.root, nil)
	tree.count = src.count
}

func cloneTree[K, V any](owner *Tree[K, V], p *Node[K, V], up *Node[K, V]) *Node[K, V] {
	if nil == p {
		return nil
	}
	n := newNode(owner, up, p.item)
	n.height = p.height
	n.left = cloneTree(owner, p.left, n)
	n.right = cloneTree(owner, p.right, n)
	return n
}
