// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Search - find a specific item, nil if not present
func (tree *Tree[K, V]) Search(key K) *Node[K, V] {
	p := tree.root
	for nil != p {
		switch k := p.item.Key(); {
		case tree.less(key, k):
			p = p.left
		case tree.less(k, key):
			p = p.right
		default:
			return p
		}
	}
	return nil
}

// internal: like Search but also return the link where the key is
// or would be attached and the last node visited before it (the
// future parent of a new node)
func (tree *Tree[K, V]) searchWithHot(key K) (slot **Node[K, V], hot *Node[K, V]) {
	slot = &tree.root
	for p := *slot; nil != p; p = *slot {
		switch k := p.item.Key(); {
		case tree.less(key, k):
			slot = &p.left
		case tree.less(k, key):
			slot = &p.right
		default:
			return slot, hot
		}
		hot = p
	}
	return slot, hot
}
