// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// heights of both children, zero for a missing child
func (p *Node[K, V]) childHeights() (int, int) {
	return p.left.safeHeight(), p.right.safeHeight()
}

func (p *Node[K, V]) updateHeight() {
	lh, rh := p.childHeights()
	p.height = 1 + max(lh, rh)
}

// height implied by the children and whether they differ by at most one
func (p *Node[K, V]) recalcHeight() (int, bool) {
	lh, rh := p.childHeights()
	return 1 + max(lh, rh), lh <= rh+1 && rh <= lh+1
}

// the child with the greater height; on a tie the left child is
// chosen if preferLeft is set
func (p *Node[K, V]) tallerChild(preferLeft bool) *Node[K, V] {
	lh, rh := p.childHeights()
	switch {
	case lh > rh:
		return p.left
	case rh > lh:
		return p.right
	case preferLeft:
		return p.left
	default:
		return p.right
	}
}

// restructure the unbalanced sub-tree at p and link the new local
// root where p was, returns the new local root
func (tree *Tree[K, V]) restructure(p *Node[K, V]) *Node[K, V] {
	up := p.up
	slot := tree.slotOf(p)
	b := rotate(p)
	b.up = up
	*slot = b
	return b
}

// classify the shape below an unbalanced node p and rebuild it
//
// c is the taller child of p and g the taller child of c; when both
// children of c have the same height, g is taken from the same side
// as c so a single rotation is used (this only arises after delete)
func rotate[K, V any](p *Node[K, V]) *Node[K, V] {
	c := p.tallerChild(true)
	cLeft := c == p.left
	g := c.tallerChild(cLeft)

	if cLeft {
		if g == c.left {
			// left-left
			return connect34(g, c, p, g.left, g.right, c.right, p.right)
		}
		// left-right
		return connect34(c, g, p, c.left, g.left, g.right, p.right)
	}
	if g == c.left {
		// right-left
		return connect34(p, g, c, p.left, g.left, g.right, c.right)
	}
	// right-right
	return connect34(p, c, g, p.left, c.left, g.left, g.right)
}

// connect three nodes a < b < c and four sub-trees t1 < t2 < t3 < t4
// as:
//
//	     b
//	   /   \
//	  a     c
//	 / \   / \
//	t1 t2 t3 t4
//
// the parent link of b is left for the caller to set
func connect34[K, V any](a, b, c, t1, t2, t3, t4 *Node[K, V]) *Node[K, V] {
	a.attach(t1, t2)
	c.attach(t3, t4)
	b.attach(a, c)
	return b
}

// set both children and recompute the height
func (p *Node[K, V]) attach(left, right *Node[K, V]) {
	p.left = left
	p.right = right
	if nil != left {
		left.up = p
	}
	if nil != right {
		right.up = p
	}
	p.updateHeight()
}
