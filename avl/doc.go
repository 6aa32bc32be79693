// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - a height balanced AVL tree with the addition of
// parent pointers to allow iteration through the nodes
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// Each node stores its height and all rotations are performed by a
// single restructuring routine that re-links three nodes and their
// four sub-trees, covering both single and double rotations.
//
// Inserting a key that is already present does not change the tree.
// Deleting a node with two children moves the key and value of its
// in-order successor into it and releases the successor's node, so a
// handle on the successor is no longer valid after such a delete.
// Released nodes are detached from their tree and can be detected
// with Tree.Owns.
package avl
