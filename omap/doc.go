// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package omap - an ordered map with bidirectional iterators
//
// Map[K, V] keeps unique keys sorted by an ordering function and is
// backed by an AVL tree (package avl), so lookup, insert and erase
// take logarithmic time.
//
// Iterators behave like positions: End() is one past the largest key
// and can be stepped back to the largest key.  Misuse such as
// stepping past either end, dereferencing End(), erasing End() or
// using an iterator of another map returns an error of the
// fault.InvalidIteratorError class and leaves the map unchanged.
//
// Erasing an element invalidates iterators on it.  When the element
// has two children in the underlying tree, its position takes the key
// and value of the next element and the next element's position is
// the one that becomes invalid.  Using an invalidated iterator is
// reported as fault.ErrStaleIterator.
//
// A map is not safe for concurrent use.
package omap
