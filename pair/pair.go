// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package pair - a key and its associated value
//
// The key is fixed when the pair is created and can only be read;
// the value may be changed in place.
package pair

import (
	"fmt"
)

// Pair - key/value aggregate
type Pair[K, V any] struct {
	key   K
	Value V
}

// New - create a pair
func New[K, V any](key K, value V) Pair[K, V] {
	return Pair[K, V]{
		key:   key,
		Value: value,
	}
}

// Key - read the key part
func (p Pair[K, V]) Key() K {
	return p.key
}

// String - for debugging output
func (p Pair[K, V]) String() string {
	return fmt.Sprintf("%v → %v", p.key, p.Value)
}
