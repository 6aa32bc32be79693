// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package soak - randomised differential testing of omap.Map
//
// A runner applies a random sequence of operations to a map and to
// one or more independent ordered containers (oracles) and stops at
// the first disagreement or structural fault.  Tree defects usually
// only show up after particular sequences of rotations, so long runs
// with many seeds are the point of this package.
package soak
