// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package soak

import (
	"github.com/bitmark-inc/avlmap/fault"
	"github.com/bitmark-inc/avlmap/pair"
)

type operation int

// same order as Weights.list
const (
	opInsert operation = iota
	opIndex
	opErase
	opEraseWalk
	opLookup
	opClone
	opClear
)

func (r *Runner) choose() operation {
	weights := r.configuration.Weights.list()
	n := r.random.Intn(r.configuration.Weights.total())
	for i, w := range weights {
		if n < w {
			return operation(i)
		}
		n -= w
	}
	return opLookup
}

func (r *Runner) key() uint32 {
	return uint32(r.random.Int63n(int64(r.configuration.KeySpace)))
}

func (r *Runner) step() error {
	switch r.choose() {
	case opInsert:
		return r.insert()
	case opIndex:
		return r.index()
	case opErase:
		return r.erase()
	case opEraseWalk:
		return r.eraseWalk()
	case opLookup:
		return r.lookup()
	case opClone:
		return r.clone()
	case opClear:
		return r.clear()
	}
	return nil
}

func (r *Runner) insert() error {
	k := r.key()
	v := r.random.Uint64()

	it, added := r.m.Insert(pair.New(k, v))
	if added {
		r.statistics.Inserts.Increment()
	} else {
		r.statistics.Duplicates.Increment()
	}

	stored, err := it.Value()
	if nil != err {
		return err
	}
	if added && stored != v {
		return r.mismatch("insert: %d  stored: %d  expected: %d", k, stored, v)
	}

	for _, o := range r.oracles {
		if o.Insert(k, v) != added {
			return r.mismatch("%s: insert: %d  map added: %t", o.Name(), k, added)
		}
		if !added {
			expected, ok := o.Get(k)
			if !ok || expected != stored {
				return r.mismatch("%s: insert: %d  kept: %d  expected: %d", o.Name(), k, stored, expected)
			}
		}
	}
	return nil
}

func (r *Runner) index() error {
	k := r.key()
	v := r.random.Uint64()

	*r.m.Index(k) = v
	r.statistics.Indexes.Increment()

	for _, o := range r.oracles {
		o.Set(k, v)
	}
	return nil
}

func (r *Runner) erase() error {
	k := r.key()

	it := r.m.Find(k)
	present := !it.IsEnd()
	if present {
		if err := r.m.Erase(it); nil != err {
			return err
		}
		r.statistics.Erases.Increment()
	} else {
		r.statistics.Misses.Increment()
	}

	for _, o := range r.oracles {
		if o.Delete(k) != present {
			return r.mismatch("%s: erase: %d  map present: %t", o.Name(), k, present)
		}
	}
	return nil
}

// erase the element at a random position, reached by walking an iterator
// forwards from Begin or backwards from End
func (r *Runner) eraseWalk() error {
	size := r.m.Size()
	if 0 == size {
		return r.insert()
	}

	position := r.random.Intn(size)
	var it = r.m.Begin()
	if position < size/2 {
		for i := 0; i < position; i += 1 {
			if err := it.Next(); nil != err {
				return err
			}
		}
	} else {
		it = r.m.End()
		for i := size; i > position; i -= 1 {
			if err := it.Prev(); nil != err {
				return err
			}
		}
	}

	k, err := it.Key()
	if nil != err {
		return err
	}
	if err := r.m.Erase(it); nil != err {
		return err
	}
	r.statistics.Walks.Increment()

	if 1 == r.m.Count(k) {
		return r.mismatch("erase walk: %d  still present", k)
	}

	for _, o := range r.oracles {
		if !o.Delete(k) {
			return r.mismatch("%s: erase walk: %d  not present", o.Name(), k)
		}
	}
	return nil
}

func (r *Runner) lookup() error {
	k := r.key()

	v, err := r.m.At(k)
	present := nil == err
	if nil != err && !fault.IsErrOutOfBound(err) {
		return err
	}
	if present {
		r.statistics.Lookups.Increment()
	} else {
		r.statistics.Misses.Increment()
	}

	if count := r.m.Count(k); (1 == count) != present {
		return r.mismatch("lookup: %d  count: %d  present: %t", k, count, present)
	}

	for _, o := range r.oracles {
		expected, ok := o.Get(k)
		if ok != present {
			return r.mismatch("%s: lookup: %d  map present: %t", o.Name(), k, present)
		}
		if ok && expected != *v {
			return r.mismatch("%s: lookup: %d  value: %d  expected: %d", o.Name(), k, *v, expected)
		}
	}
	return nil
}

// copy, verify the copy, then assign it back so the map is rebuilt
func (r *Runner) clone() error {
	c := r.m.Clone()
	r.statistics.Clones.Increment()

	if err := c.Check(); nil != err {
		r.log.Criticalf("clone check failed: %s", err)
		return fault.ErrTreeCorrupt
	}
	if c.Size() != r.m.Size() {
		return r.mismatch("clone: size: %d  expected: %d", c.Size(), r.m.Size())
	}

	r.m.Assign(c)
	return nil
}

func (r *Runner) clear() error {
	r.m.Clear()
	r.statistics.Clears.Increment()

	if !r.m.Empty() {
		return r.mismatch("clear: size: %d", r.m.Size())
	}
	for _, o := range r.oracles {
		o.Reset()
	}
	return nil
}
