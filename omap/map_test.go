// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package omap_test

import (
	"math/rand"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/avlmap/fault"
	"github.com/bitmark-inc/avlmap/omap"
	"github.com/bitmark-inc/avlmap/pair"
)

func keys[K, V any](m *omap.Map[K, V]) []K {
	result := []K{}
	for k := range m.Keys() {
		result = append(result, k)
	}
	return result
}

func TestAtOnEmptyMap(t *testing.T) {
	m := omap.New[int, string]()

	v, err := m.At(5)
	assert.Nil(t, v, "value")
	assert.Equal(t, fault.ErrOutOfBound, err, "wrong error")
	assert.True(t, fault.IsErrOutOfBound(err), "wrong error class")
	assert.Equal(t, 0, m.Size(), "size changed")
}

func TestIndexInsertsZeroValue(t *testing.T) {
	m := omap.New[int, string]()

	v := m.Index(5)
	assert.Equal(t, "", *v, "not a zero value")
	assert.Equal(t, 1, m.Size(), "wrong size")

	*v = "five"
	*m.Index(5) += "!"
	assert.Equal(t, 1, m.Size(), "second index inserted")

	at, err := m.At(5)
	require.NoError(t, err, "at")
	assert.Equal(t, "five!", *at, "value not updated in place")
}

func TestInsertIsIdempotent(t *testing.T) {
	m := omap.New[string, int]()

	it1, added := m.Insert(pair.New("a", 1))
	require.True(t, added, "first insert")

	it2, added := m.Insert(pair.New("a", 2))
	assert.False(t, added, "second insert reported added")
	assert.True(t, it1.Equal(it2), "second insert returned another position")
	assert.Equal(t, 1, m.Size(), "size changed")

	v, err := it2.Value()
	require.NoError(t, err, "value")
	assert.Equal(t, 1, v, "first value was overwritten")
}

func TestAscendingInsertThenEraseRoot(t *testing.T) {
	m := omap.New[int, int]()
	for i := 1; i <= 7; i += 1 {
		m.Insert(pair.New(i, i))
		assert.LessOrEqual(t, m.Height(), 3, "height after %d inserts", i)
		require.NoError(t, m.Check(), "check after %d inserts", i)
	}

	require.NoError(t, m.Erase(m.Find(4)), "erase")
	assert.Equal(t, []int{1, 2, 3, 5, 6, 7}, keys(m), "keys")
	assert.NoError(t, m.Check(), "check after erase")
	assert.Equal(t, 0, m.Count(4), "erased key still counted")
}

func TestEndStepsBackToMaximum(t *testing.T) {
	m := omap.New[int, string]()
	for _, k := range []int{20, 10, 30} {
		m.Insert(pair.New(k, "x"))
	}

	it := m.End()
	require.NoError(t, it.Prev(), "prev from end")
	k, err := it.Key()
	require.NoError(t, err, "key")
	assert.Equal(t, 30, k, "not the maximum")

	require.NoError(t, it.Next(), "next")
	assert.True(t, it.Equal(m.End()), "did not return to end")

	end := m.End()
	err = end.Next()
	assert.True(t, fault.IsErrInvalidIterator(err), "next past end: %v", err)
	assert.True(t, end.Equal(m.End()), "failed next moved the iterator")
}

func TestIteratorMisuse(t *testing.T) {
	m := omap.New[int, string]()
	empty := m.End()
	assert.Equal(t, fault.ErrIteratorAtBegin, empty.Prev(), "prev on empty map")

	m.Insert(pair.New(1, "one"))
	m.Insert(pair.New(2, "two"))

	begin := m.Begin()
	assert.Equal(t, fault.ErrIteratorAtBegin, begin.Prev(), "prev at begin")

	end := m.End()
	_, err := end.Key()
	assert.Equal(t, fault.ErrIteratorPastTheEnd, err, "key at end")
	_, err = end.Value()
	assert.Equal(t, fault.ErrIteratorPastTheEnd, err, "value at end")
	assert.Equal(t, fault.ErrIteratorPastTheEnd, end.SetValue("x"), "set value at end")
	assert.Equal(t, fault.ErrIteratorPastTheEnd, m.Erase(end), "erase end")

	var zero omap.Iterator[int, string]
	assert.Equal(t, fault.ErrInvalidIterator, zero.Next(), "zero next")
	assert.Equal(t, fault.ErrInvalidIterator, m.Erase(zero), "zero erase")

	other := omap.New[int, string]()
	other.Insert(pair.New(1, "one"))
	assert.Equal(t, fault.ErrIteratorFromAnotherMap, m.Erase(other.Begin()), "foreign erase")
	assert.False(t, m.End().Equal(other.End()), "ends of different maps are equal")
	assert.Equal(t, 2, m.Size(), "failed erase changed size")
	assert.Equal(t, 1, other.Size(), "failed erase changed other map")
}

func TestEraseInvalidatesIterator(t *testing.T) {
	m := omap.New[int, string]()
	for _, k := range []int{1, 2, 3} {
		m.Insert(pair.New(k, "x"))
	}

	leaf := m.Find(3)
	require.NoError(t, m.Erase(leaf), "erase")

	assert.Equal(t, fault.ErrStaleIterator, m.Erase(leaf), "erase twice")
	_, err := leaf.Key()
	assert.Equal(t, fault.ErrStaleIterator, err, "key of erased")
	assert.Equal(t, fault.ErrStaleIterator, leaf.Next(), "next of erased")
	assert.Equal(t, 2, m.Size(), "size")
}

// erasing an element with two children moves the next element into
// its position, so the iterator on the next element becomes stale
func TestEraseWithTwoChildren(t *testing.T) {
	m := omap.New[int, string]()
	for _, k := range []int{2, 1, 3} {
		m.Insert(pair.New(k, "v"+string(rune('0'+k))))
	}
	target := m.Find(2)
	successor := m.Find(3)

	require.NoError(t, m.Erase(target), "erase")

	p, err := target.Pair()
	require.NoError(t, err, "target still valid")
	assert.Equal(t, 3, p.Key(), "target key")
	assert.Equal(t, "v3", p.Value, "target value")

	_, err = successor.Key()
	assert.Equal(t, fault.ErrStaleIterator, err, "successor not stale")
	assert.Equal(t, []int{1, 3}, keys(m), "keys")
}

func TestClearAndReinsert(t *testing.T) {
	m := omap.New[string, int]()
	input := []pair.Pair[string, int]{
		pair.New("m", 1), pair.New("c", 2), pair.New("x", 3),
		pair.New("a", 4), pair.New("e", 5), pair.New("q", 6),
	}
	snapshot := func() []pair.Pair[string, int] {
		result := []pair.Pair[string, int]{}
		for k, v := range m.All() {
			result = append(result, pair.New(k, v))
		}
		return result
	}

	for _, p := range input {
		m.Insert(p)
	}
	before := snapshot()
	begin := m.Begin()

	m.Clear()
	assert.True(t, m.Empty(), "not empty")
	assert.Equal(t, 0, m.Size(), "size")
	assert.True(t, m.Begin().Equal(m.End()), "begin is not end")
	_, err := begin.Key()
	assert.Equal(t, fault.ErrStaleIterator, err, "iterator survived clear")

	for _, p := range input {
		m.Insert(p)
	}
	assert.Equal(t, before, snapshot(), "round trip")
}

func TestRandomCardinalityAndBalance(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	m := omap.New[int, int]()
	present := map[int]struct{}{}
	inserted := 0
	erased := 0

	for i := 0; i < 5000; i += 1 {
		k := r.Intn(1000)
		if _, ok := present[k]; ok && r.Intn(2) == 0 {
			require.NoError(t, m.Erase(m.Find(k)), "erase %d", k)
			delete(present, k)
			erased += 1
		} else {
			_, added := m.Insert(pair.New(k, i))
			_, ok := present[k]
			require.Equal(t, !ok, added, "insert %d", k)
			if added {
				present[k] = struct{}{}
				inserted += 1
			}
		}
		require.NoError(t, m.Check(), "operation %d", i)
	}

	assert.Equal(t, inserted-erased, m.Size(), "cardinality")

	expected := make([]int, 0, len(present))
	for k := range present {
		expected = append(expected, k)
	}
	sort.Ints(expected)
	assert.Equal(t, expected, keys(m), "keys")
}

func TestCloneIsIndependent(t *testing.T) {
	m := omap.New[int, string]()
	for _, k := range []int{5, 3, 8, 1} {
		m.Insert(pair.New(k, "x"))
	}
	c := m.Clone()
	require.NoError(t, c.Check(), "clone check")

	*c.Index(3) = "changed"
	require.NoError(t, c.Erase(c.Find(8)), "erase from clone")

	v, err := m.View().At(3)
	require.NoError(t, err, "at")
	assert.Equal(t, "x", v, "clone shares values")
	assert.Equal(t, []int{1, 3, 5, 8}, keys(m), "original keys")
	assert.Equal(t, []int{1, 3, 5}, keys(c), "clone keys")
	assert.False(t, m.Begin().Equal(c.Begin()), "clone iterators equal")
}

func TestAssign(t *testing.T) {
	src := omap.New[int, string]()
	dst := omap.New[int, string]()
	for _, k := range []int{1, 2, 3} {
		src.Insert(pair.New(k, "src"))
	}
	dst.Insert(pair.New(9, "dst"))
	old := dst.Begin()
	end := dst.End()

	dst.Assign(src)
	assert.Equal(t, []int{1, 2, 3}, keys(dst), "keys")
	assert.True(t, end.Equal(dst.End()), "end changed identity")
	_, err := old.Key()
	assert.Equal(t, fault.ErrStaleIterator, err, "old iterator survived")

	dst.Assign(dst)
	assert.Equal(t, []int{1, 2, 3}, keys(dst), "self assign")
}

func TestViewDoesNotInsert(t *testing.T) {
	m := omap.New[string, int]()
	m.Insert(pair.New("a", 1))
	v := m.View()

	_, err := v.Index("b")
	assert.Equal(t, fault.ErrOutOfBound, err, "index of missing key")
	assert.Equal(t, 1, v.Size(), "view inserted")
	assert.Equal(t, 0, v.Count("b"), "count")

	value, err := v.Index("a")
	require.NoError(t, err, "index")
	assert.Equal(t, 1, value, "value")
	assert.True(t, v.Find("a").Equal(m.Begin()), "find")
	assert.False(t, v.Empty(), "empty")
}

func TestMinMax(t *testing.T) {
	m := omap.New[int, string]()
	_, err := m.Min()
	assert.True(t, fault.IsErrEmptyContainer(err), "min of empty")
	_, err = m.View().Max()
	assert.True(t, fault.IsErrEmptyContainer(err), "max of empty")

	for _, k := range []int{4, 9, 2} {
		m.Insert(pair.New(k, "x"))
	}
	lo, err := m.Min()
	require.NoError(t, err, "min")
	hi, err := m.Max()
	require.NoError(t, err, "max")
	assert.Equal(t, 2, lo.Key(), "min key")
	assert.Equal(t, 9, hi.Key(), "max key")
}

func TestBackward(t *testing.T) {
	m := omap.New[int, int]()
	for i := 0; i < 10; i += 1 {
		m.Insert(pair.New(i, i*i))
	}
	got := []int{}
	for k, v := range m.Backward() {
		assert.Equal(t, k*k, v, "value")
		got = append(got, k)
		if 5 == k {
			break
		}
	}
	assert.Equal(t, []int{9, 8, 7, 6, 5}, got, "keys")
}

func TestIteratorWalk(t *testing.T) {
	m := omap.New[int, int]()
	for i := 0; i < 100; i += 1 {
		m.Insert(pair.New((i*37)%100, i))
	}

	n := 0
	for it := m.Begin(); !it.IsEnd(); _ = it.Next() {
		k, err := it.Key()
		require.NoError(t, err, "key")
		assert.Equal(t, n, k, "forward")
		n += 1
	}
	assert.Equal(t, 100, n, "forward count")

	it := m.End()
	for n = 99; it.Prev() == nil; n -= 1 {
		k, _ := it.Key()
		assert.Equal(t, n, k, "backward")
	}
	assert.Equal(t, -1, n, "backward count")
	assert.True(t, it.Equal(m.Begin()), "stopped at begin")
}

func TestDistance(t *testing.T) {
	m := omap.New[int, int]()
	for i := 0; i < 10; i += 1 {
		m.Insert(pair.New(i, i))
	}

	d, err := omap.Distance(m.Begin(), m.End())
	require.NoError(t, err, "begin to end")
	assert.Equal(t, 10, d, "begin to end")

	d, err = omap.Distance(m.Find(3), m.Find(7))
	require.NoError(t, err, "3 to 7")
	assert.Equal(t, 4, d, "3 to 7")

	_, err = omap.Distance(m.Find(7), m.Find(3))
	assert.Equal(t, fault.ErrIteratorNotReachable, err, "backwards")

	other := omap.New[int, int]()
	_, err = omap.Distance(m.Begin(), other.End())
	assert.Equal(t, fault.ErrIteratorFromAnotherMap, err, "different maps")
}

func TestCustomOrder(t *testing.T) {
	caseless := func(a, b string) bool {
		return strings.ToLower(a) < strings.ToLower(b)
	}
	m := omap.NewFunc[string, int](caseless)

	m.Insert(pair.New("Beta", 1))
	m.Insert(pair.New("alpha", 2))
	_, added := m.Insert(pair.New("BETA", 3))
	assert.False(t, added, "equivalent key added")
	assert.Equal(t, 1, m.Count("bEtA"), "count of equivalent key")
	assert.Equal(t, []string{"alpha", "Beta"}, keys(m), "order")
}
