// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package seq

import (
	"iter"
	"slices"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
	"vawter.tech/linq"
	"vawter.tech/linq/linger"
)

func TestQueryChain(t *testing.T) {
	r := require.New(t)

	got, err := FromSlice([]int{1, 2, 3, 4, 5, 6, 7, 8}).
		Where(isEven).
		Skip(1).
		Take(2).
		ToSlice()
	r.NoError(err)
	r.Equal([]int{4, 6}, got)
}

func TestQueryIsLazy(t *testing.T) {
	r := require.New(t)

	rec := linger.NewRecorder(1)
	q := From(linger.Values(rec, 1, 2, 3, 4)).
		SkipWhile(func(v int) bool { return v < 2 }).
		TakeWhile(func(v int) bool { return v < 4 })
	r.NoError(q.Err())
	r.Zero(rec.Enumerations())

	v, err := q.First()
	r.NoError(err)
	r.Equal(2, v)
	r.Equal(2, rec.Pulls())
	linger.CheckClean(t, rec)
}

func TestQueryImmutable(t *testing.T) {
	r := require.New(t)

	base := FromSlice([]int{1, 2, 3})
	_ = base.Where(isEven)
	_ = base.Take(0)

	got, err := base.ToSlice()
	r.NoError(err)
	r.Equal([]int{1, 2, 3}, got)
}

func TestQueryStickyError(t *testing.T) {
	r := require.New(t)

	called := false
	q := FromSlice([]int{1, 2, 3}).
		Where(nil).
		Where(func(int) bool { called = true; return true })
	r.ErrorIs(q.Err(), linq.ErrInvalidArgument)

	_, err := q.ToSlice()
	r.ErrorIs(err, linq.ErrInvalidArgument)
	_, err = q.Count()
	r.ErrorIs(err, linq.ErrInvalidArgument)
	_, err = q.Any(isEven)
	r.ErrorIs(err, linq.ErrInvalidArgument)
	_, err = Map(q, strconv.Itoa).First()
	r.ErrorIs(err, linq.ErrInvalidArgument)
	s, err := q.Seq()
	r.Nil(s)
	r.ErrorIs(err, linq.ErrInvalidArgument)
	r.False(called)

	r.ErrorIs(From[int](nil).Err(), linq.ErrInvalidArgument)
	r.ErrorIs(FromIndexed[int](nil).Err(), linq.ErrInvalidArgument)
	r.ErrorIs(Apply[int, int](FromSlice([]int{1}), nil).Err(), linq.ErrInvalidArgument)
}

func TestQueryReverse(t *testing.T) {
	r := require.New(t)

	q := FromSlice([]int{1, 2, 3})
	got, err := q.Reverse().ToSlice()
	r.NoError(err)
	r.Equal([]int{3, 2, 1}, got)

	got, err = q.Reverse().Reverse().ToSlice()
	r.NoError(err)
	r.Equal([]int{1, 2, 3}, got)

	got, err = FromIndexed[int](linq.Of(4, 5)).Reverse().ToSlice()
	r.NoError(err)
	r.Equal([]int{5, 4}, got)
}

func TestQueryReverseNotIndexable(t *testing.T) {
	r := require.New(t)

	// A filtered query has lost random access.
	_, err := FromSlice([]int{1, 2, 3}).Where(isEven).Reverse().ToSlice()
	r.ErrorIs(err, linq.ErrNotIndexable)

	_, err = From(slices.Values([]int{1})).Reverse().First()
	r.ErrorIs(err, linq.ErrNotIndexable)
}

func TestQueryMapAndApply(t *testing.T) {
	r := require.New(t)

	got, err := Map(FromSlice([]int{1, 2, 2, 3}), strconv.Itoa).ToSlice()
	r.NoError(err)
	r.Equal([]string{"1", "2", "2", "3"}, got)

	got, err = MapIndex(FromSlice([]string{"a", "b"}),
		func(v string, idx int) string { return strconv.Itoa(idx) + v }).ToSlice()
	r.NoError(err)
	r.Equal([]string{"0a", "1b"}, got)

	unique, err := Apply(FromSlice([]int{1, 2, 2, 3}), Distinct[int]).Count()
	r.NoError(err)
	r.Equal(3, unique)

	inter, err := Apply(FromSlice([]int{1, 2, 3}), func(s iter.Seq[int]) (iter.Seq[int], error) {
		return Intersect(s, slices.Values([]int{3, 1}))
	}).ToSlice()
	r.NoError(err)
	r.Equal([]int{3, 1}, inter)
}

func TestQueryTerminals(t *testing.T) {
	r := require.New(t)

	q := FromSlice([]int{1, 2, 3, 4, 5})

	v, err := q.First()
	r.NoError(err)
	r.Equal(1, v)

	v, err = q.FirstFunc(isEven)
	r.NoError(err)
	r.Equal(2, v)

	v, err = q.Last()
	r.NoError(err)
	r.Equal(5, v)

	v, err = q.LastFunc(isEven)
	r.NoError(err)
	r.Equal(4, v)

	v, err = q.SingleFunc(func(v int) bool { return v == 3 })
	r.NoError(err)
	r.Equal(3, v)

	_, err = q.Single()
	r.ErrorIs(err, linq.ErrMultipleElements)

	v, err = q.Where(func(v int) bool { return v > 10 }).FirstOrDefault()
	r.NoError(err)
	r.Zero(v)

	v, err = q.FirstOrDefaultFunc(func(v int) bool { return v > 10 })
	r.NoError(err)
	r.Zero(v)

	v, err = q.LastOrDefaultFunc(func(v int) bool { return v < 0 })
	r.NoError(err)
	r.Zero(v)

	v, err = q.Take(0).LastOrDefault()
	r.NoError(err)
	r.Zero(v)

	v, err = q.Take(1).SingleOrDefault()
	r.NoError(err)
	r.Equal(1, v)

	v, err = q.SingleOrDefaultFunc(func(v int) bool { return v > 10 })
	r.NoError(err)
	r.Zero(v)

	ok, err := q.All(func(v int) bool { return v > 0 })
	r.NoError(err)
	r.True(ok)

	ok, err = q.Any(func(v int) bool { return v > 4 })
	r.NoError(err)
	r.True(ok)

	n, err := q.CountFunc(isEven)
	r.NoError(err)
	r.Equal(2, n)

	n, err = q.Concat(slices.Values([]int{6})).TakeLast(2).Count()
	r.NoError(err)
	r.Equal(2, n)

	got, err := q.SkipLast(3).ToSlice()
	r.NoError(err)
	r.Equal([]int{1, 2}, got)

	got, err = q.WhereIndex(func(_ int, idx int) bool { return idx > 2 }).ToSlice()
	r.NoError(err)
	r.Equal([]int{4, 5}, got)

	got, err = q.TakeWhileIndex(func(_ int, idx int) bool { return idx < 2 }).ToSlice()
	r.NoError(err)
	r.Equal([]int{1, 2}, got)

	got, err = q.SkipWhileIndex(func(_ int, idx int) bool { return idx < 3 }).ToSlice()
	r.NoError(err)
	r.Equal([]int{4, 5}, got)
}

func TestQueryFault(t *testing.T) {
	r := require.New(t)

	rec := linger.NewRecorder(1)
	_, err := From(linger.Values(rec, 1, 2, 3)).
		Where(func(v int) bool {
			if v == 2 {
				panic("unexpected value")
			}
			return true
		}).
		ToSlice()
	var recovered *linq.RecoveredError
	r.ErrorAs(err, &recovered)
	r.ErrorContains(err, "unexpected value")
	linger.CheckClean(t, rec)
}
