// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package seq

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
	"vawter.tech/linq/linger"
)

func TestWhere(t *testing.T) {
	r := require.New(t)

	got := collect(Where(slices.Values([]int{1, 2, 3, 4, 5}), isEven))
	r.Equal([]int{2, 4}, got)

	got = collect(Where(slices.Values([]int{1, 3}), isEven))
	r.Empty(got)
}

func TestWherePredicateOncePerElement(t *testing.T) {
	r := require.New(t)

	rec := linger.NewRecorder(1)
	seen := map[int]int{}
	s, err := Where(linger.Values(rec, 1, 2, 3, 4, 5, 6), func(v int) bool {
		seen[v]++
		return isEven(v)
	})
	r.NoError(err)
	r.Empty(seen)

	// Pull two matches; the predicate only saw what was needed.
	var got []int
	for v := range s {
		got = append(got, v)
		if len(got) == 2 {
			break
		}
	}
	r.Equal([]int{2, 4}, got)
	r.Equal(map[int]int{1: 1, 2: 1, 3: 1, 4: 1}, seen)
	r.Equal(4, rec.Pulls())
	linger.CheckClean(t, rec)
}

func TestWhereIndex(t *testing.T) {
	r := require.New(t)

	// The index counts source positions, not produced elements.
	got := collect(WhereIndex(slices.Values([]string{"a", "b", "c", "d", "e"}),
		func(_ string, idx int) bool { return idx%2 == 0 }))
	r.Equal([]string{"a", "c", "e"}, got)
}
