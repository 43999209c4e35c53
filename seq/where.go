// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package seq

import "iter"

// Where returns a sequence of the elements of source for which pred
// returns true, preserving their relative order. The predicate is
// evaluated exactly once per source element, as elements are pulled.
func Where[T any](source iter.Seq[T], pred func(T) bool) (iter.Seq[T], error) {
	switch {
	case source == nil:
		return nil, missing("source")
	case pred == nil:
		return nil, missing("predicate")
	}
	return func(yield func(T) bool) {
		for item := range source {
			if pred(item) && !yield(item) {
				return
			}
		}
	}, nil
}

// WhereIndex is like [Where], but also passes the zero-based position
// of each element within source.
func WhereIndex[T any](source iter.Seq[T], pred func(T, int) bool) (iter.Seq[T], error) {
	switch {
	case source == nil:
		return nil, missing("source")
	case pred == nil:
		return nil, missing("predicate")
	}
	return func(yield func(T) bool) {
		var idx int
		for item := range source {
			keep := pred(item, idx)
			idx++
			if keep && !yield(item) {
				return
			}
		}
	}, nil
}
