// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package seq

import "iter"

// Skip returns a sequence that discards the first n elements of source
// and produces the rest. Discarded elements are still enumerated. If n
// is not positive, every element is produced.
func Skip[T any](source iter.Seq[T], n int) (iter.Seq[T], error) {
	if source == nil {
		return nil, missing("source")
	}
	return func(yield func(T) bool) {
		skipped := 0
		for item := range source {
			if skipped < n {
				skipped++
				continue
			}
			if !yield(item) {
				return
			}
		}
	}, nil
}

// SkipWhile returns a sequence that discards the leading elements of
// source for which pred returns true. The first element that fails the
// predicate and every element after it are produced, without consulting
// the predicate again.
func SkipWhile[T any](source iter.Seq[T], pred func(T) bool) (iter.Seq[T], error) {
	switch {
	case source == nil:
		return nil, missing("source")
	case pred == nil:
		return nil, missing("predicate")
	}
	return SkipWhileIndex(source, func(item T, _ int) bool { return pred(item) })
}

// SkipWhileIndex is like [SkipWhile], but also passes the zero-based
// position of each element.
func SkipWhileIndex[T any](source iter.Seq[T], pred func(T, int) bool) (iter.Seq[T], error) {
	switch {
	case source == nil:
		return nil, missing("source")
	case pred == nil:
		return nil, missing("predicate")
	}
	return func(yield func(T) bool) {
		skipping := true
		var idx int
		for item := range source {
			if skipping {
				if pred(item, idx) {
					idx++
					continue
				}
				skipping = false
			}
			if !yield(item) {
				return
			}
		}
	}, nil
}
