// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package seq

import "iter"

// Take returns a sequence of at most the first n elements of source. If
// n is not positive, the source is never enumerated. Once n elements
// have been produced, no further element is requested from the source.
func Take[T any](source iter.Seq[T], n int) (iter.Seq[T], error) {
	if source == nil {
		return nil, missing("source")
	}
	if n <= 0 {
		return Empty[T](), nil
	}
	return func(yield func(T) bool) {
		remaining := n
		for item := range source {
			if !yield(item) {
				return
			}
			remaining--
			if remaining == 0 {
				return
			}
		}
	}, nil
}

// TakeWhile returns a sequence of the leading elements of source for
// which pred returns true. Enumeration stops permanently at the first
// element that fails the predicate; that element is not produced.
func TakeWhile[T any](source iter.Seq[T], pred func(T) bool) (iter.Seq[T], error) {
	switch {
	case source == nil:
		return nil, missing("source")
	case pred == nil:
		return nil, missing("predicate")
	}
	return TakeWhileIndex(source, func(item T, _ int) bool { return pred(item) })
}

// TakeWhileIndex is like [TakeWhile], but also passes the zero-based
// position of each element.
func TakeWhileIndex[T any](source iter.Seq[T], pred func(T, int) bool) (iter.Seq[T], error) {
	switch {
	case source == nil:
		return nil, missing("source")
	case pred == nil:
		return nil, missing("predicate")
	}
	return func(yield func(T) bool) {
		var idx int
		for item := range source {
			if !pred(item, idx) || !yield(item) {
				return
			}
			idx++
		}
	}, nil
}
