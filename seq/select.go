// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package seq

import "iter"

// Select returns a sequence that applies fn to each element of source,
// in order. The projection is invoked once per element pulled from the
// result and never for elements that are not pulled.
func Select[T, R any](source iter.Seq[T], fn func(T) R) (iter.Seq[R], error) {
	switch {
	case source == nil:
		return nil, missing("source")
	case fn == nil:
		return nil, missing("selector")
	}
	return func(yield func(R) bool) {
		for item := range source {
			if !yield(fn(item)) {
				return
			}
		}
	}, nil
}

// SelectIndex is like [Select], but also passes the zero-based position
// of each element.
func SelectIndex[T, R any](source iter.Seq[T], fn func(T, int) R) (iter.Seq[R], error) {
	switch {
	case source == nil:
		return nil, missing("source")
	case fn == nil:
		return nil, missing("selector")
	}
	return func(yield func(R) bool) {
		var idx int
		for item := range source {
			if !yield(fn(item, idx)) {
				return
			}
			idx++
		}
	}, nil
}
