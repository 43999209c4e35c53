// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package linq

import (
	"iter"
	"slices"
)

// Indexed is a source that can report its length and provide random
// access to its elements.
type Indexed[T any] interface {
	// At returns the element at the zero-based index.
	At(i int) T
	// Len returns the number of elements.
	Len() int
}

// List is a slice-backed [Indexed] source.
type List[T any] []T

var _ Indexed[int] = List[int](nil)

// Of returns a List containing the items.
func Of[T any](items ...T) List[T] { return items }

// All returns a sequence over the elements in order.
func (l List[T]) All() iter.Seq[T] { return slices.Values(l) }

// Backward returns a sequence over the elements from last to first.
func (l List[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range slices.Backward(l) {
			if !yield(v) {
				return
			}
		}
	}
}

// At implements [Indexed].
func (l List[T]) At(i int) T { return l[i] }

// Len implements [Indexed].
func (l List[T]) Len() int { return len(l) }

// Values returns a sequence over the elements of an Indexed source, in
// index order. The length is sampled once, when enumeration begins.
func Values[T any](src Indexed[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for i, n := 0, src.Len(); i < n; i++ {
			if !yield(src.At(i)) {
				return
			}
		}
	}
}
