// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package seq

import (
	"iter"

	"vawter.tech/linq"
)

// Reverse returns a sequence of the elements of source from the last
// index to the first. The length is sampled when enumeration begins.
//
// Reversal relies on random access; an arbitrary single-pass sequence
// cannot be reversed. See [Query.Reverse] for the dynamic form.
func Reverse[T any](source linq.Indexed[T]) (iter.Seq[T], error) {
	if source == nil {
		return nil, missing("source")
	}
	return func(yield func(T) bool) {
		for i := source.Len() - 1; i >= 0; i-- {
			if !yield(source.At(i)) {
				return
			}
		}
	}, nil
}

// reversed is an [linq.Indexed] view of another source in reverse
// order.
type reversed[T any] struct {
	src linq.Indexed[T]
}

func (r reversed[T]) At(i int) T { return r.src.At(r.src.Len() - 1 - i) }
func (r reversed[T]) Len() int   { return r.src.Len() }
