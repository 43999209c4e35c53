// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package seq

import (
	"iter"

	"go.abhg.dev/container/ring"
)

// TakeLast returns a sequence of the final n elements of source, in
// their original order. Nothing is produced until source is exhausted.
// If n is not positive, the source is never enumerated.
func TakeLast[T any](source iter.Seq[T], n int) (iter.Seq[T], error) {
	if source == nil {
		return nil, missing("source")
	}
	if n <= 0 {
		return Empty[T](), nil
	}
	return func(yield func(T) bool) {
		// Fill, then evict the oldest element for each new one.
		var q ring.Q[T]
		size := 0
		for item := range source {
			if size == n {
				q.Pop()
			} else {
				size++
			}
			q.Push(item)
		}
		for !q.Empty() {
			if !yield(q.Pop()) {
				return
			}
		}
	}, nil
}

// SkipLast returns a sequence of every element of source except the
// final n, in their original order. An element is produced only once n
// further elements have been seen, so at most n elements are held at a
// time. If n is not positive, every element is produced.
func SkipLast[T any](source iter.Seq[T], n int) (iter.Seq[T], error) {
	if source == nil {
		return nil, missing("source")
	}
	if n <= 0 {
		return Skip(source, 0)
	}
	return func(yield func(T) bool) {
		var q ring.Q[T]
		size := 0
		for item := range source {
			if size == n {
				if !yield(q.Pop()) {
					return
				}
			} else {
				size++
			}
			q.Push(item)
		}
	}, nil
}
