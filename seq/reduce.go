// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package seq

import (
	"iter"
	"slices"

	"vawter.tech/linq/internal/safe"
)

// Any reports whether any element of source satisfies pred. It stops at
// the first match.
func Any[T any](source iter.Seq[T], pred func(T) bool) (bool, error) {
	switch {
	case source == nil:
		return false, missing("source")
	case pred == nil:
		return false, missing("predicate")
	}
	return safe.CallR(func() bool {
		for item := range source {
			if pred(item) {
				return true
			}
		}
		return false
	})
}

// All reports whether every element of source satisfies pred. It stops
// at the first mismatch. All is true for an empty source.
func All[T any](source iter.Seq[T], pred func(T) bool) (bool, error) {
	switch {
	case source == nil:
		return false, missing("source")
	case pred == nil:
		return false, missing("predicate")
	}
	return safe.CallR(func() bool {
		for item := range source {
			if !pred(item) {
				return false
			}
		}
		return true
	})
}

// Contains reports whether source contains an element equal to v.
func Contains[T comparable](source iter.Seq[T], v T) (bool, error) {
	return Any(source, func(item T) bool { return item == v })
}

// Count traverses source and returns the number of elements.
func Count[T any](source iter.Seq[T]) (int, error) {
	return CountFunc(source, func(T) bool { return true })
}

// CountFunc traverses source and returns the number of elements that
// satisfy pred.
func CountFunc[T any](source iter.Seq[T], pred func(T) bool) (int, error) {
	switch {
	case source == nil:
		return 0, missing("source")
	case pred == nil:
		return 0, missing("predicate")
	}
	return safe.CallR(func() int {
		var count int
		for item := range source {
			if pred(item) {
				count++
			}
		}
		return count
	})
}

// ToSlice traverses source and returns its elements. A panic raised
// anywhere in a lazy pipeline feeding source is returned as an error.
func ToSlice[T any](source iter.Seq[T]) ([]T, error) {
	if source == nil {
		return nil, missing("source")
	}
	return safe.CallR(func() []T { return slices.Collect(source) })
}
