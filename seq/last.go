// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package seq

import (
	"iter"

	"vawter.tech/linq"
	"vawter.tech/linq/internal/safe"
)

// last traverses the whole source, remembering the final element that
// satisfies pred. There is no early exit: the last match is unknown
// until the source is exhausted.
func last[T any](source iter.Seq[T], pred func(T) bool) (ret T, found bool, err error) {
	err = safe.Call(func() {
		for item := range source {
			if pred(item) {
				ret, found = item, true
			}
		}
	})
	if err != nil {
		var zero T
		return zero, false, err
	}
	return ret, found, nil
}

// Last returns the final element of source. It returns
// [linq.ErrNoElements] if the source is empty.
func Last[T any](source iter.Seq[T]) (T, error) {
	return LastFunc(source, func(T) bool { return true })
}

// LastFunc returns the final element of source that satisfies pred. It
// returns [linq.ErrNoElements] if no element does.
func LastFunc[T any](source iter.Seq[T], pred func(T) bool) (T, error) {
	switch {
	case source == nil:
		var zero T
		return zero, missing("source")
	case pred == nil:
		var zero T
		return zero, missing("predicate")
	}
	ret, found, err := last(source, pred)
	if err == nil && !found {
		err = linq.ErrNoElements
	}
	return ret, err
}

// LastOrDefault returns the final element of source, or the zero value
// if the source is empty.
func LastOrDefault[T any](source iter.Seq[T]) (T, error) {
	return LastOrDefaultFunc(source, func(T) bool { return true })
}

// LastOrDefaultFunc returns the final element of source that satisfies
// pred, or the zero value if none does.
func LastOrDefaultFunc[T any](source iter.Seq[T], pred func(T) bool) (T, error) {
	switch {
	case source == nil:
		var zero T
		return zero, missing("source")
	case pred == nil:
		var zero T
		return zero, missing("predicate")
	}
	ret, _, err := last(source, pred)
	return ret, err
}
