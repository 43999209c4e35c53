// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package seq

import (
	"iter"

	"vawter.tech/linq"
	"vawter.tech/linq/internal/cursor"
	"vawter.tech/linq/internal/safe"
)

// first pulls until an element satisfies pred. The source is released before returning.
func first[T any](source iter.Seq[T], pred func(T) bool) (ret T, found bool, err error) {
	err = safe.Call(func() {
		c := cursor.Open(source)
		defer c.Close()
		for c.Next() {
			if pred(c.Current()) {
				ret, found = c.Current(), true
				return
			}
		}
	})
	if err != nil {
		var zero T
		return zero, false, err
	}
	return ret, found, nil
}

// First returns the first element of source. It returns
// [linq.ErrNoElements] if the source is empty.
func First[T any](source iter.Seq[T]) (T, error) {
	return FirstFunc(source, func(T) bool { return true })
}

// FirstFunc returns the first element of source that satisfies pred.
// It returns [linq.ErrNoElements] if no element does.
func FirstFunc[T any](source iter.Seq[T], pred func(T) bool) (T, error) {
	switch {
	case source == nil:
		var zero T
		return zero, missing("source")
	case pred == nil:
		var zero T
		return zero, missing("predicate")
	}
	ret, found, err := first(source, pred)
	if err == nil && !found {
		err = linq.ErrNoElements
	}
	return ret, err
}

// FirstOrDefault returns the first element of source, or the zero value
// if the source is empty.
func FirstOrDefault[T any](source iter.Seq[T]) (T, error) {
	return FirstOrDefaultFunc(source, func(T) bool { return true })
}

// FirstOrDefaultFunc returns the first element of source that satisfies
// pred, or the zero value if none does.
func FirstOrDefaultFunc[T any](source iter.Seq[T], pred func(T) bool) (T, error) {
	switch {
	case source == nil:
		var zero T
		return zero, missing("source")
	case pred == nil:
		var zero T
		return zero, missing("predicate")
	}
	ret, _, err := first(source, pred)
	return ret, err
}
