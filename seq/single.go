// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package seq

import (
	"iter"

	"vawter.tech/linq"
	"vawter.tech/linq/internal/cursor"
	"vawter.tech/linq/internal/safe"
)

// single pulls until a second element satisfies pred, returning
// [linq.ErrMultipleElements] at that point. The source is enumerated
// once and released before returning.
func single[T any](source iter.Seq[T], pred func(T) bool) (ret T, found bool, err error) {
	err = safe.CallE(func() error {
		c := cursor.Open(source)
		defer c.Close()
		for c.Next() {
			if !pred(c.Current()) {
				continue
			}
			if found {
				return linq.ErrMultipleElements
			}
			ret, found = c.Current(), true
		}
		return nil
	})
	if err != nil {
		var zero T
		return zero, false, err
	}
	return ret, found, nil
}

// Single returns the only element of source. It returns
// [linq.ErrNoElements] if the source is empty and
// [linq.ErrMultipleElements] if it has more than one element.
func Single[T any](source iter.Seq[T]) (T, error) {
	return SingleFunc(source, func(T) bool { return true })
}

// SingleFunc returns the only element of source that satisfies pred. It
// returns [linq.ErrNoElements] if no element does and
// [linq.ErrMultipleElements] if more than one does.
func SingleFunc[T any](source iter.Seq[T], pred func(T) bool) (T, error) {
	switch {
	case source == nil:
		var zero T
		return zero, missing("source")
	case pred == nil:
		var zero T
		return zero, missing("predicate")
	}
	ret, found, err := single(source, pred)
	if err == nil && !found {
		err = linq.ErrNoElements
	}
	return ret, err
}

// SingleOrDefault returns the only element of source, or the zero value
// if the source is empty. A source with more than one element is still
// an error: [linq.ErrMultipleElements].
func SingleOrDefault[T any](source iter.Seq[T]) (T, error) {
	return SingleOrDefaultFunc(source, func(T) bool { return true })
}

// SingleOrDefaultFunc returns the only element of source that satisfies
// pred, or the zero value if none does. It returns
// [linq.ErrMultipleElements] if more than one element does.
func SingleOrDefaultFunc[T any](source iter.Seq[T], pred func(T) bool) (T, error) {
	switch {
	case source == nil:
		var zero T
		return zero, missing("source")
	case pred == nil:
		var zero T
		return zero, missing("predicate")
	}
	ret, _, err := single(source, pred)
	return ret, err
}
