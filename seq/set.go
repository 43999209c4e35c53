// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package seq

import (
	"context"
	"iter"
	"runtime/trace"

	"vawter.tech/linq/internal/safe"
)

// set is an equality-keyed collection that remembers the order in
// which members were first added. It is owned by a single operator
// call or enumeration.
type set[T comparable] struct {
	index map[T]int // Position of the live entry in order.
	order []T
	alive []bool
}

func newSet[T comparable]() *set[T] {
	return &set[T]{index: make(map[T]int)}
}

// add inserts the value, returning false if it was already present.
func (s *set[T]) add(v T) bool {
	if _, ok := s.index[v]; ok {
		return false
	}
	s.index[v] = len(s.order)
	s.order = append(s.order, v)
	s.alive = append(s.alive, true)
	return true
}

// addAll inserts every element of the sequence.
func (s *set[T]) addAll(source iter.Seq[T]) {
	for item := range source {
		s.add(item)
	}
}

// remove deletes the value, returning false if it was not present.
func (s *set[T]) remove(v T) bool {
	pos, ok := s.index[v]
	if !ok {
		return false
	}
	delete(s.index, v)
	s.alive[pos] = false
	return true
}

// snapshot returns the live members, in first-added order, in a slice
// owned by the caller.
func (s *set[T]) snapshot() []T {
	ret := make([]T, 0, len(s.index))
	for i, v := range s.order {
		if s.alive[i] {
			ret = append(ret, v)
		}
	}
	return ret
}

// values returns a repeatable sequence over a snapshot of the members.
func (s *set[T]) values() iter.Seq[T] {
	members := s.snapshot()
	return func(yield func(T) bool) {
		for _, v := range members {
			if !yield(v) {
				return
			}
		}
	}
}

// buffer runs fn inside a trace region. A panic raised by a source
// while buffering is returned as an error.
func buffer(name string, fn func()) error {
	return safe.Call(func() {
		defer trace.StartRegion(context.Background(), name).End()
		fn()
	})
}

// Distinct consumes source and returns a sequence of its unique
// elements, compared with ==. Elements are produced in the order they
// were first seen. The returned sequence may be enumerated any number
// of times.
func Distinct[T comparable](source iter.Seq[T]) (iter.Seq[T], error) {
	if source == nil {
		return nil, missing("source")
	}
	s := newSet[T]()
	if err := buffer("linq distinct", func() { s.addAll(source) }); err != nil {
		return nil, err
	}
	return s.values(), nil
}

// Union consumes both sequences and returns a sequence containing each
// element that appears in either of them exactly once. Elements of
// first precede new elements of second.
func Union[T comparable](first, second iter.Seq[T]) (iter.Seq[T], error) {
	switch {
	case first == nil:
		return nil, missing("first")
	case second == nil:
		return nil, missing("second")
	}
	s := newSet[T]()
	if err := buffer("linq union", func() {
		s.addAll(first)
		s.addAll(second)
	}); err != nil {
		return nil, err
	}
	return s.values(), nil
}

// Intersect returns a sequence of the elements of second that also
// occur in first. When the result is enumerated, first is consumed into
// a set; second is then streamed, and each match is produced once and
// removed from the set so that repeats in second are not produced
// again.
func Intersect[T comparable](first, second iter.Seq[T]) (iter.Seq[T], error) {
	switch {
	case first == nil:
		return nil, missing("first")
	case second == nil:
		return nil, missing("second")
	}
	return func(yield func(T) bool) {
		s := newSet[T]()
		region := trace.StartRegion(context.Background(), "linq intersect")
		s.addAll(first)
		region.End()

		for item := range second {
			if s.remove(item) && !yield(item) {
				return
			}
		}
	}, nil
}

// Except consumes both sequences and returns the unique elements of
// first that do not occur in second. Duplicates in first collapse into
// a single element before matching, so a single occurrence in second
// removes every copy.
func Except[T comparable](first, second iter.Seq[T]) (iter.Seq[T], error) {
	switch {
	case first == nil:
		return nil, missing("first")
	case second == nil:
		return nil, missing("second")
	}
	s := newSet[T]()
	if err := buffer("linq except", func() {
		s.addAll(first)
		for item := range second {
			s.remove(item)
		}
	}); err != nil {
		return nil, err
	}
	return s.values(), nil
}
