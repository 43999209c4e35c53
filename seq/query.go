// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package seq

import (
	"iter"

	"vawter.tech/linq"
)

// A Query chains operators over a source. Query values are immutable:
// every method returns a new Query and leaves the receiver unchanged.
//
// A Query carries the first error raised while it was being built.
// Once an error is recorded, further operators are skipped and every
// terminal method returns that error without enumerating anything.
//
// Go methods cannot introduce type parameters, so operators that change
// the element type or require comparable elements are applied with the
// package-level [Map] and [Apply] functions.
type Query[T any] struct {
	source  iter.Seq[T]
	indexed linq.Indexed[T] // Non-nil while source is random-access.
	err     error
}

// From starts a Query over a sequence.
func From[T any](source iter.Seq[T]) Query[T] {
	if source == nil {
		return Query[T]{err: missing("source")}
	}
	return Query[T]{source: source}
}

// FromIndexed starts a Query over a random-access source. The Query
// supports [Query.Reverse] until an operator that does not preserve
// random access is applied.
func FromIndexed[T any](source linq.Indexed[T]) Query[T] {
	if source == nil {
		return Query[T]{err: missing("source")}
	}
	return Query[T]{source: linq.Values(source), indexed: source}
}

// FromSlice starts a Query over the elements of a slice.
func FromSlice[T any](items []T) Query[T] {
	return FromIndexed[T](linq.List[T](items))
}

// Apply runs an arbitrary operator against the query's sequence. It is
// the escape hatch for operators that cannot be expressed as methods:
//
//	unique := seq.Apply(q, seq.Distinct[string])
func Apply[T, R any](q Query[T], op func(iter.Seq[T]) (iter.Seq[R], error)) Query[R] {
	if q.err != nil {
		return Query[R]{err: q.err}
	}
	if op == nil {
		return Query[R]{err: missing("op")}
	}
	next, err := op(q.source)
	return Query[R]{source: next, err: err}
}

// Map projects every element of the query.
func Map[T, R any](q Query[T], fn func(T) R) Query[R] {
	return Apply(q, func(s iter.Seq[T]) (iter.Seq[R], error) { return Select(s, fn) })
}

// MapIndex projects every element of the query, also passing its
// zero-based position.
func MapIndex[T, R any](q Query[T], fn func(T, int) R) Query[R] {
	return Apply(q, func(s iter.Seq[T]) (iter.Seq[R], error) { return SelectIndex(s, fn) })
}

// then applies an operator that preserves the element type.
func (q Query[T]) then(op func(iter.Seq[T]) (iter.Seq[T], error)) Query[T] {
	return Apply(q, op)
}

// Err returns the first error raised while building the query.
func (q Query[T]) Err() error { return q.err }

// Seq returns the query's sequence, or the error raised while building
// it.
func (q Query[T]) Seq() (iter.Seq[T], error) {
	if q.err != nil {
		return nil, q.err
	}
	return q.source, nil
}

// Concat appends another sequence; see [Concat].
func (q Query[T]) Concat(other iter.Seq[T]) Query[T] {
	return q.then(func(s iter.Seq[T]) (iter.Seq[T], error) { return Concat(s, other) })
}

// Reverse reverses the query; see [Reverse]. It records
// [linq.ErrNotIndexable] unless the query is backed by a random-access
// source.
func (q Query[T]) Reverse() Query[T] {
	if q.err != nil {
		return q
	}
	if q.indexed == nil {
		return Query[T]{err: linq.ErrNotIndexable}
	}
	// Reversing a reversed view unwraps it.
	if inner, ok := q.indexed.(reversed[T]); ok {
		return Query[T]{source: linq.Values(inner.src), indexed: inner.src}
	}
	view := reversed[T]{q.indexed}
	return Query[T]{source: linq.Values[T](view), indexed: view}
}

// Skip discards leading elements; see [Skip].
func (q Query[T]) Skip(n int) Query[T] {
	return q.then(func(s iter.Seq[T]) (iter.Seq[T], error) { return Skip(s, n) })
}

// SkipLast discards trailing elements; see [SkipLast].
func (q Query[T]) SkipLast(n int) Query[T] {
	return q.then(func(s iter.Seq[T]) (iter.Seq[T], error) { return SkipLast(s, n) })
}

// SkipWhile discards a leading run; see [SkipWhile].
func (q Query[T]) SkipWhile(pred func(T) bool) Query[T] {
	return q.then(func(s iter.Seq[T]) (iter.Seq[T], error) { return SkipWhile(s, pred) })
}

// SkipWhileIndex discards a leading run; see [SkipWhileIndex].
func (q Query[T]) SkipWhileIndex(pred func(T, int) bool) Query[T] {
	return q.then(func(s iter.Seq[T]) (iter.Seq[T], error) { return SkipWhileIndex(s, pred) })
}

// Take keeps leading elements; see [Take].
func (q Query[T]) Take(n int) Query[T] {
	return q.then(func(s iter.Seq[T]) (iter.Seq[T], error) { return Take(s, n) })
}

// TakeLast keeps trailing elements; see [TakeLast].
func (q Query[T]) TakeLast(n int) Query[T] {
	return q.then(func(s iter.Seq[T]) (iter.Seq[T], error) { return TakeLast(s, n) })
}

// TakeWhile keeps a leading run; see [TakeWhile].
func (q Query[T]) TakeWhile(pred func(T) bool) Query[T] {
	return q.then(func(s iter.Seq[T]) (iter.Seq[T], error) { return TakeWhile(s, pred) })
}

// TakeWhileIndex keeps a leading run; see [TakeWhileIndex].
func (q Query[T]) TakeWhileIndex(pred func(T, int) bool) Query[T] {
	return q.then(func(s iter.Seq[T]) (iter.Seq[T], error) { return TakeWhileIndex(s, pred) })
}

// Where filters the query; see [Where].
func (q Query[T]) Where(pred func(T) bool) Query[T] {
	return q.then(func(s iter.Seq[T]) (iter.Seq[T], error) { return Where(s, pred) })
}

// WhereIndex filters the query; see [WhereIndex].
func (q Query[T]) WhereIndex(pred func(T, int) bool) Query[T] {
	return q.then(func(s iter.Seq[T]) (iter.Seq[T], error) { return WhereIndex(s, pred) })
}

// All reports whether every element satisfies pred; see [All].
func (q Query[T]) All(pred func(T) bool) (bool, error) {
	if q.err != nil {
		return false, q.err
	}
	return All(q.source, pred)
}

// Any reports whether some element satisfies pred; see [Any].
func (q Query[T]) Any(pred func(T) bool) (bool, error) {
	if q.err != nil {
		return false, q.err
	}
	return Any(q.source, pred)
}

// Count returns the number of elements; see [Count].
func (q Query[T]) Count() (int, error) {
	if q.err != nil {
		return 0, q.err
	}
	return Count(q.source)
}

// CountFunc returns the number of matching elements; see [CountFunc].
func (q Query[T]) CountFunc(pred func(T) bool) (int, error) {
	if q.err != nil {
		return 0, q.err
	}
	return CountFunc(q.source, pred)
}

// First returns the first element; see [First].
func (q Query[T]) First() (T, error) {
	return terminal(q, First[T])
}

// FirstFunc returns the first matching element; see [FirstFunc].
func (q Query[T]) FirstFunc(pred func(T) bool) (T, error) {
	return terminal(q, func(s iter.Seq[T]) (T, error) { return FirstFunc(s, pred) })
}

// FirstOrDefault returns the first element or the zero value; see
// [FirstOrDefault].
func (q Query[T]) FirstOrDefault() (T, error) {
	return terminal(q, FirstOrDefault[T])
}

// FirstOrDefaultFunc returns the first matching element or the zero
// value; see [FirstOrDefaultFunc].
func (q Query[T]) FirstOrDefaultFunc(pred func(T) bool) (T, error) {
	return terminal(q, func(s iter.Seq[T]) (T, error) { return FirstOrDefaultFunc(s, pred) })
}

// Last returns the final element; see [Last].
func (q Query[T]) Last() (T, error) {
	return terminal(q, Last[T])
}

// LastFunc returns the final matching element; see [LastFunc].
func (q Query[T]) LastFunc(pred func(T) bool) (T, error) {
	return terminal(q, func(s iter.Seq[T]) (T, error) { return LastFunc(s, pred) })
}

// LastOrDefault returns the final element or the zero value; see
// [LastOrDefault].
func (q Query[T]) LastOrDefault() (T, error) {
	return terminal(q, LastOrDefault[T])
}

// LastOrDefaultFunc returns the final matching element or the zero
// value; see [LastOrDefaultFunc].
func (q Query[T]) LastOrDefaultFunc(pred func(T) bool) (T, error) {
	return terminal(q, func(s iter.Seq[T]) (T, error) { return LastOrDefaultFunc(s, pred) })
}

// Single returns the only element; see [Single].
func (q Query[T]) Single() (T, error) {
	return terminal(q, Single[T])
}

// SingleFunc returns the only matching element; see [SingleFunc].
func (q Query[T]) SingleFunc(pred func(T) bool) (T, error) {
	return terminal(q, func(s iter.Seq[T]) (T, error) { return SingleFunc(s, pred) })
}

// SingleOrDefault returns the only element or the zero value; see
// [SingleOrDefault].
func (q Query[T]) SingleOrDefault() (T, error) {
	return terminal(q, SingleOrDefault[T])
}

// SingleOrDefaultFunc returns the only matching element or the zero
// value; see [SingleOrDefaultFunc].
func (q Query[T]) SingleOrDefaultFunc(pred func(T) bool) (T, error) {
	return terminal(q, func(s iter.Seq[T]) (T, error) { return SingleOrDefaultFunc(s, pred) })
}

// ToSlice materializes the query; see [ToSlice].
func (q Query[T]) ToSlice() ([]T, error) {
	return terminal(q, ToSlice[T])
}

// terminal runs a reducing operator unless the query has failed.
func terminal[T, R any](q Query[T], op func(iter.Seq[T]) (R, error)) (R, error) {
	if q.err != nil {
		var zero R
		return zero, q.err
	}
	return op(q.source)
}
