// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

// Package linq provides the shared vocabulary for lazily-evaluated
// sequence operators: the error taxonomy, and random-access sources.
// The operators themselves live in the [seq] sub-package.
//
// A sequence is an [iter.Seq]. Sequences may be infinite and may be
// single-pass; nothing in this module assumes that a sequence can be
// enumerated twice. Every operator enumerates each of its inputs at
// most once per enumeration of its result.
//
// # Operator families
//
// Lazy operators such as [seq.Select], [seq.Where], [seq.Take], and
// [seq.SkipWhile] return a new sequence without touching their source.
// The source is enumerated only when the result is ranged over, and
// never further than the consumer has pulled.
//
//	evens, err := seq.Where(source, func(v int) bool { return v%2 == 0 })
//	if err != nil { ... }
//	for v := range evens { ... }
//
// Buffering operators must gather part or all of a source before they
// can produce anything. [seq.Distinct], [seq.Union], and [seq.Except]
// consume their inputs during the call. [seq.Intersect],
// [seq.TakeLast], and [seq.SkipLast] buffer when their result is
// enumerated. [seq.Reverse] requires an [Indexed] source.
//
// Terminal operators such as [seq.First], [seq.Single], and
// [seq.Count] consume the sequence and return a value.
//
// # Errors
//
// Arguments are validated when an operator is called, even when the
// operator is lazy. A missing sequence or callback is reported as an
// [*ArgumentError], which matches [ErrInvalidArgument]. The single
// family reports [ErrNoElements] or [ErrMultipleElements], both of
// which match [ErrInvalidOperation]. Reversing a query that has lost
// random access reports [ErrNotIndexable].
//
// A panic raised by a source or a callback during traversal is
// recovered by terminal operators and returned as a [*RecoveredError]
// that records the stack at the point of the panic. Any enumeration
// handles held on the source are released before the error is
// returned. Ranging directly over a lazy sequence does not recover
// panics.
//
// # Fluent queries
//
// [seq.Query] chains operators and carries the first construction
// error through to a terminal method:
//
//	top, err := seq.FromSlice(scores).
//	    Where(func(s int) bool { return s > 0 }).
//	    TakeLast(3).
//	    ToSlice()
//
// # Tracing
//
// Buffering operators annotate their buffering phase with
// [runtime/trace.StartRegion] so that large materializations are
// visible in Go execution traces.
//
// # Testing
//
// The [linger] sub-package instruments sources so tests can count
// enumerations and pulls, and detect enumerations that were never
// released.
package linq
