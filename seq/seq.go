// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

// Package seq contains lazily-evaluated operators over [iter.Seq].
//
// Every operator validates its arguments when it is called and returns
// an [*linq.ArgumentError] for a missing sequence or callback. Lazy
// operators defer all other work until their result is enumerated.
// Operators never enumerate an input more than once per enumeration of
// their result, so single-pass sources are safe to use anywhere.
package seq
