// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package seq

import (
	"iter"
	"slices"
)

// collect materializes the result of an operator, panicking if the
// operator could not be constructed.
func collect[T any](s iter.Seq[T], err error) []T {
	if err != nil {
		panic(err)
	}
	return slices.Collect(s)
}

// isEven is a convenience predicate.
func isEven(v int) bool { return v%2 == 0 }

// explode is a source that panics if it is ever enumerated.
func explode[T any](func(T) bool) {
	panic("source must not be enumerated")
}
