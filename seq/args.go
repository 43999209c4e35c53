// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package seq

import (
	"iter"

	"vawter.tech/linq"
)

// missing reports an absent argument.
func missing(name string) error {
	return &linq.ArgumentError{Name: name}
}

// Empty returns a sequence that produces nothing.
func Empty[T any]() iter.Seq[T] {
	return func(func(T) bool) {}
}
