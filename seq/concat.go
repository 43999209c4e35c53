// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package seq

import "iter"

// Concat returns a sequence that produces every element of first,
// followed by every element of second. The second sequence is not
// enumerated until the first is exhausted.
func Concat[T any](first, second iter.Seq[T]) (iter.Seq[T], error) {
	switch {
	case first == nil:
		return nil, missing("first")
	case second == nil:
		return nil, missing("second")
	}
	return func(yield func(T) bool) {
		for item := range first {
			if !yield(item) {
				return
			}
		}
		for item := range second {
			if !yield(item) {
				return
			}
		}
	}, nil
}
