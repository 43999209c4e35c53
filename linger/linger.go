// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

// Package linger instruments sequences so that tests can verify how
// operators enumerate them: how many times a source was enumerated, how
// many elements were pulled from it, and where any enumeration that was
// never released was started.
package linger

import (
	"iter"
	"runtime"
	"slices"
	"sync"
	"sync/atomic"
)

// This value is sensitive to the code structure.
const callersOffset = 2

// NewRecorder constructs a [Recorder] that samples the call stack at the
// requested depth when an enumeration of a tracked sequence begins.
func NewRecorder(depth int) *Recorder {
	return &Recorder{depth: depth}
}

// A Recorder observes the sequences wrapped by [Track]. It is primarily
// useful for testing scenarios, to ensure that operators do not pull
// more than they need and do not abandon an enumeration without
// releasing it.
type Recorder struct {
	counter      atomic.Uintptr
	data         sync.Map
	depth        int
	enumerations atomic.Int64
	pulls        atomic.Int64
}

// Callers returns a snapshot of the caller stacks associated with any
// enumerations that are still open.
func (r *Recorder) Callers() [][]uintptr {
	var ret [][]uintptr
	r.data.Range(func(_, value any) bool {
		ret = append(ret, value.([]uintptr))
		return true
	})
	return ret
}

// Enumerations returns the number of times a tracked sequence has
// started an enumeration.
func (r *Recorder) Enumerations() int { return int(r.enumerations.Load()) }

// Pulls returns the number of elements that tracked sequences have
// produced.
func (r *Recorder) Pulls() int { return int(r.pulls.Load()) }

// Track returns a sequence that yields the elements of source while
// reporting to the Recorder.
func Track[T any](r *Recorder, source iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		pc := make([]uintptr, r.depth)
		pc = pc[:runtime.Callers(callersOffset, pc)]

		id := r.counter.Add(1)
		r.enumerations.Add(1)
		r.data.Store(id, pc)
		defer r.data.Delete(id)

		for item := range source {
			r.pulls.Add(1)
			if !yield(item) {
				return
			}
		}
	}
}

// Values is a convenience for tracking a fixed list of elements.
func Values[T any](r *Recorder, items ...T) iter.Seq[T] {
	return Track(r, slices.Values(items))
}
