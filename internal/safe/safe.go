// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

// Package safe converts panics raised while enumerating a sequence into
// errors.
//
// Sequences and the callbacks handed to operators are user code. A
// terminal operator wraps its traversal in one of these helpers so
// that a fault surfaces as a returned error instead of unwinding
// through the caller.
package safe

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
)

const captureDepth = 32

// A RecoveredError associates a recovered panic with the stack of the
// goroutine that raised it.
type RecoveredError struct {
	Err   error
	Stack []uintptr
}

// Error implements error.
func (e *RecoveredError) Error() string {
	var sb strings.Builder
	_, _ = fmt.Fprintf(&sb, "recovered: %v\n", e.Err)
	frames := runtime.CallersFrames(e.Stack)
	for {
		frame, more := frames.Next()
		_, _ = fmt.Fprintf(&sb, "%s ( %s:%d )\n", frame.Function, frame.File, frame.Line)

		if !more {
			return sb.String()
		}
	}
}

// String is for debugging use only.
func (e *RecoveredError) String() string {
	return e.Error()
}

// Unwrap return the enclosed error.
func (e *RecoveredError) Unwrap() error { return e.Err }

// recovered builds the error for a non-nil recovered value. A value
// that is already a *RecoveredError is returned as-is so that nested
// traversals don't stack wrappers.
func recovered(r any, prior error) error {
	var err error
	switch t := r.(type) {
	case *RecoveredError:
		return t
	case error:
		err = errors.Join(prior, t)
	default:
		err = errors.Join(prior, fmt.Errorf("panic: %v", t))
	}
	stack := make([]uintptr, captureDepth)
	stack = stack[:runtime.Callers(3, stack)]
	return &RecoveredError{
		Err:   err,
		Stack: stack,
	}
}

// Call executes the function. If the function panics, an error will be
// returned.
func Call(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = recovered(r, nil)
		}
	}()
	fn()
	return
}

// CallE executes the function. If the function panics, the recovered
// value will be added to the returned error.
func CallE(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = recovered(r, err)
		}
	}()
	err = fn()
	return
}

// CallR executes the function, returning some result value. If the
// function panics, the zero value is returned alongside the error.
func CallR[R any](fn func() R) (ret R, err error) {
	defer func() {
		if r := recover(); r != nil {
			var zero R
			ret = zero
			err = recovered(r, nil)
		}
	}()
	ret = fn()
	return
}
