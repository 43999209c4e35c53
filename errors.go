// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package linq

import (
	"errors"
	"fmt"

	"vawter.tech/linq/internal/safe"
)

var (
	// ErrInvalidArgument is matched by every [*ArgumentError].
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidOperation indicates that an operation cannot be
	// performed on the sequence as it was found.
	ErrInvalidOperation = errors.New("invalid operation")

	// ErrNoElements is returned when exactly one, or at least one,
	// matching element was required and none was found.
	ErrNoElements = fmt.Errorf("%w: sequence contains no matching element", ErrInvalidOperation)

	// ErrMultipleElements is returned by the single family when more
	// than one element matches.
	ErrMultipleElements = fmt.Errorf("%w: sequence contains more than one matching element", ErrInvalidOperation)

	// ErrNotIndexable is returned when an operation requires a source
	// that supports length and random access, but the source does not.
	ErrNotIndexable = errors.New("sequence does not support random access")
)

// An ArgumentError reports a required argument that was not supplied.
type ArgumentError struct {
	Name string
}

// Error implements error.
func (e *ArgumentError) Error() string {
	return fmt.Sprintf("%v: %s must not be nil", ErrInvalidArgument, e.Name)
}

// Is allows the error to match [ErrInvalidArgument].
func (e *ArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// A RecoveredError reports a panic raised by a source or a callback
// while a sequence was being traversed. Use [errors.As] to inspect the
// Stack field.
type RecoveredError = safe.RecoveredError
