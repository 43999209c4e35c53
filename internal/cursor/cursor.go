// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

// Package cursor defines the per-enumeration state used by operators
// that need to pull from a sequence rather than range over it.
package cursor

import "iter"

// A Cursor tracks a single enumeration of a sequence. It is created
// fresh for every enumeration, is owned by that enumeration, and must
// be released with [Cursor.Close], typically via defer.
//
// A Cursor is not safe for concurrent use.
type Cursor[T any] struct {
	next    func() (T, bool)
	stop    func()
	current T
	pos     int // Index of current; -1 before the first call to Next.
	done    bool
}

// Open prepares a Cursor over the sequence. The sequence is not touched
// until the first call to [Cursor.Next].
func Open[T any](source iter.Seq[T]) *Cursor[T] {
	next, stop := iter.Pull(source)
	return &Cursor[T]{
		next: next,
		stop: stop,
		pos:  -1,
	}
}

// Close releases the underlying enumeration. It is safe to call Close
// more than once, and after the sequence has been exhausted.
func (c *Cursor[T]) Close() {
	if c.stop == nil {
		return
	}
	c.stop()
	c.stop = nil
	c.next = nil
	c.done = true
	var zero T
	c.current = zero
}

// Current returns the element most recently produced by [Cursor.Next].
func (c *Cursor[T]) Current() T {
	if c.pos < 0 {
		// Implementation error, not user problem.
		panic("cursor: Current called before Next")
	}
	return c.current
}

// Done reports whether the cursor has been exhausted or closed.
func (c *Cursor[T]) Done() bool { return c.done }

// Index returns the zero-based position of [Cursor.Current], or -1 if
// nothing has been produced yet.
func (c *Cursor[T]) Index() int { return c.pos }

// Next advances the cursor, returning false once the sequence is
// exhausted. The underlying enumeration is released as soon as it
// reports exhaustion.
func (c *Cursor[T]) Next() bool {
	if c.done {
		return false
	}
	v, ok := c.next()
	if !ok {
		c.Close()
		return false
	}
	c.current = v
	c.pos++
	return true
}
