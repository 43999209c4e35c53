// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package linger_test

import (
	"fmt"

	"vawter.tech/linq/linger"
	"vawter.tech/linq/seq"
)

func ExampleRecorder() {
	// Wrap a source so its enumerations can be observed.
	rec := linger.NewRecorder(2 /* stack depth */)
	src := linger.Values(rec, 1, 2, 3, 4, 5)

	evens, err := seq.Where(src, func(v int) bool { return v%2 == 0 })
	if err != nil {
		panic(err)
	}
	fmt.Println("before:", rec.Enumerations(), rec.Pulls())

	first, err := seq.First(evens)
	if err != nil {
		panic(err)
	}
	fmt.Println("first:", first)
	fmt.Println("after:", rec.Enumerations(), rec.Pulls())
	fmt.Println("open:", len(rec.Callers()))
	// Output:
	// before: 0 0
	// first: 2
	// after: 1 2
	// open: 0
}
