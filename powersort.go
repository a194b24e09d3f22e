// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package powersort

import (
	"golang.org/x/exp/constraints"

	"github.com/sortlab/powersort/internal/engine"
)

// Sort sorts x in non-decreasing order, using the natural < order of
// E. It is stable: equal elements retain their relative order.
func Sort[E constraints.Ordered](x []E, opts ...Option[E]) error {
	return SortFunc(x, compareOrdered[E], opts...)
}

// SortFunc sorts x in non-decreasing order as determined by cmp, which
// must return a negative number if a sorts before b, zero if they are
// equivalent, and a positive number otherwise. It is stable: cmp must
// be a pure, deterministic total order, and SortFunc calls it an
// unspecified number of times.
//
// A non-nil error means either a precondition was violated (x is
// unchanged) or cmp was found to violate the total-order contract
// partway through (x may be partially reordered); the error message
// names which of the two occurred.
func SortFunc[E any](x []E, cmp func(a, b E) int, opts ...Option[E]) error {
	cfg := newConfig(engine.CompareFunc[E](cmp), opts)
	return engine.Sort(x, 0, len(x), cfg)
}

// IsSorted reports whether x is sorted in non-decreasing order under
// the natural < order of E.
func IsSorted[E constraints.Ordered](x []E) bool {
	return IsSortedFunc(x, compareOrdered[E])
}

// IsSortedFunc reports whether x is sorted in non-decreasing order
// under cmp.
func IsSortedFunc[E any](x []E, cmp func(a, b E) int) bool {
	for i := 1; i < len(x); i++ {
		if cmp(x[i], x[i-1]) < 0 {
			return false
		}
	}
	return true
}

func compareOrdered[E constraints.Ordered](a, b E) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
