// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

// detectRun finds the maximal monotone run starting at i, within the
// inclusive range [i, right]. Strictly descending runs are reversed in
// place so the returned range is always non-decreasing; ascending runs
// that contain ties are left alone, which is what keeps the sort
// stable (equal keys never cross during detection).
//
// The increment that advances the scan is kept separate from the
// comparison that drives it: the reference implementation this is
// ported from folds the two together (`c.compare(a[j], a[++j])`), which
// reads as a micro-optimization rather than something the algorithm
// depends on.
func detectRun[E any](a []E, i, right int, cmp CompareFunc[E]) int {
	if i == right {
		return i
	}
	// The first pair has been compared once here, so the scan below
	// starts from i+1 and never compares it again.
	j := i + 1
	if cmp(a[i], a[j]) > 0 {
		// Strictly descending: extend while it keeps falling, then flip it.
		for j < right && cmp(a[j+1], a[j]) < 0 {
			j++
		}
		reverseRange(a, i, j)
	} else {
		// Weakly ascending: ties extend the run rather than ending it.
		for j < right && cmp(a[j+1], a[j]) >= 0 {
			j++
		}
	}
	return j
}

// detectIncreasingRun is detectRun for the onlyIncreasingRuns variant:
// it never reverses, so a descending pair of length one is itself a
// (trivial) run boundary.
func detectIncreasingRun[E any](a []E, i, right int, cmp CompareFunc[E]) int {
	j := i
	for j < right && cmp(a[j+1], a[j]) >= 0 {
		j++
	}
	return j
}

// extendRun grows the presorted prefix a[start:start+nPresorted] up to
// and including endTarget via stable binary insertion sort. Binary
// search locates the rightmost point that keeps equal keys in their
// original relative order, which is what stability requires of the
// insertion step.
func extendRun[E any](a []E, start, endTarget, nPresorted int, cmp CompareFunc[E]) {
	for i := start + nPresorted; i <= endTarget; i++ {
		pivot := a[i]
		lo, hi := start, i
		for lo < hi {
			mid := int(uint(lo+hi) >> 1)
			if cmp(pivot, a[mid]) < 0 {
				hi = mid
			} else {
				lo = mid + 1
			}
		}
		switch n := i - lo; n {
		case 0:
			// Already in place.
		case 1:
			a[lo+1] = a[lo]
		case 2:
			a[lo+2], a[lo+1] = a[lo+1], a[lo]
		default:
			copy(a[lo+1:i+1], a[lo:i])
		}
		a[lo] = pivot
	}
}
