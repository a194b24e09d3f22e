// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import "math/bits"

// workspace is the auxiliary buffer the merge routine copies the
// smaller run into. It is owned by one Sort call; on growth the old
// contents are discarded rather than copied forward, since a merge
// always writes tmp before it reads it back.
type workspace[E any] struct {
	data []E
}

// ensureCapacity grows the buffer, if necessary, to the next power of
// two at least minCap, capped at n/2 (a merge's smaller run can never
// exceed half the outer range). If even the cap falls short of
// minCap, minCap itself is used instead.
func (w *workspace[E]) ensureCapacity(minCap, n int) {
	if len(w.data) >= minCap {
		return
	}
	size := nextPow2(minCap)
	if max := n / 2; size > max {
		size = max
	}
	if size < minCap {
		size = minCap
	}
	w.data = make([]E, size)
}

func nextPow2(x int) int {
	if x <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(x-1))
}
