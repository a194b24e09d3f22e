// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import "testing"

func TestWorkspaceEnsureCapacityGrowsToPowerOfTwo(t *testing.T) {
	var w workspace[int]
	w.ensureCapacity(5, 1000)
	if len(w.data) != 8 {
		t.Fatalf("len = %d, want 8", len(w.data))
	}
}

func TestWorkspaceEnsureCapacityCappedAtHalf(t *testing.T) {
	var w workspace[int]
	w.ensureCapacity(40, 64) // next pow2 of 40 is 64, but cap is 64/2=32 < 40
	if len(w.data) != 40 {
		t.Fatalf("len = %d, want 40 (minCap, since the n/2 cap undershoots it)", len(w.data))
	}
}

func TestWorkspaceEnsureCapacityNoShrink(t *testing.T) {
	var w workspace[int]
	w.ensureCapacity(16, 1000)
	if len(w.data) != 16 {
		t.Fatalf("len = %d, want 16", len(w.data))
	}
	w.ensureCapacity(4, 1000)
	if len(w.data) != 16 {
		t.Fatalf("buffer shrunk: len = %d, want 16", len(w.data))
	}
}
