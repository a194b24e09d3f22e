// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import (
	"sort"
	"testing"
)

func TestGallopLeftRight(t *testing.T) {
	a := []int{1, 3, 3, 3, 5, 7, 9}
	if got := gallopLeft(3, a, 0, len(a), 0, intCmp); got != 1 {
		t.Errorf("gallopLeft(3) = %d, want 1", got)
	}
	if got := gallopRight(3, a, 0, len(a), 0, intCmp); got != 4 {
		t.Errorf("gallopRight(3) = %d, want 4", got)
	}
	if got := gallopLeft(0, a, 0, len(a), 3, intCmp); got != 0 {
		t.Errorf("gallopLeft(0) = %d, want 0", got)
	}
	if got := gallopRight(10, a, 0, len(a), 3, intCmp); got != len(a) {
		t.Errorf("gallopRight(10) = %d, want %d", got, len(a))
	}
}

func newSorter(a []int) *sorter[int] {
	return &sorter[int]{a: a, cmp: intCmp, n: len(a), minGallop: minGallopThreshold}
}

func TestMergeRunsLoAndHi(t *testing.T) {
	cases := [][2][]int{
		{{1, 3, 5, 7}, {2, 4, 6, 8}},
		{{1, 2, 3}, {4, 5, 6, 7, 8, 9, 10}},
		{{4, 5, 6, 7, 8, 9, 10}, {1, 2, 3}},
		{{1}, {2}},
		{{1, 1, 1}, {1, 1}},
	}
	for _, c := range cases {
		left, right := append([]int{}, c[0]...), append([]int{}, c[1]...)
		a := append(append([]int{}, left...), right...)
		s := newSorter(a)
		m := len(left)
		if err := s.mergeRuns(0, m, len(a)-1); err != nil {
			t.Fatalf("mergeRuns(%v, %v): %v", left, right, err)
		}
		if !sort.IntsAreSorted(a) {
			t.Fatalf("merge of %v and %v produced unsorted %v", left, right, a)
		}
	}
}

func TestMergeRunsStability(t *testing.T) {
	type kv struct{ key, src int }
	cmp := func(a, b kv) int { return a.key - b.key }
	left := []kv{{1, 0}, {1, 1}, {2, 2}}
	right := []kv{{1, 3}, {2, 4}}
	a := append(append([]kv{}, left...), right...)
	s := &sorter[kv]{a: a, cmp: cmp, n: len(a), minGallop: minGallopThreshold}
	if err := s.mergeRuns(0, len(left), len(a)-1); err != nil {
		t.Fatal(err)
	}
	// All key==1 elements must appear in original relative order:
	// sources 0, 1 (from the left run) before 3 (from the right run).
	var ones []int
	for _, e := range a {
		if e.key == 1 {
			ones = append(ones, e.src)
		}
	}
	want := []int{0, 1, 3}
	if len(ones) != len(want) {
		t.Fatalf("ones = %v, want %v", ones, want)
	}
	for i := range want {
		if ones[i] != want[i] {
			t.Fatalf("ones = %v, want %v", ones, want)
		}
	}
}

func TestMergeRunsComparatorViolation(t *testing.T) {
	// A comparator that lies (not a consistent total order) must
	// surface as a ComparatorViolation error, not a panic or silent
	// corruption beyond what's documented.
	n := 0
	badCmp := func(a, b int) int {
		n++
		return -1 // always claims "less", violating antisymmetry
	}
	a := make([]int, 40)
	for i := range a {
		a[i] = i
	}
	s := &sorter[int]{a: a, cmp: badCmp, n: len(a), minGallop: minGallopThreshold}
	err := s.mergeRuns(0, 20, len(a)-1)
	if err == nil {
		t.Fatal("expected an error from an inconsistent comparator")
	}
	if !IsComparatorViolation(err) {
		t.Fatalf("err = %v, want a ComparatorViolation", err)
	}
}
