// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

// nullIndex marks an empty run-stack slot.
const nullIndex = -1

// runStack holds, for each power level, the run that is waiting to be
// merged with whatever arrives at a lower-or-equal level. At most one
// run occupies a level at a time, and the occupied levels' powers
// strictly decrease from the bottom of the stack to top: that is what
// lets the driver loop drain top-down and still produce a merge order
// matching the nearly-optimal tree.
type runStack struct {
	start []int
	end   []int
}

func newRunStack(levels int) *runStack {
	s := &runStack{
		start: make([]int, levels),
		end:   make([]int, levels),
	}
	for i := range s.start {
		s.start[i] = nullIndex
	}
	return s
}

func (s *runStack) isEmpty(level int) bool { return s.start[level] == nullIndex }

func (s *runStack) set(level, start, end int) {
	s.start[level] = start
	s.end[level] = end
}

func (s *runStack) clear(level int) { s.start[level] = nullIndex }

func (s *runStack) run(level int) (start, end int) { return s.start[level], s.end[level] }

// levelsFor returns the number of power levels needed for an outer
// range of length n: floor(log2(n)) + 2, matching the invariant that
// power values lie in [1, floor(log2(n))+1].
func levelsFor(n int) int {
	lg := 0
	for m := n; m > 1; m >>= 1 {
		lg++
	}
	return lg + 2
}
