// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

// Recorder receives optional instrumentation events from a Sort call.
// It is satisfied structurally by *instrumentation.Recorder; this
// package never imports the instrumentation package, so a nil
// Recorder (the default) costs nothing beyond an interface-typed nil
// check per event.
type Recorder interface {
	RunDetected(length int)
	MergePerformed(len1, len2 int)
}

// Config holds the entry point's full configuration. The zero value is
// not valid: Cmp must be set, and MinRunLen defaults to 1 only when
// left at zero by the caller's own choice (see minRunLen).
type Config[E any] struct {
	Cmp CompareFunc[E]

	// Workspace, if non-nil, is used as merge scratch space for as
	// long as it is large enough; the engine grows its own buffer
	// otherwise. Ownership reverts to the caller when Sort returns.
	Workspace []E

	// UseMsbMergeType selects the O(1) most-significant-bit node-power
	// computation over the bitwise fallback loop.
	UseMsbMergeType bool

	// OnlyIncreasingRuns disables descending-run detection/reversal;
	// only valid together with UseMsbMergeType and MinRunLen<=1.
	OnlyIncreasingRuns bool

	// MinRunLen is the short-run extension threshold, in [1, 64].
	MinRunLen int

	Recorder Recorder
}

func (c Config[E]) minRunLen() int {
	if c.MinRunLen == 0 {
		return 1
	}
	return c.MinRunLen
}

// Sort sorts a[lo:hi] in place according to cfg. It is the sole entry
// point of the engine: argument validation that belongs to a public,
// friendlier API (bounds derived from a full slice, nil-slice handling,
// and so on) is the caller's job, but the option-combination rules
// below are enforced here since they are the engine's own invariants,
// not a façade concern.
func Sort[E any](a []E, lo, hi int, cfg Config[E]) error {
	if cfg.Cmp == nil {
		return newError(Precondition, "comparator is nil")
	}
	if lo < 0 || lo > hi || hi > len(a) {
		return newError(Precondition, "invalid range [%d,%d) for length %d", lo, hi, len(a))
	}
	minRunLen := cfg.minRunLen()
	if minRunLen < 1 || minRunLen > 64 {
		return newError(Precondition, "minRunLen %d out of range [1,64]", minRunLen)
	}
	if !cfg.UseMsbMergeType && cfg.OnlyIncreasingRuns {
		return newError(Precondition, "onlyIncreasingRuns requires useMsbMergeType")
	}
	if minRunLen > 1 && (!cfg.UseMsbMergeType || cfg.OnlyIncreasingRuns) {
		return newError(Precondition, "minRunLen>1 requires useMsbMergeType and !onlyIncreasingRuns")
	}

	n := hi - lo
	if n < 2 {
		return nil
	}
	if cfg.UseMsbMergeType && int64(n) >= int64(1)<<31 {
		return newError(Precondition, "range length %d too large for the MSB node-power trick", n)
	}

	s := &sorter[E]{
		a:         a,
		cmp:       cfg.Cmp,
		n:         n,
		minGallop: minGallopThreshold,
		recorder:  cfg.Recorder,
	}
	if cfg.Workspace != nil {
		s.buf.data = cfg.Workspace
	}

	detect := detectRun[E]
	if cfg.OnlyIncreasingRuns {
		detect = detectIncreasingRun[E]
	}

	right := hi - 1

	// Small-range fast path: below minRunLen there is exactly one run
	// once extended, so the stack machinery never engages.
	if n < minRunLen {
		end := detect(a, lo, right, cfg.Cmp)
		lenRun := end - lo + 1
		s.record(lenRun)
		if lenRun < n {
			extendRun(a, lo, right, lenRun, cfg.Cmp)
		}
		return nil
	}

	return s.run(lo, right, minRunLen, cfg.UseMsbMergeType, detect)
}

type sorter[E any] struct {
	a         []E
	cmp       CompareFunc[E]
	n         int
	buf       workspace[E]
	minGallop int
	recorder  Recorder
}

func (s *sorter[E]) record(runLen int) {
	if s.recorder != nil {
		s.recorder.RunDetected(runLen)
	}
}

func (s *sorter[E]) recordMerge(len1, len2 int) {
	if s.recorder != nil {
		s.recorder.MergePerformed(len1, len2)
	}
}

// run is the driver loop proper: march left to right detecting
// and extending runs, compute each new run's node power against its
// predecessor, drain any stack levels that power dominates, then push.
func (s *sorter[E]) run(left, right, minRunLen int, useMsb bool, detect func([]E, int, int, CompareFunc[E]) int) error {
	n := right - left + 1
	levels := levelsFor(n)
	stack := newRunStack(levels)
	top := 0

	startA := left
	endA := detect(s.a, startA, right, s.cmp)
	if lenA := endA - startA + 1; lenA < minRunLen {
		endA = min(right, startA+minRunLen-1)
		extendRun(s.a, startA, endA, lenA, s.cmp)
	}
	s.record(endA - startA + 1)

	for endA < right {
		startB := endA + 1
		endB := detect(s.a, startB, right, s.cmp)
		if lenB := endB - startB + 1; lenB < minRunLen {
			endB = min(right, startB+minRunLen-1)
			extendRun(s.a, startB, endB, lenB, s.cmp)
		}
		s.record(endB - startB + 1)

		k := nodePower(useMsb, left, right, startA, startB, endB)
		if k < 1 || k >= levels || k == top {
			return newError(Internal, "node power %d invalid at top=%d", k, top)
		}

		for l := top; l > k; l-- {
			if stack.isEmpty(l) {
				continue
			}
			ls, le := stack.run(l)
			if err := s.mergeRuns(ls, le+1, endA); err != nil {
				return err
			}
			startA = ls
			stack.clear(l)
		}
		stack.set(k, startA, endA)
		top = k
		startA, endA = startB, endB
	}

	for l := top; l >= 1; l-- {
		if stack.isEmpty(l) {
			continue
		}
		ls, le := stack.run(l)
		if err := s.mergeRuns(ls, le+1, right); err != nil {
			return err
		}
	}
	return nil
}

func nodePower(useMsb bool, left, right, startA, startB, endB int) int {
	if useMsb {
		return nodePowerMSB(left, right, startA, startB, endB)
	}
	return nodePowerBitwise(left, right, startA, startB, endB)
}
