// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import (
	"fmt"

	"golang.org/x/xerrors"
)

// Kind classifies a sort failure so a caller can decide whether the
// array was left untouched, partially mutated, or fully mutated.
type Kind int

const (
	// Precondition marks a bad argument to Sort: out-of-range indices,
	// a nil comparator, or an unsupported combination of options. No
	// element of the array has been moved when this kind is reported.
	Precondition Kind = iota + 1

	// ComparatorViolation marks a merge step that found one run
	// exhausted while the loop invariant required both runs non-empty.
	// That can only happen if cmp is not a consistent total order. The
	// array may be partially mutated.
	ComparatorViolation

	// ResourceExhaustion marks a failure to grow the merge workspace.
	ResourceExhaustion

	// Internal marks a violation of the engine's own bookkeeping
	// invariants (for instance, a node power outside [1, floor(log2 n)+1]
	// or equal to the run stack's current top level) rather
	// than anything attributable to the caller or its comparator. It
	// should never be observed; it exists so such a bug fails loudly
	// instead of silently dropping a run from the merge.
	Internal
)

func (k Kind) String() string {
	switch k {
	case Precondition:
		return "precondition violation"
	case ComparatorViolation:
		return "comparator contract violation"
	case ResourceExhaustion:
		return "resource exhaustion"
	case Internal:
		return "internal invariant violation"
	default:
		return "unknown"
	}
}

// Error is the error type returned by Sort. It carries enough context
// (the offending kind, plus a captured frame) for a caller to log or
// report the failure without re-deriving it from a bare string.
type Error struct {
	Kind  Kind
	msg   string
	frame xerrors.Frame
}

func newError(kind Kind, format string, args ...interface{}) *Error {
	return &Error{
		Kind:  kind,
		msg:   fmt.Sprintf(format, args...),
		frame: xerrors.Caller(1),
	}
}

func (e *Error) Error() string {
	return fmt.Sprintf("powersort: %s: %s", e.Kind, e.msg)
}

func (e *Error) Format(f fmt.State, c rune) { xerrors.FormatError(e, f, c) }

func (e *Error) FormatError(p xerrors.Printer) error {
	p.Print(e.Error())
	e.frame.Format(p)
	return nil
}

// IsComparatorViolation reports whether err was raised because a merge
// observed a run drained when the comparator's general contract
// required it to still hold elements.
func IsComparatorViolation(err error) bool {
	var e *Error
	return xerrors.As(err, &e) && e.Kind == ComparatorViolation
}
