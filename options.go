// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package powersort

import "github.com/sortlab/powersort/internal/engine"

// Option configures a Sort or SortFunc call.
type Option[E any] func(*engine.Config[E])

// WithMinRunLen sets the short-run extension threshold; n must be in
// [1, 64]. It implies the MSB node-power trick, since that is the only
// variant this package supports alongside run extension.
func WithMinRunLen[E any](n int) Option[E] {
	return func(c *engine.Config[E]) {
		c.MinRunLen = n
		c.UseMsbMergeType = true
	}
}

// WithBitwisePower selects the bitwise node-power fallback instead of
// the most-significant-bit trick. Incompatible with
// WithOnlyIncreasingRuns and with a MinRunLen greater than 1.
func WithBitwisePower[E any]() Option[E] {
	return func(c *engine.Config[E]) {
		c.UseMsbMergeType = false
		c.MinRunLen = 1
	}
}

// WithOnlyIncreasingRuns disables descending-run detection and
// reversal; only weakly increasing runs are recognized. It also selects
// the MSB power trick and sets MinRunLen to 1 (the default is 32), the
// only settings this variant is valid with.
func WithOnlyIncreasingRuns[E any]() Option[E] {
	return func(c *engine.Config[E]) {
		c.OnlyIncreasingRuns = true
		c.UseMsbMergeType = true
		c.MinRunLen = 1
	}
}

// WithWorkspace lends the sort a preallocated merge buffer. It is used
// as long as it is big enough; the engine grows its own buffer
// otherwise and never writes back into the lent one.
func WithWorkspace[E any](buf []E) Option[E] {
	return func(c *engine.Config[E]) { c.Workspace = buf }
}

// Recorder receives run and merge events from a Sort or SortFunc call.
// It is the engine's own interface, so any type with matching
// RunDetected and MergePerformed methods satisfies it.
type Recorder = engine.Recorder

// WithRecorder attaches optional merge-cost and run-count
// instrumentation to the call; see the instrumentation package for a
// ready-made Recorder backed by logr, zap, and OpenTelemetry.
func WithRecorder[E any](r engine.Recorder) Option[E] {
	return func(c *engine.Config[E]) { c.Recorder = r }
}

func newConfig[E any](cmp engine.CompareFunc[E], opts []Option[E]) engine.Config[E] {
	cfg := engine.Config[E]{
		Cmp:             cmp,
		UseMsbMergeType: true,
		MinRunLen:       32,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
