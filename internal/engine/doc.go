// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package engine implements Powersort, a stable comparison sort that
// schedules run merges according to the node power of a nearly-optimal
// merge tree (Munro & Wild, "Nearly-Optimal Mergesorts").
//
// The package is deliberately narrow: it knows how to detect and extend
// natural runs, compute the power of the node separating two adjacent
// runs, maintain the run stack that realizes the resulting merge
// schedule, and merge two runs with a galloping, stable, in-place merge.
// Comparator-vs-natural-order dispatch belongs to callers; this package
// exposes a single entry point, Sort, which checks its own range,
// comparator and option combination before sorting.
package engine
