// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package powersort sorts slices using Powersort, a stable,
// comparison-based sort whose merge schedule is derived from the
// "node power" of a nearly-optimal merge tree (Munro & Wild). It is a
// drop-in replacement for a Timsort-style sort: same stability
// guarantee, same shape of API, better worst-case merge cost on
// adversarial and real-world run patterns.
//
// Sort and SortFunc pick a natural-order or comparator-based code path
// and hand the whole slice to internal/engine, which this package treats
// as an opaque entry point: argument validation, run detection,
// node-power computation, run-stack discipline, and the galloping merge
// all live there.
package powersort
