// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package instrumentation wires the engine's optional merge-cost
// accounting into the ambient observability stack: a logr
// logging seam with a zap-backed sink for structured detail, OpenTelemetry
// counters for merge cost and run counts, and an OpenTelemetry span per
// Sort call. None of it is on the hot path unless a caller opts in by
// attaching a Recorder to engine.Config.
package instrumentation
