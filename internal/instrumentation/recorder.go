// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package instrumentation

import (
	"context"

	"github.com/go-logr/logr"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/global"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/atomic"
)

// Counters tallies merge-cost figures: totals are accumulated with
// atomic operations so a parallel-sort harness
// tiling the input across goroutines can share one Counters safely,
// even though each tile's engine.Sort call is itself single-threaded.
type Counters struct {
	Runs        atomic.Int64
	Merges      atomic.Int64
	MergeCost   atomic.Int64 // sum of len(A)+len(B) over every merge
	Comparisons atomic.Int64
}

// Recorder adapts a Sort call's run/merge events onto a Counters, a
// logr sink, and OpenTelemetry counters. It satisfies the engine's
// Recorder interface structurally; engine never imports this package.
type Recorder struct {
	Counters *Counters
	Log      logr.Logger

	meter       metric.Meter
	mergeCost   metric.Int64Counter
	mergeCalls  metric.Int64Counter
	runsCounter metric.Int64Counter
}

// NewRecorder builds a Recorder. A nil logger defaults to a no-op
// (logr.Discard); counters default to a fresh, private Counters.
func NewRecorder(log logr.Logger, counters *Counters) *Recorder {
	if counters == nil {
		counters = &Counters{}
	}
	if log.GetSink() == nil {
		log = Discard
	}
	meter := global.Meter("github.com/sortlab/powersort")
	r := &Recorder{
		Counters: counters,
		Log:      log,
		meter:    meter,
	}
	r.mergeCost = metric.Must(meter).NewInt64Counter(
		"powersort.merge.cost",
		metric.WithDescription("sum of len(A)+len(B) over every merge performed"),
	)
	r.mergeCalls = metric.Must(meter).NewInt64Counter(
		"powersort.merge.count",
		metric.WithDescription("number of merges performed"),
	)
	r.runsCounter = metric.Must(meter).NewInt64Counter(
		"powersort.run.count",
		metric.WithDescription("number of natural runs detected, post-extension"),
	)
	return r
}

// RunDetected implements engine.Recorder.
func (r *Recorder) RunDetected(length int) {
	r.Counters.Runs.Inc()
	r.runsCounter.Add(context.Background(), 1)
	r.Log.V(2).Info("run detected", "length", length)
}

// MergePerformed implements engine.Recorder.
func (r *Recorder) MergePerformed(len1, len2 int) {
	cost := int64(len1 + len2)
	r.Counters.Merges.Inc()
	r.Counters.MergeCost.Add(cost)
	ctx := context.Background()
	r.mergeCalls.Add(ctx, 1)
	r.mergeCost.Add(ctx, cost)
	r.Log.V(1).Info("merge performed", "len1", len1, "len2", len2, "cost", cost)
}

// SortSpan starts a span around one Sort call and returns a function
// that ends it; attributes summarize the call's configuration so a
// trace viewer can correlate duration against range length.
func SortSpan(ctx context.Context, tracer trace.Tracer, rangeLen int, useMsb, onlyIncreasing bool) (context.Context, func()) {
	ctx, span := tracer.Start(ctx, "powersort.Sort", trace.WithAttributes(
		attrInt("powersort.range_len", rangeLen),
		attrBool("powersort.use_msb_merge_type", useMsb),
		attrBool("powersort.only_increasing_runs", onlyIncreasing),
	))
	return ctx, func() { span.End() }
}
