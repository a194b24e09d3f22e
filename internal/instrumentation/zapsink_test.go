// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package instrumentation

import (
	"errors"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapLoggerInfoAndValues(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := NewZapLogger(zap.New(core))

	log.WithValues("run", 1).Info("run detected", "length", 10)

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("got %d log entries, want 1", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["run"] != int64(1) {
		t.Errorf("run field = %v, want 1", fields["run"])
	}
	if fields["length"] != int64(10) {
		t.Errorf("length field = %v, want 10", fields["length"])
	}
}

func TestZapLoggerError(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := NewZapLogger(zap.New(core))

	log.Error(errors.New("boom"), "merge failed")

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("got %d log entries, want 1", len(entries))
	}
	if entries[0].Level != zapcore.ErrorLevel {
		t.Errorf("level = %v, want Error", entries[0].Level)
	}
}

func TestZapLoggerEnabledLevels(t *testing.T) {
	core, _ := observer.New(zapcore.InfoLevel)
	log := NewZapLogger(zap.New(core))
	if !log.V(0).Enabled() {
		t.Error("V(0) should be enabled at InfoLevel")
	}
	if log.V(1).Enabled() {
		t.Error("V(1) (debug) should not be enabled at InfoLevel")
	}
}
