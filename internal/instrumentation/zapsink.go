// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package instrumentation

import (
	"github.com/go-logr/logr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// zapSink is a logr.LogSink backed by a *zap.Logger. logr's verbosity
// levels are mapped onto zap's debug level: logr level 0 ("info") maps
// to zap Info, anything deeper maps to zap Debug so a quiet default
// configuration drops merge-by-merge chatter but keeps it one flag away.
type zapSink struct {
	l         *zap.Logger
	name      string
	keyValues []interface{}
}

// NewZapLogger builds a logr.Logger around an existing *zap.Logger,
// for callers who already run zap elsewhere and want Sort's
// instrumentation events folded into the same output.
func NewZapLogger(l *zap.Logger) logr.Logger {
	return logr.New(&zapSink{l: l})
}

func (z *zapSink) Init(logr.RuntimeInfo) {}

func (z *zapSink) Enabled(level int) bool {
	return z.l.Core().Enabled(zapLevel(level))
}

func (z *zapSink) Info(level int, msg string, keysAndValues ...interface{}) {
	fields := toZapFields(append(append([]interface{}{}, z.keyValues...), keysAndValues...))
	z.l.Check(zapLevel(level), msg).Write(fields...)
}

func (z *zapSink) Error(err error, msg string, keysAndValues ...interface{}) {
	fields := toZapFields(append(append([]interface{}{}, z.keyValues...), keysAndValues...))
	fields = append(fields, zap.Error(err))
	z.l.Check(zapcore.ErrorLevel, msg).Write(fields...)
}

func (z *zapSink) WithValues(keysAndValues ...interface{}) logr.LogSink {
	cp := *z
	cp.keyValues = append(append([]interface{}{}, z.keyValues...), keysAndValues...)
	return &cp
}

func (z *zapSink) WithName(name string) logr.LogSink {
	cp := *z
	if cp.name == "" {
		cp.name = name
	} else {
		cp.name = cp.name + "." + name
	}
	cp.l = cp.l.Named(name)
	return &cp
}

func zapLevel(level int) zapcore.Level {
	if level <= 0 {
		return zapcore.InfoLevel
	}
	return zapcore.DebugLevel
}

func toZapFields(keysAndValues []interface{}) []zapcore.Field {
	fields := make([]zapcore.Field, 0, len(keysAndValues)/2)
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		key, _ := keysAndValues[i].(string)
		fields = append(fields, zap.Any(key, keysAndValues[i+1]))
	}
	return fields
}
