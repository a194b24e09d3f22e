// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package instrumentation

import (
	"log"
	"os"

	"github.com/go-logr/logr"
	"github.com/go-logr/stdr"
)

// NewStdLogger returns a logr.Logger backed by the standard library's
// log package, for callers who want run/merge events on stderr without
// pulling zap's configuration surface into the mix.
func NewStdLogger() logr.Logger {
	return stdr.New(log.New(os.Stderr, "", log.LstdFlags))
}

// Discard is a Logger that drops every event; it is the default when a
// caller builds a Recorder without supplying one.
var Discard = logr.Discard()
