// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package instrumentation

import "go.opentelemetry.io/otel/attribute"

func attrInt(key string, v int) attribute.KeyValue   { return attribute.Int(key, v) }
func attrBool(key string, v bool) attribute.KeyValue { return attribute.Bool(key, v) }
