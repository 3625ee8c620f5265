/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package otelx

import (
	"dirpx.dev/dresult"
	"dirpx.dev/dresult/adapter"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// EventAlert is the span event name used for every alert.
const EventAlert = "dresult.alert"

// Attribute keys.
const (
	KeySuccess = attribute.Key("dresult.success")
	KeyAlerts  = attribute.Key("dresult.alerts")

	KeyKind      = attribute.Key("dresult.alert.kind")
	KeyName      = attribute.Key("dresult.alert.name")
	KeyScope     = attribute.Key("dresult.alert.scope")
	KeyCode      = attribute.Key("dresult.alert.code")
	KeyMessage   = attribute.Key("dresult.alert.message")
	KeyCauses    = attribute.Key("dresult.alert.causes")
	KeyTransient = attribute.Key("dresult.alert.transient")
)

// Record annotates span with r. A nil span or Result is a no-op.
func Record(span trace.Span, r *dresult.Result) {
	if span == nil || r == nil {
		return
	}
	alerts := r.Alerts()
	span.SetAttributes(
		KeySuccess.Bool(r.IsSuccess()),
		KeyAlerts.Int(len(alerts)),
	)
	for _, a := range alerts {
		span.AddEvent(EventAlert, trace.WithAttributes(Attributes(a)...))
	}
	if r.IsFailed() {
		span.RecordError(r.Err())
		span.SetStatus(codes.Error, r.Message())
		return
	}
	span.SetStatus(codes.Ok, "")
}

// Attributes describes a single alert. Empty name, scope and code are
// omitted, and KeyTransient accompanies KeyCode. KeyCauses counts every alert below a in its causation tree.
func Attributes(a dresult.Alert) []attribute.KeyValue {
	attrs := []attribute.KeyValue{
		KeyKind.String(adapter.KindOf(a)),
		KeyMessage.String(a.Message()),
	}
	if n := a.Name(); n != "" {
		attrs = append(attrs, KeyName.String(n))
	}
	if s := a.Scope(); s != "" {
		attrs = append(attrs, KeyScope.String(s.String()))
	}
	if c := a.Code(); c != "" {
		attrs = append(attrs, KeyCode.String(c.String()), KeyTransient.Bool(c.Transient()))
	}
	if n := countCauses(a); n > 0 {
		attrs = append(attrs, KeyCauses.Int(n))
	}
	return attrs
}

func countCauses(a dresult.Alert) int {
	n := -1
	dresult.Walk(a, func(dresult.Alert) bool {
		n++
		return true
	})
	return n
}
