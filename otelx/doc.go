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

// Package otelx records dresult outcomes on OpenTelemetry spans.
//
// Record is meant to be called once per operation, right before the span
// ends:
//
//	ctx, span := tracer.Start(ctx, "invoice.render")
//	defer span.End()
//	res := render(ctx)
//	otelx.Record(span, res)
//
// Each alert becomes a span event named EventAlert. A failed Result sets the
// span status to codes.Error and records its Go error; a successful one sets
// codes.Ok.
package otelx
