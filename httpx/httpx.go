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

package httpx

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"dirpx.dev/dresult"
	"dirpx.dev/dresult/adapter"
	"dirpx.dev/dresult/apis"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
)

// Meta carries extra context the HTTP layer can add on top of a Result.
// All fields are optional and typically come from the request context,
// headers, or a rate limiter.
type Meta struct {
	Correlation       string
	TraceID           string
	SpanID            string
	RetryAfterSeconds int32
}

// Writer turns a Result into an HTTP response using the provided status
// mapper. Logger, when set, receives encoding failures.
type Writer struct {
	Mapper apis.Mapper
	Logger *slog.Logger
}

// Write serializes r as JSON and writes it to rw. The HTTP status comes from
// adapter.StatusOf: 200 for a successful Result, otherwise the mapped status of
// its first failing alert.
//
// No redaction is performed: whatever r and meta hold is exposed as-is. A nil
// r writes nothing.
func (w Writer) Write(rw http.ResponseWriter, r *dresult.Result, meta Meta) {
	if r == nil {
		return
	}

	st := adapter.StatusOf(w.Mapper, r)

	// Struct must go through protojson; encoding/json does not know the
	// well-known types.
	body, err := protojson.MarshalOptions{EmitUnpopulated: false}.Marshal(Body(r, meta))
	if err != nil {
		w.logger().LogAttrs(context.Background(), slog.LevelError, "httpx: encode result",
			slog.Int("status", st.HTTP), slog.Any("error", err))
		body = nil
	}

	rw.Header().Set("Content-Type", "application/json")
	if meta.RetryAfterSeconds > 0 {
		rw.Header().Set("Retry-After", strconv.Itoa(int(meta.RetryAfterSeconds)))
	}
	rw.WriteHeader(st.HTTP)
	if body != nil {
		_, _ = rw.Write(body)
	}
}

func (w Writer) logger() *slog.Logger {
	if w.Logger != nil {
		return w.Logger
	}
	return slog.New(slog.DiscardHandler)
}

// Body builds the response document for r and meta.
//
// Metadata values that structpb cannot represent are rendered with fmt.Sprint.
func Body(r *dresult.Result, meta Meta) *structpb.Struct {
	v := adapter.ToView(r)
	fields := map[string]*structpb.Value{
		"success": structpb.NewBoolValue(v.Success),
	}
	putString(fields, "message", v.Message)
	putString(fields, "correlation", meta.Correlation)
	putString(fields, "trace_id", meta.TraceID)
	putString(fields, "span_id", meta.SpanID)
	if meta.RetryAfterSeconds > 0 {
		fields["retry_after_seconds"] = structpb.NewNumberValue(float64(meta.RetryAfterSeconds))
	}
	if md := metadataValue(v.Metadata); md != nil {
		fields["metadata"] = md
	}
	if len(v.Reasons) > 0 {
		fields["reasons"] = reasonsValue(v.Reasons)
	}
	return &structpb.Struct{Fields: fields}
}

func reasonsValue(rs []apis.ReasonView) *structpb.Value {
	list := make([]*structpb.Value, 0, len(rs))
	for _, rv := range rs {
		f := map[string]*structpb.Value{
			"kind": structpb.NewStringValue(rv.Kind),
		}
		putString(f, "message", rv.Message)
		putString(f, "name", rv.Name)
		putString(f, "scope", rv.Scope)
		putString(f, "code", rv.Code)
		if md := metadataValue(rv.Metadata); md != nil {
			f["metadata"] = md
		}
		if len(rv.Causes) > 0 {
			f["causes"] = reasonsValue(rv.Causes)
		}
		list = append(list, structpb.NewStructValue(&structpb.Struct{Fields: f}))
	}
	return structpb.NewListValue(&structpb.ListValue{Values: list})
}

func metadataValue(md map[string]any) *structpb.Value {
	if len(md) == 0 {
		return nil
	}
	f := make(map[string]*structpb.Value, len(md))
	for k, x := range md {
		f[k] = anyValue(x)
	}
	return structpb.NewStructValue(&structpb.Struct{Fields: f})
}

func anyValue(x any) *structpb.Value {
	if v, err := structpb.NewValue(x); err == nil {
		return v
	}
	return structpb.NewStringValue(fmt.Sprint(x))
}

func putString(f map[string]*structpb.Value, k, v string) {
	if v != "" {
		f[k] = structpb.NewStringValue(v)
	}
}
