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

package grpcx

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"dirpx.dev/dresult"
	"dirpx.dev/dresult/apis"
	"dirpx.dev/dresult/code"
	"dirpx.dev/dresult/mapper"
	"dirpx.dev/dresult/scope"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	gcodes "google.golang.org/grpc/codes"
	gstatus "google.golang.org/grpc/status"
)

func newMapper(t *testing.T) apis.Mapper {
	t.Helper()
	m, err := mapper.New(mapper.WithGRPCPrefix(code.Unavailable, "storage.pg", int(gcodes.Unavailable)))
	if err != nil {
		t.Fatalf("mapper.New: %v", err)
	}
	return m
}

func TestStatus_Success(t *testing.T) {
	st := Status(newMapper(t), dresult.Ok().AddReason(dresult.NewWarning("w")))
	if st.Code() != gcodes.OK || st.Err() != nil {
		t.Fatalf("success must map to OK, got %v", st)
	}
}

func TestStatus_Details(t *testing.T) {
	e := dresult.NewError("pg down",
		dresult.WithName("DBError"),
		dresult.WithCode(code.Unavailable),
		dresult.WithScope(scope.MustParse("storage.pg.connect")),
		dresult.WithDetail("attempts", 3),
	)
	w := dresult.NewWarning("slow")
	st := Status(newMapper(t), dresult.FailWith(w, e))

	if st.Code() != gcodes.Unavailable {
		t.Fatalf("code = %v, want Unavailable", st.Code())
	}
	if st.Message() != dresult.MessageFailure {
		t.Fatalf("message = %q", st.Message())
	}
	var infos []*errdetails.ErrorInfo
	for _, d := range st.Details() {
		if info, ok := d.(*errdetails.ErrorInfo); ok {
			infos = append(infos, info)
		}
	}
	if len(infos) != 2 {
		t.Fatalf("want 2 ErrorInfo details, got %d", len(infos))
	}
	if infos[0].GetMetadata()[MetaKind] != apis.KindWarning {
		t.Fatalf("details must keep alert order: %v", infos[0])
	}
	got := infos[1]
	if got.GetReason() != "unavailable" || got.GetDomain() != "storage.pg.connect" {
		t.Fatalf("unexpected ErrorInfo: %v", got)
	}
	md := got.GetMetadata()
	if md[MetaName] != "DBError" || md[MetaMessage] != "pg down" || md[MetaDetailPrefix+"attempts"] != "3" {
		t.Fatalf("unexpected metadata: %v", md)
	}
}

func TestFromStatus_RoundTrip(t *testing.T) {
	esc := dresult.NewWarning("replica lag", dresult.WithCode(code.Unavailable)).Escalate()
	e := dresult.NewError("missing row", dresult.WithName("NotFound"), dresult.WithCode(code.NotFound), dresult.WithScope(scope.MustParse("billing.invoice")))
	in := dresult.FailWith(esc, e).SetMessage("lookup failed")

	out := FromStatus(Status(newMapper(t), in).Err())
	if out.IsSuccess() || out.Len() != 2 {
		t.Fatalf("unexpected result: %v", out)
	}
	if out.Message() != "lookup failed" {
		t.Fatalf("message = %q", out.Message())
	}
	if out.String() != in.String() {
		t.Fatalf("String mismatch\n got: %s\nwant: %s", out.String(), in.String())
	}
	alerts := out.Alerts()
	if w, ok := alerts[0].(*dresult.Warning); !ok || !w.IsError() {
		t.Fatalf("escalation lost: %#v", alerts[0])
	}
	if alerts[1].Code() != code.NotFound || alerts[1].Scope() != scope.MustParse("billing.invoice") {
		t.Fatalf("identity lost: %v", alerts[1])
	}
}

func TestFromStatus_Foreign(t *testing.T) {
	if !FromStatus(nil).IsSuccess() {
		t.Fatalf("nil error must be a success")
	}

	plain := FromStatus(gstatus.Error(gcodes.NotFound, "no such user"))
	if plain.IsSuccess() || plain.Message() != "no such user" {
		t.Fatalf("unexpected result: %v", plain)
	}
	if v, _ := plain.Errors()[0].Detail("grpc_code"); v != gcodes.NotFound.String() {
		t.Fatalf("grpc_code detail = %v", v)
	}

	st, err := gstatus.New(gcodes.PermissionDenied, "api disabled").WithDetails(&errdetails.ErrorInfo{
		Reason: "API_DISABLED",
		Domain: "Google APIs",
	})
	if err != nil {
		t.Fatalf("WithDetails: %v", err)
	}
	a := FromStatus(st.Err()).Errors()[0]
	if a.Code() != code.Code("api_disabled") {
		t.Fatalf("reason must normalize into a code, got %q", a.Code())
	}
	if v, _ := a.Detail("domain"); v != "Google APIs" || a.Scope() != scope.Empty {
		t.Fatalf("invalid domain must be kept as detail, got %v / %q", v, a.Scope())
	}

	goErr := FromStatus(errors.New("boom"))
	if goErr.IsSuccess() || goErr.Message() != "boom" {
		t.Fatalf("unexpected result: %v", goErr)
	}
}

func TestUnaryServerInterceptor(t *testing.T) {
	m := newMapper(t)
	info := &grpc.UnaryServerInfo{FullMethod: "/svc.v1.Store/Get"}
	icpt := UnaryServerInterceptor(m, func(context.Context, *dresult.Result) Extras {
		return Extras{CorrelationID: "req-7", RetryAfter: 2 * time.Second}
	}, nil)

	call := func(err error) error {
		_, got := icpt(context.Background(), nil, info, func(context.Context, any) (any, error) {
			return nil, err
		})
		return got
	}

	if err := call(nil); err != nil {
		t.Fatalf("nil error must pass through, got %v", err)
	}
	plain := errors.New("plain")
	if err := call(plain); err != plain {
		t.Fatalf("foreign errors must pass through, got %v", err)
	}

	failed := dresult.Fail("pg down", dresult.WithCode(code.Unavailable), dresult.WithScope(scope.MustParse("storage.pg")))
	err := call(fmt.Errorf("get: %w", failed.Err()))
	st, ok := gstatus.FromError(err)
	if !ok || st.Code() != gcodes.Unavailable {
		t.Fatalf("want Unavailable status, got %v", err)
	}
	var sawReq, sawRetry bool
	for _, d := range st.Details() {
		switch d := d.(type) {
		case *errdetails.RequestInfo:
			sawReq = d.GetRequestId() == "req-7"
		case *errdetails.RetryInfo:
			sawRetry = d.GetRetryDelay().AsDuration() == 2*time.Second
		}
	}
	if !sawReq || !sawRetry {
		t.Fatalf("extras missing: request=%v retry=%v", sawReq, sawRetry)
	}

	err = call(dresult.NewError("bad input", dresult.WithCode(code.Invalid)))
	if st, _ := gstatus.FromError(err); st.Code() != gcodes.InvalidArgument {
		t.Fatalf("want InvalidArgument, got %v", err)
	}
}
