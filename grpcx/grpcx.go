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
	"log/slog"
	"strings"
	"time"

	"dirpx.dev/dresult"
	"dirpx.dev/dresult/adapter"
	"dirpx.dev/dresult/apis"
	"dirpx.dev/dresult/code"
	"dirpx.dev/dresult/scope"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	gcodes "google.golang.org/grpc/codes"
	gstatus "google.golang.org/grpc/status"
	"google.golang.org/protobuf/protoadapt"
	"google.golang.org/protobuf/types/known/durationpb"
)

// ErrorInfo metadata keys.
const (
	MetaKind    = "kind"
	MetaName    = "name"
	MetaMessage = "message"

	// MetaDetailPrefix prefixes alert metadata entries, rendered with fmt.Sprint.
	MetaDetailPrefix = "detail."
)

// Extras holds optional details attached next to the per-alert ErrorInfo.
type Extras struct {
	// CorrelationID becomes an errdetails.RequestInfo.
	CorrelationID string

	// RetryAfter, when positive, becomes an errdetails.RetryInfo.
	RetryAfter time.Duration
}

// MetaFn extracts Extras from the call context and the failed Result.
type MetaFn func(ctx context.Context, r *dresult.Result) Extras

// Status converts r into a gRPC status. A successful Result yields codes.OK.
// A failed one takes its code from the first failing alert through m and
// carries one errdetails.ErrorInfo per alert, in order: Reason is the alert
// code, Domain its scope.
func Status(m apis.Mapper, r *dresult.Result) *gstatus.Status {
	st, _ := status(m, r, Extras{})
	return st
}

// status also reports a detail attachment failure; the returned status is
// usable in both cases.
func status(m apis.Mapper, r *dresult.Result, ex Extras) (*gstatus.Status, error) {
	if r == nil || r.IsSuccess() {
		return gstatus.New(gcodes.OK, ""), nil
	}
	base := gstatus.New(adapter.StatusOf(m, r).GRPC, r.Message())

	alerts := r.Alerts()
	details := make([]protoadapt.MessageV1, 0, len(alerts)+2)
	for _, a := range alerts {
		details = append(details, errorInfo(a))
	}
	if ex.CorrelationID != "" {
		details = append(details, &errdetails.RequestInfo{RequestId: ex.CorrelationID})
	}
	if ex.RetryAfter > 0 {
		details = append(details, &errdetails.RetryInfo{RetryDelay: durationpb.New(ex.RetryAfter)})
	}

	with, err := base.WithDetails(details...)
	if err != nil {
		return base, err
	}
	return with, nil
}

func errorInfo(a dresult.Alert) *errdetails.ErrorInfo {
	md := map[string]string{
		MetaKind:    adapter.KindOf(a),
		MetaMessage: a.Message(),
	}
	if n := a.Name(); n != "" {
		md[MetaName] = n
	}
	for k, v := range a.Metadata() {
		md[MetaDetailPrefix+k] = fmt.Sprint(v)
	}
	return &errdetails.ErrorInfo{
		Reason:   a.Code().String(),
		Domain:   a.Scope().String(),
		Metadata: md,
	}
}

// FromStatus rebuilds a Result from a gRPC error.
//
// A nil error or an OK status yields a succeeded Result. Every ErrorInfo
// detail becomes one alert; its detail metadata comes back as strings. A
// Reason or Domain that is not a valid code or scope is kept under the
// "reason" or "domain" detail instead. A non-OK status without ErrorInfo
// yields a single Error carrying the status message. Errors that are not gRPC
// statuses go through dresult.FromGoError.
func FromStatus(err error) *dresult.Result {
	if err == nil {
		return dresult.Ok()
	}
	st, ok := gstatus.FromError(err)
	if !ok {
		return dresult.FromGoError(err)
	}
	if st.Code() == gcodes.OK {
		return dresult.Ok()
	}

	r := dresult.Ok()
	for _, d := range st.Details() {
		if info, ok := d.(*errdetails.ErrorInfo); ok {
			r.AddReason(fromErrorInfo(info))
		}
	}
	if r.Len() == 0 {
		return dresult.FailWith(dresult.NewError(st.Message(), dresult.WithDetail("grpc_code", st.Code().String())))
	}
	if r.Message() != st.Message() {
		r.SetMessage(st.Message())
	}
	return r
}

func fromErrorInfo(info *errdetails.ErrorInfo) dresult.Alert {
	md := info.GetMetadata()
	opts := []dresult.Option{dresult.WithName(md[MetaName])}

	if c, err := code.Parse(info.GetReason()); err == nil {
		opts = append(opts, dresult.WithCode(c))
	} else if info.GetReason() != "" {
		opts = append(opts, dresult.WithDetail("reason", info.GetReason()))
	}
	if sc, err := scope.Parse(info.GetDomain()); err == nil {
		opts = append(opts, dresult.WithScope(sc))
	} else {
		opts = append(opts, dresult.WithDetail("domain", info.GetDomain()))
	}
	for k, v := range md {
		if name, ok := strings.CutPrefix(k, MetaDetailPrefix); ok {
			opts = append(opts, dresult.WithDetail(name, v))
		}
	}

	msg := md[MetaMessage]
	switch md[MetaKind] {
	case apis.KindWarning:
		return dresult.NewWarning(msg, opts...)
	case apis.KindEscalated:
		return dresult.NewWarning(msg, opts...).Escalate()
	default:
		return dresult.NewError(msg, opts...)
	}
}

// UnaryServerInterceptor converts handler errors that carry a Result into
// rich gRPC statuses. A *dresult.FailureError contributes its whole Result;
// a *dresult.Error becomes a one-alert Result. Other errors pass through.
//
// metaFn may be nil. logger, when non-nil, receives detail attachment
// failures.
func UnaryServerInterceptor(m apis.Mapper, metaFn MetaFn, logger *slog.Logger) grpc.UnaryServerInterceptor {
	if metaFn == nil {
		metaFn = func(context.Context, *dresult.Result) Extras { return Extras{} }
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err == nil {
			return resp, nil
		}

		r := resultOf(err)
		if r == nil {
			return nil, err
		}

		st, derr := status(m, r, metaFn(ctx, r))
		if derr != nil {
			logger.LogAttrs(ctx, slog.LevelWarn, "grpcx: attach status details",
				slog.String("method", info.FullMethod), slog.Any("error", derr))
		}
		return nil, st.Err()
	}
}

func resultOf(err error) *dresult.Result {
	var fe *dresult.FailureError
	if errors.As(err, &fe) {
		return fe.Result()
	}
	var de *dresult.Error
	if errors.As(err, &de) {
		return dresult.FailWith(de)
	}
	return nil
}
