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

package adapter

import (
	"net/http"

	"dirpx.dev/dresult"
	"dirpx.dev/dresult/apis"
	"google.golang.org/grpc/codes"
)

// ToView converts r into a public ResultView. It performs no redaction; the
// view exposes exactly what the Result holds. A nil r yields the zero view.
func ToView(r *dresult.Result) apis.ResultView {
	if r == nil {
		return apis.ResultView{}
	}
	v := apis.ResultView{
		Success:  r.IsSuccess(),
		Message:  r.Message(),
		Metadata: nonEmpty(r.Metadata()),
	}
	reasons := r.Reasons()
	if len(reasons) > 0 {
		v.Reasons = make([]apis.ReasonView, 0, len(reasons))
		for _, rs := range reasons {
			v.Reasons = append(v.Reasons, ToReasonView(rs))
		}
	}
	return v
}

// ToReasonView converts a single reason. Causes of an alert are expanded
// depth-first; an alert reached a second time (shared or cyclic causes) is
// not expanded again.
func ToReasonView(rs dresult.Reason) apis.ReasonView {
	if dresult.IdentOf(rs) == (dresult.Ident{}) {
		return apis.ReasonView{}
	}
	return reasonView(rs, make(map[dresult.Ident]struct{}))
}

func reasonView(rs dresult.Reason, seen map[dresult.Ident]struct{}) apis.ReasonView {
	v := apis.ReasonView{
		Kind:     KindOf(rs),
		Message:  rs.Message(),
		Metadata: nonEmpty(rs.Metadata()),
	}
	a, ok := rs.(dresult.Alert)
	if !ok {
		return v
	}
	seen[dresult.IdentOf(a)] = struct{}{}
	v.Name = a.Name()
	v.Scope = a.Scope().String()
	v.Code = a.Code().String()
	for _, c := range a.Causes() {
		if _, dup := seen[dresult.IdentOf(c)]; dup {
			continue
		}
		v.Causes = append(v.Causes, reasonView(c, seen))
	}
	return v
}

// KindOf returns the view kind of rs. An escalated warning reports
// apis.KindEscalated.
func KindOf(rs dresult.Reason) string {
	switch rs.Kind() {
	case dresult.KindSuccess:
		return apis.KindSuccess
	case dresult.KindError:
		return apis.KindError
	}
	if a, ok := rs.(dresult.Alert); ok && a.IsError() {
		return apis.KindEscalated
	}
	return apis.KindWarning
}

// StatusOf resolves the transport status of r. A successful Result maps to
// 200/OK; a failed one is resolved through m from the code and scope of its
// first failing alert.
func StatusOf(m apis.Mapper, r *dresult.Result) apis.Status {
	if r == nil || r.IsSuccess() {
		return apis.Status{HTTP: http.StatusOK, GRPC: codes.OK}
	}
	a := FirstFailure(r)
	return m.Status(a.Code(), a.Scope())
}

// FirstFailure returns the first alert of r with IsError, or nil.
func FirstFailure(r *dresult.Result) dresult.Alert {
	if r == nil {
		return nil
	}
	for _, a := range r.Alerts() {
		if a.IsError() {
			return a
		}
	}
	return nil
}

func nonEmpty(m map[string]any) map[string]any {
	if len(m) == 0 {
		return nil
	}
	return m
}
