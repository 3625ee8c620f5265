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

package dresult

import (
	"errors"
	"io"
	"testing"

	"dirpx.dev/dresult/code"
	"dirpx.dev/dresult/scope"
)

func TestAlert_CausedBy_LazyAndChained(t *testing.T) {
	e := NewError("outer")
	if e.causes != nil {
		t.Fatal("causes must not be allocated before first use")
	}
	if len(e.ErrorReasons()) != 0 || len(e.WarningReasons()) != 0 {
		t.Fatal("no causes => empty filtered views")
	}

	inner := NewError("inner")
	got := e.CausedBy(inner).CausedByMessage("slow disk", true).CausedByMessage("io", false)
	if got != e {
		t.Fatal("CausedBy must return the receiver")
	}
	if n := len(e.Causes()); n != 3 {
		t.Fatalf("causes = %d, want 3", n)
	}
	errs := e.ErrorReasons()
	if len(errs) != 2 || errs[0] != Alert(inner) || errs[1].Message() != "io" {
		t.Fatalf("ErrorReasons = %v", errs)
	}
	warns := e.WarningReasons()
	if len(warns) != 1 || warns[0].Message() != "slow disk" || warns[0].Kind() != KindWarning {
		t.Fatalf("WarningReasons = %v", warns)
	}
}

func TestAlert_CausedBy_NilIgnored(t *testing.T) {
	w := NewWarning("w").CausedBy(nil)
	if len(w.Causes()) != 0 {
		t.Fatal("nil cause must be ignored")
	}
}

func TestAlert_CausesIsCopy(t *testing.T) {
	e := NewError("x").CausedBy(NewError("y"))
	cs := e.Causes()
	cs[0] = NewWarning("z")
	if e.Causes()[0].Message() != "y" {
		t.Fatal("Causes must return a copy")
	}
}

func TestWarning_Escalation(t *testing.T) {
	w := NewWarning("disk 91% full")
	if w.IsError() {
		t.Fatal("warning must default to non-error")
	}
	if !w.Escalate().IsError() {
		t.Fatal("escalated warning must report IsError")
	}
	if w.SetError(false).IsError() {
		t.Fatal("SetError(false) must clear escalation")
	}
	if w.Kind() != KindWarning {
		t.Fatal("escalation must not change the kind")
	}
}

func TestError_Options(t *testing.T) {
	cause := NewWarning("retry")
	e := NewError("invoice total mismatch",
		WithName("TotalMismatch"),
		WithScope(scope.MustParse("billing.invoice")),
		WithCode(code.Conflict),
		WithDetail("invoice_id", 42),
		WithDetails(map[string]any{"currency": "EUR"}),
		WithCause(cause),
	)
	if e.Name() != "TotalMismatch" || e.Scope() != "billing.invoice" || e.Code() != code.Conflict {
		t.Fatalf("unexpected fields: %q %q %q", e.Name(), e.Scope(), e.Code())
	}
	if v, ok := e.Detail("invoice_id"); !ok || v != 42 {
		t.Fatalf("Detail(invoice_id) = %v, %v", v, ok)
	}
	if e.Metadata()["currency"] != "EUR" {
		t.Fatal("WithDetails not merged")
	}
	if len(e.Causes()) != 1 || e.Causes()[0] != Alert(cause) {
		t.Fatal("WithCause not applied")
	}
	if !e.IsError() || e.Kind() != KindError {
		t.Fatal("Error must always be an error")
	}
}

func TestReason_MetadataIsCopy(t *testing.T) {
	e := NewError("x", WithDetail("k", 1))
	m := e.Metadata()
	m["k"] = 2
	if v, _ := e.Detail("k"); v != 1 {
		t.Fatal("Metadata must return a copy")
	}
	e.SetDetail("k", 3)
	if v, _ := e.Detail("k"); v != 3 {
		t.Fatal("SetDetail not applied")
	}
}

func TestSuccess(t *testing.T) {
	s := NewSuccess("computed in 3 retries", WithDetail("retries", 3), WithName("ignored"))
	if s.Kind() != KindSuccess || s.Message() != "computed in 3 retries" {
		t.Fatalf("unexpected success %+v", s)
	}
	if v, ok := s.Detail("retries"); !ok || v != 3 {
		t.Fatal("success metadata missing")
	}
	if DefaultSuccess() != DefaultSuccess() {
		t.Fatal("DefaultSuccess must be shared")
	}
	if DefaultSuccess().Message() != "" || DefaultSuccess().Metadata() != nil {
		t.Fatal("DefaultSuccess must be empty")
	}
}

func TestError_ErrorString(t *testing.T) {
	tests := []struct {
		name string
		e    *Error
		want string
	}{
		{"message only", NewError("boom"), "boom"},
		{"code", NewError("boom", WithCode(code.Timeout)), "timeout: boom"},
		{"code+scope", NewError("boom", WithCode(code.Timeout), WithScope("net.dns")), "timeout:net.dns: boom"},
		{"nil", nil, "<nil>"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.e.Error(); got != tt.want {
				t.Fatalf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestError_Unwrap_ReachesCausesAndWrapped(t *testing.T) {
	inner := NewError("inner", WithWrapped(io.ErrUnexpectedEOF))
	outer := NewError("outer").CausedBy(NewWarning("not an error")).CausedBy(inner)

	if !errors.Is(outer, io.ErrUnexpectedEOF) {
		t.Fatal("errors.Is must reach the wrapped error of a nested cause")
	}
	var de *Error
	if !errors.As(outer, &de) || de != outer {
		t.Fatal("errors.As must find the outer error first")
	}
	if n := len(outer.Unwrap()); n != 1 {
		t.Fatalf("Unwrap = %d errors, want 1 (warnings skipped)", n)
	}
}

func TestWalk_Order(t *testing.T) {
	c := NewError("c")
	b := NewError("b").CausedBy(c)
	d := NewWarning("d")
	a := NewError("a").CausedBy(b).CausedBy(d)

	var got []string
	Walk(a, func(x Alert) bool {
		got = append(got, x.Message())
		return true
	})
	want := []string{"a", "b", "c", "d"}
	if len(got) != len(want) {
		t.Fatalf("Walk = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Walk = %v, want %v", got, want)
		}
	}
}

func TestWalk_StopsEarly(t *testing.T) {
	a := NewError("a").CausedBy(NewError("b")).CausedBy(NewError("c"))
	n := 0
	Walk(a, func(Alert) bool {
		n++
		return n < 2
	})
	if n != 2 {
		t.Fatalf("visited %d, want 2", n)
	}
}

func TestWalk_CycleTerminates(t *testing.T) {
	a := NewError("a")
	b := NewError("b")
	a.CausedBy(b)
	b.CausedBy(a)
	a.CausedBy(a)

	n := 0
	Walk(a, func(Alert) bool {
		n++
		return true
	})
	if n != 2 {
		t.Fatalf("visited %d, want 2", n)
	}
}

func TestWalk_DeepChain(t *testing.T) {
	const depth = 200_000
	root := NewError("0")
	cur := root
	for i := 0; i < depth; i++ {
		next := NewError("n")
		cur.CausedBy(next)
		cur = next
	}
	n := 0
	Walk(root, func(Alert) bool {
		n++
		return true
	})
	if n != depth+1 {
		t.Fatalf("visited %d, want %d", n, depth+1)
	}
}

func TestKind_String(t *testing.T) {
	for k, want := range map[Kind]string{KindSuccess: "Success", KindWarning: "Warning", KindError: "Error", 0: "Unknown"} {
		if got := k.String(); got != want {
			t.Fatalf("Kind(%d).String() = %q, want %q", k, got, want)
		}
	}
}
