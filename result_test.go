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

	"github.com/stretchr/testify/require"

	"dirpx.dev/dresult/scope"
)

func TestResult_OkAndFail(t *testing.T) {
	ok := Ok()
	require.True(t, ok.IsSuccess())
	require.False(t, ok.IsFailed())
	require.Empty(t, ok.Errors())
	require.Equal(t, MessageSuccess, ok.Message())

	res := Fail("x")
	require.True(t, res.IsFailed())
	errs := res.Errors()
	require.Len(t, errs, 1)
	require.Equal(t, "x", errs[0].Message())
	require.Equal(t, "x", res.Message())
	require.Equal(t, "() [ERR] Error: x", res.String())
}

func TestResult_WarningsDoNotFailUnlessEscalated(t *testing.T) {
	w := NewWarning("slow")
	res := Ok().AddReason(w).AddReason(NewWarning("also slow"))
	require.True(t, res.IsSuccess())
	require.Empty(t, res.Errors())
	require.Len(t, res.Warnings(), 2)

	w.Escalate()
	require.True(t, res.IsFailed(), "status is recomputed on every call")
	require.Empty(t, res.Errors(), "an escalated warning stays a warning")

	w.SetError(false)
	require.True(t, res.IsSuccess())
}

func TestResult_AddRemove(t *testing.T) {
	e := NewError("e")
	s := NewSuccess("s")
	res := Ok()
	same := res.AddReason(e).AddReasons(s, e)
	require.Same(t, res, same)
	require.Equal(t, []Reason{e, s, e}, res.Reasons())

	res.RemoveReason(e)
	require.Equal(t, []Reason{s, e}, res.Reasons(), "only the first occurrence is removed")

	res.RemoveReason(NewError("e"))
	require.Equal(t, 2, res.Len(), "structurally equal but distinct errors are not removed")

	res.RemoveReasons(e, s, e)
	require.Zero(t, res.Len())
}

func TestResult_AddReason_NilPanics(t *testing.T) {
	require.PanicsWithValue(t, ErrNilArgument, func() { Ok().AddReason(nil) })
	require.PanicsWithValue(t, ErrNilArgument, func() { FailWith(NewError("a"), nil) })
}

func TestResult_Default_CopyOnWrite(t *testing.T) {
	d := Default()
	require.Same(t, d, Default())

	r := d.AddReason(NewError("boom"))
	require.NotSame(t, d, r)
	require.True(t, r.IsFailed())
	require.Zero(t, d.Len())
	require.True(t, d.IsSuccess())

	m := d.SetMessage("changed")
	require.NotSame(t, d, m)
	require.Equal(t, MessageSuccess, d.Message())

	md := d.SetDetail("k", "v")
	require.NotSame(t, d, md)
	_, ok := d.Detail("k")
	require.False(t, ok)

	require.Same(t, d, d.RemoveReason(NewError("absent")))
}

func TestResult_Message(t *testing.T) {
	require.Equal(t, "only", Ok().AddReason(NewSuccess("only")).Message())
	require.Equal(t, MessageSuccess, Ok().AddReasons(NewSuccess("a"), NewSuccess("b")).Message())
	require.Equal(t, MessageFailure, Ok().AddReasons(NewSuccess("a"), NewError("b")).Message())
	require.Equal(t, "explicit", Fail("x").SetMessage("explicit").Message())
	require.Equal(t, "explicit", New(WithMessage("explicit")).Message())
}

func TestResult_Metadata(t *testing.T) {
	res := New(WithMetadata(map[string]any{"request_id": "r-1"}))
	res.SetDetail("attempt", 2)
	v, ok := res.Detail("attempt")
	require.True(t, ok)
	require.Equal(t, 2, v)

	m := res.Metadata()
	m["request_id"] = "mutated"
	got, _ := res.Detail("request_id")
	require.Equal(t, "r-1", got)
}

func TestResult_Views(t *testing.T) {
	s := NewSuccess("s")
	w := NewWarning("w")
	e := NewError("e")
	res := New(WithReasons(w, s, e))

	require.Equal(t, []Reason{s}, res.Successes())
	require.Equal(t, []Alert{w, e}, res.Alerts())
	require.Equal(t, []Alert{w}, res.Warnings())
	require.Equal(t, []Alert{e}, res.Errors())

	ok, failed := res.Status()
	require.False(t, ok)
	require.True(t, failed)

	ok, failed, alerts := res.Unpack()
	require.False(t, ok)
	require.True(t, failed)
	require.Equal(t, []Alert{w, e}, alerts)
	require.False(t, res.OK())
}

func TestResult_String(t *testing.T) {
	res := New(WithReasons(
		NewSuccess("hidden"),
		NewWarning("disk 91% full", WithName("DiskPressure"), WithScope("storage.fs")),
		NewWarning("disk 99% full", WithName("DiskPressure"), WithScope("storage.fs")).Escalate(),
		NewError("write failed", WithScope("storage.fs.write")),
	))
	want := "(storage.fs) [WARN] DiskPressure: disk 91% full\n" +
		"(storage.fs) [ERR_WARN] DiskPressure: disk 99% full\n" +
		"(storage.fs.write) [ERR] Error: write failed"
	require.Equal(t, want, res.String())
	require.Empty(t, Ok().AddReason(NewSuccess("x")).String())
}

func TestResult_AlertsIn(t *testing.T) {
	pg := NewError("pg", WithScope("storage.pg.connect"))
	fs := NewWarning("fs", WithScope("storage.fs"))
	auth := NewError("auth", WithScope("auth.jwt"))
	res := FailWith(pg, fs, auth)

	require.Equal(t, []Alert{pg, fs}, res.AlertsIn(scope.MustParse("storage")))
	require.Equal(t, []Alert{pg}, res.AlertsIn("storage.pg"))
	require.Len(t, res.AlertsIn(scope.Empty), 3)
	require.Empty(t, res.AlertsIn("billing"))
}

func TestResult_Err(t *testing.T) {
	require.NoError(t, Ok().AddReason(NewWarning("w")).Err())

	inner := NewError("read failed", WithWrapped(io.EOF))
	res := FailWith(NewWarning("w"), inner)
	err := res.Err()
	require.Error(t, err)
	require.ErrorIs(t, err, io.EOF)

	var fe *FailureError
	require.True(t, errors.As(err, &fe))
	require.Same(t, res, fe.Result())
	require.Equal(t, "() [ERR] Error: read failed", err.Error())

	esc := Ok().AddReason(NewWarning("too slow").Escalate()).Err()
	require.Equal(t, "() [ERR_WARN] Warning: too slow", esc.Error())
}

func TestFromErrors(t *testing.T) {
	_, err := FromErrors(nil)
	require.ErrorIs(t, err, ErrNilArgument)

	_, err = FromErrors([]Alert{NewError("a"), nil})
	require.ErrorIs(t, err, ErrNilArgument)

	res, err := FromErrors([]Alert{})
	require.NoError(t, err)
	require.True(t, res.IsSuccess())

	a, b := NewError("a"), NewError("b")
	res, err = FromErrors([]Alert{a, b})
	require.NoError(t, err)
	require.Equal(t, []Alert{a, b}, res.Errors())
}

func TestFromError(t *testing.T) {
	require.Nil(t, FromError(nil))

	de := NewError("mine")
	require.Same(t, de, FromError(de))

	plain := errors.New("plain")
	got := FromError(plain, WithName("Adapted"))
	require.Equal(t, "plain", got.Message())
	require.Equal(t, "Adapted", got.Name())
	require.ErrorIs(t, got, plain)
}

func TestFromGoError(t *testing.T) {
	require.True(t, FromGoError(nil).IsSuccess())

	src := Fail("a").AddReason(NewSuccess("s"))
	back := FromGoError(src.Err())
	require.NotSame(t, src, back)
	require.Equal(t, src.Reasons(), back.Reasons())

	res := FromGoError(io.EOF)
	require.True(t, res.IsFailed())
	require.ErrorIs(t, res.Err(), io.EOF)
}
