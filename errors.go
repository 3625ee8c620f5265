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
	"strings"
)

// ErrNilArgument is the panic value (or returned error, for FromErrors) when a
// required argument is nil. Argument validation never ends up as a reason in
// a Result.
var ErrNilArgument = errors.New("dresult: nil argument")

// FailureError is the Go error view of a failed Result. See (*Result).Err.
type FailureError struct {
	result *Result
}

var _ error = (*FailureError)(nil)

// Error joins the failing alerts, rendered as in (*Result).String, with "; ".
func (e *FailureError) Error() string {
	var b strings.Builder
	for _, a := range e.result.Alerts() {
		if !a.IsError() {
			continue
		}
		if b.Len() > 0 {
			b.WriteString("; ")
		}
		writeAlert(&b, a)
	}
	if b.Len() == 0 {
		return e.result.Message()
	}
	return b.String()
}

// Unwrap returns the failing alerts that implement error.
func (e *FailureError) Unwrap() []error {
	var errs []error
	for _, a := range e.result.Alerts() {
		if err, ok := a.(error); ok && a.IsError() {
			errs = append(errs, err)
		}
	}
	return errs
}

// Result returns the failed Result.
func (e *FailureError) Result() *Result { return e.result }

// FromError adapts a Go error into an *Error.
//
// If err is, or wraps, an *Error, that value is returned unchanged and opts
// are not applied; the existing Error is never mutated. Otherwise a new Error
// carrying err.Error() as message, err as wrapped cause and opts is built.
// A nil err yields nil.
func FromError(err error, opts ...Option) *Error {
	if err == nil {
		return nil
	}
	var de *Error
	if errors.As(err, &de) && de != nil {
		return de
	}
	return NewError(err.Error(), append([]Option{WithWrapped(err)}, opts...)...)
}

// FromGoError converts a Go error into a Result: nil yields Ok(), a
// *FailureError yields a copy of its Result, anything else a failed Result
// holding FromError(err).
func FromGoError(err error) *Result {
	if err == nil {
		return Ok()
	}
	var fe *FailureError
	if errors.As(err, &fe) {
		return fe.result.clone()
	}
	return FailWith(FromError(err))
}
