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
	"maps"
	"slices"

	"dirpx.dev/dresult/scope"
)

// Canned messages used by (*Result).Message.
const (
	MessageSuccess = "Complete Success."
	MessageFailure = "Complete Failure."
)

// Result is the outcome of an operation: an ordered list of reasons plus an
// optional message and metadata. Its status is derived from the reasons.
//
// Mutating methods (AddReason, RemoveReason, SetMessage, SetDetail) change
// the receiver and return it, except on the shared Default result, where they
// return a modified copy. Always use the returned value.
//
// A Result must not be mutated from several goroutines at once.
type Result struct {
	reasons  []Reason
	message  string
	metadata map[string]any
	// shared marks the process-wide default; it is never written.
	shared bool
}

var defaultResult = &Result{shared: true}

// Default returns the shared, read-only succeeded Result with no reasons.
func Default() *Result { return defaultResult }

// Ok returns a new succeeded Result with no reasons.
func Ok() *Result { return &Result{} }

// New builds a Result from options.
func New(opts ...ResultOption) *Result {
	r := &Result{}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Fail returns a Result holding a single Error built from msg and opts.
func Fail(msg string, opts ...Option) *Result {
	return Ok().AddReason(NewError(msg, opts...))
}

// FailWith returns a Result holding alerts, in order. It panics with
// ErrNilArgument if any alert is nil.
//
// Passing warnings is allowed; the Result is failed only if at least one
// alert reports IsError.
func FailWith(alerts ...Alert) *Result {
	r := &Result{reasons: make([]Reason, 0, len(alerts))}
	for _, a := range alerts {
		if isNil(a) {
			panic(ErrNilArgument)
		}
		r.reasons = append(r.reasons, a)
	}
	return r
}

// FromErrors is FailWith for a caller-supplied slice. A nil slice is
// rejected with ErrNilArgument; an empty one yields a succeeded Result.
func FromErrors(alerts []Alert) (*Result, error) {
	if alerts == nil {
		return nil, ErrNilArgument
	}
	for _, a := range alerts {
		if isNil(a) {
			return nil, ErrNilArgument
		}
	}
	return FailWith(alerts...), nil
}

// mutable returns r, or a private copy when r is the shared default.
func (r *Result) mutable() *Result {
	if !r.shared {
		return r
	}
	return r.clone()
}

func (r *Result) clone() *Result {
	return &Result{
		reasons:  slices.Clone(r.reasons),
		message:  r.message,
		metadata: maps.Clone(r.metadata),
	}
}

// AddReason appends reason and returns the Result. It panics with
// ErrNilArgument when reason is nil, including a nil *Error, *Warning or
// *Success.
func (r *Result) AddReason(reason Reason) *Result {
	if isNil(reason) {
		panic(ErrNilArgument)
	}
	r = r.mutable()
	r.reasons = append(r.reasons, reason)
	return r
}

// AddReasons appends rs in order.
func (r *Result) AddReasons(rs ...Reason) *Result {
	for _, reason := range rs {
		r = r.AddReason(reason)
	}
	return r
}

// RemoveReason removes the first occurrence of reason, compared by IdentOf.
// Absent reasons are ignored.
func (r *Result) RemoveReason(reason Reason) *Result {
	if isNil(reason) {
		return r
	}
	id := reason.ident()
	i := slices.IndexFunc(r.reasons, func(x Reason) bool { return x.ident() == id })
	if i < 0 {
		return r
	}
	r = r.mutable()
	r.reasons = slices.Delete(r.reasons, i, i+1)
	return r
}

// RemoveReasons removes each of rs in order, one occurrence per element.
func (r *Result) RemoveReasons(rs ...Reason) *Result {
	for _, reason := range rs {
		r = r.RemoveReason(reason)
	}
	return r
}

// SetMessage sets the explicit message.
func (r *Result) SetMessage(msg string) *Result {
	r = r.mutable()
	r.message = msg
	return r
}

// SetDetail sets one outcome-level metadata entry.
func (r *Result) SetDetail(key string, v any) *Result {
	r = r.mutable()
	if r.metadata == nil {
		r.metadata = make(map[string]any, 1)
	}
	r.metadata[key] = v
	return r
}

// Metadata returns a copy of the outcome-level metadata.
func (r *Result) Metadata() map[string]any { return maps.Clone(r.metadata) }

// Detail returns one outcome-level metadata value.
func (r *Result) Detail(key string) (any, bool) {
	v, ok := r.metadata[key]
	return v, ok
}

// IsFailed reports whether any alert reports IsError: an Error, or an
// escalated Warning.
func (r *Result) IsFailed() bool {
	for _, reason := range r.reasons {
		if a, ok := reason.(Alert); ok && a.IsError() {
			return true
		}
	}
	return false
}

// IsSuccess is !IsFailed.
func (r *Result) IsSuccess() bool { return !r.IsFailed() }

// OK is the boolean view of the Result; it equals IsSuccess.
//
//	if !res.OK() { ... }
func (r *Result) OK() bool { return r.IsSuccess() }

// Status returns (IsSuccess, IsFailed).
func (r *Result) Status() (ok, failed bool) {
	failed = r.IsFailed()
	return !failed, failed
}

// Unpack returns (IsSuccess, IsFailed, Alerts).
func (r *Result) Unpack() (ok, failed bool, alerts []Alert) {
	ok, failed = r.Status()
	return ok, failed, r.Alerts()
}

// Message returns the explicit message if set; otherwise the message of the
// only reason when there is exactly one; otherwise MessageFailure or
// MessageSuccess.
func (r *Result) Message() string {
	if r.message != "" {
		return r.message
	}
	if len(r.reasons) == 1 {
		return r.reasons[0].Message()
	}
	if r.IsFailed() {
		return MessageFailure
	}
	return MessageSuccess
}

// Len returns the number of reasons.
func (r *Result) Len() int { return len(r.reasons) }

// Reasons returns all reasons in insertion order.
func (r *Result) Reasons() []Reason { return slices.Clone(r.reasons) }

// Successes returns the Success reasons in insertion order.
func (r *Result) Successes() []Reason {
	var out []Reason
	for _, reason := range r.reasons {
		if reason.Kind() == KindSuccess {
			out = append(out, reason)
		}
	}
	return out
}

// Alerts returns the warnings and errors in insertion order.
func (r *Result) Alerts() []Alert {
	var out []Alert
	for _, reason := range r.reasons {
		if a, ok := reason.(Alert); ok {
			out = append(out, a)
		}
	}
	return out
}

// Warnings returns the Warning alerts, escalated or not.
func (r *Result) Warnings() []Alert { return r.alertsOf(KindWarning) }

// Errors returns the Error alerts. Escalated warnings are not included.
func (r *Result) Errors() []Alert { return r.alertsOf(KindError) }

func (r *Result) alertsOf(k Kind) []Alert {
	var out []Alert
	for _, reason := range r.reasons {
		if reason.Kind() != k {
			continue
		}
		if a, ok := reason.(Alert); ok {
			out = append(out, a)
		}
	}
	return out
}

// AlertsIn returns the alerts whose scope is within sc.
func (r *Result) AlertsIn(sc scope.Scope) []Alert {
	var out []Alert
	for _, a := range r.Alerts() {
		if a.Scope().Within(sc) {
			out = append(out, a)
		}
	}
	return out
}

// Err returns nil for a succeeded Result and a *FailureError otherwise.
func (r *Result) Err() error {
	if r.IsSuccess() {
		return nil
	}
	return &FailureError{result: r}
}
