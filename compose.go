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

// Merge concatenates the reasons of results, in order, into a fresh Result.
// The merged status follows from the union of the reasons, so merging a
// succeeded and a failed Result yields a failed one. Merge() is an empty
// succeeded Result. A nil element panics with ErrNilArgument.
func Merge(results ...*Result) *Result {
	n := 0
	for _, res := range results {
		if res == nil {
			panic(ErrNilArgument)
		}
		n += len(res.reasons)
	}
	out := &Result{reasons: make([]Reason, 0, n)}
	for _, res := range results {
		out.reasons = append(out.reasons, res.reasons...)
	}
	return out
}

// Merge returns Merge(r, others...).
func (r *Result) Merge(others ...*Result) *Result {
	return Merge(append([]*Result{r}, others...)...)
}

// Bind runs action when r succeeded and returns a fresh Result holding r's
// reasons followed by the action's. When r failed, action is not called and
// the fresh Result holds r's reasons only.
//
// A nil Result from action counts as one with no reasons.
func (r *Result) Bind(action func() *Result) *Result {
	if r.IsFailed() {
		return r.carry()
	}
	return r.combine(action())
}

// BindAwait is Bind for an action that delivers its Result on a channel. The
// caller blocks until the value arrives. A nil channel, or one closed without
// a value, counts as a Result with no reasons.
func (r *Result) BindAwait(action func() <-chan *Result) *Result {
	if r.IsFailed() {
		return r.carry()
	}
	return r.combine(Pending(action()).Await())
}

// BindDeferred is Bind for an action returning a Deferred, which usually
// completes without blocking (see Ready).
func (r *Result) BindDeferred(action func() Deferred) *Result {
	if r.IsFailed() {
		return r.carry()
	}
	return r.combine(action().Await())
}

// carry copies r's reasons into a fresh Result.
func (r *Result) carry() *Result {
	return Merge(r)
}

func (r *Result) combine(next *Result) *Result {
	if next == nil {
		return r.carry()
	}
	return Merge(r, next)
}

// Deferred is a Result that is either already available or will arrive on a
// channel.
type Deferred struct {
	res *Result
	ch  <-chan *Result
}

// Ready wraps an already computed Result.
func Ready(r *Result) Deferred { return Deferred{res: r} }

// Pending wraps a channel that will deliver the Result. Pending(nil) is ready
// with no Result.
func Pending(ch <-chan *Result) Deferred { return Deferred{ch: ch} }

// IsReady reports whether Await will return without blocking.
func (d Deferred) IsReady() bool { return d.ch == nil }

// Await returns the Result, blocking on the channel if needed.
func (d Deferred) Await() *Result {
	if d.ch == nil {
		return d.res
	}
	return <-d.ch
}

// MapErrors transforms every Error of a failed Result with fn.
//
// A succeeded r is returned as is. Otherwise a fresh Result is built in which
// each Error is replaced by fn's result (dropped when fn returns nil or a nil
// pointer) while
// successes and warnings keep their place unchanged.
func (r *Result) MapErrors(fn func(Alert) Alert) *Result {
	if r.IsSuccess() {
		return r
	}
	out := &Result{reasons: make([]Reason, 0, len(r.reasons))}
	for _, reason := range r.reasons {
		if reason.Kind() != KindError {
			out.reasons = append(out.reasons, reason)
			continue
		}
		if mapped := fn(reason.(Alert)); !isNil(mapped) {
			out.reasons = append(out.reasons, mapped)
		}
	}
	return out
}

// MapSuccesses returns a fresh Result in which every Success is replaced by
// fn's result (dropped when fn returns nil or a nil pointer). Alerts keep their place
// unchanged.
func (r *Result) MapSuccesses(fn func(Reason) Reason) *Result {
	out := &Result{reasons: make([]Reason, 0, len(r.reasons))}
	for _, reason := range r.reasons {
		if reason.Kind() != KindSuccess {
			out.reasons = append(out.reasons, reason)
			continue
		}
		if mapped := fn(reason); !isNil(mapped) {
			out.reasons = append(out.reasons, mapped)
		}
	}
	return out
}

// OkIf returns Ok() when cond holds and a Result failed with err otherwise.
func OkIf(cond bool, err Alert) *Result {
	if cond {
		return Ok()
	}
	return FailWith(err)
}

// OkIfFunc is OkIf with a lazily built alert: newErr runs only when cond is
// false.
func OkIfFunc(cond bool, newErr func() Alert) *Result {
	if cond {
		return Ok()
	}
	return FailWith(newErr())
}

// FailIf returns a Result failed with err when cond holds and Ok() otherwise.
func FailIf(cond bool, err Alert) *Result {
	return OkIf(!cond, err)
}

// FailIfFunc is FailIf with a lazily built alert: newErr runs only when cond
// is true.
func FailIfFunc(cond bool, newErr func() Alert) *Result {
	return OkIfFunc(!cond, newErr)
}
