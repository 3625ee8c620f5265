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

// Package dresult models the outcome of an operation as a value.
//
// A Result carries an ordered list of reasons. Each reason is one of three
// variants:
//
//   - Success: a positive marker, optionally with metadata;
//   - Warning: a non-fatal alert that can be escalated to an error;
//   - Error:   an alert that always fails the owning Result.
//
// Warnings and errors are alerts. An alert has an optional name, scope
// (dirpx.dev/dresult/scope), code (dirpx.dev/dresult/code) and a tree of
// causing alerts.
//
// # Status
//
// A Result is failed when at least one of its alerts reports IsError: every
// Error does, and a Warning does once it has been escalated. The status is
// recomputed from the reasons on every call; it is never stored.
//
// # Composition
//
// Bind chains a follow-up operation and short-circuits on failure while still
// carrying the prior reasons forward. Merge concatenates Results. MapErrors and
// MapSuccesses transform one variant and keep the rest. All of them return a
// fresh Result, except MapErrors on a succeeded receiver, which returns the
// receiver itself.
//
//	res := dresult.Ok().
//	    AddReason(dresult.NewSuccess("parsed")).
//	    Bind(func() *dresult.Result { return store(doc) })
//	if res.IsFailed() {
//	    log.Print(res)
//	}
//
// # Typed lookup
//
// HasError, HasWarning and HasSuccess filter reasons by their dynamic type,
// so callers can define their own variants by embedding *Error, *Warning or
// *Success:
//
//	type TimeoutError struct{ *dresult.Error }
//
//	if hits, ok := dresult.HasError[*TimeoutError](res); ok { ... }
//
// HasCause searches the causation trees of all alerts.
//
// # Concurrency
//
// A Result is not safe for concurrent mutation. Default and DefaultSuccess
// return shared values that no operation mutates; mutating calls on Default
// return a fresh copy instead.
package dresult
