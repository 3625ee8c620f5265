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

	"dirpx.dev/dresult/code"
	"dirpx.dev/dresult/scope"
)

// Option configures an alert under construction (NewWarning, NewError).
// NewSuccess honours only WithDetail and WithDetails.
type Option func(*alert)

// WithName sets the alert name.
func WithName(name string) Option {
	return func(a *alert) { a.name = name }
}

// WithScope sets the alert scope. The value is stored as given; use
// scope.Parse for untrusted input.
func WithScope(sc scope.Scope) Option {
	return func(a *alert) { a.scope = sc }
}

// WithCode sets the alert code.
func WithCode(c code.Code) Option {
	return func(a *alert) { a.code = c }
}

// WithDetail adds one metadata entry.
func WithDetail(k string, v any) Option {
	return func(a *alert) {
		if a.metadata == nil {
			a.metadata = make(map[string]any, 1)
		}
		a.metadata[k] = v
	}
}

// WithDetails merges kv into the metadata. kv is copied; later keys win.
func WithDetails(kv map[string]any) Option {
	return func(a *alert) {
		if len(kv) == 0 {
			return
		}
		if a.metadata == nil {
			a.metadata = make(map[string]any, len(kv))
		}
		maps.Copy(a.metadata, kv)
	}
}

// WithCause appends a causing alert.
func WithCause(c Alert) Option {
	return func(a *alert) { a.addCause(c) }
}

// WithWrapped attaches a plain Go error. It is returned by (*Error).Unwrap
// so errors.Is / errors.As reach it.
func WithWrapped(err error) Option {
	return func(a *alert) { a.wrapped = err }
}

// ResultOption configures a Result built by New.
type ResultOption func(*Result)

// WithMessage sets an explicit Result message.
func WithMessage(msg string) ResultOption {
	return func(r *Result) { r.message = msg }
}

// WithMetadata merges kv into the Result metadata. kv is copied.
func WithMetadata(kv map[string]any) ResultOption {
	return func(r *Result) {
		if len(kv) == 0 {
			return
		}
		if r.metadata == nil {
			r.metadata = make(map[string]any, len(kv))
		}
		maps.Copy(r.metadata, kv)
	}
}

// WithReasons seeds the Result with rs, in order.
func WithReasons(rs ...Reason) ResultOption {
	return func(r *Result) { r.AddReasons(rs...) }
}
