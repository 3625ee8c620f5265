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

// Typed lookup. T selects the dynamic type of the reasons to match; preds,
// when given, must all accept a candidate. Matches are returned in insertion
// order.

// HasError reports whether r holds at least one failing alert (an Error or
// an escalated Warning) of dynamic type T that satisfies preds.
func HasError[T Alert](r *Result, preds ...func(T) bool) ([]T, bool) {
	var out []T
	for _, reason := range r.reasons {
		a, ok := reason.(Alert)
		if !ok || !a.IsError() {
			continue
		}
		if t, ok := reason.(T); ok && matches(t, preds) {
			out = append(out, t)
		}
	}
	return out, len(out) > 0
}

// HasWarning reports whether r holds at least one Warning of dynamic type T
// that satisfies preds. Escalated warnings are included.
func HasWarning[T Alert](r *Result, preds ...func(T) bool) ([]T, bool) {
	return filterKind(r, KindWarning, preds)
}

// HasSuccess reports whether r holds at least one Success of dynamic type T
// that satisfies preds.
func HasSuccess[T Reason](r *Result, preds ...func(T) bool) ([]T, bool) {
	return filterKind(r, KindSuccess, preds)
}

// HasCause reports whether any alert of r was caused, directly or
// transitively, by an alert of dynamic type T that satisfies preds.
//
// The alerts held by r are not candidates themselves; use HasError or
// HasWarning for those. Each cause is reported once, even when it is shared
// between trees, and cycles do not hang the search.
func HasCause[T Alert](r *Result, preds ...func(T) bool) ([]T, bool) {
	var out []T
	seen := make(map[*base]struct{})
	for _, root := range r.Alerts() {
		rootID := root.ident()
		Walk(root, func(a Alert) bool {
			id := a.ident()
			if id == rootID {
				return true
			}
			if _, dup := seen[id]; dup {
				return true
			}
			seen[id] = struct{}{}
			if t, ok := a.(T); ok && matches(t, preds) {
				out = append(out, t)
			}
			return true
		})
	}
	return out, len(out) > 0
}

// FindCause returns the first alert below a (in Walk order) of dynamic type
// T that satisfies preds.
func FindCause[T Alert](a Alert, preds ...func(T) bool) (T, bool) {
	var (
		found T
		ok    bool
	)
	if isNil(a) {
		return found, false
	}
	rootID := a.ident()
	Walk(a, func(cur Alert) bool {
		if cur.ident() == rootID {
			return true
		}
		if t, hit := cur.(T); hit && matches(t, preds) {
			found, ok = t, true
			return false
		}
		return true
	})
	return found, ok
}

func filterKind[T Reason](r *Result, k Kind, preds []func(T) bool) ([]T, bool) {
	var out []T
	for _, reason := range r.reasons {
		if reason.Kind() != k {
			continue
		}
		if t, ok := reason.(T); ok && matches(t, preds) {
			out = append(out, t)
		}
	}
	return out, len(out) > 0
}

func matches[T any](v T, preds []func(T) bool) bool {
	for _, p := range preds {
		if p != nil && !p(v) {
			return false
		}
	}
	return true
}
