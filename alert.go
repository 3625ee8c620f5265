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
	"fmt"
	"slices"

	"dirpx.dev/dresult/code"
	"dirpx.dev/dresult/scope"
)

// Alert is a Reason that signals a non-positive condition: a *Warning or an
// *Error.
type Alert interface {
	Reason

	// Name is an optional short label, e.g. "InvoiceTotalMismatch".
	Name() string

	// Scope is the optional tag grouping the alert by originating component.
	Scope() scope.Scope

	// Code is the optional classification used at transport edges.
	Code() code.Code

	// Causes returns the direct causes in insertion order.
	Causes() []Alert

	// ErrorReasons returns the direct causes that are errors.
	ErrorReasons() []Alert

	// WarningReasons returns the direct causes that are warnings.
	WarningReasons() []Alert

	// IsError reports whether the alert fails the Result holding it.
	IsError() bool
}

// alert holds the fields shared by Warning and Error.
type alert struct {
	base
	name    string
	scope   scope.Scope
	code    code.Code
	causes  []Alert
	wrapped error
}

func (a *alert) Name() string { return a.name }

func (a *alert) Scope() scope.Scope { return a.scope }

func (a *alert) Code() code.Code { return a.code }

func (a *alert) Causes() []Alert { return slices.Clone(a.causes) }

func (a *alert) ErrorReasons() []Alert { return a.causesOf(KindError) }

func (a *alert) WarningReasons() []Alert { return a.causesOf(KindWarning) }

// SetDetail sets one metadata entry on the alert.
func (a *alert) SetDetail(key string, v any) {
	if a.metadata == nil {
		a.metadata = make(map[string]any, 1)
	}
	a.metadata[key] = v
}

func (a *alert) causesOf(k Kind) []Alert {
	var out []Alert
	for _, c := range a.causes {
		if c.Kind() == k {
			out = append(out, c)
		}
	}
	return out
}

// addCause appends c. Self-reference and back-references are not checked:
// building a cycle is a caller error, see Walk.
func (a *alert) addCause(c Alert) {
	if isNil(c) {
		return
	}
	if a.causes == nil {
		a.causes = make([]Alert, 0, 1)
	}
	a.causes = append(a.causes, c)
}

func newCause(msg string, isWarning bool) Alert {
	if isWarning {
		return NewWarning(msg)
	}
	return NewError(msg)
}

// Warning is a non-fatal alert. Unlike Error, its error flag is mutable:
// an escalated Warning fails the Result holding it.
type Warning struct {
	alert
	escalated bool
}

var _ Alert = (*Warning)(nil)

// NewWarning builds a Warning with the given message and options.
func NewWarning(msg string, opts ...Option) *Warning {
	w := &Warning{alert: alert{base: base{message: msg}}}
	for _, opt := range opts {
		opt(&w.alert)
	}
	return w
}

// Kind implements Reason.
func (w *Warning) Kind() Kind { return KindWarning }

// IsError reports whether the warning has been escalated.
func (w *Warning) IsError() bool { return w.escalated }

// Escalate marks the warning as an error and returns it.
func (w *Warning) Escalate() *Warning {
	w.escalated = true
	return w
}

// SetError sets the escalation flag and returns the warning.
func (w *Warning) SetError(v bool) *Warning {
	w.escalated = v
	return w
}

// CausedBy appends c to the warning's causes and returns the warning.
func (w *Warning) CausedBy(c Alert) *Warning {
	w.addCause(c)
	return w
}

// CausedByMessage appends a new Warning (isWarning) or Error built from msg.
func (w *Warning) CausedByMessage(msg string, isWarning bool) *Warning {
	w.addCause(newCause(msg, isWarning))
	return w
}

// Error is a fatal alert: IsError is always true.
//
// Error implements the built-in error interface. Unwrap exposes the error
// causes and the wrapped Go error (see WithWrapped), so errors.Is and
// errors.As see through the causation tree.
type Error struct {
	alert
}

var (
	_ Alert = (*Error)(nil)
	_ error = (*Error)(nil)
)

// NewError builds an Error with the given message and options.
//
//	err := dresult.NewError("invoice total mismatch",
//	    dresult.WithCode(code.Conflict),
//	    dresult.WithScope("billing.invoice"),
//	    dresult.WithDetail("invoice_id", id),
//	)
func NewError(msg string, opts ...Option) *Error {
	e := &Error{alert: alert{base: base{message: msg}}}
	for _, opt := range opts {
		opt(&e.alert)
	}
	return e
}

// Kind implements Reason.
func (e *Error) Kind() Kind { return KindError }

// IsError always returns true.
func (e *Error) IsError() bool { return true }

// CausedBy appends c to the error's causes and returns the error.
func (e *Error) CausedBy(c Alert) *Error {
	e.addCause(c)
	return e
}

// CausedByMessage appends a new Warning (isWarning) or Error built from msg.
func (e *Error) CausedByMessage(msg string, isWarning bool) *Error {
	e.addCause(newCause(msg, isWarning))
	return e
}

// Error implements the error interface.
//
// The format is "<code>: <message>", "<code>:<scope>: <message>", or just the
// message when no code is set.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	switch {
	case e.code != code.Empty && e.scope != scope.Empty:
		return fmt.Sprintf("%s:%s: %s", e.code, e.scope, e.message)
	case e.code != code.Empty:
		return fmt.Sprintf("%s: %s", e.code, e.message)
	default:
		return e.message
	}
}

// Unwrap returns the error causes that implement error, followed by the
// wrapped Go error, if any.
func (e *Error) Unwrap() []error {
	var errs []error
	for _, c := range e.causes {
		if err, ok := c.(error); ok && c.IsError() {
			errs = append(errs, err)
		}
	}
	if e.wrapped != nil {
		errs = append(errs, e.wrapped)
	}
	return errs
}

// Walk visits root and every alert below it in depth-first pre-order, until
// fn returns false.
//
// Each alert is visited at most once: Walk tracks visited identities, so a
// cycle introduced by a caller ends the branch instead of looping. The
// traversal uses an explicit stack and does not grow the goroutine stack with
// the depth of the tree.
func Walk(root Alert, fn func(Alert) bool) {
	if isNil(root) {
		return
	}
	seen := make(map[*base]struct{})
	stack := []Alert{root}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		id := cur.ident()
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		if !fn(cur) {
			return
		}
		causes := cur.Causes()
		for i := len(causes) - 1; i >= 0; i-- {
			if !isNil(causes[i]) {
				stack = append(stack, causes[i])
			}
		}
	}
}
