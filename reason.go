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
	"reflect"
)

// Kind identifies the variant of a Reason.
type Kind uint8

const (
	KindSuccess Kind = iota + 1
	KindWarning
	KindError
)

// String returns "Success", "Warning" or "Error".
func (k Kind) String() string {
	switch k {
	case KindSuccess:
		return "Success"
	case KindWarning:
		return "Warning"
	case KindError:
		return "Error"
	default:
		return "Unknown"
	}
}

// Reason is any value a Result can carry to describe part of its outcome.
//
// The set of variants is closed: only *Success, *Warning and *Error (and types
// embedding them) implement Reason.
type Reason interface {
	// Kind reports the variant.
	Kind() Kind

	// Message is the human-readable description. It may be empty.
	Message() string

	// Metadata returns a copy of the reason's key/value metadata. May be nil.
	Metadata() map[string]any

	// Detail returns a single metadata value.
	Detail(key string) (any, bool)

	// ident is the address of the reason's shared state. It stays stable
	// when a variant is copied by value, and it is comparable even when the
	// variant itself is not.
	ident() *base
	sealed()
}

// base holds the fields shared by every variant.
type base struct {
	message  string
	metadata map[string]any
}

func (b *base) Message() string { return b.message }

func (b *base) Metadata() map[string]any { return maps.Clone(b.metadata) }

func (b *base) Detail(key string) (any, bool) {
	v, ok := b.metadata[key]
	return v, ok
}

func (b *base) ident() *base { return b }

func (b *base) sealed() {}

// Ident identifies a reason independently of the type that carries it: a
// variant embedding *Error and the *Error itself share one Ident. Idents are
// comparable and can key maps. The zero Ident belongs to nil.
type Ident struct {
	b *base
}

// IdentOf returns the identity of r.
func IdentOf(r Reason) Ident {
	if isNil(r) {
		return Ident{}
	}
	return Ident{r.ident()}
}

// SameReason reports whether a and b are the same reason.
func SameReason(a, b Reason) bool { return IdentOf(a) == IdentOf(b) }

// isNil reports whether r is nil or a nil pointer in a non-nil interface.
func isNil(r Reason) bool {
	if r == nil {
		return true
	}
	v := reflect.ValueOf(r)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

// Success is a positive marker. It has no name, scope or causes, and it is
// immutable once constructed.
type Success struct {
	base
}

var _ Reason = (*Success)(nil)

// defaultSuccess is shared and must never be mutated.
var defaultSuccess = &Success{}

// NewSuccess builds a Success. Only WithDetail and WithDetails affect it; the
// alert-only options are ignored.
func NewSuccess(msg string, opts ...Option) *Success {
	a := alert{base: base{message: msg}}
	for _, opt := range opts {
		opt(&a)
	}
	return &Success{base: a.base}
}

// DefaultSuccess returns the shared Success with no message and no metadata.
func DefaultSuccess() *Success { return defaultSuccess }

// Kind implements Reason.
func (s *Success) Kind() Kind { return KindSuccess }
