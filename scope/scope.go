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

package scope

import (
	"bytes"
	"encoding"
	"errors"
	"regexp"
	"strings"
)

// Scope is the canonical representation of an alert scope.
//
// Each segment names a module, component, or operation. Valid examples:
//
//   - "billing.invoice.render"
//   - "storage.pg.connect"
//   - "net.dns"
type Scope string

// MinLength and MaxLength bound a non-empty canonical scope.
const (
	MinLength = 2
	MaxLength = 128
)

const (
	// scopeFmt accepts 1 to 6 dot-separated segments, each [a-z][a-z0-9_]*.
	// The empty scope never reaches this pattern.
	scopeFmt = `^[a-z][a-z0-9_]*(\.[a-z][a-z0-9_]*){0,5}$`
)

var scopeRe = regexp.MustCompile(scopeFmt)

var (
	// ErrInvalidFormat is returned when a scope does not match the segment grammar.
	ErrInvalidFormat = errors.New("dresult: invalid scope format")
	// ErrInvalidLength is returned when a scope is too short or too long.
	ErrInvalidLength = errors.New("dresult: invalid scope length")
)

var (
	_ encoding.TextMarshaler   = (*Scope)(nil)
	_ encoding.TextUnmarshaler = (*Scope)(nil)
)

// Empty is the "no scope" value.
var Empty Scope = ""

// Normalize trims spaces, lower-cases, and maps "/" to "." and "-" to "_".
// The result is not guaranteed to be valid.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "/", ".")
	s = strings.ReplaceAll(s, "-", "_")
	return s
}

// Parse normalizes and validates s. The empty string yields Empty.
func Parse(s string) (Scope, error) {
	s = Normalize(s)
	if s == "" {
		return Empty, nil
	}
	if err := validate(s); err != nil {
		return Empty, err
	}
	return Scope(s), nil
}

// MustParse is like Parse but panics on invalid or empty input.
// Intended for package-level scope variables.
func MustParse(s string) Scope {
	sc, err := Parse(s)
	if err != nil {
		panic(err)
	}
	if sc == Empty {
		panic("dresult: empty scope in MustParse")
	}
	return sc
}

// Validate reports whether sc is canonical. Empty is valid.
func Validate(sc Scope) error {
	if sc == Empty {
		return nil
	}
	return validate(string(sc))
}

// String returns the scope as a plain string.
func (sc Scope) String() string {
	return string(sc)
}

// Segments splits the scope on ".". Empty yields nil.
func (sc Scope) Segments() []string {
	if sc == Empty {
		return nil
	}
	return strings.Split(string(sc), ".")
}

// Within reports whether sc equals parent or lies below it on a segment
// boundary: "storage.pg.connect" is within "storage.pg" but "storage.pgx"
// is not. Every scope is within Empty.
func (sc Scope) Within(parent Scope) bool {
	if parent == Empty {
		return true
	}
	s, p := string(sc), string(parent)
	if !strings.HasPrefix(s, p) {
		return false
	}
	return len(s) == len(p) || s[len(p)] == '.'
}

// MarshalText implements encoding.TextMarshaler.
func (sc Scope) MarshalText() ([]byte, error) {
	if err := Validate(sc); err != nil {
		return nil, err
	}
	if sc == Empty {
		return []byte{}, nil
	}
	return []byte(sc), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Input is normalized first.
func (sc *Scope) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(bytes.TrimSpace(text)))
	if err != nil {
		return err
	}
	*sc = parsed
	return nil
}

func validate(s string) error {
	if len(s) < MinLength || len(s) > MaxLength {
		return ErrInvalidLength
	}
	if !scopeRe.MatchString(s) {
		return ErrInvalidFormat
	}
	return nil
}
