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

package code

import (
	"bytes"
	"encoding"
	"errors"
	"regexp"
	"strings"
)

// Code classifies an alert. A valid code is 3 to 64 characters of
// [a-z0-9_] starting with a letter; Empty means "unclassified" and is what
// alerts built without a code carry.
type Code string

// Length bounds of a valid code, mirrored by the pattern below.
const (
	MinLength = 3
	MaxLength = 64
)

var codeRe = regexp.MustCompile(`^[a-z][a-z0-9_]{2,63}$`)

// ErrCodeInvalid is returned when a value cannot be parsed as a code.
var ErrCodeInvalid = errors.New("dresult: invalid code")

// Empty is the unclassified code.
var Empty Code = ""

var (
	_ encoding.TextMarshaler   = Code("")
	_ encoding.TextUnmarshaler = (*Code)(nil)
)

// Normalize lower-cases s, trims it and turns '-' into '_'. Foreign
// identifiers such as "API_DISABLED" or "rate-limited" become valid codes.
func Normalize(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")
}

// Parse normalizes s and validates the result.
func Parse(s string) (Code, error) {
	c := Code(Normalize(s))
	if err := Validate(c); err != nil {
		return Empty, err
	}
	return c, nil
}

// MustParse is Parse for package-level code variables; it panics on error.
func MustParse(s string) Code {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Validate rejects Empty and anything not already canonical.
func Validate(c Code) error {
	if codeRe.MatchString(string(c)) {
		return nil
	}
	return ErrCodeInvalid
}

func (c Code) String() string { return string(c) }

// OrInternal maps Empty to Internal so an unclassified alert still resolves
// to a transport status.
func (c Code) OrInternal() Code {
	if c == Empty {
		return Internal
	}
	return c
}

// Transient reports whether c names a condition that may clear on retry.
func (c Code) Transient() bool {
	_, ok := transient[c]
	return ok
}

// MarshalText fails for codes that do not validate, including Empty.
func (c Code) MarshalText() ([]byte, error) {
	if err := Validate(c); err != nil {
		return nil, err
	}
	return []byte(c), nil
}

// UnmarshalText parses text with Parse semantics.
func (c *Code) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(bytes.TrimSpace(text)))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
