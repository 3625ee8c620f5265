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

import "strings"

// alert tags used by String.
const (
	tagError     = "ERR"
	tagWarning   = "WARN"
	tagEscalated = "ERR_WARN"
)

// String renders one line per alert:
//
//	(<scope>) [ERR|WARN|ERR_WARN] <name>: <message>
//
// Successes are not rendered. An alert without a name uses its kind
// ("Error", "Warning") instead.
func (r *Result) String() string {
	var b strings.Builder
	for _, a := range r.Alerts() {
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		writeAlert(&b, a)
	}
	return b.String()
}

func writeAlert(b *strings.Builder, a Alert) {
	b.WriteByte('(')
	b.WriteString(a.Scope().String())
	b.WriteString(") [")
	b.WriteString(alertTag(a))
	b.WriteString("] ")
	name := a.Name()
	if name == "" {
		name = a.Kind().String()
	}
	b.WriteString(name)
	b.WriteString(": ")
	b.WriteString(a.Message())
}

func alertTag(a Alert) string {
	switch {
	case a.Kind() == KindError:
		return tagError
	case a.IsError():
		return tagEscalated
	default:
		return tagWarning
	}
}
