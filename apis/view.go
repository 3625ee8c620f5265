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

package apis

// ResultView is the serializable shape of a Result.
//
// It is a snapshot: building it copies everything, and nothing is redacted.
// Callers decide what is safe to expose before writing it out.
type ResultView struct {
	// Success mirrors Result.IsSuccess.
	Success bool `json:"success"`

	// Message is Result.Message, including the canned fallbacks.
	Message string `json:"message,omitempty"`

	// Metadata is the outcome-level metadata.
	Metadata map[string]any `json:"metadata,omitempty"`

	// Reasons lists every reason in insertion order.
	Reasons []ReasonView `json:"reasons,omitempty"`
}

// ReasonView is the serializable shape of a single reason.
type ReasonView struct {
	// Kind is one of the Kind* constants below.
	Kind string `json:"kind"`

	Message  string         `json:"message,omitempty"`
	Name     string         `json:"name,omitempty"`
	Scope    string         `json:"scope,omitempty"`
	Code     string         `json:"code,omitempty"`
	Metadata map[string]any `json:"metadata,omitempty"`

	// Causes is the causation tree below an alert. Each alert appears once.
	Causes []ReasonView `json:"causes,omitempty"`
}

// ReasonView kinds.
const (
	KindSuccess   = "success"
	KindWarning   = "warning"
	KindEscalated = "escalated_warning"
	KindError     = "error"
)
