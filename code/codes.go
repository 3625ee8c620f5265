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

// General failures.
const (
	// Internal is the fallback for failures that fit no other code.
	Internal Code = "internal"
	// Invalid marks input that violates a structural or semantic rule.
	Invalid Code = "invalid"
	// Missing marks a required value that was not supplied.
	Missing Code = "missing"
	// Unsupported marks an operation or option that is not available.
	Unsupported Code = "unsupported"
)

// Operational conditions, usually transient.
const (
	Unavailable      Code = "unavailable"
	Timeout          Code = "timeout"
	Canceled         Code = "canceled"
	DependencyFailed Code = "dependency_failed"
	Overloaded       Code = "overloaded"
	RateLimited      Code = "rate_limited"
)

// Resource state.
const (
	NotFound           Code = "not_found"
	AlreadyExists      Code = "already_exists"
	Conflict           Code = "conflict"
	PreconditionFailed Code = "precondition_failed"
	Gone               Code = "gone"
)

// Access control.
const (
	Unauthenticated  Code = "unauthenticated"
	PermissionDenied Code = "permission_denied"
)

var transient = map[Code]struct{}{
	Unavailable:      {},
	Timeout:          {},
	Overloaded:       {},
	RateLimited:      {},
	DependencyFailed: {},
}
