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

import (
	"dirpx.dev/dresult/code"
	"dirpx.dev/dresult/scope"
	"google.golang.org/grpc/codes"
)

// Mapper is an immutable, concurrency-safe set of mapping rules. It resolves
// an alert code (and optionally its scope) into transport statuses.
type Mapper interface {
	// HTTPStatus returns the HTTP status for c and s. Without a scope-specific
	// rule the mapper falls back to the code-level rule.
	HTTPStatus(c code.Code, s scope.Scope) int

	// GRPCStatus returns the gRPC status for c and s, with the same fallback.
	GRPCStatus(c code.Code, s scope.Scope) codes.Code

	// Status resolves both at once.
	Status(c code.Code, s scope.Scope) Status

	// Explain describes which rule matched. Implementations may return "".
	Explain(c code.Code, s scope.Scope) string
}

// Status is a resolved pair of transport statuses.
type Status struct {
	HTTP int        // net/http compatible status code.
	GRPC codes.Code // gRPC status code.
}
